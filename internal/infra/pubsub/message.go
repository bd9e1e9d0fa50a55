package pubsub

import (
	"encoding/base64"
	"encoding/json"

	"companion/internal/domain/constants"
	"companion/internal/domain/service"

	"github.com/pkg/errors"
)

// EventTypeBookingStatusChanged tags booking status messages.
const EventTypeBookingStatusChanged = "booking.status_changed"

// PushMessage represents the structure of a Pub/Sub push request body.
// The local publisher produces it and the worker consumes it.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// encodeBookingEvent serialises the event and builds the attributes used for
// filtering and tracing.
func encodeBookingEvent(event *service.BookingStatusChanged) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttributeBookingID: event.BookingID.String(),
		constants.AttributeEventType: EventTypeBookingStatusChanged,
	}
	if event.RequestID != "" {
		attributes[constants.AttributeRequestID] = event.RequestID
	}

	return data, attributes, nil
}

// DecodeBookingEvent extracts the booking event carried by a push message.
func DecodeBookingEvent(msg *PushMessage) (*service.BookingStatusChanged, error) {
	if eventType := msg.Message.Attributes[constants.AttributeEventType]; eventType != "" && eventType != EventTypeBookingStatusChanged {
		return nil, errors.Errorf("unexpected event type: %s", eventType)
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	var event service.BookingStatusChanged
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse booking event")
	}
	if !event.Current.IsValid() {
		return nil, errors.Errorf("invalid booking status: %q", event.Current)
	}

	return &event, nil
}
