package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"companion/config"
	"companion/internal/domain/constants"
	"companion/internal/domain/entity"
	"companion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completionEvent() *service.BookingStatusChanged {
	return &service.BookingStatusChanged{
		RequestID:  "req-1",
		BookingID:  uuid.New(),
		Previous:   entity.BookingStatusOngoing,
		Current:    entity.BookingStatusCompleted,
		OccurredAt: time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_DeliversDecodableMessage(t *testing.T) {
	event := completionEvent()

	var received PushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	require.NoError(t, publisher.PublishBookingStatusChanged(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, event.BookingID.String(), received.Message.Attributes[constants.AttributeBookingID])
	assert.Equal(t, EventTypeBookingStatusChanged, received.Message.Attributes[constants.AttributeEventType])

	decoded, err := DecodeBookingEvent(&received)
	require.NoError(t, err)
	assert.Equal(t, event.BookingID, decoded.BookingID)
	assert.Equal(t, entity.BookingStatusCompleted, decoded.Current)
	assert.True(t, decoded.IsCompletion())
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	err := publisher.PublishBookingStatusChanged(context.Background(), completionEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestDecodeBookingEvent_Errors(t *testing.T) {
	tests := []struct {
		name  string
		build func() *PushMessage
	}{
		{"bad base64", func() *PushMessage {
			msg := &PushMessage{}
			msg.Message.Data = "%%%"

			return msg
		}},
		{"bad json", func() *PushMessage {
			msg := &PushMessage{}
			msg.Message.Data = "bm90LWpzb24=" // not-json

			return msg
		}},
		{"other event type", func() *PushMessage {
			msg := &PushMessage{}
			msg.Message.Attributes = map[string]string{constants.AttributeEventType: "merchant.location"}

			return msg
		}},
		{"unknown status", func() *PushMessage {
			msg := &PushMessage{}
			msg.Message.Data = "eyJjdXJyZW50IjoibG9zdCJ9" // {"current":"lost"}

			return msg
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBookingEvent(tt.build())
			assert.Error(t, err)
		})
	}
}

type countingHandler struct {
	calls atomic.Int32
}

func (h *countingHandler) HandleBookingStatusChanged(_ context.Context, _ *service.BookingStatusChanged) error {
	time.Sleep(10 * time.Millisecond)
	h.calls.Add(1)

	return nil
}

func TestInlinePublisher_CloseWaitsForHandlers(t *testing.T) {
	handler := &countingHandler{}
	publisher := NewInlinePublisher(handler, newDiscardLogger())

	for range 3 {
		require.NoError(t, publisher.PublishBookingStatusChanged(context.Background(), completionEvent()))
	}
	require.NoError(t, publisher.Close())

	assert.Equal(t, int32(3), handler.calls.Load())
}

func TestInlinePublisher_SurvivesCanceledRequestContext(t *testing.T) {
	handler := &countingHandler{}
	publisher := NewInlinePublisher(handler, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, publisher.PublishBookingStatusChanged(ctx, completionEvent()))
	cancel()
	require.NoError(t, publisher.Close())

	assert.Equal(t, int32(1), handler.calls.Load())
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		handler service.BookingEventHandler
		wantErr bool
	}{
		{"not configured defaults to inline", nil, &countingHandler{}, false},
		{"empty provider defaults to inline", &config.PubSubConfig{}, &countingHandler{}, false},
		{"not configured without handler", nil, nil, true},
		{"inline", &config.PubSubConfig{Provider: constants.PubSubProviderInline}, &countingHandler{}, false},
		{"inline without handler", &config.PubSubConfig{Provider: constants.PubSubProviderInline}, nil, true},
		{"local", &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, nil, false},
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, nil, true},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, nil, true},
		{"unknown", &config.PubSubConfig{Provider: "kafka"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:      lc,
				Ctx:     context.Background(),
				Config:  &config.Config{PubSub: tt.cfg},
				Logger:  newDiscardLogger(),
				Handler: tt.handler,
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestNewEventPublisher_UnconfiguredDeliversToHandler(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	handler := &countingHandler{}

	publisher, err := NewEventPublisher(PublisherParams{
		Lc:      lc,
		Ctx:     context.Background(),
		Config:  &config.Config{},
		Logger:  newDiscardLogger(),
		Handler: handler,
	})
	require.NoError(t, err)
	assert.IsType(t, &inlinePublisher{}, publisher)

	require.NoError(t, publisher.PublishBookingStatusChanged(context.Background(), completionEvent()))
	lc.RequireStart().RequireStop()

	assert.Equal(t, int32(1), handler.calls.Load())
}
