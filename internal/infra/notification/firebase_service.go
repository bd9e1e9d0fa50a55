package notification

import (
	"context"
	"slices"

	"companion/config"
	"companion/internal/domain/service"
	"companion/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// maxMulticastTokens is the FCM limit per multicast request.
const maxMulticastTokens = 500

// multicastSender is the part of *messaging.Client the push service uses.
type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates the FCM backed push service.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	if cfg == nil || cfg.CredentialsPath == "" {
		return nil, errors.New("firebase credentials path is required")
	}

	var fbConfig *firebase.Config
	if cfg.ProjectID != "" {
		fbConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, fbConfig, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendMulticast sends the message in chunks of at most 500 tokens. A chunk that
// fails as a whole aborts the fan-out with the counts gathered so far.
func (s *firebaseService) SendMulticast(ctx context.Context, tokens []string, msg service.PushMessage) (*service.PushResult, error) {
	result := &service.PushResult{InvalidTokens: make([]string, 0)}
	if len(tokens) == 0 {
		return result, nil
	}

	for chunk := range slices.Chunk(tokens, maxMulticastTokens) {
		response, err := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: msg.Title,
				Body:  msg.Body,
			},
			Data: msg.Data,
		})
		if err != nil {
			return result, errors.Wrap(err, "failed to send multicast notification")
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error == nil {
				continue
			}
			if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
				result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
			}
		}
	}

	return result, nil
}

// NoopPushService drops every message. Used when Firebase is not configured.
type NoopPushService struct{}

func (NoopPushService) SendMulticast(_ context.Context, tokens []string, _ service.PushMessage) (*service.PushResult, error) {
	return &service.PushResult{SuccessCount: 0, FailureCount: 0, InvalidTokens: []string{}}, nil
}
