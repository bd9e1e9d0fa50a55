package service

import (
	"context"
)

// PushMessage is a single push payload fanned out to a set of device tokens.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// PushResult summarises one fan-out. InvalidTokens lists tokens the provider
// reported as unregistered; callers should forget them.
type PushResult struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
}

// PushService delivers push notifications to user devices.
type PushService interface {
	// SendMulticast sends the message to every token, batching as the provider requires.
	SendMulticast(ctx context.Context, tokens []string, msg PushMessage) (*PushResult, error)
}
