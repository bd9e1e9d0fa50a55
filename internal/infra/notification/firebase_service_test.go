package notification

import (
	"context"
	"fmt"
	"testing"

	"companion/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	batches [][]string
	err     error
}

func (r *recordingSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.batches = append(r.batches, message.Tokens)

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range message.Tokens {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func tokens(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("token-%d", i)
	}

	return out
}

func TestSendMulticast_ChunksAt500(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	result, err := svc.SendMulticast(context.Background(), tokens(1201), service.PushMessage{Title: "t", Body: "b"})
	require.NoError(t, err)

	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[1], 500)
	assert.Len(t, sender.batches[2], 201)
	assert.Equal(t, 1201, result.SuccessCount)
	assert.Empty(t, result.InvalidTokens)
}

func TestSendMulticast_NoTokens(t *testing.T) {
	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	result, err := svc.SendMulticast(context.Background(), nil, service.PushMessage{})
	require.NoError(t, err)
	assert.Zero(t, result.SuccessCount)
	assert.Empty(t, sender.batches)
}

func TestSendMulticast_ProviderError(t *testing.T) {
	svc := &firebaseService{client: &recordingSender{err: fmt.Errorf("unavailable")}}

	_, err := svc.SendMulticast(context.Background(), tokens(3), service.PushMessage{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send multicast notification")
}

func TestNewFirebaseService_RequiresCredentials(t *testing.T) {
	_, err := NewFirebaseService(context.Background(), nil)
	require.Error(t, err)
}
