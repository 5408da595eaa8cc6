package messaging

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wildmart/wildmart-go/internal/api"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

type fakeMessagingAPI struct {
	conversations []api.ConversationPayload
	thread        []api.MessagePayload

	sentTo      int64
	sentContent string
}

func (f *fakeMessagingAPI) ListConversations(_ context.Context) ([]api.ConversationPayload, error) {
	return f.conversations, nil
}

func (f *fakeMessagingAPI) GetThread(_ context.Context, _ int64) ([]api.MessagePayload, error) {
	return f.thread, nil
}

func (f *fakeMessagingAPI) SendMessage(_ context.Context, receiverID int64, content string) (*api.MessagePayload, error) {
	f.sentTo = receiverID
	f.sentContent = content
	return &api.MessagePayload{ID: 1, ReceiverID: receiverID, Content: content}, nil
}

func newTestService(t *testing.T) (*Service, *fakeMessagingAPI) {
	t.Helper()
	fake := &fakeMessagingAPI{}
	service, err := NewService(fake, logger.New(logger.Options{ServiceName: "test", Output: io.Discard}))
	require.NoError(t, err)
	return service, fake
}

func TestConversations(t *testing.T) {
	t.Parallel()

	sent := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	service, fake := newTestService(t)
	fake.conversations = []api.ConversationPayload{
		{UserID: 2, Username: "ben", FullName: "Ben Cruz", LastMessage: "still available?", LastSentAt: &sent, UnreadCount: 1},
	}

	got, err := service.Conversations(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].UserID)
	assert.Equal(t, "still available?", got[0].LastMessage)
	assert.Equal(t, 1, got[0].UnreadCount)
}

func TestSendTrimsContent(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)
	message, err := service.Send(context.Background(), 2, "  hi, is this still available?  ")
	require.NoError(t, err)
	assert.Equal(t, "hi, is this still available?", fake.sentContent)
	assert.Equal(t, int64(2), fake.sentTo)
	assert.Equal(t, "hi, is this still available?", message.Content)
}

func TestSendRejectsEmptyContent(t *testing.T) {
	t.Parallel()

	service, fake := newTestService(t)
	_, err := service.Send(context.Background(), 2, "   ")
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.CodeOf(err))
	assert.Zero(t, fake.sentTo)
}
