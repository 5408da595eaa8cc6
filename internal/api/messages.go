package api

import (
	"context"
	"fmt"
	"net/http"
)

// ListConversations fetches the caller's conversation summaries.
func (c *Client) ListConversations(ctx context.Context) ([]ConversationPayload, error) {
	var out []ConversationPayload
	if err := c.do(ctx, "messages.conversations", http.MethodGet, "/api/messages/conversations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetThread fetches the full message thread with another user.
func (c *Client) GetThread(ctx context.Context, otherUserID int64) ([]MessagePayload, error) {
	path := fmt.Sprintf("/api/messages/%d", otherUserID)
	var out []MessagePayload
	if err := c.do(ctx, "messages.thread", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage delivers a message to the given user.
func (c *Client) SendMessage(ctx context.Context, receiverID int64, content string) (*MessagePayload, error) {
	body := map[string]any{
		"receiverId": receiverID,
		"content":    content,
	}
	var out MessagePayload
	if err := c.do(ctx, "messages.send", http.MethodPost, "/api/messages", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
