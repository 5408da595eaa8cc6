package messaging

import (
	"context"
	"strings"
	"time"

	"github.com/wildmart/wildmart-go/internal/api"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/logger"
)

// Conversation is one row of the conversation list.
type Conversation struct {
	UserID      int64
	Username    string
	FullName    string
	LastMessage string
	LastSentAt  *time.Time
	UnreadCount int
}

// Message is one entry of a thread.
type Message struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	Content    string
	SentAt     *time.Time
	IsRead     bool
}

type messagingAPI interface {
	ListConversations(ctx context.Context) ([]api.ConversationPayload, error)
	GetThread(ctx context.Context, otherUserID int64) ([]api.MessagePayload, error)
	SendMessage(ctx context.Context, receiverID int64, content string) (*api.MessagePayload, error)
}

// Service drives the messaging views. Threads are fetched when opened;
// there is no live socket, re-opening refreshes.
type Service struct {
	api messagingAPI
	log *logger.Logger
}

// NewService builds the messaging service.
func NewService(client messagingAPI, log *logger.Logger) (*Service, error) {
	if client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "api client is required")
	}
	if log == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	return &Service{api: client, log: log}, nil
}

// Conversations fetches the conversation list.
func (s *Service) Conversations(ctx context.Context) ([]Conversation, error) {
	payloads, err := s.api.ListConversations(ctx)
	if err != nil {
		s.log.Error(ctx, "fetch conversations failed", err)
		return nil, err
	}
	conversations := make([]Conversation, 0, len(payloads))
	for _, payload := range payloads {
		conversations = append(conversations, Conversation{
			UserID:      payload.UserID,
			Username:    payload.Username,
			FullName:    payload.FullName,
			LastMessage: payload.LastMessage,
			LastSentAt:  payload.LastSentAt,
			UnreadCount: payload.UnreadCount,
		})
	}
	return conversations, nil
}

// Thread fetches the full message history with the other user.
func (s *Service) Thread(ctx context.Context, otherUserID int64) ([]Message, error) {
	payloads, err := s.api.GetThread(ctx, otherUserID)
	if err != nil {
		s.log.Error(ctx, "fetch thread failed", err)
		return nil, err
	}
	messages := make([]Message, 0, len(payloads))
	for _, payload := range payloads {
		messages = append(messages, fromPayload(payload))
	}
	return messages, nil
}

// Send delivers a non-empty message to the given user.
func (s *Service) Send(ctx context.Context, receiverID int64, content string) (*Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message cannot be empty")
	}
	payload, err := s.api.SendMessage(ctx, receiverID, trimmed)
	if err != nil {
		return nil, err
	}
	message := fromPayload(*payload)
	return &message, nil
}

func fromPayload(payload api.MessagePayload) Message {
	return Message{
		ID:         payload.ID,
		SenderID:   payload.SenderID,
		ReceiverID: payload.ReceiverID,
		Content:    payload.Content,
		SentAt:     payload.SentAt,
		IsRead:     payload.IsRead,
	}
}
