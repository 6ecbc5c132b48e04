package services

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/pkg/circuitbreaker"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/sony/gobreaker"
)

const chatPersistBreaker = "chat_persist"

// ChatService stores relayed chat messages and serves conversation history
type ChatService struct {
	store   ChatStore
	breaker *gobreaker.CircuitBreaker
}

// NewChatService creates a new chat service instance
func NewChatService(store ChatStore) *ChatService {
	return &ChatService{
		store:   store,
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig(chatPersistBreaker)),
	}
}

// Save stores one relayed message. While the database keeps failing the
// breaker opens and saves fail fast instead of waiting on the store.
func (s *ChatService) Save(ctx context.Context, msg *models.ChatMessage) error {
	err := circuitbreaker.Run(s.breaker, func() error {
		return s.store.Save(ctx, msg)
	})
	if err != nil {
		return apperrors.InternalError("failed to save chat message", err)
	}
	return nil
}

// History returns the messages between the two parties in either direction,
// oldest first
func (s *ChatService) History(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error) {
	messages, err := s.store.Conversation(ctx, studentEmail, teacherEmail)
	if err != nil {
		return nil, apperrors.InternalError("failed to load chat history", err)
	}
	return messages, nil
}
