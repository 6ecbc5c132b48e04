package repository

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
)

// ChatRepository handles chat history data access
type ChatRepository struct {
	source ChatDataSource
}

// NewChatRepository creates a new chat repository
func NewChatRepository(source ChatDataSource) *ChatRepository {
	return &ChatRepository{source: source}
}

// Save persists a relayed chat message
func (r *ChatRepository) Save(ctx context.Context, msg *models.ChatMessage) error {
	return r.source.InsertChatMessage(ctx, msg)
}

// Conversation returns the messages exchanged between two parties, oldest first
func (r *ChatRepository) Conversation(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error) {
	return r.source.ListChatMessages(ctx, studentEmail, teacherEmail)
}
