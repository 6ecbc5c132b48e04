package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/psgtech/campus-portal-api/internal/models"
)

// InsertChatMessage stores a chat message stamped with the database clock
func (c *Client) InsertChatMessage(ctx context.Context, msg *models.ChatMessage) (err error) {
	ctx, done := c.track(ctx, "insertChatMessage")
	defer func() { done(err) }()

	_, err = c.pool.Exec(ctx,
		`INSERT INTO chat_messages (student_email, teacher_email, sender, message, timestamp)
		 VALUES ($1, $2, $3, $4, NOW())`,
		msg.StudentEmail, msg.TeacherEmail, msg.Sender, msg.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListChatMessages returns the conversation between two parties, matching the
// pair in either column order, oldest first
func (c *Client) ListChatMessages(ctx context.Context, studentEmail, teacherEmail string) (messages []models.ChatHistoryEntry, err error) {
	ctx, done := c.track(ctx, "listChatMessages")
	defer func() { done(err) }()

	query := `
		SELECT sender, message, timestamp
		FROM chat_messages
		WHERE (student_email = $1 AND teacher_email = $2)
		   OR (student_email = $2 AND teacher_email = $1)
		ORDER BY timestamp ASC, id ASC
	`

	rows, err := c.pool.Query(ctx, query, studentEmail, teacherEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to query chat messages: %w", err)
	}

	messages, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ChatHistoryEntry, error) {
		var m models.ChatHistoryEntry
		err := row.Scan(&m.Sender, &m.Message, &m.Timestamp)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan chat messages: %w", err)
	}
	return messages, nil
}
