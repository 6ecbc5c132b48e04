package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
)

// ListBooks returns every book row ordered by title
func (c *Client) ListBooks(ctx context.Context) (books []models.Row, err error) {
	ctx, done := c.track(ctx, "listBooks")
	defer func() { done(err) }()

	rows, err := c.pool.Query(ctx, "SELECT * FROM books ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}

	books, err = pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}
	return books, nil
}

// GetAvailableCopies returns the current available_copies of a book
func (c *Client) GetAvailableCopies(ctx context.Context, bookID int64) (copies int, err error) {
	ctx, done := c.track(ctx, "getAvailableCopies")
	defer func() { done(err) }()

	err = c.pool.QueryRow(ctx, "SELECT available_copies FROM books WHERE id = $1", bookID).Scan(&copies)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.NotFoundError("book")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get available copies: %w", err)
	}
	return copies, nil
}

// AdjustAvailableCopies adds delta to a book's available_copies.
// The caller's availability check and this update are separate statements.
func (c *Client) AdjustAvailableCopies(ctx context.Context, bookID int64, delta int) (err error) {
	ctx, done := c.track(ctx, "adjustAvailableCopies")
	defer func() { done(err) }()

	tag, err := c.pool.Exec(ctx,
		"UPDATE books SET available_copies = available_copies + $1 WHERE id = $2", delta, bookID)
	if err != nil {
		return fmt.Errorf("failed to update available copies: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("book")
	}
	return nil
}

// InsertBookLog appends a ledger entry
func (c *Client) InsertBookLog(ctx context.Context, bookID int64, action models.BookAction, userEmail string) (err error) {
	ctx, done := c.track(ctx, "insertBookLog")
	defer func() { done(err) }()

	_, err = c.pool.Exec(ctx,
		"INSERT INTO book_logs (book_id, action, user_email) VALUES ($1, $2, $3)",
		bookID, action, userEmail,
	)
	if err != nil {
		return fmt.Errorf("failed to insert book log: %w", err)
	}
	return nil
}
