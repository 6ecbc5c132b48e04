package repository

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
)

// BookRepository handles library ledger data access
type BookRepository struct {
	source BookDataSource
}

// NewBookRepository creates a new book repository
func NewBookRepository(source BookDataSource) *BookRepository {
	return &BookRepository{source: source}
}

// List returns every book ordered by title
func (r *BookRepository) List(ctx context.Context) ([]models.Row, error) {
	return r.source.ListBooks(ctx)
}

// AvailableCopies returns the current available_copies of a book
func (r *BookRepository) AvailableCopies(ctx context.Context, bookID int64) (int, error) {
	return r.source.GetAvailableCopies(ctx, bookID)
}

// AdjustCopies adds delta to the available copies of a book
func (r *BookRepository) AdjustCopies(ctx context.Context, bookID int64, delta int) error {
	return r.source.AdjustAvailableCopies(ctx, bookID, delta)
}

// AppendLog records a ledger action
func (r *BookRepository) AppendLog(ctx context.Context, bookID int64, action models.BookAction, userEmail string) error {
	return r.source.InsertBookLog(ctx, bookID, action, userEmail)
}
