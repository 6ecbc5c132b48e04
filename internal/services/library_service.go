package services

import (
	"context"
	"errors"

	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"go.uber.org/zap"
)

// LibraryService keeps the book ledger: the available_copies counter and the
// append-only book_logs.
//
// The availability check and the counter update are separate statements with
// no transaction, so concurrent requests for the last copy can both succeed
// and drive the counter negative.
type LibraryService struct {
	books BookStore
}

// NewLibraryService creates a new library service instance
func NewLibraryService(books BookStore) *LibraryService {
	return &LibraryService{books: books}
}

func (s *LibraryService) ListBooks(ctx context.Context) ([]models.Row, error) {
	books, err := s.books.List(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list books", err)
	}
	return books, nil
}

// RequestBook takes one copy out and logs a request action
func (s *LibraryService) RequestBook(ctx context.Context, bookID int64, userEmail string) error {
	copies, err := s.books.AvailableCopies(ctx, bookID)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.LedgerActions.WithLabelValues(string(models.BookActionRequest), "not_found").Inc()
		return ErrBookNotFound
	}
	if err != nil {
		metrics.LedgerActions.WithLabelValues(string(models.BookActionRequest), "error").Inc()
		return apperrors.InternalError("failed to read available copies", err)
	}
	if copies <= 0 {
		metrics.LedgerActions.WithLabelValues(string(models.BookActionRequest), "unavailable").Inc()
		return ErrBookNotAvailable
	}

	return s.record(ctx, bookID, -1, models.BookActionRequest, userEmail)
}

// ReturnBook puts one copy back and logs a return action. There is no upper
// bound on the counter.
func (s *LibraryService) ReturnBook(ctx context.Context, bookID int64, userEmail string) error {
	_, err := s.books.AvailableCopies(ctx, bookID)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.LedgerActions.WithLabelValues(string(models.BookActionReturn), "not_found").Inc()
		return ErrBookNotFound
	}
	if err != nil {
		metrics.LedgerActions.WithLabelValues(string(models.BookActionReturn), "error").Inc()
		return apperrors.InternalError("failed to read available copies", err)
	}

	return s.record(ctx, bookID, 1, models.BookActionReturn, userEmail)
}

func (s *LibraryService) record(ctx context.Context, bookID int64, delta int, action models.BookAction, userEmail string) error {
	if err := s.books.AdjustCopies(ctx, bookID, delta); err != nil {
		metrics.LedgerActions.WithLabelValues(string(action), "error").Inc()
		if errors.Is(err, apperrors.ErrNotFound) {
			return ErrBookNotFound
		}
		return apperrors.InternalError("failed to update available copies", err)
	}

	if err := s.books.AppendLog(ctx, bookID, action, userEmail); err != nil {
		metrics.LedgerActions.WithLabelValues(string(action), "error").Inc()
		return apperrors.InternalError("failed to append book log", err)
	}

	metrics.LedgerActions.WithLabelValues(string(action), "success").Inc()
	logger.Info("Book ledger updated",
		zap.Int64("book_id", bookID),
		zap.String("action", string(action)),
		zap.String("user_email", userEmail),
	)
	return nil
}
