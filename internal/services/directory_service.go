package services

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
)

// DirectoryService serves the read-only listings: events, teachers and
// association members
type DirectoryService struct {
	store DirectoryStore
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(store DirectoryStore) *DirectoryService {
	return &DirectoryService{store: store}
}

func (s *DirectoryService) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list events", err)
	}
	return events, nil
}

func (s *DirectoryService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.store.ListTeachers(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list teachers", err)
	}
	return teachers, nil
}

// ListAssociationMembers returns ErrTableMissing when the deployment has no
// association_members table
func (s *DirectoryService) ListAssociationMembers(ctx context.Context) ([]models.Row, error) {
	exists, err := s.store.AssociationTableExists(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to check association table", err)
	}
	if !exists {
		return nil, ErrTableMissing
	}

	members, err := s.store.ListAssociationMembers(ctx)
	if err != nil {
		return nil, apperrors.InternalError("failed to list association members", err)
	}
	return members, nil
}
