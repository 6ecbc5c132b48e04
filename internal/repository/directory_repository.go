package repository

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/cache"
	"github.com/psgtech/campus-portal-api/internal/models"
)

// DirectoryRepository serves events, teachers and association members.
// Events and teachers go through the directory cache.
type DirectoryRepository struct {
	source DirectoryDataSource
	cache  *cache.DirectoryCache
}

// NewDirectoryRepository creates a new directory repository. dc may be nil.
func NewDirectoryRepository(source DirectoryDataSource, dc *cache.DirectoryCache) *DirectoryRepository {
	return &DirectoryRepository{
		source: source,
		cache:  dc,
	}
}

// ListEvents returns all events ordered by date
func (r *DirectoryRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.EventsKey, r.source.ListEvents)
}

// ListTeachers returns all teachers with their profile data
func (r *DirectoryRepository) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return cache.GetOrLoad(ctx, r.cache, cache.TeachersKey, r.source.ListTeachers)
}

// AssociationTableExists reports whether the association members table is present
func (r *DirectoryRepository) AssociationTableExists(ctx context.Context) (bool, error) {
	return r.source.AssociationTableExists(ctx)
}

// ListAssociationMembers returns all association members ordered by name
func (r *DirectoryRepository) ListAssociationMembers(ctx context.Context) ([]models.Row, error) {
	return r.source.ListAssociationMembers(ctx)
}
