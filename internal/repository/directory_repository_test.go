package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/psgtech/campus-portal-api/internal/cache"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDirectorySource struct {
	mock.Mock
}

func (m *mockDirectorySource) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *mockDirectorySource) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *mockDirectorySource) AssociationTableExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockDirectorySource) ListAssociationMembers(ctx context.Context) ([]models.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Row), args.Error(1)
}

func TestDirectoryRepository_ListEventsCached(t *testing.T) {
	source := new(mockDirectorySource)
	events := []models.Event{{Title: "Hackathon", Date: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)}}
	source.On("ListEvents", mock.Anything).Return(events, nil).Once()

	repo := NewDirectoryRepository(source, cache.NewDirectoryCache(time.Minute, false))

	for i := 0; i < 3; i++ {
		got, err := repo.ListEvents(context.Background())
		require.NoError(t, err)
		assert.Equal(t, events, got)
	}

	source.AssertNumberOfCalls(t, "ListEvents", 1)
}

func TestDirectoryRepository_ListTeachersUncached(t *testing.T) {
	source := new(mockDirectorySource)
	source.On("ListTeachers", mock.Anything).Return([]models.Teacher{{ID: 1, Email: "t@psgtech.ac.in"}}, nil)

	repo := NewDirectoryRepository(source, nil)

	_, err := repo.ListTeachers(context.Background())
	require.NoError(t, err)
	_, err = repo.ListTeachers(context.Background())
	require.NoError(t, err)

	source.AssertNumberOfCalls(t, "ListTeachers", 2)
}

func TestDirectoryRepository_ErrorPropagates(t *testing.T) {
	source := new(mockDirectorySource)
	source.On("ListTeachers", mock.Anything).Return(nil, errors.New("db down"))

	repo := NewDirectoryRepository(source, cache.NewDirectoryCache(time.Minute, false))

	_, err := repo.ListTeachers(context.Background())
	assert.EqualError(t, err, "db down")
}
