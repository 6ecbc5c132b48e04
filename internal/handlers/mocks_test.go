package handlers

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, req *models.SignupRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockDirectoryService struct {
	mock.Mock
}

func (m *mockDirectoryService) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *mockDirectoryService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *mockDirectoryService) ListAssociationMembers(ctx context.Context) ([]models.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Row), args.Error(1)
}

type mockConnectRequestService struct {
	mock.Mock
}

func (m *mockConnectRequestService) Create(ctx context.Context, studentEmail string, teacherID int64) error {
	args := m.Called(ctx, studentEmail, teacherID)
	return args.Error(0)
}

func (m *mockConnectRequestService) ListPending(ctx context.Context, teacherEmail string) ([]models.PendingConnectRequest, error) {
	args := m.Called(ctx, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PendingConnectRequest), args.Error(1)
}

func (m *mockConnectRequestService) Accept(ctx context.Context, requestID int64) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

type mockLibraryService struct {
	mock.Mock
}

func (m *mockLibraryService) ListBooks(ctx context.Context) ([]models.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *mockLibraryService) RequestBook(ctx context.Context, bookID int64, userEmail string) error {
	args := m.Called(ctx, bookID, userEmail)
	return args.Error(0)
}

func (m *mockLibraryService) ReturnBook(ctx context.Context, bookID int64, userEmail string) error {
	args := m.Called(ctx, bookID, userEmail)
	return args.Error(0)
}

type mockChatService struct {
	mock.Mock
}

func (m *mockChatService) Save(ctx context.Context, msg *models.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockChatService) History(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error) {
	args := m.Called(ctx, studentEmail, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatHistoryEntry), args.Error(1)
}
