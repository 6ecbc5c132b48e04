package services_test

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of services.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, email, password, userType string) error {
	args := m.Called(ctx, email, password, userType)
	return args.Error(0)
}

func (m *MockUserStore) FindByCredentials(ctx context.Context, email, password, userType string) (*models.User, error) {
	args := m.Called(ctx, email, password, userType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) FindStudentID(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) FindTeacherID(ctx context.Context, email string) (int64, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) GetEmailByID(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// MockDirectoryStore is a mock implementation of services.DirectoryStore
type MockDirectoryStore struct {
	mock.Mock
}

func (m *MockDirectoryStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *MockDirectoryStore) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Teacher), args.Error(1)
}

func (m *MockDirectoryStore) AssociationTableExists(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockDirectoryStore) ListAssociationMembers(ctx context.Context) ([]models.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Row), args.Error(1)
}

// MockConnectRequestStore is a mock implementation of services.ConnectRequestStore
type MockConnectRequestStore struct {
	mock.Mock
}

func (m *MockConnectRequestStore) Exists(ctx context.Context, studentID, teacherID int64) (bool, error) {
	args := m.Called(ctx, studentID, teacherID)
	return args.Bool(0), args.Error(1)
}

func (m *MockConnectRequestStore) Create(ctx context.Context, studentID, teacherID int64) error {
	args := m.Called(ctx, studentID, teacherID)
	return args.Error(0)
}

func (m *MockConnectRequestStore) ListPending(ctx context.Context, teacherID int64) ([]models.PendingConnectRequest, error) {
	args := m.Called(ctx, teacherID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PendingConnectRequest), args.Error(1)
}

func (m *MockConnectRequestStore) GetByID(ctx context.Context, id int64) (*models.ConnectRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConnectRequest), args.Error(1)
}

func (m *MockConnectRequestStore) UpdateStatus(ctx context.Context, id int64, status models.ConnectStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockBookStore is a mock implementation of services.BookStore
type MockBookStore struct {
	mock.Mock
}

func (m *MockBookStore) List(ctx context.Context) ([]models.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Row), args.Error(1)
}

func (m *MockBookStore) AvailableCopies(ctx context.Context, bookID int64) (int, error) {
	args := m.Called(ctx, bookID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookStore) AdjustCopies(ctx context.Context, bookID int64, delta int) error {
	args := m.Called(ctx, bookID, delta)
	return args.Error(0)
}

func (m *MockBookStore) AppendLog(ctx context.Context, bookID int64, action models.BookAction, userEmail string) error {
	args := m.Called(ctx, bookID, action, userEmail)
	return args.Error(0)
}

// MockChatStore is a mock implementation of services.ChatStore
type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) Save(ctx context.Context, msg *models.ChatMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockChatStore) Conversation(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error) {
	args := m.Called(ctx, studentEmail, teacherEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatHistoryEntry), args.Error(1)
}

// MockNotifier is a mock implementation of services.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyConnectionAccepted(ctx context.Context, evt models.ConnectionAccepted) {
	m.Called(ctx, evt)
}
