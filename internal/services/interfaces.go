package services

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
)

// AuthServiceInterface defines the interface for signup and login
type AuthServiceInterface interface {
	Signup(ctx context.Context, req *models.SignupRequest) error
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
}

// DirectoryServiceInterface defines the interface for the read-only listings
type DirectoryServiceInterface interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	ListAssociationMembers(ctx context.Context) ([]models.Row, error)
}

// ConnectRequestServiceInterface defines the student→teacher connect workflow
type ConnectRequestServiceInterface interface {
	Create(ctx context.Context, studentEmail string, teacherID int64) error
	ListPending(ctx context.Context, teacherEmail string) ([]models.PendingConnectRequest, error)
	Accept(ctx context.Context, requestID int64) error
}

// LibraryServiceInterface defines the book ledger operations
type LibraryServiceInterface interface {
	ListBooks(ctx context.Context) ([]models.Row, error)
	RequestBook(ctx context.Context, bookID int64, userEmail string) error
	ReturnBook(ctx context.Context, bookID int64, userEmail string) error
}

// ChatServiceInterface defines chat history operations
type ChatServiceInterface interface {
	Save(ctx context.Context, msg *models.ChatMessage) error
	History(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error)
}

// Notifier delivers realtime notifications to connected clients.
// Delivery is best effort and never reports failure.
type Notifier interface {
	NotifyConnectionAccepted(ctx context.Context, evt models.ConnectionAccepted)
}

// The store interfaces below are satisfied by the repository package.

// UserStore defines user account access
type UserStore interface {
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, email, password, userType string) error
	FindByCredentials(ctx context.Context, email, password, userType string) (*models.User, error)
	FindStudentID(ctx context.Context, email string) (int64, error)
	FindTeacherID(ctx context.Context, email string) (int64, error)
	GetEmailByID(ctx context.Context, id int64) (string, error)
}

// DirectoryStore defines directory listing access
type DirectoryStore interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	AssociationTableExists(ctx context.Context) (bool, error)
	ListAssociationMembers(ctx context.Context) ([]models.Row, error)
}

// ConnectRequestStore defines connect request access
type ConnectRequestStore interface {
	Exists(ctx context.Context, studentID, teacherID int64) (bool, error)
	Create(ctx context.Context, studentID, teacherID int64) error
	ListPending(ctx context.Context, teacherID int64) ([]models.PendingConnectRequest, error)
	GetByID(ctx context.Context, id int64) (*models.ConnectRequest, error)
	UpdateStatus(ctx context.Context, id int64, status models.ConnectStatus) error
}

// BookStore defines library ledger access
type BookStore interface {
	List(ctx context.Context) ([]models.Row, error)
	AvailableCopies(ctx context.Context, bookID int64) (int, error)
	AdjustCopies(ctx context.Context, bookID int64, delta int) error
	AppendLog(ctx context.Context, bookID int64, action models.BookAction, userEmail string) error
}

// ChatStore defines chat history access
type ChatStore interface {
	Save(ctx context.Context, msg *models.ChatMessage) error
	Conversation(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error)
}
