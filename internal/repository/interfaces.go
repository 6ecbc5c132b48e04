package repository

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
)

// The data source interfaces below are implemented by *postgres.Client.
// Repositories depend on them so they can be tested without a database.

// UserDataSource defines user account storage operations
type UserDataSource interface {
	UserExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, email, password, userType string) error
	FindUserByCredentials(ctx context.Context, email, password, userType string) (*models.User, error)
	FindUserIDByEmailAndType(ctx context.Context, email, userType string) (int64, error)
	GetUserEmailByID(ctx context.Context, id int64) (string, error)
}

// DirectoryDataSource defines read-only directory listings
type DirectoryDataSource interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	ListTeachers(ctx context.Context) ([]models.Teacher, error)
	AssociationTableExists(ctx context.Context) (bool, error)
	ListAssociationMembers(ctx context.Context) ([]models.Row, error)
}

// ConnectRequestDataSource defines connect request storage operations
type ConnectRequestDataSource interface {
	ConnectRequestExists(ctx context.Context, studentID, teacherID int64) (bool, error)
	CreateConnectRequest(ctx context.Context, studentID, teacherID int64) error
	ListPendingConnectRequests(ctx context.Context, teacherID int64) ([]models.PendingConnectRequest, error)
	GetConnectRequest(ctx context.Context, id int64) (*models.ConnectRequest, error)
	UpdateConnectRequestStatus(ctx context.Context, id int64, status models.ConnectStatus) error
}

// BookDataSource defines library ledger storage operations
type BookDataSource interface {
	ListBooks(ctx context.Context) ([]models.Row, error)
	GetAvailableCopies(ctx context.Context, bookID int64) (int, error)
	AdjustAvailableCopies(ctx context.Context, bookID int64, delta int) error
	InsertBookLog(ctx context.Context, bookID int64, action models.BookAction, userEmail string) error
}

// ChatDataSource defines chat history storage operations
type ChatDataSource interface {
	InsertChatMessage(ctx context.Context, msg *models.ChatMessage) error
	ListChatMessages(ctx context.Context, studentEmail, teacherEmail string) ([]models.ChatHistoryEntry, error)
}
