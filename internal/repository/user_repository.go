package repository

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/cache"
	"github.com/psgtech/campus-portal-api/internal/models"
)

// UserRepository handles user account data access
type UserRepository struct {
	source UserDataSource
	cache  *cache.DirectoryCache
}

// NewUserRepository creates a new user repository. dc is the directory cache
// whose teacher listing a teacher signup invalidates; it may be nil.
func NewUserRepository(source UserDataSource, dc *cache.DirectoryCache) *UserRepository {
	return &UserRepository{source: source, cache: dc}
}

// Exists reports whether an account with the email exists
func (r *UserRepository) Exists(ctx context.Context, email string) (bool, error) {
	return r.source.UserExists(ctx, email)
}

// Create stores a new account
func (r *UserRepository) Create(ctx context.Context, email, password, userType string) error {
	if err := r.source.CreateUser(ctx, email, password, userType); err != nil {
		return err
	}
	if userType == models.RoleTeacher {
		r.cache.Invalidate(cache.TeachersKey)
	}
	return nil
}

// FindByCredentials returns the account matching email, password and role
func (r *UserRepository) FindByCredentials(ctx context.Context, email, password, userType string) (*models.User, error) {
	return r.source.FindUserByCredentials(ctx, email, password, userType)
}

// FindStudentID resolves a student account id by email
func (r *UserRepository) FindStudentID(ctx context.Context, email string) (int64, error) {
	return r.source.FindUserIDByEmailAndType(ctx, email, models.RoleStudent)
}

// FindTeacherID resolves a teacher account id by email
func (r *UserRepository) FindTeacherID(ctx context.Context, email string) (int64, error) {
	return r.source.FindUserIDByEmailAndType(ctx, email, models.RoleTeacher)
}

// GetEmailByID returns the email of an account
func (r *UserRepository) GetEmailByID(ctx context.Context, id int64) (string, error) {
	return r.source.GetUserEmailByID(ctx, id)
}
