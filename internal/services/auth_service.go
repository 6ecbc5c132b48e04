package services

import (
	"context"
	"errors"
	"strings"

	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"go.uber.org/zap"
)

// AuthService handles signup and login against the users table.
//
// Credentials are stored and compared as plain text. This is a known
// security defect kept for compatibility with existing user rows.
type AuthService struct {
	users       UserStore
	emailDomain string
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore, emailDomain string) *AuthService {
	return &AuthService{
		users:       users,
		emailDomain: emailDomain,
	}
}

// IsAllowedDomain reports whether the part of email after its first '@' and
// before any further '@' equals domain exactly
func IsAllowedDomain(email, domain string) bool {
	parts := strings.Split(email, "@")
	return len(parts) > 1 && parts[1] == domain
}

// Signup creates an account when the email is inside the institutional
// domain and not yet registered
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) error {
	if !IsAllowedDomain(req.Email, s.emailDomain) {
		metrics.AuthAttempts.WithLabelValues("signup", "invalid_domain").Inc()
		return ErrInvalidDomain
	}

	exists, err := s.users.Exists(ctx, req.Email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("signup", "error").Inc()
		return apperrors.InternalError("failed to check existing user", err)
	}
	if exists {
		metrics.AuthAttempts.WithLabelValues("signup", "user_exists").Inc()
		return ErrUserExists
	}

	if err := s.users.Create(ctx, req.Email, req.Password, req.UserType); err != nil {
		metrics.AuthAttempts.WithLabelValues("signup", "error").Inc()
		return apperrors.InternalError("failed to create user", err)
	}

	metrics.AuthAttempts.WithLabelValues("signup", "success").Inc()
	logger.Info("User signed up", zap.String("email", req.Email), zap.String("user_type", req.UserType))
	return nil
}

// Login checks that an account matches email, password and role together
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	if !IsAllowedDomain(req.Email, s.emailDomain) {
		metrics.AuthAttempts.WithLabelValues("login", "invalid_domain").Inc()
		return nil, ErrInvalidDomain
	}

	user, err := s.users.FindByCredentials(ctx, req.Email, req.Password, req.UserType)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.AuthAttempts.WithLabelValues("login", "invalid_credentials").Inc()
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "error").Inc()
		return nil, apperrors.InternalError("failed to look up credentials", err)
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	logger.Debug("User logged in", zap.String("email", user.Email), zap.String("user_type", user.UserType))
	return user, nil
}
