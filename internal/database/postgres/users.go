package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
)

// UserExists reports whether any user row carries the email, regardless of role
func (c *Client) UserExists(ctx context.Context, email string) (exists bool, err error) {
	ctx, done := c.track(ctx, "userExists")
	defer func() { done(err) }()

	err = c.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

// CreateUser inserts a user row. The password is stored as given.
func (c *Client) CreateUser(ctx context.Context, email, password, userType string) (err error) {
	ctx, done := c.track(ctx, "createUser")
	defer func() { done(err) }()

	_, err = c.pool.Exec(ctx,
		"INSERT INTO users (email, password, user_type) VALUES ($1, $2, $3)",
		email, password, userType,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByCredentials returns the user matching all three of email,
// password and role
func (c *Client) FindUserByCredentials(ctx context.Context, email, password, userType string) (user *models.User, err error) {
	ctx, done := c.track(ctx, "findUserByCredentials")
	defer func() { done(err) }()

	user = &models.User{}
	err = c.pool.QueryRow(ctx,
		"SELECT id, email, user_type FROM users WHERE email = $1 AND password = $2 AND user_type = $3",
		email, password, userType,
	).Scan(&user.ID, &user.Email, &user.UserType)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("user")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserIDByEmailAndType resolves the id of a user with the given email and role
func (c *Client) FindUserIDByEmailAndType(ctx context.Context, email, userType string) (id int64, err error) {
	ctx, done := c.track(ctx, "findUserIdByEmailAndType")
	defer func() { done(err) }()

	err = c.pool.QueryRow(ctx,
		"SELECT id FROM users WHERE email = $1 AND user_type = $2",
		email, userType,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperrors.NotFoundError(userType)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find %s: %w", userType, err)
	}
	return id, nil
}

// GetUserEmailByID returns the email of the user with the given id
func (c *Client) GetUserEmailByID(ctx context.Context, id int64) (email string, err error) {
	ctx, done := c.track(ctx, "getUserEmailById")
	defer func() { done(err) }()

	err = c.pool.QueryRow(ctx, "SELECT email FROM users WHERE id = $1", id).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", apperrors.NotFoundError("user")
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user email: %w", err)
	}
	return email, nil
}
