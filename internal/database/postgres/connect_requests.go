package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
)

// ConnectRequestExists reports whether any request from student to teacher
// exists, whatever its status
func (c *Client) ConnectRequestExists(ctx context.Context, studentID, teacherID int64) (exists bool, err error) {
	ctx, done := c.track(ctx, "connectRequestExists")
	defer func() { done(err) }()

	err = c.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM teacher_connect_requests WHERE student_id = $1 AND teacher_id = $2)",
		studentID, teacherID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check connect request: %w", err)
	}
	return exists, nil
}

// CreateConnectRequest inserts a pending request
func (c *Client) CreateConnectRequest(ctx context.Context, studentID, teacherID int64) (err error) {
	ctx, done := c.track(ctx, "createConnectRequest")
	defer func() { done(err) }()

	_, err = c.pool.Exec(ctx,
		"INSERT INTO teacher_connect_requests (student_id, teacher_id, status) VALUES ($1, $2, $3)",
		studentID, teacherID, models.ConnectStatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to create connect request: %w", err)
	}
	return nil
}

// ListPendingConnectRequests returns the pending requests addressed to a teacher
func (c *Client) ListPendingConnectRequests(ctx context.Context, teacherID int64) (requests []models.PendingConnectRequest, err error) {
	ctx, done := c.track(ctx, "listPendingConnectRequests")
	defer func() { done(err) }()

	query := `
		SELECT r.id, u.email
		FROM teacher_connect_requests r
		JOIN users u ON r.student_id = u.id
		WHERE r.teacher_id = $1 AND r.status = $2
		ORDER BY r.id
	`

	rows, err := c.pool.Query(ctx, query, teacherID, models.ConnectStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to query connect requests: %w", err)
	}

	requests, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.PendingConnectRequest, error) {
		var r models.PendingConnectRequest
		err := row.Scan(&r.ID, &r.StudentEmail)
		return r, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan connect requests: %w", err)
	}
	return requests, nil
}

// GetConnectRequest returns a request by id
func (c *Client) GetConnectRequest(ctx context.Context, id int64) (req *models.ConnectRequest, err error) {
	ctx, done := c.track(ctx, "getConnectRequest")
	defer func() { done(err) }()

	req = &models.ConnectRequest{}
	err = c.pool.QueryRow(ctx,
		"SELECT id, student_id, teacher_id, status FROM teacher_connect_requests WHERE id = $1", id,
	).Scan(&req.ID, &req.StudentID, &req.TeacherID, &req.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("connect request")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get connect request: %w", err)
	}
	return req, nil
}

// UpdateConnectRequestStatus sets the status of a request
func (c *Client) UpdateConnectRequestStatus(ctx context.Context, id int64, status models.ConnectStatus) (err error) {
	ctx, done := c.track(ctx, "updateConnectRequestStatus")
	defer func() { done(err) }()

	tag, err := c.pool.Exec(ctx,
		"UPDATE teacher_connect_requests SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update connect request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundError("connect request")
	}
	return nil
}
