package repository

import (
	"context"

	"github.com/psgtech/campus-portal-api/internal/models"
)

// ConnectRequestRepository handles connect request data access
type ConnectRequestRepository struct {
	source ConnectRequestDataSource
}

// NewConnectRequestRepository creates a new connect request repository
func NewConnectRequestRepository(source ConnectRequestDataSource) *ConnectRequestRepository {
	return &ConnectRequestRepository{source: source}
}

// Exists reports whether the student already sent a request to the teacher
func (r *ConnectRequestRepository) Exists(ctx context.Context, studentID, teacherID int64) (bool, error) {
	return r.source.ConnectRequestExists(ctx, studentID, teacherID)
}

// Create stores a pending request
func (r *ConnectRequestRepository) Create(ctx context.Context, studentID, teacherID int64) error {
	return r.source.CreateConnectRequest(ctx, studentID, teacherID)
}

// ListPending returns the pending requests addressed to a teacher
func (r *ConnectRequestRepository) ListPending(ctx context.Context, teacherID int64) ([]models.PendingConnectRequest, error) {
	return r.source.ListPendingConnectRequests(ctx, teacherID)
}

// GetByID retrieves a single request
func (r *ConnectRequestRepository) GetByID(ctx context.Context, id int64) (*models.ConnectRequest, error) {
	return r.source.GetConnectRequest(ctx, id)
}

// UpdateStatus sets the status of a request
func (r *ConnectRequestRepository) UpdateStatus(ctx context.Context, id int64, status models.ConnectStatus) error {
	return r.source.UpdateConnectRequestStatus(ctx, id, status)
}
