package services

import (
	"context"
	"errors"

	"github.com/psgtech/campus-portal-api/internal/models"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/psgtech/campus-portal-api/pkg/logger"
	"github.com/psgtech/campus-portal-api/pkg/metrics"
	"go.uber.org/zap"
)

// ConnectRequestService runs the pending → accepted workflow between a
// student and a teacher
type ConnectRequestService struct {
	users    UserStore
	requests ConnectRequestStore
	notifier Notifier
}

// NewConnectRequestService creates a new connect request service instance
func NewConnectRequestService(users UserStore, requests ConnectRequestStore, notifier Notifier) *ConnectRequestService {
	return &ConnectRequestService{
		users:    users,
		requests: requests,
		notifier: notifier,
	}
}

// Create records a pending request from the student to the teacher. A pair
// that already has a request in any status is rejected with
// ErrRequestAlreadySent, so a request cannot be re-sent after acceptance.
func (s *ConnectRequestService) Create(ctx context.Context, studentEmail string, teacherID int64) error {
	studentID, err := s.users.FindStudentID(ctx, studentEmail)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.ConnectRequests.WithLabelValues("create", "student_not_found").Inc()
		return ErrStudentNotFound
	}
	if err != nil {
		metrics.ConnectRequests.WithLabelValues("create", "error").Inc()
		return apperrors.InternalError("failed to resolve student", err)
	}

	exists, err := s.requests.Exists(ctx, studentID, teacherID)
	if err != nil {
		metrics.ConnectRequests.WithLabelValues("create", "error").Inc()
		return apperrors.InternalError("failed to check existing request", err)
	}
	if exists {
		metrics.ConnectRequests.WithLabelValues("create", "duplicate").Inc()
		return ErrRequestAlreadySent
	}

	if err := s.requests.Create(ctx, studentID, teacherID); err != nil {
		metrics.ConnectRequests.WithLabelValues("create", "error").Inc()
		return apperrors.InternalError("failed to create connect request", err)
	}

	metrics.ConnectRequests.WithLabelValues("create", "success").Inc()
	logger.Info("Connect request created",
		zap.String("student_email", studentEmail),
		zap.Int64("teacher_id", teacherID),
	)
	return nil
}

// ListPending returns the pending requests addressed to the teacher
func (s *ConnectRequestService) ListPending(ctx context.Context, teacherEmail string) ([]models.PendingConnectRequest, error) {
	teacherID, err := s.users.FindTeacherID(ctx, teacherEmail)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, ErrTeacherNotFound
	}
	if err != nil {
		return nil, apperrors.InternalError("failed to resolve teacher", err)
	}

	requests, err := s.requests.ListPending(ctx, teacherID)
	if err != nil {
		return nil, apperrors.InternalError("failed to list connect requests", err)
	}
	return requests, nil
}

// Accept moves a request to accepted and notifies the student's room.
// Accepting an already accepted request succeeds and notifies again.
func (s *ConnectRequestService) Accept(ctx context.Context, requestID int64) error {
	req, err := s.requests.GetByID(ctx, requestID)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.ConnectRequests.WithLabelValues("accept", "request_not_found").Inc()
		return ErrRequestNotFound
	}
	if err != nil {
		metrics.ConnectRequests.WithLabelValues("accept", "error").Inc()
		return apperrors.InternalError("failed to load connect request", err)
	}

	studentEmail, err := s.users.GetEmailByID(ctx, req.StudentID)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.ConnectRequests.WithLabelValues("accept", "student_not_found").Inc()
		return ErrStudentNotFound
	}
	if err != nil {
		metrics.ConnectRequests.WithLabelValues("accept", "error").Inc()
		return apperrors.InternalError("failed to resolve student", err)
	}

	teacherEmail, err := s.users.GetEmailByID(ctx, req.TeacherID)
	if errors.Is(err, apperrors.ErrNotFound) {
		metrics.ConnectRequests.WithLabelValues("accept", "teacher_not_found").Inc()
		return ErrTeacherNotFound
	}
	if err != nil {
		metrics.ConnectRequests.WithLabelValues("accept", "error").Inc()
		return apperrors.InternalError("failed to resolve teacher", err)
	}

	if req.Status.CanTransitionTo(models.ConnectStatusAccepted) {
		if err := s.requests.UpdateStatus(ctx, req.ID, models.ConnectStatusAccepted); err != nil {
			metrics.ConnectRequests.WithLabelValues("accept", "error").Inc()
			return apperrors.InternalError("failed to accept connect request", err)
		}
	} else {
		logger.Info("Connect request already accepted",
			zap.Int64("request_id", req.ID),
			zap.String("status", string(req.Status)),
		)
	}

	metrics.ConnectRequests.WithLabelValues("accept", "success").Inc()

	s.notifier.NotifyConnectionAccepted(ctx, models.ConnectionAccepted{
		TeacherEmail: teacherEmail,
		StudentEmail: studentEmail,
	})
	return nil
}
