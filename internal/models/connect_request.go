package models

// ConnectStatus is the state of a student→teacher connect request
type ConnectStatus string

const (
	ConnectStatusPending  ConnectStatus = "pending"
	ConnectStatusAccepted ConnectStatus = "accepted"
)

// CanTransitionTo reports whether the workflow allows moving to next.
// The only transition is pending → accepted.
func (s ConnectStatus) CanTransitionTo(next ConnectStatus) bool {
	return s == ConnectStatusPending && next == ConnectStatusAccepted
}

// ConnectRequest is a teacher_connect_requests row
type ConnectRequest struct {
	ID        int64
	StudentID int64
	TeacherID int64
	Status    ConnectStatus
}

// CreateConnectRequest is the payload for POST /teacher-connect-request
type CreateConnectRequest struct {
	StudentEmail string `json:"studentEmail" binding:"required"`
	TeacherID    FlexID `json:"teacherId" binding:"required"`
}

// AcceptConnectRequest is the payload for POST /accept-teacher-connect-request
type AcceptConnectRequest struct {
	RequestID FlexID `json:"requestId" binding:"required"`
}

// PendingConnectRequest is one entry of GET /teacher-connect-requests
type PendingConnectRequest struct {
	ID           int64  `json:"id"`
	StudentEmail string `json:"student_email"`
}

// ConnectionAccepted is the realtime notification sent to the student's room
type ConnectionAccepted struct {
	TeacherEmail string `json:"teacherEmail"`
	StudentEmail string `json:"studentEmail"`
}
