package models

// User roles stored in users.user_type. Other values are accepted at signup.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// SignupRequest is the payload for POST /signup.
// Passwords are stored and compared as plain text.
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// LoginRequest is the payload for POST /login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
}

// MessageResponse is the success body of every non-list endpoint
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the failure body of every endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}

// User is a users row without its credential column
type User struct {
	ID       int64
	Email    string
	UserType string
}
