package models

// BookAction is the action recorded in book_logs
type BookAction string

const (
	BookActionRequest BookAction = "request"
	BookActionReturn  BookAction = "return"
)

// BookLedgerRequest is the payload for POST /request-book and POST /return-book
type BookLedgerRequest struct {
	BookID    FlexID `json:"bookId" binding:"required"`
	UserEmail string `json:"userEmail" binding:"required"`
}
