package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/internal/services"
)

const msgMissingBookFields = "Missing book ID or user email"

type LibraryHandler struct {
	service services.LibraryServiceInterface
}

func NewLibraryHandler(service services.LibraryServiceInterface) *LibraryHandler {
	return &LibraryHandler{service: service}
}

// ListBooks handles GET /books
func (h *LibraryHandler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// RequestBook handles POST /request-book
func (h *LibraryHandler) RequestBook(c *gin.Context) {
	h.ledgerAction(c, h.service.RequestBook, "Book requested successfully")
}

// ReturnBook handles POST /return-book
func (h *LibraryHandler) ReturnBook(c *gin.Context) {
	h.ledgerAction(c, h.service.ReturnBook, "Book returned successfully")
}

func (h *LibraryHandler) ledgerAction(c *gin.Context, action func(context.Context, int64, string) error, success string) {
	var req models.BookLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgMissingBookFields, bindError(err))
		return
	}

	err := action(c.Request.Context(), req.BookID.Int64(), req.UserEmail)
	switch {
	case err == nil:
		respondMessage(c, success)
	case errors.Is(err, services.ErrBookNotFound):
		respondError(c, http.StatusNotFound, "Book not found", err)
	case errors.Is(err, services.ErrBookNotAvailable):
		respondError(c, http.StatusBadRequest, "Book not available", err)
	default:
		respondInternalError(c, err)
	}
}
