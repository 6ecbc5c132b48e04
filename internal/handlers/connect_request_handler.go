package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/internal/services"
)

type ConnectRequestHandler struct {
	service services.ConnectRequestServiceInterface
}

func NewConnectRequestHandler(service services.ConnectRequestServiceInterface) *ConnectRequestHandler {
	return &ConnectRequestHandler{service: service}
}

// Create handles POST /teacher-connect-request
func (h *ConnectRequestHandler) Create(c *gin.Context) {
	var req models.CreateConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgMissingFields, bindError(err))
		return
	}

	err := h.service.Create(c.Request.Context(), req.StudentEmail, req.TeacherID.Int64())
	switch {
	case err == nil:
		respondMessage(c, "Request sent")
	case errors.Is(err, services.ErrStudentNotFound):
		respondError(c, http.StatusBadRequest, "Student not found", err)
	case errors.Is(err, services.ErrRequestAlreadySent):
		respondError(c, http.StatusBadRequest, "Request already sent", err)
	default:
		respondInternalError(c, err)
	}
}

// ListPending handles GET /teacher-connect-requests?teacherEmail=
func (h *ConnectRequestHandler) ListPending(c *gin.Context) {
	teacherEmail := c.Query("teacherEmail")
	if teacherEmail == "" {
		respondError(c, http.StatusBadRequest, "Missing teacher email", nil)
		return
	}

	requests, err := h.service.ListPending(c.Request.Context(), teacherEmail)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, requests)
	case errors.Is(err, services.ErrTeacherNotFound):
		respondError(c, http.StatusBadRequest, "Teacher not found", err)
	default:
		respondInternalError(c, err)
	}
}

// Accept handles POST /accept-teacher-connect-request
func (h *ConnectRequestHandler) Accept(c *gin.Context) {
	var req models.AcceptConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Missing request ID", bindError(err))
		return
	}

	err := h.service.Accept(c.Request.Context(), req.RequestID.Int64())
	switch {
	case err == nil:
		respondMessage(c, "Request accepted")
	case errors.Is(err, services.ErrRequestNotFound):
		respondError(c, http.StatusBadRequest, "Request not found", err)
	case errors.Is(err, services.ErrStudentNotFound):
		respondError(c, http.StatusBadRequest, "Student not found", err)
	case errors.Is(err, services.ErrTeacherNotFound):
		respondError(c, http.StatusBadRequest, "Teacher not found", err)
	default:
		respondInternalError(c, err)
	}
}
