package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/services"
)

type DirectoryHandler struct {
	service services.DirectoryServiceInterface
}

func NewDirectoryHandler(service services.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: service}
}

// Events handles GET /events
func (h *DirectoryHandler) Events(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// Teachers handles GET /teachers
func (h *DirectoryHandler) Teachers(c *gin.Context) {
	teachers, err := h.service.ListTeachers(c.Request.Context())
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, teachers)
}

// AssociationMembers handles GET /association-members
func (h *DirectoryHandler) AssociationMembers(c *gin.Context) {
	members, err := h.service.ListAssociationMembers(c.Request.Context())
	switch {
	case err == nil:
		c.JSON(http.StatusOK, members)
	case errors.Is(err, services.ErrTableMissing):
		respondError(c, http.StatusInternalServerError, "Association members table does not exist", err)
	default:
		respondInternalError(c, err)
	}
}
