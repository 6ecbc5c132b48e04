package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/models"
)

const msgInternalError = "Internal server error"

// attachError attaches err to the gin context for the request log
func attachError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err) //nolint:errcheck
	}
}

// respondError sends {"error": message} and keeps err for the request log
func respondError(c *gin.Context, status int, message string, err error) {
	attachError(c, err)
	c.JSON(status, models.ErrorResponse{Error: message})
}

// respondInternalError hides err from the client and keeps it for the log
func respondInternalError(c *gin.Context, err error) {
	respondError(c, http.StatusInternalServerError, msgInternalError, err)
}

// respondMessage sends the {"message": ...} success body
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, models.MessageResponse{Message: message})
}
