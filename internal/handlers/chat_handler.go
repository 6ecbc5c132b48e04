package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/services"
)

type ChatHandler struct {
	service services.ChatServiceInterface
}

func NewChatHandler(service services.ChatServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// History handles GET /chat-messages?studentEmail=&teacherEmail=
func (h *ChatHandler) History(c *gin.Context) {
	studentEmail := c.Query("studentEmail")
	teacherEmail := c.Query("teacherEmail")
	if studentEmail == "" || teacherEmail == "" {
		respondError(c, http.StatusBadRequest, "Missing studentEmail or teacherEmail", nil)
		return
	}

	messages, err := h.service.History(c.Request.Context(), studentEmail, teacherEmail)
	if err != nil {
		respondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
