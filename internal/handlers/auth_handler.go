package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/internal/services"
)

const msgMissingFields = "Missing required fields"

type AuthHandler struct {
	service services.AuthServiceInterface
}

func NewAuthHandler(service services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgMissingFields, bindError(err))
		return
	}

	err := h.service.Signup(c.Request.Context(), &req)
	switch {
	case err == nil:
		respondMessage(c, "Signup successful")
	case errors.Is(err, services.ErrInvalidDomain):
		respondError(c, http.StatusBadRequest, "Invalid email domain", err)
	case errors.Is(err, services.ErrUserExists):
		respondError(c, http.StatusBadRequest, "User already exists", err)
	default:
		respondInternalError(c, err)
	}
}

// Login handles POST /login. Success carries only a message; no session is
// issued.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgMissingFields, bindError(err))
		return
	}

	_, err := h.service.Login(c.Request.Context(), &req)
	switch {
	case err == nil:
		respondMessage(c, "Login successful")
	case errors.Is(err, services.ErrInvalidDomain):
		respondError(c, http.StatusBadRequest, "Invalid email domain", err)
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Invalid credentials", err)
	default:
		respondInternalError(c, err)
	}
}
