package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/internal/services"
	apperrors "github.com/psgtech/campus-portal-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthRouter(service *mockAuthService) *gin.Engine {
	handler := NewAuthHandler(service)
	router := gin.New()
	router.POST("/signup", handler.Signup)
	router.POST("/login", handler.Login)
	return router
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"email":"a@psgtech.ac.in","password":"pw1","userType":"student"}`,
			callsSvc:   true,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"Signup successful"}`,
		},
		{
			name:       "missing password",
			body:       `{"email":"a@psgtech.ac.in","userType":"student"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "empty body",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Missing required fields"}`,
		},
		{
			name:       "bad domain",
			body:       `{"email":"a@gmail.com","password":"pw1","userType":"student"}`,
			serviceErr: services.ErrInvalidDomain,
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid email domain"}`,
		},
		{
			name:       "user exists",
			body:       `{"email":"a@psgtech.ac.in","password":"pw1","userType":"student"}`,
			serviceErr: services.ErrUserExists,
			callsSvc:   true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"User already exists"}`,
		},
		{
			name:       "store failure",
			body:       `{"email":"a@psgtech.ac.in","password":"pw1","userType":"student"}`,
			serviceErr: apperrors.InternalError("failed to create user", assert.AnError),
			callsSvc:   true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockAuthService)
			if tt.callsSvc {
				service.On("Signup", mock.Anything, mock.AnythingOfType("*models.SignupRequest")).Return(tt.serviceErr)
			}

			w := perform(newAuthRouter(service), "POST", "/signup", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			if !tt.callsSvc {
				service.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		service := new(mockAuthService)
		service.On("Login", mock.Anything, &models.LoginRequest{Email: "a@psgtech.ac.in", Password: "wrong", UserType: "student"}).
			Return(nil, services.ErrInvalidCredentials)

		w := perform(newAuthRouter(service), "POST", "/login", `{"email":"a@psgtech.ac.in","password":"wrong","userType":"student"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
	})

	t.Run("success", func(t *testing.T) {
		service := new(mockAuthService)
		service.On("Login", mock.Anything, mock.Anything).
			Return(&models.User{ID: 1, Email: "a@psgtech.ac.in", UserType: "student"}, nil)

		w := perform(newAuthRouter(service), "POST", "/login", `{"email":"a@psgtech.ac.in","password":"pw1","userType":"student"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Login successful"}`, w.Body.String())
	})

	t.Run("bad domain", func(t *testing.T) {
		service := new(mockAuthService)
		service.On("Login", mock.Anything, mock.Anything).Return(nil, services.ErrInvalidDomain)

		w := perform(newAuthRouter(service), "POST", "/login", `{"email":"a@gmail.com","password":"pw1","userType":"student"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid email domain"}`, w.Body.String())
	})

	t.Run("malformed json", func(t *testing.T) {
		service := new(mockAuthService)

		w := perform(newAuthRouter(service), "POST", "/login", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields"}`, w.Body.String())
	})
}
