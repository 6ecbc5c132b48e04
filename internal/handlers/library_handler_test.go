package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/psgtech/campus-portal-api/internal/models"
	"github.com/psgtech/campus-portal-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLibraryRouter(service *mockLibraryService) *gin.Engine {
	handler := NewLibraryHandler(service)
	router := gin.New()
	router.GET("/books", handler.ListBooks)
	router.POST("/request-book", handler.RequestBook)
	router.POST("/return-book", handler.ReturnBook)
	return router
}

func TestLibraryHandler_RequestBook(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
		wantBody   string
	}{
		{name: "success", body: `{"bookId":1,"userEmail":"s@psgtech.ac.in"}`, callsSvc: true, wantStatus: http.StatusOK, wantBody: `{"message":"Book requested successfully"}`},
		{name: "missing email", body: `{"bookId":1}`, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Missing book ID or user email"}`},
		{name: "missing book", body: `{"userEmail":"s@psgtech.ac.in"}`, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Missing book ID or user email"}`},
		{name: "not found", body: `{"bookId":"1","userEmail":"s@psgtech.ac.in"}`, serviceErr: services.ErrBookNotFound, callsSvc: true, wantStatus: http.StatusNotFound, wantBody: `{"error":"Book not found"}`},
		{name: "unavailable", body: `{"bookId":1,"userEmail":"s@psgtech.ac.in"}`, serviceErr: services.ErrBookNotAvailable, callsSvc: true, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Book not available"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(mockLibraryService)
			if tt.callsSvc {
				service.On("RequestBook", mock.Anything, int64(1), "s@psgtech.ac.in").Return(tt.serviceErr)
			}

			w := perform(newLibraryRouter(service), "POST", "/request-book", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			service.AssertExpectations(t)
		})
	}
}

func TestLibraryHandler_ReturnBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		service := new(mockLibraryService)
		service.On("ReturnBook", mock.Anything, int64(3), "s@psgtech.ac.in").Return(nil)

		w := perform(newLibraryRouter(service), "POST", "/return-book", `{"bookId":3,"userEmail":"s@psgtech.ac.in"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Book returned successfully"}`, w.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		service := new(mockLibraryService)
		service.On("ReturnBook", mock.Anything, int64(3), "s@psgtech.ac.in").Return(services.ErrBookNotFound)

		w := perform(newLibraryRouter(service), "POST", "/return-book", `{"bookId":3,"userEmail":"s@psgtech.ac.in"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Book not found"}`, w.Body.String())
	})
}

func TestLibraryHandler_ListBooks(t *testing.T) {
	service := new(mockLibraryService)
	service.On("ListBooks", mock.Anything).Return([]models.Row{
		{"id": int32(1), "title": "Go", "available_copies": int32(2)},
	}, nil)

	w := perform(newLibraryRouter(service), "GET", "/books", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"title":"Go","available_copies":2}]`, w.Body.String())
}
