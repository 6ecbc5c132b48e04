package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the browser frontend from a directory
type StaticHandler struct {
	fs        http.FileSystem
	loginPage string
}

// NewStaticHandler serves files under dir. Directory listings are disabled.
func NewStaticHandler(dir, loginPage string) *StaticHandler {
	return &StaticHandler{
		fs:        gin.Dir(dir, false),
		loginPage: "/" + strings.TrimPrefix(loginPage, "/"),
	}
}

// LoginPage handles GET /
func (h *StaticHandler) LoginPage(c *gin.Context) {
	if !h.exists(h.loginPage) {
		respondError(c, http.StatusNotFound, "Not found", nil)
		return
	}
	c.FileFromFS(h.loginPage, h.fs)
}

// NotFound serves a static file for unmatched GET/HEAD paths and answers
// 404 otherwise. Dot-files are never served.
func (h *StaticHandler) NotFound(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		name := path.Clean("/" + c.Request.URL.Path)
		if !hasDotSegment(name) && h.exists(name) {
			c.FileFromFS(name, h.fs)
			return
		}
	}
	respondError(c, http.StatusNotFound, "Not found", nil)
}

func (h *StaticHandler) exists(name string) bool {
	f, err := h.fs.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}

func hasDotSegment(name string) bool {
	for _, seg := range strings.Split(name, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}
