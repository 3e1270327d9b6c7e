package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/twliao/finwatch/internal/logger"
)

func TestRequestLogger_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger.Init()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping?period=5d", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if rid := w.Header().Get(RequestIDHeader); rid == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}
