package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/logkit/log"
	"github.com/kbukum/logkit/mdc"
	"github.com/kbukum/logkit/middleware"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	return r
}

func TestRequestIDGeneratesID(t *testing.T) {
	r := newRouter()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		if c.GetString("request_id") == "" {
			t.Error("expected request_id in gin context")
		}
		c.Status(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest("GET", "/", http.NoBody))

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id response header")
	}
}

func TestRequestIDHonorsIncomingHeader(t *testing.T) {
	r := newRouter()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("X-Request-Id", "req-42")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-Id"); got != "req-42" {
		t.Errorf("expected incoming id to be preserved, got %q", got)
	}
}

func TestRequestIDInMDC(t *testing.T) {
	r := newRouter()
	r.Use(middleware.RequestID())

	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = log.MDCGet(log.FieldRequestID)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", http.NoBody)
	req.Header.Set("X-Request-Id", "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen != "req-7" {
		t.Errorf("expected request id in MDC during the request, got %q", seen)
	}
	if v := log.MDCGet(log.FieldRequestID); v != "" {
		t.Errorf("expected MDC restored after the request, got %q", v)
	}
	mdc.Release()
}

func TestRequestLoggerDoesNotPanic(t *testing.T) {
	log.ConfigureFromProps("level=fatal\nformat=json")

	r := newRouter()
	r.Use(middleware.RequestLogger(log.GetLogger("http")))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, path := range []string{"/ok", "/bad", "/boom", "/health"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))
	}
}
