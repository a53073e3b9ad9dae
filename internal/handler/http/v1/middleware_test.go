package v1

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareRouter(origins []string) (*gin.Engine, *bytes.Buffer) {
	logs := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLoggerMiddleware(logger), CORSMiddleware(origins))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router, logs
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	router, logs := newMiddlewareRouter([]string{"*"})

	w := makeRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, logs.String(), requestID)
	assert.Contains(t, logs.String(), `"path":"/ping"`)
}

func TestRequestLogger_KeepsIncomingRequestID(t *testing.T) {
	router, _ := newMiddlewareRouter([]string{"*"})

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{RequestIDHeader: "abc-123"})

	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS_Preflight(t *testing.T) {
	router, _ := newMiddlewareRouter([]string{"http://dashboard.local"})

	w := makeRequest(router, http.MethodOptions, "/ping", nil, map[string]string{
		"Origin":                        "http://dashboard.local",
		"Access-Control-Request-Method": http.MethodPatch,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	router, _ := newMiddlewareRouter([]string{"http://dashboard.local"})

	w := makeRequest(router, http.MethodGet, "/ping", nil, map[string]string{"Origin": "http://evil.local"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
