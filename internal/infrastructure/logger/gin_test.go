package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedRouter(level zapcore.Level) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(level)
	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	return router, recorded
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	router, recorded := newObservedRouter(zapcore.InfoLevel)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test?search=books", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, 1, recorded.Len())
	entry := recorded.All()[0]

	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "HTTP Request", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "search=books", fields["query"])
	assert.Contains(t, fields, "latency")
}

func TestGinMiddleware_LevelTracksStatus(t *testing.T) {
	tests := []struct {
		status int
		want   zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		router, recorded := newObservedRouter(zapcore.InfoLevel)
		status := tt.status
		router.GET("/test", func(c *gin.Context) {
			c.Status(status)
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/test", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, 1, recorded.Len(), "status %d", tt.status)
		assert.Equal(t, tt.want, recorded.All()[0].Level, "status %d", tt.status)
	}
}

func TestGinMiddleware_StoresRequestLogger(t *testing.T) {
	router, _ := newObservedRouter(zapcore.InfoLevel)

	var got *zap.Logger
	router.GET("/test", func(c *gin.Context) {
		got = GetGinLogger(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.NotNil(t, got)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/panic", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	require.Equal(t, 1, recorded.Len())
	entry := recorded.All()[0]
	assert.Equal(t, "Panic recovered", entry.Message)
	assert.Equal(t, "/panic", entry.ContextMap()["path"])
}

func TestGetGinLogger_FallsBackToNop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	log := GetGinLogger(c)
	assert.NotNil(t, log)
}
