package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer installs a recording tracer provider for the test.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	return sr
}

func TestTracing_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(Tracing(TracingConfig{ServiceName: "shopsim", Enabled: false}))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracing_RecordsSpan(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(Tracing(TracingConfig{ServiceName: "shopsim", Enabled: true}))
	router.GET("/products/:id", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("GET", "/products/7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Name(), "/products/:id")
}

func TestTraceRequestID_AttachesAttribute(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(RequestID())
	router.Use(Tracing(TracingConfig{ServiceName: "shopsim", Enabled: true}))
	router.Use(TraceRequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "load-run-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.String("request_id", "load-run-42"))
}
