package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing returns OpenTelemetry tracing middleware. Spans wrap the full
// handler, injected latency included. Mount TraceRequestID after it so
// traces can be joined with request logs.
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return otelgin.Middleware(cfg.ServiceName)
}

// TraceRequestID copies the request ID onto the active span. It runs inside
// the span opened by Tracing, so the attribute lands before the span ends.
func TraceRequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if requestID := c.GetString("request_id"); requestID != "" {
				span.SetAttributes(attribute.String("request_id", requestID))
			}
		}
		c.Next()
	}
}
