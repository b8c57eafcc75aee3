package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type contextKey string

const loggerKey = contextKey("logger")

// RequestHeader carries the request id back to the client
const RequestHeader = "X-Request-ID"

// RequestLogger injects a request-scoped logger and logs request completion.
// An incoming X-Request-ID is reused, otherwise a new one is generated.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		logger := base.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header(RequestHeader, requestID)
		c.Set(string(loggerKey), logger)

		c.Next()

		logger.Info("request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// LoggerFrom returns the request-scoped logger, or slog.Default when the
// middleware is not installed.
func LoggerFrom(c *gin.Context) *slog.Logger {
	value, ok := c.Get(string(loggerKey))
	if !ok {
		return slog.Default()
	}
	logger, ok := value.(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
