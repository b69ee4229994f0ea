package middleware

import (
	"time"

	"github.com/BerylCAtieno/persona-marketing-agent/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const RequestIDHeader = "X-Request-ID"

// RequestLogger attaches a request-scoped zerolog logger to the request
// context, logs the outcome and counts requests in reg.
func RequestLogger(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		req := c.Request

		rid := req.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)

		logger := log.With().
			Str("request_id", rid).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("remote_ip", c.ClientIP()).
			Logger()
		c.Request = req.WithContext(logger.WithContext(req.Context()))

		c.Next()

		status := c.Writer.Status()
		labels := map[string]string{
			"method": req.Method,
			"path":   c.FullPath(),
			"status": metrics.StatusClass(status),
		}
		reg.Inc(c.Request.Context(), "http_requests_total", labels, 1)

		duration := time.Since(start)
		if status >= 500 || len(c.Errors) > 0 {
			reg.Inc(c.Request.Context(), "http_requests_errors_total", labels, 1)
			logger.Error().
				Str("errors", c.Errors.String()).
				Int("status", status).
				Dur("duration", duration).
				Msg("http request failed")
			return
		}
		logger.Info().
			Int("status", status).
			Dur("duration", duration).
			Msg("http request served")
	}
}
