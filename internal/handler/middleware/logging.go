package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fulfillment-engine/internal/handler/httperr"
	"fulfillment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	stackLines      = 12
)

// RequestLogging tags each request with an id, echoed in RequestIDHeader, and
// logs one line when the handler chain returns.
func RequestLogging(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = newRequestID(start)
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()

		status := c.Writer.Status()
		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("route", routeOf(c)),
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			attrs = append(attrs, slog.String("query", q))
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if last := c.Errors.Last(); last != nil {
			attrs = append(attrs, slog.String("error", last.Err.Error()))
			if resp, ok := last.Meta.(httperr.Response); ok && resp.Error.Code != "" {
				attrs = append(attrs, slog.String("error_code", string(resp.Error.Code)))
			}
			if status >= http.StatusInternalServerError {
				attrs = append(attrs, slog.Any("stack", errs.ExtractStackLines(last.Err, stackLines)))
			}
		}

		logger.LogAttrs(context.Background(), levelFor(status), "request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// routeOf prefers the registered pattern so ids stay out of the route label.
func routeOf(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return c.Request.URL.Path
}

func newRequestID(now time.Time) string {
	var b [6]byte
	if _, err := rand.Read(b[:]); err != nil {
		return now.UTC().Format("20060102150405") + "-" + strconv.FormatInt(now.UnixNano()%1e8, 10)
	}
	return now.UTC().Format("20060102150405") + "-" + hex.EncodeToString(b[:])
}
