package middleware

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"resumeparser/internal/logging"
)

// Logger writes one JSON access line per request to stdout.
func Logger(loc *time.Location) fiber.Handler {
	return LoggerWithWriter(os.Stdout, loc)
}

// LoggerWithWriter is Logger with an explicit sink.
// Fields: request_id, method, path, status, latency (ms), bytes_in.
// 5xx responses are logged at error level, 4xx at warn.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	logger := logging.New(w, loc, slog.LevelInfo)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusFromError(err)
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		attrs := []slog.Attr{
			slog.String("request_id", rid),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Float64("latency", float64(time.Since(start).Microseconds())/1000),
			slog.Int("bytes_in", len(c.Request().Body())),
		}

		lv := slog.LevelInfo
		switch {
		case status >= fiber.StatusInternalServerError:
			lv = slog.LevelError
		case status >= fiber.StatusBadRequest:
			lv = slog.LevelWarn
		}
		logger.LogAttrs(c.UserContext(), lv, "http_request", attrs...)

		return err
	}
}

// statusFromError mirrors what the global error handler will write.
func statusFromError(err error) int {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
