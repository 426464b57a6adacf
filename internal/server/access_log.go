package server

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// RequestLog receives one rendered access-log line per request. It is called
// from many worker goroutines at once.
type RequestLog interface {
	IsEnabled() bool
	Write(line string)
}

// NCSA timestamp layout, e.g. 19/Oct/2026:10:00:00 +0000.
const ncsaTimeFormat = "02/Jan/2006:15:04:05 -0700"

func accessLogTemplate(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "common":
		return logger.CommonFormat, nil
	case "combined":
		return logger.CombinedFormat, nil
	case "json":
		return logger.JSONFormat, nil
	default:
		return "", fmt.Errorf("unsupported access log format: %s", name)
	}
}

// accessLogMiddleware renders each request with the Fiber logger middleware
// and hands the finished line to log.
func accessLogMiddleware(log RequestLog, format string) fiber.Handler {
	return logger.New(logger.Config{
		Stream:        lineWriter{log: log},
		Format:        format,
		TimeFormat:    ncsaTimeFormat,
		DisableColors: true,
		Next: func(c fiber.Ctx) bool {
			return isDiagnosticsPath(c.Path())
		},
		Skip: func(fiber.Ctx) bool {
			return !log.IsEnabled()
		},
	})
}

// lineWriter adapts RequestLog to the io.Writer expected by the logger
// middleware, which writes one complete line per call.
type lineWriter struct {
	log RequestLog
}

func (w lineWriter) Write(p []byte) (int, error) {
	w.log.Write(strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}

func isDiagnosticsPath(path string) bool {
	return strings.HasPrefix(path, "/-/")
}
