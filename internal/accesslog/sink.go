// Package accesslog forwards access-log lines produced by the HTTP server into
// the application logger. The sink does not own the logger: it is built once at
// startup and handed in, so every worker goroutine shares the same instance.
package accesslog

import (
	"errors"
	"reflect"
)

// Logger is the logging capability the sink depends on. *logrus.Logger and
// *logrus.Entry both satisfy it.
type Logger interface {
	Info(args ...interface{})
}

// Sink writes each access-log line to Logger at info level.
type Sink struct {
	logger Logger
}

// NewSink wraps logger. The logger must be safe for concurrent use. A nil
// logger, including a typed nil such as (*logrus.Entry)(nil), is rejected.
func NewSink(logger Logger) (*Sink, error) {
	if isNilLogger(logger) {
		return nil, errors.New("logger is required")
	}
	return &Sink{logger: logger}, nil
}

// IsEnabled always reports true.
func (s *Sink) IsEnabled() bool {
	return true
}

// Write forwards line verbatim as a single info call. Failures inside the
// logger are left to the logger to report.
func (s *Sink) Write(line string) {
	s.logger.Info(line)
}

func isNilLogger(logger Logger) bool {
	if logger == nil {
		return true
	}
	v := reflect.ValueOf(logger)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice:
		return v.IsNil()
	}
	return false
}
