package server

import (
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

func newTestHandle(t *testing.T, pool ThreadPoolConfig, log RequestLog) *Handle {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	handle, err := Build(BuildOptions{
		Pool:       pool,
		RequestLog: log,
		Logger:     logger,
	})
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	return handle
}

// lineRecorder is a RequestLog that keeps every line it receives.
type lineRecorder struct {
	enabled bool

	mu    sync.Mutex
	lines []string
}

func (r *lineRecorder) IsEnabled() bool {
	return r.enabled
}

func (r *lineRecorder) Write(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *lineRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
