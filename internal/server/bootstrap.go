package server

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

// Worker pool defaults applied per field when MaxThreads is set.
const (
	DefaultMaxThreads        = 200
	DefaultMinThreads        = 8
	DefaultIdleTimeoutMillis = 60000
)

// ThreadPoolConfig bounds the worker pool. Zero means "use the default".
type ThreadPoolConfig struct {
	MaxThreads        int
	MinThreads        int
	IdleTimeoutMillis int
}

// WorkerPool is the resolved pool attached to a Handle.
type WorkerPool struct {
	Max         int
	Min         int
	IdleTimeout time.Duration
}

// IdleTimeoutMillis returns IdleTimeout in whole milliseconds.
func (p *WorkerPool) IdleTimeoutMillis() int {
	return int(p.IdleTimeout / time.Millisecond)
}

// resolveWorkerPool returns nil when MaxThreads is unset, leaving pool sizing
// to fasthttp. Min and idle timeout default independently of each other.
func resolveWorkerPool(cfg ThreadPoolConfig) *WorkerPool {
	if cfg.MaxThreads <= 0 {
		return nil
	}
	pool := &WorkerPool{
		Max:         cfg.MaxThreads,
		Min:         DefaultMinThreads,
		IdleTimeout: DefaultIdleTimeoutMillis * time.Millisecond,
	}
	if cfg.MinThreads > 0 {
		pool.Min = cfg.MinThreads
	}
	if cfg.IdleTimeoutMillis > 0 {
		pool.IdleTimeout = time.Duration(cfg.IdleTimeoutMillis) * time.Millisecond
	}
	return pool
}

// apply copies the pool bounds onto the fasthttp server. fasthttp spawns
// workers on demand, so Min has no counterpart there.
func (p *WorkerPool) apply(srv *fasthttp.Server) {
	srv.Concurrency = p.Max
	srv.MaxIdleWorkerDuration = p.IdleTimeout
}

// BuildOptions controls how Build assembles the server.
type BuildOptions struct {
	Pool       ThreadPoolConfig
	RequestLog RequestLog
	Logger     *logrus.Logger
	// AccessLogFormat is one of common, combined or json. Empty means common.
	AccessLogFormat string
	// ShutdownTimeout bounds graceful shutdown. Zero means DefaultShutdownTimeout.
	ShutdownTimeout time.Duration
}

// Handle is a configured server that has not started listening yet.
type Handle struct {
	app             *fiber.App
	pool            *WorkerPool
	logger          *logrus.Logger
	shutdownTimeout time.Duration
}

// Build creates the Fiber application, sizes its worker pool and attaches the
// request log. It does not bind a network address.
func Build(opts BuildOptions) (*Handle, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.RequestLog == nil {
		return nil, errors.New("request log is required")
	}
	format, err := accessLogTemplate(opts.AccessLogFormat)
	if err != nil {
		return nil, err
	}

	pool := resolveWorkerPool(opts.Pool)

	appCfg := fiber.Config{
		CaseSensitive: true,
		ErrorHandler:  errorHandler(opts.Logger),
	}
	app := fiber.New(appCfg)
	if pool != nil {
		pool.apply(app.Server())
	}

	app.Use(requestIDMiddleware())
	app.Use(accessLogMiddleware(opts.RequestLog, format))
	app.Use(recover.New())

	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}

	h := &Handle{app: app, pool: pool, logger: opts.Logger, shutdownTimeout: shutdownTimeout}
	h.registerLifecycleHooks()
	return h, nil
}

// App exposes the Fiber application for route registration and app.Test.
func (h *Handle) App() *fiber.App {
	return h.app
}

// Pool returns the resolved worker pool, or nil when server defaults apply.
func (h *Handle) Pool() *WorkerPool {
	return h.pool
}
