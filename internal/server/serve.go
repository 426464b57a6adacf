package server

import (
	"context"
	"net"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"github.com/hello-hub/hello-hub/internal/logging"
)

// DefaultShutdownTimeout bounds graceful shutdown when the context is cancelled.
const DefaultShutdownTimeout = 10 * time.Second

// ListenAndServe binds addr and serves until ctx is cancelled, then shuts
// down gracefully. Bind failures are returned to the caller.
func (h *Handle) ListenAndServe(ctx context.Context, addr string) error {
	return h.app.Listen(addr, h.listenConfig(ctx))
}

// Serve is ListenAndServe for a listener the caller has already bound.
func (h *Handle) Serve(ctx context.Context, ln net.Listener) error {
	return h.app.Listener(ln, h.listenConfig(ctx))
}

func (h *Handle) listenConfig(ctx context.Context) fiber.ListenConfig {
	return fiber.ListenConfig{
		GracefulContext:       ctx,
		ShutdownTimeout:       h.shutdownTimeout,
		DisableStartupMessage: true,
	}
}

func (h *Handle) registerLifecycleHooks() {
	hooks := h.app.Hooks()

	hooks.OnListen(func(data fiber.ListenData) error {
		fields := h.poolFields()
		fields["action"] = "listen"
		fields["host"] = data.Host
		fields["port"] = data.Port
		h.logger.WithFields(fields).Info("HTTP 服务开始监听")
		return nil
	})

	hooks.OnPostShutdown(func(err error) error {
		entry := h.logger.WithField("action", "shutdown")
		if err != nil {
			entry.WithError(err).Error("HTTP 服务关闭失败")
			return nil
		}
		entry.Info("HTTP 服务已关闭")
		return nil
	})
}

func (h *Handle) poolFields() logrus.Fields {
	if h.pool == nil {
		return logging.PoolFields(false, 0, 0, 0)
	}
	return logging.PoolFields(true, h.pool.Max, h.pool.Min, h.pool.IdleTimeoutMillis())
}
