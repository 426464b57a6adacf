package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/hello-hub/hello-hub/internal/server"
	"github.com/hello-hub/hello-hub/internal/version"
)

// RegisterRuntimeRoutes 暴露 /-/runtime 诊断接口，供 SRE 查询版本与实际生效的工作池参数。
func RegisterRuntimeRoutes(app *fiber.App, handle *server.Handle) {
	if app == nil || handle == nil {
		return
	}

	app.Get("/-/runtime", func(c fiber.Ctx) error {
		return c.JSON(runtimePayload{
			Version: version.Full(),
			Pool:    encodePool(handle.Pool()),
		})
	})
}

type runtimePayload struct {
	Version string       `json:"version"`
	Pool    *poolPayload `json:"pool"`
}

type poolPayload struct {
	MaxThreads        int `json:"max_threads"`
	MinThreads        int `json:"min_threads"`
	IdleTimeoutMillis int `json:"idle_timeout_ms"`
}

// encodePool 在使用服务端默认工作池时返回 nil，对应 JSON 中的 "pool": null。
func encodePool(pool *server.WorkerPool) *poolPayload {
	if pool == nil {
		return nil
	}
	return &poolPayload{
		MaxThreads:        pool.Max,
		MinThreads:        pool.Min,
		IdleTimeoutMillis: pool.IdleTimeoutMillis(),
	}
}
