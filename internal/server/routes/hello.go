package routes

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterHelloRoutes 注册唯一的业务路由 GET /hello，固定返回 world。
func RegisterHelloRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/hello", func(c fiber.Ctx) error {
		return c.SendString("world")
	})
}
