package routes

import (
	"formbuilder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Forms     *controllers.FormController
	Responses *controllers.ResponseController
}

func InitRoutes(app *fiber.App, h Handlers) {
	api := app.Group("/api")
	formRoutes(api, h.Forms)
	responseRoutes(api, h.Responses)

	// share links point here, outside /api
	app.Get("/preview/:id", h.Forms.PreviewForm)

	// Route เช็คว่า API ทำงานอยู่
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
