package routes

import (
	"formbuilder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func responseRoutes(router fiber.Router, ctrl *controllers.ResponseController) {
	router.Post("/submit-response", ctrl.SubmitResponse)
}
