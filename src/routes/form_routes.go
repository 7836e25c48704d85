package routes

import (
	"formbuilder/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Forms have no update or delete route: a saved form is immutable.
func formRoutes(router fiber.Router, ctrl *controllers.FormController) {
	router.Post("/create-form", ctrl.CreateForm)
	router.Get("/form/:id", ctrl.GetFormByID)
	router.Get("/form/:id/stats", ctrl.GetFormStats)
}
