package controllers

import (
	"context"
	"time"

	"formbuilder/src/models"
	"formbuilder/src/utils"

	"github.com/gofiber/fiber/v2"
)

type ResponseService interface {
	SubmitResponse(ctx context.Context, req models.SubmitResponseRequest) error
}

type ResponseController struct {
	responses ResponseService
	timeout   time.Duration
}

func NewResponseController(responses ResponseService, timeout time.Duration) *ResponseController {
	return &ResponseController{responses: responses, timeout: orDefaultTimeout(timeout)}
}

// SubmitResponse godoc
// @Summary      Submit a response
// @Description  Store a respondent's answers for a form id. The id is not checked.
// @Tags         responses
// @Accept       json
// @Produce      json
// @Param        body body models.SubmitResponseRequest true "Response"
// @Success      201  {object}  models.MessageResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /submit-response [post]
func (ctl *ResponseController) SubmitResponse(c *fiber.Ctx) error {
	var req models.SubmitResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Error saving response", err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), ctl.timeout)
	defer cancel()

	if err := ctl.responses.SubmitResponse(ctx, req); err != nil {
		return utils.HandleError(c, utils.StatusFor(err), "Error saving response", err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.MessageResponse{Message: "Response saved successfully"})
}
