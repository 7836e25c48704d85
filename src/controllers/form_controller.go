package controllers

import (
	"context"
	"fmt"
	"time"

	"formbuilder/src/models"
	"formbuilder/src/renderer"
	"formbuilder/src/utils"

	"github.com/gofiber/fiber/v2"
)

type FormService interface {
	CreateForm(ctx context.Context, req models.CreateFormRequest) (string, error)
	GetForm(ctx context.Context, id string) (*models.Form, error)
}

type StatsService interface {
	GetStats(ctx context.Context, formID string) (*models.FormStats, error)
}

const defaultRequestTimeout = 5 * time.Second

func orDefaultTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultRequestTimeout
	}
	return d
}

type FormController struct {
	forms   FormService
	stats   StatsService
	timeout time.Duration
}

// NewFormController wires the form handlers; stats may be nil when the worker is not deployed.
func NewFormController(forms FormService, stats StatsService, timeout time.Duration) *FormController {
	return &FormController{forms: forms, stats: stats, timeout: orDefaultTimeout(timeout)}
}

// CreateForm godoc
// @Summary      Create a form
// @Description  Persist a new form and return its id
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body body models.CreateFormRequest true "Form"
// @Success      201  {object}  models.CreateFormResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /create-form [post]
func (ctl *FormController) CreateForm(c *fiber.Ctx) error {
	var req models.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Error creating form", fmt.Errorf("%w: %v", models.ErrValidation, err))
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), ctl.timeout)
	defer cancel()

	id, err := ctl.forms.CreateForm(ctx, req)
	if err != nil {
		return utils.HandleError(c, utils.StatusFor(err), "Error creating form", err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.CreateFormResponse{
		Message: "Form created successfully",
		FormID:  id,
	})
}

// GetFormByID godoc
// @Summary      Get a form
// @Description  Fetch a saved form by id
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.Form
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /form/{id} [get]
func (ctl *FormController) GetFormByID(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), ctl.timeout)
	defer cancel()

	form, err := ctl.forms.GetForm(ctx, c.Params("id"))
	if err != nil {
		status := utils.StatusFor(err)
		if status == fiber.StatusNotFound {
			return utils.HandleError(c, status, "Form not found", nil)
		}
		return utils.HandleError(c, status, "Error fetching form", err)
	}
	return c.Status(fiber.StatusOK).JSON(form)
}

// PreviewForm serves the share link: the form as a respondent sees it, markup stripped and
// only the fields each question type uses.
func (ctl *FormController) PreviewForm(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), ctl.timeout)
	defer cancel()

	form, err := ctl.forms.GetForm(ctx, c.Params("id"))
	if err != nil {
		status := utils.StatusFor(err)
		if status == fiber.StatusNotFound {
			return utils.HandleError(c, status, "Form not found", nil)
		}
		return utils.HandleError(c, status, "Error fetching form", err)
	}
	return c.Status(fiber.StatusOK).JSON(renderer.Project(*form))
}

// GetFormStats godoc
// @Summary      Response counters for a form
// @Tags         forms
// @Produce      json
// @Param        id   path  string  true  "Form ID"
// @Success      200  {object}  models.FormStats
// @Failure      400  {object}  models.ErrorResponse
// @Router       /form/{id}/stats [get]
func (ctl *FormController) GetFormStats(c *fiber.Ctx) error {
	if ctl.stats == nil {
		return utils.HandleError(c, fiber.StatusNotImplemented, "Stats are not enabled", nil)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), ctl.timeout)
	defer cancel()

	st, err := ctl.stats.GetStats(ctx, c.Params("id"))
	if err != nil {
		return utils.HandleError(c, utils.StatusFor(err), "Error fetching stats", err)
	}
	return c.JSON(st)
}
