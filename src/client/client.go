// Package client talks to the form API on behalf of the editor, the renderer and the CLI.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"formbuilder/src/models"
	"formbuilder/src/renderer"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx reply. It unwraps to models.ErrNotFound for 404 and models.ErrStore otherwise.
type APIError struct {
	Status  int
	Message string
	Detail  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api %d: %s: %s", e.Status, e.Message, e.Detail)
	}
	return fmt.Sprintf("api %d: %s", e.Status, e.Message)
}

func (e *APIError) Unwrap() error {
	if e.Status == fiber.StatusNotFound {
		return models.ErrNotFound
	}
	return models.ErrStore
}

type Client struct {
	baseURL string
	timeout time.Duration
}

// New returns a client for the server at baseURL (e.g. http://localhost:8888).
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}
}

func (c *Client) CreateForm(ctx context.Context, req models.CreateFormRequest) (string, error) {
	var out models.CreateFormResponse
	if err := c.do(ctx, fiber.MethodPost, "/api/create-form", req, &out); err != nil {
		return "", err
	}
	return out.FormID, nil
}

func (c *Client) GetForm(ctx context.Context, id string) (*models.Form, error) {
	var out models.Form
	if err := c.do(ctx, fiber.MethodGet, "/api/form/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SubmitResponse(ctx context.Context, req models.SubmitResponseRequest) error {
	return c.do(ctx, fiber.MethodPost, "/api/submit-response", req, nil)
}

func (c *Client) GetFormStats(ctx context.Context, id string) (*models.FormStats, error) {
	var out models.FormStats
	if err := c.do(ctx, fiber.MethodGet, "/api/form/"+url.PathEscape(id)+"/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShareLink is the respondent-facing view link for a saved form.
func (c *Client) ShareLink(formID string) string {
	return c.Resolve(renderer.PreviewPath(formID))
}

// Resolve joins a server-relative path such as an editor preview link to the base URL.
func (c *Client) Resolve(path string) string {
	return c.baseURL + path
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a := fiber.AcquireAgent()
	req := a.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	if in != nil {
		a.JSON(in)
	}
	a.Timeout(c.timeoutFor(ctx))
	if err := a.Parse(); err != nil {
		fiber.ReleaseAgent(a)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	// Bytes releases the agent.
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}

	if code < 200 || code > 299 {
		apiErr := &APIError{Status: code}
		var eb models.ErrorResponse
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message, apiErr.Detail = eb.Message, eb.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = fiberutils.StatusMessage(code)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s %s: decode reply: %w", method, path, err)
	}
	return nil
}

func (c *Client) timeoutFor(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < c.timeout {
			return left
		}
	}
	return c.timeout
}
