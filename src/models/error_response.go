package models

import "errors"

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

var (
	// ErrValidation marks a create payload whose shape does not match a Form.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a lookup of a form id that has no document.
	ErrNotFound = errors.New("not found")
	// ErrStore marks persistence or connectivity failures, including malformed ids.
	ErrStore = errors.New("store error")
)
