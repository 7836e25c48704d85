// Package renderer loads a saved form, collects a respondent's answers and submits them.
//
// A Renderer belongs to one respondent session and is not safe for concurrent use.
package renderer

import (
	"context"
	"errors"
	"fmt"

	"formbuilder/src/models"
)

type State int

const (
	Loading State = iota
	Ready
	// Failed is terminal: the fetch is not retried.
	Failed
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

// ErrNotReady is returned by View before the form has loaded.
var ErrNotReady = errors.New("renderer: form not loaded")

type FormSource interface {
	GetForm(ctx context.Context, id string) (*models.Form, error)
}

type ResponseSink interface {
	SubmitResponse(ctx context.Context, req models.SubmitResponseRequest) error
}

type Renderer struct {
	formID  string
	source  FormSource
	sink    ResponseSink
	state   State
	fetched bool
	form    *models.Form
	err     error
	answers map[string]any
}

func New(formID string, source FormSource, sink ResponseSink) *Renderer {
	return &Renderer{
		formID:  formID,
		source:  source,
		sink:    sink,
		answers: map[string]any{},
	}
}

// Load fetches the form on the first call only; later calls return the first outcome.
func (r *Renderer) Load(ctx context.Context) error {
	if r.fetched {
		return r.err
	}
	r.fetched = true

	form, err := r.source.GetForm(ctx, r.formID)
	if err != nil {
		r.state = Failed
		r.err = fmt.Errorf("load form %s: %w", r.formID, err)
		return r.err
	}
	r.form = form
	r.state = Ready
	return nil
}

func (r *Renderer) FormID() string { return r.formID }
func (r *Renderer) State() State   { return r.state }
func (r *Renderer) Err() error     { return r.err }

// View returns the projection of the loaded form.
func (r *Renderer) View() (View, error) {
	if r.state != Ready {
		if r.err != nil {
			return View{}, r.err
		}
		return View{}, ErrNotReady
	}
	return Project(*r.form), nil
}

// ToggleCheckbox records the checked state of one option. All options of a question share
// one answer slot, so the last toggle wins.
func (r *Renderer) ToggleCheckbox(questionID string, checked bool) {
	r.answers[questionID] = checked
}

// EditGridCell records a cell value. Cells are not keyed individually: the last edited cell
// of a grid question is its answer.
func (r *Renderer) EditGridCell(questionID string, row, col int, value string) {
	r.answers[questionID] = value
}

func (r *Renderer) SetText(questionID, value string) {
	r.answers[questionID] = value
}

// Answers returns a copy of the answer map.
func (r *Renderer) Answers() map[string]any {
	out := make(map[string]any, len(r.answers))
	for k, v := range r.answers {
		out[k] = v
	}
	return out
}

// Submit sends the current answers. Pair order follows map iteration, not question order.
// Answers are kept afterwards, so submitting again stores a second response.
func (r *Renderer) Submit(ctx context.Context) error {
	req := models.SubmitResponseRequest{
		FormID:    r.formID,
		Responses: make([]models.Answer, 0, len(r.answers)),
	}
	for qid, answer := range r.answers {
		req.Responses = append(req.Responses, models.Answer{QuestionID: qid, Answer: answer})
	}
	if err := r.sink.SubmitResponse(ctx, req); err != nil {
		return fmt.Errorf("submit response: %w", err)
	}
	return nil
}
