// Package editor holds the in-memory form a user composes before saving it.
//
// An Editor is owned by a single caller and is not safe for concurrent use. Every mutation
// builds new slices instead of writing through shared ones, so questions and snapshots handed
// out earlier never change underneath their holder.
package editor

import (
	"context"
	"fmt"

	"formbuilder/src/models"
	"formbuilder/src/renderer"

	"github.com/google/uuid"
)

// Mode is a display toggle; switching it never touches form data.
type Mode int

const (
	Editing Mode = iota
	Previewing
)

func (m Mode) String() string {
	if m == Previewing {
		return "previewing"
	}
	return "editing"
}

// FormSaver persists a snapshot and returns the store-assigned id.
type FormSaver interface {
	CreateForm(ctx context.Context, req models.CreateFormRequest) (string, error)
}

type Editor struct {
	title       string
	headerImage string
	questions   []models.Question
	mode        Mode
	savedID     string
	newID       func() string
}

func New() *Editor {
	return &Editor{
		questions: []models.Question{},
		newID:     uuid.NewString,
	}
}

func (e *Editor) Title() string             { return e.title }
func (e *Editor) SetTitle(title string)     { e.title = title }
func (e *Editor) HeaderImage() string       { return e.headerImage }
func (e *Editor) SetHeaderImage(ref string) { e.headerImage = ref }
func (e *Editor) Mode() Mode                { return e.mode }
func (e *Editor) SetMode(m Mode)            { e.mode = m }
func (e *Editor) SavedID() string           { return e.savedID }

// TogglePreview flips between editing and previewing and returns the new mode.
func (e *Editor) TogglePreview() Mode {
	if e.mode == Editing {
		e.mode = Previewing
	} else {
		e.mode = Editing
	}
	return e.mode
}

// Questions returns a deep copy of the questions in display order.
func (e *Editor) Questions() []models.Question {
	out := make([]models.Question, len(e.questions))
	for i, q := range e.questions {
		out[i] = q.Clone()
	}
	return out
}

// Question returns a copy of the question with id.
func (e *Editor) Question(id string) (models.Question, bool) {
	for _, q := range e.questions {
		if q.ID == id {
			return q.Clone(), true
		}
	}
	return models.Question{}, false
}

// AddQuestion appends an empty question of type t and returns its local id. A CheckBox starts
// with one blank option; every question starts with a one-by-one blank grid.
func (e *Editor) AddQuestion(t models.QuestionType) string {
	q := models.Question{
		ID:      e.newID(),
		Type:    t,
		Options: []string{},
		Grid:    models.GridLayout{Rows: []string{""}, Columns: []string{""}},
	}
	if t == models.CheckBox {
		q.Options = []string{""}
	}

	next := make([]models.Question, 0, len(e.questions)+1)
	next = append(next, e.questions...)
	e.questions = append(next, q)
	return q.ID
}

// UpdateQuestion replaces the question whose id matches. Unknown ids are ignored.
func (e *Editor) UpdateQuestion(id string, q models.Question) {
	next := make([]models.Question, len(e.questions))
	for i, cur := range e.questions {
		if cur.ID == id {
			next[i] = q.Clone()
		} else {
			next[i] = cur
		}
	}
	e.questions = next
}

// RemoveQuestion drops the question with id. Unknown ids are ignored.
func (e *Editor) RemoveQuestion(id string) {
	next := make([]models.Question, 0, len(e.questions))
	for _, q := range e.questions {
		if q.ID != id {
			next = append(next, q)
		}
	}
	e.questions = next
}

// Snapshot is the payload sent on save.
func (e *Editor) Snapshot() models.CreateFormRequest {
	return models.CreateFormRequest{
		Title:       e.title,
		HeaderImage: e.headerImage,
		Questions:   e.Questions(),
	}
}

// Preview projects the current form the way a respondent would see it.
func (e *Editor) Preview() renderer.View {
	snap := e.Snapshot()
	return renderer.Project(models.Form{
		Title:       snap.Title,
		HeaderImage: snap.HeaderImage,
		Questions:   snap.Questions,
	})
}

// Save sends the snapshot to saver. On failure the editor is left as it was.
// Saving again creates another form; there is no update.
func (e *Editor) Save(ctx context.Context, saver FormSaver) (string, error) {
	id, err := saver.CreateForm(ctx, e.Snapshot())
	if err != nil {
		return "", fmt.Errorf("save form: %w", err)
	}
	e.savedID = id
	return id, nil
}

// PreviewLink is the relative view link of the last save, empty before the first one.
func (e *Editor) PreviewLink() string {
	if e.savedID == "" {
		return ""
	}
	return renderer.PreviewPath(e.savedID)
}
