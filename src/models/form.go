package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType is the closed set of question kinds a form can hold.
type QuestionType string

const (
	Text     QuestionType = "Text"
	CheckBox QuestionType = "CheckBox"
	Grid     QuestionType = "Grid"
)

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	HeaderImage string             `bson:"headerImage" json:"headerImage"`
	Questions   []Question         `bson:"questions" json:"questions"`
}

// --- Question ---
// Options is only meaningful for CheckBox and GridLayout only for Grid; both are always present.
type Question struct {
	ID      string       `bson:"_id,omitempty" json:"id,omitempty"`
	Type    QuestionType `bson:"type" json:"type" validate:"oneof=Text CheckBox Grid"`
	Label   string       `bson:"label" json:"label"`
	Image   string       `bson:"image" json:"image"`
	Options []string     `bson:"options" json:"options"`
	Grid    GridLayout   `bson:"grid" json:"grid"`
}

// --- GridLayout ---
type GridLayout struct {
	Rows    []string `bson:"rows" json:"rows"`
	Columns []string `bson:"columns" json:"columns"`
}

// CreateFormRequest is the body of POST /api/create-form.
type CreateFormRequest struct {
	Title       string     `json:"title"`
	HeaderImage string     `json:"headerImage"`
	Questions   []Question `json:"questions" validate:"dive"`
}

// CreateFormResponse is returned once the store has assigned an id.
type CreateFormResponse struct {
	Message string `json:"message"`
	FormID  string `json:"formId"`
}

// Clone returns a deep copy so callers can edit without aliasing the original slices.
func (q Question) Clone() Question {
	out := q
	out.Options = cloneStrings(q.Options)
	out.Grid = GridLayout{
		Rows:    cloneStrings(q.Grid.Rows),
		Columns: cloneStrings(q.Grid.Columns),
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
