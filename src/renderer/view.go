package renderer

import (
	"html"
	"net/url"
	"strings"
	"sync"

	"formbuilder/src/models"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// PreviewPath is the server-relative path where a saved form is shown to respondents.
func PreviewPath(formID string) string {
	return "/preview/" + url.PathEscape(formID)
}

// View is the read-only projection of a form that a respondent answers.
type View struct {
	Title       string         `json:"title"`
	HeaderImage string         `json:"headerImage,omitempty"`
	Questions   []QuestionView `json:"questions"`
}

// QuestionView carries only what its type renders: Options for CheckBox, Rows and Columns for Grid.
type QuestionView struct {
	ID      string              `json:"id"`
	Type    models.QuestionType `json:"type"`
	Label   string              `json:"label"`
	Image   string              `json:"image,omitempty"`
	Options []string            `json:"options,omitempty"`
	Rows    []string            `json:"rows,omitempty"`
	Columns []string            `json:"columns,omitempty"`
}

// Project builds the view of form. Author-supplied text is stripped of markup.
func Project(form models.Form) View {
	v := View{
		Title:       sanitizeText(form.Title),
		HeaderImage: form.HeaderImage,
		Questions:   make([]QuestionView, 0, len(form.Questions)),
	}
	for _, q := range form.Questions {
		qv := QuestionView{
			ID:    q.ID,
			Type:  q.Type,
			Label: sanitizeText(q.Label),
			Image: q.Image,
		}
		switch q.Type {
		case models.CheckBox:
			qv.Options = sanitizeAll(q.Options)
		case models.Grid:
			qv.Rows = sanitizeAll(q.Grid.Rows)
			qv.Columns = sanitizeAll(q.Grid.Columns)
		}
		v.Questions = append(v.Questions, qv)
	}
	return v
}

func sanitizeText(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	// the policy escapes entities, which a terminal would print literally
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}

func sanitizeAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = sanitizeText(s)
	}
	return out
}
