// Package seeder loads sample forms from YAML and saves them through the normal create path.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"formbuilder/src/editor"
	"formbuilder/src/logger"
	"formbuilder/src/models"
	"formbuilder/src/renderer"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type File struct {
	Forms []Definition `yaml:"forms"`
}

// Definition describes one form. Responses are sample submissions keyed by question position.
type Definition struct {
	Title       string               `yaml:"title"`
	HeaderImage string               `yaml:"headerImage"`
	Questions   []QuestionDefinition `yaml:"questions"`
	Responses   []map[int]any        `yaml:"responses"`
}

type QuestionDefinition struct {
	Type    models.QuestionType `yaml:"type"`
	Label   string              `yaml:"label"`
	Image   string              `yaml:"image"`
	Options []string            `yaml:"options"`
	Rows    []string            `yaml:"rows"`
	Columns []string            `yaml:"columns"`
}

func LoadDefinitions(path string) ([]Definition, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseDefinitions(raw)
}

func ParseDefinitions(raw []byte) ([]Definition, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, def := range f.Forms {
		for j, q := range def.Questions {
			switch q.Type {
			case models.Text, models.CheckBox, models.Grid:
			default:
				return nil, fmt.Errorf("form %d question %d: unknown type %q", i, j, q.Type)
			}
		}
	}
	return f.Forms, nil
}

// Compose replays def through an editor the way an author would build it by hand.
func Compose(def Definition) *editor.Editor {
	e := editor.New()
	e.SetTitle(def.Title)
	e.SetHeaderImage(def.HeaderImage)
	for _, qd := range def.Questions {
		id := e.AddQuestion(qd.Type)
		e.SetLabel(id, qd.Label)
		e.SetQuestionImage(id, qd.Image)
		if qd.Type == models.CheckBox {
			fillList(qd.Options, func(i int, v string) { e.SetOption(id, i, v) }, func() { e.AddOption(id) })
		}
		if qd.Type == models.Grid {
			fillList(qd.Rows, func(i int, v string) { e.SetRow(id, i, v) }, func() { e.AddRow(id) })
			fillList(qd.Columns, func(i int, v string) { e.SetColumn(id, i, v) }, func() { e.AddColumn(id) })
		}
	}
	return e
}

// fillList writes values over a list that already holds one blank entry.
func fillList(values []string, set func(int, string), add func()) {
	for i, v := range values {
		if i > 0 {
			add()
		}
		set(i, v)
	}
}

type Seeder struct {
	saver  editor.FormSaver
	source renderer.FormSource
	sink   renderer.ResponseSink
	log    *zap.Logger
}

// New builds a Seeder. source and sink may be nil when no definition carries responses.
func New(saver editor.FormSaver, source renderer.FormSource, sink renderer.ResponseSink, log *zap.Logger) *Seeder {
	return &Seeder{saver: saver, source: source, sink: sink, log: logger.OrNop(log)}
}

// Seeded is one saved definition. PreviewLink is server-relative.
type Seeded struct {
	Title       string
	FormID      string
	PreviewLink string
}

// SeedForms saves every definition and returns the saved forms in order. A failing form is
// logged and skipped; the joined error reports every failure.
func (s *Seeder) SeedForms(ctx context.Context, defs []Definition) ([]Seeded, error) {
	saved := make([]Seeded, 0, len(defs))
	var errs []error
	for _, def := range defs {
		e := Compose(def)
		id, err := e.Save(ctx, s.saver)
		if err != nil {
			s.log.Warn("seed form failed", zap.String("title", def.Title), zap.Error(err))
			errs = append(errs, fmt.Errorf("form %q: %w", def.Title, err))
			continue
		}
		s.log.Info("✅ seeded form", zap.String("title", def.Title), zap.String("formId", id))
		saved = append(saved, Seeded{Title: def.Title, FormID: id, PreviewLink: e.PreviewLink()})

		if len(def.Responses) > 0 {
			if err := s.seedResponses(ctx, id, def.Responses); err != nil {
				errs = append(errs, fmt.Errorf("form %q responses: %w", def.Title, err))
			}
		}
	}
	return saved, errors.Join(errs...)
}

func (s *Seeder) seedResponses(ctx context.Context, formID string, samples []map[int]any) error {
	if s.source == nil || s.sink == nil {
		return errors.New("no response sink configured")
	}
	form, err := s.source.GetForm(ctx, formID)
	if err != nil {
		return err
	}

	for n, sample := range samples {
		positions := make([]int, 0, len(sample))
		for pos := range sample {
			positions = append(positions, pos)
		}
		sort.Ints(positions)

		req := models.SubmitResponseRequest{FormID: formID, Responses: make([]models.Answer, 0, len(sample))}
		for _, pos := range positions {
			if pos < 0 || pos >= len(form.Questions) {
				return fmt.Errorf("sample %d: no question at position %d", n, pos)
			}
			req.Responses = append(req.Responses, models.Answer{
				QuestionID: form.Questions[pos].ID,
				Answer:     sample[pos],
			})
		}
		if err := s.sink.SubmitResponse(ctx, req); err != nil {
			return fmt.Errorf("sample %d: %w", n, err)
		}
		s.log.Info("✅ seeded response", zap.String("formId", formID), zap.Int("sample", n+1))
	}
	return nil
}
