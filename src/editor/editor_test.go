package editor

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"formbuilder/src/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) CreateForm(ctx context.Context, req models.CreateFormRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// newTestEditor mints q1, q2, ... so ids are predictable.
func newTestEditor() *Editor {
	e := New()
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("q%d", n)
	}
	return e
}

func ids(qs []models.Question) []string {
	out := make([]string, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.ID)
	}
	return out
}

func TestAddQuestionDefaults(t *testing.T) {
	e := New()
	text := e.AddQuestion(models.Text)
	check := e.AddQuestion(models.CheckBox)
	grid := e.AddQuestion(models.Grid)
	assert.NotEqual(t, text, check)

	blankGrid := models.GridLayout{Rows: []string{""}, Columns: []string{""}}
	for _, tc := range []struct {
		id      string
		typ     models.QuestionType
		options []string
	}{
		{text, models.Text, []string{}},
		{check, models.CheckBox, []string{""}},
		{grid, models.Grid, []string{}},
	} {
		q, ok := e.Question(tc.id)
		require.True(t, ok)
		assert.Equal(t, tc.typ, q.Type)
		assert.Empty(t, q.Label)
		assert.Empty(t, q.Image)
		assert.Equal(t, tc.options, q.Options)
		assert.Equal(t, blankGrid, q.Grid)
	}
}

func TestQuestionOrderFollowsAdditions(t *testing.T) {
	e := newTestEditor()
	e.AddQuestion(models.Text)
	e.AddQuestion(models.CheckBox)
	e.AddQuestion(models.Grid)
	e.AddQuestion(models.Text)

	e.RemoveQuestion("q2")
	e.RemoveQuestion("missing")
	e.UpdateQuestion("q3", models.Question{ID: "q3", Type: models.Grid, Label: "Rate"})
	e.UpdateQuestion("missing", models.Question{ID: "missing", Label: "ignored"})
	e.AddQuestion(models.CheckBox)

	assert.Equal(t, []string{"q1", "q3", "q4", "q5"}, ids(e.Questions()))
	q, _ := e.Question("q3")
	assert.Equal(t, "Rate", q.Label)
}

func TestRemoveOnlyMatchingID(t *testing.T) {
	e := newTestEditor()
	e.AddQuestion(models.Text)
	before := e.Questions()
	e.RemoveQuestion("nope")
	assert.Equal(t, before, e.Questions())
}

func TestNestedListEditing(t *testing.T) {
	e := newTestEditor()
	check := e.AddQuestion(models.CheckBox)
	grid := e.AddQuestion(models.Grid)

	e.SetOption(check, 0, "A")
	e.AddOption(check)
	e.SetOption(check, 1, "B")
	e.AddOption(check)
	e.SetOption(check, 2, "C")
	e.RemoveOption(check, 1)
	e.SetOption(check, 9, "out of range")

	e.SetRow(grid, 0, "Speed")
	e.AddRow(grid)
	e.SetRow(grid, 1, "Price")
	e.SetColumn(grid, 0, "Good")
	e.AddColumn(grid)
	e.SetColumn(grid, 1, "Bad")
	e.AddColumn(grid)
	e.RemoveColumn(grid, 2)
	e.AddRow(grid)
	e.RemoveRow(grid, 2)

	q, _ := e.Question(check)
	assert.Equal(t, []string{"A", "C"}, q.Options)
	g, _ := e.Question(grid)
	assert.Equal(t, []string{"Speed", "Price"}, g.Grid.Rows)
	assert.Equal(t, []string{"Good", "Bad"}, g.Grid.Columns)
	assert.Equal(t, []string{}, g.Options)
}

func TestEditsDoNotAlias(t *testing.T) {
	e := newTestEditor()
	a := e.AddQuestion(models.CheckBox)
	b := e.AddQuestion(models.CheckBox)

	held := e.Questions()
	snap := e.Snapshot()

	e.SetOption(a, 0, "changed")
	e.SetLabel(a, "label")

	qb, _ := e.Question(b)
	assert.Equal(t, []string{""}, qb.Options)
	assert.Equal(t, []string{""}, held[0].Options)
	assert.Equal(t, []string{""}, snap.Questions[0].Options)

	q, _ := e.Question(a)
	q.Options[0] = "mutated copy"
	qa, _ := e.Question(a)
	assert.Equal(t, "changed", qa.Options[0])
}

func TestImagesAreReferencesOnly(t *testing.T) {
	e := newTestEditor()
	id := e.AddQuestion(models.Text)
	e.SetHeaderImage("blob:http://localhost/1")
	e.SetQuestionImage(id, "blob:http://localhost/2")

	snap := e.Snapshot()
	assert.Equal(t, "blob:http://localhost/1", snap.HeaderImage)
	assert.Equal(t, "blob:http://localhost/2", snap.Questions[0].Image)
}

func TestTogglePreviewKeepsData(t *testing.T) {
	e := newTestEditor()
	e.SetTitle("Survey")
	id := e.AddQuestion(models.CheckBox)
	e.SetOption(id, 0, "A")
	before := e.Snapshot()

	assert.Equal(t, Editing, e.Mode())
	assert.Equal(t, Previewing, e.TogglePreview())
	v := e.Preview()
	assert.Equal(t, "Survey", v.Title)
	assert.Equal(t, []string{"A"}, v.Questions[0].Options)
	assert.Equal(t, Editing, e.TogglePreview())

	assert.Empty(t, cmp.Diff(before, e.Snapshot()))
}

func TestSaveRecordsIDAndLink(t *testing.T) {
	e := newTestEditor()
	e.SetTitle("Survey")
	id := e.AddQuestion(models.CheckBox)
	e.SetLabel(id, "Pick one")
	e.SetOption(id, 0, "A")
	e.AddOption(id)
	e.SetOption(id, 1, "B")

	saver := new(MockSaver)
	saver.On("CreateForm", mock.Anything, e.Snapshot()).Return("65f000000000000000000001", nil)

	assert.Empty(t, e.PreviewLink())
	formID, err := e.Save(context.Background(), saver)
	require.NoError(t, err)
	assert.Equal(t, "65f000000000000000000001", formID)
	assert.Equal(t, formID, e.SavedID())
	assert.Equal(t, "/preview/65f000000000000000000001", e.PreviewLink())
	saver.AssertExpectations(t)
}

func TestSaveFailureLeavesStateAlone(t *testing.T) {
	e := newTestEditor()
	e.SetTitle("Survey")
	e.AddQuestion(models.Text)
	before := e.Snapshot()

	saver := new(MockSaver)
	saver.On("CreateForm", mock.Anything, mock.Anything).Return("", errors.New("api 400: Error creating form"))

	_, err := e.Save(context.Background(), saver)
	assert.ErrorContains(t, err, "Error creating form")
	assert.Empty(t, e.SavedID())
	assert.Equal(t, before, e.Snapshot())
}
