package editor

import "formbuilder/src/models"

// edit applies fn to a copy of the question and writes the copy back.
func (e *Editor) edit(id string, fn func(q *models.Question)) {
	q, ok := e.Question(id)
	if !ok {
		return
	}
	fn(&q)
	e.UpdateQuestion(id, q)
}

func (e *Editor) SetLabel(id, label string) {
	e.edit(id, func(q *models.Question) { q.Label = label })
}

// SetQuestionImage stores a client-local image reference; the image itself is never uploaded.
func (e *Editor) SetQuestionImage(id, ref string) {
	e.edit(id, func(q *models.Question) { q.Image = ref })
}

func (e *Editor) SetOption(id string, index int, value string) {
	e.edit(id, func(q *models.Question) { q.Options = replaceAt(q.Options, index, value) })
}

func (e *Editor) AddOption(id string) {
	e.edit(id, func(q *models.Question) { q.Options = appendBlank(q.Options) })
}

func (e *Editor) RemoveOption(id string, index int) {
	e.edit(id, func(q *models.Question) { q.Options = removeAt(q.Options, index) })
}

func (e *Editor) SetRow(id string, index int, value string) {
	e.edit(id, func(q *models.Question) { q.Grid.Rows = replaceAt(q.Grid.Rows, index, value) })
}

func (e *Editor) AddRow(id string) {
	e.edit(id, func(q *models.Question) { q.Grid.Rows = appendBlank(q.Grid.Rows) })
}

func (e *Editor) RemoveRow(id string, index int) {
	e.edit(id, func(q *models.Question) { q.Grid.Rows = removeAt(q.Grid.Rows, index) })
}

func (e *Editor) SetColumn(id string, index int, value string) {
	e.edit(id, func(q *models.Question) { q.Grid.Columns = replaceAt(q.Grid.Columns, index, value) })
}

func (e *Editor) AddColumn(id string) {
	e.edit(id, func(q *models.Question) { q.Grid.Columns = appendBlank(q.Grid.Columns) })
}

func (e *Editor) RemoveColumn(id string, index int) {
	e.edit(id, func(q *models.Question) { q.Grid.Columns = removeAt(q.Grid.Columns, index) })
}

// The helpers below always return a fresh slice. Out of range indexes leave the contents unchanged.

func replaceAt(s []string, i int, v string) []string {
	out := append(make([]string, 0, len(s)), s...)
	if i >= 0 && i < len(out) {
		out[i] = v
	}
	return out
}

func appendBlank(s []string) []string {
	out := make([]string, 0, len(s)+1)
	out = append(out, s...)
	return append(out, "")
}

func removeAt(s []string, i int) []string {
	out := make([]string, 0, len(s))
	for j, v := range s {
		if j != i {
			out = append(out, v)
		}
	}
	return out
}
