package renderer

import (
	"context"
	"fmt"

	"formbuilder/src/models"
)

// Fill walks the loaded form in question order and records each prompt's result through the
// same interactions a respondent would use.
func (r *Renderer) Fill(ctx context.Context, d PromptDriver) error {
	v, err := r.View()
	if err != nil {
		return err
	}

	if err := d.Info(ctx, v.Title); err != nil {
		return err
	}
	for _, q := range v.Questions {
		if err := d.Info(ctx, q.Label); err != nil {
			return err
		}
		switch q.Type {
		case models.CheckBox:
			for _, opt := range q.Options {
				checked, err := d.Confirm(ctx, opt)
				if err != nil {
					return err
				}
				r.ToggleCheckbox(q.ID, checked)
			}
		case models.Grid:
			for ri, row := range q.Rows {
				for ci, col := range q.Columns {
					val, err := d.Input(ctx, fmt.Sprintf("%s / %s", row, col))
					if err != nil {
						return err
					}
					r.EditGridCell(q.ID, ri, ci, val)
				}
			}
		case models.Text:
			// the label was already shown above
			val, err := d.Input(ctx, "Answer")
			if err != nil {
				return err
			}
			r.SetText(q.ID, val)
		}
	}
	return nil
}
