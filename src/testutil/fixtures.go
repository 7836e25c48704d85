// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"formbuilder/src/models"
)

// SurveyRequest is a form with one question of every type.
func SurveyRequest() models.CreateFormRequest {
	return models.CreateFormRequest{
		Title:       "Survey",
		HeaderImage: "blob:http://localhost/header",
		Questions: []models.Question{
			{
				Type:    models.CheckBox,
				Label:   "Pick one",
				Options: []string{"A", "B"},
				Grid:    models.GridLayout{Rows: []string{""}, Columns: []string{""}},
			},
			{
				Type:    models.Text,
				Label:   "Your name",
				Options: []string{},
				Grid:    models.GridLayout{Rows: []string{""}, Columns: []string{""}},
			},
			{
				Type:    models.Grid,
				Label:   "Rate us",
				Image:   "blob:http://localhost/grid",
				Options: []string{},
				Grid:    models.GridLayout{Rows: []string{"Speed", "Price"}, Columns: []string{"Good", "Bad"}},
			},
		},
	}
}

// FormFromRequest is what a store returns after saving req under id, with question ids qids.
func FormFromRequest(req models.CreateFormRequest, qids ...string) *models.Form {
	form := &models.Form{
		Title:       req.Title,
		HeaderImage: req.HeaderImage,
	}
	for i, q := range req.Questions {
		q = q.Clone()
		if i < len(qids) {
			q.ID = qids[i]
		}
		form.Questions = append(form.Questions, q)
	}
	return form
}
