package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Response is one respondent's answer set. FormID is kept verbatim and is never
// checked against the forms collection.
type Response struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID      string             `bson:"formId" json:"formId"`
	Responses   []Answer           `bson:"responses" json:"responses"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// Answer holds a bool for CheckBox and a string for Text and Grid questions.
type Answer struct {
	QuestionID string `bson:"questionId" json:"questionId"`
	Answer     any    `bson:"answer" json:"answer"`
}

// SubmitResponseRequest is the body of POST /api/submit-response.
type SubmitResponseRequest struct {
	FormID    string   `json:"formId"`
	Responses []Answer `json:"responses"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
