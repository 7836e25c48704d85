package models

import "time"

// FormStats is maintained by the background worker, one document per form id.
type FormStats struct {
	FormID         string     `bson:"formId" json:"formId"`
	ResponseCount  int64      `bson:"responseCount" json:"responseCount"`
	LastResponseAt *time.Time `bson:"lastResponseAt,omitempty" json:"lastResponseAt,omitempty"`
}
