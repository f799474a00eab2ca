package dto

import "strings"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// MistakeRequest serves add and edit. Blank-word validation lives in the
// service so form and JSON callers share one path.
type MistakeRequest struct {
	IncorrectWord string `json:"incorrect_word" form:"incorrect_word" validate:"required,max=100"`
	CorrectWord   string `json:"correct_word" form:"correct_word" validate:"required,max=100"`
	Context       string `json:"context" form:"context"`
	Notes         string `json:"notes" form:"notes"`
}

func (r *MistakeRequest) Normalize() {
	r.IncorrectWord = strings.TrimSpace(r.IncorrectWord)
	r.CorrectWord = strings.TrimSpace(r.CorrectWord)
	r.Context = strings.TrimSpace(r.Context)
	r.Notes = strings.TrimSpace(r.Notes)
}

type ToggleReviewRequest struct {
	MistakeID uint `json:"mistake_id" form:"mistake_id" validate:"required"`
}
