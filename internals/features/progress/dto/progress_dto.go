package dto

import (
	"time"

	contentDTO "pteguide_backend/internals/features/guide/content/dto"
	progressModel "pteguide_backend/internals/features/progress/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type ToggleRequest struct {
	ContentID uint   `json:"content_id" form:"content_id" validate:"required"`
	Action    string `json:"action" form:"action" validate:"required,oneof=complete favorite"`
}

type NotesRequest struct {
	ContentID uint   `json:"content_id" form:"content_id" validate:"required"`
	Notes     string `json:"notes" form:"notes"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// ProgressEntry is a progress row joined with its content, as shown on the
// favorites and progress pages.
type ProgressEntry struct {
	Content     contentDTO.ContentView `json:"content"`
	SectionName string                 `json:"section_name"`
	Notes       string                 `json:"notes"`
	CompletedAt *time.Time             `json:"completed_at"`
	FavoritedAt *time.Time             `json:"favorited_at"`
}

func ToProgressEntry(p *progressModel.UserProgressModel) ProgressEntry {
	return ProgressEntry{
		Content:     contentDTO.ToContentView(&p.Content, p.IsCompleted, p.IsFavorited),
		SectionName: p.Content.Section.Name,
		Notes:       p.Notes,
		CompletedAt: p.CompletedAt,
		FavoritedAt: p.FavoritedAt,
	}
}

func ToProgressEntries(rows []progressModel.UserProgressModel) []ProgressEntry {
	out := make([]ProgressEntry, 0, len(rows))
	for i := range rows {
		out = append(out, ToProgressEntry(&rows[i]))
	}
	return out
}
