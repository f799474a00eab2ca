package dto

import (
	"strconv"
	"strings"
	"time"

	contentModel "pteguide_backend/internals/features/guide/content/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// ContentRequest covers both create and update; one validated path.
type ContentRequest struct {
	SectionID   uint   `json:"section_id" form:"section_id" validate:"required"`
	Title       string `json:"title" form:"title" validate:"required,max=200"`
	ContentType string `json:"content_type" form:"content_type" validate:"required,oneof=video note text"`
	Description string `json:"description" form:"description"`
	YoutubeURL  string `json:"youtube_url" form:"youtube_url"`
	TextContent string `json:"text_content" form:"text_content"`
	Order       string `json:"order" form:"order"`
	IsActive    *bool  `json:"is_active" form:"is_active"`
	TagIDs      []uint `json:"tag_ids" form:"tag_ids"`
}

func (r *ContentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.ContentType = strings.TrimSpace(strings.ToLower(r.ContentType))
	r.YoutubeURL = cleanYoutubeURL(r.YoutubeURL)
	r.Order = strings.TrimSpace(r.Order)
}

// OrderValue parses the display order leniently: blank, garbage or negative
// input all collapse to 0.
func (r *ContentRequest) OrderValue() int {
	n, err := strconv.Atoi(r.Order)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// cleanYoutubeURL drops the literal "None"/"null" strings that stringified
// empty values leave behind in imported data.
func cleanYoutubeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	switch strings.ToLower(raw) {
	case "none", "null":
		return ""
	}
	return raw
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type TagResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func ToTagResponse(m *contentModel.TagModel) TagResponse {
	return TagResponse{ID: m.ID, Name: m.Name, Color: m.Color, Description: m.Description}
}

func ToTagResponses(tags []contentModel.TagModel) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, ToTagResponse(&tags[i]))
	}
	return out
}

// ContentView is the listing/detail shape: the stored row plus the derived
// embed URL, tag set, difficulty and the viewer's progress flags.
type ContentView struct {
	ID          uint          `json:"id"`
	SectionID   uint          `json:"section_id"`
	Title       string        `json:"title"`
	ContentType string        `json:"content_type"`
	Description string        `json:"description"`
	YoutubeURL  string        `json:"youtube_url"`
	EmbedURL    string        `json:"embed_url"`
	TextContent string        `json:"text_content"`
	SortOrder   int           `json:"sort_order"`
	IsActive    bool          `json:"is_active"`
	Tags        []TagResponse `json:"tags"`
	Difficulty  string        `json:"difficulty,omitempty"`
	IsCompleted bool          `json:"is_completed"`
	IsFavorited bool          `json:"is_favorited"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func ToContentView(m *contentModel.ContentModel, isCompleted, isFavorited bool) ContentView {
	tags := m.Tags()
	return ContentView{
		ID:          m.ID,
		SectionID:   m.SectionID,
		Title:       m.Title,
		ContentType: m.ContentType,
		Description: m.Description,
		YoutubeURL:  m.YoutubeURL,
		EmbedURL:    m.EmbedURL(),
		TextContent: m.TextContent,
		SortOrder:   m.SortOrder,
		IsActive:    m.IsActive,
		Tags:        ToTagResponses(tags),
		Difficulty:  contentModel.DifficultyFromTags(tags),
		IsCompleted: isCompleted,
		IsFavorited: isFavorited,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
