package model

import (
	"time"

	sectionModel "pteguide_backend/internals/features/guide/section/model"
	helper "pteguide_backend/internals/helpers"
)

// ContentModel is a single learning resource inside a section. content_type
// decides which payload column is meaningful: youtube_url for "video",
// text_content for "note" and "text" (not enforced at storage level).
type ContentModel struct {
	ID          uint                      `gorm:"column:id;primaryKey" json:"id"`
	SectionID   uint                      `gorm:"column:section_id;not null;index" json:"section_id"`
	Section     sectionModel.SectionModel `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"-"`
	Title       string                    `gorm:"column:title;size:200;not null" json:"title"`
	ContentType string                    `gorm:"column:content_type;size:10;not null" json:"content_type"`
	Description string                    `gorm:"column:description;type:text" json:"description"`
	YoutubeURL  string                    `gorm:"column:youtube_url;type:text" json:"youtube_url"`
	TextContent string                    `gorm:"column:text_content;type:text" json:"text_content"`
	SortOrder   int                       `gorm:"column:sort_order;not null;default:0" json:"sort_order"`
	IsActive    bool                      `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt   time.Time                 `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                 `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	ContentTags []ContentTagModel `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ContentModel) TableName() string {
	return "contents"
}

// EmbedURL derives the canonical YouTube embed URL for video items.
func (m *ContentModel) EmbedURL() string {
	return helper.YouTubeEmbedURL(m.YoutubeURL)
}

// Tags unpacks the preloaded join rows.
func (m *ContentModel) Tags() []TagModel {
	tags := make([]TagModel, 0, len(m.ContentTags))
	for _, ct := range m.ContentTags {
		tags = append(tags, ct.Tag)
	}
	return tags
}
