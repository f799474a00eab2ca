package model

import "time"

type TagModel struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:50;unique;not null" json:"name"`
	Color       string    `gorm:"column:color;size:7;not null;default:'#007bff'" json:"color"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TagModel) TableName() string {
	return "tags"
}

// ContentTagModel joins contents and tags; the pair is unique and rows go
// away with either parent.
type ContentTagModel struct {
	ID        uint         `gorm:"column:id;primaryKey" json:"id"`
	ContentID uint         `gorm:"column:content_id;not null;uniqueIndex:idx_content_tags_pair" json:"content_id"`
	TagID     uint         `gorm:"column:tag_id;not null;uniqueIndex:idx_content_tags_pair" json:"tag_id"`
	Content   *ContentModel `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"-"`
	Tag       TagModel     `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"tag"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContentTagModel) TableName() string {
	return "content_tags"
}
