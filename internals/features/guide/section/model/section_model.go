package model

import "time"

// SectionModel is one of the fixed exam-skill categories (speaking, writing,
// reading, listening, collaborative). Rows are seeded at setup.
type SectionModel struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:20;unique;not null" json:"name"`
	Title       string    `gorm:"column:title;size:100;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SectionModel) TableName() string {
	return "sections"
}
