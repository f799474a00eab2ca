package model

import (
	"time"

	accountModel "pteguide_backend/internals/features/users/account/model"
)

// SpellingMistakeModel logs one incorrect/correct word pair per user. A repeat
// occurrence bumps frequency and drops the reviewed flag instead of inserting
// a second row; the pair match is case-insensitive.
type SpellingMistakeModel struct {
	ID            uint                         `gorm:"column:id;primaryKey" json:"id"`
	UserID        uint                         `gorm:"column:user_id;not null;index" json:"user_id"`
	User          accountModel.SimpleUserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	IncorrectWord string                       `gorm:"column:incorrect_word;size:100;not null" json:"incorrect_word"`
	CorrectWord   string                       `gorm:"column:correct_word;size:100;not null" json:"correct_word"`
	Context       string                       `gorm:"column:context;type:text" json:"context"`
	Notes         string                       `gorm:"column:notes;type:text" json:"notes"`
	Frequency     int                          `gorm:"column:frequency;not null;default:1" json:"frequency"`
	IsReviewed    bool                         `gorm:"column:is_reviewed;not null;default:false" json:"is_reviewed"`
	CreatedAt     time.Time                    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SpellingMistakeModel) TableName() string {
	return "spelling_mistakes"
}
