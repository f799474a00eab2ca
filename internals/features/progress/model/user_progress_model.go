package model

import (
	"time"

	contentModel "pteguide_backend/internals/features/guide/content/model"
	accountModel "pteguide_backend/internals/features/users/account/model"
)

// UserProgressModel holds per-user, per-content completion and favorite state.
// The paired timestamp is set exactly when its flag is set and cleared with it.
type UserProgressModel struct {
	ID          uint                         `gorm:"column:id;primaryKey" json:"id"`
	UserID      uint                         `gorm:"column:user_id;not null;uniqueIndex:idx_user_progress_pair" json:"user_id"`
	ContentID   uint                         `gorm:"column:content_id;not null;uniqueIndex:idx_user_progress_pair" json:"content_id"`
	User        accountModel.SimpleUserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Content     contentModel.ContentModel    `gorm:"foreignKey:ContentID;constraint:OnDelete:CASCADE" json:"content"`
	IsCompleted bool                         `gorm:"column:is_completed;not null;default:false" json:"is_completed"`
	IsFavorited bool                         `gorm:"column:is_favorited;not null;default:false" json:"is_favorited"`
	CompletedAt *time.Time                   `gorm:"column:completed_at" json:"completed_at"`
	FavoritedAt *time.Time                   `gorm:"column:favorited_at" json:"favorited_at"`
	Notes       string                       `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt   time.Time                    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProgressModel) TableName() string {
	return "user_progress"
}
