package model

import (
	"time"

	accountModel "pteguide_backend/internals/features/users/account/model"
)

// WhiteboardImageModel is a saved snapshot of the shared drawing surface.
// image_data keeps the original base64 payload; thumbnail_data is a derived
// webp data-URL and may be empty when the payload was not decodable.
type WhiteboardImageModel struct {
	ID            uint                          `gorm:"column:id;primaryKey" json:"id"`
	Title         string                        `gorm:"column:title;size:200;not null;default:'Untitled Whiteboard'" json:"title"`
	ImageData     string                        `gorm:"column:image_data;type:text;not null" json:"image_data"`
	ThumbnailData string                        `gorm:"column:thumbnail_data;type:text" json:"thumbnail_data"`
	CreatedByID   *uint                         `gorm:"column:created_by_id;index" json:"created_by_id"`
	CreatedBy     *accountModel.SimpleUserModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:CASCADE" json:"created_by,omitempty"`
	CreatedAt     time.Time                     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (WhiteboardImageModel) TableName() string {
	return "whiteboard_images"
}
