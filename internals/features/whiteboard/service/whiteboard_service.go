package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"pteguide_backend/internals/constants"
	"pteguide_backend/internals/features/whiteboard/model"
	helper "pteguide_backend/internals/helpers"
)

var (
	ErrNoImageData        = errors.New("No image data provided")
	ErrWhiteboardNotFound = errors.New("Whiteboard not found")
	ErrLoginRequired      = errors.New("Please login to delete whiteboards")
)

type WhiteboardService struct {
	db *gorm.DB
}

func NewWhiteboardService(db *gorm.DB) *WhiteboardService {
	return &WhiteboardService{db: db}
}

// Save stores a snapshot. The original base64 payload is kept verbatim; when
// it decodes as a raster image a webp thumbnail is derived for the gallery,
// otherwise the thumbnail stays empty and the save still succeeds.
func (s *WhiteboardService) Save(title, imageData string, createdBy *uint) (*model.WhiteboardImageModel, error) {
	if strings.TrimSpace(imageData) == "" {
		return nil, ErrNoImageData
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = constants.DefaultWhiteboardTitle
	}

	board := model.WhiteboardImageModel{
		Title:       title,
		ImageData:   imageData,
		CreatedByID: createdBy,
	}
	if thumb, err := helper.SnapshotThumbnail(imageData); err == nil {
		board.ThumbnailData = thumb
	}

	if err := s.db.Create(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

// List returns every saved whiteboard, most recent first.
func (s *WhiteboardService) List() ([]model.WhiteboardImageModel, error) {
	var boards []model.WhiteboardImageModel
	err := s.db.Preload("CreatedBy").Order("created_at desc").Find(&boards).Error
	return boards, err
}

// Delete removes a gallery item. The gallery is a shared surface: any
// signed-in user may delete any item, anonymous sessions may not.
func (s *WhiteboardService) Delete(id, userID uint) error {
	if userID == 0 {
		return ErrLoginRequired
	}
	var board model.WhiteboardImageModel
	if err := s.db.First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWhiteboardNotFound
		}
		return err
	}
	return s.db.Delete(&board).Error
}
