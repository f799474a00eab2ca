package service

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	contentModel "pteguide_backend/internals/features/guide/content/model"
	sectionModel "pteguide_backend/internals/features/guide/section/model"
	"pteguide_backend/internals/features/progress/model"
)

const (
	ActionComplete = "complete"
	ActionFavorite = "favorite"
)

var (
	ErrContentNotFound = errors.New("content not found")
	ErrUnknownAction   = errors.New("unknown action")
)

type ToggleResult struct {
	IsCompleted bool `json:"is_completed"`
	IsFavorited bool `json:"is_favorited"`
}

// SectionSummary is one row of the per-section completion report.
type SectionSummary struct {
	Section    sectionModel.SectionModel `json:"section"`
	Total      int64                     `json:"total"`
	Completed  int64                     `json:"completed"`
	Percentage float64                   `json:"percentage"`
}

type ProgressService struct {
	db *gorm.DB
}

func NewProgressService(db *gorm.DB) *ProgressService {
	return &ProgressService{db: db}
}

// Toggle flips one flag of the (user, content) progress row, creating the row
// on first touch. Flag and paired timestamp move together inside a single
// transaction; the unique pair index backstops concurrent first toggles.
func (s *ProgressService) Toggle(userID, contentID uint, action string) (*ToggleResult, error) {
	if action != ActionComplete && action != ActionFavorite {
		return nil, ErrUnknownAction
	}

	var result ToggleResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var content contentModel.ContentModel
		if err := tx.First(&content, contentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}

		progress, err := s.lockRow(tx, userID, contentID)
		if err != nil {
			return err
		}

		now := time.Now()
		switch action {
		case ActionComplete:
			progress.IsCompleted = !progress.IsCompleted
			if progress.IsCompleted {
				progress.CompletedAt = &now
			} else {
				progress.CompletedAt = nil
			}
		case ActionFavorite:
			progress.IsFavorited = !progress.IsFavorited
			if progress.IsFavorited {
				progress.FavoritedAt = &now
			} else {
				progress.FavoritedAt = nil
			}
		}

		if err := tx.Model(progress).Updates(map[string]interface{}{
			"is_completed": progress.IsCompleted,
			"is_favorited": progress.IsFavorited,
			"completed_at": progress.CompletedAt,
			"favorited_at": progress.FavoritedAt,
		}).Error; err != nil {
			return err
		}
		result = ToggleResult{IsCompleted: progress.IsCompleted, IsFavorited: progress.IsFavorited}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SaveNotes upserts the progress row and stores the user's free-text notes.
func (s *ProgressService) SaveNotes(userID, contentID uint, notes string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var content contentModel.ContentModel
		if err := tx.First(&content, contentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContentNotFound
			}
			return err
		}
		progress, err := s.lockRow(tx, userID, contentID)
		if err != nil {
			return err
		}
		return tx.Model(progress).Update("notes", notes).Error
	})
}

// lockRow fetches the progress row, creating it when absent. The insert uses
// ON CONFLICT DO NOTHING so a concurrent first toggle cannot duplicate the
// pair or poison the transaction; the re-read picks up the winner's row.
func (s *ProgressService) lockRow(tx *gorm.DB, userID, contentID uint) (*model.UserProgressModel, error) {
	var progress model.UserProgressModel
	err := tx.Where("user_id = ? AND content_id = ?", userID, contentID).First(&progress).Error
	if err == nil {
		return &progress, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress = model.UserProgressModel{UserID: userID, ContentID: contentID}
	if err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
		DoNothing: true,
	}).Create(&progress).Error; err != nil {
		return nil, err
	}
	if progress.ID == 0 {
		if err := tx.Where("user_id = ? AND content_id = ?", userID, contentID).First(&progress).Error; err != nil {
			return nil, err
		}
	}
	return &progress, nil
}

// MapForContents returns the user's progress rows keyed by content id, for
// decorating a listing in one query.
func (s *ProgressService) MapForContents(userID uint, contentIDs []uint) (map[uint]model.UserProgressModel, error) {
	out := make(map[uint]model.UserProgressModel, len(contentIDs))
	if userID == 0 || len(contentIDs) == 0 {
		return out, nil
	}
	var rows []model.UserProgressModel
	if err := s.db.Where("user_id = ? AND content_id IN ?", userID, contentIDs).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		out[rows[i].ContentID] = rows[i]
	}
	return out, nil
}

// Summary reports completion per section over active content only. A section
// with no active content reads as 0 percent.
func (s *ProgressService) Summary(userID uint) ([]SectionSummary, error) {
	var sections []sectionModel.SectionModel
	if err := s.db.Order("id asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	summaries := make([]SectionSummary, 0, len(sections))
	for _, section := range sections {
		var total, completed int64
		if err := s.db.Model(&contentModel.ContentModel{}).
			Where("section_id = ? AND is_active = ?", section.ID, true).
			Count(&total).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&model.UserProgressModel{}).
			Joins("JOIN contents ON contents.id = user_progress.content_id").
			Where("user_progress.user_id = ? AND user_progress.is_completed = ?", userID, true).
			Where("contents.section_id = ? AND contents.is_active = ?", section.ID, true).
			Count(&completed).Error; err != nil {
			return nil, err
		}

		var percentage float64
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}
		summaries = append(summaries, SectionSummary{
			Section:    section,
			Total:      total,
			Completed:  completed,
			Percentage: percentage,
		})
	}
	return summaries, nil
}

// RecentCompleted lists the user's latest completions, newest first.
func (s *ProgressService) RecentCompleted(userID uint, limit int) ([]model.UserProgressModel, error) {
	var rows []model.UserProgressModel
	err := s.db.Preload("Content.ContentTags.Tag").Preload("Content.Section").
		Where("user_id = ? AND is_completed = ?", userID, true).
		Order("completed_at desc").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// Favorites lists the user's favorited content, most recently favorited first.
func (s *ProgressService) Favorites(userID uint) ([]model.UserProgressModel, error) {
	var rows []model.UserProgressModel
	err := s.db.Preload("Content.ContentTags.Tag").Preload("Content.Section").
		Where("user_id = ? AND is_favorited = ?", userID, true).
		Order("favorited_at desc").
		Find(&rows).Error
	return rows, err
}
