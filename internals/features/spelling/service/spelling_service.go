package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"pteguide_backend/internals/features/spelling/dto"
	"pteguide_backend/internals/features/spelling/model"
)

var (
	ErrWordsRequired   = errors.New("both the incorrect and correct words are required")
	ErrMistakeNotFound = errors.New("spelling mistake not found")
)

type SpellingService struct {
	db *gorm.DB
}

func NewSpellingService(db *gorm.DB) *SpellingService {
	return &SpellingService{db: db}
}

// Add records an occurrence of a mistake. A case-insensitive match on the
// user's (incorrect, correct) pair bumps the existing row's frequency and
// drops its reviewed flag — a repeat occurrence needs re-review — instead of
// inserting a duplicate. Context and notes only overwrite with non-empty
// input. The lookup-then-write runs in one transaction.
func (s *SpellingService) Add(userID uint, req *dto.MistakeRequest) (*model.SpellingMistakeModel, error) {
	if req.IncorrectWord == "" || req.CorrectWord == "" {
		return nil, ErrWordsRequired
	}

	var mistake model.SpellingMistakeModel
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(
			"user_id = ? AND LOWER(incorrect_word) = ? AND LOWER(correct_word) = ?",
			userID, strings.ToLower(req.IncorrectWord), strings.ToLower(req.CorrectWord),
		).First(&mistake).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			mistake = model.SpellingMistakeModel{
				UserID:        userID,
				IncorrectWord: req.IncorrectWord,
				CorrectWord:   req.CorrectWord,
				Context:       req.Context,
				Notes:         req.Notes,
				Frequency:     1,
			}
			return tx.Create(&mistake).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{
			"frequency":   gorm.Expr("frequency + 1"),
			"is_reviewed": false,
		}
		if req.Context != "" {
			updates["context"] = req.Context
		}
		if req.Notes != "" {
			updates["notes"] = req.Notes
		}
		if err := tx.Model(&mistake).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&mistake, mistake.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &mistake, nil
}

// Get returns a mistake only when it belongs to the requesting user; rows
// owned by anyone else read as not found.
func (s *SpellingService) Get(userID, id uint) (*model.SpellingMistakeModel, error) {
	var mistake model.SpellingMistakeModel
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&mistake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMistakeNotFound
		}
		return nil, err
	}
	return &mistake, nil
}

func (s *SpellingService) Update(userID, id uint, req *dto.MistakeRequest) (*model.SpellingMistakeModel, error) {
	if req.IncorrectWord == "" || req.CorrectWord == "" {
		return nil, ErrWordsRequired
	}
	mistake, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	mistake.IncorrectWord = req.IncorrectWord
	mistake.CorrectWord = req.CorrectWord
	mistake.Context = req.Context
	mistake.Notes = req.Notes
	if err := s.db.Save(mistake).Error; err != nil {
		return nil, err
	}
	return mistake, nil
}

func (s *SpellingService) Delete(userID, id uint) error {
	mistake, err := s.Get(userID, id)
	if err != nil {
		return err
	}
	return s.db.Delete(mistake).Error
}

func (s *SpellingService) ToggleReviewed(userID, id uint) (*model.SpellingMistakeModel, error) {
	mistake, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	mistake.IsReviewed = !mistake.IsReviewed
	if err := s.db.Model(mistake).Update("is_reviewed", mistake.IsReviewed).Error; err != nil {
		return nil, err
	}
	return mistake, nil
}

// List filters the user's log. reviewed is tri-state ("true"/"false"/empty);
// search matches incorrect word, correct word or context, case-insensitively.
// Most frequent mistakes come first.
func (s *SpellingService) List(userID uint, reviewed, search string) ([]model.SpellingMistakeModel, error) {
	q := s.db.Where("user_id = ?", userID)

	switch reviewed {
	case "true":
		q = q.Where("is_reviewed = ?", true)
	case "false":
		q = q.Where("is_reviewed = ?", false)
	}

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"(LOWER(incorrect_word) LIKE ? OR LOWER(correct_word) LIKE ? OR LOWER(context) LIKE ?)",
			pattern, pattern, pattern,
		)
	}

	var mistakes []model.SpellingMistakeModel
	err := q.Order("frequency desc").Order("updated_at desc").Find(&mistakes).Error
	return mistakes, err
}
