package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"pteguide_backend/internals/features/guide/content/dto"
	"pteguide_backend/internals/features/guide/content/model"
	sectionModel "pteguide_backend/internals/features/guide/section/model"
	progressModel "pteguide_backend/internals/features/progress/model"
)

var (
	ErrSectionNotFound = errors.New("section not found")
	ErrContentNotFound = errors.New("content not found")
)

// Filters narrows a section listing. Completed/Favorites are tri-state query
// strings ("true"/"false"/empty) and only apply when UserID is set.
type Filters struct {
	ContentType string
	TagName     string
	Completed   string
	Favorites   string
	SortBy      string
	UserID      uint
}

type ContentService struct {
	db *gorm.DB
}

func NewContentService(db *gorm.DB) *ContentService {
	return &ContentService{db: db}
}

func (s *ContentService) ListSections() ([]sectionModel.SectionModel, error) {
	var sections []sectionModel.SectionModel
	err := s.db.Order("id asc").Find(&sections).Error
	return sections, err
}

func (s *ContentService) GetSectionByName(name string) (*sectionModel.SectionModel, error) {
	var section sectionModel.SectionModel
	if err := s.db.Where("name = ?", name).First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

func (s *ContentService) GetContent(id uint) (*model.ContentModel, error) {
	var content model.ContentModel
	err := s.db.Preload("ContentTags.Tag").Preload("Section").First(&content, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// ListBySection returns the active contents of a section after filters and
// sorting. Default order is sort_order asc then created_at asc.
func (s *ContentService) ListBySection(sectionID uint, f Filters) ([]model.ContentModel, error) {
	q := s.db.Model(&model.ContentModel{}).
		Preload("ContentTags.Tag").
		Where("contents.section_id = ? AND contents.is_active = ?", sectionID, true)

	if f.ContentType != "" {
		q = q.Where("contents.content_type = ?", f.ContentType)
	}
	if f.TagName != "" {
		q = q.Joins("JOIN content_tags ON content_tags.content_id = contents.id").
			Joins("JOIN tags ON tags.id = content_tags.tag_id").
			Where("tags.name = ?", f.TagName).
			Distinct("contents.*")
	}

	if f.UserID != 0 {
		completedIDs := s.db.Model(&progressModel.UserProgressModel{}).
			Select("content_id").
			Where("user_id = ? AND is_completed = ?", f.UserID, true)
		switch f.Completed {
		case "true":
			q = q.Where("contents.id IN (?)", completedIDs)
		case "false":
			q = q.Where("contents.id NOT IN (?)", completedIDs)
		}
		if f.Favorites == "true" {
			favoritedIDs := s.db.Model(&progressModel.UserProgressModel{}).
				Select("content_id").
				Where("user_id = ? AND is_favorited = ?", f.UserID, true)
			q = q.Where("contents.id IN (?)", favoritedIDs)
		}
	}

	switch f.SortBy {
	case "title":
		q = q.Order("contents.title asc")
	case "created":
		q = q.Order("contents.created_at desc")
	case "updated":
		q = q.Order("contents.updated_at desc")
	default:
		q = q.Order("contents.sort_order asc").Order("contents.created_at asc")
	}

	var contents []model.ContentModel
	err := q.Find(&contents).Error
	return contents, err
}

// AvailableTags lists the tags attached to any content of the section, for
// the filter dropdown.
func (s *ContentService) AvailableTags(sectionID uint) ([]model.TagModel, error) {
	var tags []model.TagModel
	err := s.db.Model(&model.TagModel{}).
		Joins("JOIN content_tags ON content_tags.tag_id = tags.id").
		Joins("JOIN contents ON contents.id = content_tags.content_id").
		Where("contents.section_id = ?", sectionID).
		Distinct("tags.*").
		Order("tags.name asc").
		Find(&tags).Error
	return tags, err
}

// Search does a case-insensitive substring match over title, description and
// text_content of active items; optional section/type filters are ANDed in.
// Results come back newest first.
func (s *ContentService) Search(query, sectionName, contentType string) ([]model.ContentModel, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	q := s.db.Model(&model.ContentModel{}).
		Preload("ContentTags.Tag").
		Where("contents.is_active = ?", true).
		Where("(LOWER(contents.title) LIKE ? OR LOWER(contents.description) LIKE ? OR LOWER(contents.text_content) LIKE ?)",
			pattern, pattern, pattern)

	if sectionName != "" {
		q = q.Joins("JOIN sections ON sections.id = contents.section_id").
			Where("sections.name = ?", sectionName)
	}
	if contentType != "" {
		q = q.Where("contents.content_type = ?", contentType)
	}

	var results []model.ContentModel
	err := q.Order("contents.created_at desc").Find(&results).Error
	return results, err
}

// Recent returns the newest active contents across all sections.
func (s *ContentService) Recent(limit int) ([]model.ContentModel, error) {
	var contents []model.ContentModel
	err := s.db.Preload("ContentTags.Tag").Preload("Section").
		Where("is_active = ?", true).
		Order("created_at desc").
		Limit(limit).
		Find(&contents).Error
	return contents, err
}

func (s *ContentService) Create(req *dto.ContentRequest) (*model.ContentModel, error) {
	var section sectionModel.SectionModel
	if err := s.db.First(&section, req.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	content := model.ContentModel{
		SectionID:   section.ID,
		Title:       req.Title,
		ContentType: req.ContentType,
		Description: req.Description,
		YoutubeURL:  req.YoutubeURL,
		TextContent: req.TextContent,
		SortOrder:   req.OrderValue(),
		IsActive:    true,
	}
	if req.IsActive != nil {
		content.IsActive = *req.IsActive
	}
	if err := s.db.Create(&content).Error; err != nil {
		return nil, err
	}
	content.Section = section
	return &content, nil
}

func (s *ContentService) Update(id uint, req *dto.ContentRequest) (*model.ContentModel, error) {
	var content model.ContentModel
	if err := s.db.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	var section sectionModel.SectionModel
	if err := s.db.First(&section, req.SectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}

	content.SectionID = section.ID
	content.Title = req.Title
	content.ContentType = req.ContentType
	content.Description = req.Description
	content.YoutubeURL = req.YoutubeURL
	content.TextContent = req.TextContent
	content.SortOrder = req.OrderValue()
	if req.IsActive != nil {
		content.IsActive = *req.IsActive
	}
	if err := s.db.Save(&content).Error; err != nil {
		return nil, err
	}
	content.Section = section
	return &content, nil
}

// Delete removes a content item and reports the owning section's name so the
// caller can redirect back to the listing.
func (s *ContentService) Delete(id uint) (sectionName, title string, err error) {
	var content model.ContentModel
	if err := s.db.Preload("Section").First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrContentNotFound
		}
		return "", "", err
	}
	if err := s.db.Delete(&content).Error; err != nil {
		return "", "", err
	}
	return content.Section.Name, content.Title, nil
}

func (s *ContentService) AddTag(contentID, tagID uint) error {
	ct := model.ContentTagModel{ContentID: contentID, TagID: tagID}
	return s.db.Where("content_id = ? AND tag_id = ?", contentID, tagID).
		FirstOrCreate(&ct).Error
}

// SyncTags makes the content's tag set exactly tagIDs, mirroring the edit
// form's checkbox semantics: unchecked means removed.
func (s *ContentService) SyncTags(contentID uint, tagIDs []uint) error {
	current, err := s.TagsOf(contentID)
	if err != nil {
		return err
	}

	want := make(map[uint]bool, len(tagIDs))
	for _, id := range tagIDs {
		want[id] = true
	}

	for _, tag := range current {
		if !want[tag.ID] {
			if err := s.RemoveTag(contentID, tag.ID); err != nil {
				return err
			}
		}
		delete(want, tag.ID)
	}
	for id := range want {
		if err := s.AddTag(contentID, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService) RemoveTag(contentID, tagID uint) error {
	return s.db.Where("content_id = ? AND tag_id = ?", contentID, tagID).
		Delete(&model.ContentTagModel{}).Error
}

// TagsOf returns a content item's tags ordered by name.
func (s *ContentService) TagsOf(contentID uint) ([]model.TagModel, error) {
	var tags []model.TagModel
	err := s.db.Model(&model.TagModel{}).
		Joins("JOIN content_tags ON content_tags.tag_id = tags.id").
		Where("content_tags.content_id = ?", contentID).
		Order("tags.name asc").
		Find(&tags).Error
	return tags, err
}

// DifficultyOf resolves the derived difficulty level, "" when untagged.
func (s *ContentService) DifficultyOf(contentID uint) (string, error) {
	tags, err := s.TagsOf(contentID)
	if err != nil {
		return "", err
	}
	return model.DifficultyFromTags(tags), nil
}
