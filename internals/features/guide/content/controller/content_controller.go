package controller

import (
	"crypto/subtle"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pteguide_backend/internals/configs"
	"pteguide_backend/internals/features/guide/content/dto"
	"pteguide_backend/internals/features/guide/content/service"
	progressService "pteguide_backend/internals/features/progress/service"
	helper "pteguide_backend/internals/helpers"
	"pteguide_backend/internals/middlewares/auth"
)

type ContentController struct {
	DB       *gorm.DB
	service  *service.ContentService
	progress *progressService.ProgressService
	validate *validator.Validate
}

func NewContentController(db *gorm.DB) *ContentController {
	return &ContentController{
		DB:       db,
		service:  service.NewContentService(db),
		progress: progressService.NewProgressService(db),
		validate: validator.New(),
	}
}

// GET /section/:name
// The section page: filtered/sorted listing plus the tags available for the
// filter dropdown. Completion flags are folded in for signed-in users.
func (ctrl *ContentController) SectionDetail(c *fiber.Ctx) error {
	section, err := ctrl.service.GetSectionByName(c.Params("name"))
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Section not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load section")
	}

	userID, userName, signedIn := helper.CurrentUser(c)
	filters := service.Filters{
		ContentType: c.Query("type"),
		TagName:     c.Query("tag"),
		Completed:   c.Query("completed"),
		Favorites:   c.Query("favorites"),
		SortBy:      c.Query("sort"),
		UserID:      userID,
	}

	contents, err := ctrl.service.ListBySection(section.ID, filters)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load contents")
	}

	ids := make([]uint, 0, len(contents))
	for i := range contents {
		ids = append(ids, contents[i].ID)
	}
	progressMap := map[uint]struct{ completed, favorited bool }{}
	if signedIn {
		rows, err := ctrl.progress.MapForContents(userID, ids)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to load progress")
		}
		for id, row := range rows {
			progressMap[id] = struct{ completed, favorited bool }{row.IsCompleted, row.IsFavorited}
		}
	}

	views := make([]dto.ContentView, 0, len(contents))
	for i := range contents {
		p := progressMap[contents[i].ID]
		views = append(views, dto.ToContentView(&contents[i], p.completed, p.favorited))
	}

	tags, err := ctrl.service.AvailableTags(section.ID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load tags")
	}

	return helper.Success(c, "Section detail", fiber.Map{
		"section":        section,
		"contents":       views,
		"available_tags": dto.ToTagResponses(tags),
		"filters": fiber.Map{
			"type":      filters.ContentType,
			"tag":       filters.TagName,
			"completed": filters.Completed,
			"favorites": filters.Favorites,
			"sort":      filters.SortBy,
		},
		"user_name": userName,
		"edit_mode": ctrl.editMode(c),
		"flashes":   helper.PopFlashes(c),
	})
}

func (ctrl *ContentController) editMode(c *fiber.Ctx) bool {
	return auth.VerifyEditToken(configs.SessionSecret, helper.EditToken(c)) == nil
}

// POST /edit/authenticate
// Fixed shared passcode, not a per-user credential. On success the session
// receives a time-boxed edit capability token.
func (ctrl *ContentController) AuthenticateEdit(c *fiber.Ctx) error {
	passcode := c.FormValue("passcode")
	back := c.Get("Referer")
	if back == "" {
		back = "/"
	}

	if configs.EditPasscode == "" ||
		subtle.ConstantTimeCompare([]byte(passcode), []byte(configs.EditPasscode)) != 1 {
		helper.AddFlash(c, "Invalid passcode.")
		return c.Redirect(back, fiber.StatusSeeOther)
	}

	token, err := auth.IssueEditToken(configs.SessionSecret, configs.EditTokenTTL)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to enable edit mode")
	}
	if err := helper.SetEditToken(c, token); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to enable edit mode")
	}
	helper.AddFlash(c, "Edit mode enabled!")
	return c.Redirect(back, fiber.StatusSeeOther)
}

// GET /edit/logout
func (ctrl *ContentController) EditLogout(c *fiber.Ctx) error {
	_ = helper.ClearEditToken(c)
	helper.AddFlash(c, "Edit mode disabled.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// POST /content/new
func (ctrl *ContentController) Create(c *fiber.Ctx) error {
	var req dto.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	content, err := ctrl.service.Create(&req)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Section not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create content")
	}
	if err := ctrl.service.SyncTags(content.ID, req.TagIDs); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assign tags")
	}

	helper.AddFlash(c, "Content \""+content.Title+"\" created successfully!")
	return c.Redirect("/section/"+content.Section.Name, fiber.StatusSeeOther)
}

// GET /content/:id/edit
func (ctrl *ContentController) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid content id")
	}
	content, err := ctrl.service.GetContent(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load content")
	}

	sections, err := ctrl.service.ListSections()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load sections")
	}

	return helper.Success(c, "Edit content", fiber.Map{
		"content":  dto.ToContentView(content, false, false),
		"sections": sections,
		"flashes":  helper.PopFlashes(c),
	})
}

// POST /content/:id/edit
func (ctrl *ContentController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid content id")
	}

	var req dto.ContentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	content, err := ctrl.service.Update(uint(id), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Content not found")
		case errors.Is(err, service.ErrSectionNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Section not found")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update content")
		}
	}
	if err := ctrl.service.SyncTags(content.ID, req.TagIDs); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to assign tags")
	}

	helper.AddFlash(c, "Content \""+content.Title+"\" updated successfully!")
	return c.Redirect("/section/"+content.Section.Name, fiber.StatusSeeOther)
}

// POST /content/:id/delete
func (ctrl *ContentController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid content id")
	}

	sectionName, title, err := ctrl.service.Delete(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Content not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete content")
	}

	helper.AddFlash(c, "Content \""+title+"\" deleted successfully!")
	return c.Redirect("/section/"+sectionName, fiber.StatusSeeOther)
}
