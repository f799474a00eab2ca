package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentDTO "pteguide_backend/internals/features/guide/content/dto"
	contentModel "pteguide_backend/internals/features/guide/content/model"
	contentService "pteguide_backend/internals/features/guide/content/service"
	helper "pteguide_backend/internals/helpers"
)

type HomeController struct {
	DB      *gorm.DB
	content *contentService.ContentService
}

func NewHomeController(db *gorm.DB) *HomeController {
	return &HomeController{
		DB:      db,
		content: contentService.NewContentService(db),
	}
}

// GET /
// The landing page: section cards, the five newest items, and inline search
// results when a query is present.
func (ctrl *HomeController) Home(c *fiber.Ctx) error {
	_, userName, _ := helper.CurrentUser(c)

	sections, err := ctrl.content.ListSections()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load sections")
	}
	recent, err := ctrl.content.Recent(5)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load recent contents")
	}

	payload := fiber.Map{
		"sections":  sections,
		"recent":    toViews(recent),
		"user_name": userName,
		"flashes":   helper.PopFlashes(c),
	}

	if q := c.Query("q"); q != "" {
		results, err := ctrl.content.Search(q, "", "")
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Search failed")
		}
		if len(results) > 10 {
			results = results[:10]
		}
		payload["search_query"] = q
		payload["search_results"] = toViews(results)
	}

	return helper.Success(c, "PTE Guide", payload)
}

// GET /search?q=&section=&type=
func (ctrl *HomeController) Search(c *fiber.Ctx) error {
	query := c.Query("q")
	results, err := ctrl.content.Search(query, c.Query("section"), c.Query("type"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Search failed")
	}

	return helper.Success(c, "Search results", fiber.Map{
		"query":   query,
		"section": c.Query("section"),
		"type":    c.Query("type"),
		"count":   len(results),
		"results": toViews(results),
	})
}

// GET /health
func (ctrl *HomeController) Health(c *fiber.Ctx) error {
	dbStatus := "ok"
	if sqlDB, err := ctrl.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"message":  "PTE Guide is running!",
		"database": dbStatus,
		"features": []string{
			"study guide",
			"progress tracking",
			"spelling practice",
			"whiteboard",
			"search",
		},
	})
}

func toViews(contents []contentModel.ContentModel) []contentDTO.ContentView {
	views := make([]contentDTO.ContentView, 0, len(contents))
	for i := range contents {
		views = append(views, contentDTO.ToContentView(&contents[i], false, false))
	}
	return views
}
