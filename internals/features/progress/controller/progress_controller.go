package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pteguide_backend/internals/features/progress/dto"
	"pteguide_backend/internals/features/progress/service"
	helper "pteguide_backend/internals/helpers"
)

type ProgressController struct {
	DB       *gorm.DB
	service  *service.ProgressService
	validate *validator.Validate
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{
		DB:       db,
		service:  service.NewProgressService(db),
		validate: validator.New(),
	}
}

// POST /progress/toggle
// Called from the page scripts; speaks the raw {success, ...} contract rather
// than the envelope.
func (ctrl *ProgressController) Toggle(c *fiber.Ctx) error {
	userID, _, ok := helper.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Please login to track progress",
		})
	}

	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}

	result, err := ctrl.service.Toggle(userID, req.ContentID, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Content not found",
			})
		case errors.Is(err, service.ErrUnknownAction):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "Unknown action",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to update progress",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"is_completed": result.IsCompleted,
		"is_favorited": result.IsFavorited,
	})
}

// POST /progress/notes
func (ctrl *ProgressController) SaveNotes(c *fiber.Ctx) error {
	userID, _, ok := helper.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Please login to track progress",
		})
	}

	var req dto.NotesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}

	if err := ctrl.service.SaveNotes(userID, req.ContentID, req.Notes); err != nil {
		if errors.Is(err, service.ErrContentNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Content not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save notes",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Notes saved successfully!"})
}

// GET /progress
func (ctrl *ProgressController) ProgressPage(c *fiber.Ctx) error {
	userID, userName, _ := helper.CurrentUser(c)

	summary, err := ctrl.service.Summary(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load progress")
	}
	recent, err := ctrl.service.RecentCompleted(userID, 10)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load progress")
	}

	return helper.Success(c, "Your progress", fiber.Map{
		"user_name":        userName,
		"sections":         summary,
		"recent_completed": dto.ToProgressEntries(recent),
		"flashes":          helper.PopFlashes(c),
	})
}

// GET /favorites
func (ctrl *ProgressController) FavoritesPage(c *fiber.Ctx) error {
	userID, userName, _ := helper.CurrentUser(c)

	favorites, err := ctrl.service.Favorites(userID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load favorites")
	}

	return helper.Success(c, "Your favorites", fiber.Map{
		"user_name": userName,
		"favorites": dto.ToProgressEntries(favorites),
		"flashes":   helper.PopFlashes(c),
	})
}
