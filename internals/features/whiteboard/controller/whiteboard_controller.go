package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pteguide_backend/internals/features/whiteboard/dto"
	"pteguide_backend/internals/features/whiteboard/service"
	helper "pteguide_backend/internals/helpers"
)

type WhiteboardController struct {
	DB      *gorm.DB
	service *service.WhiteboardService
}

func NewWhiteboardController(db *gorm.DB) *WhiteboardController {
	return &WhiteboardController{
		DB:      db,
		service: service.NewWhiteboardService(db),
	}
}

// GET /whiteboard
func (ctrl *WhiteboardController) Page(c *fiber.Ctx) error {
	_, userName, _ := helper.CurrentUser(c)
	return helper.Success(c, "Whiteboard", fiber.Map{
		"user_name": userName,
		"flashes":   helper.PopFlashes(c),
	})
}

// GET /whiteboard/gallery
func (ctrl *WhiteboardController) Gallery(c *fiber.Ctx) error {
	_, userName, signedIn := helper.CurrentUser(c)

	boards, err := ctrl.service.List()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load gallery")
	}

	return helper.Success(c, "Whiteboard gallery", fiber.Map{
		"user_name":   userName,
		"can_delete":  signedIn,
		"whiteboards": dto.ToWhiteboardResponses(boards),
		"flashes":     helper.PopFlashes(c),
	})
}

// POST /whiteboard/save
// Raw {success, ...} contract, called by the canvas script.
func (ctrl *WhiteboardController) Save(c *fiber.Ctx) error {
	var req dto.SaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}

	var createdBy *uint
	if userID, _, ok := helper.CurrentUser(c); ok {
		createdBy = &userID
	}

	board, err := ctrl.service.Save(req.Title, req.ImageData, createdBy)
	if err != nil {
		if errors.Is(err, service.ErrNoImageData) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   "No image data provided",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to save whiteboard",
		})
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"message":       "Whiteboard saved successfully!",
		"whiteboard_id": board.ID,
	})
}

// POST /whiteboard/:id/delete
func (ctrl *WhiteboardController) Delete(c *fiber.Ctx) error {
	userID, _, _ := helper.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid whiteboard id",
		})
	}

	if err := ctrl.service.Delete(uint(id), userID); err != nil {
		switch {
		case errors.Is(err, service.ErrLoginRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Please login to delete whiteboards",
			})
		case errors.Is(err, service.ErrWhiteboardNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Whiteboard not found",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"success": false,
				"error":   "Failed to delete whiteboard",
			})
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Whiteboard deleted successfully!",
	})
}
