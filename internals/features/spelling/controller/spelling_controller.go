package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pteguide_backend/internals/features/spelling/dto"
	"pteguide_backend/internals/features/spelling/service"
	helper "pteguide_backend/internals/helpers"
)

type SpellingController struct {
	DB       *gorm.DB
	service  *service.SpellingService
	validate *validator.Validate
}

func NewSpellingController(db *gorm.DB) *SpellingController {
	return &SpellingController{
		DB:       db,
		service:  service.NewSpellingService(db),
		validate: validator.New(),
	}
}

// GET /spelling
func (ctrl *SpellingController) List(c *fiber.Ctx) error {
	userID, userName, _ := helper.CurrentUser(c)

	mistakes, err := ctrl.service.List(userID, c.Query("reviewed"), c.Query("q"))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load spelling mistakes")
	}

	return helper.Success(c, "Spelling practice", fiber.Map{
		"user_name": userName,
		"mistakes":  mistakes,
		"filters": fiber.Map{
			"reviewed": c.Query("reviewed"),
			"q":        c.Query("q"),
		},
		"flashes": helper.PopFlashes(c),
	})
}

// POST /spelling/add
func (ctrl *SpellingController) Add(c *fiber.Ctx) error {
	userID, _, _ := helper.CurrentUser(c)

	var req dto.MistakeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	mistake, err := ctrl.service.Add(userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrWordsRequired) {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save spelling mistake")
	}

	if mistake.Frequency > 1 {
		helper.AddFlash(c, "Mistake recorded again, seen "+strconv.Itoa(mistake.Frequency)+" times now.")
	} else {
		helper.AddFlash(c, "Spelling mistake added!")
	}
	return c.Redirect("/spelling", fiber.StatusSeeOther)
}

// POST /spelling/toggle-review
func (ctrl *SpellingController) ToggleReview(c *fiber.Ctx) error {
	userID, _, ok := helper.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "Please login to track spelling practice",
		})
	}

	var req dto.ToggleReviewRequest
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

	mistake, err := ctrl.service.ToggleReviewed(userID, req.MistakeID)
	if err != nil {
		if errors.Is(err, service.ErrMistakeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   "Spelling mistake not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to update spelling mistake",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"is_reviewed": mistake.IsReviewed,
	})
}

// GET /spelling/:id/edit
func (ctrl *SpellingController) EditPage(c *fiber.Ctx) error {
	userID, _, _ := helper.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid mistake id")
	}
	mistake, err := ctrl.service.Get(userID, uint(id))
	if err != nil {
		if errors.Is(err, service.ErrMistakeNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Spelling mistake not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to load spelling mistake")
	}

	return helper.Success(c, "Edit spelling mistake", fiber.Map{
		"mistake": mistake,
		"flashes": helper.PopFlashes(c),
	})
}

// POST /spelling/:id/edit
func (ctrl *SpellingController) Update(c *fiber.Ctx) error {
	userID, _, _ := helper.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid mistake id")
	}

	var req dto.MistakeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if _, err := ctrl.service.Update(userID, uint(id), &req); err != nil {
		switch {
		case errors.Is(err, service.ErrWordsRequired):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrMistakeNotFound):
			return helper.Error(c, fiber.StatusNotFound, "Spelling mistake not found")
		default:
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to update spelling mistake")
		}
	}

	helper.AddFlash(c, "Spelling mistake updated!")
	return c.Redirect("/spelling", fiber.StatusSeeOther)
}

// GET /spelling/:id/delete shows the row for confirmation; POST deletes it.
func (ctrl *SpellingController) DeletePage(c *fiber.Ctx) error {
	return ctrl.EditPage(c)
}

// POST /spelling/:id/delete
func (ctrl *SpellingController) Delete(c *fiber.Ctx) error {
	userID, _, _ := helper.CurrentUser(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid mistake id")
	}
	if err := ctrl.service.Delete(userID, uint(id)); err != nil {
		if errors.Is(err, service.ErrMistakeNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Spelling mistake not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete spelling mistake")
	}

	helper.AddFlash(c, "Spelling mistake deleted.")
	return c.Redirect("/spelling", fiber.StatusSeeOther)
}
