package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pteguide_backend/internals/features/users/account/dto"
	"pteguide_backend/internals/features/users/account/service"
	helper "pteguide_backend/internals/helpers"
)

type AccountController struct {
	DB       *gorm.DB
	service  *service.AccountService
	validate *validator.Validate
}

func NewAccountController(db *gorm.DB) *AccountController {
	return &AccountController{
		DB:       db,
		service:  service.NewAccountService(db),
		validate: validator.New(),
	}
}

// GET /login
func (ctrl *AccountController) LoginPage(c *fiber.Ctx) error {
	if _, name, ok := helper.CurrentUser(c); ok {
		return helper.Success(c, "Already signed in", fiber.Map{
			"user_name": name,
			"flashes":   helper.PopFlashes(c),
		})
	}
	return helper.Success(c, "Login", fiber.Map{
		"flashes": helper.PopFlashes(c),
	})
}

// POST /login
// One form serves both sign-in and registration; the action field picks.
func (ctrl *AccountController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request payload")
	}
	req.Normalize()
	if err := ctrl.validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	switch req.Action {
	case "register":
		created, err := ctrl.service.Register(req.Name, req.Pin)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrCredentialsRequired), errors.Is(err, service.ErrInvalidPIN):
				return helper.Error(c, fiber.StatusBadRequest, err.Error())
			case errors.Is(err, service.ErrDuplicate):
				return helper.Error(c, fiber.StatusConflict, err.Error())
			default:
				return helper.Error(c, fiber.StatusInternalServerError, "Failed to create account")
			}
		}
		if err := helper.SetSessionUser(c, created.ID, created.Name); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to start session")
		}
		helper.AddFlash(c, "Account created successfully! Welcome, "+created.Name+"!")
		return c.Redirect("/", fiber.StatusSeeOther)

	default: // login
		found, err := ctrl.service.Authenticate(req.Name, req.Pin)
		if err != nil {
			if errors.Is(err, service.ErrNoMatch) {
				return helper.Error(c, fiber.StatusUnauthorized, err.Error())
			}
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign in")
		}
		if err := helper.SetSessionUser(c, found.ID, found.Name); err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to start session")
		}
		_ = ctrl.service.TouchLastLogin(found)
		helper.AddFlash(c, "Welcome back, "+found.Name+"!")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// GET /logout
func (ctrl *AccountController) Logout(c *fiber.Ctx) error {
	_ = helper.ClearSessionUser(c)
	helper.AddFlash(c, "You have been logged out.")
	return c.Redirect("/", fiber.StatusSeeOther)
}
