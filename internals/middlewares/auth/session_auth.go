package auth

import (
	"github.com/gofiber/fiber/v2"

	"pteguide_backend/internals/configs"
	helper "pteguide_backend/internals/helpers"
)

// RequireUser guards page routes that need a signed-in user; anonymous
// sessions are redirected to the login page.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, _, ok := helper.CurrentUser(c); !ok {
			helper.AddFlash(c, "Please login first.")
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// RequireEditMode guards content mutation routes behind the edit capability
// token issued by the passcode check.
func RequireEditMode() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := VerifyEditToken(configs.SessionSecret, helper.EditToken(c)); err != nil {
			helper.AddFlash(c, "You need to authenticate first.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}
