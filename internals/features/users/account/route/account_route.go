package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountController "pteguide_backend/internals/features/users/account/controller"
)

func AccountRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := accountController.NewAccountController(db)

	app.Get("/login", ctrl.LoginPage)
	app.Post("/login", ctrl.Login)
	app.Get("/logout", ctrl.Logout)
}
