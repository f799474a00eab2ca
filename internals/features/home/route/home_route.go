package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "pteguide_backend/internals/features/home/controller"
)

func HomeRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := homeController.NewHomeController(db)

	app.Get("/", ctrl.Home)
	app.Get("/search", ctrl.Search)
	app.Get("/health", ctrl.Health)
}
