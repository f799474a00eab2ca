package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressController "pteguide_backend/internals/features/progress/controller"
	"pteguide_backend/internals/middlewares/auth"
)

func ProgressRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := progressController.NewProgressController(db)

	// JSON actions check the session themselves so they can answer with the
	// {success:false} contract instead of a redirect
	app.Post("/progress/toggle", ctrl.Toggle)
	app.Post("/progress/notes", ctrl.SaveNotes)

	app.Get("/progress", auth.RequireUser(), ctrl.ProgressPage)
	app.Get("/favorites", auth.RequireUser(), ctrl.FavoritesPage)
}
