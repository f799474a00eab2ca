package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	spellingController "pteguide_backend/internals/features/spelling/controller"
	"pteguide_backend/internals/middlewares/auth"
)

func SpellingRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := spellingController.NewSpellingController(db)

	// JSON action checks the session itself so it can answer with the
	// {success:false} contract instead of a redirect
	app.Post("/spelling/toggle-review", ctrl.ToggleReview)

	spelling := app.Group("/spelling", auth.RequireUser())
	spelling.Get("/", ctrl.List)
	spelling.Post("/add", ctrl.Add)
	spelling.Get("/:id/edit", ctrl.EditPage)
	spelling.Post("/:id/edit", ctrl.Update)
	spelling.Get("/:id/delete", ctrl.DeletePage)
	spelling.Post("/:id/delete", ctrl.Delete)
}
