package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentController "pteguide_backend/internals/features/guide/content/controller"
	"pteguide_backend/internals/middlewares/auth"
)

func GuideRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := contentController.NewContentController(db)

	app.Get("/section/:name", ctrl.SectionDetail)

	app.Post("/edit/authenticate", ctrl.AuthenticateEdit)
	app.Get("/edit/logout", ctrl.EditLogout)

	// content mutations need the edit capability
	edit := app.Group("/content", auth.RequireEditMode())
	edit.Post("/new", ctrl.Create)
	edit.Get("/:id/edit", ctrl.EditPage)
	edit.Post("/:id/edit", ctrl.Update)
	edit.Post("/:id/delete", ctrl.Delete)
}
