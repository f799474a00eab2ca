package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	whiteboardController "pteguide_backend/internals/features/whiteboard/controller"
)

func WhiteboardRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := whiteboardController.NewWhiteboardController(db)

	app.Get("/whiteboard", ctrl.Page)
	app.Get("/whiteboard/gallery", ctrl.Gallery)
	app.Post("/whiteboard/save", ctrl.Save)
	// delete stays open at the route level; the service enforces the
	// signed-in rule so the JSON contract survives
	app.Post("/whiteboard/:id/delete", ctrl.Delete)
}
