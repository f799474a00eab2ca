package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ContentRoutes "pteguide_backend/internals/features/guide/content/route"
	HomeRoutes "pteguide_backend/internals/features/home/route"
	ProgressRoutes "pteguide_backend/internals/features/progress/route"
	SpellingRoutes "pteguide_backend/internals/features/spelling/route"
	AccountRoutes "pteguide_backend/internals/features/users/account/route"
	WhiteboardRoutes "pteguide_backend/internals/features/whiteboard/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("register routes: home, account, guide, progress, spelling, whiteboard")

	HomeRoutes.HomeRoutes(app, db)
	AccountRoutes.AccountRoutes(app, db)
	ContentRoutes.GuideRoutes(app, db)
	ProgressRoutes.ProgressRoutes(app, db)
	SpellingRoutes.SpellingRoutes(app, db)
	WhiteboardRoutes.WhiteboardRoutes(app, db)
}
