// file: internals/features/scholarship/documents/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentCtl "iskolar_backend/internals/features/scholarship/documents/controller"
)

func DocumentUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := documentCtl.NewDocumentUserController(db)

	api.Post("/applications/:id/documents", ctl.Upload)
	api.Get("/applications/:id/documents", ctl.ListByApplication)
}
