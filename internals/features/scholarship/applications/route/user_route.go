// file: internals/features/scholarship/applications/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationCtl "iskolar_backend/internals/features/scholarship/applications/controller"
)

func ApplicationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := applicationCtl.NewApplicationUserController(db, nil)

	api.Post("/applications", ctl.Submit)
	api.Get("/applications", ctl.ListMine)
	api.Get("/semesters/:id/can-submit", ctl.CanSubmit)
}
