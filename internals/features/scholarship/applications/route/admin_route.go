// file: internals/features/scholarship/applications/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"iskolar_backend/internals/constants"
	applicationCtl "iskolar_backend/internals/features/scholarship/applications/controller"
	authMiddleware "iskolar_backend/internals/middlewares/auth"
)

func ApplicationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := applicationCtl.NewApplicationAdminController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("reviewing applications"),
			constants.AdminOnly,
		),
	)

	base.Get("/semesters/:id/applications", ctl.ListBySemester)
	base.Get("/applications/:id", ctl.GetByID)
	base.Patch("/applications/:id/status", ctl.UpdateStatus)
}
