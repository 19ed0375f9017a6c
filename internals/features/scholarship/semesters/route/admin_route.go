// file: internals/features/scholarship/semesters/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"iskolar_backend/internals/constants"
	semesterCtl "iskolar_backend/internals/features/scholarship/semesters/controller"
	authMiddleware "iskolar_backend/internals/middlewares/auth"
)

func SemesterAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := semesterCtl.NewSemesterAdminController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("managing semesters"),
			constants.AdminOnly,
		),
	)

	base.Post("/academic-years", ctl.CreateAcademicYear)
	base.Post("/semesters", ctl.CreateSemester)
	base.Patch("/semesters/:id/toggle", ctl.Toggle)
	base.Delete("/semesters/:id", ctl.Delete)
}
