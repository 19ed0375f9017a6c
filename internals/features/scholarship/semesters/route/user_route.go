// file: internals/features/scholarship/semesters/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	semesterCtl "iskolar_backend/internals/features/scholarship/semesters/controller"
)

// Public reads: applicants check here whether the submission form should show.
func SemesterPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := semesterCtl.NewSemesterUserController(db)

	api.Get("/semesters", ctl.List)
	api.Get("/semesters/:id", ctl.GetByID)
}
