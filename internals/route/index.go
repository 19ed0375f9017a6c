// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	noticeRoute "iskolar_backend/internals/features/notices/route"
	applicationRoute "iskolar_backend/internals/features/scholarship/applications/route"
	documentRoute "iskolar_backend/internals/features/scholarship/documents/route"
	semesterRoute "iskolar_backend/internals/features/scholarship/semesters/route"
	authRoute "iskolar_backend/internals/features/users/auth/route"
	authMiddleware "iskolar_backend/internals/middlewares/auth"
)

// SetupRoutes mounts all route groups:
//
//	/api/auth    login and register, no token required
//	/api/public  read-only endpoints, no token required
//	/api/u       authenticated scholar endpoints
//	/api/a       authenticated admin endpoints (role checks live in each feature route)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	authRoute.AuthRoutes(app, db)

	public := app.Group("/api/public")
	semesterRoute.SemesterPublicRoutes(public, db)
	noticeRoute.NoticePublicRoutes(public, db)

	user := app.Group("/api/u", authMiddleware.AuthMiddleware())
	authRoute.MeRoutes(user, db)
	applicationRoute.ApplicationUserRoutes(user, db)
	documentRoute.DocumentUserRoutes(user, db)

	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())
	semesterRoute.SemesterAdminRoutes(admin, db)
	applicationRoute.ApplicationAdminRoutes(admin, db)
	documentRoute.DocumentAdminRoutes(admin, db)
	noticeRoute.NoticeAdminRoutes(admin, db)
}
