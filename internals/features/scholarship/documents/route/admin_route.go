// file: internals/features/scholarship/documents/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"iskolar_backend/internals/configs"
	"iskolar_backend/internals/constants"
	documentCtl "iskolar_backend/internals/features/scholarship/documents/controller"
	documentSvc "iskolar_backend/internals/features/scholarship/documents/service"
	middlewares "iskolar_backend/internals/middlewares"
	authMiddleware "iskolar_backend/internals/middlewares/auth"
)

func DocumentAdminRoutes(api fiber.Router, db *gorm.DB) {
	extractor := documentSvc.NewHTTPExtractor(configs.VerifierBaseURL, configs.VerifierAPIKey)
	verifier := documentSvc.NewVerificationService(db, extractor)
	ctl := documentCtl.NewDocumentAdminController(db, verifier)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("verifying documents"),
			constants.AdminOnly,
		),
	)

	base.Get("/applications/:id/documents", ctl.ListByApplication)
	base.Get("/applications/:id/verification-summary", ctl.Aggregate)

	verifyRuns := base.Group("", middlewares.VerifyRunRateLimiter())
	verifyRuns.Post("/applications/:id/verify", ctl.RunVerification)
	verifyRuns.Post("/documents/:id/verify", ctl.ReverifyOne)
}
