// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "iskolar_backend/internals/features/users/auth/controller"
	middlewares "iskolar_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)

	api := app.Group("/api/auth")
	api.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	api.Post("/refresh", middlewares.LoginRateLimiter(), ctl.Refresh)
}

// MeRoutes lives behind the authenticated /api/u group.
func MeRoutes(api fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db, nil)
	api.Get("/me", ctl.Me)
}
