// file: internals/features/notices/route/notice_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"iskolar_backend/internals/constants"
	noticeCtl "iskolar_backend/internals/features/notices/controller"
	authMiddleware "iskolar_backend/internals/middlewares/auth"
)

func NoticePublicRoutes(api fiber.Router, db *gorm.DB) {
	ctl := noticeCtl.NewNoticeController(db, nil)
	api.Get("/notices", ctl.ListPublished)
}

func NoticeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctl := noticeCtl.NewNoticeController(db, nil)

	base := api.Group("",
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("managing the notice board"),
			constants.AdminOnly,
		),
	)

	base.Post("/notices", ctl.Create)
	base.Patch("/notices/:id", ctl.Update)
	base.Delete("/notices/:id", ctl.Delete)
}
