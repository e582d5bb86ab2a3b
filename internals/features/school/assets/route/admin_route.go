// file: internals/features/school/assets/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/assets/controller"
)

func SchoolAssetAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.SchoolAssetHandler{DB: db}

	grp := admin.Group("/:school_id/assets")
	{
		grp.Get("/", h.Get)
		grp.Put("/", h.Upsert)
	}
}
