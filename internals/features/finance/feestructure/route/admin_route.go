// file: internals/features/finance/feestructure/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/feestructure/controller"
)

func FeeStructureAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.FeeStructureHandler{DB: db}

	grp := admin.Group("/:school_id/fee-structures")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)
	}
}
