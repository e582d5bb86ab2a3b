// file: internals/features/finance/feecatalog/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/feecatalog/controller"
)

func FeeCatalogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.FeeCatalogHandler{DB: db}

	grp := admin.Group("/:school_id/fee-catalog")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Patch("/:id", h.Update)
		grp.Delete("/:id", h.Delete)

		// lookup untuk form collection
		grp.Get("/available-fee-types", h.AvailableFeeTypes)
		grp.Get("/amount", h.AmountForSelection)
	}
}
