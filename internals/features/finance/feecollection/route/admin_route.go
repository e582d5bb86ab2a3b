// file: internals/features/finance/feecollection/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/finance/feecollection/controller"
)

func FeeCollectionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.FeeCollectionHandler{DB: db}

	grp := admin.Group("/:school_id/fee-collections")
	{
		// path statis dulu, sebelum /:id
		grp.Get("/receipt-number", h.ReceiptNumber)
		grp.Get("/summary", h.Summary)

		grp.Post("/", h.Create)
		grp.Get("/", h.List)

		grp.Get("/:id/edit-context", h.EditContext)
		grp.Get("/:id/receipt", h.Receipt)
		grp.Patch("/:id", h.Edit)
		grp.Delete("/:id", h.Delete)
	}
}
