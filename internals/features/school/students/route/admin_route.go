// file: internals/features/school/students/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	h := &controller.StudentHandler{DB: db}

	grp := admin.Group("/:school_id/students")
	{
		grp.Post("/", h.Create)
		grp.Get("/", h.List)
		grp.Get("/:id", h.GetByID)
	}
}
