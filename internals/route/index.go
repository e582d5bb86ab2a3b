// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authmw "schoolku_backend/internals/middlewares/auth"

	feecatalogroute "schoolku_backend/internals/features/finance/feecatalog/route"
	feecollectionroute "schoolku_backend/internals/features/finance/feecollection/route"
	feestructureroute "schoolku_backend/internals/features/finance/feestructure/route"
	assetroute "schoolku_backend/internals/features/school/assets/route"
	studentroute "schoolku_backend/internals/features/school/students/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// Semua endpoint admin dashboard di bawah /api/a + bearer token.
	admin := app.Group("/api/a", authmw.AuthMiddleware())

	feecatalogroute.FeeCatalogAdminRoutes(admin, db)
	feestructureroute.FeeStructureAdminRoutes(admin, db)
	feecollectionroute.FeeCollectionAdminRoutes(admin, db)
	studentroute.StudentAdminRoutes(admin, db)
	assetroute.SchoolAssetAdminRoutes(admin, db)
}
