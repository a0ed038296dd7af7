package materialRoutes

import (
	controllers "coursehub/controllers/material"
	validators "coursehub/validators/material"

	"github.com/gofiber/fiber/v2"
)

// SetupMaterialRoutes sets up the public search and suggestion routes
func SetupMaterialRoutes(app *fiber.App) {
	materialGroup := app.Group("/api/materials")

	materialGroup.Get("/", validators.MaterialSearch(), controllers.GetMaterials)
	materialGroup.Get("/grouped", validators.MaterialSearch(), controllers.GetGroupedMaterials)
	materialGroup.Get("/suggestions", controllers.GetSuggestions)
	materialGroup.Get("/filter-options", controllers.GetFilterOptions)
}
