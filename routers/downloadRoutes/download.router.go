package downloadRoutes

import (
	controllers "coursehub/controllers/download"
	validators "coursehub/validators/download"

	"github.com/gofiber/fiber/v2"
)

// SetupDownloadRoutes sets up the asset bundling routes
func SetupDownloadRoutes(app *fiber.App) {
	downloadGroup := app.Group("/api/downloads")

	downloadGroup.Post("/gallery", validators.DownloadGallery(), controllers.DownloadGallery)
	downloadGroup.Post("/block", validators.DownloadBlock(), controllers.DownloadBlock)
}
