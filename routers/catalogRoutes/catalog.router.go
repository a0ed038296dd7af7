package catalogRoutes

import (
	controllers "coursehub/controllers/catalog"
	validators "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

// SetupCatalogRoutes sets up the admin catalog CRUD routes
func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/api/catalog")

	catalogGroup.Get("/topics", controllers.GetAllTopics)
	catalogGroup.Get("/topics/:slug", controllers.GetTopicBySlug)
	catalogGroup.Post("/topics", validators.CreateTopic(), controllers.CreateTopic)
	catalogGroup.Put("/topics/:id", validators.CreateTopic(), controllers.UpdateTopic)
	catalogGroup.Delete("/topics/:id", controllers.DeleteTopic)

	catalogGroup.Get("/blocks", controllers.GetAllBlocks)
	catalogGroup.Post("/blocks", validators.CreateBlock(), controllers.CreateBlock)
	catalogGroup.Put("/blocks/:id", validators.CreateBlock(), controllers.UpdateBlock)
	catalogGroup.Delete("/blocks/:id", controllers.DeleteBlock)

	catalogGroup.Get("/lessons", controllers.GetAllLessons)
	catalogGroup.Post("/lessons", validators.CreateLesson(), controllers.CreateLesson)
	catalogGroup.Put("/lessons/:id", validators.CreateLesson(), controllers.UpdateLesson)
	catalogGroup.Delete("/lessons/:id", controllers.DeleteLesson)

	catalogGroup.Get("/materials", controllers.GetAllMaterials)
	catalogGroup.Post("/materials", validators.CreateMaterial(), controllers.CreateMaterial)
	catalogGroup.Put("/materials/:id", validators.CreateMaterial(), controllers.UpdateMaterial)
	catalogGroup.Delete("/materials/:id", controllers.DeleteMaterial)

	catalogGroup.Get("/settings", controllers.GetAllSettings)
	catalogGroup.Post("/settings", validators.CreateSetting(), controllers.CreateSetting)
	catalogGroup.Put("/settings/:id", validators.CreateSetting(), controllers.UpdateSetting)
	catalogGroup.Delete("/settings/:id", controllers.DeleteSetting)
}
