package catalog

import (
	"log"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	catalogValidator "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllTopics(c *fiber.Ctx) error {
	var topics []models.Topic
	if err := database.Database.Db.
		Order("sort_order asc, name asc").
		Find(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", fiber.Map{
		"topics": topics,
	})
}

// GetTopicBySlug returns one topic with its blocks (lessons and materials
// preloaded) plus the neighbouring topics for prev/next navigation. Blocks
// can be narrowed by level and by the language/type of the materials they
// contain.
func GetTopicBySlug(c *fiber.Ctx) error {
	db := database.Database.Db

	var topic models.Topic
	if err := db.Where("slug = ?", c.Params("slug")).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	blockQuery := db.Where("topic_id = ?", topic.ID).Preload("Lessons.Materials")

	if level := c.Query("level"); level != "" {
		blockQuery = blockQuery.Where("level = ?", level)
	}

	// language/type keep a block only when at least one of its materials
	// matches
	if language := c.Query("language"); language != "" {
		blockQuery = blockQuery.Where(`EXISTS (
			SELECT 1 FROM materials
			JOIN lessons ON lessons.id = materials.lesson_id AND lessons.deleted_at IS NULL
			WHERE lessons.block_id = blocks.id
			AND materials.deleted_at IS NULL
			AND materials.language = ?
		)`, language)
	}

	if materialType := c.Query("type"); materialType != "" {
		blockQuery = blockQuery.Where(`EXISTS (
			SELECT 1 FROM materials
			JOIN lessons ON lessons.id = materials.lesson_id AND lessons.deleted_at IS NULL
			WHERE lessons.block_id = blocks.id
			AND materials.deleted_at IS NULL
			AND materials.type = ?
		)`, materialType)
	}

	var blocks []models.Block
	if err := blockQuery.Order("sort_order asc, name asc").Find(&blocks).Error; err != nil {
		log.Printf("[CATALOG] Failed to load blocks for topic %s: %v", topic.Slug, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topic!", nil)
	}
	topic.Blocks = blocks

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic fetched successfully!", fiber.Map{
		"topic":      topic,
		"prev_topic": adjacentTopic(db, "id < ?", "id desc", topic.ID),
		"next_topic": adjacentTopic(db, "id > ?", "id asc", topic.ID),
	})
}

func adjacentTopic(db *gorm.DB, condition, order string, id uint) *models.Topic {
	var topic models.Topic
	if err := db.Where(condition, id).Order(order).First(&topic).Error; err != nil {
		return nil
	}
	return &topic
}

func CreateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*catalogValidator.TopicRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	slug := reqData.Slug
	if slug == "" {
		slug = utils.UniqueSlug(db, &models.Topic{}, reqData.Name)
	}

	var existing models.Topic
	if err := db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A topic with this slug already exists!", nil)
	}

	topic := models.Topic{
		Name:        reqData.Name,
		Slug:        slug,
		Description: reqData.Description,
		Language:    reqData.Language,
		Institution: reqData.Institution,
		SortOrder:   reqData.SortOrder,
	}

	if err := db.Create(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic created successfully!", topic)
}

func UpdateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*catalogValidator.TopicRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var topic models.Topic
	if err := db.First(&topic, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	topic.Name = reqData.Name
	topic.Description = reqData.Description
	topic.Language = reqData.Language
	topic.Institution = reqData.Institution
	topic.SortOrder = reqData.SortOrder
	if reqData.Slug != "" {
		topic.Slug = reqData.Slug
	}

	if err := db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

func DeleteTopic(c *fiber.Ctx) error {
	db := database.Database.Db

	var topic models.Topic
	if err := db.First(&topic, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	if err := db.Delete(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic deleted successfully!", nil)
}
