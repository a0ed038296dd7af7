package catalog

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	catalogValidator "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func GetAllBlocks(c *fiber.Ctx) error {
	query := database.Database.Db.Preload("Topic")

	if topicID := c.QueryInt("topic_id"); topicID > 0 {
		query = query.Where("topic_id = ?", topicID)
	}

	var blocks []models.Block
	if err := query.Order("sort_order asc, name asc").Find(&blocks).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blocks!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blocks fetched successfully!", fiber.Map{
		"blocks": blocks,
	})
}

func CreateBlock(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlock").(*catalogValidator.BlockRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var topic models.Topic
	if err := db.First(&topic, reqData.TopicID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent topic not found!", nil)
	}

	slug := reqData.Slug
	if slug == "" {
		slug = utils.UniqueSlug(db, &models.Block{}, reqData.Name)
	}

	block := models.Block{
		Name:      reqData.Name,
		Slug:      slug,
		TopicID:   reqData.TopicID,
		Level:     reqData.Level,
		Language:  reqData.Language,
		SortOrder: reqData.SortOrder,
	}

	if err := db.Create(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create block!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block created successfully!", block)
}

func UpdateBlock(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlock").(*catalogValidator.BlockRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var block models.Block
	if err := db.First(&block, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	if reqData.TopicID != block.TopicID {
		var topic models.Topic
		if err := db.First(&topic, reqData.TopicID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent topic not found!", nil)
		}
	}

	block.Name = reqData.Name
	block.TopicID = reqData.TopicID
	block.Level = reqData.Level
	block.Language = reqData.Language
	block.SortOrder = reqData.SortOrder
	if reqData.Slug != "" {
		block.Slug = reqData.Slug
	}

	if err := db.Save(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update block!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block updated successfully!", block)
}

func DeleteBlock(c *fiber.Ctx) error {
	db := database.Database.Db

	var block models.Block
	if err := db.First(&block, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Block not found!", nil)
	}

	if err := db.Delete(&block).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete block!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Block deleted successfully!", nil)
}
