package catalog

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	catalogValidator "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func GetAllLessons(c *fiber.Ctx) error {
	query := database.Database.Db.Preload("Block.Topic")

	if blockID := c.QueryInt("block_id"); blockID > 0 {
		query = query.Where("block_id = ?", blockID)
	}

	var lessons []models.Lesson
	if err := query.Order("sort_order asc, name asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*catalogValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var block models.Block
	if err := db.First(&block, reqData.BlockID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent block not found!", nil)
	}

	slug := reqData.Slug
	if slug == "" {
		slug = utils.UniqueSlug(db, &models.Lesson{}, reqData.Name)
	}

	lesson := models.Lesson{
		Name:      reqData.Name,
		Slug:      slug,
		BlockID:   reqData.BlockID,
		SortOrder: reqData.SortOrder,
	}

	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson created successfully!", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*catalogValidator.LessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.BlockID != lesson.BlockID {
		var block models.Block
		if err := db.First(&block, reqData.BlockID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent block not found!", nil)
		}
	}

	lesson.Name = reqData.Name
	lesson.BlockID = reqData.BlockID
	lesson.SortOrder = reqData.SortOrder
	if reqData.Slug != "" {
		lesson.Slug = reqData.Slug
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := db.Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
