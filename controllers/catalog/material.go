package catalog

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	catalogValidator "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func GetAllMaterials(c *fiber.Ctx) error {
	query := database.Database.Db.Preload("Lesson.Block.Topic")

	if lessonID := c.QueryInt("lesson_id"); lessonID > 0 {
		query = query.Where("lesson_id = ?", lessonID)
	}

	var materials []models.Material
	if err := query.Order("sort_order asc, name asc").Find(&materials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch materials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", fiber.Map{
		"materials": materials,
	})
}

func CreateMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMaterial").(*catalogValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.First(&lesson, reqData.LessonID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent lesson not found!", nil)
	}

	slug := reqData.Slug
	if slug == "" {
		slug = utils.UniqueSlug(db, &models.Material{}, reqData.Name)
	}

	material := models.Material{
		Name:            reqData.Name,
		Slug:            slug,
		Description:     reqData.Description,
		Type:            reqData.Type,
		Language:        reqData.Language,
		LessonID:        reqData.LessonID,
		Prefix:          reqData.Prefix,
		Duration:        reqData.Duration,
		Keywords:        reqData.Keywords,
		TargetAudiences: reqData.TargetAudiences,
		CoverURL:        reqData.CoverURL,
		VideoURL:        reqData.VideoURL,
		DocumentURL:     reqData.DocumentURL,
		YoutubeURL:      reqData.YoutubeURL,
		GalleryURLs:     reqData.GalleryURLs,
		SortOrder:       reqData.SortOrder,
	}

	if err := db.Create(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material created successfully!", material)
}

func UpdateMaterial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedMaterial").(*catalogValidator.MaterialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var material models.Material
	if err := db.First(&material, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if reqData.LessonID != material.LessonID {
		var lesson models.Lesson
		if err := db.First(&lesson, reqData.LessonID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent lesson not found!", nil)
		}
	}

	material.Name = reqData.Name
	material.Description = reqData.Description
	material.Type = reqData.Type
	material.Language = reqData.Language
	material.LessonID = reqData.LessonID
	material.Prefix = reqData.Prefix
	material.Duration = reqData.Duration
	material.Keywords = reqData.Keywords
	material.TargetAudiences = reqData.TargetAudiences
	material.CoverURL = reqData.CoverURL
	material.VideoURL = reqData.VideoURL
	material.DocumentURL = reqData.DocumentURL
	material.YoutubeURL = reqData.YoutubeURL
	material.GalleryURLs = reqData.GalleryURLs
	material.SortOrder = reqData.SortOrder
	if reqData.Slug != "" {
		material.Slug = reqData.Slug
	}

	if err := db.Save(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material updated successfully!", material)
}

func DeleteMaterial(c *fiber.Ctx) error {
	db := database.Database.Db

	var material models.Material
	if err := db.First(&material, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Material not found!", nil)
	}

	if err := db.Delete(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted successfully!", nil)
}
