package catalog

import (
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	catalogValidator "coursehub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func GetAllSettings(c *fiber.Ctx) error {
	query := database.Database.Db.Model(&models.Setting{})

	if settingType := c.Query("type"); settingType != "" {
		query = query.Where("type = ?", settingType)
	}

	var settings []models.Setting
	if err := query.Order("type asc, sort_order asc, value asc").Find(&settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", fiber.Map{
		"settings": settings,
	})
}

func CreateSetting(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSetting").(*catalogValidator.SettingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var existing models.Setting
	if err := db.Where("type = ? AND value = ?", reqData.Type, reqData.Value).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A setting with this type and value already exists!", nil)
	}

	active := true
	if reqData.Active != nil {
		active = *reqData.Active
	}

	setting := models.Setting{
		Type:      reqData.Type,
		Value:     reqData.Value,
		Label:     reqData.Label,
		Active:    active,
		SortOrder: reqData.SortOrder,
	}

	if err := db.Create(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create setting!", nil)
	}

	// Vocabulary dropdowns must see the new entry
	utils.Vocabulary.Invalidate()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting created successfully!", setting)
}

func UpdateSetting(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSetting").(*catalogValidator.SettingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var setting models.Setting
	if err := db.First(&setting, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Setting not found!", nil)
	}

	setting.Type = reqData.Type
	setting.Value = reqData.Value
	setting.Label = reqData.Label
	setting.SortOrder = reqData.SortOrder
	if reqData.Active != nil {
		setting.Active = *reqData.Active
	}

	if err := db.Save(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update setting!", nil)
	}

	utils.Vocabulary.Invalidate()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting updated successfully!", setting)
}

func DeleteSetting(c *fiber.Ctx) error {
	db := database.Database.Db

	var setting models.Setting
	if err := db.First(&setting, c.Params("id")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Setting not found!", nil)
	}

	if err := db.Delete(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete setting!", nil)
	}

	utils.Vocabulary.Invalidate()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting deleted successfully!", nil)
}
