package catalogValidator

import (
	"strings"

	"coursehub/middleware"
	"coursehub/models"

	"github.com/gofiber/fiber/v2"
)

// TopicRequest is the body of topic create/update calls.
type TopicRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Institution string `json:"institution"`
	SortOrder   int    `json:"sort_order"`
}

// BlockRequest is the body of block create/update calls.
type BlockRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	TopicID   uint   `json:"topic_id"`
	Level     string `json:"level"`
	Language  string `json:"language"`
	SortOrder int    `json:"sort_order"`
}

// LessonRequest is the body of lesson create/update calls.
type LessonRequest struct {
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	BlockID   uint   `json:"block_id"`
	SortOrder int    `json:"sort_order"`
}

// MaterialRequest is the body of material create/update calls.
type MaterialRequest struct {
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description"`
	Type            string   `json:"type"`
	Language        string   `json:"language"`
	LessonID        uint     `json:"lesson_id"`
	Prefix          string   `json:"prefix"`
	Duration        string   `json:"duration"`
	Keywords        []string `json:"keywords"`
	TargetAudiences []string `json:"target_audiences"`
	CoverURL        string   `json:"cover_url"`
	VideoURL        string   `json:"video_url"`
	DocumentURL     string   `json:"document_url"`
	YoutubeURL      string   `json:"youtube_url"`
	GalleryURLs     []string `json:"gallery_urls"`
	SortOrder       int      `json:"sort_order"`
}

// SettingRequest is the body of setting create/update calls.
type SettingRequest struct {
	Type      string `json:"type"`
	Value     string `json:"value"`
	Label     string `json:"label"`
	Active    *bool  `json:"active"`
	SortOrder int    `json:"sort_order"`
}

func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TopicRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

func CreateBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BlockRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.TopicID == 0 {
			errors["topic_id"] = "Topic is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlock", reqData)
		return c.Next()
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.BlockID == 0 {
			errors["block_id"] = "Block is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func CreateMaterial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(MaterialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Type) == "" {
			errors["type"] = "Type is required!"
		}
		if reqData.LessonID == 0 {
			errors["lesson_id"] = "Lesson is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMaterial", reqData)
		return c.Next()
	}
}

func CreateSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SettingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Type != models.SettingBlockLevel && reqData.Type != models.SettingMaterialType {
			errors["type"] = "Type must be block_level or material_type!"
		}
		if strings.TrimSpace(reqData.Value) == "" {
			errors["value"] = "Value is required!"
		}
		if strings.TrimSpace(reqData.Label) == "" {
			errors["label"] = "Label is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSetting", reqData)
		return c.Next()
	}
}
