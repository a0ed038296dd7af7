package catalog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"coursehub/config"
	"coursehub/database"
	"coursehub/models"
	catalogRoutes "coursehub/routers/catalogRoutes"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCatalogApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	// Named in-memory database so tests do not share state
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Topic{},
		&models.Block{},
		&models.Lesson{},
		&models.Material{},
		&models.Setting{},
		&models.Partner{},
	))

	database.Database = database.DbInstance{Db: db}
	utils.Vocabulary.Invalidate()
	t.Cleanup(utils.Vocabulary.Invalidate)

	app := fiber.New()
	catalogRoutes.SetupCatalogRoutes(app)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		assert.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func createdID(t *testing.T, body map[string]interface{}) uint {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	assert.True(t, ok, "missing data envelope: %v", body)
	id, _ := data["ID"].(float64)
	assert.NotZero(t, id)
	return uint(id)
}

func TestCreateFullHierarchy(t *testing.T) {
	app, db := setupCatalogApp(t)

	status, body := doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{
		"name": "Forestry", "institution": "Forest University",
	})
	assert.Equal(t, fiber.StatusOK, status)
	topicID := createdID(t, body)
	assert.Equal(t, "forestry", body["data"].(map[string]interface{})["slug"])

	status, body = doJSON(t, app, "POST", "/api/catalog/blocks", fiber.Map{
		"name": "Basics", "topic_id": topicID, "level": "basic",
	})
	assert.Equal(t, fiber.StatusOK, status)
	blockID := createdID(t, body)

	status, body = doJSON(t, app, "POST", "/api/catalog/lessons", fiber.Map{
		"name": "Intro", "block_id": blockID,
	})
	assert.Equal(t, fiber.StatusOK, status)
	lessonID := createdID(t, body)

	status, _ = doJSON(t, app, "POST", "/api/catalog/materials", fiber.Map{
		"name": "Intro Video", "type": "video", "lesson_id": lessonID,
		"prefix": "1.1", "keywords": []string{"forest", "intro"},
	})
	assert.Equal(t, fiber.StatusOK, status)

	var count int64
	assert.NoError(t, db.Model(&models.Material{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateTopicDuplicateSlugConflicts(t *testing.T) {
	app, _ := setupCatalogApp(t)

	status, _ := doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{
		"name": "Forestry", "slug": "forestry",
	})
	assert.Equal(t, fiber.StatusOK, status)

	status, body := doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{
		"name": "Other", "slug": "forestry",
	})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "A topic with this slug already exists!", body["message"])
}

func TestCreateTopicGeneratesUniqueSlug(t *testing.T) {
	app, _ := setupCatalogApp(t)

	_, body := doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{"name": "Forestry"})
	assert.Equal(t, "forestry", body["data"].(map[string]interface{})["slug"])

	// Same name without an explicit slug gets a suffixed one
	_, body = doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{"name": "Forestry"})
	assert.Equal(t, "forestry-2", body["data"].(map[string]interface{})["slug"])
}

func TestCreateBlockRequiresExistingTopic(t *testing.T) {
	app, _ := setupCatalogApp(t)

	status, body := doJSON(t, app, "POST", "/api/catalog/blocks", fiber.Map{
		"name": "Basics", "topic_id": 9999,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Parent topic not found!", body["message"])
}

func TestCreateTopicRequiresName(t *testing.T) {
	app, _ := setupCatalogApp(t)

	status, _ := doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{"name": "  "})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func seedTopicPages(t *testing.T, db *gorm.DB) {
	t.Helper()

	topics := []models.Topic{
		{Name: "Agroforestry", Slug: "agroforestry"},
		{Name: "Forestry", Slug: "forestry", Blocks: []models.Block{
			{Name: "Basics", Slug: "forestry-basics", Level: "basic", Lessons: []models.Lesson{
				{Name: "Intro", Slug: "forestry-intro", Materials: []models.Material{
					{Name: "Intro Video", Slug: "forestry-intro-video", Type: "video", Language: "English"},
				}},
			}},
			{Name: "Advanced", Slug: "forestry-advanced", Level: "advanced", Lessons: []models.Lesson{
				{Name: "Deep Dive", Slug: "forestry-deep-dive", Materials: []models.Material{
					{Name: "Reader", Slug: "forestry-reader", Type: "text", Language: "Spanish"},
				}},
			}},
		}},
		{Name: "Urban Forests", Slug: "urban-forests"},
	}
	for i := range topics {
		assert.NoError(t, db.Create(&topics[i]).Error)
	}
}

func topicPage(t *testing.T, body map[string]interface{}) (map[string]interface{}, []interface{}) {
	t.Helper()

	data, ok := body["data"].(map[string]interface{})
	assert.True(t, ok, "missing data envelope: %v", body)

	topic, ok := data["topic"].(map[string]interface{})
	assert.True(t, ok, "missing topic: %v", data)

	blocks, _ := topic["blocks"].([]interface{})
	return data, blocks
}

func TestGetTopicBySlugWithNavigation(t *testing.T) {
	app, db := setupCatalogApp(t)
	seedTopicPages(t, db)

	status, body := doJSON(t, app, "GET", "/api/catalog/topics/forestry", nil)
	assert.Equal(t, fiber.StatusOK, status)

	data, blocks := topicPage(t, body)
	assert.Equal(t, "Forestry", data["topic"].(map[string]interface{})["name"])
	assert.Len(t, blocks, 2)

	// Lessons and their materials come preloaded
	firstBlock := blocks[0].(map[string]interface{})
	lessons := firstBlock["lessons"].([]interface{})
	assert.Len(t, lessons, 1)
	assert.Len(t, lessons[0].(map[string]interface{})["materials"], 1)

	prev := data["prev_topic"].(map[string]interface{})
	next := data["next_topic"].(map[string]interface{})
	assert.Equal(t, "agroforestry", prev["slug"])
	assert.Equal(t, "urban-forests", next["slug"])

	// Endpoints of the topic sequence have no neighbour on that side
	_, body = doJSON(t, app, "GET", "/api/catalog/topics/agroforestry", nil)
	data, _ = topicPage(t, body)
	assert.Nil(t, data["prev_topic"])
	assert.Equal(t, "forestry", data["next_topic"].(map[string]interface{})["slug"])

	status, _ = doJSON(t, app, "GET", "/api/catalog/topics/nowhere", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetTopicBySlugFiltersBlocks(t *testing.T) {
	app, db := setupCatalogApp(t)
	seedTopicPages(t, db)

	blockNames := func(path string) []string {
		_, body := doJSON(t, app, "GET", path, nil)
		_, blocks := topicPage(t, body)
		names := []string{}
		for _, b := range blocks {
			names = append(names, b.(map[string]interface{})["name"].(string))
		}
		return names
	}

	assert.Equal(t, []string{"Basics"}, blockNames("/api/catalog/topics/forestry?level=basic"))
	assert.Equal(t, []string{"Advanced"}, blockNames("/api/catalog/topics/forestry?language=Spanish"))
	assert.Equal(t, []string{"Basics"}, blockNames("/api/catalog/topics/forestry?type=video"))
	assert.Empty(t, blockNames("/api/catalog/topics/forestry?level=basic&language=Spanish"))
}

func TestSettingWritesRefreshVocabulary(t *testing.T) {
	app, db := setupCatalogApp(t)

	// Prime the cache with its built-in defaults
	levels := utils.Vocabulary.Options(db, models.SettingBlockLevel)
	assert.Len(t, levels, 2)

	status, _ := doJSON(t, app, "POST", "/api/catalog/settings", fiber.Map{
		"type": models.SettingBlockLevel, "value": "expert", "label": "Expert",
	})
	assert.Equal(t, fiber.StatusOK, status)

	levels = utils.Vocabulary.Options(db, models.SettingBlockLevel)
	assert.Len(t, levels, 1)
	assert.Equal(t, "expert", levels[0].Value)
}

func TestSettingDuplicateTypeValueConflicts(t *testing.T) {
	app, _ := setupCatalogApp(t)

	status, _ := doJSON(t, app, "POST", "/api/catalog/settings", fiber.Map{
		"type": models.SettingBlockLevel, "value": "expert", "label": "Expert",
	})
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "POST", "/api/catalog/settings", fiber.Map{
		"type": models.SettingBlockLevel, "value": "expert", "label": "Expert Again",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestSettingRejectsUnknownType(t *testing.T) {
	app, _ := setupCatalogApp(t)

	status, _ := doJSON(t, app, "POST", "/api/catalog/settings", fiber.Map{
		"type": "color_scheme", "value": "dark", "label": "Dark",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestUpdateAndDeleteTopic(t *testing.T) {
	app, db := setupCatalogApp(t)

	_, body := doJSON(t, app, "POST", "/api/catalog/topics", fiber.Map{"name": "Forestry"})
	topicID := createdID(t, body)

	status, body := doJSON(t, app, "PUT", fmt.Sprintf("/api/catalog/topics/%d", topicID), fiber.Map{
		"name": "Forest Science", "institution": "FU",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Forest Science", body["data"].(map[string]interface{})["name"])

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/catalog/topics/%d", topicID), nil)
	assert.Equal(t, fiber.StatusOK, status)

	var count int64
	assert.NoError(t, db.Model(&models.Topic{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/catalog/topics/%d", topicID), nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
