package material

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"
	materialValidator "coursehub/validators/material"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const resultsUnavailableMessage = "We're sorry, but there was an issue loading the search results. Please try again or adjust your filters."

// buildMaterialQuery assembles the filtered materials query. The inner
// joins enforce that only materials with a resolvable lesson -> block ->
// topic chain are eligible; criteria combine with AND, while the free-text
// search is an OR across the hierarchy.
func buildMaterialQuery(db *gorm.DB, filters *materialValidator.SearchQuery) *gorm.DB {
	query := db.Model(&models.Material{}).
		Joins("JOIN lessons ON lessons.id = materials.lesson_id AND lessons.deleted_at IS NULL").
		Joins("JOIN blocks ON blocks.id = lessons.block_id AND blocks.deleted_at IS NULL").
		Joins("JOIN topics ON topics.id = blocks.topic_id AND topics.deleted_at IS NULL")

	if filters.Language != "" {
		query = query.Where("materials.language = ?", filters.Language)
	}

	if filters.Level != "" {
		query = query.Where("blocks.level = ?", filters.Level)
	}

	if filters.Department != "" {
		query = applyDepartmentFilter(query, filters.Department)
	}

	if filters.Type != "" {
		query = query.Where("materials.type = ?", filters.Type)
	}

	if filters.Topic != "" {
		topic := filters.Topic
		if decoded, err := url.QueryUnescape(topic); err == nil {
			topic = decoded
		}
		query = query.Where("LOWER(topics.name) LIKE ?", "%"+strings.ToLower(topic)+"%")
	}

	if filters.Search != "" {
		query = applyHierarchicalSearch(query, filters.Search)
	}

	return query
}

// applyDepartmentFilter matches the topic institution field against a
// department in four tiers: exact, case/whitespace-insensitive, substring,
// and finally partner-id resolution. The field historically holds either a
// display name or a partner id, so all tiers stay until that data is
// normalized; keep this the only place that knows about the fallback.
func applyDepartmentFilter(query *gorm.DB, department string) *gorm.DB {
	like := "%" + strings.ToLower(department) + "%"

	return query.Where(`(
		topics.institution = ?
		OR LOWER(TRIM(topics.institution)) = LOWER(TRIM(?))
		OR LOWER(topics.institution) LIKE ?
		OR EXISTS (
			SELECT 1 FROM partners p
			WHERE CAST(p.id AS TEXT) = topics.institution
			AND p.institution = ?
			AND p.deleted_at IS NULL
		)
	)`, department, department, like, department)
}

// applyHierarchicalSearch matches the term against the material's own name,
// description and keywords plus every ancestor name, case-insensitively.
func applyHierarchicalSearch(query *gorm.DB, term string) *gorm.DB {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"

	clause := fmt.Sprintf(`(
		LOWER(materials.name) LIKE ?
		OR LOWER(materials.description) LIKE ?
		OR %s
		OR LOWER(lessons.name) LIKE ?
		OR LOWER(blocks.name) LIKE ?
		OR LOWER(topics.name) LIKE ?
	)`, keywordMatchExpr(query))

	return query.Where(clause, like, like, like, like, like, like)
}

// keywordMatchExpr returns the per-element keyword match clause for the
// connected dialect. Matching the unpacked array elements instead of the raw
// JSON text keeps a term containing quotes or commas from matching across
// keyword boundaries. Non-array values (NULL marker, legacy rows) unpack to
// nothing.
func keywordMatchExpr(query *gorm.DB) string {
	if query.Dialector.Name() == "postgres" {
		return `EXISTS (
			SELECT 1 FROM json_array_elements_text(
				CASE WHEN materials.keywords LIKE '[%' THEN materials.keywords::json ELSE '[]'::json END
			) AS kw WHERE LOWER(kw) LIKE ?
		)`
	}

	return `EXISTS (
		SELECT 1 FROM json_each(
			CASE WHEN materials.keywords LIKE '[%' THEN materials.keywords ELSE '[]' END
		) WHERE LOWER(json_each.value) LIKE ?
	)`
}

func logSearchError(c *fiber.Ctx, filters *materialValidator.SearchQuery, err error) {
	log.Printf("[SEARCH] Materials filtering error: %v | filters: language=%q level=%q department=%q type=%q topic=%q search=%q | ip=%s user_agent=%q",
		err, filters.Language, filters.Level, filters.Department, filters.Type, filters.Topic, filters.Search,
		c.IP(), c.Get("User-Agent"))
}

// GetMaterials returns a page of filtered materials with pagination
// metadata.
func GetMaterials(c *fiber.Ctx) error {
	filters, ok := c.Locals("validatedSearch").(*materialValidator.SearchQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db
	query := buildMaterialQuery(db, filters)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		logSearchError(c, filters, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, resultsUnavailableMessage, nil)
	}

	offset := (filters.Page - 1) * filters.PerPage

	var materials []models.Material
	if err := query.
		Preload("Lesson.Block.Topic").
		Offset(offset).
		Limit(filters.PerPage).
		Find(&materials).Error; err != nil {
		logSearchError(c, filters, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, resultsUnavailableMessage, nil)
	}

	lastPage := int(total) / filters.PerPage
	if int(total)%filters.PerPage != 0 || lastPage == 0 {
		lastPage++
	}

	from := 0
	to := 0
	if len(materials) > 0 {
		from = offset + 1
		to = offset + len(materials)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": materials,
		"meta": fiber.Map{
			"pagination": fiber.Map{
				"total":        total,
				"per_page":     filters.PerPage,
				"current_page": filters.Page,
				"last_page":    lastPage,
				"from":         from,
				"to":           to,
			},
		},
	})
}

// GetGroupedMaterials returns the full unpaginated match set grouped by
// topic and block, materials ordered by their version-like prefix.
func GetGroupedMaterials(c *fiber.Ctx) error {
	filters, ok := c.Locals("validatedSearch").(*materialValidator.SearchQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var materials []models.Material
	if err := buildMaterialQuery(db, filters).
		Preload("Lesson.Block.Topic").
		Find(&materials).Error; err != nil {
		logSearchError(c, filters, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, resultsUnavailableMessage, nil)
	}

	grouped := utils.GroupMaterialsByTopicAndBlocks(materials)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Materials fetched successfully!", fiber.Map{
		"total":   len(materials),
		"grouped": grouped,
	})
}

// GetFilterOptions returns the dropdown vocabularies for the search form:
// levels, material types, known languages and partner departments.
func GetFilterOptions(c *fiber.Ctx) error {
	db := database.Database.Db

	var languages []string
	if err := db.Model(&models.Material{}).
		Where("language <> ''").
		Distinct().
		Order("language asc").
		Pluck("language", &languages).Error; err != nil {
		log.Printf("[SEARCH] Failed to load language options: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load filter options!", nil)
	}

	var departments []string
	if err := db.Model(&models.Partner{}).
		Where("type = ? AND institution <> ''", models.PartnerTypeInstitution).
		Distinct().
		Order("institution asc").
		Pluck("institution", &departments).Error; err != nil {
		log.Printf("[SEARCH] Failed to load department options: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load filter options!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Filter options fetched successfully!", fiber.Map{
		"levels":      utils.Vocabulary.Options(db, models.SettingBlockLevel),
		"types":       utils.Vocabulary.Options(db, models.SettingMaterialType),
		"languages":   languages,
		"departments": departments,
	})
}
