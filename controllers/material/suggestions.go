package material

import (
	"log"
	"strings"

	"coursehub/config"
	"coursehub/database"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSuggestions returns autocomplete suggestions for a search query,
// harvested from the keyword lists of all materials. Queries shorter than
// the configured minimum and internal faults both yield an empty list.
func GetSuggestions(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("query"))

	maxResults := config.AppConfig.SuggestionMaxResults
	if limit := c.QueryInt("limit"); limit > 0 && limit < maxResults {
		maxResults = limit
	}

	if len(query) < config.AppConfig.SuggestionMinQueryLen {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions fetched successfully!", fiber.Map{
			"suggestions": []string{},
			"query":       query,
		})
	}

	var materials []models.Material
	if err := database.Database.Db.
		Select("keywords").
		Where("keywords IS NOT NULL AND keywords <> '' AND keywords <> 'null'").
		Find(&materials).Error; err != nil {
		log.Printf("[SUGGESTIONS] Failed to load keywords for query %q: %v", query, err)
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions fetched successfully!", fiber.Map{
			"suggestions": []string{},
			"query":       query,
		})
	}

	keywordLists := make([][]string, 0, len(materials))
	for _, m := range materials {
		if len(m.Keywords) > 0 {
			keywordLists = append(keywordLists, m.Keywords)
		}
	}

	suggestions := utils.FilterKeywordSuggestions(keywordLists, query, maxResults)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggestions fetched successfully!", fiber.Map{
		"suggestions": suggestions,
		"query":       query,
	})
}
