package materialValidator

import (
	"coursehub/middleware"

	"github.com/gofiber/fiber/v2"
)

// SearchQuery carries the filter criteria of a materials search. All fields
// are optional; empty values mean "no filter".
type SearchQuery struct {
	Language   string `query:"language"`
	Level      string `query:"level"`
	Department string `query:"department"`
	Type       string `query:"type"`
	Topic      string `query:"topic"`
	Search     string `query:"search"`
	Q          string `query:"q"`
	Page       int    `query:"page"`
	PerPage    int    `query:"per_page"`
}

// MaterialSearch parses and bounds the search query parameters.
func MaterialSearch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchQuery)

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page < 0 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.PerPage < 0 || reqData.PerPage > 100 {
			errors["per_page"] = "Per page must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		// "search" wins over its legacy alias "q"
		if reqData.Search == "" {
			reqData.Search = reqData.Q
		}
		if reqData.Page == 0 {
			reqData.Page = 1
		}
		if reqData.PerPage == 0 {
			reqData.PerPage = 15
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}
