package downloadValidator

import (
	"fmt"
	"net/url"
	"strings"

	"coursehub/config"
	"coursehub/middleware"
	"coursehub/utils"

	"github.com/gofiber/fiber/v2"
)

// GalleryRequest is the body of a gallery bundle request.
type GalleryRequest struct {
	MaterialID   string   `json:"material_id"`
	MaterialName string   `json:"material_name"`
	GalleryURLs  []string `json:"gallery_urls"`
}

// BlockRequest is the body of a block bundle request.
type BlockRequest struct {
	BlockID   string                 `json:"block_id"`
	BlockName string                 `json:"block_name"`
	Materials []utils.BundleMaterial `json:"materials"`
}

var allowedResourceTypes = map[string]bool{
	"cover":    true,
	"video":    true,
	"document": true,
	"gallery":  true,
}

// DownloadGallery validates a gallery bundle request before any network
// I/O happens. Count and shape violations reject the whole request.
func DownloadGallery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(GalleryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateRequiredString(errors, "material_id", reqData.MaterialID)
		validateRequiredString(errors, "material_name", reqData.MaterialName)

		if len(reqData.GalleryURLs) == 0 {
			errors["gallery_urls"] = "At least one gallery URL is required!"
		} else if len(reqData.GalleryURLs) > config.AppConfig.MaxGalleryFiles {
			errors["gallery_urls"] = fmt.Sprintf("A maximum of %d gallery URLs is allowed!", config.AppConfig.MaxGalleryFiles)
		} else {
			for i, rawURL := range reqData.GalleryURLs {
				if message := validateHTTPURL(rawURL); message != "" {
					errors[fmt.Sprintf("gallery_urls.%d", i)] = message
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGallery", reqData)
		return c.Next()
	}
}

// DownloadBlock validates a block bundle request before any network I/O.
func DownloadBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BlockRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateRequiredString(errors, "block_id", reqData.BlockID)
		validateRequiredString(errors, "block_name", reqData.BlockName)

		if len(reqData.Materials) == 0 {
			errors["materials"] = "At least one material is required!"
		} else if len(reqData.Materials) > config.AppConfig.MaxBlockMaterials {
			errors["materials"] = fmt.Sprintf("A maximum of %d materials is allowed!", config.AppConfig.MaxBlockMaterials)
		} else {
			for i, material := range reqData.Materials {
				prefix := fmt.Sprintf("materials.%d", i)

				validateRequiredString(errors, prefix+".id", material.ID)
				validateRequiredString(errors, prefix+".name", material.Name)

				if len(material.Resources) == 0 {
					errors[prefix+".resources"] = "At least one resource is required!"
					continue
				}

				for j, resource := range material.Resources {
					resourceKey := fmt.Sprintf("%s.resources.%d", prefix, j)

					validateRequiredString(errors, resourceKey+".name", resource.Name)

					if message := validateHTTPURL(resource.URL); message != "" {
						errors[resourceKey+".url"] = message
					}

					if !allowedResourceTypes[resource.Type] {
						errors[resourceKey+".type"] = "Resource type must be one of cover, video, document, gallery!"
					}
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlock", reqData)
		return c.Next()
	}
}

func validateRequiredString(errors map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		errors[field] = "This field is required!"
	} else if len(value) > 255 {
		errors[field] = "This field must not exceed 255 characters!"
	}
}

func validateHTTPURL(rawURL string) string {
	if strings.TrimSpace(rawURL) == "" {
		return "URL is required!"
	}
	if len(rawURL) > 2048 {
		return "URL must not exceed 2048 characters!"
	}

	parsed, err := url.Parse(rawURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return "URL must be a well-formed absolute URL!"
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "URL must use http or https!"
	}

	return ""
}
