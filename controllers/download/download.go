package download

import (
	"log"
	"os"

	"coursehub/middleware"
	"coursehub/utils"
	downloadValidator "coursehub/validators/download"

	"github.com/gofiber/fiber/v2"
)

// DownloadGallery bundles the gallery images of one material into a zip
// archive. Bad URLs and failed fetches are skipped; the request only fails
// when nothing at all could be downloaded.
func DownloadGallery(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGallery").(*downloadValidator.GalleryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	workspace, err := utils.NewBundleWorkspace()
	if err != nil {
		log.Printf("[DOWNLOAD] Failed to create workspace for material %s: %v", reqData.MaterialID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Download failed!", nil)
	}
	defer workspace.Cleanup()

	client := utils.NewDownloadClient()
	files := workspace.FetchGallery(c.Context(), client, reqData.GalleryURLs)

	if len(files) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No images could be downloaded!", nil)
	}

	zipName := utils.SanitizeFileName(reqData.MaterialName) + "_gallery.zip"
	return sendArchive(c, workspace, zipName, files)
}

// DownloadBlock bundles the resources of all materials of a block, one
// subfolder per material.
func DownloadBlock(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlock").(*downloadValidator.BlockRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	workspace, err := utils.NewBundleWorkspace()
	if err != nil {
		log.Printf("[DOWNLOAD] Failed to create workspace for block %s: %v", reqData.BlockID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Download failed!", nil)
	}
	defer workspace.Cleanup()

	client := utils.NewDownloadClient()
	files := workspace.FetchBlock(c.Context(), client, reqData.Materials)

	if len(files) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No resources could be downloaded!", nil)
	}

	zipName := utils.SanitizeFileName(reqData.BlockName) + "_materials.zip"
	return sendArchive(c, workspace, zipName, files)
}

// sendArchive zips the fetched files and streams the archive as an
// attachment. The file is opened before the deferred workspace cleanup
// unlinks it; the open handle keeps the data readable while the response
// streams, so nothing needs to be buffered in memory.
func sendArchive(c *fiber.Ctx, workspace *utils.BundleWorkspace, zipName string, files []string) error {
	zipPath, err := workspace.CreateArchive(zipName, files)
	if err != nil {
		log.Printf("[DOWNLOAD] Failed to create archive %s: %v", zipName, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not create zip file!", nil)
	}

	archive, err := os.Open(zipPath)
	if err != nil {
		log.Printf("[DOWNLOAD] Failed to open archive %s: %v", zipPath, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Download failed!", nil)
	}

	info, err := archive.Stat()
	if err != nil {
		archive.Close()
		log.Printf("[DOWNLOAD] Failed to stat archive %s: %v", zipPath, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Download failed!", nil)
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+zipName+`"`)

	// fasthttp closes the file once the body has been written
	c.Response().SetBodyStream(archive, int(info.Size()))
	return nil
}
