package utils

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"coursehub/config"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// BundleResource is one downloadable asset of a material.
type BundleResource struct {
	URL  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// BundleMaterial groups the resources bundled under one subfolder.
type BundleMaterial struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Resources []BundleResource `json:"resources"`
}

// BundleWorkspace is the isolated temporary directory owned by a single
// bundling request. Collision-resistant naming keeps concurrent requests
// from ever sharing a directory.
type BundleWorkspace struct {
	Dir string
}

// NewBundleWorkspace creates a fresh workspace under the configured temp root.
func NewBundleWorkspace() (*BundleWorkspace, error) {
	dir := filepath.Join(config.AppConfig.TempDir, "bundle_"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &BundleWorkspace{Dir: dir}, nil
}

// Cleanup removes the workspace and everything in it. Safe to call more
// than once; callers defer it so every exit path releases the directory.
func (w *BundleWorkspace) Cleanup() {
	if err := os.RemoveAll(w.Dir); err != nil {
		log.Printf("[BUNDLE] Failed to clean up workspace %s: %v", w.Dir, err)
	}
}

// FetchGallery downloads gallery images into the workspace root. File names
// are keyed to the input order (image_001.jpg, ...) so output is
// deterministic regardless of which fetches fail. A bad resource is logged
// and skipped; exceeding the total-size budget stops further fetching but
// keeps what was already downloaded.
func (w *BundleWorkspace) FetchGallery(ctx context.Context, client *resty.Client, urls []string) []string {
	cfg := config.AppConfig
	downloaded := []string{}
	var totalSize int64

	for index, imageURL := range urls {
		if ctx.Err() != nil {
			log.Println("[BUNDLE] Request cancelled, stopping gallery fetch")
			break
		}

		if err := ValidateResourceURL(imageURL); err != nil {
			log.Printf("[BUNDLE] Invalid image URL, skipping: %s (%v)", imageURL, err)
			continue
		}

		fileName := fmt.Sprintf("image_%03d.%s", index+1, ImageExtensionFromURL(imageURL))
		filePath := filepath.Join(w.Dir, fileName)

		written, err := FetchResourceToFile(ctx, client, imageURL, filePath, cfg.MaxFileSize)
		if err != nil {
			log.Printf("[BUNDLE] Failed to download image: %s (%v)", imageURL, err)
			continue
		}

		totalSize += written
		if totalSize > cfg.MaxTotalSize {
			log.Println("[BUNDLE] Total size limit exceeded, stopping download")
			os.Remove(filePath)
			break
		}

		downloaded = append(downloaded, filePath)
	}

	return downloaded
}

// FetchBlock downloads the resources of each material into a subfolder
// named after the sanitized material name. Same skip-on-failure and
// total-budget semantics as FetchGallery.
func (w *BundleWorkspace) FetchBlock(ctx context.Context, client *resty.Client, materials []BundleMaterial) []string {
	cfg := config.AppConfig
	downloaded := []string{}
	var totalSize int64

fetch:
	for _, material := range materials {
		materialDir := filepath.Join(w.Dir, SanitizeFileName(material.Name))
		if err := os.MkdirAll(materialDir, 0o755); err != nil {
			log.Printf("[BUNDLE] Failed to create material folder %s: %v", materialDir, err)
			continue
		}

		for _, resource := range material.Resources {
			if ctx.Err() != nil {
				log.Println("[BUNDLE] Request cancelled, stopping block fetch")
				break fetch
			}

			if err := ValidateResourceURL(resource.URL); err != nil {
				log.Printf("[BUNDLE] Invalid resource URL, skipping: %s (%v)", resource.URL, err)
				continue
			}

			fileName := SanitizeFileName(resource.Name) + "." + ResourceExtension(resource.URL, resource.Type)
			filePath := filepath.Join(materialDir, fileName)

			written, err := FetchResourceToFile(ctx, client, resource.URL, filePath, cfg.MaxFileSize)
			if err != nil {
				log.Printf("[BUNDLE] Failed to download resource: %s (%v)", resource.URL, err)
				continue
			}

			totalSize += written
			if totalSize > cfg.MaxTotalSize {
				log.Println("[BUNDLE] Total size limit exceeded, stopping download")
				os.Remove(filePath)
				break fetch
			}

			downloaded = append(downloaded, filePath)
		}
	}

	return downloaded
}

// CreateArchive zips the given files into the workspace, preserving their
// paths relative to the workspace root, and returns the archive path.
func (w *BundleWorkspace) CreateArchive(zipFileName string, files []string) (string, error) {
	zipPath := filepath.Join(w.Dir, zipFileName)

	out, err := os.Create(zipPath)
	if err != nil {
		return "", err
	}
	defer out.Close()

	zipWriter := zip.NewWriter(out)
	for _, filePath := range files {
		relPath, err := filepath.Rel(w.Dir, filePath)
		if err != nil {
			zipWriter.Close()
			return "", err
		}
		if err := addFileToZip(zipWriter, filePath, filepath.ToSlash(relPath)); err != nil {
			zipWriter.Close()
			return "", err
		}
	}

	if err := zipWriter.Close(); err != nil {
		return "", err
	}

	return zipPath, nil
}

func addFileToZip(zipWriter *zip.Writer, filePath, entryName string) error {
	src, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer src.Close()

	entry, err := zipWriter.Create(entryName)
	if err != nil {
		return err
	}

	_, err = io.Copy(entry, src)
	return err
}
