package utils

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// Extensions accepted straight from a source URL path
var allowedImageExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
	"bmp":  true,
}

var (
	unsafeFileChars     = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	repeatedUnderscores = regexp.MustCompile(`_+`)
)

// SanitizeFileName turns an arbitrary title into a safe file name component.
// Non-alphanumeric characters become underscores, runs collapse to one, and
// a non-empty fallback is returned when nothing survives.
func SanitizeFileName(name string) string {
	sanitized := unsafeFileChars.ReplaceAllString(name, "_")
	sanitized = repeatedUnderscores.ReplaceAllString(sanitized, "_")
	sanitized = strings.Trim(sanitized, "_")

	if sanitized == "" {
		return "download"
	}
	return sanitized
}

// ImageExtensionFromURL returns the extension of the URL path when it is in
// the allowed image set, falling back to jpg otherwise.
func ImageExtensionFromURL(rawURL string) string {
	ext := extensionFromURL(rawURL)
	if allowedImageExtensions[ext] {
		return ext
	}
	return "jpg"
}

// ResourceExtension resolves the file extension for a fetched resource:
// the URL path extension when present, otherwise a default for the declared
// resource type.
func ResourceExtension(rawURL, resourceType string) string {
	if ext := extensionFromURL(rawURL); ext != "" {
		return ext
	}

	switch resourceType {
	case "cover", "gallery":
		return "jpg"
	case "video":
		return "mp4"
	case "document":
		return "pdf"
	default:
		return "bin" // generic binary file
	}
}

func extensionFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	ext := strings.ToLower(filepath.Ext(parsed.Path))
	return strings.TrimPrefix(ext, ".")
}
