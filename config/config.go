package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	// Download bundling limits
	MaxGalleryFiles   int    // max URLs per gallery bundle request
	MaxBlockMaterials int    // max materials per block bundle request
	MaxFileSize       int64  // per downloaded file, bytes
	MaxTotalSize      int64  // per bundle request, bytes
	DownloadTimeout   int    // seconds per file
	MaxRedirects      int    // per fetch
	TempDir           string // root for bundle workspaces
	DownloadUserAgent string
	AllowPrivateHosts bool // permit fetches from private/loopback addresses (internal asset hosts)

	// Search suggestion defaults
	SuggestionMaxResults  int
	SuggestionMinQueryLen int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		MaxGalleryFiles:   getEnvInt("BUNDLE_MAX_GALLERY_FILES", 50),
		MaxBlockMaterials: getEnvInt("BUNDLE_MAX_BLOCK_MATERIALS", 100),
		MaxFileSize:       int64(getEnvInt("BUNDLE_MAX_FILE_SIZE", 10*1024*1024)),
		MaxTotalSize:      int64(getEnvInt("BUNDLE_MAX_TOTAL_SIZE", 100*1024*1024)),
		DownloadTimeout:   getEnvInt("BUNDLE_DOWNLOAD_TIMEOUT", 30),
		MaxRedirects:      getEnvInt("BUNDLE_MAX_REDIRECTS", 3),
		TempDir:           getEnv("BUNDLE_TEMP_DIR", os.TempDir()),
		DownloadUserAgent: getEnv("BUNDLE_USER_AGENT", "Mozilla/5.0 (compatible; CourseDownloader/1.0)"),
		AllowPrivateHosts: getEnv("BUNDLE_ALLOW_PRIVATE_HOSTS", "false") == "true",

		SuggestionMaxResults:  getEnvInt("SUGGESTION_MAX_RESULTS", 10),
		SuggestionMinQueryLen: getEnvInt("SUGGESTION_MIN_QUERY_LENGTH", 2),
	}

	if AppConfig.MaxFileSize > AppConfig.MaxTotalSize {
		log.Println("Warning: BUNDLE_MAX_FILE_SIZE exceeds BUNDLE_MAX_TOTAL_SIZE. Check your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
