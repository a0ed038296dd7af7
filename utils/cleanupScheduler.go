package utils

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"coursehub/config"

	"github.com/robfig/cron/v3"
)

// InitializeCleanupScheduler sets up the workspace sweeper. Bundle
// workspaces are normally removed by the request that owns them; the
// sweeper covers directories left behind by crashes or kills.
func InitializeCleanupScheduler() *cron.Cron {
	log.Println("[CLEANUP-SCHEDULER] Initializing workspace sweeper...")

	c := cron.New()

	c.AddFunc("@hourly", func() {
		SweepStaleWorkspaces(config.AppConfig.TempDir, time.Hour)
	})

	c.Start()
	log.Println("[CLEANUP-SCHEDULER] Workspace sweeper started - runs hourly")

	return c
}

// SweepStaleWorkspaces removes bundle_* directories under root that have
// not been touched for maxAge.
func SweepStaleWorkspaces(root string, maxAge time.Duration) {
	entries, err := os.ReadDir(root)
	if err != nil {
		log.Printf("[CLEANUP-SCHEDULER] Failed to read temp root %s: %v", root, err)
		return
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "bundle_") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if time.Since(info.ModTime()) < maxAge {
			continue
		}

		path := filepath.Join(root, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			log.Printf("[CLEANUP-SCHEDULER] Failed to remove stale workspace %s: %v", path, err)
			continue
		}
		log.Printf("[CLEANUP-SCHEDULER] Removed stale workspace %s", path)
	}
}
