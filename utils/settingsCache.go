package utils

import (
	"log"
	"sync"

	"coursehub/models"

	"gorm.io/gorm"
)

// VocabularyOption is one dropdown entry of a configurable vocabulary.
type VocabularyOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// vocabularyCache keeps the settings-driven vocabularies (block levels,
// material types) in process. Writes to the settings table must call
// Invalidate so the next read reloads.
type vocabularyCache struct {
	mu      sync.RWMutex
	entries map[string][]VocabularyOption
}

// Vocabulary is the shared cache instance.
var Vocabulary = &vocabularyCache{entries: make(map[string][]VocabularyOption)}

// Options returns the active options of one vocabulary type, loading from
// the settings table on a cache miss and falling back to the built-in
// defaults when no rows exist.
func (vc *vocabularyCache) Options(db *gorm.DB, settingType string) []VocabularyOption {
	vc.mu.RLock()
	cached, ok := vc.entries[settingType]
	vc.mu.RUnlock()
	if ok {
		return cached
	}

	var settings []models.Setting
	if err := db.
		Where("type = ? AND active = ?", settingType, true).
		Order("sort_order asc, value asc").
		Find(&settings).Error; err != nil {
		log.Printf("[SETTINGS] Failed to load %s vocabulary: %v", settingType, err)
		return defaultVocabulary(settingType)
	}

	options := make([]VocabularyOption, 0, len(settings))
	for _, setting := range settings {
		options = append(options, VocabularyOption{Value: setting.Value, Label: setting.Label})
	}

	// Empty settings table falls back to the built-in vocabulary
	if len(options) == 0 {
		options = defaultVocabulary(settingType)
	}

	vc.mu.Lock()
	vc.entries[settingType] = options
	vc.mu.Unlock()

	return options
}

// Invalidate drops all cached vocabularies.
func (vc *vocabularyCache) Invalidate() {
	vc.mu.Lock()
	vc.entries = make(map[string][]VocabularyOption)
	vc.mu.Unlock()
}

func defaultVocabulary(settingType string) []VocabularyOption {
	switch settingType {
	case models.SettingBlockLevel:
		return []VocabularyOption{
			{Value: models.LevelBasic, Label: "Basic"},
			{Value: models.LevelAdvanced, Label: "Advanced"},
		}
	case models.SettingMaterialType:
		return []VocabularyOption{
			{Value: models.TypeText, Label: "Text"},
			{Value: models.TypeVideo, Label: "Video"},
			{Value: models.TypeDocument, Label: "Document"},
			{Value: models.TypeQuiz, Label: "Quiz"},
		}
	}
	return nil
}
