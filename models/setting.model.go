package models

import "gorm.io/gorm"

// Setting types (vocabulary discriminator)
const (
	SettingBlockLevel   = "block_level"
	SettingMaterialType = "material_type"
)

// Setting is one configurable vocabulary entry. Levels and material types
// were originally hard-coded constants; rows here override the built-in
// defaults when present.
type Setting struct {
	gorm.Model
	Type      string `json:"type" gorm:"index:idx_settings_type_value,unique;not null"`
	Value     string `json:"value" gorm:"index:idx_settings_type_value,unique;not null"`
	Label     string `json:"label" gorm:"not null"`
	Active    bool   `json:"active"`
	SortOrder int    `json:"sort_order" gorm:"default:0"`
}
