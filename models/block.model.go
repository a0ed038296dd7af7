package models

import "gorm.io/gorm"

// Block levels used when the settings table has no block_level entries
const (
	LevelBasic    = "basic"
	LevelAdvanced = "advanced"
)

type Block struct {
	gorm.Model
	Name      string   `json:"name" gorm:"not null"`
	Slug      string   `json:"slug" gorm:"uniqueIndex;not null"`
	TopicID   uint     `json:"topic_id" gorm:"index;not null"`
	Level     string   `json:"level"`
	Language  string   `json:"language"`
	SortOrder int      `json:"sort_order" gorm:"default:0"`
	Topic     *Topic   `json:"topic,omitempty" gorm:"foreignKey:TopicID"`
	Lessons   []Lesson `json:"lessons,omitempty" gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE"`
}
