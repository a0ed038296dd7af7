package models

import "gorm.io/gorm"

type Lesson struct {
	gorm.Model
	Name      string     `json:"name" gorm:"not null"`
	Slug      string     `json:"slug" gorm:"uniqueIndex;not null"`
	BlockID   uint       `json:"block_id" gorm:"index;not null"`
	SortOrder int        `json:"sort_order" gorm:"default:0"`
	Block     *Block     `json:"block,omitempty" gorm:"foreignKey:BlockID"`
	Materials []Material `json:"materials,omitempty" gorm:"foreignKey:LessonID;constraint:OnDelete:CASCADE"`
}
