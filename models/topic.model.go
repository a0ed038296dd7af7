package models

import "gorm.io/gorm"

type Topic struct {
	gorm.Model
	Name        string  `json:"name" gorm:"not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;not null"`
	Description string  `json:"description"`
	Language    string  `json:"language"`
	Institution string  `json:"institution"` // display name or partner id, depending on data entry
	SortOrder   int     `json:"sort_order" gorm:"default:0"`
	Blocks      []Block `json:"blocks,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE"`
}
