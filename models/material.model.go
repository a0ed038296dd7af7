package models

import "gorm.io/gorm"

// Material types used when the settings table has no material_type entries
const (
	TypeText     = "text"
	TypeVideo    = "video"
	TypeDocument = "document"
	TypeQuiz     = "quiz"
)

// StringList is stored as a JSON-encoded text column so substring search
// works the same on postgres and sqlite.
type StringList []string

type Material struct {
	gorm.Model
	Name            string     `json:"name" gorm:"not null"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;not null"`
	Description     string     `json:"description"`
	Type            string     `json:"type" gorm:"not null"`
	Language        string     `json:"language"`
	LessonID        uint       `json:"lesson_id" gorm:"index;not null"`
	Prefix          string     `json:"prefix"` // version-like display order label, e.g. "1.2"
	Duration        string     `json:"duration"`
	Keywords        StringList `json:"keywords" gorm:"serializer:json;type:text"`
	TargetAudiences StringList `json:"target_audiences" gorm:"serializer:json;type:text"`
	CoverURL        string     `json:"cover_url"`
	VideoURL        string     `json:"video_url"`
	DocumentURL     string     `json:"document_url"`
	YoutubeURL      string     `json:"youtube_url"`
	GalleryURLs     StringList `json:"gallery_urls" gorm:"serializer:json;type:text"`
	SortOrder       int        `json:"sort_order" gorm:"default:0"`
	Lesson          *Lesson    `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
}
