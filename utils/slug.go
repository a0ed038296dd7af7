package utils

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL slug.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "item"
	}
	return slug
}

// UniqueSlug returns a slug for name that no row of model currently uses,
// appending a numeric suffix when the plain form is taken.
func UniqueSlug(db *gorm.DB, model interface{}, name string) string {
	base := Slugify(name)
	slug := base

	for counter := 2; ; counter++ {
		var count int64
		db.Model(model).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
