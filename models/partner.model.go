package models

import "gorm.io/gorm"

// Partner type for departments/institutions shown in the filter dropdown
const PartnerTypeInstitution = 1

// Partner mirrors the external partner registry. The catalog only ever reads
// it, to resolve institution identifiers stored on topics into display names.
type Partner struct {
	gorm.Model
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Type        int    `json:"type" gorm:"index"`
}
