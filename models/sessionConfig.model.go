package models

import "gorm.io/gorm"

// SessionConfig is a per-tenant practice session size override. A row with
// InstitutionID nil is the university-wide default; an institution-specific
// row wins over it for students of that institution. Exactly one of TopicID
// and SubtopicID is set, matching the scope the override applies to.
type SessionConfig struct {
	gorm.Model
	UniversityID  uint  `json:"university_id" gorm:"index;not null"`
	InstitutionID *uint `json:"institution_id" gorm:"index"`
	TopicID       *uint `json:"topic_id" gorm:"index"`
	SubtopicID    *uint `json:"subtopic_id" gorm:"index"`
	SessionLimit  int   `json:"session_limit" gorm:"not null"`
	IsDeleted     bool  `gorm:"default:false"`
}
