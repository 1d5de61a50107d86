package models

import "gorm.io/gorm"

// Topic sits under a subject; questions may attach to it directly
type Topic struct {
	gorm.Model
	SubjectID   uint   `json:"subject_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
