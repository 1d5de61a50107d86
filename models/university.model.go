package models

import "gorm.io/gorm"

// University is a tenant on the platform
type University struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Code      string `json:"code" gorm:"unique"`
	City      string `json:"city"`
	State     string `json:"state"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}

// Institution is a campus or affiliated college under a university
type Institution struct {
	gorm.Model
	UniversityID uint   `json:"university_id" gorm:"index;not null"`
	Name         string `json:"name" gorm:"not null"`
	Code         string `json:"code"`
	City         string `json:"city"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	IsDeleted    bool   `gorm:"default:false"`
}
