package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage        string `gorm:"default:''"`
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'STUDENT'"` // STUDENT, UNIVERSITY_ADMIN, ADMIN
	Password            string `gorm:"not null"`
	UniversityID        *uint  `json:"university_id" gorm:"index"`
	InstitutionID       *uint  `json:"institution_id" gorm:"index"`
	IsMobileVerified    bool   `gorm:"default:false"`
	IsEmailVerified     bool   `gorm:"default:false"`
	LastLogin           time.Time
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
