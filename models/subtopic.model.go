package models

import "gorm.io/gorm"

// Subtopic sits under a topic and carries most of the question bank
type Subtopic struct {
	gorm.Model
	TopicID     uint   `json:"topic_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
