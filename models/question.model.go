package models

import "gorm.io/gorm"

// Question is one assessable item. It attaches to a subtopic or, for
// topic-level items, directly to a topic. Only one of the two is set in
// correct usage. Questions sharing a PassageGroup share a reading passage
// and must stay adjacent when a session is shuffled.
type Question struct {
	gorm.Model
	SubtopicID    *uint  `json:"subtopic_id" gorm:"index"`
	TopicID       *uint  `json:"topic_id" gorm:"index"`
	QuestionText  string `json:"question_text" gorm:"not null"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"` // A, B, C or D
	Explanation   string `json:"explanation"`
	Difficulty    string `json:"difficulty" gorm:"default:'MEDIUM'"` // EASY, MEDIUM, HARD
	PassageGroup  string `json:"passage_group" gorm:"index;default:''"`
	PassageText   string `json:"passage_text"`
	IsActive      bool   `json:"is_active" gorm:"default:true"`
	IsDeleted     bool   `gorm:"default:false"`
}
