package models

import "gorm.io/gorm"

// QuestionAttempt is one graded answer in the attempt ledger. The practice
// engine reads only the correct rows to build a student's mastery set.
type QuestionAttempt struct {
	gorm.Model
	UserID            uint   `json:"user_id" gorm:"index;not null"`
	QuestionID        uint   `json:"question_id" gorm:"index;not null"`
	PracticeSessionID *uint  `json:"practice_session_id" gorm:"index"`
	SelectedOption    string `json:"selected_option"`
	IsCorrect         bool   `json:"is_correct" gorm:"default:false"`
	AttemptNumber     int    `json:"attempt_number" gorm:"default:1"`
	IsDeleted         bool   `gorm:"default:false"`
}
