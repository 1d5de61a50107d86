package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PracticeSession is the ledger row written when a generated session is
// handed to a student. QuestionIDs snapshots the ordered question list so
// the submission can be graded against exactly what was served.
type PracticeSession struct {
	gorm.Model
	ReferenceID    string         `json:"reference_id" gorm:"uniqueIndex;not null"`
	UserID         uint           `json:"user_id" gorm:"index;not null"`
	TopicID        *uint          `json:"topic_id" gorm:"index"`
	SubtopicID     *uint          `json:"subtopic_id" gorm:"index"`
	QuestionIDs    datatypes.JSON `json:"question_ids"`
	TotalQuestions int            `json:"total_questions" gorm:"default:0"`
	AnsweredCount  int            `json:"answered_count" gorm:"default:0"`
	CorrectCount   int            `json:"correct_count" gorm:"default:0"`
	Status         string         `json:"status" gorm:"default:'IN_PROGRESS'"` // IN_PROGRESS, COMPLETED, ABANDONED
	CompletedAt    *time.Time     `json:"completed_at"`
	IsDeleted      bool           `gorm:"default:false"`
}
