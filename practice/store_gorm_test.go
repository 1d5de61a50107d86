package practice

import (
	"os"
	"path/filepath"
	"testing"

	"aptivo/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Exercises GormStore against a real database. Needs cgo for the sqlite
// driver, so it is gated the same way as other environment-bound tests.
func TestGormStore_SQLite(t *testing.T) {
	if os.Getenv("APTIVO_INTEGRATION") != "1" {
		t.Skip("set APTIVO_INTEGRATION=1 to run store integration tests")
	}

	dbPath := filepath.Join(t.TempDir(), "practice_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Subtopic{},
		&models.Question{},
		&models.SessionConfig{},
		&models.QuestionAttempt{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	topic := models.Topic{SubjectID: 1, Name: "Algebra", IsActive: true}
	if err := db.Create(&topic).Error; err != nil {
		t.Fatalf("seed topic: %v", err)
	}
	active := models.Subtopic{TopicID: topic.ID, Name: "Linear Equations", IsActive: true}
	archived := models.Subtopic{TopicID: topic.ID, Name: "Old Material", IsActive: false}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("seed subtopic: %v", err)
	}
	if err := db.Create(&archived).Error; err != nil {
		t.Fatalf("seed subtopic: %v", err)
	}

	questions := []models.Question{
		{SubtopicID: &active.ID, QuestionText: "q1", IsActive: true},
		{SubtopicID: &active.ID, QuestionText: "q2", IsActive: false},
		{SubtopicID: &archived.ID, QuestionText: "q3", IsActive: true},
		{TopicID: &topic.ID, QuestionText: "q4", IsActive: true},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			t.Fatalf("seed question: %v", err)
		}
	}

	store := NewGormStore(db)

	ids, err := store.SubtopicIDsForTopic(topic.ID)
	if err != nil {
		t.Fatalf("SubtopicIDsForTopic: %v", err)
	}
	if len(ids) != 1 || ids[0] != active.ID {
		t.Fatalf("SubtopicIDsForTopic = %v, want only the active subtopic %d", ids, active.ID)
	}

	qs, err := store.ActiveQuestionsBySubtopics([]uint{active.ID})
	if err != nil {
		t.Fatalf("ActiveQuestionsBySubtopics: %v", err)
	}
	if len(qs) != 1 || qs[0].QuestionText != "q1" {
		t.Fatalf("ActiveQuestionsBySubtopics returned %d rows, want the single active question", len(qs))
	}

	qs, err = store.ActiveQuestionsByTopic(topic.ID)
	if err != nil {
		t.Fatalf("ActiveQuestionsByTopic: %v", err)
	}
	if len(qs) != 1 || qs[0].QuestionText != "q4" {
		t.Fatalf("ActiveQuestionsByTopic returned %d rows, want the direct question", len(qs))
	}

	instID := uint(5)
	student := models.User{Email: "s@example.com", Password: "x", InstitutionID: &instID}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	attempts := []models.QuestionAttempt{
		{UserID: student.ID, QuestionID: questions[0].ID, IsCorrect: true},
		{UserID: student.ID, QuestionID: questions[0].ID, IsCorrect: true}, // duplicate correct
		{UserID: student.ID, QuestionID: questions[3].ID, IsCorrect: false},
	}
	for i := range attempts {
		if err := db.Create(&attempts[i]).Error; err != nil {
			t.Fatalf("seed attempt: %v", err)
		}
	}

	correct, err := store.CorrectQuestionIDs(student.ID)
	if err != nil {
		t.Fatalf("CorrectQuestionIDs: %v", err)
	}
	if len(correct) != 1 || correct[0] != questions[0].ID {
		t.Fatalf("CorrectQuestionIDs = %v, want [%d]", correct, questions[0].ID)
	}

	inst, err := store.StudentInstitution(student.ID)
	if err != nil {
		t.Fatalf("StudentInstitution: %v", err)
	}
	if inst == nil || *inst != instID {
		t.Fatalf("StudentInstitution = %v, want %d", inst, instID)
	}
	inst, err = store.StudentInstitution(99999)
	if err != nil || inst != nil {
		t.Fatalf("missing student: inst=%v err=%v, want nil, nil", inst, err)
	}

	cfgInst := uint(5)
	configs := []models.SessionConfig{
		{UniversityID: 1, SubtopicID: &active.ID, SessionLimit: 12},
		{UniversityID: 1, InstitutionID: &cfgInst, SubtopicID: &active.ID, SessionLimit: 6},
		{UniversityID: 1, TopicID: &topic.ID, SessionLimit: 30},
	}
	for i := range configs {
		if err := db.Create(&configs[i]).Error; err != nil {
			t.Fatalf("seed config: %v", err)
		}
	}

	rows, err := store.SessionConfigs(1, SubtopicScope(active.ID))
	if err != nil {
		t.Fatalf("SessionConfigs: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("SessionConfigs returned %d rows, want the 2 subtopic-scoped rows", len(rows))
	}
	rows, err = store.SessionConfigs(1, TopicScope(topic.ID))
	if err != nil {
		t.Fatalf("SessionConfigs: %v", err)
	}
	if len(rows) != 1 || rows[0].SessionLimit != 30 {
		t.Fatalf("SessionConfigs topic scope returned %d rows, want the topic row", len(rows))
	}
}
