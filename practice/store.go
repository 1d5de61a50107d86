package practice

import (
	"aptivo/models"

	"gorm.io/gorm"
)

// Store is the read surface the practice engine needs from the platform's
// data. All methods treat "no rows" as data, not as an error; only
// infrastructure failures return a non-nil error.
type Store interface {
	// TopicExists reports whether an active, non-deleted topic exists.
	TopicExists(topicID uint) (bool, error)
	// SubtopicExists reports whether an active, non-deleted subtopic exists.
	SubtopicExists(subtopicID uint) (bool, error)
	// SubtopicIDsForTopic lists the active subtopics under a topic.
	SubtopicIDsForTopic(topicID uint) ([]uint, error)
	// ActiveQuestionsBySubtopics lists active questions for a set of subtopics.
	ActiveQuestionsBySubtopics(subtopicIDs []uint) ([]models.Question, error)
	// ActiveQuestionsByTopic lists active questions attached directly to a topic.
	ActiveQuestionsByTopic(topicID uint) ([]models.Question, error)
	// CorrectQuestionIDs lists the question IDs a student has answered
	// correctly at least once.
	CorrectQuestionIDs(userID uint) ([]uint, error)
	// SessionConfigs lists session-limit rows for a university matching the
	// given scope type exactly.
	SessionConfigs(universityID uint, scope ContentScope) ([]models.SessionConfig, error)
	// StudentInstitution returns the student's institution ID, or nil when
	// the student has none (or no profile exists).
	StudentInstitution(userID uint) (*uint, error)
}

// GormStore backs Store with the platform database
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) TopicExists(topicID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Topic{}).
		Where("id = ? AND is_active = ? AND is_deleted = ?", topicID, true, false).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) SubtopicExists(subtopicID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Subtopic{}).
		Where("id = ? AND is_active = ? AND is_deleted = ?", subtopicID, true, false).
		Count(&count).Error
	return count > 0, err
}

func (s *GormStore) SubtopicIDsForTopic(topicID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.Subtopic{}).
		Where("topic_id = ? AND is_active = ? AND is_deleted = ?", topicID, true, false).
		Pluck("id", &ids).Error
	return ids, err
}

func (s *GormStore) ActiveQuestionsBySubtopics(subtopicIDs []uint) ([]models.Question, error) {
	if len(subtopicIDs) == 0 {
		return []models.Question{}, nil
	}
	var questions []models.Question
	err := s.db.
		Where("subtopic_id IN ? AND is_active = ? AND is_deleted = ?", subtopicIDs, true, false).
		Order("id asc").
		Find(&questions).Error
	return questions, err
}

func (s *GormStore) ActiveQuestionsByTopic(topicID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.
		Where("topic_id = ? AND is_active = ? AND is_deleted = ?", topicID, true, false).
		Order("id asc").
		Find(&questions).Error
	return questions, err
}

func (s *GormStore) CorrectQuestionIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := s.db.Model(&models.QuestionAttempt{}).
		Distinct("question_id").
		Where("user_id = ? AND is_correct = ? AND is_deleted = ?", userID, true, false).
		Pluck("question_id", &ids).Error
	return ids, err
}

func (s *GormStore) SessionConfigs(universityID uint, scope ContentScope) ([]models.SessionConfig, error) {
	query := s.db.Where("university_id = ? AND is_deleted = ?", universityID, false)

	// Match the scope type exactly: a topic-scoped session only matches
	// topic-scoped rows, and likewise for subtopics.
	if scope.IsTopic() {
		query = query.Where("topic_id = ? AND subtopic_id IS NULL", scope.TopicID)
	} else {
		query = query.Where("subtopic_id = ? AND topic_id IS NULL", scope.SubtopicID)
	}

	var configs []models.SessionConfig
	err := query.Find(&configs).Error
	return configs, err
}

func (s *GormStore) StudentInstitution(userID uint) (*uint, error) {
	var user models.User
	err := s.db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// Missing profile means "no institution", not a failure.
			return nil, nil
		}
		return nil, err
	}
	return user.InstitutionID, nil
}
