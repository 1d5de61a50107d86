package practice

import (
	"aptivo/models"
)

// fakeStore is an in-memory Store for tests. It holds only active content;
// the real store filters inactive rows before they reach the engine.
type fakeStore struct {
	topics        map[uint]bool
	subtopics     map[uint]uint // subtopic ID -> parent topic ID
	questions     []models.Question
	correctByUser map[uint][]uint
	configs       []models.SessionConfig
	institutions  map[uint]*uint
	failWith      error // when set, every call fails with it
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		topics:        map[uint]bool{},
		subtopics:     map[uint]uint{},
		correctByUser: map[uint][]uint{},
		institutions:  map[uint]*uint{},
	}
}

func (f *fakeStore) TopicExists(topicID uint) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	return f.topics[topicID], nil
}

func (f *fakeStore) SubtopicExists(subtopicID uint) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.subtopics[subtopicID]
	return ok, nil
}

func (f *fakeStore) SubtopicIDsForTopic(topicID uint) ([]uint, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var ids []uint
	for id, parent := range f.subtopics {
		if parent == topicID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (f *fakeStore) ActiveQuestionsBySubtopics(subtopicIDs []uint) ([]models.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	want := map[uint]bool{}
	for _, id := range subtopicIDs {
		want[id] = true
	}
	var out []models.Question
	for _, q := range f.questions {
		if q.SubtopicID != nil && want[*q.SubtopicID] {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeStore) ActiveQuestionsByTopic(topicID uint) ([]models.Question, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.Question
	for _, q := range f.questions {
		if q.TopicID != nil && *q.TopicID == topicID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeStore) CorrectQuestionIDs(userID uint) ([]uint, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.correctByUser[userID], nil
}

func (f *fakeStore) SessionConfigs(universityID uint, scope ContentScope) ([]models.SessionConfig, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.SessionConfig
	for _, c := range f.configs {
		if c.UniversityID != universityID {
			continue
		}
		if scope.IsTopic() {
			if c.TopicID != nil && *c.TopicID == scope.TopicID && c.SubtopicID == nil {
				out = append(out, c)
			}
		} else {
			if c.SubtopicID != nil && *c.SubtopicID == scope.SubtopicID && c.TopicID == nil {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func (f *fakeStore) StudentInstitution(userID uint) (*uint, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.institutions[userID], nil
}

func uintPtr(v uint) *uint { return &v }

func question(id uint, subtopicID, topicID *uint, passageGroup string) models.Question {
	q := models.Question{
		SubtopicID:   subtopicID,
		TopicID:      topicID,
		PassageGroup: passageGroup,
	}
	q.ID = id
	return q
}
