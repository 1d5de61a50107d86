package practice

import (
	"errors"

	"aptivo/models"
)

// ErrInvalidScope reports a content scope that names neither an active
// topic nor an active subtopic. This is a caller bug, distinct from a
// legitimately empty question pool.
var ErrInvalidScope = errors.New("practice: content scope does not name an active topic or subtopic")

// resolveCandidates builds the eligible question pool for a scope. With a
// student given, questions the student has already answered correctly are
// removed; if that removal would empty a non-empty pool, the unfiltered
// pool is returned instead so the student can review.
func (g *Generator) resolveCandidates(scope ContentScope, studentID *uint) ([]models.Question, error) {
	base, err := g.basePool(scope)
	if err != nil {
		return nil, err
	}
	if len(base) == 0 || studentID == nil {
		return base, nil
	}

	correctIDs, err := g.store.CorrectQuestionIDs(*studentID)
	if err != nil {
		return nil, err
	}

	mastered := make(map[uint]bool, len(correctIDs))
	for _, id := range correctIDs {
		mastered[id] = true
	}

	remaining := make([]models.Question, 0, len(base))
	for _, q := range base {
		if !mastered[q.ID] {
			remaining = append(remaining, q)
		}
	}

	// Review mode: the student has mastered everything in scope.
	if len(remaining) == 0 {
		return base, nil
	}
	return remaining, nil
}

// basePool resolves the scope to its active questions. Topic membership is
// looked up fresh on every call since the hierarchy can change between
// sessions.
func (g *Generator) basePool(scope ContentScope) ([]models.Question, error) {
	switch {
	case scope.IsSubtopic():
		exists, err := g.store.SubtopicExists(scope.SubtopicID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrInvalidScope
		}
		return g.store.ActiveQuestionsBySubtopics([]uint{scope.SubtopicID})

	case scope.IsTopic():
		exists, err := g.store.TopicExists(scope.TopicID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrInvalidScope
		}

		direct, err := g.store.ActiveQuestionsByTopic(scope.TopicID)
		if err != nil {
			return nil, err
		}
		subtopicIDs, err := g.store.SubtopicIDsForTopic(scope.TopicID)
		if err != nil {
			return nil, err
		}
		fromSubtopics, err := g.store.ActiveQuestionsBySubtopics(subtopicIDs)
		if err != nil {
			return nil, err
		}

		// Deduplicate by question ID in case a question matches both the
		// topic directly and one of its subtopics.
		seen := make(map[uint]bool, len(direct)+len(fromSubtopics))
		pool := make([]models.Question, 0, len(direct)+len(fromSubtopics))
		for _, q := range append(direct, fromSubtopics...) {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			pool = append(pool, q)
		}
		return pool, nil

	default:
		return nil, ErrInvalidScope
	}
}
