package practice

import (
	"errors"
	"math/rand"
	"testing"
)

// Subtopic 42 has questions 1..5, 3 and 4 share passage P1, the student has
// mastered question 1, resolved limit 10: every generated session holds the
// four remaining questions with 3 and 4 adjacent and 3 before 4.
func TestGenerateSessionScenario(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	store.questions = append(store.questions,
		question(1, uintPtr(42), nil, ""),
		question(2, uintPtr(42), nil, ""),
		question(3, uintPtr(42), nil, "P1"),
		question(4, uintPtr(42), nil, "P1"),
		question(5, uintPtr(42), nil, ""),
	)
	store.correctByUser[100] = []uint{1}

	for seed := int64(0); seed < 30; seed++ {
		g := NewGenerator(store, 10, rand.New(rand.NewSource(seed)))
		got, err := g.GenerateSession(SubtopicScope(42), nil, uintPtr(100))
		if err != nil {
			t.Fatalf("seed %d: unexpected error: %v", seed, err)
		}
		if len(got) != 4 {
			t.Fatalf("seed %d: session size = %d, want 4", seed, len(got))
		}

		pos := map[uint]int{}
		for i, q := range got {
			if q.ID == 1 {
				t.Fatalf("seed %d: mastered question 1 served", seed)
			}
			pos[q.ID] = i
		}
		if pos[4] != pos[3]+1 {
			t.Fatalf("seed %d: passage pair split: q3 at %d, q4 at %d", seed, pos[3], pos[4])
		}
	}
}

func TestGenerateSessionTruncatesToLimit(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	for id := uint(1); id <= 20; id++ {
		store.questions = append(store.questions, question(id, uintPtr(42), nil, ""))
	}
	g := NewGenerator(store, 5, rand.New(rand.NewSource(3)))

	got, err := g.GenerateSession(SubtopicScope(42), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("session size = %d, want 5", len(got))
	}
}

func TestGenerateSessionSmallPoolReturnsEverything(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	for id := uint(1); id <= 3; id++ {
		store.questions = append(store.questions, question(id, uintPtr(42), nil, ""))
	}
	g := NewGenerator(store, 50, rand.New(rand.NewSource(3)))

	got, err := g.GenerateSession(SubtopicScope(42), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("session size = %d, want 3", len(got))
	}
}

// Topic 7 has no direct questions but one subtopic carrying three.
func TestGenerateSessionTopicScopePullsSubtopicQuestions(t *testing.T) {
	store := newFakeStore()
	store.topics[7] = true
	store.subtopics[42] = 7
	for id := uint(1); id <= 3; id++ {
		store.questions = append(store.questions, question(id, uintPtr(42), nil, ""))
	}
	g := NewGenerator(store, 10, rand.New(rand.NewSource(3)))

	got, err := g.GenerateSession(TopicScope(7), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("session size = %d, want 3", len(got))
	}
}

func TestGenerateSessionUsesTenantLimit(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	for id := uint(1); id <= 20; id++ {
		store.questions = append(store.questions, question(id, uintPtr(42), nil, ""))
	}
	store.configs = append(store.configs,
		subtopicConfig(1, nil, 42, 8),
		subtopicConfig(1, uintPtr(3), 42, 4),
	)
	store.institutions[100] = uintPtr(3)
	store.institutions[200] = nil

	g := NewGenerator(store, 10, rand.New(rand.NewSource(3)))

	got, err := g.GenerateSession(SubtopicScope(42), uintPtr(1), uintPtr(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("institution student session size = %d, want 4", len(got))
	}

	got, err = g.GenerateSession(SubtopicScope(42), uintPtr(1), uintPtr(200))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 8 {
		t.Fatalf("no-institution student session size = %d, want 8", len(got))
	}
}

func TestGenerateSessionNoUniversityUsesDefault(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	for id := uint(1); id <= 20; id++ {
		store.questions = append(store.questions, question(id, uintPtr(42), nil, ""))
	}
	store.configs = append(store.configs, subtopicConfig(1, nil, 42, 3))

	g := NewGenerator(store, 6, rand.New(rand.NewSource(3)))

	got, err := g.GenerateSession(SubtopicScope(42), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 6 {
		t.Fatalf("session size = %d, want default 6", len(got))
	}
}

func TestGenerateSessionEmptyContentIsNotAnError(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	g := NewGenerator(store, 10, rand.New(rand.NewSource(3)))

	got, err := g.GenerateSession(SubtopicScope(42), nil, uintPtr(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("session size = %d, want 0", len(got))
	}
}

func TestGenerateSessionRejectsInvalidScope(t *testing.T) {
	store := newFakeStore()
	g := NewGenerator(store, 10, rand.New(rand.NewSource(3)))

	if _, err := g.GenerateSession(ContentScope{}, nil, nil); !errors.Is(err, ErrInvalidScope) {
		t.Fatalf("empty scope: err = %v, want ErrInvalidScope", err)
	}
	if _, err := g.GenerateSession(ContentScope{TopicID: 7, SubtopicID: 42}, nil, nil); !errors.Is(err, ErrInvalidScope) {
		t.Fatalf("double scope: err = %v, want ErrInvalidScope", err)
	}
}

func TestGenerateSessionPropagatesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.subtopics[42] = 7
	store.failWith = errors.New("connection refused")
	g := NewGenerator(store, 10, rand.New(rand.NewSource(3)))

	_, err := g.GenerateSession(SubtopicScope(42), uintPtr(1), uintPtr(100))
	if err == nil || err.Error() != "connection refused" {
		t.Fatalf("err = %v, want the store failure unchanged", err)
	}
}
