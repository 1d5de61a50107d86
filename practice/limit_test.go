package practice

import (
	"math/rand"
	"testing"

	"aptivo/models"
)

func topicConfig(universityID uint, institutionID *uint, topicID uint, limit int) models.SessionConfig {
	return models.SessionConfig{
		UniversityID:  universityID,
		InstitutionID: institutionID,
		TopicID:       uintPtr(topicID),
		SessionLimit:  limit,
	}
}

func subtopicConfig(universityID uint, institutionID *uint, subtopicID uint, limit int) models.SessionConfig {
	return models.SessionConfig{
		UniversityID:  universityID,
		InstitutionID: institutionID,
		SubtopicID:    uintPtr(subtopicID),
		SessionLimit:  limit,
	}
}

func TestResolveSessionLimitPrecedence(t *testing.T) {
	const defaultLimit = 10

	cases := []struct {
		name          string
		configs       []models.SessionConfig
		institutionID *uint
		want          int
	}{
		{
			name: "institution row wins over global",
			configs: []models.SessionConfig{
				topicConfig(1, nil, 7, 20),
				topicConfig(1, uintPtr(3), 7, 5),
			},
			institutionID: uintPtr(3),
			want:          5,
		},
		{
			name: "no institution falls back to global",
			configs: []models.SessionConfig{
				topicConfig(1, nil, 7, 20),
				topicConfig(1, uintPtr(3), 7, 5),
			},
			institutionID: nil,
			want:          20,
		},
		{
			name: "different institution falls back to global",
			configs: []models.SessionConfig{
				topicConfig(1, nil, 7, 20),
				topicConfig(1, uintPtr(3), 7, 5),
			},
			institutionID: uintPtr(9),
			want:          20,
		},
		{
			name: "only institution row, mismatched student gets default",
			configs: []models.SessionConfig{
				topicConfig(1, uintPtr(3), 7, 5),
			},
			institutionID: uintPtr(9),
			want:          defaultLimit,
		},
		{
			name:          "no rows at all gets default",
			configs:       nil,
			institutionID: uintPtr(3),
			want:          defaultLimit,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.configs = tc.configs
			g := NewGenerator(store, defaultLimit, rand.New(rand.NewSource(1)))

			got, err := g.resolveSessionLimit(1, tc.institutionID, TopicScope(7))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("limit = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestResolveSessionLimitMatchesScopeTypeExactly(t *testing.T) {
	store := newFakeStore()
	// A topic-scoped row must not apply to a subtopic-scoped session even
	// when the IDs collide numerically.
	store.configs = []models.SessionConfig{topicConfig(1, nil, 42, 25)}
	g := NewGenerator(store, 10, rand.New(rand.NewSource(1)))

	got, err := g.resolveSessionLimit(1, nil, SubtopicScope(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 10 {
		t.Fatalf("subtopic scope resolved topic row: limit = %d, want 10", got)
	}
}
