package practice

import (
	"math/rand"
	"testing"

	"aptivo/models"
)

func passageKey(q models.Question) string { return q.PassageGroup }

func makeQuestions(groups ...string) []models.Question {
	out := make([]models.Question, len(groups))
	for i, g := range groups {
		out[i] = question(uint(i+1), nil, nil, g)
	}
	return out
}

func TestShuffleArrayIsPermutation(t *testing.T) {
	input := makeQuestions("", "", "", "", "", "", "")
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out := ShuffleArray(input, rng)

		if len(out) != len(input) {
			t.Fatalf("seed %d: length %d, want %d", seed, len(out), len(input))
		}
		seen := map[uint]int{}
		for _, q := range out {
			seen[q.ID]++
		}
		for _, q := range input {
			if seen[q.ID] != 1 {
				t.Fatalf("seed %d: question %d appears %d times", seed, q.ID, seen[q.ID])
			}
		}
	}
}

func TestShuffleArrayDoesNotModifyInput(t *testing.T) {
	input := makeQuestions("", "", "", "", "")
	before := make([]uint, len(input))
	for i, q := range input {
		before[i] = q.ID
	}

	ShuffleArray(input, rand.New(rand.NewSource(7)))

	for i, q := range input {
		if q.ID != before[i] {
			t.Fatalf("input modified at %d: got %d, want %d", i, q.ID, before[i])
		}
	}
}

func TestShuffleGroupedIsPermutation(t *testing.T) {
	input := makeQuestions("", "P1", "", "P1", "P2", "", "P2", "P1")
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out := ShuffleGrouped(input, passageKey, rng)

		if len(out) != len(input) {
			t.Fatalf("seed %d: length %d, want %d", seed, len(out), len(input))
		}
		seen := map[uint]int{}
		for _, q := range out {
			seen[q.ID]++
		}
		for _, q := range input {
			if seen[q.ID] != 1 {
				t.Fatalf("seed %d: question %d appears %d times", seed, q.ID, seen[q.ID])
			}
		}
	}
}

func TestShuffleGroupedKeepsGroupsContiguousAndOrdered(t *testing.T) {
	// P1 holds IDs 2, 4, 8 and P2 holds IDs 5, 7, in input order.
	input := makeQuestions("", "P1", "", "P1", "P2", "", "P2", "P1")

	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		out := ShuffleGrouped(input, passageKey, rng)

		positions := map[string][]int{}
		order := map[string][]uint{}
		for i, q := range out {
			if q.PassageGroup == "" {
				continue
			}
			positions[q.PassageGroup] = append(positions[q.PassageGroup], i)
			order[q.PassageGroup] = append(order[q.PassageGroup], q.ID)
		}

		for group, idxs := range positions {
			for i := 1; i < len(idxs); i++ {
				if idxs[i] != idxs[i-1]+1 {
					t.Fatalf("seed %d: group %s split across positions %v", seed, group, idxs)
				}
			}
		}

		wantOrder := map[string][]uint{"P1": {2, 4, 8}, "P2": {5, 7}}
		for group, want := range wantOrder {
			got := order[group]
			if len(got) != len(want) {
				t.Fatalf("seed %d: group %s has members %v, want %v", seed, group, got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Fatalf("seed %d: group %s internal order %v, want %v", seed, group, got, want)
				}
			}
		}
	}
}

func TestShuffleGroupedEmptyKeyNeverGroups(t *testing.T) {
	// Two standalone questions must be free to separate; with enough seeds
	// at least one ordering puts the P1 pair between them.
	input := makeQuestions("", "P1", "P1", "")

	split := false
	for seed := int64(0); seed < 100 && !split; seed++ {
		out := ShuffleGrouped(input, passageKey, rand.New(rand.NewSource(seed)))
		var standalone []int
		for i, q := range out {
			if q.PassageGroup == "" {
				standalone = append(standalone, i)
			}
		}
		if standalone[1]-standalone[0] > 1 {
			split = true
		}
	}
	if !split {
		t.Fatal("standalone questions were never separated; empty keys appear to be grouped")
	}
}

func TestShuffleGroupedVariesOrder(t *testing.T) {
	input := makeQuestions("", "", "", "", "", "", "", "", "", "")

	first := ShuffleGrouped(input, passageKey, rand.New(rand.NewSource(1)))
	varied := false
	for seed := int64(2); seed < 12; seed++ {
		out := ShuffleGrouped(input, passageKey, rand.New(rand.NewSource(seed)))
		for i := range out {
			if out[i].ID != first[i].ID {
				varied = true
				break
			}
		}
	}
	if !varied {
		t.Fatal("ten seeds produced identical orderings")
	}
}

func TestShuffleGroupedEmptyInput(t *testing.T) {
	out := ShuffleGrouped(nil, passageKey, rand.New(rand.NewSource(1)))
	if len(out) != 0 {
		t.Fatalf("empty input produced %d items", len(out))
	}
}
