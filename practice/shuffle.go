package practice

import (
	"math/rand"

	"aptivo/models"
)

// ShuffleArray returns a copy of questions in uniformly random order using
// the Fisher-Yates algorithm. The original slice is not modified.
func ShuffleArray(questions []models.Question, rng *rand.Rand) []models.Question {
	shuffled := make([]models.Question, len(questions))
	copy(shuffled, questions)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled
}

// ShuffleGrouped randomizes question order while keeping questions that
// share a non-empty key adjacent. Questions with an empty key shuffle as
// singletons. Each group keeps its input-relative internal order; only the
// sequence of groups and singletons is randomized.
func ShuffleGrouped(questions []models.Question, key func(models.Question) string, rng *rand.Rand) []models.Question {
	if len(questions) == 0 {
		return []models.Question{}
	}

	units := make([][]models.Question, 0, len(questions))
	unitByKey := make(map[string]int)

	for _, q := range questions {
		k := key(q)
		if k == "" {
			units = append(units, []models.Question{q})
			continue
		}
		if i, ok := unitByKey[k]; ok {
			units[i] = append(units[i], q)
		} else {
			unitByKey[k] = len(units)
			units = append(units, []models.Question{q})
		}
	}

	for i := len(units) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		units[i], units[j] = units[j], units[i]
	}

	out := make([]models.Question, 0, len(questions))
	for _, unit := range units {
		out = append(out, unit...)
	}
	return out
}
