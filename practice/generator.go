package practice

import (
	"math/rand"
	"time"

	"aptivo/models"
)

// Generator produces the ordered, size-capped question list for one
// practice session. It holds no mutable state beyond its random source and
// performs no writes, so concurrent calls are independent.
type Generator struct {
	store        Store
	rng          *rand.Rand
	defaultLimit int
}

// NewGenerator wires a generator. A nil rng gets a time-seeded source;
// tests pass a fixed seed for deterministic ordering.
func NewGenerator(store Store, defaultLimit int, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if defaultLimit <= 0 {
		defaultLimit = 10
	}
	return &Generator{
		store:        store,
		rng:          rng,
		defaultLimit: defaultLimit,
	}
}

// GenerateSession resolves the session size for the tenant, builds the
// candidate pool for the scope and student, shuffles it keeping passage
// groups intact, and truncates to the resolved size. An empty result is
// valid; only infrastructure failures and an invalid scope return errors.
func (g *Generator) GenerateSession(scope ContentScope, universityID *uint, studentID *uint) ([]models.Question, error) {
	if !scope.Valid() {
		return nil, ErrInvalidScope
	}

	var institutionID *uint
	if studentID != nil {
		inst, err := g.store.StudentInstitution(*studentID)
		if err != nil {
			return nil, err
		}
		institutionID = inst
	}

	limit := g.defaultLimit
	if universityID != nil {
		resolved, err := g.resolveSessionLimit(*universityID, institutionID, scope)
		if err != nil {
			return nil, err
		}
		limit = resolved
	}

	candidates, err := g.resolveCandidates(scope, studentID)
	if err != nil {
		return nil, err
	}

	ordered := ShuffleGrouped(candidates, func(q models.Question) string { return q.PassageGroup }, g.rng)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered, nil
}
