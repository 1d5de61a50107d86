package practice

import "aptivo/models"

// resolveSessionLimit picks the session size for a university and scope.
// An institution-specific config row wins for students of that institution,
// then the university-wide row (institution unset), then the configured
// default. Missing configuration is never an error.
func (g *Generator) resolveSessionLimit(universityID uint, institutionID *uint, scope ContentScope) (int, error) {
	configs, err := g.store.SessionConfigs(universityID, scope)
	if err != nil {
		return 0, err
	}

	var global *models.SessionConfig
	for i := range configs {
		row := &configs[i]
		if row.InstitutionID == nil {
			if global == nil {
				global = row
			}
			continue
		}
		if institutionID != nil && *row.InstitutionID == *institutionID {
			return row.SessionLimit, nil
		}
	}

	if global != nil {
		return global.SessionLimit, nil
	}
	return g.defaultLimit, nil
}
