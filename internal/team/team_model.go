// team/model.go
package team

import (
	"strings"

	"github.com/DhavalSuthar-24/pickup/pkg/apperror"
)

// Team is one side of a pickup match. IsActive marks the team that newly
// added players join; it is never persisted.
type Team struct {
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// NewTeams builds the initial team list from the configured names with the
// first team active.
func NewTeams(names []string) ([]Team, error) {
	if len(names) == 0 {
		return nil, apperror.Validation("teams", "at least one team is required")
	}

	seen := make(map[string]struct{}, len(names))
	teams := make([]Team, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, apperror.Validation("teams", "team names cannot be blank")
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, apperror.Validation("teams", "duplicate team name "+name)
		}
		seen[key] = struct{}{}
		teams[i] = Team{Name: name, IsActive: i == 0}
	}
	return teams, nil
}

// Names returns the team names in order.
func Names(teams []Team) []string {
	names := make([]string, len(teams))
	for i, t := range teams {
		names[i] = t.Name
	}
	return names
}
