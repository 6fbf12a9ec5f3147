package team

import (
	"fmt"
	"sync"

	"github.com/DhavalSuthar-24/pickup/pkg/apperror"
)

// SetActive returns a new list where only teams[index] is active. The input
// is never modified.
func SetActive(teams []Team, index int) ([]Team, error) {
	if index < 0 || index >= len(teams) {
		return nil, apperror.Validation("index", fmt.Sprintf("team index %d out of range [0,%d)", index, len(teams)))
	}

	next := make([]Team, len(teams))
	for i, t := range teams {
		next[i] = Team{Name: t.Name, IsActive: i == index}
	}
	return next, nil
}

// ActiveTeam returns the first active team.
func ActiveTeam(teams []Team) (Team, error) {
	for _, t := range teams {
		if t.IsActive {
			return t, nil
		}
	}
	return Team{}, apperror.Invariant("no active team among %d teams", len(teams))
}

// Validate checks that exactly one team is active.
func Validate(teams []Team) error {
	active := 0
	for _, t := range teams {
		if t.IsActive {
			active++
		}
	}
	if active != 1 {
		return apperror.Invariant("expected exactly one active team, found %d", active)
	}
	return nil
}

// Selector keeps the current team snapshot of every group. Snapshots are
// replaced wholesale and handed out as copies. Callers only select for
// registered groups and Forget a group when it is created or removed, so the
// map stays bounded by the group collection.
type Selector struct {
	mu      sync.RWMutex
	initial []Team
	byGroup map[string][]Team
}

// NewSelector creates a Selector whose groups start with the first of names active.
func NewSelector(names []string) (*Selector, error) {
	initial, err := NewTeams(names)
	if err != nil {
		return nil, err
	}
	return &Selector{
		initial: initial,
		byGroup: make(map[string][]Team),
	}, nil
}

// Teams returns a copy of the group's current snapshot.
func (s *Selector) Teams(group string) []Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current, ok := s.byGroup[group]
	if !ok {
		current = s.initial
	}
	return clone(current)
}

// SetActive activates the team at index for group and returns the new snapshot.
func (s *Selector) SetActive(group string, index int) ([]Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.byGroup[group]
	if !ok {
		current = s.initial
	}

	next, err := SetActive(current, index)
	if err != nil {
		return nil, err
	}
	if err := Validate(next); err != nil {
		return nil, err
	}

	s.byGroup[group] = next
	return clone(next), nil
}

// Forget drops the group's snapshot so it starts over from the initial list.
func (s *Selector) Forget(group string) {
	s.mu.Lock()
	delete(s.byGroup, group)
	s.mu.Unlock()
}

func clone(teams []Team) []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

func (s *Selector) size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byGroup)
}
