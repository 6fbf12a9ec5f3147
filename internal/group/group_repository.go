package group

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"

	"github.com/DhavalSuthar-24/pickup/internal/storage"
	"github.com/DhavalSuthar-24/pickup/pkg/apperror"
)

// MaxGroupNameLength caps group names so every derived storage key fits the
// key column.
const MaxGroupNameLength = 100

const (
	msgGroupExists   = "a group with this name already exists"
	msgGroupNotFound = "group not found"
	msgPlayerExists  = "this person has already been added to a team in this group"
	msgPlayerMissing = "player not found in this group"
)

// GroupRepository defines the persistence operations for groups and their players.
type GroupRepository interface {
	// Group operations
	CreateGroup(ctx context.Context, name string) error
	GetAllGroups(ctx context.Context) ([]string, error)
	RemoveGroupByName(ctx context.Context, name string) error

	// Player operations
	AddPlayerByGroup(ctx context.Context, newPlayer Player, group string) error
	GetPlayersByGroup(ctx context.Context, group string) ([]Player, error)
	GetPlayersByGroupAndTeam(ctx context.Context, group, team string) ([]Player, error)
	RemovePlayerByGroup(ctx context.Context, playerName, group string) error
}

// groupRepository keeps every collection as a JSON value in the KV store.
// Writers lock the players key of a group before the group collection key.
type groupRepository struct {
	store storage.KVStore
	locks *keyedMutex
}

// NewGroupRepository creates a GroupRepository backed by store.
func NewGroupRepository(store storage.KVStore) GroupRepository {
	return &groupRepository{
		store: store,
		locks: newKeyedMutex(),
	}
}

// --- Group Operations ---

func (r *groupRepository) CreateGroup(ctx context.Context, name string) error {
	name, err := normalizeGroup(name)
	if err != nil {
		return err
	}

	unlock := r.locks.Lock(GroupCollection)
	defer unlock()

	err = r.store.Update(ctx, GroupCollection, func(current []byte, found bool) ([]byte, error) {
		groups, err := decodeGroups(current, found)
		if err != nil {
			return nil, err
		}
		if containsGroup(groups, name) {
			return nil, apperror.Conflict(msgGroupExists)
		}
		return encode(append(groups, name), "could not save group")
	})
	return storageErr(err, "could not save group")
}

func (r *groupRepository) GetAllGroups(ctx context.Context) ([]string, error) {
	raw, found, err := r.store.GetItem(ctx, GroupCollection)
	if err != nil {
		return nil, apperror.Storage("could not load groups", err)
	}
	return decodeGroups(raw, found)
}

func (r *groupRepository) RemoveGroupByName(ctx context.Context, name string) error {
	name, err := normalizeGroup(name)
	if err != nil {
		return err
	}

	unlockPlayers := r.locks.Lock(PlayersKey(name))
	defer unlockPlayers()
	unlockGroups := r.locks.Lock(GroupCollection)
	defer unlockGroups()

	groups, err := r.GetAllGroups(ctx)
	if err != nil {
		return err
	}
	if !containsGroup(groups, name) {
		return apperror.NotFound(msgGroupNotFound)
	}

	// Players go first so a failure never leaves a roster behind an unlisted group.
	if err := r.store.RemoveItem(ctx, PlayersKey(name)); err != nil {
		return apperror.Storage("could not remove group players", err)
	}

	err = r.store.Update(ctx, GroupCollection, func(current []byte, found bool) ([]byte, error) {
		groups, err := decodeGroups(current, found)
		if err != nil {
			return nil, err
		}
		remaining := make([]string, 0, len(groups))
		for _, g := range groups {
			if g != name {
				remaining = append(remaining, g)
			}
		}
		return encode(remaining, "could not remove group")
	})
	return storageErr(err, "could not remove group")
}

// --- Player Operations ---

func (r *groupRepository) AddPlayerByGroup(ctx context.Context, newPlayer Player, group string) error {
	group, err := normalizeGroup(group)
	if err != nil {
		return err
	}
	if strings.TrimSpace(newPlayer.Name) == "" {
		return apperror.Validation("name", "participant name required")
	}

	unlock := r.locks.Lock(PlayersKey(group))
	defer unlock()

	if err := r.registerGroup(ctx, group); err != nil {
		return err
	}

	err = r.store.Update(ctx, PlayersKey(group), func(current []byte, found bool) ([]byte, error) {
		players, err := decodePlayers(current, found)
		if err != nil {
			return nil, err
		}
		if indexOfPlayer(players, newPlayer.Name) >= 0 {
			return nil, apperror.Conflict(msgPlayerExists)
		}
		return encode(append(players, newPlayer), "could not save player")
	})
	return storageErr(err, "could not save player")
}

func (r *groupRepository) GetPlayersByGroup(ctx context.Context, group string) ([]Player, error) {
	group, err := normalizeGroup(group)
	if err != nil {
		return nil, err
	}

	raw, found, err := r.store.GetItem(ctx, PlayersKey(group))
	if err != nil {
		return nil, apperror.Storage("could not load players", err)
	}
	return decodePlayers(raw, found)
}

func (r *groupRepository) GetPlayersByGroupAndTeam(ctx context.Context, group, team string) ([]Player, error) {
	players, err := r.GetPlayersByGroup(ctx, group)
	if err != nil {
		return nil, err
	}

	filtered := make([]Player, 0, len(players))
	for _, p := range players {
		if p.Team == team {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (r *groupRepository) RemovePlayerByGroup(ctx context.Context, playerName, group string) error {
	group, err := normalizeGroup(group)
	if err != nil {
		return err
	}

	unlock := r.locks.Lock(PlayersKey(group))
	defer unlock()

	err = r.store.Update(ctx, PlayersKey(group), func(current []byte, found bool) ([]byte, error) {
		players, err := decodePlayers(current, found)
		if err != nil {
			return nil, err
		}
		idx := indexOfPlayer(players, playerName)
		if idx < 0 {
			return nil, apperror.NotFound(msgPlayerMissing)
		}
		remaining := append(players[:idx:idx], players[idx+1:]...)
		return encode(remaining, "could not remove player")
	})
	return storageErr(err, "could not remove player")
}

// registerGroup adds group to the collection if it is not there yet.
// Callers hold the players lock of group.
func (r *groupRepository) registerGroup(ctx context.Context, group string) error {
	unlock := r.locks.Lock(GroupCollection)
	defer unlock()

	err := r.store.Update(ctx, GroupCollection, func(current []byte, found bool) ([]byte, error) {
		groups, err := decodeGroups(current, found)
		if err != nil {
			return nil, err
		}
		if containsGroup(groups, group) {
			return current, nil
		}
		return encode(append(groups, group), "could not save group")
	})
	return storageErr(err, "could not save group")
}

// --- helpers ---

func normalizeGroup(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.Validation("group", "group name required")
	}
	if utf8.RuneCountInString(name) > MaxGroupNameLength {
		return "", apperror.Validation("group", fmt.Sprintf("group name must be at most %d characters", MaxGroupNameLength))
	}
	return name, nil
}

func containsGroup(groups []string, name string) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}
	return false
}

// indexOfPlayer matches names case-insensitively, ignoring surrounding spaces.
func indexOfPlayer(players []Player, name string) int {
	name = strings.TrimSpace(name)
	for i, p := range players {
		if strings.EqualFold(strings.TrimSpace(p.Name), name) {
			return i
		}
	}
	return -1
}

func decodeGroups(raw []byte, found bool) ([]string, error) {
	groups := []string{}
	if !found || len(raw) == 0 {
		return groups, nil
	}
	if err := json.Unmarshal(raw, &groups); err != nil {
		return nil, apperror.Storage("could not load groups", err)
	}
	return groups, nil
}

func decodePlayers(raw []byte, found bool) ([]Player, error) {
	players := []Player{}
	if !found || len(raw) == 0 {
		return players, nil
	}
	if err := json.Unmarshal(raw, &players); err != nil {
		return nil, apperror.Storage("could not load players", err)
	}
	return players, nil
}

func encode(v any, message string) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, apperror.Storage(message, err)
	}
	return raw, nil
}

// storageErr passes taxonomy errors through and wraps anything else as a
// storage AppError.
func storageErr(err error, message string) error {
	if err == nil {
		return nil
	}
	if _, ok := apperror.AsAppError(err); ok {
		return err
	}
	if _, ok := apperror.AsValidation(err); ok {
		return err
	}
	return apperror.Storage(message, err)
}
