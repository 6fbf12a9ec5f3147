package group

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DhavalSuthar-24/pickup/internal/storage"
	"github.com/DhavalSuthar-24/pickup/internal/storage/storagetest"
	"github.com/DhavalSuthar-24/pickup/pkg/apperror"
)

func newTestRepo(t *testing.T) (GroupRepository, storage.KVStore) {
	t.Helper()
	store := storagetest.NewKVStore(t)
	return NewGroupRepository(store), store
}

func requireAppCode(t *testing.T, err error, code apperror.Code) *apperror.AppError {
	t.Helper()
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok, "expected AppError, got %v", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

func TestAddPlayerByGroupPersistsUnderGroupKey(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday"))

	players, err := repo.GetPlayersByGroup(ctx, "Friday")
	require.NoError(t, err)
	assert.Equal(t, []Player{{Name: "Alex", Team: "Team A"}}, players)

	raw, found, err := store.GetItem(ctx, PlayersKey("Friday"))
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"name":"Alex","team":"Team A"}]`, string(raw))

	groups, err := repo.GetAllGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Friday"}, groups, "group is created implicitly")
}

func TestAddPlayerByGroupRejectsDuplicateName(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday"))

	err := repo.AddPlayerByGroup(ctx, Player{Name: " alex ", Team: "Team B"}, "Friday")
	appErr := requireAppCode(t, err, apperror.CodeConflict)
	assert.Equal(t, msgPlayerExists, appErr.Message)

	players, err := repo.GetPlayersByGroup(ctx, "Friday")
	require.NoError(t, err)
	assert.Len(t, players, 1)

	// same name in another group is fine
	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team B"}, "Sunday"))
}

func TestAddPlayerByGroupConcurrentWritesAreSerialized(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n*2)
	for i := 0; i < n; i++ {
		wg.Add(2)
		name := fmt.Sprintf("Player %02d", i)
		// every name is submitted twice, like a double tap
		for j := 0; j < 2; j++ {
			go func() {
				defer wg.Done()
				errs <- repo.AddPlayerByGroup(ctx, Player{Name: name, Team: "Team A"}, "Friday")
			}()
		}
	}
	wg.Wait()
	close(errs)

	conflicts := 0
	for err := range errs {
		if err != nil {
			requireAppCode(t, err, apperror.CodeConflict)
			conflicts++
		}
	}
	assert.Equal(t, n, conflicts)

	players, err := repo.GetPlayersByGroup(ctx, "Friday")
	require.NoError(t, err)
	assert.Len(t, players, n)
}

func TestGetPlayersByGroupAndTeam(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday"))
	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Bia", Team: "Team B"}, "Friday"))
	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Caio", Team: "Team A"}, "Friday"))

	teamA, err := repo.GetPlayersByGroupAndTeam(ctx, "Friday", "Team A")
	require.NoError(t, err)
	assert.Equal(t, []Player{{Name: "Alex", Team: "Team A"}, {Name: "Caio", Team: "Team A"}}, teamA)

	none, err := repo.GetPlayersByGroupAndTeam(ctx, "Unknown", "Team A")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRemovePlayerByGroup(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday"))
	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Bia", Team: "Team B"}, "Friday"))

	require.NoError(t, repo.RemovePlayerByGroup(ctx, "alex", "Friday"))

	players, err := repo.GetPlayersByGroup(ctx, "Friday")
	require.NoError(t, err)
	assert.Equal(t, []Player{{Name: "Bia", Team: "Team B"}}, players)

	requireAppCode(t, repo.RemovePlayerByGroup(ctx, "Alex", "Friday"), apperror.CodeNotFound)
}

func TestCreateAndRemoveGroup(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	require.NoError(t, repo.CreateGroup(ctx, " Friday "))
	require.NoError(t, repo.CreateGroup(ctx, "Sunday"))
	requireAppCode(t, repo.CreateGroup(ctx, "Friday"), apperror.CodeConflict)

	_, isValidation := apperror.AsValidation(repo.CreateGroup(ctx, "   "))
	assert.True(t, isValidation)

	groups, err := repo.GetAllGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Friday", "Sunday"}, groups)

	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday"))
	require.NoError(t, repo.RemoveGroupByName(ctx, "Friday"))

	groups, err = repo.GetAllGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Sunday"}, groups)

	_, found, err := store.GetItem(ctx, PlayersKey("Friday"))
	require.NoError(t, err)
	assert.False(t, found, "players removed with the group")

	requireAppCode(t, repo.RemoveGroupByName(ctx, "Friday"), apperror.CodeNotFound)
}

type failingStore struct {
	storage.KVStore
	err error
}

func (f failingStore) GetItem(context.Context, string) ([]byte, bool, error) {
	return nil, false, f.err
}

func (f failingStore) Update(context.Context, string, storage.UpdateFunc) error {
	return f.err
}

func TestStorageFaultsBecomeAppErrors(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("disk I/O error")
	repo := NewGroupRepository(failingStore{err: cause})

	err := repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday")
	appErr := requireAppCode(t, err, apperror.CodeStorage)
	assert.Equal(t, "could not save group", appErr.Message)
	assert.ErrorIs(t, err, cause)

	_, err = repo.GetPlayersByGroup(ctx, "Friday")
	requireAppCode(t, err, apperror.CodeStorage)
}

type removeFailingStore struct {
	storage.KVStore
	err error
}

func (f removeFailingStore) RemoveItem(context.Context, string) error {
	return f.err
}

func TestRemoveGroupKeepsGroupWhenPlayersCannotBeRemoved(t *testing.T) {
	ctx := context.Background()
	cause := errors.New("disk I/O error")
	store := storagetest.NewKVStore(t)
	repo := NewGroupRepository(removeFailingStore{KVStore: store, err: cause})

	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, "Friday"))

	err := repo.RemoveGroupByName(ctx, "Friday")
	appErr := requireAppCode(t, err, apperror.CodeStorage)
	assert.Equal(t, "could not remove group players", appErr.Message)
	assert.ErrorIs(t, err, cause)

	groups, err := repo.GetAllGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Friday"}, groups)

	players, err := repo.GetPlayersByGroup(ctx, "Friday")
	require.NoError(t, err)
	assert.Equal(t, []Player{{Name: "Alex", Team: "Team A"}}, players)

	// Retrying against a healthy store finishes the removal.
	require.NoError(t, NewGroupRepository(store).RemoveGroupByName(ctx, "Friday"))
	groups, err = repo.GetAllGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestGroupNameLength(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	longest := strings.Repeat("é", MaxGroupNameLength)
	require.NoError(t, repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, longest))

	tooLong := longest + "x"
	vErr, ok := apperror.AsValidation(repo.AddPlayerByGroup(ctx, Player{Name: "Alex", Team: "Team A"}, tooLong))
	require.True(t, ok)
	assert.Equal(t, "group", vErr.Field)

	_, ok = apperror.AsValidation(repo.CreateGroup(ctx, tooLong))
	assert.True(t, ok)

	groups, err := repo.GetAllGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{longest}, groups)
}

func TestCorruptedValueIsStorageError(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepo(t)

	require.NoError(t, store.SetItem(ctx, PlayersKey("Friday"), []byte("not json")))

	_, err := repo.GetPlayersByGroup(ctx, "Friday")
	appErr := requireAppCode(t, err, apperror.CodeStorage)
	assert.Equal(t, "could not load players", appErr.Message)
}
