package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsAppErrorThroughWrapping(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("group.AddPlayerByGroup: %w", Storage("could not save player", cause))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, CodeStorage, appErr.Code)
	assert.Equal(t, "could not save player", appErr.Message)
	assert.ErrorIs(t, err, cause)
}

func TestValidationErrorMessage(t *testing.T) {
	assert.Equal(t, "name: participant name required", Validation("name", "participant name required").Error())
	assert.Equal(t, "bad", Validation("", "bad").Error())

	_, ok := AsValidation(fmt.Errorf("wrapped: %w", Validation("name", "x")))
	assert.True(t, ok)
}

func TestInvariantAndUnknown(t *testing.T) {
	inv := Invariant("no active team among %d teams", 2)
	assert.True(t, IsInvariant(fmt.Errorf("x: %w", inv)))
	assert.Contains(t, inv.Error(), "no active team among 2 teams")

	cause := errors.New("boom")
	unk := &UnknownError{Err: cause}
	assert.ErrorIs(t, unk, cause)
	_, ok := AsAppError(unk)
	assert.False(t, ok)
}
