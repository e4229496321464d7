package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/staffsync/internal/store"
	"github.com/jonathan/staffsync/internal/types"
)

func testManager(t *testing.T) (*Manager, *store.ProfileStore) {
	t.Helper()
	profiles := store.NewProfileStore([]types.CandidateProfile{
		{ID: "v1", Name: "Verified", Category: types.CategoryCook, Verified: true},
		{ID: "u1", Name: "Unverified", Category: types.CategoryNanny, Verified: false},
	})
	return NewManager(profiles).WithDelay(0), profiles
}

func TestStart_RequiresExistingVerifiedCandidate(t *testing.T) {
	m, _ := testManager(t)

	w, err := m.Start("v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", w.CandidateID())
	assert.Equal(t, 1, m.Len())

	_, err = m.Start("u1")
	assert.ErrorIs(t, err, ErrNotVerified)

	_, err = m.Start("missing")
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestStart_AllowsAfterVerificationToggle(t *testing.T) {
	m, profiles := testManager(t)

	_, err := m.Start("u1")
	require.ErrorIs(t, err, ErrNotVerified)

	require.True(t, profiles.ToggleVerified("u1"))
	_, err = m.Start("u1")
	assert.NoError(t, err)
}

func TestManager_GetAndCancel(t *testing.T) {
	m, _ := testManager(t)

	w, err := m.Start("v1")
	require.NoError(t, err)

	got, err := m.Get(w.ID())
	require.NoError(t, err)
	assert.Same(t, w, got)

	require.NoError(t, m.Cancel(w.ID()))
	assert.Equal(t, 0, m.Len())

	_, err = m.Get(w.ID())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, m.Cancel(w.ID()), ErrNotFound)
}
