package registry_test

import (
	"strings"
	"testing"

	"github.com/lumenkeep/registry/registry"
	"github.com/stretchr/testify/require"
)

func TestInformation(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)
	require.NoError(reg.Transfer(alice, id, admin, alice))

	err = reg.AddInformation(alice, id, strings.Repeat("x", registry.NotesSizeLimit+1))
	require.ErrorIs(err, registry.ErrInvalidValue)

	err = reg.AddInformation(bob, id, "hello")
	require.ErrorIs(err, registry.ErrUnauthorizedAsset)

	require.NoError(reg.AddInformation(alice, id, "hello"))

	notes, err := reg.GetNotes(id)
	require.NoError(err)
	require.Equal("hello", notes)

	require.NoError(reg.RemoveInformation(alice, id))

	notes, err = reg.GetNotes(id)
	require.NoError(err)
	require.Empty(notes)
}

func TestPurgeInformation(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)
	require.NoError(reg.Transfer(alice, id, admin, alice))
	require.NoError(reg.AddInformation(alice, id, "hello"))

	err = reg.PurgeInformation(alice, id)
	require.ErrorIs(err, registry.ErrUnauthorizedAdmin)

	require.NoError(reg.PurgeInformation(admin, id))

	notes, err := reg.GetNotes(id)
	require.NoError(err)
	require.Empty(notes)
}

func TestDormancy(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)
	require.NoError(reg.Transfer(alice, id, admin, alice))

	require.NoError(reg.MarkDormant(alice, id))

	notes, err := reg.GetNotes(id)
	require.NoError(err)
	require.Equal(registry.NoteDormantMark, notes)

	// Dormancy is a separate axis: the lifecycle state stays active
	// and the asset can still move.
	deactivated, err := reg.GetStatus(id)
	require.NoError(err)
	require.False(deactivated)

	ok, err := reg.CanTransfer(alice, id)
	require.NoError(err)
	require.True(ok)

	require.NoError(reg.RestoreActive(alice, id))

	notes, err = reg.GetNotes(id)
	require.NoError(err)
	require.Empty(notes)
}
