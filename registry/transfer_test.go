package registry_test

import (
	"testing"

	"github.com/lumenkeep/registry/registry"
	"github.com/stretchr/testify/require"
)

func TestTransfer(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)

	// Only the recipient may pull the asset.
	err = reg.Transfer(admin, id, admin, alice)
	require.ErrorIs(err, registry.ErrUnauthorizedAsset)

	err = reg.Transfer(alice, id, admin, alice)
	require.NoError(err)

	holder, err := reg.GetHolder(id)
	require.NoError(err)
	require.Equal(alice, holder)
}

func TestTransferWrongFrom(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)

	err = reg.Transfer(bob, id, alice, bob)
	require.ErrorIs(err, registry.ErrUnauthorizedAsset)

	holder, err := reg.GetHolder(id)
	require.NoError(err)
	require.Equal(admin, holder)
}

func TestTransferMissingAsset(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	err := reg.Transfer(bob, 7, alice, bob)
	require.ErrorIs(err, registry.ErrUnauthorizedAsset)
}

func TestReclaim(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)
	require.NoError(reg.Transfer(alice, id, admin, alice))

	err = reg.Reclaim(alice, id)
	require.ErrorIs(err, registry.ErrUnauthorizedAdmin)

	require.NoError(reg.Reclaim(admin, id))

	holder, err := reg.GetHolder(id)
	require.NoError(err)
	require.Equal(admin, holder)
}

func TestReclaimDeactivated(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)
	require.NoError(reg.Deactivate(admin, id))

	err = reg.Reclaim(admin, id)
	require.ErrorIs(err, registry.ErrAlreadyDeactivated)
}

func TestClaimOwnership(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)

	// No prior-holder check: any caller may seize an existing asset.
	require.NoError(reg.ClaimOwnership(bob, id))

	holder, err := reg.GetHolder(id)
	require.NoError(err)
	require.Equal(bob, holder)

	err = reg.ClaimOwnership(bob, 99)
	require.ErrorIs(err, registry.ErrUnauthorizedAsset)
}
