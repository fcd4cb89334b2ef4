package registry_test

import (
	"context"
	"testing"

	"github.com/lumenkeep/registry/registry"
	"github.com/lumenkeep/registry/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const (
	admin = registry.Identity("5c5d1b6c-9c45-4e36-9dd1-1d0ec40ad5e6")
	alice = registry.Identity("2b9f8e9a-43cf-4b76-a0ff-5a5a8f9c43dd")
	bob   = registry.Identity("9a2f59ab-27f1-4ad1-8f36-16f8c2c9f2be")
)

func newTestRegistry(t *testing.T) *registry.Registry {
	ctx, cancel := context.WithCancel(context.Background())
	db, err := store.OpenBadger(ctx, t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() {
		cancel()
		db.Close()
	})

	reg, err := registry.New(db, admin, zerolog.Nop())
	require.NoError(t, err)
	return reg
}

func TestNewRequiresAdmin(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	db, err := store.OpenBadger(ctx, t.TempDir(), zerolog.Nop())
	require.NoError(err)
	t.Cleanup(func() {
		cancel()
		db.Close()
	})

	_, err = registry.New(db, "", zerolog.Nop())
	require.Error(err)
}

func TestCreateSingle(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	id, err := reg.CreateSingle(admin, 5)
	require.NoError(err)
	require.Equal(uint64(1), id)

	holder, err := reg.GetHolder(id)
	require.NoError(err)
	require.Equal(admin, holder)

	value, err := reg.GetValue(id)
	require.NoError(err)
	require.Equal(uint64(5), value)

	deactivated, err := reg.GetStatus(id)
	require.NoError(err)
	require.False(deactivated)

	count, err := reg.TotalCreated()
	require.NoError(err)
	require.Equal(uint64(1), count)
}

func TestCreateSingleInvalidAmount(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	_, err := reg.CreateSingle(admin, 0)
	require.ErrorIs(err, registry.ErrInvalidValue)

	count, err := reg.TotalCreated()
	require.NoError(err)
	require.Zero(count)
}

func TestCreateSingleUnauthorized(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	_, err := reg.CreateSingle(alice, 5)
	require.ErrorIs(err, registry.ErrUnauthorizedAdmin)

	count, err := reg.TotalCreated()
	require.NoError(err)
	require.Zero(count)
}

func TestCreateMultiple(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	// The zero amount is dropped silently and consumes no id.
	ids, err := reg.CreateMultiple(admin, []uint64{5, 0, 7})
	require.NoError(err)
	require.Equal([]uint64{1, 2}, ids)

	count, err := reg.TotalCreated()
	require.NoError(err)
	require.Equal(uint64(2), count)

	value, err := reg.GetValue(2)
	require.NoError(err)
	require.Equal(uint64(7), value)
}

func TestCreateMultipleBatchBounds(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	_, err := reg.CreateMultiple(admin, nil)
	require.ErrorIs(err, registry.ErrInvalidValue)

	oversized := make([]uint64, registry.MintBatchLimit+1)
	for i := range oversized {
		oversized[i] = 1
	}
	_, err = reg.CreateMultiple(admin, oversized)
	require.ErrorIs(err, registry.ErrInvalidValue)

	_, err = reg.CreateMultiple(alice, []uint64{1})
	require.ErrorIs(err, registry.ErrUnauthorizedAdmin)

	count, err := reg.TotalCreated()
	require.NoError(err)
	require.Zero(count)
}

func TestCreateMultipleAllInvalid(t *testing.T) {
	require := require.New(t)
	reg := newTestRegistry(t)

	// A valid-length batch of invalid amounts still reports success.
	ids, err := reg.CreateMultiple(admin, []uint64{0, 0})
	require.NoError(err)
	require.Empty(ids)

	count, err := reg.TotalCreated()
	require.NoError(err)
	require.Zero(count)
}
