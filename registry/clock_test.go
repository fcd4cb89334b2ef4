package registry_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumenkeep/registry/registry"
	"github.com/lumenkeep/registry/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestClockMonotonic(t *testing.T) {
	require := require.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	bs, err := store.OpenBadger(ctx, t.TempDir(), zerolog.Nop())
	require.NoError(err)
	t.Cleanup(func() {
		cancel()
		bs.Close()
	})

	clock, err := registry.NewClock(bs)
	require.NoError(err)

	var first, second time.Time
	err = bs.Update(func(tx registry.StateTx) error {
		var err error
		first, err = clock.Tick(tx)
		require.NoError(err)
		second, err = clock.Tick(tx)
		require.NoError(err)
		return nil
	})
	require.NoError(err)
	require.True(second.After(first))

	// A fresh clock resumes from the persisted watermark.
	restored, err := registry.NewClock(bs)
	require.NoError(err)

	var third time.Time
	err = bs.Update(func(tx registry.StateTx) error {
		var err error
		third, err = restored.Tick(tx)
		require.NoError(err)
		return nil
	})
	require.NoError(err)
	require.True(third.After(second))
}
