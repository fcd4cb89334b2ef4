package registry

import (
	"encoding/binary"
	"sync"
	"time"
)

const clockStorePropertyKey = "REGISTRY:CLOCK:MONOTONIC"

// Clock issues strictly increasing timestamps and persists the latest
// watermark, so journal keys stay ordered across restarts even if the
// wall clock moves backwards in between.
type Clock struct {
	sync.Mutex
	now time.Time
}

func NewClock(store Store) (*Clock, error) {
	bs, err := store.ReadProperty([]byte(clockStorePropertyKey))
	if err != nil {
		return nil, err
	}
	var ts time.Time
	if len(bs) == 8 {
		ts = time.Unix(0, int64(binary.BigEndian.Uint64(bs)))
	}
	if now := time.Now(); ts.Before(now) {
		ts = now
	}
	clock := new(Clock)
	clock.now = ts
	return clock, nil
}

// Tick persists the watermark through tx so it commits or aborts with
// the rest of the mutation.
func (c *Clock) Tick(tx StateTx) (time.Time, error) {
	c.Lock()
	defer c.Unlock()

	now := time.Now()
	if !now.After(c.now) {
		now = c.now.Add(time.Nanosecond)
	}
	c.now = now

	val := binary.BigEndian.AppendUint64(nil, uint64(now.UnixNano()))
	return now, tx.SetProperty([]byte(clockStorePropertyKey), val)
}
