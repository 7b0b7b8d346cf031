package clock

import (
	"time"

	"github.com/leanlabs/glean/types"
)

// WallClock derives consensus time from the system clock. It is the node's
// view of time; the fork choice store keeps its own tick-based SlotClock.
type WallClock struct {
	genesisTime uint64
	now         func() time.Time
}

// NewWallClock creates a wall clock anchored at the given genesis time.
func NewWallClock(genesisTime uint64) *WallClock {
	return &WallClock{genesisTime: genesisTime, now: time.Now}
}

// NewWallClockAt creates a wall clock with an injected time source, for tests.
func NewWallClockAt(genesisTime uint64, now func() time.Time) *WallClock {
	return &WallClock{genesisTime: genesisTime, now: now}
}

// CurrentTime returns the current unix timestamp.
func (c *WallClock) CurrentTime() uint64 {
	return uint64(c.now().Unix())
}

// IsBeforeGenesis reports whether the chain has not started yet.
func (c *WallClock) IsBeforeGenesis() bool {
	return c.CurrentTime() < c.genesisTime
}

// CurrentSlot returns the current slot, or 0 before genesis.
func (c *WallClock) CurrentSlot() types.Slot {
	slot, _, err := AtTime(c.genesisTime, c.CurrentTime())
	if err != nil {
		return 0
	}
	return slot
}

// CurrentInterval returns the current interval within the slot, or 0 before genesis.
func (c *WallClock) CurrentInterval() uint64 {
	_, interval, err := AtTime(c.genesisTime, c.CurrentTime())
	if err != nil {
		return 0
	}
	return interval
}

// IntervalTicker returns a channel that fires once per interval.
// The caller owns the ticker and must call Stop.
func (c *WallClock) IntervalTicker() *time.Ticker {
	return time.NewTicker(time.Duration(types.SecondsPerInterval) * time.Second)
}
