package forkchoice

import (
	"testing"

	"github.com/leanlabs/glean/types"
)

func TestAdvanceTimeReachesTargetInterval(t *testing.T) {
	fc, _ := newTestStore(t, 5)
	genesisTime := fc.Config.GenesisTime

	// 2 seconds past genesis = 2 intervals at one second each.
	fc.AdvanceTime(genesisTime+2, false)

	if got := fc.Clock.Intervals(); got != 2 {
		t.Fatalf("intervals = %d, want 2", got)
	}
	if fc.CurrentSlot() != 0 {
		t.Fatalf("slot = %d, want 0", fc.CurrentSlot())
	}
	if fc.CurrentInterval() != 2 {
		t.Fatalf("interval = %d, want 2", fc.CurrentInterval())
	}
}

func TestAdvanceTimeBeforeGenesisIsNoop(t *testing.T) {
	fc, _ := newTestStore(t, 5)

	// Genesis time 0; a stale timestamp clamps to zero intervals.
	fc.AdvanceTime(0, false)

	if got := fc.Clock.Intervals(); got != 0 {
		t.Fatalf("intervals = %d, want 0", got)
	}
}

func TestTickIntervalCyclesThroughSlot(t *testing.T) {
	fc, _ := newTestStore(t, 5)

	for i := 0; i < int(types.IntervalsPerSlot); i++ {
		fc.TickInterval(false)
	}

	if fc.CurrentSlot() != 1 {
		t.Fatalf("slot = %d, want 1 after a full slot of ticks", fc.CurrentSlot())
	}
	if fc.CurrentInterval() != 0 {
		t.Fatalf("interval = %d, want 0 at slot start", fc.CurrentInterval())
	}
}

func TestVotesAcceptedOnLastInterval(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 5)
	fc.LatestNewVotes[0] = types.Vote{Head: types.Checkpoint{Root: genesisRoot, Slot: 0}}

	// Interval 3 accepts pending votes even without a proposal.
	fc.TickInterval(false) // 1
	fc.TickInterval(false) // 2
	fc.TickInterval(false) // 3

	if _, ok := fc.LatestKnownVotes[0]; !ok {
		t.Fatal("pending vote should be accepted at the last interval")
	}
	if len(fc.LatestNewVotes) != 0 {
		t.Fatal("pending vote set should drain once accepted")
	}
}

func TestVotesAcceptedAtSlotStartOnlyWithProposal(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 5)

	// Move to interval 3 first, then add a vote so it is still pending when
	// the slot rolls over.
	fc.TickInterval(false)
	fc.TickInterval(false)
	fc.TickInterval(false)
	fc.LatestNewVotes[0] = types.Vote{Head: types.Checkpoint{Root: genesisRoot, Slot: 0}}

	fc.TickInterval(false) // interval 0, no proposal
	if _, ok := fc.LatestKnownVotes[0]; ok {
		t.Fatal("vote should stay pending at slot start without a proposal")
	}

	// Same position one slot later, this time proposing.
	fc.TickInterval(false)
	fc.TickInterval(false)
	fc.TickInterval(false) // interval 3 drains the pending set
	delete(fc.LatestKnownVotes, 0)
	fc.LatestNewVotes[0] = types.Vote{Head: types.Checkpoint{Root: genesisRoot, Slot: 0}}
	fc.TickInterval(true) // interval 0, proposing
	if _, ok := fc.LatestKnownVotes[0]; !ok {
		t.Fatal("vote should be accepted at slot start when proposing")
	}
}
