package forkchoice

import (
	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/types"
)

// ProcessSlotVotes runs the per-slot justification rule over the votes cast
// in the just-completed slot. A target checkpoint justifies when more than
// two thirds of the registry voted for it with the current justified
// checkpoint as source; a consecutive link (target one slot past its source)
// additionally finalizes the source. Checkpoints only move forward; a slot
// without a supermajority leaves them unchanged.
func (s *Store) ProcessSlotVotes(slot types.Slot, votes []*types.SignedVote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.halted {
		return ErrHalted
	}

	type tally struct {
		checkpoint types.Checkpoint
		voters     map[uint64]struct{}
	}
	tallies := make(map[types.Root]*tally)

	for _, sv := range votes {
		vote := sv.Data
		if vote.ValidatorID >= s.Config.NumValidators {
			continue
		}
		if vote.Source != s.LatestJustified {
			continue
		}
		if vote.Target.Slot <= vote.Source.Slot || vote.Target.Slot > slot {
			continue
		}
		if _, ok := s.Storage.GetBlock(vote.Target.Root); !ok {
			continue
		}
		if !vote.Target.Slot.IsJustifiableAfter(s.LatestFinalized.Slot) {
			continue
		}

		row, ok := tallies[vote.Target.Root]
		if !ok {
			row = &tally{checkpoint: vote.Target, voters: make(map[uint64]struct{})}
			tallies[vote.Target.Root] = row
		}
		row.voters[vote.ValidatorID] = struct{}{}
	}

	source := s.LatestJustified
	for _, row := range tallies {
		if 3*uint64(len(row.voters)) <= 2*s.Config.NumValidators {
			continue
		}
		if row.checkpoint.Slot <= s.LatestJustified.Slot {
			continue
		}
		s.LatestJustified = row.checkpoint
		s.log.Info("checkpoint justified",
			"slot", row.checkpoint.Slot,
			"root", row.checkpoint.Root.Short(),
			"votes", len(row.voters),
		)
		if row.checkpoint.Slot == source.Slot+1 && source.Slot > s.LatestFinalized.Slot {
			s.LatestFinalized = source
			s.log.Info("checkpoint finalized",
				"slot", source.Slot,
				"root", source.Root.Short(),
			)
		}
	}

	metrics.LatestJustifiedSlot.Set(float64(s.LatestJustified.Slot))
	metrics.LatestFinalizedSlot.Set(float64(s.LatestFinalized.Slot))

	return s.updateHeadLocked()
}
