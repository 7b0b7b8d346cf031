// attestations.go contains the per-slot justification and finalization rule
// (3SF mini): supermajority links counted every slot, no epoch batching.
package consensus

import (
	"github.com/OffchainLabs/go-bitfield"

	"github.com/leanlabs/glean/types"
)

// ProcessAttestations folds votes into the state's justification tally and
// advances the justified/finalized checkpoints.
//
// A vote counts toward its target C only when:
//   - its source is the state's latest justified checkpoint (the supermajority
//     link must start at the previously justified checkpoint),
//   - source.Slot < target.Slot <= state.Slot,
//   - C names the block this chain recorded at its slot,
//   - target.Slot is a justifiable distance after the finalized slot.
//
// When distinct voters for C exceed two-thirds of the registry, C is
// justified. If C sits exactly one slot after its source, the source is
// finalized: two consecutive supermajority links close the parent.
//
// Votes that fail the checks are skipped, never fatal to the block
// (best-effort packing). Checkpoints never move backward.
func ProcessAttestations(s *types.State, attestations []types.SignedVote) (*types.State, error) {
	newState := Copy(s)
	numValidators := uint64(len(newState.Validators))

	for i := range attestations {
		vote := attestations[i].Data
		source := vote.Source
		target := vote.Target

		if vote.ValidatorID >= numValidators {
			continue
		}
		if source != newState.LatestJustified {
			continue
		}
		if target.Slot <= source.Slot || target.Slot > newState.Slot {
			continue
		}
		if !checkpointInHistory(newState, target) {
			continue
		}
		if !target.Slot.IsJustifiableAfter(newState.LatestFinalized.Slot) {
			continue
		}

		row := tallyRow(newState, target.Root, numValidators)
		bit := uint64(row)*numValidators + vote.ValidatorID
		if getBit(newState.JustificationValidators, int(bit)) {
			continue // already counted for this candidate
		}
		newState.JustificationValidators = setBit(newState.JustificationValidators, int(bit), true)

		count := countRow(newState.JustificationValidators, uint64(row), numValidators)
		if 3*count > 2*numValidators {
			justify(newState, source, target)
		}
	}

	return newState, nil
}

// justify records target as the latest justified checkpoint, finalizes the
// source when the link spans exactly one slot, and resets the tally — every
// pending candidate's source link is stale once the justified checkpoint
// moves.
func justify(s *types.State, source, target types.Checkpoint) {
	s.JustifiedSlots = appendBitAt(s.JustifiedSlots, int(target.Slot), true)
	if target.Slot > s.LatestJustified.Slot {
		s.LatestJustified = target
	}
	if target.Slot == source.Slot+1 && source.Slot >= s.LatestFinalized.Slot {
		s.LatestFinalized = source
	}
	s.JustificationRoots = []types.Root{}
	s.JustificationValidators = bitfield.NewBitlist(0)
}

// checkpointInHistory reports whether the checkpoint names the block this
// chain recorded at its slot. Empty slots record a zero root and never match,
// so a vote for a root outside the chain cannot enter the tally. The tip
// block is not in history until a child records it; it is reachable as the
// latest header once ProcessSlots has filled the header's state root.
func checkpointInHistory(s *types.State, cp types.Checkpoint) bool {
	if uint64(cp.Slot) < uint64(len(s.HistoricalBlockHashes)) {
		recorded := s.HistoricalBlockHashes[cp.Slot]
		return !recorded.IsZero() && recorded == cp.Root
	}
	if cp.Slot == s.LatestBlockHeader.Slot && !s.LatestBlockHeader.StateRoot.IsZero() {
		root, err := s.LatestBlockHeader.HashTreeRoot()
		return err == nil && types.Root(root) == cp.Root
	}
	return false
}

// tallyRow returns the row index tracking the given candidate root,
// appending a fresh zero row when the candidate is new.
func tallyRow(s *types.State, root types.Root, numValidators uint64) int {
	for i, r := range s.JustificationRoots {
		if r == root {
			return i
		}
	}
	s.JustificationRoots = append(s.JustificationRoots, root)
	rows := uint64(len(s.JustificationRoots))
	s.JustificationValidators = growBitlist(s.JustificationValidators, rows*numValidators)
	return int(rows - 1)
}

// countRow counts set bits in one candidate's validator row.
func countRow(bits []byte, row, numValidators uint64) uint64 {
	bl := bitfield.Bitlist(bits)
	var count uint64
	for i := uint64(0); i < numValidators; i++ {
		idx := row*numValidators + i
		if idx < bl.Len() && bl.BitAt(idx) {
			count++
		}
	}
	return count
}

// IsSlotJustified reports whether the state has justified the given slot.
func IsSlotJustified(s *types.State, slot types.Slot) bool {
	return getBit(s.JustifiedSlots, int(slot))
}
