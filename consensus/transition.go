// transition.go contains slot advancement, block header processing, and the
// top-level ApplyBlock entrypoint.
package consensus

import (
	"fmt"

	"github.com/leanlabs/glean/types"
)

// ProcessSlots advances the state through empty slots up to targetSlot.
// The latest header's state root is cached on the first advance past a block,
// completing the two-pass header/state hashing scheme.
func ProcessSlots(s *types.State, targetSlot types.Slot) (*types.State, error) {
	if s.Slot >= targetSlot {
		return nil, fmt.Errorf("%w: target slot %d not after current slot %d",
			ErrInvalidSlot, targetSlot, s.Slot)
	}

	state := Copy(s)
	for state.Slot < targetSlot {
		// Cache state root into the latest header before advancing the slot.
		// This avoids circular dependency during block construction.
		if state.LatestBlockHeader.StateRoot.IsZero() {
			stateRoot, err := state.HashTreeRoot()
			if err != nil {
				return nil, fmt.Errorf("hash state: %w", err)
			}
			state.LatestBlockHeader.StateRoot = stateRoot
		}
		state.Slot++
	}
	return state, nil
}

// ProcessBlockHeader validates and applies a block header to the state.
func ProcessBlockHeader(s *types.State, block *types.Block) (*types.State, error) {
	if block.Slot != s.Slot {
		return nil, fmt.Errorf("%w: block slot %d != state slot %d",
			ErrInvalidSlot, block.Slot, s.Slot)
	}

	// Block must be newer than latest header
	if block.Slot <= s.LatestBlockHeader.Slot {
		return nil, fmt.Errorf("%w: block slot %d <= latest header slot %d",
			ErrInvalidSlot, block.Slot, s.LatestBlockHeader.Slot)
	}

	// Validate proposer (round-robin over the registry)
	numValidators := uint64(len(s.Validators))
	if block.ProposerIndex >= numValidators {
		return nil, fmt.Errorf("%w: proposer %d outside registry of %d",
			ErrInvalidProposer, block.ProposerIndex, numValidators)
	}
	if !IsProposer(block.ProposerIndex, uint64(block.Slot), numValidators) {
		return nil, fmt.Errorf("%w: proposer %d for slot %d, expected %d",
			ErrInvalidProposer, block.ProposerIndex, block.Slot, uint64(block.Slot)%numValidators)
	}

	// Validate parent root against the header recorded in the pre-state
	expectedParent, err := s.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		return nil, fmt.Errorf("hash latest header: %w", err)
	}
	if block.ParentRoot != expectedParent {
		return nil, fmt.Errorf("%w: declared %s, expected %s",
			ErrInvalidParent, block.ParentRoot.Short(), types.Root(expectedParent).Short())
	}

	newState := Copy(s)

	// First block after genesis: anchor justified and finalized at genesis
	if s.LatestBlockHeader.Slot == 0 {
		newState.LatestJustified.Root = block.ParentRoot
		newState.LatestFinalized.Root = block.ParentRoot
	}

	// Append parent root to history
	newState.HistoricalBlockHashes = appendHistoricalRoot(newState.HistoricalBlockHashes, block.ParentRoot)

	// Track justified slot (genesis slot 0 is always justified)
	parentSlot := int(s.LatestBlockHeader.Slot)
	newState.JustifiedSlots = appendBitAt(newState.JustifiedSlots, parentSlot, s.LatestBlockHeader.Slot == 0)

	// Fill empty slots with zero hashes
	emptySlots := int(block.Slot - s.LatestBlockHeader.Slot - 1)
	for i := 0; i < emptySlots; i++ {
		newState.HistoricalBlockHashes = appendHistoricalRoot(newState.HistoricalBlockHashes, types.Root{})
		emptySlot := parentSlot + 1 + i
		newState.JustifiedSlots = appendBitAt(newState.JustifiedSlots, emptySlot, false)
	}

	// Create new block header (state_root left empty, filled by next ProcessSlots step)
	bodyRoot, err := block.Body.HashTreeRoot()
	if err != nil {
		return nil, fmt.Errorf("hash body: %w", err)
	}
	newState.LatestBlockHeader = types.BlockHeader{
		Slot:          block.Slot,
		ProposerIndex: block.ProposerIndex,
		ParentRoot:    block.ParentRoot,
		StateRoot:     types.Root{},
		BodyRoot:      bodyRoot,
	}

	return newState, nil
}

// ProcessBlock applies process_block_header then process_attestations.
func ProcessBlock(s *types.State, block *types.Block) (*types.State, error) {
	state, err := ProcessBlockHeader(s, block)
	if err != nil {
		return nil, err
	}
	return ProcessAttestations(state, block.Body.Attestations)
}

// ApplyBlock is the full state transition: advance the pre-state through
// empty slots, then apply the block. Identical inputs always yield an
// identical post-state or an identical error kind; there are no hidden
// inputs and the pre-state is never mutated.
func ApplyBlock(pre *types.State, block *types.Block) (*types.State, error) {
	if block.Slot <= pre.Slot {
		return nil, fmt.Errorf("%w: block slot %d not after state slot %d",
			ErrInvalidSlot, block.Slot, pre.Slot)
	}
	state, err := ProcessSlots(pre, block.Slot)
	if err != nil {
		return nil, err
	}
	return ProcessBlock(state, block)
}

// appendHistoricalRoot appends to the bounded history. Past the limit the
// oldest entry falls off silently, matching the list-limit semantics of the
// protocol constants.
func appendHistoricalRoot(roots []types.Root, root types.Root) []types.Root {
	if uint64(len(roots)) >= types.HistoricalRootsLimit {
		roots = roots[1:]
	}
	return append(roots, root)
}
