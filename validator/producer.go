// Package validator implements block and vote production. Functions are
// pure; the caller manages state and locking.
package validator

import (
	"fmt"
	"sort"

	"github.com/leanlabs/glean/consensus"
	"github.com/leanlabs/glean/types"
)

// ValidateProposer checks round-robin proposer assignment.
func ValidateProposer(slot types.Slot, validatorIndex types.ValidatorIndex, numValidators uint64) error {
	if !consensus.IsProposer(uint64(validatorIndex), uint64(slot), numValidators) {
		return fmt.Errorf("%w: validator %d is not the proposer for slot %d",
			consensus.ErrInvalidProposer, validatorIndex, slot)
	}
	return nil
}

// CollectNewAttestations gathers attestations from the latest known votes for
// block inclusion, skipping validators already represented in the existing set
// and votes whose head block is not locally known. Votes are collected in
// validator-index order so identical inputs always pack identical blocks.
func CollectNewAttestations(
	knownVotes map[types.ValidatorIndex]types.Vote,
	blockExists func(types.Root) bool,
	latestJustified types.Checkpoint,
	existing []types.SignedVote,
) []types.SignedVote {
	seen := make(map[uint64]bool, len(existing))
	for _, sv := range existing {
		seen[sv.Data.ValidatorID] = true
	}

	indices := make([]types.ValidatorIndex, 0, len(knownVotes))
	for validatorID := range knownVotes {
		indices = append(indices, validatorID)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	var collected []types.SignedVote
	for _, validatorID := range indices {
		checkpoint := knownVotes[validatorID].Head
		if checkpoint.Root.IsZero() {
			continue
		}
		if !blockExists(checkpoint.Root) {
			continue
		}
		if seen[uint64(validatorID)] {
			continue
		}
		collected = append(collected, types.SignedVote{
			Data: types.Vote{
				ValidatorID: uint64(validatorID),
				Slot:        checkpoint.Slot,
				Head:        checkpoint,
				Target:      checkpoint,
				Source:      latestJustified,
			},
			Signature: types.Root{},
		})
	}
	return collected
}

// BuildBlock assembles a block on top of the head state, applies the state
// transition, and fills in the resulting state root.
func BuildBlock(
	slot types.Slot,
	validatorIndex types.ValidatorIndex,
	parentRoot types.Root,
	headState *types.State,
	attestations []types.SignedVote,
) (*types.Block, *types.State, error) {
	preState, err := consensus.ProcessSlots(headState, slot)
	if err != nil {
		return nil, nil, fmt.Errorf("process slots: %w", err)
	}

	block := &types.Block{
		Slot:          slot,
		ProposerIndex: uint64(validatorIndex),
		ParentRoot:    parentRoot,
		StateRoot:     types.Root{},
		Body:          types.BlockBody{Attestations: attestations},
	}

	postState, err := consensus.ProcessBlock(preState, block)
	if err != nil {
		return nil, nil, fmt.Errorf("process block: %w", err)
	}

	stateRoot, err := postState.HashTreeRoot()
	if err != nil {
		return nil, nil, fmt.Errorf("hash state: %w", err)
	}
	block.StateRoot = stateRoot

	return block, postState, nil
}

// BuildVote creates an attestation vote for the given slot and validator.
func BuildVote(
	slot types.Slot,
	validatorIndex types.ValidatorIndex,
	head, target, source types.Checkpoint,
) types.Vote {
	return types.Vote{
		ValidatorID: uint64(validatorIndex),
		Slot:        slot,
		Head:        head,
		Target:      target,
		Source:      source,
	}
}
