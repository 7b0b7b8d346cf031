package forkchoice

import (
	"fmt"

	"github.com/leanlabs/glean/types"
	"github.com/leanlabs/glean/validator"
)

// GetProposalHead advances the store to the given slot, folds pending votes
// in, and returns the head a proposer should build on.
func (s *Store) GetProposalHead(slot types.Slot) types.Root {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.advanceToSlotLocked(slot)
	return s.Head
}

// GetVoteTarget returns the checkpoint a validator should vote for: the safe
// target when one is known, walked back to the nearest block whose slot is
// justifiable after the latest finalized slot.
func (s *Store) GetVoteTarget() types.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.voteTargetLocked()
}

func (s *Store) voteTargetLocked() types.Checkpoint {
	root := s.SafeTarget
	if root.IsZero() {
		root = s.Head
	}
	for {
		block, ok := s.Storage.GetBlock(root)
		if !ok {
			return types.Checkpoint{Root: root}
		}
		if block.Slot.IsJustifiableAfter(s.LatestFinalized.Slot) {
			return types.Checkpoint{Root: root, Slot: block.Slot}
		}
		root = block.ParentRoot
	}
}

// ProduceBlock builds, applies, and stores a block for the given slot. Vote
// packing iterates to a fixed point: applying attestations can shift the
// justified checkpoint, which in turn changes which known votes are worth
// including.
func (s *Store) ProduceBlock(slot types.Slot, validatorIndex types.ValidatorIndex) (*types.Block, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.halted {
		return nil, ErrHalted
	}

	if err := validator.ValidateProposer(slot, validatorIndex, s.Config.NumValidators); err != nil {
		return nil, err
	}

	s.advanceToSlotLocked(slot)
	head := s.Head
	headState, ok := s.Storage.GetState(head)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownHeadState, head.Short())
	}

	blockExists := func(root types.Root) bool {
		_, ok := s.Storage.GetBlock(root)
		return ok
	}

	var (
		block        *types.Block
		postState    *types.State
		attestations []types.SignedVote
		err          error
	)
	for {
		justified := s.LatestJustified
		if postState != nil {
			justified = postState.LatestJustified
		}
		fresh := validator.CollectNewAttestations(s.LatestKnownVotes, blockExists, justified, attestations)
		if block != nil && len(fresh) == 0 {
			break
		}
		attestations = append(attestations, fresh...)
		block, postState, err = validator.BuildBlock(slot, validatorIndex, head, headState, attestations)
		if err != nil {
			return nil, err
		}
	}

	blockRoot, err := block.HashTreeRoot()
	if err != nil {
		return nil, fmt.Errorf("hash block: %w", err)
	}
	s.Storage.PutBlock(blockRoot, block)
	s.Storage.PutState(blockRoot, postState)

	if err := s.updateHeadLocked(); err != nil {
		return nil, err
	}
	return block, nil
}

// ProduceAttestationVote builds the vote a validator should cast for the slot.
func (s *Store) ProduceAttestationVote(slot types.Slot, validatorIndex types.ValidatorIndex) types.Vote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	head := types.Checkpoint{Root: s.Head}
	if headBlock, ok := s.Storage.GetBlock(s.Head); ok {
		head.Slot = headBlock.Slot
	}
	target := s.voteTargetLocked()

	return validator.BuildVote(slot, validatorIndex, head, target, s.LatestJustified)
}
