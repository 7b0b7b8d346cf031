package forkchoice

import (
	"testing"

	"github.com/leanlabs/glean/types"
)

func signedVotesFor(target, source types.Checkpoint, slot types.Slot, validators ...uint64) []*types.SignedVote {
	votes := make([]*types.SignedVote, 0, len(validators))
	for _, id := range validators {
		votes = append(votes, &types.SignedVote{Data: types.Vote{
			ValidatorID: id,
			Slot:        slot,
			Head:        target,
			Target:      target,
			Source:      source,
		}})
	}
	return votes
}

func TestProcessSlotVotesSupermajorityJustifies(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 10)
	roots := extendChain(t, fc, 1)
	target := types.Checkpoint{Root: roots[0], Slot: 1}
	genesis := types.Checkpoint{Root: genesisRoot, Slot: 0}

	// 7 of 10 validators link genesis -> slot 1.
	votes := signedVotesFor(target, genesis, 1, 0, 1, 2, 3, 4, 5, 6)
	if err := fc.ProcessSlotVotes(1, votes); err != nil {
		t.Fatalf("ProcessSlotVotes: %v", err)
	}

	justified, finalized := fc.Checkpoints()
	if justified != target {
		t.Errorf("justified = %+v, want slot-1 checkpoint", justified)
	}
	if finalized != genesis {
		t.Errorf("finalized = %+v, want genesis (no prior link to close)", finalized)
	}
}

func TestProcessSlotVotesBelowThresholdNoChange(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 10)
	roots := extendChain(t, fc, 1)
	target := types.Checkpoint{Root: roots[0], Slot: 1}
	genesis := types.Checkpoint{Root: genesisRoot, Slot: 0}

	// 6 of 10 is not strictly greater than two thirds.
	votes := signedVotesFor(target, genesis, 1, 0, 1, 2, 3, 4, 5)
	if err := fc.ProcessSlotVotes(1, votes); err != nil {
		t.Fatalf("ProcessSlotVotes: %v", err)
	}

	justified, _ := fc.Checkpoints()
	if justified != genesis {
		t.Errorf("justified = %+v, want genesis unchanged", justified)
	}
}

func TestProcessSlotVotesConsecutiveLinkFinalizes(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 10)
	roots := extendChain(t, fc, 2)
	cp1 := types.Checkpoint{Root: roots[0], Slot: 1}
	cp2 := types.Checkpoint{Root: roots[1], Slot: 2}
	genesis := types.Checkpoint{Root: genesisRoot, Slot: 0}

	votes := signedVotesFor(cp1, genesis, 1, 0, 1, 2, 3, 4, 5, 6)
	if err := fc.ProcessSlotVotes(1, votes); err != nil {
		t.Fatalf("slot 1 votes: %v", err)
	}
	votes = signedVotesFor(cp2, cp1, 2, 0, 1, 2, 3, 4, 5, 6, 7)
	if err := fc.ProcessSlotVotes(2, votes); err != nil {
		t.Fatalf("slot 2 votes: %v", err)
	}

	justified, finalized := fc.Checkpoints()
	if justified != cp2 {
		t.Errorf("justified = %+v, want slot-2 checkpoint", justified)
	}
	if finalized != cp1 {
		t.Errorf("finalized = %+v, want slot-1 checkpoint (consecutive link)", finalized)
	}
}

func TestProcessSlotVotesIgnoresStaleSource(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 10)
	roots := extendChain(t, fc, 2)
	cp1 := types.Checkpoint{Root: roots[0], Slot: 1}
	cp2 := types.Checkpoint{Root: roots[1], Slot: 2}
	genesis := types.Checkpoint{Root: genesisRoot, Slot: 0}

	votes := signedVotesFor(cp1, genesis, 1, 0, 1, 2, 3, 4, 5, 6)
	if err := fc.ProcessSlotVotes(1, votes); err != nil {
		t.Fatalf("slot 1 votes: %v", err)
	}

	// Votes still sourcing genesis no longer match the justified checkpoint.
	votes = signedVotesFor(cp2, genesis, 2, 0, 1, 2, 3, 4, 5, 6, 7)
	if err := fc.ProcessSlotVotes(2, votes); err != nil {
		t.Fatalf("slot 2 votes: %v", err)
	}

	justified, _ := fc.Checkpoints()
	if justified != cp1 {
		t.Errorf("justified = %+v, want slot-1 checkpoint unchanged", justified)
	}
}

func TestProcessSlotVotesMonotonic(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 10)
	roots := extendChain(t, fc, 2)
	cp1 := types.Checkpoint{Root: roots[0], Slot: 1}
	cp2 := types.Checkpoint{Root: roots[1], Slot: 2}
	genesis := types.Checkpoint{Root: genesisRoot, Slot: 0}

	for _, step := range []struct {
		target, source types.Checkpoint
		slot           types.Slot
	}{
		{cp1, genesis, 1},
		{cp2, cp1, 2},
	} {
		votes := signedVotesFor(step.target, step.source, step.slot, 0, 1, 2, 3, 4, 5, 6)
		if err := fc.ProcessSlotVotes(step.slot, votes); err != nil {
			t.Fatalf("slot %d votes: %v", step.slot, err)
		}
	}
	justifiedBefore, finalizedBefore := fc.Checkpoints()

	// Replaying old votes must not move either checkpoint backward.
	votes := signedVotesFor(cp1, genesis, 1, 0, 1, 2, 3, 4, 5, 6)
	if err := fc.ProcessSlotVotes(1, votes); err != nil {
		t.Fatalf("replayed votes: %v", err)
	}

	justified, finalized := fc.Checkpoints()
	if justified != justifiedBefore || finalized != finalizedBefore {
		t.Error("replaying old votes moved a checkpoint backward")
	}
}

func TestProcessSlotVotesDistinctVotersOnly(t *testing.T) {
	fc, genesisRoot := newTestStore(t, 10)
	roots := extendChain(t, fc, 1)
	target := types.Checkpoint{Root: roots[0], Slot: 1}
	genesis := types.Checkpoint{Root: genesisRoot, Slot: 0}

	// Validator 0 votes seven times; that is one voter, not seven.
	votes := signedVotesFor(target, genesis, 1, 0, 0, 0, 0, 0, 0, 0)
	if err := fc.ProcessSlotVotes(1, votes); err != nil {
		t.Fatalf("ProcessSlotVotes: %v", err)
	}

	justified, _ := fc.Checkpoints()
	if justified != genesis {
		t.Errorf("justified = %+v, want genesis unchanged", justified)
	}
}
