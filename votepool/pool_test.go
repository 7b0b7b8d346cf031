package votepool

import (
	"sync"
	"testing"

	"github.com/leanlabs/glean/types"
)

func makeVote(validatorID uint64, slot types.Slot, head byte) *types.SignedVote {
	cp := types.Checkpoint{Root: types.Root{head}, Slot: slot}
	return &types.SignedVote{
		Data: types.Vote{
			ValidatorID: validatorID,
			Slot:        slot,
			Head:        cp,
			Target:      cp,
			Source:      types.Checkpoint{},
		},
		Signature: types.ZeroHash,
	}
}

func TestSubmit_InsertionOrderPreserved(t *testing.T) {
	p := New()
	p.Submit(makeVote(3, 1, 0xa))
	p.Submit(makeVote(1, 1, 0xb))
	p.Submit(makeVote(2, 1, 0xc))

	votes := p.VotesForSlot(1)
	if len(votes) != 3 {
		t.Fatalf("votes = %d, want 3", len(votes))
	}
	wantOrder := []uint64{3, 1, 2}
	for i, sv := range votes {
		if sv.Data.ValidatorID != wantOrder[i] {
			t.Errorf("position %d: validator %d, want %d", i, sv.Data.ValidatorID, wantOrder[i])
		}
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	p := New()
	v := makeVote(1, 1, 0xa)
	p.Submit(v)
	p.Submit(v)

	if p.Len() != 1 {
		t.Errorf("pool size = %d, want 1", p.Len())
	}
	if len(p.Equivocations()) != 0 {
		t.Error("identical resubmission is not an equivocation")
	}
}

func TestSubmit_LastWriteWinsAndRecordsEquivocation(t *testing.T) {
	p := New()
	p.Submit(makeVote(1, 1, 0xa))
	p.Submit(makeVote(1, 1, 0xb)) // same key, different head

	votes := p.VotesForSlot(1)
	if len(votes) != 1 {
		t.Fatalf("votes = %d, want 1", len(votes))
	}
	if votes[0].Data.Head.Root != (types.Root{0xb}) {
		t.Error("later vote should replace the earlier one")
	}
	if p.Equivocations()[1] != 1 {
		t.Errorf("equivocations = %d, want 1", p.Equivocations()[1])
	}
}

func TestVotesForSlot_FiltersBySlot(t *testing.T) {
	p := New()
	p.Submit(makeVote(1, 1, 0xa))
	p.Submit(makeVote(1, 2, 0xb))
	p.Submit(makeVote(2, 2, 0xc))

	if got := len(p.VotesForSlot(1)); got != 1 {
		t.Errorf("slot 1 votes = %d, want 1", got)
	}
	if got := len(p.VotesForSlot(2)); got != 2 {
		t.Errorf("slot 2 votes = %d, want 2", got)
	}
	if got := len(p.VotesForSlot(3)); got != 0 {
		t.Errorf("slot 3 votes = %d, want 0", got)
	}
}

func TestPrune_DropsOldSlots(t *testing.T) {
	p := New()
	p.Submit(makeVote(1, 1, 0xa))
	p.Submit(makeVote(1, 2, 0xb))
	p.Submit(makeVote(1, 3, 0xc))

	p.Prune(3)

	if p.Len() != 1 {
		t.Errorf("pool size = %d, want 1 after prune", p.Len())
	}
	if got := len(p.VotesForSlot(3)); got != 1 {
		t.Errorf("slot 3 votes = %d, want 1", got)
	}
}

func TestSubmit_ConcurrentPeers(t *testing.T) {
	p := New()
	var wg sync.WaitGroup
	for v := uint64(0); v < 16; v++ {
		wg.Add(1)
		go func(id uint64) {
			defer wg.Done()
			for s := types.Slot(1); s <= 8; s++ {
				p.Submit(makeVote(id, s, byte(id)))
			}
		}(v)
	}
	wg.Wait()

	if p.Len() != 16*8 {
		t.Errorf("pool size = %d, want %d", p.Len(), 16*8)
	}
	for s := types.Slot(1); s <= 8; s++ {
		if got := len(p.VotesForSlot(s)); got != 16 {
			t.Errorf("slot %d votes = %d, want 16", s, got)
		}
	}
}
