package forkchoice

import (
	"testing"

	"github.com/leanlabs/glean/types"
)

// makeRoot creates a deterministic root from a byte value.
func makeRoot(b byte) types.Root {
	var r types.Root
	r[0] = b
	return r
}

// makeBlocks builds a block map with parent links. Each entry is
// {root byte, slot, parent root byte}. A parent of 0 means zero root.
func makeBlocks(entries [][3]byte) map[types.Root]*types.Block {
	blocks := make(map[types.Root]*types.Block)
	for _, e := range entries {
		root := makeRoot(e[0])
		parent := types.Root{}
		if e[2] != 0 {
			parent = makeRoot(e[2])
		}
		blocks[root] = &types.Block{
			Slot:       types.Slot(e[1]),
			ParentRoot: parent,
		}
	}
	return blocks
}

func makeVotes(heads ...types.Checkpoint) map[types.ValidatorIndex]types.Vote {
	votes := make(map[types.ValidatorIndex]types.Vote)
	for i, cp := range heads {
		votes[types.ValidatorIndex(i)] = types.Vote{
			ValidatorID: uint64(i),
			Slot:        cp.Slot,
			Head:        cp,
			Target:      cp,
		}
	}
	return votes
}

func TestGetHeadLinearChain(t *testing.T) {
	// A(slot 0) -> B(slot 1) -> C(slot 2), one vote for C.
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 2, 2},
	})
	votes := makeVotes(types.Checkpoint{Root: makeRoot(3), Slot: 2})

	head := GetHead(blocks, makeRoot(1), votes, 0)
	if head != makeRoot(3) {
		t.Errorf("head = %x, want root 3 (tip of chain)", head[:4])
	}
}

func TestGetHeadForkMajorityWins(t *testing.T) {
	// A -> B, A -> C. Two votes for B, one for C.
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 1, 1},
	})
	votes := makeVotes(
		types.Checkpoint{Root: makeRoot(2), Slot: 1},
		types.Checkpoint{Root: makeRoot(2), Slot: 1},
		types.Checkpoint{Root: makeRoot(3), Slot: 1},
	)

	head := GetHead(blocks, makeRoot(1), votes, 0)
	if head != makeRoot(2) {
		t.Errorf("head = %x, want root 2 (majority votes)", head[:4])
	}
}

func TestGetHeadVoteCountsForAncestors(t *testing.T) {
	// A -> B -> D and A -> C. Votes for D must also weigh B at the fork.
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 1, 1},
		{4, 2, 2},
	})
	votes := makeVotes(
		types.Checkpoint{Root: makeRoot(4), Slot: 2},
		types.Checkpoint{Root: makeRoot(4), Slot: 2},
		types.Checkpoint{Root: makeRoot(3), Slot: 1},
	)

	head := GetHead(blocks, makeRoot(1), votes, 0)
	if head != makeRoot(4) {
		t.Errorf("head = %x, want root 4 (descendant votes weigh the fork)", head[:4])
	}
}

func TestGetHeadTiebreakSmallerRoot(t *testing.T) {
	// A -> B, A -> C, one vote each. Root 2 < root 3.
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 1, 1},
	})
	votes := makeVotes(
		types.Checkpoint{Root: makeRoot(2), Slot: 1},
		types.Checkpoint{Root: makeRoot(3), Slot: 1},
	)

	head := GetHead(blocks, makeRoot(1), votes, 0)
	if head != makeRoot(2) {
		t.Errorf("head = %x, want root 2 (smaller root breaks the tie)", head[:4])
	}
}

func TestGetHeadMinScore(t *testing.T) {
	// A -> B -> C, one vote for C, minScore 2: nothing qualifies past A.
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 2, 2},
	})
	votes := makeVotes(types.Checkpoint{Root: makeRoot(3), Slot: 2})

	head := GetHead(blocks, makeRoot(1), votes, 2)
	if head != makeRoot(1) {
		t.Errorf("head = %x, want root 1 (no child meets minScore)", head[:4])
	}
}

func TestGetHeadNoVotes(t *testing.T) {
	// With minScore 0 the walk still descends to a leaf.
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 2, 2},
	})

	head := GetHead(blocks, makeRoot(1), nil, 0)
	if head != makeRoot(3) {
		t.Errorf("head = %x, want root 3 (walk to leaf)", head[:4])
	}
}

func TestGetHeadSiblingsSixVersusFour(t *testing.T) {
	// Competing siblings at slot 5: 6 of 10 validators vote for one, 4 for
	// the other. The 6-vote branch's descendant is the head.
	blocks := makeBlocks([][3]byte{
		{1, 4, 0},  // common parent
		{2, 5, 1},  // sibling, 6 votes
		{3, 5, 1},  // sibling, 4 votes
		{4, 6, 2},  // descendant of the 6-vote sibling
	})

	votes := make(map[types.ValidatorIndex]types.Vote)
	for i := 0; i < 6; i++ {
		votes[types.ValidatorIndex(i)] = types.Vote{Head: types.Checkpoint{Root: makeRoot(2), Slot: 5}, Slot: 5}
	}
	for i := 6; i < 10; i++ {
		votes[types.ValidatorIndex(i)] = types.Vote{Head: types.Checkpoint{Root: makeRoot(3), Slot: 5}, Slot: 5}
	}

	head := GetHead(blocks, makeRoot(1), votes, 0)
	if head != makeRoot(4) {
		t.Errorf("head = %x, want root 4 (descendant of 6-vote sibling)", head[:4])
	}
}

func TestGetHeadRecomputationDeterminism(t *testing.T) {
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 1, 1},
		{4, 2, 2},
		{5, 2, 3},
	})
	votes := makeVotes(
		types.Checkpoint{Root: makeRoot(4), Slot: 2},
		types.Checkpoint{Root: makeRoot(5), Slot: 2},
		types.Checkpoint{Root: makeRoot(5), Slot: 2},
	)

	first := GetHead(blocks, makeRoot(1), votes, 0)
	for i := 0; i < 20; i++ {
		if got := GetHead(blocks, makeRoot(1), votes, 0); got != first {
			t.Fatalf("recomputation %d: head = %x, want %x", i, got[:4], first[:4])
		}
	}
}

func TestGetLatestJustifiedFindsHighest(t *testing.T) {
	states := map[types.Root]*types.State{
		makeRoot(1): {LatestJustified: types.Checkpoint{Root: makeRoot(10), Slot: 2}},
		makeRoot(2): {LatestJustified: types.Checkpoint{Root: makeRoot(20), Slot: 5}},
		makeRoot(3): {LatestJustified: types.Checkpoint{Root: makeRoot(30), Slot: 3}},
	}

	latest := GetLatestJustified(states)
	if latest == nil {
		t.Fatal("expected non-nil checkpoint")
	}
	if latest.Slot != 5 {
		t.Errorf("latest justified slot = %d, want 5", latest.Slot)
	}
	if latest.Root != makeRoot(20) {
		t.Errorf("latest justified root = %x, want root 20", latest.Root[:4])
	}
}

func TestGetLatestJustifiedEmptyStates(t *testing.T) {
	if latest := GetLatestJustified(nil); latest != nil {
		t.Error("expected nil for nil states map")
	}
	if latest := GetLatestJustified(map[types.Root]*types.State{}); latest != nil {
		t.Error("expected nil for empty states map")
	}
}

func TestIsAncestor(t *testing.T) {
	blocks := makeBlocks([][3]byte{
		{1, 0, 0},
		{2, 1, 1},
		{3, 2, 2},
		{4, 1, 1},
	})

	if !IsAncestor(blocks, makeRoot(1), makeRoot(3)) {
		t.Error("root 1 should be an ancestor of root 3")
	}
	if !IsAncestor(blocks, makeRoot(3), makeRoot(3)) {
		t.Error("a block is its own ancestor")
	}
	if IsAncestor(blocks, makeRoot(2), makeRoot(4)) {
		t.Error("root 2 is on a different branch than root 4")
	}
}
