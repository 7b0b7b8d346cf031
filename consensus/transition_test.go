package consensus

import (
	"errors"
	"testing"

	"github.com/leanlabs/glean/types"
)

// setupGenesis creates a 10-validator genesis state and block.
func setupGenesis(t *testing.T) (*types.State, *types.Block) {
	t.Helper()
	state, block := GenerateGenesis(1000000000, GenerateValidators(10))
	return state, block
}

// buildBlock creates a valid block at the given slot on top of the state,
// applying the transition to fill the state root.
func buildBlock(t *testing.T, pre *types.State, slot types.Slot, attestations []types.SignedVote) (*types.Block, *types.State) {
	t.Helper()
	advanced, err := ProcessSlots(pre, slot)
	if err != nil {
		t.Fatalf("process slots: %v", err)
	}
	parentRoot, err := advanced.LatestBlockHeader.HashTreeRoot()
	if err != nil {
		t.Fatalf("hash header: %v", err)
	}
	block := &types.Block{
		Slot:          slot,
		ProposerIndex: uint64(slot) % uint64(len(pre.Validators)),
		ParentRoot:    parentRoot,
		StateRoot:     types.Root{},
		Body:          types.BlockBody{Attestations: attestations},
	}
	post, err := ProcessBlock(advanced, block)
	if err != nil {
		t.Fatalf("process block: %v", err)
	}
	stateRoot, err := post.HashTreeRoot()
	if err != nil {
		t.Fatalf("hash state: %v", err)
	}
	block.StateRoot = stateRoot
	return block, post
}

func TestProcessSlots_FillsStateRoot(t *testing.T) {
	state, _ := setupGenesis(t)

	if !state.LatestBlockHeader.StateRoot.IsZero() {
		t.Fatal("expected zero state root in genesis header")
	}

	advanced, err := ProcessSlots(state, 1)
	if err != nil {
		t.Fatalf("process slots: %v", err)
	}
	if advanced.LatestBlockHeader.StateRoot.IsZero() {
		t.Error("state root should be filled after ProcessSlots")
	}
	if advanced.Slot != 1 {
		t.Errorf("slot = %d, want 1", advanced.Slot)
	}
}

func TestProcessSlots_ErrorIfNotFuture(t *testing.T) {
	state, _ := setupGenesis(t)

	_, err := ProcessSlots(state, 0)
	if !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("err = %v, want ErrInvalidSlot", err)
	}
}

func TestProcessSlots_DoesNotMutateInput(t *testing.T) {
	state, _ := setupGenesis(t)
	before, _ := state.HashTreeRoot()

	if _, err := ProcessSlots(state, 3); err != nil {
		t.Fatalf("process slots: %v", err)
	}

	after, _ := state.HashTreeRoot()
	if before != after {
		t.Error("ProcessSlots mutated its input state")
	}
}

func TestProcessBlock_ValidFirstBlock(t *testing.T) {
	state, _ := setupGenesis(t)

	block, post := buildBlock(t, state, 1, nil)

	if post.Slot != 1 {
		t.Errorf("post slot = %d, want 1", post.Slot)
	}
	if post.LatestBlockHeader.Slot != block.Slot {
		t.Errorf("header slot = %d, want %d", post.LatestBlockHeader.Slot, block.Slot)
	}
	if !post.LatestBlockHeader.StateRoot.IsZero() {
		t.Error("header state root should be zero until next ProcessSlots")
	}
	// First block anchors genesis as justified and finalized.
	if post.LatestJustified.Root != block.ParentRoot {
		t.Error("latest justified root should anchor at genesis")
	}
	if post.LatestFinalized.Root != block.ParentRoot {
		t.Error("latest finalized root should anchor at genesis")
	}
	if len(post.HistoricalBlockHashes) != 1 {
		t.Errorf("historical hashes = %d, want 1", len(post.HistoricalBlockHashes))
	}
}

func TestProcessBlock_InvalidParent(t *testing.T) {
	state, _ := setupGenesis(t)
	advanced, err := ProcessSlots(state, 3)
	if err != nil {
		t.Fatalf("process slots: %v", err)
	}

	block := &types.Block{
		Slot:          3,
		ProposerIndex: 3,
		ParentRoot:    types.Root{0xde, 0xad},
		Body:          types.BlockBody{},
	}

	_, err = ProcessBlock(advanced, block)
	if !errors.Is(err, ErrInvalidParent) {
		t.Errorf("err = %v, want ErrInvalidParent", err)
	}
}

func TestProcessBlock_InvalidProposer(t *testing.T) {
	state, _ := setupGenesis(t)
	advanced, err := ProcessSlots(state, 1)
	if err != nil {
		t.Fatalf("process slots: %v", err)
	}
	parentRoot, _ := advanced.LatestBlockHeader.HashTreeRoot()

	block := &types.Block{
		Slot:          1,
		ProposerIndex: 2, // slot 1 % 10 = 1
		ParentRoot:    parentRoot,
		Body:          types.BlockBody{},
	}

	_, err = ProcessBlock(advanced, block)
	if !errors.Is(err, ErrInvalidProposer) {
		t.Errorf("err = %v, want ErrInvalidProposer", err)
	}
}

func TestProcessBlock_ProposerOutsideRegistry(t *testing.T) {
	state, _ := setupGenesis(t)
	advanced, _ := ProcessSlots(state, 1)
	parentRoot, _ := advanced.LatestBlockHeader.HashTreeRoot()

	block := &types.Block{
		Slot:          1,
		ProposerIndex: 100,
		ParentRoot:    parentRoot,
		Body:          types.BlockBody{},
	}

	_, err := ProcessBlock(advanced, block)
	if !errors.Is(err, ErrInvalidProposer) {
		t.Errorf("err = %v, want ErrInvalidProposer", err)
	}
}

func TestApplyBlock_SlotMustAdvance(t *testing.T) {
	state, _ := setupGenesis(t)

	block := &types.Block{Slot: 0, Body: types.BlockBody{}}
	_, err := ApplyBlock(state, block)
	if !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("err = %v, want ErrInvalidSlot", err)
	}
}

func TestApplyBlock_Deterministic(t *testing.T) {
	state, _ := setupGenesis(t)
	block, _ := buildBlock(t, state, 1, nil)

	post1, err := ApplyBlock(state, block)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	post2, err := ApplyBlock(state, block)
	if err != nil {
		t.Fatalf("re-apply: %v", err)
	}

	b1, err := post1.MarshalSSZ()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	b2, err := post2.MarshalSSZ()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b1) != string(b2) {
		t.Error("repeated ApplyBlock produced different post-states")
	}
}

func TestApplyBlock_SkippedSlotsFillHistory(t *testing.T) {
	state, _ := setupGenesis(t)
	block, post := buildBlock(t, state, 4, nil)

	_ = block
	// Parent root at slot 0, then zero hashes for skipped slots 1-3.
	if len(post.HistoricalBlockHashes) != 4 {
		t.Fatalf("historical hashes = %d, want 4", len(post.HistoricalBlockHashes))
	}
	for i := 1; i < 4; i++ {
		if !post.HistoricalBlockHashes[i].IsZero() {
			t.Errorf("skipped slot %d should record zero hash", i)
		}
	}
}

func TestHeaderHashMatchesBlockHash(t *testing.T) {
	// The header is a reduced projection of the block: with BodyRoot =
	// HTR(body), the two must hash identically. Chain linking depends on it.
	state, _ := setupGenesis(t)
	block, post := buildBlock(t, state, 1, nil)

	blockRoot, err := block.HashTreeRoot()
	if err != nil {
		t.Fatalf("hash block: %v", err)
	}

	// The next ProcessSlots fills the header state root with the same value
	// the proposer committed to the block.
	next, err := ProcessSlots(post, 2)
	if err != nil {
		t.Fatalf("process slots: %v", err)
	}
	header := next.LatestBlockHeader
	if header.StateRoot != block.StateRoot {
		t.Fatal("cached header state root differs from block state root")
	}
	headerRoot, err := header.HashTreeRoot()
	if err != nil {
		t.Fatalf("hash header: %v", err)
	}

	if blockRoot != headerRoot {
		t.Error("block root and header root diverge")
	}
}

func TestGenerateGenesis_BlockStateRoot(t *testing.T) {
	state, block := setupGenesis(t)

	stateRoot, err := state.HashTreeRoot()
	if err != nil {
		t.Fatalf("hash state: %v", err)
	}
	if block.StateRoot != stateRoot {
		t.Error("genesis block state root does not match state hash")
	}
	if !block.ParentRoot.IsZero() {
		t.Error("genesis block must have no parent")
	}
}

func TestGenerateGenesis_SSZRoundtrip(t *testing.T) {
	state, _ := setupGenesis(t)

	data, err := state.MarshalSSZ()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded types.State
	if err := decoded.UnmarshalSSZ(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	originalRoot, _ := state.HashTreeRoot()
	decodedRoot, _ := decoded.HashTreeRoot()
	if originalRoot != decodedRoot {
		t.Error("SSZ roundtrip hash mismatch")
	}
}

func TestGenerateValidators_Deterministic(t *testing.T) {
	a := GenerateValidators(4)
	b := GenerateValidators(4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("validator %d differs between runs", i)
		}
	}
	if a[0] == a[1] {
		t.Error("distinct indices should produce distinct placeholder keys")
	}
}
