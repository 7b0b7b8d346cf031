// Package consensus implements the lean consensus state transition function.
package consensus

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/OffchainLabs/go-bitfield"

	"github.com/leanlabs/glean/types"
)

// GenerateValidators creates a deterministic placeholder registry.
// Real key material arrives with the signature scheme in a later devnet.
func GenerateValidators(n int) []types.Validator {
	validators := make([]types.Validator, n)
	for i := range validators {
		var seed [8]byte
		binary.LittleEndian.PutUint64(seed[:], uint64(i))
		validators[i].Pubkey = sha256.Sum256(append([]byte("glean validator "), seed[:]...))
	}
	return validators
}

// GenerateGenesis creates the genesis state and its matching block.
// The pair is the unique chain entry with no parent.
func GenerateGenesis(genesisTime uint64, validators []types.Validator) (*types.State, *types.Block) {
	emptyBody := types.BlockBody{Attestations: []types.SignedVote{}}
	bodyRoot, _ := emptyBody.HashTreeRoot()

	genesisHeader := types.BlockHeader{
		Slot:          0,
		ProposerIndex: 0,
		ParentRoot:    types.Root{},
		StateRoot:     types.Root{},
		BodyRoot:      bodyRoot,
	}

	state := &types.State{
		Config: types.Config{
			NumValidators: uint64(len(validators)),
			GenesisTime:   genesisTime,
		},
		Slot:                    0,
		LatestBlockHeader:       genesisHeader,
		LatestJustified:         types.Checkpoint{Root: types.Root{}, Slot: 0},
		LatestFinalized:         types.Checkpoint{Root: types.Root{}, Slot: 0},
		HistoricalBlockHashes:   []types.Root{},
		JustifiedSlots:          bitfield.NewBitlist(0),
		Validators:              append([]types.Validator{}, validators...),
		JustificationRoots:      []types.Root{},
		JustificationValidators: bitfield.NewBitlist(0),
	}

	stateRoot, _ := state.HashTreeRoot()
	block := &types.Block{
		Slot:          0,
		ProposerIndex: 0,
		ParentRoot:    types.Root{},
		StateRoot:     stateRoot,
		Body:          emptyBody,
	}

	return state, block
}

// IsProposer checks round-robin proposer assignment for a slot.
func IsProposer(validatorIndex, slot, numValidators uint64) bool {
	if numValidators == 0 {
		panic("numValidators must be > 0")
	}
	return slot%numValidators == validatorIndex
}
