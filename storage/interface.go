// Package storage defines the append-only block/state store used by the
// consensus core. (Block, State) pairs are keyed by block root; the genesis
// pair is the unique entry with no parent.
package storage

import "github.com/leanlabs/glean/types"

// Store is a storage interface for blocks and states.
type Store interface {
	GetBlock(root types.Root) (*types.Block, bool)
	PutBlock(root types.Root, block *types.Block)
	GetState(root types.Root) (*types.State, bool)
	PutState(root types.Root, state *types.State)
	GetAllBlocks() map[types.Root]*types.Block
	GetAllStates() map[types.Root]*types.State
}
