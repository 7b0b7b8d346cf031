// Package memory provides the in-process block/state store used at devnet
// scale. Entries are never overwritten or deleted; readers get stable views.
package memory

import (
	"sync"

	"github.com/leanlabs/glean/types"
)

// Store is a root-keyed in-memory block/state store.
type Store struct {
	mu     sync.RWMutex
	blocks map[types.Root]*types.Block
	states map[types.Root]*types.State
}

// New creates an empty store.
func New() *Store {
	return &Store{
		blocks: make(map[types.Root]*types.Block),
		states: make(map[types.Root]*types.State),
	}
}

// GetBlock returns the block stored under root.
func (s *Store) GetBlock(root types.Root) (*types.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[root]
	return b, ok
}

// PutBlock records a block under root. Existing entries are kept: the store
// is append-only and blocks are immutable once accepted.
func (s *Store) PutBlock(root types.Root, block *types.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blocks[root]; exists {
		return
	}
	s.blocks[root] = block
}

// GetState returns the post-state of the block stored under root.
func (s *Store) GetState(root types.Root) (*types.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[root]
	return st, ok
}

// PutState records a state under its block root.
func (s *Store) PutState(root types.Root, state *types.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.states[root]; exists {
		return
	}
	s.states[root] = state
}

// GetAllBlocks returns a snapshot of the block map.
func (s *Store) GetAllBlocks() map[types.Root]*types.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[types.Root]*types.Block, len(s.blocks))
	for root, b := range s.blocks {
		out[root] = b
	}
	return out
}

// GetAllStates returns a snapshot of the state map.
func (s *Store) GetAllStates() map[types.Root]*types.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[types.Root]*types.State, len(s.states))
	for root, st := range s.states {
		out[root] = st
	}
	return out
}
