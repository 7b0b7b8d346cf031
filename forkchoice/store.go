// Package forkchoice tracks the block DAG and latest votes, selecting the
// canonical head with LMD-GHOST and advancing justified/finalized
// checkpoints once per slot.
package forkchoice

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leanlabs/glean/clock"
	"github.com/leanlabs/glean/consensus"
	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/storage"
	"github.com/leanlabs/glean/types"
)

// ProcessSlotsFn advances a state through empty slots.
type ProcessSlotsFn func(*types.State, types.Slot) (*types.State, error)

// ProcessBlockFn applies a block to a slot-aligned state.
type ProcessBlockFn func(*types.State, *types.Block) (*types.State, error)

// Store tracks all information required for LMD-GHOST fork choice.
// All exported methods are safe for concurrent use; head and checkpoint
// updates are applied atomically under the store lock so readers never
// observe a torn view.
type Store struct {
	mu sync.RWMutex

	Clock  *clock.SlotClock
	Config types.Config

	Head            types.Root
	SafeTarget      types.Root
	LatestJustified types.Checkpoint
	LatestFinalized types.Checkpoint

	// Latest vote per validator, keyed by the slot the vote was cast in:
	// a newer vote supersedes even when it names a lower-slot head.
	Storage          storage.Store
	LatestKnownVotes map[types.ValidatorIndex]types.Vote
	LatestNewVotes   map[types.ValidatorIndex]types.Vote

	processSlots ProcessSlotsFn
	processBlock ProcessBlockFn

	halted bool
	log    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore initializes a fork choice store from an anchor (state, block)
// pair, normally genesis.
func NewStore(
	state *types.State,
	anchorBlock *types.Block,
	store storage.Store,
	processSlots ProcessSlotsFn,
	processBlock ProcessBlockFn,
	opts ...Option,
) (*Store, error) {
	stateRoot, err := state.HashTreeRoot()
	if err != nil {
		return nil, fmt.Errorf("hash state: %w", err)
	}
	if anchorBlock.StateRoot != stateRoot {
		return nil, errAnchorRootMismatch
	}

	anchorRoot, err := anchorBlock.HashTreeRoot()
	if err != nil {
		return nil, fmt.Errorf("hash anchor block: %w", err)
	}

	store.PutBlock(anchorRoot, anchorBlock)
	store.PutState(anchorRoot, state)

	s := &Store{
		Clock:            clock.New(state.Config.GenesisTime, anchorBlock.Slot),
		Config:           state.Config,
		Head:             anchorRoot,
		SafeTarget:       anchorRoot,
		LatestJustified:  state.LatestJustified,
		LatestFinalized:  state.LatestFinalized,
		Storage:          store,
		LatestKnownVotes: make(map[types.ValidatorIndex]types.Vote),
		LatestNewVotes:   make(map[types.ValidatorIndex]types.Vote),
		processSlots:     processSlots,
		processBlock:     processBlock,
		log:              slog.Default(),
	}
	// Anchor checkpoints reference the anchor block itself when unset.
	if s.LatestJustified.Root.IsZero() {
		s.LatestJustified = types.Checkpoint{Root: anchorRoot, Slot: anchorBlock.Slot}
	}
	if s.LatestFinalized.Root.IsZero() {
		s.LatestFinalized = types.Checkpoint{Root: anchorRoot, Slot: anchorBlock.Slot}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ProcessBlock validates a block against its parent state, stores the
// (block, state) pair, folds in-block attestations into the vote view, and
// recomputes the head.
func (s *Store) ProcessBlock(block *types.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.halted {
		return ErrHalted
	}

	blockRoot, err := block.HashTreeRoot()
	if err != nil {
		return fmt.Errorf("hash block: %w", err)
	}

	// Already known: nothing to do.
	if _, exists := s.Storage.GetBlock(blockRoot); exists {
		return nil
	}

	parentState, exists := s.Storage.GetState(block.ParentRoot)
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownParent, block.ParentRoot.Short())
	}

	newState, err := s.processSlots(parentState, block.Slot)
	if err != nil {
		metrics.BlocksRejected.WithLabelValues("slots").Inc()
		return fmt.Errorf("process slots: %w", err)
	}
	newState, err = s.processBlock(newState, block)
	if err != nil {
		metrics.BlocksRejected.WithLabelValues(rejectReason(err)).Inc()
		return fmt.Errorf("process block: %w", err)
	}

	// The proposer commits to the post-state; verify before accepting.
	if !block.StateRoot.IsZero() {
		computed, err := newState.HashTreeRoot()
		if err != nil {
			return fmt.Errorf("hash post-state: %w", err)
		}
		if computed != block.StateRoot {
			metrics.BlocksRejected.WithLabelValues("state_root").Inc()
			return errStateRootMismatch
		}
	}

	s.Storage.PutBlock(blockRoot, block)
	s.Storage.PutState(blockRoot, newState)
	metrics.BlocksProcessed.Inc()

	for i := range block.Body.Attestations {
		s.processAttestationLocked(&block.Body.Attestations[i], true)
	}

	return s.updateHeadLocked()
}

// updateHeadLocked recomputes checkpoints and the head, then verifies the
// finalized checkpoint still sits on the canonical chain. A violation is
// fatal: the store halts and refuses further mutation.
func (s *Store) updateHeadLocked() error {
	states := s.Storage.GetAllStates()
	if latest := GetLatestJustified(states); latest != nil && latest.Slot > s.LatestJustified.Slot {
		s.LatestJustified = *latest
	}

	blocks := s.Storage.GetAllBlocks()
	oldHead := s.Head
	s.Head = GetHead(blocks, s.LatestFinalized.Root, s.LatestKnownVotes, 0)
	if s.Head != oldHead {
		metrics.HeadChanges.Inc()
	}

	if state, exists := s.Storage.GetState(s.Head); exists {
		if state.LatestFinalized.Slot > s.LatestFinalized.Slot {
			s.LatestFinalized = state.LatestFinalized
		}
	}
	if headBlock, exists := s.Storage.GetBlock(s.Head); exists {
		metrics.HeadSlot.Set(float64(headBlock.Slot))
	}

	if !IsAncestor(blocks, s.LatestFinalized.Root, s.Head) {
		s.halted = true
		s.log.Error("finalized checkpoint not on canonical chain, halting",
			"finalized", s.LatestFinalized.Root.Short(),
			"head", s.Head.Short(),
		)
		return fmt.Errorf("%w: finalized %s unreachable from head %s",
			consensus.ErrConsistencyViolation, s.LatestFinalized.Root.Short(), s.Head.Short())
	}
	return nil
}

// AcceptNewVotes moves pending gossip votes into the known set and updates
// the head.
func (s *Store) AcceptNewVotes() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.halted {
		return ErrHalted
	}
	return s.acceptNewVotesLocked()
}

func (s *Store) acceptNewVotesLocked() error {
	for validatorID, vote := range s.LatestNewVotes {
		if known, ok := s.LatestKnownVotes[validatorID]; !ok || known.Slot < vote.Slot {
			s.LatestKnownVotes[validatorID] = vote
		}
	}
	s.LatestNewVotes = make(map[types.ValidatorIndex]types.Vote)
	return s.updateHeadLocked()
}

// UpdateSafeTarget recomputes the 2/3-backed safe target from pending votes.
func (s *Store) UpdateSafeTarget() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updateSafeTargetLocked()
}

func (s *Store) updateSafeTargetLocked() {
	minScore := ceilDiv(s.Config.NumValidators*2, 3)
	blocks := s.Storage.GetAllBlocks()
	s.SafeTarget = GetHead(blocks, s.LatestJustified.Root, s.LatestNewVotes, minScore)
}

// GetHead returns the current canonical head root.
func (s *Store) GetHead() types.Root {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Head
}

// Checkpoints returns the justified and finalized checkpoints atomically.
func (s *Store) Checkpoints() (justified, finalized types.Checkpoint) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LatestJustified, s.LatestFinalized
}

// Halted reports whether a consistency violation stopped the store.
func (s *Store) Halted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.halted
}

func ceilDiv(a, b uint64) uint64 {
	return (a + b - 1) / b
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, consensus.ErrInvalidSlot):
		return "slot"
	case errors.Is(err, consensus.ErrInvalidParent):
		return "parent"
	case errors.Is(err, consensus.ErrInvalidProposer):
		return "proposer"
	case errors.Is(err, consensus.ErrInvalidVote):
		return "vote"
	default:
		return "other"
	}
}
