// Package votepool collects per-slot validator votes for block packing and
// the justification engine. Votes arrive unauthenticated in Devnet 0 — the
// pool performs no signature checks; that gap closes with a later devnet.
package votepool

import (
	"sync"

	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/types"
)

type voteKey struct {
	validatorID uint64
	slot        types.Slot
}

// Pool holds the latest vote per (validator, slot). Submit is safe under
// concurrent calls from many peers; last write wins per key.
type Pool struct {
	mu     sync.RWMutex
	votes  map[voteKey]*types.SignedVote
	order  []voteKey
	equivo map[uint64]uint64
}

// New creates an empty pool.
func New() *Pool {
	return &Pool{
		votes:  make(map[voteKey]*types.SignedVote),
		order:  make([]voteKey, 0),
		equivo: make(map[uint64]uint64),
	}
}

// Submit inserts or replaces the entry for (vote.ValidatorID, vote.Slot).
// Resubmitting an identical vote is a no-op. A different vote under the same
// key is an equivocation: recorded, not rejected, and the new vote wins.
func (p *Pool) Submit(sv *types.SignedVote) {
	key := voteKey{validatorID: sv.Data.ValidatorID, slot: sv.Data.Slot}

	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok := p.votes[key]
	if ok {
		if existing.Data == sv.Data {
			return
		}
		p.equivo[key.validatorID]++
		metrics.Equivocations.Inc()
		p.votes[key] = sv
		return
	}

	p.votes[key] = sv
	p.order = append(p.order, key)
}

// VotesForSlot returns the votes recorded for a slot in insertion order,
// for deterministic packing into a proposed block.
func (p *Pool) VotesForSlot(slot types.Slot) []*types.SignedVote {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*types.SignedVote
	for _, key := range p.order {
		if key.slot != slot {
			continue
		}
		if sv, ok := p.votes[key]; ok {
			out = append(out, sv)
		}
	}
	return out
}

// Prune drops entries with slot < beforeSlot to bound memory.
func (p *Pool) Prune(beforeSlot types.Slot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	kept := p.order[:0]
	for _, key := range p.order {
		if key.slot < beforeSlot {
			delete(p.votes, key)
			continue
		}
		kept = append(kept, key)
	}
	p.order = kept
}

// Len returns the number of pooled votes.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.votes)
}

// Equivocations returns how many conflicting replacements each validator has
// submitted. Observability only; equivocation carries no penalty here.
func (p *Pool) Equivocations() map[uint64]uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[uint64]uint64, len(p.equivo))
	for id, n := range p.equivo {
		out[id] = n
	}
	return out
}
