package forkchoice

import (
	"time"

	"github.com/leanlabs/glean/observability/metrics"
	"github.com/leanlabs/glean/types"
)

// ProcessAttestation processes an attestation received over gossip. Invalid
// attestations are counted and dropped; they never fail block processing.
func (s *Store) ProcessAttestation(sv *types.SignedVote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.halted {
		return
	}
	s.processAttestationLocked(sv, false)
}

func (s *Store) processAttestationLocked(sv *types.SignedVote, isFromBlock bool) {
	start := time.Now()
	vote := sv.Data
	validatorID := types.ValidatorIndex(vote.ValidatorID)

	source := "gossip"
	if isFromBlock {
		source = "block"
	}

	if !s.validateAttestationLocked(sv) {
		metrics.AttestationsInvalid.Inc()
		return
	}

	if isFromBlock {
		// On-chain: fold into known votes if cast later. Ordering is by the
		// vote's own slot so a newer vote naming a lower-slot head, as after
		// a reorg, still supersedes.
		existing, ok := s.LatestKnownVotes[validatorID]
		if !ok || existing.Slot < vote.Slot {
			s.LatestKnownVotes[validatorID] = vote
		}
		// Drop a pending gossip vote this one supersedes.
		pending, ok := s.LatestNewVotes[validatorID]
		if ok && pending.Slot <= vote.Slot {
			delete(s.LatestNewVotes, validatorID)
		}
	} else {
		// Gossip votes for future slots are dropped, not queued.
		if vote.Slot > s.Clock.CurrentSlot() {
			return
		}
		existing, ok := s.LatestNewVotes[validatorID]
		if !ok || existing.Slot < vote.Slot {
			s.LatestNewVotes[validatorID] = vote
		}
	}

	metrics.AttestationsValid.WithLabelValues(source).Inc()
	metrics.AttestationValidationTime.Observe(time.Since(start).Seconds())
}

// validateAttestationLocked performs devnet 0 attestation checks: referenced
// blocks must be known and checkpoint slots must match the blocks they name.
func (s *Store) validateAttestationLocked(sv *types.SignedVote) bool {
	vote := sv.Data

	if vote.ValidatorID >= s.Config.NumValidators {
		return false
	}

	sourceBlock, ok := s.Storage.GetBlock(vote.Source.Root)
	if !ok {
		return false
	}
	targetBlock, ok := s.Storage.GetBlock(vote.Target.Root)
	if !ok {
		return false
	}
	headBlock, ok := s.Storage.GetBlock(vote.Head.Root)
	if !ok {
		return false
	}

	if sourceBlock.Slot != vote.Source.Slot {
		return false
	}
	if targetBlock.Slot != vote.Target.Slot {
		return false
	}
	if headBlock.Slot != vote.Head.Slot {
		return false
	}
	if vote.Source.Slot > vote.Target.Slot {
		return false
	}

	// Allow one slot of clock skew.
	if vote.Slot > s.Clock.CurrentSlot()+1 {
		return false
	}

	return true
}
