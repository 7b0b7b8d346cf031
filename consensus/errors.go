package consensus

import "errors"

// Block validity failures. Each rejected block maps to exactly one of these;
// all are recoverable — the block is dropped and the chain continues.
var (
	ErrInvalidSlot     = errors.New("block slot does not advance the chain")
	ErrInvalidParent   = errors.New("block parent root does not match latest header")
	ErrInvalidProposer = errors.New("block proposer is not assigned to this slot")
	ErrInvalidVote     = errors.New("vote references unknown or inconsistent checkpoints")
)

// ErrConsistencyViolation indicates internal state that can only arise from a
// protocol bug or an adversarial supermajority. It is fatal: local consensus
// participation must halt pending operator intervention.
var ErrConsistencyViolation = errors.New("consensus consistency violation")
