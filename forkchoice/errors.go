package forkchoice

import "errors"

var (
	ErrUnknownParent      = errors.New("parent block not in store")
	ErrHalted             = errors.New("fork choice halted after consistency violation")
	errStateRootMismatch  = errors.New("block state root does not match computed post-state")
	errAnchorRootMismatch = errors.New("anchor block state root mismatch")
	errUnknownHeadState   = errors.New("head state not found")
)
