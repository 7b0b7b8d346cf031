package types

import (
	"fmt"
	"math"
)

// Primitive Types

type Slot uint64
type ValidatorIndex uint64
type Root [32]byte

// ZeroHash is the all-zero root used as a signature placeholder in Devnet 0.
var ZeroHash = Root{}

func (r Root) IsZero() bool { return r == Root{} }

// Short returns a short hex representation of the root (first 4 bytes).
func (r Root) Short() string {
	return fmt.Sprintf("%x", r[:4])
}

// Compare compares two roots lexicographically.
// Returns 1 if r > other, -1 if r < other, 0 if equal.
func (r Root) Compare(other Root) int {
	for i := 0; i < 32; i++ {
		if r[i] > other[i] {
			return 1
		}
		if r[i] < other[i] {
			return -1
		}
	}
	return 0
}

// isqrt returns the integer square root of n (floor(sqrt(n))).
func isqrt(n uint64) uint64 {
	if n == 0 {
		return 0
	}
	x := uint64(math.Sqrt(float64(n)))
	// Correct for float64 imprecision near large values.
	if (x+1)*(x+1) <= n {
		return x + 1
	}
	if x*x > n {
		return x - 1
	}
	return x
}

// IsJustifiableAfter checks if this slot is a valid candidate for justification
// after the given finalized slot. Per 3SF-mini:
// - delta <= 5 (immediate)
// - delta is a perfect square (x^2)
// - delta is a pronic number (x^2 + x)
func (s Slot) IsJustifiableAfter(finalizedSlot Slot) bool {
	if s < finalizedSlot {
		return false
	}
	delta := uint64(s - finalizedSlot)
	if delta <= 5 {
		return true
	}
	sq := isqrt(delta)
	if sq*sq == delta {
		return true
	}
	return sq*(sq+1) == delta
}

const (
	SecondsPerSlot             uint64 = 4
	IntervalsPerSlot           uint64 = 4
	SecondsPerInterval         uint64 = SecondsPerSlot / IntervalsPerSlot
	JustificationLookbackSlots uint64 = 3

	// HistoricalRootsLimit bounds per-slot history kept in the state.
	HistoricalRootsLimit uint64 = 1 << 18
	// ValidatorRegistryLimit bounds the validator registry.
	ValidatorRegistryLimit uint64 = 1 << 12
)
