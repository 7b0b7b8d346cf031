// copy.go contains deep-copy and bitlist helper utilities used by transition steps.
package consensus

import (
	"github.com/OffchainLabs/go-bitfield"

	"github.com/leanlabs/glean/types"
)

// Copy creates a deep copy of the state.
func Copy(s *types.State) *types.State {
	cp := *s
	cp.HistoricalBlockHashes = append([]types.Root{}, s.HistoricalBlockHashes...)
	cp.JustifiedSlots = append([]byte{}, s.JustifiedSlots...)
	cp.Validators = append([]types.Validator{}, s.Validators...)
	cp.JustificationRoots = append([]types.Root{}, s.JustificationRoots...)
	cp.JustificationValidators = append([]byte{}, s.JustificationValidators...)
	return &cp
}

// getBit returns the value of a bit at the given index.
// Returns false if index is out of bounds.
func getBit(bits []byte, index int) bool {
	bl := bitfield.Bitlist(bits)
	if uint64(index) >= bl.Len() {
		return false
	}
	return bl.BitAt(uint64(index))
}

// setBit sets a bit at the given index.
// If the bitlist needs to grow, it creates a new one with sufficient capacity.
func setBit(bits []byte, index int, val bool) []byte {
	bl := bitfield.Bitlist(bits)
	idx := uint64(index)

	// If we need more capacity, create a larger bitlist
	if idx >= bl.Len() {
		newBl := bitfield.NewBitlist(idx + 1)
		// Copy existing bits
		for i := uint64(0); i < bl.Len(); i++ {
			if bl.BitAt(i) {
				newBl.SetBitAt(i, true)
			}
		}
		bl = newBl
	}

	bl.SetBitAt(idx, val)
	return bl
}

// appendBitAt records a bit at the given index, extending the bitlist if
// needed. A bit that is already set stays set: a slot justified by an earlier
// tally must survive later header processing writing false for the same slot.
func appendBitAt(bits []byte, index int, val bool) []byte {
	if len(bits) == 0 {
		bits = bitfield.NewBitlist(uint64(index) + 1)
	}
	return setBit(bits, index, val || getBit(bits, index))
}

// growBitlist extends a bitlist to the given length, preserving set bits.
func growBitlist(bits []byte, length uint64) []byte {
	bl := bitfield.Bitlist(bits)
	if bl.Len() >= length {
		return bits
	}
	newBl := bitfield.NewBitlist(length)
	for i := uint64(0); i < bl.Len(); i++ {
		if bl.BitAt(i) {
			newBl.SetBitAt(i, true)
		}
	}
	return newBl
}
