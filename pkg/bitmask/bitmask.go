package bitmask

// Op is one of the closed set of single-bit transforms applied to a
// channel byte of the pixel array.
type Op byte

const (
	// Set forces the masked bit to 1.
	Set Op = iota
	// Clear forces the masked bit to 0.
	Clear
	// Toggle inverts the masked bit.
	Toggle
)

// Mask returns the byte mask selecting bit position pos. Positions
// outside [0,8) select no bit within a byte and yield a zero mask.
func Mask(pos int) byte {
	if pos < 0 || pos > 7 {
		return 0
	}
	return 1 << uint(pos)
}

// Apply returns b with the masked bits transformed by op.
func (op Op) Apply(b, mask byte) byte {
	switch op {
	case Set:
		return b | mask
	case Clear:
		return b &^ mask
	case Toggle:
		return b ^ mask
	}
	return b
}

// String returns the transform name, mainly for logging and tests.
func (op Op) String() string {
	switch op {
	case Set:
		return "set"
	case Clear:
		return "clear"
	case Toggle:
		return "toggle"
	}
	return "unknown"
}
