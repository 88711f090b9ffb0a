package lcg

import "errors"

// Domain errors for trajectory generation.
var (
	// ErrInvalidModulus indicates a modulus that is zero or negative.
	ErrInvalidModulus = errors.New("lcg: modulus must be positive")

	// ErrCycleNotFound indicates the safety bound of 2m steps was exceeded
	// without seeing a repeated residue. Every LCG over a finite modulus
	// repeats within m steps, so this signals an arithmetic bug (most
	// likely int64 overflow in a*x), not a valid generator state.
	ErrCycleNotFound = errors.New("lcg: no cycle within 2m steps")
)
