package decay

import "errors"

// Domain errors for decay computations.
var (
	// ErrInvalidParameter indicates a precondition violation (dt <= 0,
	// T <= 0, theta outside [0,1], or a degenerate denominator).
	ErrInvalidParameter = errors.New("decay: invalid parameter")

	// ErrShapeMismatch indicates solution and mesh slices of differing length.
	ErrShapeMismatch = errors.New("decay: solution and mesh length mismatch")

	// ErrEmptyMesh indicates an operation on a zero-length mesh.
	ErrEmptyMesh = errors.New("decay: empty mesh")
)
