package math3d

import "errors"

// Epsilon is the tolerance used for approximate comparisons and for
// detecting zero-length vectors and zero homogeneous w.
const Epsilon = 1e-9

var (
	// ErrDegenerateVector is returned when normalizing a vector of ~zero length.
	ErrDegenerateVector = errors.New("math3d: degenerate vector")

	// ErrDegenerateTriangle is returned when a triangle has zero area and
	// therefore no face normal.
	ErrDegenerateTriangle = errors.New("math3d: degenerate triangle")

	// ErrInvalidOperand is returned when raw component data does not have
	// the dimension the operation expects.
	ErrInvalidOperand = errors.New("math3d: invalid operand")

	// ErrInvalidProjectionParams is returned for projection parameters that
	// cannot produce a usable perspective matrix.
	ErrInvalidProjectionParams = errors.New("math3d: invalid projection parameters")

	// ErrUnprojectable is returned when a point lands on w=0 and cannot be
	// perspective divided.
	ErrUnprojectable = errors.New("math3d: unprojectable point")
)
