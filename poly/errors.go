package poly

import "errors"

// Sentinel errors for structural operations. Callers match them via
// errors.Is.
var (
	// ErrSpaceMismatch indicates that two operands live in
	// incompatible spaces (different totals or layouts).
	ErrSpaceMismatch = errors.New("poly: space mismatch")

	// ErrHasDivs is returned by operations that require an input
	// without integer divisions.
	ErrHasDivs = errors.New("poly: operation requires a set without divs")

	// ErrOutOfRange indicates a dimension index or range outside the
	// space of the operand.
	ErrOutOfRange = errors.New("poly: dimension out of range")

	// ErrBadTransform indicates an affine transformation matrix whose
	// shape does not match the operand's space.
	ErrBadTransform = errors.New("poly: transformation shape mismatch")
)
