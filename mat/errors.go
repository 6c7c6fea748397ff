package mat

import "errors"

// Sentinel errors for vector and matrix operations.
// All algorithms return these sentinels and callers match them via
// errors.Is; no operation panics on user-triggered conditions.
var (
	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or cols when allocating; rows <= 0, cols <= 0, or
	// rows > cols in RightInverse, where full row rank is required).
	ErrBadShape = errors.New("mat: invalid shape")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Product where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")

	// ErrSingular is returned when a matrix that must have full row rank
	// contains a dependent row.
	ErrSingular = errors.New("mat: singular matrix")

	// ErrOutOfRange indicates that a row or column range is outside
	// valid bounds.
	ErrOutOfRange = errors.New("mat: index out of range")
)
