// Package mat provides exact integer vectors and dense integer matrices
// for polyhedral computations.
//
// The mat package provides:
//
//   - Vec, a row of *big.Int values used for constraint rows and
//     objective rows (constant term in column 0).
//   - Row helpers: copy, negate, combine, gcd-normalize, single-step
//     Gaussian elimination, orientation-invariant hash keys.
//   - Mat, a dense integer matrix with row/column drops, products and
//     an exact right inverse with kernel completion.
//
// All arithmetic is unbounded-precision; no floating point is used
// anywhere. Vectors and matrices are mutable owned values: operations
// that are documented as consuming their argument may reuse its
// backing storage, so callers clone beforehand if they need to retain
// the input.
package mat
