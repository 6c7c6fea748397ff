// Package poly defines the polyhedral data model: spaces, basic sets
// (single convex pieces described by integer-linear equalities and
// inequalities), sets (finite unions of basic sets) and their
// relational siblings, basic maps and maps.
//
// The poly package provides:
//
//   - BasicSet and Set with constraint storage, flags and deep Clone.
//   - Structural operations: Gauss elimination of equalities,
//     constraint normalization, simplification, intersection,
//     affine preimage, removal of equalities via an exact
//     change of coordinates, and Fourier–Motzkin elimination.
//   - Affine hulls of basic sets and of unions.
//   - Map-to-set bridging: div alignment, underlying and overlying
//     sets, used by the hull engine to flatten relational inputs.
//
// Constraint rows are mat.Vec values of length 1+Total with the
// constant in column 0: (c0, c1, ..., cd) means c0 + Σ ci*xi >= 0,
// or = 0 for an equality row.
//
// Handles are mutable owned values. An operation documented as
// consuming its receiver may mutate it and return it (or a
// replacement); callers Clone beforehand when they need to retain the
// input. This mirrors the move-semantics discipline of the underlying
// algorithms without reference counting.
package poly
