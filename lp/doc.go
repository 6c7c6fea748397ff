// Package lp solves linear programs over exact rational arithmetic.
//
// The lp package provides:
//
//   - Min, minimization of an affine objective over a conjunction of
//     integer-linear equalities and inequalities with free variables,
//     via a two-phase primal simplex with Bland's rule on big.Rat
//     (termination is guaranteed, no tolerances anywhere).
//   - Tab, a reusable problem handle for repeated objectives over the
//     same constraint system.
//   - DetectImplicit and DetectRedundant, the oracles behind implicit
//     equality detection and redundancy removal.
//   - ConeIsBounded, the recession-cone test behind boundedness
//     dispatch.
//
// Outcomes are split in two: a Status describes the algorithmically
// meaningful results (an optimum exists, the problem is empty, the
// objective is unbounded below), while Go errors report malformed
// input. Statuses are data, not failures: callers branch on them.
//
// Constraint rows use the same layout as package mat: the constant in
// column 0, so (c0, c1, ..., cn) constrains c0 + Σ ci*xi.
package lp
