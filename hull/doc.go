// Package hull computes convex hulls of unions of integer-linear
// basic sets.
//
// The hull package provides:
//
//   - ConvexHull / ConvexHullMap: the exact convex hull of a union as
//     a single basic set (basic map), combining facet wrapping in the
//     style of Fukuda's Extended Convex Hull for bounded inputs with
//     Fourier-Motzkin elimination over a homogeneous Minkowski sum
//     for unbounded ones.
//   - BasicHull / BasicHullMap: redundancy removal on a single basic
//     set, backed by the LP oracles.
//   - SimpleHull / SimpleHullMap: the tightest superset expressible
//     with (relaxed) translates of the input's own constraints.
//   - BoundedSimpleHull: a simple hull whose set dimensions are
//     additionally bounded by projected hulls of the whole input.
//
// The dispatcher strips the affine hull first, runs the selected
// kernel on the resulting full-dimensional pure set and lifts the
// result back. Hull construction works over the rationals: inputs are
// marked rational internally and the flag is cleared on the result.
//
// All computation is exact; LP outcomes "empty" and "unbounded" are
// data the algorithms branch on, never failures.
package hull
