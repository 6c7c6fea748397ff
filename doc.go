// Package polyset is an exact polyhedral set library: integer-linear
// basic sets, finite unions, and the convex-hull engine on top of
// them, all over unbounded-precision rational arithmetic.
//
// 🚀 What is polyset?
//
//	A pure-Go library for computing with conjunctions of linear
//	equalities and inequalities over rationals/integers with optional
//	symbolic parameters:
//		• Exact convex hulls of unions: facet wrapping (Extended
//		  Convex Hull) for bounded sets, Fourier–Motzkin projection
//		  of a homogeneous Minkowski sum for unbounded ones
//		• Simple hulls: the tightest superset built from relaxed
//		  translates of the input's own constraints
//		• Redundancy removal backed by an exact rational LP solver
//		• Affine hulls, preimages, Fourier–Motzkin elimination
//
// ✨ Why choose polyset?
//
//   - Exact everywhere – big-integer rows, big-rational simplex,
//     no floating point and no tolerances
//   - Predictable – LP "empty" and "unbounded" are data, not errors;
//     sentinel errors cover the genuinely exceptional cases
//   - Pure Go – no cgo, no hidden deps beyond the test tooling
//
// Under the hood, everything is organized under four subpackages:
//
//	mat/  — exact integer vectors and matrices (right inverse, products)
//	poly/ — spaces, basic sets, sets, maps and their structural ops
//	lp/   — exact rational two-phase simplex and LP oracles
//	hull/ — the convex-hull engine (dispatcher + kernels)
//
// Quick ASCII example:
//
//	    [0]────[5]
//	         [3]────────[10]
//	    └────── hull ───┘      ConvexHull([0,5] ∪ [3,10]) = [0,10]
//
// See the example tests in hull/ for runnable entry points.
package polyset
