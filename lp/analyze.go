package lp

import (
	"math/big"

	"github.com/katalvlaran/polyset/mat"
)

// DetectImplicit returns the indexes of inequalities of p that are
// implicit equalities: rows whose maximum over the feasible region is
// zero, so the inequality can only be satisfied with equality.
// StatusEmpty is reported when the system itself is infeasible.
func DetectImplicit(p Problem) ([]int, Status, error) {
	var implicit []int
	obj := mat.NewVec(1 + p.NVar)
	for i, row := range p.Ineq {
		mat.Neg(obj, row, 1+p.NVar)
		opt, st, err := Min(p, obj)
		if err != nil {
			return nil, StatusOK, err
		}
		switch st {
		case StatusEmpty:
			return nil, StatusEmpty, nil
		case StatusUnbounded:
			continue
		}
		// min(-c) == 0 means max(c) == 0: the row never exceeds zero.
		if opt.Sign() == 0 {
			implicit = append(implicit, i)
		}
	}

	return implicit, StatusOK, nil
}

// DetectRedundant returns the indexes of inequalities implied by the
// remaining constraints: rows whose minimum over the system without
// them (and without previously detected redundant rows) is still
// nonnegative. Marking is sequential, so of two identical rows only
// one is reported. StatusEmpty is reported when the system is
// infeasible.
func DetectRedundant(p Problem) ([]int, Status, error) {
	redundant := make(map[int]bool, len(p.Ineq))
	var order []int
	rest := make([]mat.Vec, 0, len(p.Ineq))
	for i, row := range p.Ineq {
		rest = rest[:0]
		for j, other := range p.Ineq {
			if j == i || redundant[j] {
				continue
			}
			rest = append(rest, other)
		}
		sub := Problem{NVar: p.NVar, Eq: p.Eq, Ineq: rest}
		opt, st, err := Min(sub, row)
		if err != nil {
			return nil, StatusOK, err
		}
		switch st {
		case StatusEmpty:
			return nil, StatusEmpty, nil
		case StatusUnbounded:
			continue
		}
		if opt.Sign() >= 0 {
			redundant[i] = true
			order = append(order, i)
		}
	}

	return order, StatusOK, nil
}

// ConeIsBounded reports whether the recession cone of p degenerates to
// the origin. The cone keeps the coefficient part of every constraint
// and drops the constants; it is bounded iff no coordinate direction
// admits a nonzero cone element, which is tested per direction inside
// a unit box (any ray can be scaled to touch the box).
func ConeIsBounded(p Problem) (bool, error) {
	n := p.NVar
	cone := Problem{NVar: n}
	strip := func(rows []mat.Vec) []mat.Vec {
		out := make([]mat.Vec, len(rows))
		for i, row := range rows {
			r := row.Clone()
			r[0].SetInt64(0)
			out[i] = r
		}

		return out
	}
	cone.Eq = strip(p.Eq)
	cone.Ineq = strip(p.Ineq)
	// Unit box: -1 <= x_i <= 1 for all i.
	for i := 0; i < n; i++ {
		up := mat.NewVec(1 + n)
		up[0].SetInt64(1)
		up[1+i].SetInt64(-1)
		lo := mat.NewVec(1 + n)
		lo[0].SetInt64(1)
		lo[1+i].SetInt64(1)
		cone.Ineq = append(cone.Ineq, up, lo)
	}

	obj := mat.NewVec(1 + n)
	for i := 0; i < n; i++ {
		for _, sign := range []int64{1, -1} {
			mat.Clr(obj, 1+n)
			obj[1+i].SetInt64(sign)
			opt, st, err := Min(cone, obj)
			if err != nil {
				return false, err
			}
			if st != StatusOK {
				// The boxed cone contains the origin and is bounded,
				// so the solver always produces a finite optimum.
				return false, ErrBadProblem
			}
			if opt.Sign() < 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// Tab is a reusable handle on a constraint system, letting callers run
// several objectives over the same basic set without rebuilding the
// row structure. The rows are shared, not copied.
type Tab struct {
	p Problem
}

// NewTab wraps p for repeated queries.
func NewTab(p Problem) *Tab {
	return &Tab{p: p}
}

// Min minimizes obj over the wrapped system; see Min.
func (t *Tab) Min(obj mat.Vec) (*big.Rat, Status, error) {
	return Min(t.p, obj)
}
