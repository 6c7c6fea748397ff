package poly

import (
	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/mat"
)

// Problem views the constraints of b as an LP problem over its full
// variable layout. The rows are shared with b, not copied; the LP
// layer treats them as read-only.
func (b *BasicSet) Problem() lp.Problem {
	return lp.Problem{NVar: b.Total(), Eq: b.Eq, Ineq: b.Ineq}
}

// IsEmpty decides emptiness of b, first structurally and then by an
// LP feasibility probe. An LP-proven empty b is rewritten to the
// canonical empty form.
func (b *BasicSet) IsEmpty() (bool, error) {
	if b.IsEmptyFlag() {
		return true, nil
	}
	if len(b.Eq) == 0 && len(b.Ineq) == 0 {
		return false, nil
	}
	_, st, err := lp.Min(b.Problem(), mat.NewVec(1+b.Total()))
	if err != nil {
		return false, err
	}
	if st == lp.StatusEmpty {
		b.SetToEmpty()
		return true, nil
	}

	return false, nil
}

// AffineHull computes the smallest affine subspace containing b: its
// explicit equalities together with the implicit ones hidden among the
// inequalities. The result carries equalities only. b is not modified.
func (b *BasicSet) AffineHull() (*BasicSet, error) {
	c := b.Clone().Simplify()
	if c.IsEmptyFlag() {
		return c, nil
	}
	if len(c.Ineq) > 0 {
		implicit, st, err := lp.DetectImplicit(c.Problem())
		if err != nil {
			return nil, err
		}
		if st == lp.StatusEmpty {
			return c.SetToEmpty(), nil
		}
		for _, i := range implicit {
			c.Eq = append(c.Eq, c.Ineq[i])
		}
	}
	c.Ineq = nil
	c.Flags &^= FlagNoRedundant | FlagNoImplicit

	return c.Gauss(), nil
}

// AffineHull computes the affine hull of the union: the equalities
// that hold on every nonempty piece.
//
// Steps:
//  1. Take the affine hull of the first nonempty piece as the running
//     equality system.
//  2. For every further piece, keep only the running equalities that
//     reduce to zero against the piece's own affine hull.
//  3. An empty running system means the hull is the whole space.
//
// The result is a basic set over s.Space carrying equalities only, or
// the canonical empty basic set when every piece is empty.
func (s *Set) AffineHull() (*BasicSet, error) {
	var hull *BasicSet
	for _, p := range s.P {
		ph, err := p.AffineHull()
		if err != nil {
			return nil, err
		}
		if ph.IsEmptyFlag() {
			continue
		}
		if hull == nil {
			hull = ph
			continue
		}
		width := 1 + hull.Total()
		kept := hull.Eq[:0]
		for _, e := range hull.Eq {
			if reducesToZero(e, ph.Eq, width) {
				kept = append(kept, e)
			}
		}
		hull.Eq = kept
		if len(hull.Eq) == 0 {
			break
		}
	}
	if hull == nil {
		return EmptyBasicSet(s.Space), nil
	}

	return hull.Gauss(), nil
}

// reducesToZero reports whether row lies in the affine span of the
// gauss-reduced equality system eqs (including the constant column).
func reducesToZero(row mat.Vec, eqs []mat.Vec, width int) bool {
	r := row.Clone()
	for _, e := range eqs {
		p := mat.FirstNonZero(e[1:], width-1)
		if p < 0 {
			continue
		}
		if r[1+p].Sign() != 0 {
			mat.Elim(r, e, 1+p, width)
		}
	}

	return mat.FirstNonZero(r, width) == -1
}
