package hull

import (
	"math/big"

	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// convexHull0D handles the zero-dimensional space: the hull is either
// the empty set or the whole (single-point) universe. s is consumed.
func convexHull0D(s *poly.Set) (*poly.BasicSet, error) {
	s = s.Normalize()
	if len(s.P) == 0 {
		return poly.EmptyBasicSet(s.Space), nil
	}

	return poly.NewBasicSet(s.Space), nil
}

// convexHull1D computes the hull of a one-dimensional pure set by
// collecting a single lower and a single upper bound across the parts.
//
// Steps:
//  1. Seed lower/upper from the first nonempty part (an equality
//     contributes both orientations).
//  2. Sweep every part: keep the smaller lower bound and the larger
//     upper bound, comparing the fractions -c0/c1 by cross
//     multiplication; a part lacking a bound on one side removes that
//     side entirely.
//  3. Emit a rational basic set with 0, 1 or 2 inequalities.
//
// s is consumed.
func convexHull1D(s *poly.Set) (*poly.BasicSet, error) {
	s = s.Normalize()
	if len(s.P) == 0 {
		return poly.EmptyBasicSet(s.Space), nil
	}

	var lower, upper mat.Vec
	p0 := s.P[0]
	if len(p0.Eq) > 0 {
		eq := p0.Eq[0]
		lower = mat.NewVec(2)
		upper = mat.NewVec(2)
		if eq[1].Sign() > 0 {
			mat.Cpy(lower, eq, 2)
			mat.Neg(upper, eq, 2)
		} else {
			mat.Neg(lower, eq, 2)
			mat.Cpy(upper, eq, 2)
		}
	} else {
		for _, row := range p0.Ineq {
			if row[1].Sign() > 0 {
				lower = row.Clone()
			} else {
				upper = row.Clone()
			}
		}
	}

	a := new(big.Int)
	b := new(big.Int)
	for _, part := range s.P {
		hasLower := false
		hasUpper := false
		for _, eq := range part.Eq {
			hasLower = true
			hasUpper = true
			if lower != nil {
				a.Mul(lower[0], eq[1])
				b.Mul(lower[1], eq[0])
				if a.Cmp(b) < 0 && eq[1].Sign() > 0 {
					mat.Cpy(lower, eq, 2)
				}
				if a.Cmp(b) > 0 && eq[1].Sign() < 0 {
					mat.Neg(lower, eq, 2)
				}
			}
			if upper != nil {
				a.Mul(upper[0], eq[1])
				b.Mul(upper[1], eq[0])
				if a.Cmp(b) < 0 && eq[1].Sign() > 0 {
					mat.Neg(upper, eq, 2)
				}
				if a.Cmp(b) > 0 && eq[1].Sign() < 0 {
					mat.Cpy(upper, eq, 2)
				}
			}
		}
		for _, row := range part.Ineq {
			if row[1].Sign() > 0 {
				hasLower = true
			}
			if row[1].Sign() < 0 {
				hasUpper = true
			}
			if lower != nil && row[1].Sign() > 0 {
				a.Mul(lower[0], row[1])
				b.Mul(lower[1], row[0])
				if a.Cmp(b) < 0 {
					mat.Cpy(lower, row, 2)
				}
			}
			if upper != nil && row[1].Sign() < 0 {
				a.Mul(upper[0], row[1])
				b.Mul(upper[1], row[0])
				if a.Cmp(b) > 0 {
					mat.Cpy(upper, row, 2)
				}
			}
		}
		if !hasLower {
			lower = nil
		}
		if !hasUpper {
			upper = nil
		}
	}

	hull := poly.NewBasicSet(poly.SetSpace(0, 1)).SetRational()
	if lower != nil {
		hull.AddIneq(lower)
	}
	if upper != nil {
		hull.AddIneq(upper)
	}

	return hull.Finalize(), nil
}
