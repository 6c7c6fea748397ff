package hull

import (
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// setBounds returns parametric bounds on set dimension dim: every
// other set dimension is projected away and the convex hull of the
// projection is taken. s is not modified.
func setBounds(s *poly.Set, dim int) (*poly.BasicSet, error) {
	setDim := s.Space.Dim()
	s = s.Clone()
	s, err := s.EliminateDims(dim+1, setDim-(dim+1))
	if err != nil {
		return nil, err
	}
	s, err = s.EliminateDims(0, dim)
	if err != nil {
		return nil, err
	}

	return ConvexHull(s)
}

// BoundedSimpleHull computes a simple hull and then checks, per set
// dimension, whether the hull bounds it by parameters alone: either
// through an equality whose coefficients right of the dimension are
// zero, or through a lower and an upper inequality involving no other
// set dimension. Dimensions failing the check are bounded by
// intersecting with the projected hull of the whole input.
// s is consumed.
func BoundedSimpleHull(s *poly.Set) (*poly.BasicSet, error) {
	hull, err := SimpleHull(s.Clone())
	if err != nil {
		return nil, err
	}
	if hull.IsEmptyFlag() {
		return hull, nil
	}

	nParam := hull.Space.Param
	removedDivs := false
	for i := 0; i < hull.Space.Dim(); i++ {
		total := hull.Total()
		left := total - nParam - i - 1

		bounded := false
		for _, eq := range hull.Eq {
			if eq[1+nParam+i].Sign() == 0 {
				continue
			}
			if mat.FirstNonZero(eq[1+nParam+i+1:], left) == -1 {
				bounded = true
				break
			}
		}
		if bounded {
			continue
		}

		lower, upper := false, false
		for _, ineq := range hull.Ineq {
			if ineq[1+nParam+i].Sign() == 0 {
				continue
			}
			if mat.FirstNonZero(ineq[1+nParam+i+1:], left) != -1 ||
				mat.FirstNonZero(ineq[1+nParam:], i) != -1 {
				continue
			}
			if ineq[1+nParam+i].Sign() > 0 {
				lower = true
			} else {
				upper = true
			}
			if lower && upper {
				break
			}
		}
		if lower && upper {
			continue
		}

		if !removedDivs {
			s, err = s.Clone().RemoveDivs()
			if err != nil {
				return nil, err
			}
			removedDivs = true
		}
		bounds, err := setBounds(s, i)
		if err != nil {
			return nil, err
		}
		intersectPadded(hull, bounds, len(hull.Divs))
		if hull.IsEmptyFlag() {
			return hull, nil
		}
	}

	return hull, nil
}

// intersectPadded conjoins the constraints of bounds (a div-free basic
// set over the same parameters and set dimensions) onto hull, padding
// the rows with nDiv zero columns for hull's div layout.
func intersectPadded(hull, bounds *poly.BasicSet, nDiv int) {
	pad := func(row mat.Vec) mat.Vec {
		r := row.Clone()
		if nDiv > 0 {
			r = append(r, mat.NewVec(nDiv)...)
		}

		return r
	}
	if bounds.IsEmptyFlag() {
		hull.SetToEmpty()
		return
	}
	for _, e := range bounds.Eq {
		hull.AddEq(pad(e))
	}
	for _, q := range bounds.Ineq {
		hull.AddIneq(pad(q))
	}
}
