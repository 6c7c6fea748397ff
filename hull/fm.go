package hull

import (
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// convexHullPair computes the convex hull of two pure basic sets via
// Fourier-Motzkin elimination. In homogeneous coordinates the hull is
// the projection of
//
//	{ x = y + z : y in hom(b1), z in hom(b2) }
//
// so the constraints are laid out over 2+3d variables (the d result
// dimensions x, then the homogenized groups (y0, y) and (z0, z)),
// the two groups are projected away and the projection is reduced by
// BasicHull. Both operands are consumed.
func convexHullPair(b1, b2 *poly.BasicSet) (*poly.BasicSet, error) {
	dim := b1.Space.Dim()
	width := 1 + 2 + 3*dim
	hull := poly.NewBasicSet(poly.SetSpace(0, 2+3*dim))

	pair := [2]*poly.BasicSet{b1, b2}
	for i, b := range pair {
		off := (i + 1) * (1 + dim)
		for _, e := range b.Eq {
			row := mat.NewVec(width)
			for t := 0; t <= dim; t++ {
				row[off+t].Set(e[t])
			}
			hull.AddEq(row)
		}
		for _, n := range b.Ineq {
			row := mat.NewVec(width)
			for t := 0; t <= dim; t++ {
				row[off+t].Set(n[t])
			}
			hull.AddIneq(row)
		}
		// Nonnegativity of the homogenizing coordinate.
		row := mat.NewVec(width)
		row[off].SetInt64(1)
		hull.AddIneq(row)
	}
	// x = y + z, including the homogeneous component 1 = y0 + z0.
	for j := 0; j <= dim; j++ {
		row := mat.NewVec(width)
		row[j].SetInt64(-1)
		row[1+dim+j].SetInt64(1)
		row[2*(1+dim)+j].SetInt64(1)
		hull.AddEq(row)
	}

	hull.SetRational()
	hull, err := hull.RemoveDims(dim, 2+2*dim)
	if err != nil {
		return nil, err
	}

	return BasicHull(hull)
}

// usetConvexHullElim folds convexHullPair across the parts of a pure
// set, left to right. s is consumed.
func usetConvexHullElim(s *poly.Set) (*poly.BasicSet, error) {
	hull := s.P[0]
	var err error
	for _, part := range s.P[1:] {
		hull, err = convexHullPair(hull, part)
		if err != nil {
			return nil, err
		}
	}

	return hull, nil
}
