package hull

import (
	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/poly"
)

// basicSetIsBounded reports whether the recession cone of a single
// basic set degenerates to the origin.
func basicSetIsBounded(b *poly.BasicSet) (bool, error) {
	return lp.ConeIsBounded(b.Problem())
}

// setIsBounded reports whether every part of s is bounded.
func setIsBounded(s *poly.Set) (bool, error) {
	for _, p := range s.P {
		bounded, err := basicSetIsBounded(p)
		if err != nil {
			return false, err
		}
		if !bounded {
			return false, nil
		}
	}

	return true, nil
}

// usetConvexHull computes the convex hull of a pure set (no
// parameters, no divs). Special cases are handled first; the general
// case dispatches on boundedness between the wrapping kernel and
// Fourier-Motzkin elimination. s is consumed.
func usetConvexHull(s *poly.Set) (*poly.BasicSet, error) {
	if s.Dim() == 0 {
		return convexHull0D(s)
	}
	s = s.SetRational().Normalize()
	if len(s.P) == 0 {
		return poly.EmptyBasicSet(s.Space), nil
	}
	if len(s.P) == 1 {
		return s.P[0], nil
	}
	if s.Dim() == 1 {
		return convexHull1D(s)
	}

	bounded, err := setIsBounded(s)
	if err != nil {
		return nil, err
	}
	if !bounded {
		return usetConvexHullElim(s)
	}

	return usetConvexHullWrap(s)
}

// moduloAffineHull factors out the affine hull: the equalities are
// removed by a change of coordinates, the hull is computed in the
// lower-dimensional space, lifted back and re-intersected with the
// affine hull. s is consumed; affineHull is not.
func moduloAffineHull(s *poly.Set, affineHull *poly.BasicSet) (*poly.BasicSet, error) {
	t, t2, err := affineHull.RemoveEqualities()
	if err != nil {
		return nil, err
	}
	s, err = s.Preimage(t)
	if err != nil {
		return nil, err
	}
	ch, err := usetConvexHull(s)
	if err != nil {
		return nil, err
	}
	ch, err = ch.Preimage(t2)
	if err != nil {
		return nil, err
	}

	return ch.Intersect(affineHull)
}

// ConvexHullMap computes the convex hull of a map as a single basic
// map.
//
// Steps:
//  1. Align divs across the parts and remember the first part as the
//     schema model.
//  2. Flatten to the underlying pure set and compute its affine hull.
//  3. Factor out the affine hull when it carries equalities, then run
//     the pure-set dispatcher.
//  4. Overlay the model to restore the schema and clear the rational
//     flag.
//
// m is consumed.
func ConvexHullMap(m *poly.Map) (*poly.BasicMap, error) {
	if len(m.P) == 0 {
		return poly.EmptyBasicMap(m.Space), nil
	}
	m, err := m.AlignDivs()
	if err != nil {
		return nil, err
	}
	model := m.P[0].Clone()
	s := m.UnderlyingSet()

	affineHull, err := s.AffineHull()
	if err != nil {
		return nil, err
	}
	var bset *poly.BasicSet
	switch {
	case affineHull.IsEmptyFlag():
		bset = poly.EmptyBasicSet(s.Space)
	case len(affineHull.Eq) > 0:
		bset, err = moduloAffineHull(s, affineHull)
	default:
		bset, err = usetConvexHull(s)
	}
	if err != nil {
		return nil, err
	}

	res := poly.OverlyingSet(bset, model)
	res.Flags &^= poly.FlagRational

	return res, nil
}

// ConvexHull computes the convex hull of a set as a single basic set.
// s is consumed.
func ConvexHull(s *poly.Set) (*poly.BasicSet, error) {
	res, err := ConvexHullMap(poly.SetAsMap(s))
	if err != nil {
		return nil, err
	}

	return poly.MapAsSet(res), nil
}
