package hull_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polyset/hull"
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// ConvexHullSuite runs the dispatcher end to end on the boundary
// scenarios.
type ConvexHullSuite struct {
	suite.Suite
}

func (s *ConvexHullSuite) TestOverlappingIntervals() {
	// [0,5] u [3,10] hulls to [0,10].
	set := union(
		bset(1, nil, []mat.Vec{vec(0, 1), vec(5, -1)}),
		bset(1, nil, []mat.Vec{vec(-3, 1), vec(10, -1)}),
	)
	h, err := hull.ConvexHull(set.Clone())
	require.NoError(s.T(), err)
	requireSoundHull(s.T(), h, set)
	requireEqualSets(s.T(), bset(1, nil, []mat.Vec{vec(0, 1), vec(10, -1)}), h)
}

func (s *ConvexHullSuite) TestThreePointsTriangle() {
	set := union(point(0, 0), point(1, 0), point(0, 1))
	h, err := hull.ConvexHull(set.Clone())
	require.NoError(s.T(), err)
	requireSoundHull(s.T(), h, set)
	triangle := bset(2, nil, []mat.Vec{
		vec(0, 1, 0), vec(0, 0, 1), vec(1, -1, -1),
	})
	requireEqualSets(s.T(), triangle, h)
}

func (s *ConvexHullSuite) TestOppositeRaysGiveUniverse() {
	set := union(
		bset(1, nil, []mat.Vec{vec(0, 1)}),
		bset(1, nil, []mat.Vec{vec(0, -1)}),
	)
	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	require.Empty(s.T(), h.Eq)
	require.Empty(s.T(), h.Ineq)
}

func (s *ConvexHullSuite) TestParallelSegmentsGiveSquare() {
	seg := func(x int64) *poly.BasicSet {
		return bset(2,
			[]mat.Vec{vec(-x, 1, 0)},
			[]mat.Vec{vec(0, 0, 1), vec(1, 0, -1)})
	}
	set := union(seg(0), seg(1))
	h, err := hull.ConvexHull(set.Clone())
	require.NoError(s.T(), err)
	requireSoundHull(s.T(), h, set)
	square := bset(2, nil, []mat.Vec{
		vec(0, 1, 0), vec(1, -1, 0), vec(0, 0, 1), vec(1, 0, -1),
	})
	requireEqualSets(s.T(), square, h)
}

func (s *ConvexHullSuite) TestUnboundedStrip() {
	// {x >= 0, 0 <= y <= 1} u {x <= 0, 0 <= y <= 1} hulls to the strip.
	left := bset(2, nil, []mat.Vec{vec(0, -1, 0), vec(0, 0, 1), vec(1, 0, -1)})
	right := bset(2, nil, []mat.Vec{vec(0, 1, 0), vec(0, 0, 1), vec(1, 0, -1)})
	set := union(right, left)
	h, err := hull.ConvexHull(set.Clone())
	require.NoError(s.T(), err)
	requireSoundHull(s.T(), h, set)
	strip := bset(2, nil, []mat.Vec{vec(0, 0, 1), vec(1, 0, -1)})
	requireEqualSets(s.T(), strip, h)
}

func (s *ConvexHullSuite) TestEmptySet() {
	h, err := hull.ConvexHull(poly.NewSet(poly.SetSpace(0, 2)))
	require.NoError(s.T(), err)
	require.True(s.T(), h.IsEmptyFlag())
}

func (s *ConvexHullSuite) TestEmptyPartsContributeNothing() {
	set := union(
		bset(1, nil, []mat.Vec{vec(-1, 1), vec(0, -1)}), // empty
		bset(1, nil, []mat.Vec{vec(0, 1), vec(5, -1)}),
	)
	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	requireEqualSets(s.T(), bset(1, nil, []mat.Vec{vec(0, 1), vec(5, -1)}), h)
}

func (s *ConvexHullSuite) TestSinglePartPassthrough() {
	b := bset(2, nil, []mat.Vec{vec(0, 1, 0), vec(0, 0, 1), vec(2, -1, -1)})
	set := union(b.Clone())
	h, err := hull.ConvexHull(set)
	require.NoError(s.T(), err)
	requireEqualSets(s.T(), b, h)
}

func (s *ConvexHullSuite) TestIdempotence() {
	set := union(point(0, 0), point(1, 0), point(0, 1))
	h1, err := hull.ConvexHull(set.Clone())
	require.NoError(s.T(), err)
	h2, err := hull.ConvexHull(union(h1.Clone()))
	require.NoError(s.T(), err)
	requireEqualSets(s.T(), h1, h2)
}

func (s *ConvexHullSuite) TestAffineHullConsistency() {
	// Two points on the line y = 0: hull and input share the affine hull.
	set := union(point(0, 0), point(3, 0))
	aff, err := set.AffineHull()
	require.NoError(s.T(), err)
	h, err := hull.ConvexHull(set.Clone())
	require.NoError(s.T(), err)
	haff, err := poly.SetFromBasicSets(h.Space, h.Clone()).AffineHull()
	require.NoError(s.T(), err)
	requireEqualSets(s.T(), aff, haff)
}

func (s *ConvexHullSuite) TestMapHull() {
	// { [i] -> [j] : j = i } u { [i] -> [j] : j = i + 2 } over 0 <= i <= 1.
	piece := func(off int64) *poly.BasicMap {
		bm := poly.NewBasicMap(poly.MapSpace(0, 1, 1))
		bm.AddEq(vec(-off, -1, 1))
		bm.AddIneq(vec(0, 1, 0))
		bm.AddIneq(vec(1, -1, 0))

		return bm
	}
	m := poly.NewMap(poly.MapSpace(0, 1, 1)).Add(piece(0)).Add(piece(2))
	h, err := hull.ConvexHullMap(m)
	require.NoError(s.T(), err)
	require.Equal(s.T(), poly.MapSpace(0, 1, 1), h.Space)

	want := poly.NewBasicMap(poly.MapSpace(0, 1, 1))
	want.AddIneq(vec(0, 1, 0))
	want.AddIneq(vec(1, -1, 0))
	// j >= i and j <= i + 2.
	want.AddIneq(vec(0, -1, 1))
	want.AddIneq(vec(2, 1, -1))
	requireEqualSets(s.T(), &want.BasicSet, &h.BasicSet)
}

func TestConvexHullSuite(t *testing.T) {
	suite.Run(t, new(ConvexHullSuite))
}

// KernelSuite checks the wrapping and elimination kernels against each
// other on bounded inputs (strategy equivalence).
type KernelSuite struct {
	suite.Suite
}

func (s *KernelSuite) TestWrapMatchesElimOnTriangle() {
	pure := func() *poly.Set {
		return union(point(0, 0), point(1, 0), point(0, 1)).SetRational().Normalize()
	}
	wrapped, err := hull.UsetConvexHullWrap(pure())
	require.NoError(s.T(), err)
	folded, err := hull.UsetConvexHullElim(pure())
	require.NoError(s.T(), err)
	requireEqualSets(s.T(), wrapped, folded)
}

func (s *KernelSuite) TestWrapMatchesElimOnSegments() {
	seg := func(x int64) *poly.BasicSet {
		return bset(2,
			[]mat.Vec{vec(-x, 1, 0)},
			[]mat.Vec{vec(0, 0, 1), vec(1, 0, -1)})
	}
	pure := func() *poly.Set { return union(seg(0), seg(1)).SetRational().Normalize() }
	wrapped, err := hull.UsetConvexHullWrap(pure())
	require.NoError(s.T(), err)
	folded, err := hull.UsetConvexHullElim(pure())
	require.NoError(s.T(), err)
	requireEqualSets(s.T(), wrapped, folded)
}

func (s *KernelSuite) TestSetIsBounded() {
	bounded, err := hull.SetIsBounded(union(point(0, 0), point(1, 1)))
	require.NoError(s.T(), err)
	require.True(s.T(), bounded)

	ray := union(bset(1, nil, []mat.Vec{vec(0, 1)}))
	bounded, err = hull.SetIsBounded(ray)
	require.NoError(s.T(), err)
	require.False(s.T(), bounded)
}

func TestKernelSuite(t *testing.T) {
	suite.Run(t, new(KernelSuite))
}
