package hull_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

func vec(vals ...int64) mat.Vec {
	v := make(mat.Vec, len(vals))
	for i, x := range vals {
		v[i] = big.NewInt(x)
	}

	return v
}

// bset builds a basic set over dim pure dimensions.
func bset(dim int, eqs, ineqs []mat.Vec) *poly.BasicSet {
	b := poly.NewBasicSet(poly.SetSpace(0, dim))
	for _, e := range eqs {
		b.AddEq(e)
	}
	for _, n := range ineqs {
		b.AddIneq(n)
	}

	return b
}

// pbset builds a basic set with parameters.
func pbset(param, dim int, eqs, ineqs []mat.Vec) *poly.BasicSet {
	b := poly.NewBasicSet(poly.SetSpace(param, dim))
	for _, e := range eqs {
		b.AddEq(e)
	}
	for _, n := range ineqs {
		b.AddIneq(n)
	}

	return b
}

func union(parts ...*poly.BasicSet) *poly.Set {
	return poly.SetFromBasicSets(parts[0].Space, parts...)
}

// contains reports whether outer contains inner over the rationals:
// every constraint of outer holds on all of inner.
func contains(t *testing.T, outer, inner *poly.BasicSet) bool {
	t.Helper()
	empty, err := inner.Clone().IsEmpty()
	require.NoError(t, err)
	if empty {
		return true
	}
	prob := inner.Problem()
	holds := func(row mat.Vec) bool {
		opt, st, err := lp.Min(prob, row)
		require.NoError(t, err)
		switch st {
		case lp.StatusUnbounded:
			return false
		case lp.StatusEmpty:
			return true
		}

		return opt.Sign() >= 0
	}
	neg := mat.NewVec(1 + inner.Total())
	for _, eq := range outer.Eq {
		if !holds(eq) {
			return false
		}
		mat.Neg(neg, eq, 1+inner.Total())
		if !holds(neg) {
			return false
		}
	}
	for _, ineq := range outer.Ineq {
		if !holds(ineq) {
			return false
		}
	}

	return true
}

// requireEqualSets asserts mutual containment of two basic sets.
func requireEqualSets(t *testing.T, want, got *poly.BasicSet) {
	t.Helper()
	require.True(t, contains(t, want, got), "result not contained in expected:\nwant %s\ngot  %s", want, got)
	require.True(t, contains(t, got, want), "expected not contained in result:\nwant %s\ngot  %s", want, got)
}

// requireSoundHull asserts that every part of s lies inside hull.
func requireSoundHull(t *testing.T, hull *poly.BasicSet, s *poly.Set) {
	t.Helper()
	for i, p := range s.P {
		require.True(t, contains(t, hull, p), "part %d not contained in hull %s", i, hull)
	}
}

// point builds the singleton basic set at the given coordinates.
func point(coords ...int64) *poly.BasicSet {
	dim := len(coords)
	b := poly.NewBasicSet(poly.SetSpace(0, dim))
	for i, c := range coords {
		row := mat.NewVec(1 + dim)
		row[0].SetInt64(-c)
		row[1+i].SetInt64(1)
		b.AddEq(row)
	}

	return b
}
