package poly_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

func TestUnderlyingOverlyingRoundtrip(t *testing.T) {
	space := poly.MapSpace(1, 1, 1)
	m := poly.NewMap(space)
	bm := poly.NewBasicMap(space)
	bm.AddIneq(vec(0, 1, 0, 0)) // p0 >= 0
	bm.AddIneq(vec(0, 0, -1, 1))
	m.Add(bm)

	model := m.P[0].Clone()
	us := m.UnderlyingSet()
	require.Equal(t, 0, us.Space.Param)
	require.Equal(t, 3, us.Space.Dim())

	back := poly.OverlyingSet(us.P[0], model)
	require.Equal(t, space, back.Space)
	require.Len(t, back.Ineq, 2)
}

func TestAlignDivsNoop(t *testing.T) {
	space := poly.MapSpace(0, 0, 1)
	m := poly.NewMap(space)
	m.Add(poly.NewBasicMap(space))
	m.Add(poly.NewBasicMap(space))
	m, err := m.AlignDivs()
	require.NoError(t, err)
	require.Len(t, m.P, 2)
}

func TestAlignDivsExpands(t *testing.T) {
	space := poly.MapSpace(0, 0, 1)
	div := poly.DivDef{Den: big.NewInt(2), Row: vec(0, 1)}

	a := poly.NewBasicMap(space)
	a.Divs = append(a.Divs, div.Clone())
	a.AddIneq(vec(0, 1, 1))

	b := poly.NewBasicMap(space)
	b.AddIneq(vec(3, -1))

	m := poly.NewMap(space).Add(a).Add(b)
	m, err := m.AlignDivs()
	require.NoError(t, err)
	require.Len(t, m.P[0].Divs, 1)
	require.Len(t, m.P[1].Divs, 1)
	require.Len(t, m.P[1].Ineq[0], 3)
	require.True(t, mat.Eq(m.P[1].Ineq[0], vec(3, -1, 0), 3))
}
