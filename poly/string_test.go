package poly_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

func TestStringGolden(t *testing.T) {
	g := goldie.New(t)

	box := bset(2, nil, []mat.Vec{vec(0, 1, 0), vec(5, -1, 0), vec(0, 0, 1)})
	g.Assert(t, "box", []byte(box.String()))

	param := poly.NewBasicSet(poly.SetSpace(1, 1))
	param.AddEq(vec(0, -1, 1))
	g.Assert(t, "param_line", []byte(param.String()))

	empty := poly.EmptyBasicSet(poly.SetSpace(0, 1))
	g.Assert(t, "empty", []byte(empty.String()))

	bm := poly.NewBasicMap(poly.MapSpace(0, 1, 1))
	bm.AddIneq(vec(0, -1, 1))
	g.Assert(t, "basic_map", []byte(bm.String()))
}

func TestSetString(t *testing.T) {
	set := poly.SetFromBasicSets(poly.SetSpace(0, 1),
		bset(1, nil, []mat.Vec{vec(0, 1)}),
		bset(1, nil, []mat.Vec{vec(0, -1)}),
	)
	require.Equal(t,
		"{ [i0] : i0 >= 0 } or { [i0] : -i0 >= 0 }",
		set.String())
	require.Equal(t, "{ }", poly.NewSet(poly.SetSpace(0, 1)).String())
}
