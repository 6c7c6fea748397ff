package hull_test

import (
	"fmt"

	"github.com/katalvlaran/polyset/hull"
	"github.com/katalvlaran/polyset/mat"
	"github.com/katalvlaran/polyset/poly"
)

// ExampleConvexHull computes the hull of two overlapping intervals.
func ExampleConvexHull() {
	set := poly.SetFromBasicSets(poly.SetSpace(0, 1),
		interval(0, 5), interval(3, 10))
	h, err := hull.ConvexHull(set)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	// Output: { [i0] : i0 >= 0 and -i0 + 10 >= 0 }
}

// ExampleBasicHull removes a redundant bound from a single piece.
func ExampleBasicHull() {
	b := poly.NewBasicSet(poly.SetSpace(0, 1))
	b.AddIneq(vec(0, 1))   // x >= 0
	b.AddIneq(vec(10, -1)) // x <= 10
	b.AddIneq(vec(-2, 1))  // x >= 2
	h, err := hull.BasicHull(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	// Output: { [i0] : -i0 + 10 >= 0 and i0 - 2 >= 0 }
}

// ExampleSimpleHull relaxes a parametric bound across the union.
func ExampleSimpleHull() {
	set := poly.SetFromBasicSets(poly.SetSpace(1, 1),
		pbset(1, 1, nil, []mat.Vec{vec(0, 0, 1), vec(0, 1, -1)}), // 0 <= x <= n
		pbset(1, 1, nil, []mat.Vec{vec(0, 0, 1), vec(1, 1, -1)}), // 0 <= x <= n+1
	)
	h, err := hull.SimpleHull(set)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	// Output: [p0] -> { [i0] : i0 >= 0 and p0 - i0 + 1 >= 0 }
}

// interval builds { lo <= x <= hi } in one dimension.
func interval(lo, hi int64) *poly.BasicSet {
	b := poly.NewBasicSet(poly.SetSpace(0, 1))
	b.AddIneq(vec(-lo, 1))
	b.AddIneq(vec(hi, -1))

	return b
}
