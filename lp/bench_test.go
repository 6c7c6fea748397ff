package lp_test

import (
	"testing"

	"github.com/katalvlaran/polyset/lp"
	"github.com/katalvlaran/polyset/mat"
)

// BenchmarkMinBox measures a small 2-variable minimization.
func BenchmarkMinBox(b *testing.B) {
	p := lp.Problem{
		NVar: 2,
		Ineq: []mat.Vec{
			vec(0, 1, 0), vec(7, -1, 0), vec(0, 0, 1), vec(7, 0, -1),
		},
	}
	obj := vec(0, 1, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := lp.Min(p, obj); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConeIsBounded measures the recession-cone probe.
func BenchmarkConeIsBounded(b *testing.B) {
	p := lp.Problem{
		NVar: 2,
		Ineq: []mat.Vec{
			vec(0, 1, 0), vec(7, -1, 0), vec(0, 0, 1), vec(7, 0, -1),
		},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lp.ConeIsBounded(p); err != nil {
			b.Fatal(err)
		}
	}
}
