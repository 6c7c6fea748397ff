package poly

// Space describes the dimension layout of a set or map: symbolic
// parameters, input dimensions and output dimensions. Plain sets use
// In == 0 and keep their dimensions in Out. Integer divisions are
// carried per basic piece, not in the Space.
//
// Constraint rows are laid out as
//
//	[ constant | params | in | out | divs ]
type Space struct {
	Param int
	In    int
	Out   int
}

// SetSpace returns the space of a plain set with the given number of
// parameters and dimensions.
func SetSpace(param, dim int) Space {
	return Space{Param: param, Out: dim}
}

// MapSpace returns the space of a map with the given number of
// parameters, input and output dimensions.
func MapSpace(param, in, out int) Space {
	return Space{Param: param, In: in, Out: out}
}

// Dim returns the number of set dimensions (in + out).
func (s Space) Dim() int { return s.In + s.Out }

// Total returns the number of variables excluding divs.
func (s Space) Total() int { return s.Param + s.In + s.Out }

// Flat returns the space of the underlying plain set in which every
// variable (params, in, out and n divs) becomes an anonymous set
// dimension.
func (s Space) Flat(nDiv int) Space {
	return SetSpace(0, s.Total()+nDiv)
}
