package poly

import (
	"math/big"

	"github.com/katalvlaran/polyset/mat"
)

// Flags records structural knowledge about a basic set.
type Flags uint8

const (
	// FlagEmpty marks a basic set known to be empty.
	FlagEmpty Flags = 1 << iota
	// FlagNoRedundant marks a basic set whose inequalities contain no
	// redundant constraint.
	FlagNoRedundant
	// FlagNoImplicit marks a basic set whose inequalities hide no
	// implicit equality.
	FlagNoImplicit
	// FlagRational marks a basic set interpreted over the rationals;
	// the integer-lattice restriction is dropped.
	FlagRational
	// FlagFinal marks a basic set that has been finalized.
	FlagFinal
)

// DivDef records one integer division d = floor(Row/Den) over the
// variables preceding the div.
type DivDef struct {
	Den *big.Int
	Row mat.Vec
}

// Clone returns a deep copy of the div definition.
func (d DivDef) Clone() DivDef {
	return DivDef{Den: new(big.Int).Set(d.Den), Row: d.Row.Clone()}
}

// BasicSet is a single convex polyhedral piece: a conjunction of
// integer-linear equalities and inequalities over the variables of its
// Space plus its integer divisions.
type BasicSet struct {
	Space Space
	Eq    []mat.Vec
	Ineq  []mat.Vec
	Divs  []DivDef
	Flags Flags
}

// Total returns the number of variables including divs; constraint
// rows have length 1+Total.
func (b *BasicSet) Total() int { return b.Space.Total() + len(b.Divs) }

// NewBasicSet returns a universe basic set in the given space.
func NewBasicSet(space Space) *BasicSet {
	return &BasicSet{Space: space}
}

// EmptyBasicSet returns the canonical empty basic set in the given
// space: the single equality 1 = 0 with the Empty flag set.
func EmptyBasicSet(space Space) *BasicSet {
	b := NewBasicSet(space)

	return b.SetToEmpty()
}

// Clone returns a deep copy of b.
func (b *BasicSet) Clone() *BasicSet {
	c := &BasicSet{Space: b.Space, Flags: b.Flags}
	c.Eq = make([]mat.Vec, len(b.Eq))
	for i, e := range b.Eq {
		c.Eq[i] = e.Clone()
	}
	c.Ineq = make([]mat.Vec, len(b.Ineq))
	for i, n := range b.Ineq {
		c.Ineq[i] = n.Clone()
	}
	c.Divs = make([]DivDef, len(b.Divs))
	for i, d := range b.Divs {
		c.Divs[i] = d.Clone()
	}

	return c
}

// IsEmptyFlag reports whether b is structurally marked empty.
func (b *BasicSet) IsEmptyFlag() bool { return b.Flags&FlagEmpty != 0 }

// IsRational reports whether b is interpreted over the rationals.
func (b *BasicSet) IsRational() bool { return b.Flags&FlagRational != 0 }

// AddEq appends an equality row. The row is taken over, not copied.
func (b *BasicSet) AddEq(row mat.Vec) *BasicSet {
	b.Eq = append(b.Eq, row)
	b.clearComputed()

	return b
}

// AddIneq appends an inequality row. The row is taken over, not copied.
func (b *BasicSet) AddIneq(row mat.Vec) *BasicSet {
	b.Ineq = append(b.Ineq, row)
	b.clearComputed()

	return b
}

// AddEquality appends a copy of c as an equality, as used when slicing
// a set along a bounding hyperplane. Empty basic sets are unchanged.
func (b *BasicSet) AddEquality(c mat.Vec) *BasicSet {
	if b.IsEmptyFlag() {
		return b
	}

	return b.AddEq(c.Clone())
}

// DropIneq removes inequality i, preserving the order of the others.
func (b *BasicSet) DropIneq(i int) {
	b.Ineq = append(b.Ineq[:i], b.Ineq[i+1:]...)
}

// TruncateIneq drops the last n inequalities.
func (b *BasicSet) TruncateIneq(n int) {
	b.Ineq = b.Ineq[:len(b.Ineq)-n]
}

// SetToEmpty replaces the description of b with the canonical empty
// form: the single equality 1 = 0.
func (b *BasicSet) SetToEmpty() *BasicSet {
	row := mat.NewVec(1 + b.Total())
	row[0].SetInt64(1)
	b.Eq = []mat.Vec{row}
	b.Ineq = nil
	b.Flags |= FlagEmpty | FlagNoRedundant | FlagNoImplicit

	return b
}

// SetRational marks b as a rational basic set.
func (b *BasicSet) SetRational() *BasicSet {
	b.Flags |= FlagRational

	return b
}

// Finalize marks b as finalized.
func (b *BasicSet) Finalize() *BasicSet {
	b.Flags |= FlagFinal

	return b
}

// clearComputed drops knowledge flags invalidated by a mutation.
func (b *BasicSet) clearComputed() {
	b.Flags &^= FlagNoRedundant | FlagNoImplicit | FlagFinal
}

// Intersect conjoins the constraints of o onto b. Both operands must
// share the same space and div layout; b is consumed and returned.
func (b *BasicSet) Intersect(o *BasicSet) (*BasicSet, error) {
	if b.Total() != o.Total() {
		return nil, ErrSpaceMismatch
	}
	if o.IsEmptyFlag() {
		return b.SetToEmpty(), nil
	}
	if b.IsEmptyFlag() {
		return b, nil
	}
	for _, e := range o.Eq {
		b.Eq = append(b.Eq, e.Clone())
	}
	for _, n := range o.Ineq {
		b.Ineq = append(b.Ineq, n.Clone())
	}
	b.clearComputed()

	return b, nil
}
