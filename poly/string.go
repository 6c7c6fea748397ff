package poly

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/polyset/mat"
)

// varName returns the display name of variable column i of the space:
// parameters p0.., inputs in0.., outputs/dims i0.., divs e0...
func varName(sp Space, nDiv, i int) string {
	switch {
	case i < sp.Param:
		return fmt.Sprintf("p%d", i)
	case i < sp.Param+sp.In:
		return fmt.Sprintf("in%d", i-sp.Param)
	case i < sp.Total():
		return fmt.Sprintf("i%d", i-sp.Param-sp.In)
	default:
		return fmt.Sprintf("e%d", i-sp.Total())
	}
}

// formatAffine renders c0 + Σ ci*xi in a human-readable form.
func formatAffine(row mat.Vec, sp Space, nDiv int) string {
	var sb strings.Builder
	total := sp.Total() + nDiv
	abs := new(big.Int)
	for i := 0; i < total; i++ {
		c := row[1+i]
		if c.Sign() == 0 {
			continue
		}
		if sb.Len() == 0 {
			if c.Sign() < 0 {
				sb.WriteByte('-')
			}
		} else if c.Sign() < 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(" + ")
		}
		abs.Abs(c)
		if abs.Cmp(bigOne) != 0 {
			sb.WriteString(abs.String())
		}
		sb.WriteString(varName(sp, nDiv, i))
	}
	c0 := row[0]
	switch {
	case sb.Len() == 0:
		sb.WriteString(c0.String())
	case c0.Sign() > 0:
		sb.WriteString(" + ")
		sb.WriteString(c0.String())
	case c0.Sign() < 0:
		sb.WriteString(" - ")
		sb.WriteString(abs.Abs(c0).String())
	}

	return sb.String()
}

// String renders b in a readable constraint form, e.g.
// "{ [i0, i1] : i0 >= 0 and -i0 + 5 >= 0 }".
func (b *BasicSet) String() string {
	var sb strings.Builder
	sp := b.Space
	if sp.Param > 0 {
		names := make([]string, sp.Param)
		for i := range names {
			names[i] = fmt.Sprintf("p%d", i)
		}
		sb.WriteString("[" + strings.Join(names, ", ") + "] -> ")
	}
	dims := make([]string, sp.Dim())
	for i := range dims {
		dims[i] = varName(sp, len(b.Divs), sp.Param+i)
	}
	sb.WriteString("{ [" + strings.Join(dims, ", ") + "]")
	if b.IsEmptyFlag() {
		sb.WriteString(" : false }")
		return sb.String()
	}
	var cons []string
	for _, e := range b.Eq {
		cons = append(cons, formatAffine(e, sp, len(b.Divs))+" = 0")
	}
	for _, n := range b.Ineq {
		cons = append(cons, formatAffine(n, sp, len(b.Divs))+" >= 0")
	}
	if len(cons) > 0 {
		sb.WriteString(" : " + strings.Join(cons, " and "))
	}
	sb.WriteString(" }")

	return sb.String()
}

// String renders the union part by part, joined with "or".
func (s *Set) String() string {
	if len(s.P) == 0 {
		return "{ }"
	}
	parts := make([]string, len(s.P))
	for i, p := range s.P {
		parts[i] = p.String()
	}

	return strings.Join(parts, " or ")
}

// String renders a basic map with its input/output split, e.g.
// "{ [in0] -> [i0] : ... }".
func (b *BasicMap) String() string {
	if b.Space.In == 0 {
		return b.BasicSet.String()
	}
	flat := b.BasicSet.String()
	ins := make([]string, b.Space.In)
	for i := range ins {
		ins[i] = varName(b.Space, len(b.Divs), b.Space.Param+i)
	}
	outs := make([]string, b.Space.Out)
	for i := range outs {
		outs[i] = varName(b.Space, len(b.Divs), b.Space.Param+b.Space.In+i)
	}
	head := "[" + strings.Join(ins, ", ") + "] -> [" + strings.Join(outs, ", ") + "]"
	brace := strings.Index(flat, "{ [")
	end := strings.Index(flat[brace:], "]") + brace

	return flat[:brace+2] + head + flat[end+1:]
}
