package lp

import (
	"errors"

	"github.com/katalvlaran/polyset/mat"
)

// Status is the algorithmic outcome of an LP query.
type Status int

const (
	// StatusOK means a finite optimum was found.
	StatusOK Status = iota
	// StatusEmpty means the constraint system is infeasible.
	StatusEmpty
	// StatusUnbounded means the objective is unbounded below.
	StatusUnbounded
)

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// Problem is a conjunction of equalities and inequalities over NVar
// free variables. Rows have length 1+NVar with the constant in
// column 0. The rows are read, never written.
type Problem struct {
	NVar int
	Eq   []mat.Vec
	Ineq []mat.Vec
}

// Sentinel errors.
var (
	// ErrBadProblem indicates a malformed problem: a row or objective
	// whose length does not match NVar, or a negative NVar.
	ErrBadProblem = errors.New("lp: malformed problem")
)
