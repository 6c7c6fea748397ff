package hull

import "errors"

// Sentinel errors. Callers match them via errors.Is.
var (
	// ErrLPFailure indicates that an LP query failed in a way the
	// enclosing algorithm cannot interpret (neither an optimum nor a
	// meaningful empty/unbounded outcome).
	ErrLPFailure = errors.New("hull: unexpected lp outcome")

	// ErrPrecondition indicates an input that violates a kernel
	// precondition, e.g. a wrapping input that is not bounded or a
	// facet slice that is not full-dimensional.
	ErrPrecondition = errors.New("hull: kernel precondition violated")
)
