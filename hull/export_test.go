package hull

// Internal kernels exported for white-box tests.
var (
	UsetConvexHullElim = usetConvexHullElim
	UsetConvexHullWrap = usetConvexHullWrap
	SetIsBounded       = setIsBounded
)
