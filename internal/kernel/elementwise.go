package kernel

import "golang.org/x/exp/constraints"

// Number is the set of element types the kernels operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// lanes is the unroll width of the wide loops.
const lanes = 8

// unrolled selects the wide loops. Written once by activate.
var unrolled bool

func activate(isa ISA) {
	activeISA = isa
	unrolled = isa != Generic
}

// ============================================================================
// Public API
// ============================================================================

// Add computes dst[i] += src[i] for every i in dst.
//
// SAFETY: Assumes len(src) >= len(dst). Caller MUST ensure lengths match.
func Add[T Number](dst, src []T) {
	if unrolled {
		AddUnrolled(dst, src)
		return
	}
	AddGeneric(dst, src)
}

// Sub computes dst[i] -= src[i] for every i in dst.
//
// SAFETY: Assumes len(src) >= len(dst). Caller MUST ensure lengths match.
func Sub[T Number](dst, src []T) {
	if unrolled {
		SubUnrolled(dst, src)
		return
	}
	SubGeneric(dst, src)
}

// Scale computes dst[i] *= s for every i in dst.
func Scale[T Number](dst []T, s T) {
	if unrolled {
		ScaleUnrolled(dst, s)
		return
	}
	ScaleGeneric(dst, s)
}

// Div computes dst[i] /= s for every i in dst.
// Division by zero is not intercepted: floats yield ±Inf or NaN,
// integers panic with the runtime's divide error.
func Div[T Number](dst []T, s T) {
	if unrolled {
		DivUnrolled(dst, s)
		return
	}
	DivGeneric(dst, s)
}

// Fill sets every element of dst to v.
func Fill[T Number](dst []T, v T) {
	if unrolled {
		FillUnrolled(dst, v)
		return
	}
	FillGeneric(dst, v)
}

// Swap exchanges a[i] and b[i] for every i in a.
//
// SAFETY: Assumes len(b) >= len(a).
func Swap[T Number](a, b []T) {
	if unrolled {
		SwapUnrolled(a, b)
		return
	}
	SwapGeneric(a, b)
}

// ============================================================================
// Plain loops
// ============================================================================

// AddGeneric is the plain-loop Add.
func AddGeneric[T Number](dst, src []T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] += src[i]
	}
}

// SubGeneric is the plain-loop Sub.
func SubGeneric[T Number](dst, src []T) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] -= src[i]
	}
}

// ScaleGeneric is the plain-loop Scale.
func ScaleGeneric[T Number](dst []T, s T) {
	for i := range dst {
		dst[i] *= s
	}
}

// DivGeneric is the plain-loop Div.
func DivGeneric[T Number](dst []T, s T) {
	for i := range dst {
		dst[i] /= s
	}
}

// FillGeneric is the plain-loop Fill.
func FillGeneric[T Number](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}

// SwapGeneric is the plain-loop Swap.
func SwapGeneric[T Number](a, b []T) {
	b = b[:len(a)]
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// ============================================================================
// Unrolled loops
//
// Each block reslices both operands to exactly `lanes` elements so the
// compiler drops the per-element bounds checks inside the block.
// ============================================================================

// AddUnrolled is Add processing 8 elements per iteration.
func AddUnrolled[T Number](dst, src []T) {
	n := len(dst)
	src = src[:n]
	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		s := src[i : i+lanes : i+lanes]
		d[0] += s[0]
		d[1] += s[1]
		d[2] += s[2]
		d[3] += s[3]
		d[4] += s[4]
		d[5] += s[5]
		d[6] += s[6]
		d[7] += s[7]
	}
	for ; i < n; i++ {
		dst[i] += src[i]
	}
}

// SubUnrolled is Sub processing 8 elements per iteration.
func SubUnrolled[T Number](dst, src []T) {
	n := len(dst)
	src = src[:n]
	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		s := src[i : i+lanes : i+lanes]
		d[0] -= s[0]
		d[1] -= s[1]
		d[2] -= s[2]
		d[3] -= s[3]
		d[4] -= s[4]
		d[5] -= s[5]
		d[6] -= s[6]
		d[7] -= s[7]
	}
	for ; i < n; i++ {
		dst[i] -= src[i]
	}
}

// ScaleUnrolled is Scale processing 8 elements per iteration.
func ScaleUnrolled[T Number](dst []T, s T) {
	n := len(dst)
	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		d[0] *= s
		d[1] *= s
		d[2] *= s
		d[3] *= s
		d[4] *= s
		d[5] *= s
		d[6] *= s
		d[7] *= s
	}
	for ; i < n; i++ {
		dst[i] *= s
	}
}

// DivUnrolled is Div processing 8 elements per iteration.
func DivUnrolled[T Number](dst []T, s T) {
	n := len(dst)
	i := 0
	for ; i+lanes <= n; i += lanes {
		d := dst[i : i+lanes : i+lanes]
		d[0] /= s
		d[1] /= s
		d[2] /= s
		d[3] /= s
		d[4] /= s
		d[5] /= s
		d[6] /= s
		d[7] /= s
	}
	for ; i < n; i++ {
		dst[i] /= s
	}
}

// FillUnrolled seeds the first element and doubles the filled prefix with copy.
func FillUnrolled[T Number](dst []T, v T) {
	if len(dst) == 0 {
		return
	}
	dst[0] = v
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
}

// SwapUnrolled is Swap processing 8 elements per iteration.
func SwapUnrolled[T Number](a, b []T) {
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+lanes <= n; i += lanes {
		x := a[i : i+lanes : i+lanes]
		y := b[i : i+lanes : i+lanes]
		x[0], y[0] = y[0], x[0]
		x[1], y[1] = y[1], x[1]
		x[2], y[2] = y[2], x[2]
		x[3], y[3] = y[3], x[3]
		x[4], y[4] = y[4], x[4]
		x[5], y[5] = y[5], x[5]
		x[6], y[6] = y[6], x[6]
		x[7], y[7] = y[7], x[7]
	}
	for ; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
}
