package fixedvec

import "github.com/hupe1980/fixedvec/internal/kernel"

// Fill sets every element to value.
func (v *Vector[T, D]) Fill(value T) {
	kernel.Fill(v.live(), value)
}

// Swap exchanges the elements of v and o index by index.
// Each vector keeps its own buffer, so cursors and Data slices keep
// observing the vector they came from.
func (v *Vector[T, D]) Swap(o *Vector[T, D]) {
	kernel.Swap(v.live(), o.live())
}

// AddInPlace computes v[i] += o[i] and returns v.
func (v *Vector[T, D]) AddInPlace(o *Vector[T, D]) *Vector[T, D] {
	kernel.Add(v.live(), o.live())
	return v
}

// SubInPlace computes v[i] -= o[i] and returns v.
func (v *Vector[T, D]) SubInPlace(o *Vector[T, D]) *Vector[T, D] {
	kernel.Sub(v.live(), o.live())
	return v
}

// ScaleInPlace computes v[i] *= s and returns v.
func (v *Vector[T, D]) ScaleInPlace(s T) *Vector[T, D] {
	kernel.Scale(v.live(), s)
	return v
}

// DivInPlace computes v[i] /= s and returns v.
// A zero s yields ±Inf/NaN for floats and a runtime panic for integers.
func (v *Vector[T, D]) DivInPlace(s T) *Vector[T, D] {
	kernel.Div(v.live(), s)
	return v
}
