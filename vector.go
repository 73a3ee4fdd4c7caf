package fixedvec

import (
	"fmt"

	"github.com/hupe1980/fixedvec/internal/mem"
)

// Vector is a numeric vector of exactly D{}.Len() elements of type T.
//
// The element buffer is owned exclusively by the vector, allocated 64-byte
// aligned and reclaimed by the garbage collector once neither the vector nor
// any slice returned by Data is reachable.
//
// Type Parameters:
//   - T: element type (any integer or floating-point type)
//   - D: dimension (see Dim)
type Vector[T Number, D Dim] struct {
	data []T // nil once moved-from
}

// alloc returns a zeroed buffer of n elements. A zero-length buffer is
// non-nil so that it is distinguishable from the moved-from state.
func alloc[T Number](n int) []T {
	switch {
	case n < 0:
		panic(fmt.Sprintf("fixedvec: negative dimension %d", n))
	case n == 0:
		return []T{}
	default:
		return mem.Alloc[T](n)
	}
}

// New creates a vector of N zero values.
//
// Example:
//
//	v := fixedvec.New[float32, fixedvec.D4]()
func New[T Number, D Dim]() *Vector[T, D] {
	return &Vector[T, D]{data: alloc[T](dimOf[D]())}
}

// Filled creates a vector with every element set to value.
//
// Example:
//
//	v := fixedvec.Filled[float64, fixedvec.D2](2.0) // [2 2]
func Filled[T Number, D Dim](value T) *Vector[T, D] {
	v := New[T, D]()
	v.Fill(value)
	return v
}

// FromValues creates a vector from exactly N values, copied positionally.
// Any other count returns *ErrSizeMismatch.
func FromValues[T Number, D Dim](vals ...T) (*Vector[T, D], error) {
	v := &Vector[T, D]{}
	if err := v.Assign(vals...); err != nil {
		return nil, err
	}
	return v, nil
}

// MustFromValues is like FromValues but panics on a size mismatch.
// It is intended for literals whose length is known to be right.
func MustFromValues[T Number, D Dim](vals ...T) *Vector[T, D] {
	v, err := FromValues[T, D](vals...)
	if err != nil {
		panic(err)
	}
	return v
}

// live returns the buffer or panics with ErrMovedFrom.
func (v *Vector[T, D]) live() []T {
	if v.data == nil {
		panic(ErrMovedFrom)
	}
	return v.data
}

// Clone creates a deep copy. Panics if v is moved-from.
func (v *Vector[T, D]) Clone() *Vector[T, D] {
	src := v.live()
	data := alloc[T](len(src))
	copy(data, src)
	return &Vector[T, D]{data: data}
}

// Move transfers v's buffer to a new vector without copying.
// v is left moved-from; moving a moved-from vector yields another moved-from vector.
func (v *Vector[T, D]) Move() *Vector[T, D] {
	w := &Vector[T, D]{data: v.data}
	v.data = nil
	return w
}

// Size returns N. It is valid on moved-from vectors.
func (v *Vector[T, D]) Size() int {
	return dimOf[D]()
}

// IsMoved reports whether v is in the moved-from state.
func (v *Vector[T, D]) IsMoved() bool {
	return v.data == nil
}

// Data returns the live buffer (zero-copy), or nil if v is moved-from.
//
// WARNING: the slice aliases the vector. After Move or MoveFrom it no longer
// observes v.
func (v *Vector[T, D]) Data() []T {
	return v.data
}

// At returns element i without an explicit check.
// Out-of-range indices (and moved-from vectors) panic in the runtime.
func (v *Vector[T, D]) At(i int) T {
	return v.data[i]
}

// Set stores x at index i without an explicit check.
func (v *Vector[T, D]) Set(i int, x T) {
	v.data[i] = x
}

// Ptr returns a pointer to element i, the mutable reference to it.
func (v *Vector[T, D]) Ptr(i int) *T {
	return &v.data[i]
}

// Get returns element i, or an error if i is out of range or v is moved-from.
func (v *Vector[T, D]) Get(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Store sets element i, or returns an error if i is out of range or v is moved-from.
func (v *Vector[T, D]) Store(i int, x T) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.data[i] = x
	return nil
}

func (v *Vector[T, D]) check(i int) error {
	if v.data == nil {
		return ErrMovedFrom
	}
	if i < 0 || i >= len(v.data) {
		return &ErrIndexOutOfRange{Index: i, Size: len(v.data)}
	}
	return nil
}

// Equal reports whether v and o hold the same elements.
// Two moved-from vectors are equal; NaN never equals itself.
func (v *Vector[T, D]) Equal(o *Vector[T, D]) bool {
	if v.data == nil || o.data == nil {
		return v.data == nil && o.data == nil
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the vector.
func (v *Vector[T, D]) String() string {
	if v.data == nil {
		return fmt.Sprintf("Vector[%d](moved)", v.Size())
	}
	return fmt.Sprintf("Vector[%d]%v", v.Size(), v.data)
}
