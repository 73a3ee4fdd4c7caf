package fixedvec

import (
	"iter"
	"unsafe"
)

// All returns an iterator over index/value pairs in index order.
func (v *Vector[T, D]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in index order.
func (v *Vector[T, D]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/value pairs from N-1 down to 0.
func (v *Vector[T, D]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(v.data) - 1; i >= 0; i-- {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Cursor is a positional iterator over a vector's buffer.
//
// Forward cursors run from Begin (index 0) to End (index N); reverse cursors
// run from RBegin (index N-1) to REnd (index -1). End and REnd are past the
// last element and must not be dereferenced. A cursor keeps referring to the
// buffer it was created from, even after the vector moves it away.
//
//	for c := v.Begin(); !c.Equal(v.End()); c = c.Next() {
//		c.Set(c.Get() * 2)
//	}
type Cursor[T Number] struct {
	data []T
	pos  int
	step int
}

// Begin returns a forward cursor at index 0.
func (v *Vector[T, D]) Begin() Cursor[T] {
	return Cursor[T]{data: v.data, pos: 0, step: 1}
}

// End returns the forward cursor one past the last element.
func (v *Vector[T, D]) End() Cursor[T] {
	return Cursor[T]{data: v.data, pos: len(v.data), step: 1}
}

// RBegin returns a reverse cursor at index N-1.
func (v *Vector[T, D]) RBegin() Cursor[T] {
	return Cursor[T]{data: v.data, pos: len(v.data) - 1, step: -1}
}

// REnd returns the reverse cursor one before index 0.
func (v *Vector[T, D]) REnd() Cursor[T] {
	return Cursor[T]{data: v.data, pos: -1, step: -1}
}

// Index returns the buffer index the cursor points at.
func (c Cursor[T]) Index() int {
	return c.pos
}

// Get returns the element under the cursor.
func (c Cursor[T]) Get() T {
	return c.data[c.pos]
}

// Set overwrites the element under the cursor.
func (c Cursor[T]) Set(x T) {
	c.data[c.pos] = x
}

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T {
	return &c.data[c.pos]
}

// Next returns the cursor advanced one step in its direction.
func (c Cursor[T]) Next() Cursor[T] {
	c.pos += c.step
	return c
}

// Advance returns the cursor moved n steps in its direction.
func (c Cursor[T]) Advance(n int) Cursor[T] {
	c.pos += n * c.step
	return c
}

// Equal reports whether both cursors walk the same buffer in the same
// direction and point at the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.pos == o.pos && c.step == o.step && unsafe.SliceData(c.data) == unsafe.SliceData(o.data)
}
