package fixedvec

// CopyFrom copies src's elements into v's existing buffer and returns v.
// A moved-from v gets a fresh buffer first. Panics if src is moved-from.
func (v *Vector[T, D]) CopyFrom(src *Vector[T, D]) *Vector[T, D] {
	if src == v {
		return v
	}
	s := src.live()
	if v.data == nil {
		v.data = alloc[T](len(s))
	}
	copy(v.data, s)
	return v
}

// MoveFrom drops v's buffer, adopts src's and returns v. src is left moved-from.
// Moving v into itself is a no-op.
func (v *Vector[T, D]) MoveFrom(src *Vector[T, D]) *Vector[T, D] {
	if src == v {
		return v
	}
	v.data = src.data
	src.data = nil
	return v
}

// Assign copies exactly N values into v positionally.
// Any other count returns *ErrSizeMismatch and leaves v unchanged.
// A moved-from v gets a fresh buffer first.
func (v *Vector[T, D]) Assign(vals ...T) error {
	n := v.Size()
	if len(vals) != n {
		return &ErrSizeMismatch{Expected: n, Actual: len(vals)}
	}
	if v.data == nil {
		v.data = alloc[T](n)
	}
	copy(v.data, vals)
	return nil
}
