// Package fixedvec provides Vector[T, D], a numeric vector whose dimension is
// part of its type.
//
// # Overview
//
// The dimension N comes from the type parameter D, a zero-size type with a
// Len method. Vectors of different dimensions are different types, so adding
// a 3-vector to a 4-vector does not compile:
//
//	a := fixedvec.MustFromValues[int, fixedvec.D3](1, 2, 3)
//	b := fixedvec.MustFromValues[int, fixedvec.D3](4, 5, 6)
//	a.AddInPlace(b) // a = [5 7 9]
//
// Custom dimensions are declared the same way as the predefined ones:
//
//	type D6 struct{}
//
//	func (D6) Len() int { return 6 }
//
// # Construction
//
//   - New: N zero values
//   - Filled: N copies of one value
//   - FromValues / MustFromValues: exactly N values, checked
//   - Clone: deep copy
//   - Move: transfers the buffer, leaving the source moved-from
//
// # Access
//
// At, Set and Ptr are the unchecked fast path; an out-of-range index panics
// through the runtime's own bounds check. Get and Store are the checked path
// and return *ErrIndexOutOfRange or ErrMovedFrom instead.
//
// # Arithmetic
//
// AddInPlace, SubInPlace, ScaleInPlace and DivInPlace mutate the receiver and
// return it, so calls chain left to right:
//
//	a.AddInPlace(b).SubInPlace(c).ScaleInPlace(0.5)
//
// Division by zero follows Go: floats produce ±Inf or NaN, integers panic.
// Integer overflow wraps.
//
// # Moved-from vectors
//
// After Move or MoveFrom the source owns no buffer. Only Size, IsMoved, the
// checked accessors and reassignment (CopyFrom, MoveFrom, Assign) are valid
// on it. The zero Vector is also moved-from.
//
// # Concurrency
//
// A Vector is not safe for concurrent use. The batch package runs operations
// over many distinct vectors in parallel.
package fixedvec
