package mem

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// Scalar is the set of pointer-free element types Alloc may hand out.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
// A size <= 0 returns nil.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Over-allocate so the start can be shifted up by at most Alignment-1 bytes.
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	return buf[offset : offset+uintptr(size)]
}

// Alloc allocates n zeroed elements of T with 64-byte alignment.
// The returned slice has len and cap n. An n <= 0 returns nil.
//
// T is restricted to pointer-free scalars: the memory is reinterpreted from
// a byte slice, which the garbage collector does not scan.
func Alloc[T Scalar](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	raw := AllocAligned(n * size)

	ptr := unsafe.Pointer(&raw[0]) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)
}
