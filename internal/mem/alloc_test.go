package mem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func assertAligned[T any](t *testing.T, buf []T, size int) {
	t.Helper()
	addr := uintptr(unsafe.Pointer(&buf[0]))
	assert.Equal(t, uintptr(0), addr%Alignment, "Address %d should be aligned to %d for size %d", addr, Alignment, size)
}

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assertAligned(t, buf, size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAllocFloat32(t *testing.T) {
	for _, n := range []int{1, 3, 16, 17, 100} {
		buf := Alloc[float32](n)
		assert.Len(t, buf, n)
		assert.Equal(t, n, cap(buf))
		assertAligned(t, buf, n)
		for _, v := range buf {
			assert.Zero(t, v)
		}
	}

	assert.Nil(t, Alloc[float32](0))
	assert.Nil(t, Alloc[float32](-1))
}

func TestAllocWideAndNarrowTypes(t *testing.T) {
	f := Alloc[float64](5)
	assertAligned(t, f, 5)
	f[4] = 2.5
	assert.Equal(t, 2.5, f[4])

	b := Alloc[int8](65)
	assertAligned(t, b, 65)
	b[64] = -1
	assert.Equal(t, int8(-1), b[64])

	u := Alloc[uint64](2)
	u[0], u[1] = 1<<63, 7
	assert.Equal(t, []uint64{1 << 63, 7}, u)
}

func TestAllocCapacityIsExact(t *testing.T) {
	buf := Alloc[int32](4)
	buf = append(buf, 5)
	// append must reallocate rather than write into alignment padding.
	assert.Equal(t, []int32{0, 0, 0, 0, 5}, buf)
}

func BenchmarkAllocAligned(b *testing.B) {
	sizes := []int{64, 256, 1024, 4096}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("size=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = AllocAligned(size)
			}
		})
	}
}

func BenchmarkAllocFloat64(b *testing.B) {
	sizes := []int{2, 3, 4, 16}
	for _, size := range sizes {
		b.Run(fmt.Sprintf("n=%d", size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Alloc[float64](size)
			}
		})
	}
}
