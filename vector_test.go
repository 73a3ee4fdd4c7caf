package fixedvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type d0 struct{}

func (d0) Len() int { return 0 }

type d5 struct{}

func (d5) Len() int { return 5 }

type dNegative struct{}

func (dNegative) Len() int { return -1 }

func TestPredefinedDims(t *testing.T) {
	assert.Equal(t, 1, D1{}.Len())
	assert.Equal(t, 2, D2{}.Len())
	assert.Equal(t, 3, D3{}.Len())
	assert.Equal(t, 4, D4{}.Len())
	assert.Equal(t, 8, D8{}.Len())
	assert.Equal(t, 16, D16{}.Len())
}

func TestSizeInvariant(t *testing.T) {
	src := MustFromValues[float32, d5](1, 2, 3, 4, 5)

	tests := []struct {
		name string
		v    *Vector[float32, d5]
	}{
		{"New", New[float32, d5]()},
		{"Filled", Filled[float32, d5](7)},
		{"FromValues", MustFromValues[float32, d5](5, 4, 3, 2, 1)},
		{"Clone", src.Clone()},
		{"Move", src.Clone().Move()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, 5, tc.v.Size())
			assert.Len(t, tc.v.Data(), 5)
			assert.False(t, tc.v.IsMoved())
		})
	}
}

func TestNewZeroValues(t *testing.T) {
	v := New[int64, D4]()
	assert.Equal(t, []int64{0, 0, 0, 0}, v.Data())
}

func TestFilled(t *testing.T) {
	v := Filled[float64, D2](2.0)
	assert.Equal(t, []float64{2, 2}, v.Data())
}

func TestFromValues(t *testing.T) {
	v, err := FromValues[int, D3](1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v.Data())

	tests := []struct {
		name string
		vals []int
	}{
		{"too few", []int{1, 2}},
		{"too many", []int{1, 2, 3, 4}},
		{"none", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := FromValues[int, D3](tc.vals...)
			assert.Nil(t, v)

			var sm *ErrSizeMismatch
			require.True(t, errors.As(err, &sm))
			assert.Equal(t, 3, sm.Expected)
			assert.Equal(t, len(tc.vals), sm.Actual)
		})
	}
}

func TestMustFromValuesPanics(t *testing.T) {
	assert.Panics(t, func() { MustFromValues[int, D3](1, 2) })
	assert.NotPanics(t, func() { MustFromValues[int, D3](1, 2, 3) })
}

func TestZeroDimension(t *testing.T) {
	v := New[float32, d0]()
	assert.Equal(t, 0, v.Size())
	assert.False(t, v.IsMoved(), "an empty vector is not moved-from")
	assert.Empty(t, v.Data())

	v.AddInPlace(New[float32, d0]()).ScaleInPlace(2)
	assert.Equal(t, "Vector[0][]", v.String())
}

func TestNegativeDimensionPanics(t *testing.T) {
	assert.Panics(t, func() { New[int, dNegative]() })
}

func TestCloneIndependence(t *testing.T) {
	a := MustFromValues[int, D3](1, 2, 3)
	b := a.Clone()

	b.Set(0, 100)
	a.Set(2, -1)

	assert.Equal(t, []int{1, 2, -1}, a.Data())
	assert.Equal(t, []int{100, 2, 3}, b.Data())
}

func TestMoveTransfer(t *testing.T) {
	a := MustFromValues[int, D4](1, 2, 3, 4)
	buf := a.Data()

	b := a.Move()

	assert.Equal(t, []int{1, 2, 3, 4}, b.Data())
	assert.True(t, a.IsMoved())
	assert.Nil(t, a.Data())
	assert.Equal(t, 4, a.Size(), "size stays available on a moved-from vector")

	// No copy: the destination adopted the same buffer.
	buf[0] = 9
	assert.Equal(t, 9, b.At(0))

	// Moving a moved-from vector yields another moved-from vector.
	c := a.Move()
	assert.True(t, c.IsMoved())
}

func TestMovedFromUse(t *testing.T) {
	a := MustFromValues[float64, D2](1, 2)
	_ = a.Move()

	_, err := a.Get(0)
	assert.ErrorIs(t, err, ErrMovedFrom)
	assert.ErrorIs(t, a.Store(0, 1), ErrMovedFrom)

	assert.Panics(t, func() { a.At(0) })
	assert.PanicsWithValue(t, ErrMovedFrom, func() { a.Clone() })
	assert.Equal(t, "Vector[2](moved)", a.String())

	var zero Vector[float64, D2]
	assert.True(t, zero.IsMoved(), "the zero Vector is moved-from")
}

func TestUncheckedAccess(t *testing.T) {
	v := New[int32, D3]()
	v.Set(1, 5)
	*v.Ptr(2) = 7
	assert.Equal(t, int32(5), v.At(1))
	assert.Equal(t, []int32{0, 5, 7}, v.Data())

	assert.Panics(t, func() { v.At(3) })
	assert.Panics(t, func() { v.Set(-1, 0) })
}

func TestCheckedAccess(t *testing.T) {
	v := MustFromValues[uint8, D2](10, 20)

	x, err := v.Get(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(20), x)

	require.NoError(t, v.Store(0, 11))
	assert.Equal(t, uint8(11), v.At(0))

	for _, idx := range []int{-1, 2, 100} {
		_, err := v.Get(idx)
		var oor *ErrIndexOutOfRange
		require.True(t, errors.As(err, &oor), "index %d", idx)
		assert.Equal(t, idx, oor.Index)
		assert.Equal(t, 2, oor.Size)

		assert.Error(t, v.Store(idx, 1))
	}
	assert.Equal(t, []uint8{11, 20}, v.Data(), "failed stores must not write")
}

func TestDataAliases(t *testing.T) {
	v := New[float32, D3]()
	d := v.Data()
	d[1] = 4.5
	assert.Equal(t, float32(4.5), v.At(1))
}

func TestEqual(t *testing.T) {
	a := MustFromValues[int, D3](1, 2, 3)
	b := MustFromValues[int, D3](1, 2, 3)
	c := MustFromValues[int, D3](1, 2, 4)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	m1 := a.Clone()
	m1.Move()
	m2 := b.Clone()
	m2.Move()
	assert.True(t, m1.Equal(m2))
	assert.False(t, m1.Equal(a))
	assert.False(t, a.Equal(m1))
}

func TestString(t *testing.T) {
	v := MustFromValues[int, D3](1, 2, 3)
	assert.Equal(t, "Vector[3][1 2 3]", v.String())
}
