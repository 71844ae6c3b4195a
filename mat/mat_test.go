package mat

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/densekern/go-densekern/lane"
)

func TestAlignedSlice(t *testing.T) {
	for _, count := range []int{1, 7, 8, 63, 64, 65, 1000, 3000 * 3000 / 1024} {
		s, err := AlignedSlice[int32](count, Alignment)
		require.NoError(t, err, "count %d", count)
		require.Len(t, s, count)

		addr := uintptr(unsafe.Pointer(&s[0]))
		assert.Zerof(t, addr%Alignment, "count %d: base %#x not %d-byte aligned", count, addr, Alignment)
		assert.True(t, SliceAligned(s, Alignment))

		// Capacity is clipped so appends cannot reuse the slack.
		assert.Equal(t, count, cap(s))
	}
}

func TestAlignedSliceZeroed(t *testing.T) {
	s, err := AlignedSlice[int32](256, 32)
	require.NoError(t, err)
	for i, v := range s {
		require.Zerof(t, v, "element %d not zeroed", i)
	}
}

func TestAlignedSliceEmpty(t *testing.T) {
	s, err := AlignedSlice[int32](0, Alignment)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestAlignedSliceErrors(t *testing.T) {
	_, err := AlignedSlice[int32](16, 0)
	assert.ErrorIs(t, err, ErrBadAlignment)

	_, err = AlignedSlice[int32](16, 48) // not a power of two
	assert.ErrorIs(t, err, ErrBadAlignment)

	_, err = AlignedSlice[int64](16, 4) // smaller than element size
	assert.ErrorIs(t, err, ErrBadAlignment)

	_, err = AlignedSlice[int32](-1, Alignment)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestNewMatrix(t *testing.T) {
	m, err := NewMatrix[int32](5, 13)
	require.NoError(t, err)

	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 13, m.Cols())
	assert.Equal(t, lane.AlignedSize[int32](13), m.Stride())
	assert.GreaterOrEqual(t, m.Stride(), m.Cols())
	assert.True(t, m.Aligned())

	m.Set(2, 11, 42)
	assert.Equal(t, int32(42), m.At(2, 11))
	assert.Equal(t, int32(42), m.Row(2)[11])
	assert.Len(t, m.Row(2), 13)
}

func TestNewMatrixDegenerate(t *testing.T) {
	m, err := NewMatrix[int32](0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.True(t, m.Aligned())

	_, err = NewMatrix[int32](-1, 3)
	assert.ErrorIs(t, err, ErrBadSize)
}

func TestFromSlice(t *testing.T) {
	data := []int32{1, 2, 3, 4, 5, 6}
	m, err := FromSlice(data, 2, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Stride())
	assert.Equal(t, int32(6), m.At(1, 2))

	// Writes are visible to the caller: no copy was made.
	m.Set(0, 0, 9)
	assert.Equal(t, int32(9), data[0])

	_, err = FromSlice(data, 3, 3)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFill(t *testing.T) {
	m, err := NewMatrix[int32](4, 9)
	require.NoError(t, err)

	m.Fill(7)
	for i := range m.Rows() {
		for _, v := range m.Row(i) {
			require.Equal(t, int32(7), v)
		}
	}
}

func TestClone(t *testing.T) {
	m, err := NewMatrix[int32](3, 5)
	require.NoError(t, err)
	m.Set(1, 4, 11)

	c, err := m.Clone()
	require.NoError(t, err)
	assert.Equal(t, int32(11), c.At(1, 4))
	assert.False(t, m.Overlaps(c))

	c.Set(1, 4, 12)
	assert.Equal(t, int32(11), m.At(1, 4))
}

func TestOverlaps(t *testing.T) {
	data := make([]int32, 12)
	a, err := FromSlice(data, 2, 3)
	require.NoError(t, err)
	b, err := FromSlice(data[3:], 3, 3)
	require.NoError(t, err)

	assert.True(t, a.Overlaps(b))

	c, err := NewMatrix[int32](2, 3)
	require.NoError(t, err)
	assert.False(t, a.Overlaps(c))
}
