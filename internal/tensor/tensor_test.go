package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{4, 100, 8}, 3200},
		{Shape{3, 0, 2}, 0},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, tt.shape.NumElements(), "%v.NumElements()", tt.shape)
	}
}

func TestShapeValidate(t *testing.T) {
	require.NoError(t, Shape{}.Validate())
	require.NoError(t, Shape{2, 0, 3}.Validate())
	assert.ErrorIs(t, Shape{2, -1}.Validate(), ErrInvalidShape)
}

func TestShapeValidate_Overflow(t *testing.T) {
	half := math.MaxInt/2 + 1

	assert.ErrorIs(t, Shape{half, 2}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{half, half}.Validate(), ErrInvalidShape)
	assert.ErrorIs(t, Shape{0, half, 2}.Validate(), ErrInvalidShape)
	require.NoError(t, Shape{half, 1}.Validate())
	require.NoError(t, Shape{half, 0}.Validate())
}

func TestFromSlice_OverflowingShape(t *testing.T) {
	_, err := FromSlice([]float64{}, Shape{math.MaxInt/4 + 1, 4})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "[]", Shape{}.String())
	assert.Equal(t, "[100, 8, 8, 64]", Shape{100, 8, 8, 64}.String())
}

func TestShapeOffsetMatchesStrides(t *testing.T) {
	s := Shape{3, 4, 5}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 5; k++ {
				assert.Equal(t, i*20+j*5+k, s.offset([]int{i, j, k}))
			}
		}
	}
	assert.Equal(t, 20, s.stride(0))
	assert.Equal(t, 5, s.stride(1))
	assert.Equal(t, 1, s.stride(2))
}

func TestResolveAxis(t *testing.T) {
	tests := []struct {
		axis, rank, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
	}
	for _, tt := range tests {
		got, err := ResolveAxis(tt.axis, tt.rank)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []struct{ axis, rank int }{{3, 3}, {-4, 3}, {0, 0}, {-1, 0}} {
		_, err := ResolveAxis(bad.axis, bad.rank)
		assert.ErrorIsf(t, err, ErrAxisOutOfRange, "axis %d rank %d", bad.axis, bad.rank)
	}
}

// Construction Tests

func TestFromSlice(t *testing.T) {
	data := []float32{1, 2, 3, 4, 5, 6}
	x, err := FromSlice(data, Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 6, x.Len())
	assert.Equal(t, x.Shape().NumElements(), x.Len())

	// Ownership moves to the tensor: no copy is made.
	data[0] = 42
	v, err := x.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

func TestFromSlice_ShapeMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = FromSlice([]float64{}, Shape{-1})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestFromSlice_Scalar(t *testing.T) {
	x, err := FromSlice([]int64{7}, Shape{})
	require.NoError(t, err)
	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, int64(7), x.Item())

	v, err := x.Get()
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)
}

func TestShapeIsCopied(t *testing.T) {
	shape := Shape{2, 2}
	x, err := FromSlice([]int{1, 2, 3, 4}, shape)
	require.NoError(t, err)

	shape[0] = 4
	got := x.Shape()
	got[1] = 9
	assert.Equal(t, Shape{2, 2}, x.Shape())
}

// Indexing Tests

func TestGetSet(t *testing.T) {
	x, err := Zeros[float64](2, 3, 4)
	require.NoError(t, err)

	require.NoError(t, x.Set(3.5, 1, 2, 3))
	v, err := x.Get(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	// Row-major: last axis fastest.
	assert.Equal(t, 3.5, x.Data()[1*12+2*4+3])
}

func TestGet_RankMismatch(t *testing.T) {
	x, err := Zeros[float64](2, 3, 4)
	require.NoError(t, err)

	_, err = x.Get(1, 2)
	assert.ErrorIs(t, err, ErrRankMismatch)
	assert.ErrorIs(t, x.Set(1, 0, 0, 0, 0), ErrRankMismatch)
}

func TestGet_IndexOutOfBounds(t *testing.T) {
	x, err := Zeros[int32](3)
	require.NoError(t, err)

	_, err = x.Get(5)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = x.Get(3)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = x.Get(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)

	assert.ErrorIs(t, x.Set(1, 3), ErrIndexOutOfBounds)
	assert.Equal(t, []int32{0, 0, 0}, x.Data(), "failed Set must not write")
}

// Reshape / Clone Tests

func TestReshape(t *testing.T) {
	x, err := FromSlice([]int{0, 1, 2, 3, 4, 5}, Shape{6})
	require.NoError(t, err)

	require.NoError(t, x.Reshape(2, 3))
	assert.Equal(t, Shape{2, 3}, x.Shape())
	v, err := x.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	err = x.Reshape(4, 2)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, Shape{2, 3}, x.Shape(), "failed reshape keeps the old shape")
}

func TestClone(t *testing.T) {
	x, err := FromSlice([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)

	y := x.Clone()
	require.NoError(t, y.Set(9, 0))

	eq, err := x.Equal(y)
	require.NoError(t, err)
	assert.False(t, eq)
	assert.Equal(t, float32(1), x.Data()[0])
}

func TestString(t *testing.T) {
	x, err := Zeros[float32](2, 3)
	require.NoError(t, err)
	assert.Equal(t, "Tensor[float32][2, 3]", x.String())
}

func TestItem_PanicsOnNonScalar(t *testing.T) {
	x, err := Zeros[float32](1)
	require.NoError(t, err)
	assert.Panics(t, func() { x.Item() })
}
