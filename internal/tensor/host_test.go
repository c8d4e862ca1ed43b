package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromNested(t *testing.T) {
	x, err := FromNested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())
}

func TestFromNested_Arrays(t *testing.T) {
	x, err := FromNested[int32]([2][2][1]int32{{{1}, {2}}, {{3}, {4}}})
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 2, 1}, x.Shape())
	assert.Equal(t, []int32{1, 2, 3, 4}, x.Data())
}

func TestFromNested_Scalar(t *testing.T) {
	x, err := FromNested[float32](float32(2.5))
	require.NoError(t, err)

	assert.Equal(t, 0, x.Rank())
	assert.Equal(t, float32(2.5), x.Item())
}

func TestFromNested_Empty(t *testing.T) {
	x, err := FromNested[float64]([][]float64{})
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 0}, x.Shape())

	y, err := FromNested[float64]([][3]float64{})
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 3}, y.Shape())
}

func TestFromNested_Ragged(t *testing.T) {
	_, err := FromNested[int]([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestFromNested_WrongLeafType(t *testing.T) {
	_, err := FromNested[float32]([][]float64{{1}})
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = FromNested[float64](nil)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = FromNested[float64]([]any{1.0})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestNestedRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"vector", []float64{1, 2, 3}},
		{"matrix", [][]float64{{1, 2}, {3, 4}, {5, 6}}},
		{"rank3", [][][]float64{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}}},
		{"zero inner", [][]float64{{}, {}}},
		{"scalar", 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := FromNested[float64](tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.in, x.ToNested())
		})
	}
}

func TestToNested_IsCopy(t *testing.T) {
	x := mustFromSlice(t, []int{1, 2, 3, 4}, 2, 2)

	nested := x.ToNested().([][]int)
	nested[0][0] = 99
	assert.Equal(t, 1, x.Data()[0])
}

func TestDenseRoundTrip(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	x := FromDense(m)
	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, x.Data())

	back, err := ToDense(x)
	require.NoError(t, err)
	assert.True(t, mat.Equal(m, back))
}

func TestFromDense_Transposed(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})

	x := FromDense(m.T())
	assert.Equal(t, Shape{3, 2}, x.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, x.Data())
}

func TestToDense_Errors(t *testing.T) {
	v := mustFromSlice(t, []int32{1, 2, 3}, 3)
	_, err := ToDense(v)
	assert.ErrorIs(t, err, ErrRankMismatch)

	empty := mustFromSlice(t, []int32{}, 0, 3)
	_, err = ToDense(empty)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestToDense_ConvertsIntegers(t *testing.T) {
	x := mustFromSlice(t, []int64{1, 2, 3, 4}, 2, 2)

	m, err := ToDense(x)
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.At(1, 1))
}
