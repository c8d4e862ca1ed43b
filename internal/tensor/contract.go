package tensor

import (
	"fmt"

	"github.com/born-ml/ndtensor/internal/parallel"
)

// Dot contracts the last axis of a with the first axis of b.
// It is Contract(a, b, -1, 0).
//
// Example:
//
//	a, _ := tensor.Rand[float64](4, 100, 8)
//	b, _ := tensor.Rand[float64](8, 64, 4)
//	c, _ := tensor.Dot(a, b) // Shape: [4, 100, 64, 4]
func Dot[T DType](a, b *Tensor[T]) (*Tensor[T], error) {
	return Contract(a, b, -1, 0)
}

// Contract multiplies a and b by summing over axisA of a and axisB of b.
//
// Negative axes count from the end. The result has shape
// a.Shape() without axisA followed by b.Shape() without axisB, so its rank is
// a.Rank()+b.Rank()-2; contracting two vectors yields a scalar. A contracted
// axis of size zero yields zeros everywhere.
//
// Example:
//
//	a, _ := tensor.Rand[float64](4, 100, 8)
//	b, _ := tensor.Rand[float64](8, 64, 4)
//	c, _ := tensor.Contract(a, b, 0, 2) // Shape: [100, 8, 8, 64]
func Contract[T DType](a, b *Tensor[T], axisA, axisB int) (*Tensor[T], error) {
	return ContractWith(a, b, axisA, axisB, parallel.Sequential())
}

// ContractWith is Contract with control over parallel execution.
//
// cfg.MinChunkSize is measured in output elements. When parallelism kicks
// in, the outermost output axis is split across workers; the result is
// identical to the sequential one.
func ContractWith[T DType](a, b *Tensor[T], axisA, axisB int, cfg parallel.Config) (*Tensor[T], error) {
	c, err := newContraction(a, b, axisA, axisB)
	if err != nil {
		return nil, err
	}
	c.run(cfg)
	return &Tensor[T]{data: c.out, shape: c.outShape}, nil
}

// axisRef names the operand axis an output axis comes from.
type axisRef struct {
	fromA bool
	axis  int
}

type contraction[T DType] struct {
	a, b         *Tensor[T]
	axisA, axisB int
	size         int // length of the contracted axis
	strideA      int
	strideB      int
	outShape     Shape
	outAxes      []axisRef
	out          []T
}

func newContraction[T DType](a, b *Tensor[T], axisA, axisB int) (*contraction[T], error) {
	ra, err := ResolveAxis(axisA, a.Rank())
	if err != nil {
		return nil, fmt.Errorf("contract: first operand %v: %w", a.shape, err)
	}
	rb, err := ResolveAxis(axisB, b.Rank())
	if err != nil {
		return nil, fmt.Errorf("contract: second operand %v: %w", b.shape, err)
	}
	if a.shape[ra] != b.shape[rb] {
		return nil, fmt.Errorf("%w: axis %d of %v (size %d) vs axis %d of %v (size %d)",
			ErrIncompatibleAxes, ra, a.shape, a.shape[ra], rb, b.shape, b.shape[rb])
	}

	outShape := append(a.shape.without(ra), b.shape.without(rb)...)
	if err := outShape.Validate(); err != nil {
		return nil, fmt.Errorf("contract: result: %w", err)
	}
	outAxes := make([]axisRef, 0, len(outShape))
	for axis := range a.shape {
		if axis != ra {
			outAxes = append(outAxes, axisRef{fromA: true, axis: axis})
		}
	}
	for axis := range b.shape {
		if axis != rb {
			outAxes = append(outAxes, axisRef{fromA: false, axis: axis})
		}
	}

	return &contraction[T]{
		a:        a,
		b:        b,
		axisA:    ra,
		axisB:    rb,
		size:     a.shape[ra],
		strideA:  a.shape.stride(ra),
		strideB:  b.shape.stride(rb),
		outShape: outShape,
		outAxes:  outAxes,
		out:      make([]T, outShape.NumElements()),
	}, nil
}

// cursor is the per-goroutine scratch of a contraction: one full-rank index
// per operand and the next output position to write.
type cursor struct {
	idxA []int
	idxB []int
	pos  int
}

func (c *contraction[T]) newCursor() *cursor {
	return &cursor{
		idxA: make([]int, c.a.Rank()),
		idxB: make([]int, c.b.Rank()),
	}
}

func (c *contraction[T]) run(cfg parallel.Config) {
	if len(c.outShape) == 0 || len(c.out) == 0 {
		c.visit(c.newCursor(), 0)
		return
	}

	rows := c.outShape[0]
	rowLen := len(c.out) / rows
	rowCfg := cfg
	rowCfg.MinChunkSize = (cfg.MinChunkSize + rowLen - 1) / rowLen

	parallel.ForRange(rows, func(start, end int) {
		cur := c.newCursor()
		ref := c.outAxes[0]
		for r := start; r < end; r++ {
			c.index(cur, ref)[ref.axis] = r
			cur.pos = r * rowLen
			c.visit(cur, 1)
		}
	}, rowCfg)
}

func (c *contraction[T]) index(cur *cursor, ref axisRef) []int {
	if ref.fromA {
		return cur.idxA
	}
	return cur.idxB
}

// visit enumerates output axes depth-first from axis d, last axis fastest,
// so leaves are reached in row-major output order.
func (c *contraction[T]) visit(cur *cursor, d int) {
	if d == len(c.outShape) {
		c.accumulate(cur)
		return
	}
	ref := c.outAxes[d]
	idx := c.index(cur, ref)
	for i := 0; i < c.outShape[d]; i++ {
		idx[ref.axis] = i
		c.visit(cur, d+1)
	}
}

// accumulate sums products along the contracted axis for the current
// indices and writes the output cell at cur.pos.
func (c *contraction[T]) accumulate(cur *cursor) {
	cur.idxA[c.axisA] = 0
	cur.idxB[c.axisB] = 0
	offA := c.a.shape.offset(cur.idxA)
	offB := c.b.shape.offset(cur.idxB)

	var sum T
	for k := 0; k < c.size; k++ {
		sum += c.a.data[offA] * c.b.data[offB]
		offA += c.strideA
		offB += c.strideB
	}
	c.out[cur.pos] = sum
	cur.pos++
}
