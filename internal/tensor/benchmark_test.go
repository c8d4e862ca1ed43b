package tensor

import (
	"fmt"
	"testing"

	"github.com/born-ml/ndtensor/internal/parallel"
)

func BenchmarkElementwise(b *testing.B) {
	for _, size := range []int{128, 512} {
		x, _ := Rand[float64](size, size)
		y, _ := Rand[float64](size, size)

		b.Run(fmt.Sprintf("Add_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Add(y)
			}
		})

		b.Run(fmt.Sprintf("Mul_%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = x.Mul(y)
			}
		})
	}
}

func BenchmarkContract(b *testing.B) {
	x, _ := Rand[float64](4, 100, 8)
	y, _ := Rand[float64](8, 64, 4)

	b.Run("default_axes", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Dot(x, y)
		}
	})

	b.Run("axes_0_2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = Contract(x, y, 0, 2)
		}
	})

	b.Run("axes_0_2_parallel", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			_, _ = ContractWith(x, y, 0, 2, cfg)
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape := Shape{4, 100, 64, 4}
	idx := []int{3, 99, 63, 3}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.NumElements()
		}
	})

	b.Run("offset", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape.offset(idx)
		}
	})
}
