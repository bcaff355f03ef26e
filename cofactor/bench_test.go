package cofactor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lintrace/cofactor"
	"github.com/katalvlaran/lintrace/matrix"
)

// Sizes stay small: cofactor expansion is factorial in n.
func BenchmarkInvert(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{3, 5, 7} {
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, n)
			for j := range rows[i] {
				rows[i][j] = int64(rng.Intn(19) - 9)
			}
		}
		m, err := matrix.FromInts(rows)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := cofactor.Invert(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
