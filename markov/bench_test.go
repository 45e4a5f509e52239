package markov_test

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/absorb/markov"
)

var sinkInts []*big.Int

func BenchmarkSolve(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{5, 10, 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			w := RandomChain(rand.New(rand.NewSource(99)), n, n/3+1, 9)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				out, err := markov.Solve(w, 0)
				if err != nil {
					b.Fatal(err)
				}
				sinkInts = out
			}
		})
	}
}
