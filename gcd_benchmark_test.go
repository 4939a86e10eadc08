package rational_test

import (
	"fmt"
	"testing"

	"github.com/kbolino/rational"
)

func BenchmarkExtGCD(b *testing.B) {
	for _, c := range GCDCases {
		b.Run(fmt.Sprintf("ExtGCD(%d,%d)", c.M, c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rational.ExtGCD(c.M, c.N)
			}
		})
	}
}

func BenchmarkGCD(b *testing.B) {
	for _, c := range GCDCases {
		m, n := uint64(c.M), uint64(c.N)
		b.Run(fmt.Sprintf("GCD(%d,%d)", c.M, c.N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				rational.GCD(m, n)
			}
		})
	}
}
