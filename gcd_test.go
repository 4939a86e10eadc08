package rational_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kbolino/rational"
)

type GCDCase struct {
	M, N, D int64
}

var GCDCases = []GCDCase{
	{1, 1, 1},
	{1, 2, 1},
	{2, 2, 2},
	{2, 3, 1},
	{2, 4, 2},
	{2, 6, 2},
	{3, 6, 3},
	{4, 6, 2},
	{6, 6, 6},
	{6, 8, 2},
	{6, 9, 3},
	{24, 120, 24},
	{36, 120, 12},
	{7, 360, 1},
	{7, 14, 7},
	{7, 21, 7},
	{360, 92821, 1},
	{360, 92822, 2},
	{3600, 216000, 3600},
	{123456789, 987654321, 9},
	{P1 * P2 * P3, P2 * P3 * P4, P2 * P3},
	{
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43 * 47,
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43 * 53,
		2 * 3 * 5 * 7 * 11 * 13 * 17 * 19 * 23 * 29 * 31 * 37 * 41 * 43,
	},
	{math.MaxInt64 - 1, math.MaxInt64, 1},
}

var SymGCDCases []GCDCase

func init() {
	SymGCDCases = append(SymGCDCases, GCDCases...)
	for _, c := range GCDCases {
		if c.M == c.N {
			continue
		}
		SymGCDCases = append(SymGCDCases, GCDCase{c.N, c.M, c.D})
	}
}

func TestExtGCD(t *testing.T) {
	for _, c := range SymGCDCases {
		t.Run(fmt.Sprintf("ExtGCD(%d,%d)", c.M, c.N), func(t *testing.T) {
			a, b, d := rational.ExtGCD(c.M, c.N)
			require.Equal(t, c.D, d)
			// the Bézout identity is checked exactly since a*M can exceed int64
			lhs := new(big.Int).Mul(big.NewInt(a), big.NewInt(c.M))
			lhs.Add(lhs, new(big.Int).Mul(big.NewInt(b), big.NewInt(c.N)))
			require.Equal(t, big.NewInt(d).String(), lhs.String())
		})
	}
}

func TestExtGCD_narrow(t *testing.T) {
	a, b, d := rational.ExtGCD[int8](84, 36)
	require.Equal(t, int8(12), d)
	require.Equal(t, int(d), int(a)*84+int(b)*36)

	a16, b16, d16 := rational.ExtGCD[int16](-240, 46)
	require.Equal(t, int16(2), d16)
	require.Equal(t, int(d16), int(a16)*-240+int(b16)*46)
}

func TestGCD(t *testing.T) {
	for _, c := range SymGCDCases {
		t.Run(fmt.Sprintf("GCD(%d,%d)", c.M, c.N), func(t *testing.T) {
			require.Equal(t, c.D, rational.GCD(c.M, c.N))
			require.Equal(t, uint64(c.D), rational.GCD(uint64(c.M), uint64(c.N)))
		})
	}
}

func TestGCD_zeroAndNegative(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(0), rational.GCD[int64](0, 0))
	require.Equal(int64(7), rational.GCD[int64](7, 0))
	require.Equal(int64(7), rational.GCD[int64](0, -7))
	require.Equal(int64(6), rational.GCD[int64](-12, 18))
	require.Equal(int64(6), rational.GCD[int64](12, -18))
	require.Equal(int8(127), rational.GCD[int8](127, -127))
	require.Equal(uint8(5), rational.GCD[uint8](255, 25))
}

func TestExtGCD_zero(t *testing.T) {
	a, b, d := rational.ExtGCD[int32](42, 0)
	require.Equal(t, int32(42), d)
	require.Equal(t, int32(42), a*42+b*0)
}
