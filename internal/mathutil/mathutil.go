// Package mathutil contains big integer helpers shared by the rational number types.
package mathutil

import (
	"math/big"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	bigTen = big.NewInt(10)
)

// Pow10 returns a newly allocated 10^pow.
// For negative pow the result is 0.
func Pow10(pow int) *big.Int {
	if pow < 0 {
		return new(big.Int)
	}
	if pow < len(decimalFactorTable) {
		return new(big.Int).SetUint64(decimalFactorTable[pow])
	}
	return new(big.Int).Exp(bigTen, big.NewInt(int64(pow)), nil)
}

// GCD returns the greatest common divisor of |a| and |b| as a newly allocated value.
// GCD(0, b) == |b|, GCD(a, 0) == |a|, GCD(0, 0) == 0.
// The arguments are not modified.
//
// It uses the binary (Stein's) algorithm: only shifts and subtractions,
// no divisions.
func GCD(a, b *big.Int) *big.Int {
	a = new(big.Int).Abs(a)
	b = new(big.Int).Abs(b)
	if a.Sign() == 0 {
		return b
	}
	if b.Sign() == 0 || a.Cmp(b) == 0 {
		return a
	}

	// the power of two common to both numbers.
	shift := a.TrailingZeroBits()
	if tz := b.TrailingZeroBits(); tz < shift {
		shift = tz
	}
	a.Rsh(a, shift)
	b.Rsh(b, shift)

	for a.Sign() != 0 && b.Sign() != 0 {
		a.Rsh(a, a.TrailingZeroBits())
		b.Rsh(b, b.TrailingZeroBits())
		if a.Cmp(b) > 0 {
			a, b = b, a
		}
		b.Sub(b, a)
	}
	if a.Sign() == 0 {
		a = b
	}
	return a.Lsh(a, shift)
}

// IsOne returns true if v == 1.
func IsOne(v *big.Int) bool {
	return v.IsInt64() && v.Int64() == 1
}
