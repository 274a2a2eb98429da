package rational

import (
	"fmt"
	"math"
	"math/big"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	mu "github.com/avdva/rational/internal/mathutil"
)

// fixedPlaces is the number of decimal places of a fixed.Fixed.
const fixedPlaces = 7

// FromDecimal returns the exact value of d.
func FromDecimal(d decimal.Decimal) Frac {
	x, exp := d.Coefficient(), int(d.Exponent())
	if exp >= 0 {
		return Frac{x: x.Mul(x, mu.Pow10(exp)), y: big.NewInt(1)}
	}
	return newFrac(x, mu.Pow10(-exp), true)
}

// Decimal returns f rounded to prec digits after the decimal point.
// Halves are rounded away from zero. A negative prec rounds to tens, hundreds, and so on.
// Returns ErrNotFinite for nan and infinities.
func (f Frac) Decimal(prec int32) (decimal.Decimal, error) {
	if !f.IsLegal() {
		return decimal.Zero, fmt.Errorf("%s to decimal: %w", f, ErrNotFinite)
	}
	// -prec must fit into the exponent.
	if prec == math.MinInt32 {
		return decimal.Zero, fmt.Errorf("%s to decimal: precision %d out of range", f, prec)
	}
	return decimal.NewFromBigInt(f.scaled(int(prec)), -prec), nil
}

// FromFixed returns the exact value of v. NaN is converted to nan.
func FromFixed(v fixed.Fixed) Frac {
	if v.IsNaN() {
		return NaN()
	}
	// fixed.Fixed does not expose its mantissa, its decimal text is exact.
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return NaN()
	}
	return FromDecimal(d)
}

// Fixed returns f rounded to 7 decimal places, the precision of fixed.Fixed.
// Halves are rounded away from zero.
// For nan and infinities it returns fixed.NaN and ErrNotFinite.
func (f Frac) Fixed() (fixed.Fixed, error) {
	if !f.IsLegal() {
		return fixed.NaN, fmt.Errorf("%s to fixed: %w", f, ErrNotFinite)
	}
	m := f.scaled(fixedPlaces)
	// math.MinInt64 is reserved for NaN.
	if !m.IsInt64() || m.Int64() == math.MinInt64 {
		return fixed.NaN, fmt.Errorf("%s to fixed: value out of range", f)
	}
	return fixed.NewI(m.Int64(), fixedPlaces), nil
}

// scaled returns f*10^exp rounded to an integer, halves away from zero.
// f must be finite.
func (f Frac) scaled(exp int) *big.Int {
	x, y := new(big.Int).Set(f.num()), new(big.Int).Set(f.den())
	if exp >= 0 {
		x.Mul(x, mu.Pow10(exp))
	} else {
		y.Mul(y, mu.Pow10(-exp))
	}
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	if r.Abs(r).Lsh(r, 1).Cmp(y) >= 0 {
		q.Add(q, big.NewInt(int64(f.Sign())))
	}
	return q
}
