// Copyright 2020 Aleksandr Demakin. All rights reserved.

package rational

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/rational/internal/mathutil"
)

var (
	// ErrNotFinite is returned by conversions that need a finite value, when given nan or an infinity.
	ErrNotFinite = errors.New("value is not finite")

	bigZero   = big.NewInt(0)
	bigOne    = big.NewInt(1)
	bigMinus1 = big.NewInt(-1)
)

// Frac is an exact rational number x/y built on arbitrary-precision integers.
// Besides finite fractions, it can hold three extended values encoded with a zero denominator:
//
//	0/0 is nan, 1/0 is +inf, -1/0 is -inf.
//
// Every Frac produced by this package is canonical: the denominator is non-negative,
// and a finite fraction is reduced, so that gcd(|x|, y) == 1.
// Values are immutable, so Frac can be freely copied and used concurrently.
// The zero value is 0.
// Do not compare Frac values with ==, use Eq.
type Frac struct {
	x, y *big.Int
}

func (f Frac) num() *big.Int {
	if f.x == nil {
		return bigZero
	}
	return f.x
}

func (f Frac) den() *big.Int {
	if f.y == nil {
		return bigOne
	}
	return f.y
}

// newFrac takes ownership of x and y.
// If reduce is false, x and y must be coprime, only the sign of the denominator is normalized.
func newFrac(x, y *big.Int, reduce bool) Frac {
	if reduce {
		if gcd := mu.GCD(x, y); gcd.Sign() != 0 {
			x.Quo(x, gcd)
			y.Quo(y, gcd)
		}
	}
	if y.Sign() < 0 {
		x.Neg(x)
		y.Neg(y)
	}
	return Frac{x: x, y: y}
}

// New returns x/y in the canonical form.
// A zero denominator gives an extended value: nan for 0/0, and an infinity of x's sign otherwise.
func New(x, y *big.Int) Frac {
	return newFrac(new(big.Int).Set(x), new(big.Int).Set(y), true)
}

// NewInt64 returns x/y in the canonical form. See New.
func NewInt64(x, y int64) Frac {
	return newFrac(big.NewInt(x), big.NewInt(y), true)
}

// FromBigInt returns n/1.
func FromBigInt(n *big.Int) Frac {
	return Frac{x: new(big.Int).Set(n), y: big.NewInt(1)}
}

// FromInt returns n/1 for any integer type.
func FromInt[T constraints.Integer](n T) Frac {
	x := new(big.Int)
	if n < 0 {
		x.SetInt64(int64(n))
	} else {
		x.SetUint64(uint64(n))
	}
	return Frac{x: x, y: big.NewInt(1)}
}

// NaN returns a not-a-number value.
func NaN() Frac {
	return Frac{x: big.NewInt(0), y: big.NewInt(0)}
}

// Inf returns +inf if sign >= 0, -inf if sign < 0.
func Inf(sign int) Frac {
	x := big.NewInt(1)
	if sign < 0 {
		x.SetInt64(-1)
	}
	return Frac{x: x, y: big.NewInt(0)}
}

// Num returns a copy of the numerator.
func (f Frac) Num() *big.Int {
	return new(big.Int).Set(f.num())
}

// Denom returns a copy of the denominator. It is zero for nan and infinities.
func (f Frac) Denom() *big.Int {
	return new(big.Int).Set(f.den())
}

// IsLegal returns true if f is a finite number, i.e. not nan and not an infinity.
func (f Frac) IsLegal() bool {
	return f.den().Sign() != 0
}

// IsInteger returns true if the denominator is 1.
func (f Frac) IsInteger() bool {
	return mu.IsOne(f.den())
}

// IsNaN returns true for 0/0.
func (f Frac) IsNaN() bool {
	return f.den().Sign() == 0 && f.num().Sign() == 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Frac) IsInf(sign int) bool {
	if f.den().Sign() != 0 {
		return false
	}
	s := f.num().Sign()
	return s != 0 && (sign == 0 || sign*s > 0)
}

// Sign returns -1 if f < 0, 0 if f == 0 or f is nan, and 1 if f > 0.
func (f Frac) Sign() int {
	return f.num().Sign()
}

// Reciprocal returns 1/f.
// The reciprocal of 0 is +inf, of ±inf is 0, and of nan is nan.
func (f Frac) Reciprocal() Frac {
	return newFrac(new(big.Int).Set(f.den()), new(big.Int).Set(f.num()), false)
}

// Neg returns -f.
func (f Frac) Neg() Frac {
	return newFrac(new(big.Int).Neg(f.num()), new(big.Int).Set(f.den()), false)
}

// Abs returns |f|.
func (f Frac) Abs() Frac {
	return newFrac(new(big.Int).Abs(f.num()), new(big.Int).Set(f.den()), false)
}

// Mul returns f*other.
// Multiplying an infinity by a non-zero value gives an infinity of the product's sign,
// 0*inf and any product with nan give nan.
func (f Frac) Mul(other Frac) Frac {
	x1, y1 := f.num(), f.den()
	x2, y2 := other.num(), other.den()
	// cross-reduce first to keep the intermediate values small.
	gcd1 := mu.GCD(x1, y2)
	gcd2 := mu.GCD(x2, y1)
	if gcd1.Sign() == 0 || gcd2.Sign() == 0 {
		return NaN()
	}
	x := new(big.Int).Quo(x1, gcd1)
	x.Mul(x, new(big.Int).Quo(x2, gcd2))
	y := new(big.Int).Quo(y1, gcd2)
	y.Mul(y, new(big.Int).Quo(y2, gcd1))
	return newFrac(x, y, false)
}

// Div returns f/other.
// A finite non-zero value divided by 0 gives an infinity of its sign, x/inf gives 0,
// while 0/0, inf/inf, and any quotient with nan give nan.
func (f Frac) Div(other Frac) Frac {
	if !f.IsLegal() && !other.IsLegal() {
		return NaN()
	}
	return f.Mul(other.Reciprocal())
}

// Add returns f+other.
// +inf + +inf is +inf, -inf + -inf is -inf, the sum of an infinity and a finite value is that infinity,
// all other sums of extended values are nan.
func (f Frac) Add(other Frac) Frac {
	x1, y1 := f.num(), f.den()
	x2, y2 := other.num(), other.den()
	gcd := mu.GCD(y1, y2)
	if gcd.Sign() == 0 { // both are extended values.
		switch {
		case mu.IsOne(x1) && mu.IsOne(x2):
			return Inf(1)
		case x1.Cmp(bigMinus1) == 0 && x2.Cmp(bigMinus1) == 0:
			return Inf(-1)
		default:
			return NaN()
		}
	}
	m1 := new(big.Int).Quo(y1, gcd)
	m2 := new(big.Int).Quo(y2, gcd)
	x := new(big.Int).Mul(x1, m2)
	x.Add(x, m2.Mul(x2, m1))
	y := m1.Mul(m1, y2)
	// the result must be reduced, as in 1/2 + 1/2 = 2/2.
	return newFrac(x, y, true)
}

// Sub returns f-other.
func (f Frac) Sub(other Frac) Frac {
	return f.Add(other.Neg())
}

// AddInt returns f+n.
func (f Frac) AddInt(n *big.Int) Frac {
	x := new(big.Int).Mul(n, f.den())
	x.Add(f.num(), x)
	return newFrac(x, new(big.Int).Set(f.den()), false)
}

// SubInt returns f-n.
// To get n-f, use f.SubInt(n).Neg().
func (f Frac) SubInt(n *big.Int) Frac {
	x := new(big.Int).Mul(n, f.den())
	x.Sub(f.num(), x)
	return newFrac(x, new(big.Int).Set(f.den()), false)
}

// MulInt returns f*n.
func (f Frac) MulInt(n *big.Int) Frac {
	return f.Mul(FromBigInt(n))
}

// DivInt returns f/n.
// To get n/f, use f.Reciprocal().MulInt(n).
func (f Frac) DivInt(n *big.Int) Frac {
	return f.Div(FromBigInt(n))
}

// Eq returns true if both values represent the same number.
// Nan is not equal to anything, including itself.
func (f Frac) Eq(other Frac) bool {
	if f.IsNaN() || other.IsNaN() {
		return false
	}
	return f.num().Cmp(other.num()) == 0 && f.den().Cmp(other.den()) == 0
}

// Cmp compares two values.
// Returns -1 if f < other, 0 if f == other, 1 if f > other.
// If any of the values is nan, ok is false and c is 0.
func (f Frac) Cmp(other Frac) (c int, ok bool) {
	if f.IsNaN() || other.IsNaN() {
		return 0, false
	}
	inf1, inf2 := !f.IsLegal(), !other.IsLegal()
	switch {
	case inf1 && inf2:
		return f.num().Cmp(other.num()), true
	case inf1:
		return f.num().Sign(), true
	case inf2:
		return -other.num().Sign(), true
	}
	// denominators are positive, so the cross-multiplication keeps the order.
	l := new(big.Int).Mul(f.num(), other.den())
	r := new(big.Int).Mul(other.num(), f.den())
	return l.Cmp(r), true
}

// Less returns f < other. It is false if any of the values is nan.
func (f Frac) Less(other Frac) bool {
	c, ok := f.Cmp(other)
	return ok && c < 0
}

// LessEq returns f <= other. It is false if any of the values is nan.
func (f Frac) LessEq(other Frac) bool {
	c, ok := f.Cmp(other)
	return ok && c <= 0
}

// Greater returns f > other. It is false if any of the values is nan.
func (f Frac) Greater(other Frac) bool {
	c, ok := f.Cmp(other)
	return ok && c > 0
}

// GreaterEq returns f >= other. It is false if any of the values is nan.
func (f Frac) GreaterEq(other Frac) bool {
	c, ok := f.Cmp(other)
	return ok && c >= 0
}

// Float64 returns the nearest float64 value.
// Nan and infinities are converted to their float counterparts.
func (f Frac) Float64() float64 {
	if !f.IsLegal() {
		return extendedFloat(f.num().Sign())
	}
	res, _ := new(big.Rat).SetFrac(f.num(), f.den()).Float64()
	return res
}

// Float32 returns the nearest float32 value.
// Nan and infinities are converted to their float counterparts.
func (f Frac) Float32() float32 {
	if !f.IsLegal() {
		return float32(extendedFloat(f.num().Sign()))
	}
	res, _ := new(big.Rat).SetFrac(f.num(), f.den()).Float32()
	return res
}

func extendedFloat(sign int) float64 {
	if sign == 0 {
		return math.NaN()
	}
	return math.Inf(sign)
}

// BigInt returns f as an integer, rounding toward negative infinity.
// Returns ErrNotFinite for nan and infinities.
func (f Frac) BigInt() (*big.Int, error) {
	if !f.IsLegal() {
		return nil, fmt.Errorf("%s to integer: %w", f, ErrNotFinite)
	}
	if f.IsInteger() {
		return f.Num(), nil
	}
	return f.round(-1), nil
}

// Floor returns the greatest integer value less than or equal to f.
// Returns ErrNotFinite for nan and infinities.
func (f Frac) Floor() (*big.Int, error) {
	if !f.IsLegal() {
		return nil, fmt.Errorf("floor of %s: %w", f, ErrNotFinite)
	}
	return f.round(-1), nil
}

// Ceil returns the least integer value greater than or equal to f.
// Returns ErrNotFinite for nan and infinities.
func (f Frac) Ceil() (*big.Int, error) {
	if !f.IsLegal() {
		return nil, fmt.Errorf("ceil of %s: %w", f, ErrNotFinite)
	}
	return f.round(1), nil
}

// round truncates a finite f toward zero, then moves the result
// one step in dir's direction, if f is not an integer and has the same sign as dir.
func (f Frac) round(dir int) *big.Int {
	q, r := new(big.Int).QuoRem(f.num(), f.den(), new(big.Int))
	if r.Sign() != 0 && f.num().Sign() == dir {
		q.Add(q, big.NewInt(int64(dir)))
	}
	return q
}

// GoString returns debug string representation.
func (f Frac) GoString() string {
	return f.String() + fmt.Sprintf(" {%v, %v}", f.num(), f.den())
}

// MarshalText implements encoding.TextMarshaler.
func (f Frac) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Frac) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*f = value
	return nil
}

// MarshalJSON marshals f as a json string, like `"-5/3"` or `"nan"`.
func (f Frac) MarshalJSON() ([]byte, error) {
	s := f.String()
	data := make([]byte, 0, len(s)+2)
	data = append(data, '"')
	data = append(data, s...)
	data = append(data, '"')
	return data, nil
}

// UnmarshalJSON unmarshals a json string, or a number without an exponent, into a value.
// null is a no-op.
func (f *Frac) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	s := string(data)
	if s == "null" {
		return nil
	}
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("bad json string %s: %w", data, err)
		}
	}
	value, err := FromString(s)
	if err != nil {
		return err
	}
	*f = value
	return nil
}
