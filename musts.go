package rational

import (
	"fmt"
	"math/big"
)

// MustFromString is like FromString but panics if s cannot be parsed.
func MustFromString(s string) Frac {
	f, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return f
}

// MustBigInt is like BigInt but panics if f is not finite.
func (f Frac) MustBigInt() *big.Int {
	v, err := f.BigInt()
	if err != nil {
		panic(fmt.Sprintf("MustBigInt(%v) failed: %v", f, err))
	}
	return v
}

// MustFloor is like Floor but panics if f is not finite.
func (f Frac) MustFloor() *big.Int {
	v, err := f.Floor()
	if err != nil {
		panic(fmt.Sprintf("MustFloor(%v) failed: %v", f, err))
	}
	return v
}

// MustCeil is like Ceil but panics if f is not finite.
func (f Frac) MustCeil() *big.Int {
	v, err := f.Ceil()
	if err != nil {
		panic(fmt.Sprintf("MustCeil(%v) failed: %v", f, err))
	}
	return v
}
