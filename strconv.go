package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	mu "github.com/avdva/rational/internal/mathutil"
)

const (
	delim = '.'
	slash = '/'

	nanString    = "nan"
	posInfString = "+inf"
	negInfString = "-inf"
)

var (
	// ErrSyntax is wrapped by all errors returned from parsing.
	ErrSyntax = errors.New("invalid syntax")

	errEmptyInput = fmt.Errorf("empty input: %w", ErrSyntax)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func (pe posError) Unwrap() error {
	return ErrSyntax
}

// FromString parses a string into a value.
// All white space is ignored. Accepted forms are:
//
//	"nan", "+inf", "-inf";
//	a fraction of two signed integers, like "-10/4" (reduced to -5/2), "1/-2", "3/0" (+inf);
//	a decimal, like "-2.25", ".5", "5.";
//	a signed integer, like "+42".
func FromString(s string) (Frac, error) {
	f, err := parse(s)
	if err != nil {
		var pe *posError
		if errors.As(err, &pe) {
			err = fmt.Errorf("parsing failed: %w", pe)
		}
		return Frac{}, err
	}
	return f, nil
}

// IsValidString returns true if s can be parsed by FromString.
func IsValidString(s string) bool {
	_, err := parse(s)
	return err == nil
}

// String returns the canonical string representation of f:
// "nan", "+inf", "-inf", an integer like "-5", or a fraction like "1/2".
func (f Frac) String() string {
	var builder strings.Builder
	f.toStringsBuilder(&builder)
	return builder.String()
}

func (f Frac) toStringsBuilder(builder *strings.Builder) {
	x, y := f.num(), f.den()
	if y.Sign() == 0 {
		switch {
		case x.Sign() == 0:
			builder.WriteString(nanString)
		case mu.IsOne(x):
			builder.WriteString(posInfString)
		case x.Cmp(bigMinus1) == 0:
			builder.WriteString(negInfString)
		default:
			panic(fmt.Sprintf("malformed extended value %v/0", x)) // should never happen
		}
		return
	}
	builder.WriteString(x.String())
	if !mu.IsOne(y) {
		builder.WriteByte(slash)
		builder.WriteString(y.String())
	}
}

func parse(s string) (Frac, error) {
	sc := prepareString(s)
	if len(sc.s) == 0 {
		return Frac{}, errEmptyInput
	}
	switch sc.s {
	case nanString:
		return NaN(), nil
	case posInfString:
		return Inf(1), nil
	case negInfString:
		return Inf(-1), nil
	}
	if i := strings.IndexByte(sc.s, slash); i >= 0 {
		x, err := sc.parseInt(0, i)
		if err != nil {
			return Frac{}, err
		}
		y, err := sc.parseInt(i+1, len(sc.s))
		if err != nil {
			return Frac{}, err
		}
		return newFrac(x, y, true), nil
	}
	if i := strings.IndexByte(sc.s, delim); i >= 0 {
		return sc.parseDecimal(i)
	}
	x, err := sc.parseInt(0, len(sc.s))
	if err != nil {
		return Frac{}, err
	}
	return Frac{x: x, y: big.NewInt(1)}, nil
}

// scanner holds a string without spaces and the positions of its bytes in the original input.
type scanner struct {
	s       string
	offsets []int
	srcLen  int
}

// prepareString removes all white space from s.
func prepareString(s string) scanner {
	var b strings.Builder
	sc := scanner{srcLen: len(s)}
	for i, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		n, _ := b.WriteRune(r)
		for j := 0; j < n; j++ {
			sc.offsets = append(sc.offsets, i)
		}
	}
	sc.s = b.String()
	return sc
}

// errorAt returns an error for the i-th byte of the prepared string.
// Positions in errors start from 1 and point into the original input.
func (sc scanner) errorAt(err string, i int) error {
	if i < len(sc.offsets) {
		return newPosError(err, sc.offsets[i]+1)
	}
	return newPosError(err, sc.srcLen+1)
}

// checkDigits makes sure, that s[from:to] contains only decimal digits.
func (sc scanner) checkDigits(from, to int) error {
	for i := from; i < to; i++ {
		c := sc.s[i]
		switch {
		case '0' <= c && c <= '9':
		case c == delim:
			return sc.errorAt("unexpected delimiter", i)
		default:
			r, _ := utf8.DecodeRuneInString(sc.s[i:])
			return sc.errorAt(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	return nil
}

// parseSign skips an optional sign at s[from].
func (sc scanner) parseSign(from, to int) (pos int, neg bool) {
	if from < to {
		switch sc.s[from] {
		case '-':
			return from + 1, true
		case '+':
			return from + 1, false
		}
	}
	return from, false
}

// parseInt parses a signed integer from s[from:to].
func (sc scanner) parseInt(from, to int) (*big.Int, error) {
	digitsFrom, neg := sc.parseSign(from, to)
	if err := sc.checkDigits(digitsFrom, to); err != nil {
		return nil, err
	}
	if digitsFrom == to {
		return nil, sc.errorAt("missing digits", to)
	}
	x, ok := new(big.Int).SetString(sc.s[digitsFrom:to], 10)
	if !ok {
		panic("bad digits " + sc.s[digitsFrom:to]) // should not normally happen
	}
	if neg {
		x.Neg(x)
	}
	return x, nil
}

// parseDecimal parses a signed decimal with a delimiter at s[dot].
// The value is (integer part * 10^k + fractional part) / 10^k,
// where k is the number of fractional digits.
func (sc scanner) parseDecimal(dot int) (Frac, error) {
	digitsFrom, neg := sc.parseSign(0, dot)
	if err := sc.checkDigits(digitsFrom, dot); err != nil {
		return Frac{}, err
	}
	if err := sc.checkDigits(dot+1, len(sc.s)); err != nil {
		return Frac{}, err
	}
	integ, frac := sc.s[digitsFrom:dot], sc.s[dot+1:]
	if len(integ)+len(frac) == 0 {
		return Frac{}, sc.errorAt("missing digits", dot)
	}
	if len(integ) == 0 {
		integ = "0"
	}
	if len(frac) == 0 {
		frac = "0"
	}
	x, ok := new(big.Int).SetString(integ+frac, 10)
	if !ok {
		panic("bad digits " + integ + frac) // should not normally happen
	}
	if neg {
		x.Neg(x)
	}
	return newFrac(x, mu.Pow10(len(frac)), true), nil
}
