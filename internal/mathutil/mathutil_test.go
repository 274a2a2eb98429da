package mathutil

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const (
	p1 = 7919
	p2 = 104729
	p3 = 1299709
	p4 = 15485863
)

type gcdCase struct {
	m, n, d string
}

var gcdCases = []gcdCase{
	{"0", "0", "0"},
	{"0", "5", "5"},
	{"0", "-5", "5"},
	{"1", "1", "1"},
	{"1", "2", "1"},
	{"2", "2", "2"},
	{"-2", "2", "2"},
	{"-2", "-2", "2"},
	{"2", "3", "1"},
	{"2", "4", "2"},
	{"3", "6", "3"},
	{"4", "6", "2"},
	{"6", "8", "2"},
	{"6", "9", "3"},
	{"24", "120", "24"},
	{"36", "120", "12"},
	{"7", "360", "1"},
	{"360", "92821", "1"},
	{"360", "92822", "2"},
	{"3600", "216000", "3600"},
	{"123456789", "987654321", "9"},
	{"-123456789", "987654321", "9"},
	{"1024", "4096", "1024"},
	{"1073741824", "1", "1"},
	{fmt.Sprint(int64(p1) * p2 * p3), fmt.Sprint(int64(p2) * p3 * p4), fmt.Sprint(int64(p2) * p3)},
	{"340282366920938463463374607431768211456", "18446744073709551616", "18446744073709551616"},
	{"340282366920938463463374607431768211457", "18446744073709551616", "1"},
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad number " + s)
	}
	return v
}

func TestGCD(t *testing.T) {
	a := assert.New(t)
	for _, c := range gcdCases {
		for _, args := range [][2]string{{c.m, c.n}, {c.n, c.m}} {
			t.Run(fmt.Sprintf("GCD(%s,%s)", args[0], args[1]), func(t *testing.T) {
				m, n := mustBig(args[0]), mustBig(args[1])
				mCopy, nCopy := new(big.Int).Set(m), new(big.Int).Set(n)
				d := GCD(m, n)
				a.Equal(c.d, d.String())
				a.Zero(m.Cmp(mCopy), "arguments must not be modified")
				a.Zero(n.Cmp(nCopy), "arguments must not be modified")
			})
		}
	}
}

func TestGCDRandom(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 1000; i++ {
		common := new(big.Int).Rand(rnd, big.NewInt(1<<20))
		m := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 200))
		n := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), 150))
		m.Mul(m, common)
		n.Mul(n, common)
		if rnd.Intn(2) == 0 {
			m.Neg(m)
		}
		expected := new(big.Int).GCD(nil, nil, new(big.Int).Abs(m), new(big.Int).Abs(n))
		a.Zerof(expected.Cmp(GCD(m, n)), "GCD(%s, %s)", m, n)
	}
}

func TestPow10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		pow int
		res string
	}{
		{-1, "0"},
		{0, "1"},
		{1, "10"},
		{19, "10000000000000000000"},
		{20, "100000000000000000000"},
		{25, "10000000000000000000000000"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Pow10(test.pow).String())
		})
	}
	// results are fresh values.
	p := Pow10(3)
	p.SetInt64(5)
	a.Equal("1000", Pow10(3).String())
}

func TestIsOne(t *testing.T) {
	a := assert.New(t)
	a.True(IsOne(big.NewInt(1)))
	a.False(IsOne(big.NewInt(-1)))
	a.False(IsOne(big.NewInt(0)))
	a.False(IsOne(mustBig("18446744073709551617")))
}

func BenchmarkGCD(b *testing.B) {
	m, n := mustBig(gcdCases[len(gcdCases)-3].m), mustBig(gcdCases[len(gcdCases)-3].n)
	for i := 0; i < b.N; i++ {
		GCD(m, n)
	}
}

func BenchmarkBigGCD(b *testing.B) {
	m, n := mustBig(gcdCases[len(gcdCases)-3].m), mustBig(gcdCases[len(gcdCases)-3].n)
	for i := 0; i < b.N; i++ {
		new(big.Int).GCD(nil, nil, m, n)
	}
}
