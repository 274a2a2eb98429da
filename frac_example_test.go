package rational_test

import (
	"encoding/json"
	"fmt"

	"github.com/avdva/rational"
)

func ExampleFrac() {
	a := rational.NewInt64(1, 2)
	b := rational.MustFromString("-2.25")
	fmt.Println(a.Add(b))
	fmt.Println(a.Mul(b))
	fmt.Println(b.Div(rational.Frac{}))
	fmt.Println(rational.Frac{}.Mul(rational.Inf(1)))
	fmt.Println(b.MustFloor(), b.MustCeil())
	fmt.Println(b.Float64())
	data, _ := json.Marshal(struct{ V rational.Frac }{b})
	fmt.Println(string(data))
	// Output:
	// -7/4
	// -9/8
	// -inf
	// nan
	// -3 -2
	// -2.25
	// {"V":"-9/4"}
}

func ExampleFrac_Cmp() {
	nan := rational.NaN()
	one := rational.NewInt64(1, 1)
	fmt.Println(nan.Eq(nan), nan.Less(one), one.Less(rational.Inf(1)))
	fmt.Println(rational.Inf(1).Cmp(one))
	// Output:
	// false false true
	// 1 true
}

func ExampleFromString() {
	for _, s := range []string{"10/-4", " - 0.125 ", "7/0", "1.2.3"} {
		f, err := rational.FromString(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(f)
	}
	// Output:
	// -5/2
	// -1/8
	// +inf
	// parsing failed: unexpected delimiter at pos 4
}
