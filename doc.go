// Copyright 2020 Aleksandr Demakin. All rights reserved.

/*
Package rational implements exact rational numbers on top of math/big integers.

A Frac is always kept in the canonical form: the denominator is non-negative,
and a finite fraction is reduced to its lowest terms, so -10/4 is stored as -5/2.
In addition to finite fractions, a Frac can hold three extended values,
encoded with a zero denominator, similar to floating point:

	nan   0/0
	+inf  1/0
	-inf -1/0

All arithmetic operations are total. Extended values follow the floating point rules:
1/0 is +inf, 0 * +inf is nan, +inf + -inf is nan, x/+inf is 0.
Comparisons with nan are always false, and nan is not equal to itself.

Conversions that need a finite value (BigInt, Floor, Ceil, Decimal, Fixed) return ErrNotFinite
for extended values.

The string form is the stable external representation of a value:

	nan, +inf, -inf    extended values
	-5                 an integer
	1/2                a fraction

FromString accepts all of the above, any non-canonical fraction like "10/-4",
and decimals like "-2.25" or ".5". White space is ignored.
For every value v, FromString(v.String()) returns v.
*/
package rational
