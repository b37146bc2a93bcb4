/*
Package ratio implements exact fractions of branded quantities.
An [Amount] is a natural number of units tagged with a [Brand], and a [Ratio]
is a numerator amount over a denominator amount.
Ratios express prices, fees, exchange rates and collateralization thresholds
without floating point, so every replica running the same operations gets
bit-identical results.

# Features

  - Immutable values, ensuring safe usage across multiple goroutines
  - Arbitrary-precision natural numbers, see [Nat]
  - Brand checking: ratios are only applied to amounts of matching brands
  - Floor, ceiling and half-to-even rounding for every scaling operation
  - Exact parsing of decimal strings
  - Fractional powers approximated with Newton's method or binary search

# Representation

A [Brand] is an opaque handle compared by identity. Its name is only a
label: two brands created with the same name are different brands.

A [Ratio] whose numerator and denominator share a brand is a multiplier for
amounts of that brand. A ratio with two different brands is an exchange rate:
multiplying an amount of the denominator brand yields an amount of the
numerator brand, and dividing an amount of the numerator brand yields an
amount of the denominator brand.

Sums and differences of ratios are not reduced to lowest terms, therefore
1/2 + 1/2 is 4/4. Use [Ratio.Same] to compare representations and
[Ratio.GTE] to compare values.

# Rounding

Operations that produce amounts end with an integer division.
Functions prefixed with Floor round down, functions prefixed with Ceil round
up, and functions without a prefix round half to even.

# Errors

All operations are pure and report contract violations, such as a brand
mismatch or a zero denominator, with errors wrapping one of the exported
sentinel errors. Use [errors.Is] to test for them.
Functions prefixed with Must panic instead and are meant for initialization
of global variables.
*/
package ratio
