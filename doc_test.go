package ratio_test

import (
	"fmt"

	"github.com/govalues/ratio"
)

var (
	ist = ratio.MustNewBrand("IST", 6)
	bld = ratio.MustNewBrand("BLD", 6)
	atm = ratio.MustNewBrand("ATOM", 0)
)

func SwapFee(amount ratio.Amount, fee ratio.Ratio) (ratio.Amount, ratio.Amount, error) {
	// The pool never undercharges
	charged, err := ratio.CeilMultiplyBy(amount, fee)
	if err != nil {
		return ratio.Amount{}, ratio.Amount{}, err
	}
	net, err := amount.Sub(charged)
	if err != nil {
		return ratio.Amount{}, ratio.Amount{}, err
	}
	return charged, net, nil
}

// In this example, a swap fee is charged on an amount, rounding the fee up
// to the next unit.
func Example_swapFee() {
	amount := ratio.MustNewAmount(ist, ratio.NewNat(1234567))
	fee := ratio.MustParseRatio("0.003", ist, ist)

	charged, net, err := SwapFee(amount, fee)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Amount = %f\n", amount)
	fmt.Printf("Fee    = %f\n", charged)
	fmt.Printf("Net    = %f\n", net)

	// Output:
	// Amount = 1.234567
	// Fee    = 0.003704
	// Net    = 1.230863
}

// In this example, an exchange rate converts BLD into IST and back.
func Example_exchangeRate() {
	price := ratio.MustParseRatio("0.65", ist, bld) // IST per BLD
	collateral := ratio.MustNewAmount(bld, ratio.NewNat(2500000))

	value, err := ratio.MultiplyBy(collateral, price)
	if err != nil {
		panic(err)
	}
	back, err := ratio.DivideBy(value, price)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price      = %v\n", price)
	fmt.Printf("Collateral = %v\n", collateral)
	fmt.Printf("Value      = %v\n", value)
	fmt.Printf("Back       = %v\n", back)

	// Output:
	// Price      = 65 IST/100 BLD
	// Collateral = BLD 2500000
	// Value      = IST 1625000
	// Back       = BLD 2500000
}

func IsHealthy(collateral, debt ratio.Amount, price, margin ratio.Ratio) (ratio.Ratio, bool, error) {
	value, err := ratio.FloorMultiplyBy(collateral, price)
	if err != nil {
		return ratio.Ratio{}, false, err
	}
	current, err := ratio.NewRatioFromAmounts(value, debt)
	if err != nil {
		return ratio.Ratio{}, false, err
	}
	ok, err := current.GTE(margin)
	if err != nil {
		return ratio.Ratio{}, false, err
	}
	return current, ok, nil
}

// In this example, a loan is checked against a liquidation margin of 150%.
func Example_collateralization() {
	collateral := ratio.MustNewAmount(bld, ratio.NewNat(300000000))
	debt := ratio.MustNewAmount(ist, ratio.NewNat(100000000))
	price := ratio.MustParseRatio("0.65", ist, bld)
	margin, err := ratio.NewPercent(ratio.NewNat(150), ist)
	if err != nil {
		panic(err)
	}

	current, ok, err := IsHealthy(collateral, debt, price, margin)
	if err != nil {
		panic(err)
	}
	d, err := current.Decimal(4)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Collateral ratio = %v\n", d)
	fmt.Printf("Healthy          = %v\n", ok)

	// Output:
	// Collateral ratio = 1.9500
	// Healthy          = true
}

func ExampleNewRatio() {
	fmt.Println(ratio.NewRatio(ratio.NewNat(3), ist, ratio.NewNat(4), bld))
	_, err := ratio.NewRatio(ratio.NewNat(3), ist, ratio.NewNat(0), bld)
	fmt.Println(err)
	// Output:
	// 3 IST/4 BLD <nil>
	// creating ratio 3/0: no infinite ratios: zero denominator
}

func ExampleNewPercent() {
	fmt.Println(ratio.NewPercent(ratio.NewNat(5), ist))
	// Output: 5 IST/100 IST <nil>
}

func ExampleParseRatio() {
	fmt.Println(ratio.ParseRatio("1.25", ist, ist))
	fmt.Println(ratio.ParseRatio("1.", ist, ist))
	// Output:
	// 125 IST/100 IST <nil>
	// 1 IST/1 IST <nil>
}

func ExampleValidateNumeric() {
	fmt.Println(ratio.ValidateNumeric("1.25"))
	fmt.Println(ratio.ValidateNumeric("-1"))
	// Output:
	// <nil>
	// validating "-1": invalid numeric data
}

func ExampleFloorMultiplyBy() {
	a := ratio.MustNewAmount(ist, ratio.NewNat(10))
	r := ratio.MustParseRatio("0.25", ist, ist)
	fmt.Println(ratio.FloorMultiplyBy(a, r))
	fmt.Println(ratio.CeilMultiplyBy(a, r))
	fmt.Println(ratio.MultiplyBy(a, r))
	// Output:
	// IST 2 <nil>
	// IST 3 <nil>
	// IST 2 <nil>
}

func ExampleRatio_Add() {
	r := ratio.MustNewRatio(ratio.NewNat(1), ist, ratio.NewNat(2), ist)
	q := ratio.MustNewRatio(ratio.NewNat(1), ist, ratio.NewNat(3), ist)
	fmt.Println(r.Add(q))
	// Output: 5 IST/6 IST <nil>
}

func ExampleRatio_Mul() {
	r := ratio.MustNewRatio(ratio.NewNat(65), ist, ratio.NewNat(100), bld)
	q := ratio.MustNewRatio(ratio.NewNat(2), bld, ratio.NewNat(1), atm)
	fmt.Println(r.Mul(q))
	// Output: 130 IST/100 ATOM <nil>
}

func ExampleRatio_Inv() {
	r := ratio.MustNewRatio(ratio.NewNat(65), ist, ratio.NewNat(100), bld)
	fmt.Println(r.Inv())
	// Output: 100 BLD/65 IST <nil>
}

func ExampleRatio_OneMinus() {
	r := ratio.MustParseRatio("0.3", ist, ist)
	fmt.Println(r.OneMinus())
	fmt.Println(r.OnePlus())
	// Output:
	// 7 IST/10 IST <nil>
	// 13 IST/10 IST <nil>
}

func ExampleRatio_Quantize() {
	r := ratio.MustNewRatio(ratio.NewNat(2), ist, ratio.NewNat(3), ist)
	fmt.Println(r.Quantize(ratio.NewNat(100)))
	// Output: 67 IST/100 IST <nil>
}

func ExampleRatio_Decimal() {
	r := ratio.MustNewRatio(ratio.NewNat(1), ist, ratio.NewNat(8), ist)
	fmt.Println(r.Decimal(2))
	fmt.Println(r.Decimal(3))
	// Output:
	// 0.12 <nil>
	// 0.125 <nil>
}

func ExampleRatio_PowNewton() {
	r := ratio.MustNewRatio(ratio.NewNat(9), ist, ratio.NewNat(4), ist)
	e := ratio.MustNewRatio(ratio.NewNat(1), ist, ratio.NewNat(2), ist)
	fmt.Println(r.PowNewton(e, ratio.DefaultPrecision))
	fmt.Println(r.PowBinary(e, ratio.DefaultPrecision))
	// Output:
	// 150000000 IST/100000000 IST <nil>
	// 150000000 IST/100000000 IST <nil>
}

func ExampleRootNewton() {
	fmt.Println(ratio.RootNewton(ratio.NewNat(2), ratio.NewNat(2)))
	fmt.Println(ratio.RootBinary(ratio.NewNat(2), ratio.NewNat(2)))
	// Output:
	// 2 <nil>
	// 1 <nil>
}

func ExampleBrand_Format() {
	fmt.Printf("%v\n", ist)
	fmt.Printf("%q\n", ist)
	fmt.Printf("[%-6s]\n", ist)
	// Output:
	// IST
	// "IST"
	// [IST   ]
}

func ExampleAmount_Format() {
	a := ratio.MustNewAmount(ist, ratio.NewNat(1250000))
	fmt.Printf("%v\n", a)
	fmt.Printf("%f\n", a)
	fmt.Printf("%d\n", a)
	fmt.Printf("%c\n", a)
	// Output:
	// IST 1250000
	// 1.250000
	// 1250000
	// IST
}
