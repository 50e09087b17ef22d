package math

import (
	"math/big"

	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

func MulDiv(x, y, denominator *big.Int, rounding shared.Rounding) *big.Int {
	if denominator.Sign() == 0 {
		return big.NewInt(0)
	}
	mul := new(big.Int).Mul(x, y)
	div, mod := new(big.Int).QuoRem(mul, denominator, new(big.Int))
	if rounding == shared.RoundingUp && mod.Sign() != 0 {
		return div.Add(div, big.NewInt(1))
	}
	return div
}

// CeilDiv divides rounding the quotient up, then re-derives the divisor from
// the rounded quotient. Both sides of a constant-product swap are taken from
// the rounded pair so the invariant can only grow.
func CeilDiv(dividend, divisor *big.Int) (quotient, newDivisor *big.Int) {
	if divisor.Sign() == 0 {
		return big.NewInt(0), big.NewInt(0)
	}
	quotient, rem := new(big.Int).QuoRem(dividend, divisor, new(big.Int))
	if rem.Sign() != 0 {
		quotient.Add(quotient, big.NewInt(1))
		newDivisor, rem = new(big.Int).QuoRem(dividend, quotient, new(big.Int))
		if rem.Sign() != 0 {
			newDivisor.Add(newDivisor, big.NewInt(1))
		}
		return quotient, newDivisor
	}
	return quotient, new(big.Int).Set(divisor)
}

func Sqrt(value *big.Int) *big.Int {
	if value == nil || value.Sign() == 0 {
		return big.NewInt(0)
	}
	if value.Cmp(big.NewInt(1)) == 0 {
		return big.NewInt(1)
	}

	x := new(big.Int).Set(value)
	y := new(big.Int).Add(value, big.NewInt(1))
	y.Div(y, big.NewInt(2))

	for y.Cmp(x) < 0 {
		x.Set(y)
		y = new(big.Int).Add(x, new(big.Int).Div(value, x))
		y.Div(y, big.NewInt(2))
	}

	return x
}
