package tokenswap

import (
	"github.com/krazyTry/tokenswap-go/token_swap/math"
	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
)

func ValidateFees(f *fees.Fees) error {
	return f.Validate()
}

func ValidateFeeFraction(numerator, denominator uint64) error {
	return fees.ValidateFeeFraction(numerator, denominator)
}

func ValidateCurve(c math.SwapCurve) error {
	return c.Validate()
}

func ValidateSeedReserves(tokenAAmount, tokenBAmount uint64) error {
	if tokenAAmount == 0 || tokenBAmount == 0 {
		return ErrEmptySupply
	}
	return nil
}
