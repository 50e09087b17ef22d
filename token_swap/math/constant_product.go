package math

import (
	"errors"
	"math/big"

	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

var (
	ErrZeroTradingTokens = errors.New("zero trading tokens")
	ErrEmptyReserve      = errors.New("empty reserve")
	ErrCalculation       = errors.New("calculation failure")
)

// ConstantProductSwap moves a post-fee source amount through x * y = k.
// The invariant is divided back out with CeilDiv so rounding always favors
// the pool; the realized source amount can come out slightly below the
// requested one.
func ConstantProductSwap(sourceAmount, swapSourceAmount, swapDestinationAmount *big.Int) (shared.SwapWithoutFeesResult, error) {
	invariant := new(big.Int).Mul(swapSourceAmount, swapDestinationAmount)

	newSwapSourceAmount := new(big.Int).Add(swapSourceAmount, sourceAmount)
	newSwapDestinationAmount, newSwapSourceAmount := CeilDiv(invariant, newSwapSourceAmount)

	sourceAmountSwapped := new(big.Int).Sub(newSwapSourceAmount, swapSourceAmount)
	destinationAmountSwapped := new(big.Int).Sub(swapDestinationAmount, newSwapDestinationAmount)
	if destinationAmountSwapped.Sign() <= 0 {
		return shared.SwapWithoutFeesResult{}, ErrZeroTradingTokens
	}

	return shared.SwapWithoutFeesResult{
		SourceAmountSwapped:      sourceAmountSwapped,
		DestinationAmountSwapped: destinationAmountSwapped,
	}, nil
}

// ProRataTradingTokens converts a pool-share amount into the pair of trading
// token amounts it represents. Ceiling rounding refuses to round a zero
// amount up to 1 so that dust share amounts cannot pull tokens out of the
// pool; callers reject the zero result instead.
func ProRataTradingTokens(poolShares, poolShareSupply, swapTokenAAmount, swapTokenBAmount *big.Int, rounding shared.Rounding) (shared.TradingTokenResult, error) {
	if poolShareSupply.Sign() == 0 {
		return shared.TradingTokenResult{}, ErrCalculation
	}

	mulA := new(big.Int).Mul(poolShares, swapTokenAAmount)
	tokenAAmount, remA := new(big.Int).QuoRem(mulA, poolShareSupply, new(big.Int))
	mulB := new(big.Int).Mul(poolShares, swapTokenBAmount)
	tokenBAmount, remB := new(big.Int).QuoRem(mulB, poolShareSupply, new(big.Int))

	if rounding == shared.RoundingUp {
		if remA.Sign() != 0 && tokenAAmount.Sign() != 0 {
			tokenAAmount.Add(tokenAAmount, big.NewInt(1))
		}
		if remB.Sign() != 0 && tokenBAmount.Sign() != 0 {
			tokenBAmount.Add(tokenBAmount, big.NewInt(1))
		}
	}

	return shared.TradingTokenResult{
		TokenAAmount: tokenAAmount,
		TokenBAmount: tokenBAmount,
	}, nil
}

// ConstantProductDepositSingle values a one-sided deposit in pool shares:
// floor(supply * (sqrt(1 + amount/reserve) - 1)). Economically a deposit of
// half the amount plus a swap of the other half into the opposite token.
func ConstantProductDepositSingle(sourceAmount, swapSourceAmount, poolShareSupply *big.Int) (*big.Int, error) {
	if swapSourceAmount.Sign() == 0 {
		return nil, ErrEmptyReserve
	}

	scale := shared.PreciseScale
	radicand := new(big.Int).Add(swapSourceAmount, sourceAmount)
	radicand.Mul(radicand, scale)
	radicand.Mul(radicand, scale)
	radicand.Div(radicand, swapSourceAmount)

	root := Sqrt(radicand)
	delta := new(big.Int).Sub(root, scale)
	if delta.Sign() <= 0 {
		return nil, ErrZeroTradingTokens
	}

	return MulDiv(poolShareSupply, delta, scale, shared.RoundingDown), nil
}

// ConstantProductWithdrawSingle computes the pool shares covering an exact
// one-sided withdrawal: supply * (1 - sqrt(1 - amount/reserve)), rounded in
// the given direction (ceiling when charging the caller, floor when valuing
// a fee credit).
func ConstantProductWithdrawSingle(destinationAmount, swapDestinationAmount, poolShareSupply *big.Int, rounding shared.Rounding) (*big.Int, error) {
	if swapDestinationAmount.Sign() == 0 {
		return nil, ErrEmptyReserve
	}
	if destinationAmount.Cmp(swapDestinationAmount) > 0 {
		return nil, ErrEmptyReserve
	}

	scale := shared.PreciseScale
	radicand := new(big.Int).Sub(swapDestinationAmount, destinationAmount)
	radicand.Mul(radicand, scale)
	radicand.Mul(radicand, scale)
	radicand.Div(radicand, swapDestinationAmount)

	// Floor sqrt of a floored radicand under-estimates the root, so the
	// share charge never comes out low.
	root := Sqrt(radicand)
	delta := new(big.Int).Sub(scale, root)
	if delta.Sign() < 0 {
		return nil, ErrCalculation
	}

	return MulDiv(poolShareSupply, delta, scale, rounding), nil
}
