package math

import (
	"math/big"

	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

// ConstantPriceSwap exchanges at a fixed rate: one token B costs
// tokenBPrice token A. An A->B remainder is pushed back to the caller by
// flooring the realized source amount instead of the output.
func ConstantPriceSwap(sourceAmount *big.Int, tokenBPrice uint64, direction shared.TradeDirection) (shared.SwapWithoutFeesResult, error) {
	price := new(big.Int).SetUint64(tokenBPrice)
	if price.Sign() == 0 {
		return shared.SwapWithoutFeesResult{}, ErrCalculation
	}

	var sourceAmountSwapped, destinationAmountSwapped *big.Int
	switch direction {
	case shared.TradeDirectionBtoA:
		sourceAmountSwapped = new(big.Int).Set(sourceAmount)
		destinationAmountSwapped = new(big.Int).Mul(sourceAmount, price)
	default:
		destinationAmountSwapped = new(big.Int).Div(sourceAmount, price)
		sourceAmountSwapped = new(big.Int).Mul(destinationAmountSwapped, price)
	}

	if destinationAmountSwapped.Sign() == 0 {
		return shared.SwapWithoutFeesResult{}, ErrZeroTradingTokens
	}

	return shared.SwapWithoutFeesResult{
		SourceAmountSwapped:      sourceAmountSwapped,
		DestinationAmountSwapped: destinationAmountSwapped,
	}, nil
}

// constantPriceTotalValue is the pool's worth measured in token A:
// reserveA + reserveB * price.
func constantPriceTotalValue(swapTokenAAmount, swapTokenBAmount *big.Int, tokenBPrice uint64) *big.Int {
	value := new(big.Int).Mul(swapTokenBAmount, new(big.Int).SetUint64(tokenBPrice))
	return value.Add(value, swapTokenAAmount)
}

// ConstantPriceTradingTokensToPoolShares values a one-sided flow against the
// pool's total normalized value: shares = supply * givenValue / totalValue.
func ConstantPriceTradingTokensToPoolShares(sourceAmount *big.Int, tokenBPrice uint64, swapTokenAAmount, swapTokenBAmount, poolShareSupply *big.Int, direction shared.TradeDirection, rounding shared.Rounding) (*big.Int, error) {
	givenValue := new(big.Int).Set(sourceAmount)
	if direction == shared.TradeDirectionBtoA {
		givenValue.Mul(givenValue, new(big.Int).SetUint64(tokenBPrice))
	}

	totalValue := constantPriceTotalValue(swapTokenAAmount, swapTokenBAmount, tokenBPrice)
	if totalValue.Sign() == 0 {
		return nil, ErrEmptyReserve
	}

	return MulDiv(poolShareSupply, givenValue, totalValue, rounding), nil
}
