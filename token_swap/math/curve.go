package math

import (
	"errors"
	"math/big"

	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

var (
	ErrInvalidCurve     = errors.New("invalid curve parameters")
	ErrUnknownCurveType = errors.New("unknown curve type")
)

// SwapCurve selects one pricing rule for a pool. Curves carry no mutable
// state; the variant and its parameters are fixed at pool creation and
// dispatched by tag.
type SwapCurve struct {
	Type shared.CurveType

	// Constant-price only: amount of token A required to buy one token B.
	TokenBPrice uint64
}

func (c SwapCurve) Validate() error {
	switch c.Type {
	case shared.CurveTypeConstantProduct:
		return nil
	case shared.CurveTypeConstantPrice:
		if c.TokenBPrice == 0 {
			return ErrInvalidCurve
		}
		return nil
	default:
		return ErrUnknownCurveType
	}
}

// NewPoolShareSupply is the share amount minted against the seed reserves.
func (c SwapCurve) NewPoolShareSupply() *big.Int {
	return big.NewInt(shared.InitialPoolShareSupply)
}

func (c SwapCurve) SwapWithoutFees(sourceAmount, swapSourceAmount, swapDestinationAmount *big.Int, direction shared.TradeDirection) (shared.SwapWithoutFeesResult, error) {
	switch c.Type {
	case shared.CurveTypeConstantProduct:
		return ConstantProductSwap(sourceAmount, swapSourceAmount, swapDestinationAmount)
	case shared.CurveTypeConstantPrice:
		return ConstantPriceSwap(sourceAmount, c.TokenBPrice, direction)
	default:
		return shared.SwapWithoutFeesResult{}, ErrUnknownCurveType
	}
}

// Swap applies the trading and owner fees to the gross source amount, runs
// the remainder through the curve and adds the fees back on the source
// side. Fees come off the full amount here; the single-sided valuations
// below charge on half the flow instead, and that asymmetry is part of the
// pricing contract.
func (c SwapCurve) Swap(sourceAmount, swapSourceAmount, swapDestinationAmount *big.Int, direction shared.TradeDirection, f *fees.Fees) (shared.SwapCurveResult, error) {
	tradeFee := f.TradingFee(sourceAmount)
	ownerFee := f.OwnerTradingFee(sourceAmount)
	totalFees := new(big.Int).Add(tradeFee, ownerFee)

	sourceAmountLessFees := new(big.Int).Sub(sourceAmount, totalFees)
	if sourceAmountLessFees.Sign() <= 0 {
		return shared.SwapCurveResult{}, ErrZeroTradingTokens
	}

	result, err := c.SwapWithoutFees(sourceAmountLessFees, swapSourceAmount, swapDestinationAmount, direction)
	if err != nil {
		return shared.SwapCurveResult{}, err
	}

	sourceAmountSwapped := new(big.Int).Add(result.SourceAmountSwapped, totalFees)
	return shared.SwapCurveResult{
		NewSwapSourceAmount:      new(big.Int).Add(swapSourceAmount, sourceAmountSwapped),
		NewSwapDestinationAmount: new(big.Int).Sub(swapDestinationAmount, result.DestinationAmountSwapped),
		SourceAmountSwapped:      sourceAmountSwapped,
		DestinationAmountSwapped: result.DestinationAmountSwapped,
		TradeFee:                 tradeFee,
		OwnerFee:                 ownerFee,
	}, nil
}

// PoolSharesToTradingTokens converts a share amount to the pair of token
// amounts it represents. Proportional ownership of the reserves holds for
// every curve variant, so the pro-rata rule is shared.
func (c SwapCurve) PoolSharesToTradingTokens(poolShares, poolShareSupply, swapTokenAAmount, swapTokenBAmount *big.Int, rounding shared.Rounding) (shared.TradingTokenResult, error) {
	switch c.Type {
	case shared.CurveTypeConstantProduct, shared.CurveTypeConstantPrice:
		return ProRataTradingTokens(poolShares, poolShareSupply, swapTokenAAmount, swapTokenBAmount, rounding)
	default:
		return shared.TradingTokenResult{}, ErrUnknownCurveType
	}
}

// DepositSingleTokenType values an exact one-sided deposit in pool shares,
// charging the trading fee on half the amount to model the implicit swap of
// that half into the opposite token.
func (c SwapCurve) DepositSingleTokenType(sourceAmount, swapTokenAAmount, swapTokenBAmount, poolShareSupply *big.Int, direction shared.TradeDirection, f *fees.Fees) (*big.Int, error) {
	if sourceAmount.Sign() == 0 {
		return big.NewInt(0), nil
	}

	halfSourceAmount := new(big.Int).Div(sourceAmount, big.NewInt(2))
	if halfSourceAmount.Sign() == 0 {
		halfSourceAmount.SetInt64(1)
	}
	tradeFee := f.TradingFee(halfSourceAmount)
	netAmount := new(big.Int).Sub(sourceAmount, tradeFee)

	switch c.Type {
	case shared.CurveTypeConstantProduct:
		swapSourceAmount := swapTokenAAmount
		if direction == shared.TradeDirectionBtoA {
			swapSourceAmount = swapTokenBAmount
		}
		return ConstantProductDepositSingle(netAmount, swapSourceAmount, poolShareSupply)
	case shared.CurveTypeConstantPrice:
		return ConstantPriceTradingTokensToPoolShares(netAmount, c.TokenBPrice, swapTokenAAmount, swapTokenBAmount, poolShareSupply, direction, shared.RoundingDown)
	default:
		return nil, ErrUnknownCurveType
	}
}

// WithdrawSingleTokenTypeExactOut computes the pool shares an exact
// one-sided withdrawal costs, charging the trading fee on half the amount.
// The owner withdraw fee is the pool's concern and is added on top by the
// caller.
func (c SwapCurve) WithdrawSingleTokenTypeExactOut(destinationAmount, swapTokenAAmount, swapTokenBAmount, poolShareSupply *big.Int, direction shared.TradeDirection, f *fees.Fees) (*big.Int, error) {
	if destinationAmount.Sign() == 0 {
		return big.NewInt(0), nil
	}

	halfDestinationAmount := new(big.Int).Div(destinationAmount, big.NewInt(2))
	if halfDestinationAmount.Sign() == 0 {
		halfDestinationAmount.SetInt64(1)
	}
	tradeFee := f.TradingFee(halfDestinationAmount)
	netAmount := new(big.Int).Sub(destinationAmount, tradeFee)

	switch c.Type {
	case shared.CurveTypeConstantProduct:
		swapDestinationAmount := swapTokenAAmount
		if direction == shared.TradeDirectionBtoA {
			swapDestinationAmount = swapTokenBAmount
		}
		return ConstantProductWithdrawSingle(netAmount, swapDestinationAmount, poolShareSupply, shared.RoundingUp)
	case shared.CurveTypeConstantPrice:
		return ConstantPriceTradingTokensToPoolShares(netAmount, c.TokenBPrice, swapTokenAAmount, swapTokenBAmount, poolShareSupply, direction, shared.RoundingUp)
	default:
		return nil, ErrUnknownCurveType
	}
}
