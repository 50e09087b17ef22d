package swapV1

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/krazyTry/tokenswap-go/decimal_math"
	tokenswap "github.com/krazyTry/tokenswap-go/token_swap"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

type TradeDirection = shared.TradeDirection

const (
	TradeDirectionAtoB = shared.TradeDirectionAtoB
	TradeDirectionBtoA = shared.TradeDirectionBtoA
)

const basisPointMax = 10_000

// SwapQuoteResult
type SwapQuoteResult struct {
	SwapInAmount     *big.Int
	SwapOutAmount    *big.Int
	MinSwapOutAmount *big.Int
	TradeFee         *big.Int
	OwnerFee         *big.Int
	PriceImpact      decimal.Decimal
}

// SwapQuote projects a swap against live balances. Nothing is mutated; the
// caller submits the built instruction with MinSwapOutAmount as the
// slippage guard.
func (m *TokenSwap) SwapQuote(
	ctx context.Context,
	swapKey solana.PublicKey,
	amountIn *big.Int,
	slippageBps uint64,
	direction TradeDirection,
) (*SwapQuoteResult, *tokenswap.SwapState, error) {
	state, err := m.GetSwapState(ctx, swapKey)
	if err != nil {
		return nil, nil, err
	}
	balances, err := m.GetPoolBalances(ctx, state)
	if err != nil {
		return nil, nil, err
	}
	quote, err := GetSwapQuote(state, balances, amountIn, slippageBps, direction)
	if err != nil {
		return nil, nil, err
	}
	return quote, state, nil
}

// GetSwapQuote is the offline form of SwapQuote.
func GetSwapQuote(
	state *tokenswap.SwapState,
	balances *PoolBalances,
	amountIn *big.Int,
	slippageBps uint64,
	direction TradeDirection,
) (*SwapQuoteResult, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, fmt.Errorf("amountIn must be greater than 0")
	}
	if slippageBps > basisPointMax {
		return nil, fmt.Errorf("slippageBps must not exceed %d", basisPointMax)
	}

	swapSource := new(big.Int).SetUint64(balances.ReserveA)
	swapDestination := new(big.Int).SetUint64(balances.ReserveB)
	if direction == TradeDirectionBtoA {
		swapSource, swapDestination = swapDestination, swapSource
	}

	result, err := state.Curve.Swap(amountIn, swapSource, swapDestination, direction, &state.Fees)
	if err != nil {
		return nil, fmt.Errorf("swap quote: %w", err)
	}

	minOut := new(big.Int).Mul(result.DestinationAmountSwapped, big.NewInt(basisPointMax-int64(slippageBps)))
	minOut.Div(minOut, big.NewInt(basisPointMax))

	return &SwapQuoteResult{
		SwapInAmount:     new(big.Int).Set(amountIn),
		SwapOutAmount:    result.DestinationAmountSwapped,
		MinSwapOutAmount: minOut,
		TradeFee:         result.TradeFee,
		OwnerFee:         result.OwnerFee,
		PriceImpact:      priceImpact(swapSource, swapDestination, amountIn, result.DestinationAmountSwapped),
	}, nil
}

// priceImpact is the relative loss of the executed price against the spot
// price, in percent.
func priceImpact(swapSource, swapDestination, amountIn, amountOut *big.Int) decimal.Decimal {
	if swapSource.Sign() == 0 || amountIn.Sign() == 0 {
		return decimal.Zero
	}
	spot := decimal.NewFromBigInt(swapDestination, 0).Div(decimal.NewFromBigInt(swapSource, 0))
	if spot.IsZero() {
		return decimal.Zero
	}
	exec := decimal.NewFromBigInt(amountOut, 0).Div(decimal.NewFromBigInt(amountIn, 0))
	return spot.Sub(exec).Div(spot).Mul(decimal.NewFromInt(100))
}

// PoolPrice is the spot price of token B measured in token A.
func PoolPrice(state *tokenswap.SwapState, balances *PoolBalances) (decimal.Decimal, error) {
	if state.Curve.Type == shared.CurveTypeConstantPrice {
		return decimal.NewFromUint64(state.Curve.TokenBPrice), nil
	}
	if balances.ReserveB == 0 {
		return decimal.Zero, fmt.Errorf("empty reserve B")
	}
	return decimal.NewFromUint64(balances.ReserveA).
		Div(decimal.NewFromUint64(balances.ReserveB)), nil
}

// LiquidityDepth is the geometric mean of the reserves, the usual scalar
// for comparing constant-product pool sizes.
func LiquidityDepth(balances *PoolBalances) decimal.Decimal {
	product := decimal.NewFromUint64(balances.ReserveA).Mul(decimal.NewFromUint64(balances.ReserveB))
	return decimal_math.Sqrt(product, 128)
}

// UIPoolPrice adjusts a base-unit price of token B in token A for the two
// mints' decimal places.
func UIPoolPrice(rawPrice decimal.Decimal, tokenADecimals, tokenBDecimals uint8) decimal.Decimal {
	return rawPrice.Mul(decimal_math.Pow10(int(tokenBDecimals) - int(tokenADecimals)))
}
