package shared

import (
	"math/big"
)

// Enums and common types shared by math, math/fees and tokenswap.
type Rounding uint8

const (
	RoundingUp   Rounding = 0
	RoundingDown Rounding = 1
)

type CurveType uint8

const (
	CurveTypeConstantProduct CurveType = 0
	CurveTypeConstantPrice   CurveType = 1
)

type TradeDirection uint8

const (
	TradeDirectionAtoB TradeDirection = 0
	TradeDirectionBtoA TradeDirection = 1
)

// Opposite returns the reverse trade direction.
func (d TradeDirection) Opposite() TradeDirection {
	if d == TradeDirectionAtoB {
		return TradeDirectionBtoA
	}
	return TradeDirectionAtoB
}

type SwapWithoutFeesResult struct {
	SourceAmountSwapped      *big.Int
	DestinationAmountSwapped *big.Int
}

type SwapCurveResult struct {
	NewSwapSourceAmount      *big.Int
	NewSwapDestinationAmount *big.Int
	SourceAmountSwapped      *big.Int
	DestinationAmountSwapped *big.Int
	TradeFee                 *big.Int
	OwnerFee                 *big.Int
}

// Used when depositing or withdrawing both tokens.
type TradingTokenResult struct {
	TokenAAmount *big.Int
	TokenBAmount *big.Int
}

const (
	// Pool-share tokens minted to the creator when a pool is initialized.
	InitialPoolShareSupply = 1_000_000_000

	TokensInPool = 2

	// Fixed-point scale for the sqrt valuations in single-sided
	// deposit/withdraw, matching the 12 decimal places of the original
	// precise-number arithmetic.
	PreciseScaleDecimals = 12
)

var (
	U64Max       = new(big.Int).SetUint64(^uint64(0))
	PreciseScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(PreciseScaleDecimals), nil)
)
