package swapV1

import (
	"fmt"
	"math/big"

	tokenswap "github.com/krazyTry/tokenswap-go/token_swap"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

// DepositQuoteResult
type DepositQuoteResult struct {
	PoolShareAmount *big.Int
	TokenAAmount    *big.Int
	TokenBAmount    *big.Int
	MaximumTokenA   *big.Int
	MaximumTokenB   *big.Int
}

// GetDepositQuote projects the token amounts a DepositAllTokenTypes of
// poolShareAmount will pull in, with slippage-padded maximums for the
// instruction.
func GetDepositQuote(
	state *tokenswap.SwapState,
	balances *PoolBalances,
	poolShareAmount *big.Int,
	slippageBps uint64,
) (*DepositQuoteResult, error) {
	if poolShareAmount == nil || poolShareAmount.Sign() <= 0 {
		return nil, fmt.Errorf("poolShareAmount must be greater than 0")
	}

	result, err := state.Curve.PoolSharesToTradingTokens(
		poolShareAmount,
		new(big.Int).SetUint64(balances.PoolShareSupply),
		new(big.Int).SetUint64(balances.ReserveA),
		new(big.Int).SetUint64(balances.ReserveB),
		shared.RoundingUp,
	)
	if err != nil {
		return nil, fmt.Errorf("deposit quote: %w", err)
	}

	pad := big.NewInt(basisPointMax + int64(slippageBps))
	maxA := new(big.Int).Mul(result.TokenAAmount, pad)
	maxA.Div(maxA, big.NewInt(basisPointMax))
	maxB := new(big.Int).Mul(result.TokenBAmount, pad)
	maxB.Div(maxB, big.NewInt(basisPointMax))

	return &DepositQuoteResult{
		PoolShareAmount: new(big.Int).Set(poolShareAmount),
		TokenAAmount:    result.TokenAAmount,
		TokenBAmount:    result.TokenBAmount,
		MaximumTokenA:   maxA,
		MaximumTokenB:   maxB,
	}, nil
}

// WithdrawQuoteResult
type WithdrawQuoteResult struct {
	PoolShareAmount *big.Int
	WithdrawFee     *big.Int
	TokenAAmount    *big.Int
	TokenBAmount    *big.Int
	MinimumTokenA   *big.Int
	MinimumTokenB   *big.Int
}

// GetWithdrawQuote projects the token payout of a WithdrawAllTokenTypes of
// poolShareAmount, after the owner withdraw fee.
func GetWithdrawQuote(
	state *tokenswap.SwapState,
	balances *PoolBalances,
	poolShareAmount *big.Int,
	slippageBps uint64,
) (*WithdrawQuoteResult, error) {
	if poolShareAmount == nil || poolShareAmount.Sign() <= 0 {
		return nil, fmt.Errorf("poolShareAmount must be greater than 0")
	}

	withdrawFee := state.Fees.OwnerWithdrawFee(poolShareAmount)
	netShares := new(big.Int).Sub(poolShareAmount, withdrawFee)
	if netShares.Sign() <= 0 {
		return nil, fmt.Errorf("withdraw quote: amount is consumed by the withdraw fee")
	}

	result, err := state.Curve.PoolSharesToTradingTokens(
		netShares,
		new(big.Int).SetUint64(balances.PoolShareSupply),
		new(big.Int).SetUint64(balances.ReserveA),
		new(big.Int).SetUint64(balances.ReserveB),
		shared.RoundingDown,
	)
	if err != nil {
		return nil, fmt.Errorf("withdraw quote: %w", err)
	}

	pad := big.NewInt(basisPointMax - int64(slippageBps))
	minA := new(big.Int).Mul(result.TokenAAmount, pad)
	minA.Div(minA, big.NewInt(basisPointMax))
	minB := new(big.Int).Mul(result.TokenBAmount, pad)
	minB.Div(minB, big.NewInt(basisPointMax))

	return &WithdrawQuoteResult{
		PoolShareAmount: new(big.Int).Set(poolShareAmount),
		WithdrawFee:     withdrawFee,
		TokenAAmount:    result.TokenAAmount,
		TokenBAmount:    result.TokenBAmount,
		MinimumTokenA:   minA,
		MinimumTokenB:   minB,
	}, nil
}
