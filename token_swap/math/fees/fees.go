package fees

import (
	"errors"
	"math/big"
)

var ErrInvalidFeeConfiguration = errors.New("invalid fee configuration")

// Fees carries the pool's fee rates as numerator/denominator pairs, fixed at
// pool creation.
type Fees struct {
	// Retained in the reserves on every swap, accruing to liquidity
	// providers.
	TradeFeeNumerator   uint64
	TradeFeeDenominator uint64

	// Routed out of the flow to the protocol fee account on every swap.
	OwnerTradeFeeNumerator   uint64
	OwnerTradeFeeDenominator uint64

	// Deducted in pool shares before a withdrawal is converted to tokens.
	OwnerWithdrawFeeNumerator   uint64
	OwnerWithdrawFeeDenominator uint64

	// Sub-share of the owner trade fee for the hosting UI.
	HostFeeNumerator   uint64
	HostFeeDenominator uint64
}

// calculateFee floors amount * numerator / denominator but never rounds a
// non-zero rate down to a zero fee; the minimum charge is 1.
func calculateFee(amount *big.Int, numerator, denominator uint64) *big.Int {
	if numerator == 0 || amount.Sign() == 0 {
		return big.NewInt(0)
	}
	fee := new(big.Int).Mul(amount, new(big.Int).SetUint64(numerator))
	fee.Div(fee, new(big.Int).SetUint64(denominator))
	if fee.Sign() == 0 {
		return big.NewInt(1)
	}
	return fee
}

func (f *Fees) TradingFee(tradingTokens *big.Int) *big.Int {
	return calculateFee(tradingTokens, f.TradeFeeNumerator, f.TradeFeeDenominator)
}

func (f *Fees) OwnerTradingFee(tradingTokens *big.Int) *big.Int {
	return calculateFee(tradingTokens, f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator)
}

func (f *Fees) OwnerWithdrawFee(poolShares *big.Int) *big.Int {
	return calculateFee(poolShares, f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator)
}

// HostFee is carved out of an already-charged owner trading fee, so dust is
// left with the protocol rather than bumped to 1.
func (f *Fees) HostFee(ownerFee *big.Int) *big.Int {
	if f.HostFeeNumerator == 0 || ownerFee.Sign() == 0 {
		return big.NewInt(0)
	}
	fee := new(big.Int).Mul(ownerFee, new(big.Int).SetUint64(f.HostFeeNumerator))
	return fee.Div(fee, new(big.Int).SetUint64(f.HostFeeDenominator))
}

// ValidateFeeFraction accepts 0/0 as a disabled fee and otherwise requires
// numerator/denominator to stay inside [0, 1).
func ValidateFeeFraction(numerator, denominator uint64) error {
	if denominator == 0 {
		if numerator == 0 {
			return nil
		}
		return ErrInvalidFeeConfiguration
	}
	if numerator >= denominator {
		return ErrInvalidFeeConfiguration
	}
	return nil
}

// Validate rejects the configuration at pool creation when any single rate
// is out of range or the trading and owner rates together reach 100% of the
// flow.
func (f *Fees) Validate() error {
	if err := ValidateFeeFraction(f.TradeFeeNumerator, f.TradeFeeDenominator); err != nil {
		return err
	}
	if err := ValidateFeeFraction(f.OwnerTradeFeeNumerator, f.OwnerTradeFeeDenominator); err != nil {
		return err
	}
	if err := ValidateFeeFraction(f.OwnerWithdrawFeeNumerator, f.OwnerWithdrawFeeDenominator); err != nil {
		return err
	}
	if err := ValidateFeeFraction(f.HostFeeNumerator, f.HostFeeDenominator); err != nil {
		return err
	}

	if f.TradeFeeDenominator != 0 && f.OwnerTradeFeeDenominator != 0 {
		// tradeNum/tradeDen + ownerNum/ownerDen >= 1
		lhs := new(big.Int).Mul(
			new(big.Int).SetUint64(f.TradeFeeNumerator),
			new(big.Int).SetUint64(f.OwnerTradeFeeDenominator),
		)
		lhs.Add(lhs, new(big.Int).Mul(
			new(big.Int).SetUint64(f.OwnerTradeFeeNumerator),
			new(big.Int).SetUint64(f.TradeFeeDenominator),
		))
		rhs := new(big.Int).Mul(
			new(big.Int).SetUint64(f.TradeFeeDenominator),
			new(big.Int).SetUint64(f.OwnerTradeFeeDenominator),
		)
		if lhs.Cmp(rhs) >= 0 {
			return ErrInvalidFeeConfiguration
		}
	}
	return nil
}
