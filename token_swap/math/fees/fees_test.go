package fees

import (
	"errors"
	"math/big"
	"testing"
)

func TestTradingFee(t *testing.T) {
	f := &Fees{
		TradeFeeNumerator:   25,
		TradeFeeDenominator: 10_000,
	}

	fee := f.TradingFee(big.NewInt(100_000))
	if fee.Cmp(big.NewInt(250)) != 0 {
		t.Fatal("TradingFee() fail, got", fee)
	}

	// a non-zero rate never truncates to a zero fee
	fee = f.TradingFee(big.NewInt(10))
	if fee.Cmp(big.NewInt(1)) != 0 {
		t.Fatal("TradingFee() minimum fee fail, got", fee)
	}

	disabled := &Fees{}
	fee = disabled.TradingFee(big.NewInt(100_000))
	if fee.Sign() != 0 {
		t.Fatal("TradingFee() disabled fail, got", fee)
	}
}

func TestOwnerFees(t *testing.T) {
	f := &Fees{
		OwnerTradeFeeNumerator:      5,
		OwnerTradeFeeDenominator:    10_000,
		OwnerWithdrawFeeNumerator:   1,
		OwnerWithdrawFeeDenominator: 6,
		HostFeeNumerator:            20,
		HostFeeDenominator:          100,
	}

	ownerFee := f.OwnerTradingFee(big.NewInt(100_000))
	if ownerFee.Cmp(big.NewInt(50)) != 0 {
		t.Fatal("OwnerTradingFee() fail, got", ownerFee)
	}

	withdrawFee := f.OwnerWithdrawFee(big.NewInt(10_000_000))
	if withdrawFee.Cmp(big.NewInt(1_666_666)) != 0 {
		t.Fatal("OwnerWithdrawFee() fail, got", withdrawFee)
	}

	hostFee := f.HostFee(ownerFee)
	if hostFee.Cmp(big.NewInt(10)) != 0 {
		t.Fatal("HostFee() fail, got", hostFee)
	}

	// host fee dust stays with the protocol
	hostFee = f.HostFee(big.NewInt(4))
	if hostFee.Sign() != 0 {
		t.Fatal("HostFee() dust fail, got", hostFee)
	}
}

func TestValidate(t *testing.T) {
	valid := &Fees{
		TradeFeeNumerator:           25,
		TradeFeeDenominator:         10_000,
		OwnerTradeFeeNumerator:      5,
		OwnerTradeFeeDenominator:    10_000,
		OwnerWithdrawFeeNumerator:   1,
		OwnerWithdrawFeeDenominator: 6,
		HostFeeNumerator:            20,
		HostFeeDenominator:          100,
	}
	if err := valid.Validate(); err != nil {
		t.Fatal("Validate() fail", err)
	}

	if err := (&Fees{}).Validate(); err != nil {
		t.Fatal("Validate() disabled fees fail", err)
	}

	overOne := &Fees{TradeFeeNumerator: 10_001, TradeFeeDenominator: 10_000}
	if err := overOne.Validate(); !errors.Is(err, ErrInvalidFeeConfiguration) {
		t.Fatal("Validate() should reject numerator above denominator, got", err)
	}

	zeroDen := &Fees{TradeFeeNumerator: 1}
	if err := zeroDen.Validate(); !errors.Is(err, ErrInvalidFeeConfiguration) {
		t.Fatal("Validate() should reject zero denominator, got", err)
	}

	fullExtraction := &Fees{
		TradeFeeNumerator:        5_000,
		TradeFeeDenominator:      10_000,
		OwnerTradeFeeNumerator:   5_000,
		OwnerTradeFeeDenominator: 10_000,
	}
	if err := fullExtraction.Validate(); !errors.Is(err, ErrInvalidFeeConfiguration) {
		t.Fatal("Validate() should reject rates summing to 100%, got", err)
	}
}
