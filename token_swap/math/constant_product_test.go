package math

import (
	"errors"
	"math/big"
	"testing"

	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

func TestConstantProductSwap(t *testing.T) {
	swapSource := big.NewInt(1_000_000)
	swapDestination := big.NewInt(1_000_000)

	result, err := ConstantProductSwap(big.NewInt(99_700), swapSource, swapDestination)
	if err != nil {
		t.Fatal("ConstantProductSwap() fail", err)
	}
	if result.DestinationAmountSwapped.Cmp(big.NewInt(90_661)) != 0 {
		t.Fatal("ConstantProductSwap() destination fail, got", result.DestinationAmountSwapped)
	}

	invariantBefore := new(big.Int).Mul(swapSource, swapDestination)
	newSource := new(big.Int).Add(swapSource, result.SourceAmountSwapped)
	newDestination := new(big.Int).Sub(swapDestination, result.DestinationAmountSwapped)
	invariantAfter := new(big.Int).Mul(newSource, newDestination)
	if invariantAfter.Cmp(invariantBefore) < 0 {
		t.Fatal("ConstantProductSwap() invariant decreased", invariantBefore, "->", invariantAfter)
	}
}

func TestConstantProductSwapZeroOutput(t *testing.T) {
	_, err := ConstantProductSwap(big.NewInt(1), big.NewInt(1_000_000), big.NewInt(5))
	if !errors.Is(err, ErrZeroTradingTokens) {
		t.Fatal("ConstantProductSwap() should reject a zero output, got", err)
	}
}

func TestConstantProductSwapInvariantNeverDecreases(t *testing.T) {
	swapSource := big.NewInt(1_187_508)
	swapDestination := big.NewInt(903_245)
	invariant := new(big.Int).Mul(swapSource, swapDestination)

	for amount := int64(1); amount < 50_000; amount += 977 {
		result, err := ConstantProductSwap(big.NewInt(amount), swapSource, swapDestination)
		if errors.Is(err, ErrZeroTradingTokens) {
			continue
		}
		if err != nil {
			t.Fatal("ConstantProductSwap() fail", err)
		}
		if result.SourceAmountSwapped.Cmp(big.NewInt(amount)) > 0 {
			t.Fatal("ConstantProductSwap() charged more than offered", amount, result.SourceAmountSwapped)
		}

		swapSource.Add(swapSource, result.SourceAmountSwapped)
		swapDestination.Sub(swapDestination, result.DestinationAmountSwapped)

		next := new(big.Int).Mul(swapSource, swapDestination)
		if next.Cmp(invariant) < 0 {
			t.Fatal("invariant decreased at amount", amount)
		}
		invariant = next
	}
}

func TestProRataTradingTokens(t *testing.T) {
	supply := big.NewInt(1_000_000_000)
	reserveA := big.NewInt(1_000_000)
	reserveB := big.NewInt(1_000_000)

	result, err := ProRataTradingTokens(big.NewInt(10_000_000), supply, reserveA, reserveB, shared.RoundingUp)
	if err != nil {
		t.Fatal("ProRataTradingTokens() fail", err)
	}
	if result.TokenAAmount.Cmp(big.NewInt(10_000)) != 0 || result.TokenBAmount.Cmp(big.NewInt(10_000)) != 0 {
		t.Fatal("ProRataTradingTokens() fail, got", result.TokenAAmount, result.TokenBAmount)
	}

	// ceiling must not lift a zero amount to 1
	result, err = ProRataTradingTokens(big.NewInt(1), supply, reserveA, reserveB, shared.RoundingUp)
	if err != nil {
		t.Fatal("ProRataTradingTokens() fail", err)
	}
	if result.TokenAAmount.Sign() != 0 || result.TokenBAmount.Sign() != 0 {
		t.Fatal("ProRataTradingTokens() rounded dust up, got", result.TokenAAmount, result.TokenBAmount)
	}

	result, err = ProRataTradingTokens(big.NewInt(10_000_001), supply, reserveA, reserveB, shared.RoundingDown)
	if err != nil {
		t.Fatal("ProRataTradingTokens() fail", err)
	}
	if result.TokenAAmount.Cmp(big.NewInt(10_000)) != 0 {
		t.Fatal("ProRataTradingTokens() floor fail, got", result.TokenAAmount)
	}

	if _, err = ProRataTradingTokens(big.NewInt(1), big.NewInt(0), reserveA, reserveB, shared.RoundingDown); !errors.Is(err, ErrCalculation) {
		t.Fatal("ProRataTradingTokens() should reject zero supply, got", err)
	}
}

func TestConstantProductDepositSingle(t *testing.T) {
	// floor(1e9 * (sqrt(1.01) - 1)) = 4_987_562
	shares, err := ConstantProductDepositSingle(big.NewInt(10_000), big.NewInt(1_000_000), big.NewInt(1_000_000_000))
	if err != nil {
		t.Fatal("ConstantProductDepositSingle() fail", err)
	}
	if shares.Cmp(big.NewInt(4_987_562)) != 0 {
		t.Fatal("ConstantProductDepositSingle() fail, got", shares)
	}

	if _, err = ConstantProductDepositSingle(big.NewInt(10_000), big.NewInt(0), big.NewInt(1_000_000_000)); !errors.Is(err, ErrEmptyReserve) {
		t.Fatal("ConstantProductDepositSingle() should reject empty reserve, got", err)
	}
}

func TestConstantProductWithdrawSingle(t *testing.T) {
	// ceil(1e9 * (1 - sqrt(0.99))) = 5_012_563
	shares, err := ConstantProductWithdrawSingle(big.NewInt(10_000), big.NewInt(1_000_000), big.NewInt(1_000_000_000), shared.RoundingUp)
	if err != nil {
		t.Fatal("ConstantProductWithdrawSingle() fail", err)
	}
	if shares.Cmp(big.NewInt(5_012_563)) != 0 {
		t.Fatal("ConstantProductWithdrawSingle() fail, got", shares)
	}

	// withdrawing costs at least what the same deposit credits
	deposited, err := ConstantProductDepositSingle(big.NewInt(10_000), big.NewInt(1_000_000), big.NewInt(1_000_000_000))
	if err != nil {
		t.Fatal("ConstantProductDepositSingle() fail", err)
	}
	if shares.Cmp(deposited) < 0 {
		t.Fatal("withdraw charged fewer shares than deposit credits", shares, deposited)
	}

	if _, err = ConstantProductWithdrawSingle(big.NewInt(1_000_001), big.NewInt(1_000_000), big.NewInt(1_000_000_000), shared.RoundingUp); !errors.Is(err, ErrEmptyReserve) {
		t.Fatal("ConstantProductWithdrawSingle() should reject draining the reserve, got", err)
	}
}

func TestCeilDiv(t *testing.T) {
	quotient, newDivisor := CeilDiv(big.NewInt(10), big.NewInt(3))
	if quotient.Cmp(big.NewInt(4)) != 0 || newDivisor.Cmp(big.NewInt(3)) != 0 {
		t.Fatal("CeilDiv() fail, got", quotient, newDivisor)
	}

	quotient, newDivisor = CeilDiv(big.NewInt(12), big.NewInt(3))
	if quotient.Cmp(big.NewInt(4)) != 0 || newDivisor.Cmp(big.NewInt(3)) != 0 {
		t.Fatal("CeilDiv() exact fail, got", quotient, newDivisor)
	}

	// re-derived pair must still cover the dividend
	quotient, newDivisor = CeilDiv(big.NewInt(1_000_000_000_000), big.NewInt(1_099_700))
	product := new(big.Int).Mul(quotient, newDivisor)
	if product.Cmp(big.NewInt(1_000_000_000_000)) < 0 {
		t.Fatal("CeilDiv() pair below dividend", quotient, newDivisor)
	}
}

func TestSqrt(t *testing.T) {
	for _, tc := range []struct{ in, want int64 }{
		{0, 0},
		{1, 1},
		{99, 9},
		{100, 10},
		{1_000_000_000_000, 1_000_000},
	} {
		if got := Sqrt(big.NewInt(tc.in)); got.Cmp(big.NewInt(tc.want)) != 0 {
			t.Fatal("Sqrt() fail", tc.in, got)
		}
	}
}
