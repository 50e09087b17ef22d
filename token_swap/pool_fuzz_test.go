package tokenswap

import (
	"errors"
	"math/big"
	"testing"
)

// FuzzSwap drives random amounts through a constant-product pool and checks
// the core property: the product of the reserves never decreases.
func FuzzSwap(f *testing.F) {
	for _, seed := range []uint64{1, 3, 1_000, 99_999, 100_000, 500_000, 1_000_000, 1 << 40} {
		f.Add(seed, true)
		f.Add(seed, false)
	}

	f.Fuzz(func(t *testing.T, amountIn uint64, aToB bool) {
		if amountIn == 0 {
			return
		}
		// cap relative to the pool so the destination reserve survives
		amountIn %= 100_000_000
		if amountIn == 0 {
			return
		}

		pool, err := NewPool(PoolParams{
			SwapKey:      testSwapKey,
			SeedReserveA: 1_000_000_000,
			SeedReserveB: 1_000_000_000,
			Curve:        SwapCurve{Type: CurveTypeConstantProduct},
			Fees:         tradeFees(),
			FeeAccount:   testFeeAccount,
		})
		if err != nil {
			t.Fatal("NewPool() fail", err)
		}

		direction := TradeDirectionAtoB
		if !aToB {
			direction = TradeDirectionBtoA
		}

		before := pool.State()
		kBefore := new(big.Int).Mul(new(big.Int).SetUint64(before.ReserveA), new(big.Int).SetUint64(before.ReserveB))

		result, err := pool.Swap(SwapParams{AmountIn: amountIn, Direction: direction})
		if errors.Is(err, ErrZeroTradingTokens) || errors.Is(err, ErrInsufficientReserve) {
			return
		}
		if err != nil {
			t.Fatal("Swap() fail", err)
		}

		after := pool.State()
		kAfter := new(big.Int).Mul(new(big.Int).SetUint64(after.ReserveA), new(big.Int).SetUint64(after.ReserveB))
		if kAfter.Cmp(kBefore) < 0 {
			t.Fatal("product of reserves decreased", kBefore, kAfter)
		}
		if result.AmountOut == 0 {
			t.Fatal("Swap() returned a zero output without an error")
		}
		if after.PoolShareSupply != before.PoolShareSupply {
			t.Fatal("Swap() moved the share supply", after.PoolShareSupply)
		}
	})
}
