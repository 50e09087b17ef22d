package tokenswap

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/tokenswap-go/token_swap/math"
	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

func TestSwapStateEncodeDecode(t *testing.T) {
	state := &SwapState{
		BumpSeed:       253,
		TokenProgramID: solanago.TokenProgramID,
		TokenAAccount:  solanago.MustPublicKeyFromBase58("8HoQnePLqPj4M7PUDzfw8e3Ymdwgc7NUGnaMujpXoXtE"),
		TokenBAccount:  solanago.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"),
		PoolMint:       solanago.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112"),
		TokenAMint:     solanago.MustPublicKeyFromBase58("EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"),
		TokenBMint:     solanago.MustPublicKeyFromBase58("Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"),
		PoolFeeAccount: solanago.MustPublicKeyFromBase58("4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"),
		Fees: fees.Fees{
			TradeFeeNumerator:           25,
			TradeFeeDenominator:         10_000,
			OwnerTradeFeeNumerator:      5,
			OwnerTradeFeeDenominator:    10_000,
			OwnerWithdrawFeeNumerator:   1,
			OwnerWithdrawFeeDenominator: 6,
			HostFeeNumerator:            20,
			HostFeeDenominator:          100,
		},
		Curve: math.SwapCurve{Type: shared.CurveTypeConstantPrice, TokenBPrice: 42},
	}

	data, err := state.Encode()
	if err != nil {
		t.Fatal("Encode() fail", err)
	}
	if len(data) != SwapStateLen {
		t.Fatal("Encode() length fail, got", len(data))
	}

	decoded, err := DecodeSwapState(data)
	if err != nil {
		t.Fatal("DecodeSwapState() fail", err)
	}
	if *decoded != *state {
		t.Fatal("DecodeSwapState() round trip fail")
	}
}

func TestDecodeSwapStateRejectsBadAccounts(t *testing.T) {
	state := &SwapState{
		BumpSeed: 253,
		Curve:    math.SwapCurve{Type: shared.CurveTypeConstantProduct},
	}
	data, err := state.Encode()
	if err != nil {
		t.Fatal("Encode() fail", err)
	}

	bad := append([]byte(nil), data...)
	bad[0] = 2
	if _, err = DecodeSwapState(bad); err == nil {
		t.Fatal("DecodeSwapState() should reject an unknown version")
	}

	bad = append([]byte(nil), data...)
	bad[1] = 0
	if _, err = DecodeSwapState(bad); err == nil {
		t.Fatal("DecodeSwapState() should reject an uninitialized account")
	}

	if _, err = DecodeSwapState(data[:100]); err == nil {
		t.Fatal("DecodeSwapState() should reject truncated data")
	}
}

func TestSwapStateAuthority(t *testing.T) {
	swapKey := solanago.MustPublicKeyFromBase58("8HoQnePLqPj4M7PUDzfw8e3Ymdwgc7NUGnaMujpXoXtE")
	authority, bumpSeed, err := DeriveSwapAuthority(swapKey)
	if err != nil {
		t.Fatal("DeriveSwapAuthority() fail", err)
	}

	state := &SwapState{BumpSeed: bumpSeed}
	fromState, err := state.Authority(swapKey)
	if err != nil {
		t.Fatal("Authority() fail", err)
	}
	if !fromState.Equals(authority) {
		t.Fatal("Authority() mismatch", authority, fromState)
	}
}
