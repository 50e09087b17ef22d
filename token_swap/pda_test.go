package tokenswap

import (
	"testing"

	solanago "github.com/gagliardetto/solana-go"
)

func TestDeriveSwapAuthority(t *testing.T) {
	swapKey := solanago.MustPublicKeyFromBase58("8HoQnePLqPj4M7PUDzfw8e3Ymdwgc7NUGnaMujpXoXtE")

	authority, bumpSeed, err := DeriveSwapAuthority(swapKey)
	if err != nil {
		t.Fatal("DeriveSwapAuthority() fail", err)
	}
	if authority.IsZero() {
		t.Fatal("DeriveSwapAuthority() returned a zero key")
	}

	again, againBump, err := DeriveSwapAuthority(swapKey)
	if err != nil {
		t.Fatal("DeriveSwapAuthority() fail", err)
	}
	if !again.Equals(authority) || againBump != bumpSeed {
		t.Fatal("DeriveSwapAuthority() not deterministic")
	}

	other, _, err := DeriveSwapAuthority(solanago.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"))
	if err != nil {
		t.Fatal("DeriveSwapAuthority() fail", err)
	}
	if other.Equals(authority) {
		t.Fatal("different swap keys derived the same authority")
	}

	recreated, err := SwapAuthorityForBump(swapKey, bumpSeed)
	if err != nil {
		t.Fatal("SwapAuthorityForBump() fail", err)
	}
	if !recreated.Equals(authority) {
		t.Fatal("SwapAuthorityForBump() mismatch", authority, recreated)
	}
}
