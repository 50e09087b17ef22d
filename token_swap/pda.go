package tokenswap

import (
	solanago "github.com/gagliardetto/solana-go"

	tokenswapgen "github.com/krazyTry/tokenswap-go/gen/token_swap"
)

// DeriveSwapAuthority derives the program address holding custody of the
// pool's token reserves. The single seed is the swap account key, so the
// authority is fixed by the pool's identity.
func DeriveSwapAuthority(swapKey solanago.PublicKey) (solanago.PublicKey, uint8, error) {
	return solanago.FindProgramAddress([][]byte{swapKey.Bytes()}, tokenswapgen.ProgramID)
}

// SwapAuthorityForBump re-creates the authority from a stored bump seed,
// validating state decoded from the chain.
func SwapAuthorityForBump(swapKey solanago.PublicKey, bumpSeed uint8) (solanago.PublicKey, error) {
	return solanago.CreateProgramAddress(
		[][]byte{swapKey.Bytes(), {bumpSeed}},
		tokenswapgen.ProgramID,
	)
}
