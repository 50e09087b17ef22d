package swapV1

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	solanago "github.com/krazyTry/tokenswap-go/solana"
	tokenswap "github.com/krazyTry/tokenswap-go/token_swap"
)

// KeyedSwapState pairs a decoded swap account with its address.
type KeyedSwapState struct {
	PublicKey solana.PublicKey
	State     *tokenswap.SwapState
}

// FindSwapAccounts scans the program for initialized swap accounts,
// optionally restricted to pools whose token A mint matches. Accounts that
// fail to decode are skipped.
func (m *TokenSwap) FindSwapAccounts(ctx context.Context, tokenAMint solana.PublicKey) ([]*KeyedSwapState, error) {
	// token A mint sits after the three leading bytes and four pubkeys.
	const tokenAMintOffset = 3 + 32*4

	opts := solanago.GenProgramAccountFilter(tokenswap.SwapStateLen, tokenAMint, tokenAMintOffset)
	outs, err := m.rpcClient.GetProgramAccountsWithOpts(ctx, m.programID, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch swap accounts: %w", err)
	}

	list := make([]*KeyedSwapState, 0, len(outs))
	for _, out := range outs {
		state, err := tokenswap.DecodeSwapState(out.Account.Data.GetBinary())
		if err != nil {
			continue
		}
		list = append(list, &KeyedSwapState{
			PublicKey: out.Pubkey,
			State:     state,
		})
	}
	return list, nil
}
