package swapV1

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"

	solanago "github.com/krazyTry/tokenswap-go/solana"
	tokenswap "github.com/krazyTry/tokenswap-go/token_swap"
)

// PoolBalances is the live snapshot the quote functions run against.
type PoolBalances struct {
	ReserveA        uint64
	ReserveB        uint64
	PoolShareSupply uint64
}

// GetSwapState fetches and unpacks a swap account.
func (m *TokenSwap) GetSwapState(ctx context.Context, swapKey solana.PublicKey) (*tokenswap.SwapState, error) {
	out, err := solanago.GetAccountInfo(ctx, m.rpcClient, swapKey)
	if err != nil {
		return nil, fmt.Errorf("fetch swap account: %w", err)
	}
	if !out.Value.Owner.Equals(m.programID) {
		return nil, fmt.Errorf("account %s is not owned by the token-swap program", swapKey)
	}

	state, err := tokenswap.DecodeSwapState(out.Value.Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("decode swap account: %w", err)
	}
	return state, nil
}

// GetPoolBalances reads the two reserve token accounts and the pool-share
// mint supply in one round trip.
func (m *TokenSwap) GetPoolBalances(ctx context.Context, state *tokenswap.SwapState) (*PoolBalances, error) {
	outs, err := solanago.GetMultipleAccountInfo(ctx, m.rpcClient, []solana.PublicKey{
		state.TokenAAccount,
		state.TokenBAccount,
		state.PoolMint,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch pool accounts: %w", err)
	}
	for i, out := range outs.Value {
		if out == nil {
			return nil, fmt.Errorf("pool account %d is missing", i)
		}
	}

	reserveA, err := new(solanago.AccountLayout).Decode(outs.Value[0].Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("decode reserve A account: %w", err)
	}
	reserveB, err := new(solanago.AccountLayout).Decode(outs.Value[1].Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("decode reserve B account: %w", err)
	}
	poolMint, err := new(solanago.TokenLayout).Decode(outs.Value[2].Data.GetBinary())
	if err != nil {
		return nil, fmt.Errorf("decode pool mint: %w", err)
	}

	return &PoolBalances{
		ReserveA:        reserveA.Amount,
		ReserveB:        reserveB.Amount,
		PoolShareSupply: poolMint.Supply,
	}, nil
}
