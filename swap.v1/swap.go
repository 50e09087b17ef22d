package swapV1

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"

	solanago "github.com/krazyTry/tokenswap-go/solana"
	tokenswap "github.com/krazyTry/tokenswap-go/token_swap"
)

// SwapInstruction builds the instruction list for a swap: missing
// associated token accounts are created first, then the swap instruction
// itself.
func (m *TokenSwap) SwapInstruction(
	ctx context.Context,
	payer solana.PublicKey,
	owner solana.PublicKey,
	swapKey solana.PublicKey,
	state *tokenswap.SwapState,
	amountIn *big.Int,
	minimumAmountOut *big.Int,
	direction TradeDirection,
	hostFeeAccount *solana.PublicKey,
) ([]solana.Instruction, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, fmt.Errorf("amountIn must be greater than 0")
	}
	if !amountIn.IsUint64() || minimumAmountOut != nil && !minimumAmountOut.IsUint64() {
		return nil, fmt.Errorf("amount exceeds uint64")
	}

	authority, err := state.Authority(swapKey)
	if err != nil {
		return nil, fmt.Errorf("derive swap authority: %w", err)
	}

	sourceMint, destinationMint := state.TokenAMint, state.TokenBMint
	swapSource, swapDestination := state.TokenAAccount, state.TokenBAccount
	if direction == TradeDirectionBtoA {
		sourceMint, destinationMint = destinationMint, sourceMint
		swapSource, swapDestination = swapDestination, swapSource
	}

	var instructions []solana.Instruction
	userSource, err := solanago.PrepareTokenATA(ctx, m.rpcClient, owner, sourceMint, payer, &instructions)
	if err != nil {
		return nil, err
	}
	userDestination, err := solanago.PrepareTokenATA(ctx, m.rpcClient, owner, destinationMint, payer, &instructions)
	if err != nil {
		return nil, err
	}

	minOut := uint64(0)
	if minimumAmountOut != nil {
		minOut = minimumAmountOut.Uint64()
	}

	instructions = append(instructions, NewSwapInstruction(
		amountIn.Uint64(),
		minOut,
		swapKey,
		authority,
		owner,
		userSource,
		swapSource,
		swapDestination,
		userDestination,
		state.PoolMint,
		state.PoolFeeAccount,
		state.TokenProgramID,
		hostFeeAccount,
	))
	return instructions, nil
}

// Swap submits a swap signed by the owner, with the payer covering fees and
// any missing associated token accounts.
//
// Example:
//
// sig, _ := swapClient.Swap(ctx, payer, owner, swapKey, state, amountIn, quote.MinSwapOutAmount, swapV1.TradeDirectionAtoB, nil)
func (m *TokenSwap) Swap(
	ctx context.Context,
	payer *solana.Wallet,
	owner *solana.Wallet,
	swapKey solana.PublicKey,
	state *tokenswap.SwapState,
	amountIn *big.Int,
	minimumAmountOut *big.Int,
	direction TradeDirection,
	hostFeeAccount *solana.PublicKey,
) (string, error) {
	instructions, err := m.SwapInstruction(
		ctx,
		payer.PublicKey(),
		owner.PublicKey(),
		swapKey,
		state,
		amountIn,
		minimumAmountOut,
		direction,
		hostFeeAccount,
	)
	if err != nil {
		return "", err
	}

	sig, err := solanago.SendTransaction(ctx,
		m.rpcClient,
		m.wsClient,
		instructions,
		payer.PublicKey(),
		func(key solana.PublicKey) *solana.PrivateKey {
			switch {
			case key.Equals(payer.PublicKey()):
				return &payer.PrivateKey
			case key.Equals(owner.PublicKey()):
				return &owner.PrivateKey
			default:
				return nil
			}
		},
	)
	if err != nil {
		return "", err
	}
	return sig.String(), nil
}
