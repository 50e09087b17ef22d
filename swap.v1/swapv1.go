package swapV1

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"

	tokenswapgen "github.com/krazyTry/tokenswap-go/gen/token_swap"
)

// TokenSwap is the client for the token-swap program. It reads swap
// accounts, produces offline quotes against a decoded state and builds the
// operation instructions.
type TokenSwap struct {
	rpcClient *rpc.Client
	wsClient  *ws.Client
	programID solana.PublicKey
}

// NewTokenSwap creates a new token-swap client.
//
// Example:
//
// swapClient := swapV1.NewTokenSwap(rpcClient, swapV1.WithWSClient(wsClient))
//
// state, _ := swapClient.GetSwapState(ctx, swapKey)
//
// quote, _, _ := swapClient.SwapQuote(ctx, swapKey, amountIn, 50, swapV1.TradeDirectionAtoB)
func NewTokenSwap(rpcClient *rpc.Client, opts ...Option) *TokenSwap {
	o := &TokenSwap{
		rpcClient: rpcClient,
		programID: tokenswapgen.ProgramID,
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

type Option func(*TokenSwap)

// WithWSClient enables confirmation waits on submitted transactions.
func WithWSClient(wsClient *ws.Client) Option {
	return func(m *TokenSwap) {
		m.wsClient = wsClient
	}
}
