package tokenswapgo

import (
	swapV1 "github.com/krazyTry/tokenswap-go/swap.v1"
)

// NewSwapClient creates a new token-swap client.
//
// Example:
//
// swapClient := NewSwapClient(rpcClient)
//
// state, _ := swapClient.GetSwapState(ctx, swapKey)
//
// quote, _, _ := swapClient.SwapQuote(ctx, swapKey, amountIn, 50, swapV1.TradeDirectionAtoB)
var NewSwapClient = swapV1.NewTokenSwap
