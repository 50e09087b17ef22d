package tokenswap

import (
	"errors"

	"github.com/krazyTry/tokenswap-go/token_swap/math"
	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
)

var (
	// ErrZeroAmount rejects a non-positive input amount.
	ErrZeroAmount = errors.New("zero amount")

	// ErrSlippageExceeded means a computed amount violated the caller's
	// minimum/maximum bound.
	ErrSlippageExceeded = errors.New("slippage limit exceeded")

	// ErrInsufficientReserve means the operation would drive a reserve or
	// the pool-share supply to zero or below.
	ErrInsufficientReserve = errors.New("insufficient reserve")

	// ErrConcurrentModification means the caller's state version is stale;
	// re-read the pool state and retry.
	ErrConcurrentModification = errors.New("concurrent modification of pool state")

	// ErrArithmeticOverflow means an intermediate value cannot be
	// represented; the operation fails closed instead of wrapping.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrEmptySupply rejects a zero seed reserve at pool creation.
	ErrEmptySupply = errors.New("empty seed supply")

	ErrZeroTradingTokens       = math.ErrZeroTradingTokens
	ErrInvalidCurve            = math.ErrInvalidCurve
	ErrInvalidFeeConfiguration = fees.ErrInvalidFeeConfiguration
)
