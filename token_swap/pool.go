package tokenswap

import (
	"math/big"
	"sync"

	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/tokenswap-go/token_swap/math"
	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

// PoolState is the mutable part of a pool: reserves, outstanding pool
// shares, the fee/host account ledger and a version counter bumped on every
// successful mutation. Callers read a snapshot, pass its Version back with
// the operation and retry on ErrConcurrentModification.
type PoolState struct {
	ReserveA        uint64
	ReserveB        uint64
	PoolShareSupply uint64

	// Owner trading fee credits, in reserve tokens.
	FeeTokenA uint64
	FeeTokenB uint64
	// Owner withdraw fee credits; these shares stay in circulation.
	FeeShares uint64

	HostTokenA uint64
	HostTokenB uint64

	Version uint64
}

// Pool owns the state of one trading pair. Every mutating operation is a
// single atomic transition guarded by the mutex; no partially-updated state
// is observable.
type Pool struct {
	mu sync.Mutex

	SwapKey   solanago.PublicKey
	Authority solanago.PublicKey
	BumpSeed  uint8

	Curve math.SwapCurve
	Fees  fees.Fees

	FeeAccount     solanago.PublicKey
	HostFeeAccount *solanago.PublicKey

	state PoolState
}

type PoolParams struct {
	SwapKey        solanago.PublicKey
	SeedReserveA   uint64
	SeedReserveB   uint64
	Curve          math.SwapCurve
	Fees           fees.Fees
	FeeAccount     solanago.PublicKey
	HostFeeAccount *solanago.PublicKey // Optional
}

// NewPool validates the configuration, derives the reserve authority and
// seeds the pool, minting the initial pool-share supply to the creator.
func NewPool(params PoolParams) (*Pool, error) {
	if err := params.Fees.Validate(); err != nil {
		return nil, err
	}
	if err := params.Curve.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateSeedReserves(params.SeedReserveA, params.SeedReserveB); err != nil {
		return nil, err
	}

	authority, bumpSeed, err := DeriveSwapAuthority(params.SwapKey)
	if err != nil {
		return nil, err
	}

	supply, err := toU64(params.Curve.NewPoolShareSupply())
	if err != nil {
		return nil, err
	}

	return &Pool{
		SwapKey:        params.SwapKey,
		Authority:      authority,
		BumpSeed:       bumpSeed,
		Curve:          params.Curve,
		Fees:           params.Fees,
		FeeAccount:     params.FeeAccount,
		HostFeeAccount: params.HostFeeAccount,
		state: PoolState{
			ReserveA:        params.SeedReserveA,
			ReserveB:        params.SeedReserveB,
			PoolShareSupply: supply,
		},
	}, nil
}

// State returns a snapshot; read-only callers need no locking beyond this.
func (p *Pool) State() PoolState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pool) checkVersion(stateVersion uint64) error {
	if stateVersion != p.state.Version {
		return ErrConcurrentModification
	}
	return nil
}

type SwapParams struct {
	StateVersion     uint64
	AmountIn         uint64
	MinimumAmountOut uint64
	Direction        TradeDirection
}

type SwapResult struct {
	AmountIn     uint64
	AmountOut    uint64
	TradeFee     uint64
	OwnerFee     uint64
	HostFee      uint64
	StateVersion uint64
}

// Swap trades AmountIn of the source token for the destination token. The
// trading fee stays in the source reserve; the owner fee is routed to the
// fee account, with the host cut split out when a host account is
// configured.
func (p *Pool) Swap(params SwapParams) (*SwapResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkVersion(params.StateVersion); err != nil {
		return nil, err
	}
	if params.AmountIn == 0 {
		return nil, ErrZeroAmount
	}

	swapSource, swapDestination := p.state.ReserveA, p.state.ReserveB
	if params.Direction == TradeDirectionBtoA {
		swapSource, swapDestination = p.state.ReserveB, p.state.ReserveA
	}

	result, err := p.Curve.Swap(
		new(big.Int).SetUint64(params.AmountIn),
		new(big.Int).SetUint64(swapSource),
		new(big.Int).SetUint64(swapDestination),
		params.Direction,
		&p.Fees,
	)
	if err != nil {
		return nil, err
	}

	amountOut, err := toU64(result.DestinationAmountSwapped)
	if err != nil {
		return nil, err
	}
	if amountOut < params.MinimumAmountOut {
		return nil, ErrSlippageExceeded
	}
	if amountOut >= swapDestination {
		return nil, ErrInsufficientReserve
	}

	tradeFee, err := toU64(result.TradeFee)
	if err != nil {
		return nil, err
	}
	ownerFee, err := toU64(result.OwnerFee)
	if err != nil {
		return nil, err
	}
	hostFee := uint64(0)
	if p.HostFeeAccount != nil {
		hostFee, err = toU64(p.Fees.HostFee(new(big.Int).SetUint64(ownerFee)))
		if err != nil {
			return nil, err
		}
	}

	// The trading fee stays in the reserve; only the owner fee leaves the
	// flow.
	sourceIn, err := subU64(params.AmountIn, ownerFee)
	if err != nil {
		return nil, err
	}
	newSource, err := addU64(swapSource, sourceIn)
	if err != nil {
		return nil, err
	}
	newDestination, err := subU64(swapDestination, amountOut)
	if err != nil {
		return nil, err
	}

	next := p.state
	if params.Direction == TradeDirectionAtoB {
		next.ReserveA, next.ReserveB = newSource, newDestination
		if next.FeeTokenA, err = addU64(next.FeeTokenA, ownerFee-hostFee); err != nil {
			return nil, err
		}
		if next.HostTokenA, err = addU64(next.HostTokenA, hostFee); err != nil {
			return nil, err
		}
	} else {
		next.ReserveB, next.ReserveA = newSource, newDestination
		if next.FeeTokenB, err = addU64(next.FeeTokenB, ownerFee-hostFee); err != nil {
			return nil, err
		}
		if next.HostTokenB, err = addU64(next.HostTokenB, hostFee); err != nil {
			return nil, err
		}
	}
	next.Version++
	p.state = next

	return &SwapResult{
		AmountIn:     params.AmountIn,
		AmountOut:    amountOut,
		TradeFee:     tradeFee,
		OwnerFee:     ownerFee,
		HostFee:      hostFee,
		StateVersion: next.Version,
	}, nil
}

type DepositAllTokenTypesParams struct {
	StateVersion    uint64
	PoolShareAmount uint64
	MaximumTokenA   uint64
	MaximumTokenB   uint64
}

type DepositAllTokenTypesResult struct {
	TokenAAmount uint64
	TokenBAmount uint64
	StateVersion uint64
}

// DepositAllTokenTypes mints an exact pool-share amount against a
// proportional, ceiling-rounded deposit of both tokens.
func (p *Pool) DepositAllTokenTypes(params DepositAllTokenTypesParams) (*DepositAllTokenTypesResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkVersion(params.StateVersion); err != nil {
		return nil, err
	}
	if params.PoolShareAmount == 0 {
		return nil, ErrZeroAmount
	}

	result, err := p.Curve.PoolSharesToTradingTokens(
		new(big.Int).SetUint64(params.PoolShareAmount),
		new(big.Int).SetUint64(p.state.PoolShareSupply),
		new(big.Int).SetUint64(p.state.ReserveA),
		new(big.Int).SetUint64(p.state.ReserveB),
		shared.RoundingUp,
	)
	if err != nil {
		return nil, err
	}

	tokenAAmount, err := toU64(result.TokenAAmount)
	if err != nil {
		return nil, err
	}
	tokenBAmount, err := toU64(result.TokenBAmount)
	if err != nil {
		return nil, err
	}
	if tokenAAmount == 0 || tokenBAmount == 0 {
		return nil, ErrZeroTradingTokens
	}
	if tokenAAmount > params.MaximumTokenA || tokenBAmount > params.MaximumTokenB {
		return nil, ErrSlippageExceeded
	}

	next := p.state
	if next.ReserveA, err = addU64(next.ReserveA, tokenAAmount); err != nil {
		return nil, err
	}
	if next.ReserveB, err = addU64(next.ReserveB, tokenBAmount); err != nil {
		return nil, err
	}
	if next.PoolShareSupply, err = addU64(next.PoolShareSupply, params.PoolShareAmount); err != nil {
		return nil, err
	}
	next.Version++
	p.state = next

	return &DepositAllTokenTypesResult{
		TokenAAmount: tokenAAmount,
		TokenBAmount: tokenBAmount,
		StateVersion: next.Version,
	}, nil
}

type WithdrawAllTokenTypesParams struct {
	StateVersion    uint64
	PoolShareAmount uint64
	MinimumTokenA   uint64
	MinimumTokenB   uint64

	// The pool's own fee account pays no withdraw fee on its accrued
	// shares.
	FromFeeAccount bool
}

type WithdrawAllTokenTypesResult struct {
	TokenAAmount uint64
	TokenBAmount uint64
	WithdrawFee  uint64
	StateVersion uint64
}

// WithdrawAllTokenTypes burns pool shares for a proportional,
// floor-rounded payout of both tokens. The owner withdraw fee comes off the
// share amount first; those shares move to the fee account instead of being
// burned.
func (p *Pool) WithdrawAllTokenTypes(params WithdrawAllTokenTypesParams) (*WithdrawAllTokenTypesResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkVersion(params.StateVersion); err != nil {
		return nil, err
	}
	if params.PoolShareAmount == 0 {
		return nil, ErrZeroAmount
	}
	if params.PoolShareAmount > p.state.PoolShareSupply {
		return nil, ErrInsufficientReserve
	}

	withdrawFee := uint64(0)
	if !params.FromFeeAccount {
		fee, err := toU64(p.Fees.OwnerWithdrawFee(new(big.Int).SetUint64(params.PoolShareAmount)))
		if err != nil {
			return nil, err
		}
		withdrawFee = fee
	} else if params.PoolShareAmount > p.state.FeeShares {
		return nil, ErrInsufficientReserve
	}

	netShares, err := subU64(params.PoolShareAmount, withdrawFee)
	if err != nil {
		return nil, err
	}
	if netShares == 0 {
		return nil, ErrZeroTradingTokens
	}

	result, err := p.Curve.PoolSharesToTradingTokens(
		new(big.Int).SetUint64(netShares),
		new(big.Int).SetUint64(p.state.PoolShareSupply),
		new(big.Int).SetUint64(p.state.ReserveA),
		new(big.Int).SetUint64(p.state.ReserveB),
		shared.RoundingDown,
	)
	if err != nil {
		return nil, err
	}

	tokenAAmount, err := toU64(result.TokenAAmount)
	if err != nil {
		return nil, err
	}
	tokenBAmount, err := toU64(result.TokenBAmount)
	if err != nil {
		return nil, err
	}
	tokenAAmount = min(tokenAAmount, p.state.ReserveA)
	tokenBAmount = min(tokenBAmount, p.state.ReserveB)
	if tokenAAmount < params.MinimumTokenA || tokenBAmount < params.MinimumTokenB {
		return nil, ErrSlippageExceeded
	}
	if (tokenAAmount == 0 && p.state.ReserveA != 0) || (tokenBAmount == 0 && p.state.ReserveB != 0) {
		return nil, ErrZeroTradingTokens
	}

	next := p.state
	if next.ReserveA, err = subU64(next.ReserveA, tokenAAmount); err != nil {
		return nil, err
	}
	if next.ReserveB, err = subU64(next.ReserveB, tokenBAmount); err != nil {
		return nil, err
	}
	if next.PoolShareSupply, err = subU64(next.PoolShareSupply, netShares); err != nil {
		return nil, err
	}
	if params.FromFeeAccount {
		if next.FeeShares, err = subU64(next.FeeShares, params.PoolShareAmount); err != nil {
			return nil, err
		}
	} else if next.FeeShares, err = addU64(next.FeeShares, withdrawFee); err != nil {
		return nil, err
	}
	next.Version++
	p.state = next

	return &WithdrawAllTokenTypesResult{
		TokenAAmount: tokenAAmount,
		TokenBAmount: tokenBAmount,
		WithdrawFee:  withdrawFee,
		StateVersion: next.Version,
	}, nil
}

type DepositSingleTokenTypeParams struct {
	StateVersion           uint64
	SourceAmount           uint64
	MinimumPoolShareAmount uint64

	// TradeDirectionAtoB deposits token A, TradeDirectionBtoA token B.
	Direction TradeDirection
}

type DepositSingleTokenTypeResult struct {
	PoolShareAmount uint64
	StateVersion    uint64
}

// DepositSingleTokenTypeExactAmountIn deposits one token only. The opposite
// reserve is untouched, so the pool price shifts; the share valuation prices
// that in by charging the trading fee on half the amount.
func (p *Pool) DepositSingleTokenTypeExactAmountIn(params DepositSingleTokenTypeParams) (*DepositSingleTokenTypeResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkVersion(params.StateVersion); err != nil {
		return nil, err
	}
	if params.SourceAmount == 0 {
		return nil, ErrZeroAmount
	}

	shares, err := p.Curve.DepositSingleTokenType(
		new(big.Int).SetUint64(params.SourceAmount),
		new(big.Int).SetUint64(p.state.ReserveA),
		new(big.Int).SetUint64(p.state.ReserveB),
		new(big.Int).SetUint64(p.state.PoolShareSupply),
		params.Direction,
		&p.Fees,
	)
	if err != nil {
		return nil, err
	}

	shareAmount, err := toU64(shares)
	if err != nil {
		return nil, err
	}
	if shareAmount == 0 {
		return nil, ErrZeroTradingTokens
	}
	if shareAmount < params.MinimumPoolShareAmount {
		return nil, ErrSlippageExceeded
	}

	next := p.state
	if params.Direction == TradeDirectionAtoB {
		if next.ReserveA, err = addU64(next.ReserveA, params.SourceAmount); err != nil {
			return nil, err
		}
	} else {
		if next.ReserveB, err = addU64(next.ReserveB, params.SourceAmount); err != nil {
			return nil, err
		}
	}
	if next.PoolShareSupply, err = addU64(next.PoolShareSupply, shareAmount); err != nil {
		return nil, err
	}
	next.Version++
	p.state = next

	return &DepositSingleTokenTypeResult{
		PoolShareAmount: shareAmount,
		StateVersion:    next.Version,
	}, nil
}

type WithdrawSingleTokenTypeParams struct {
	StateVersion           uint64
	DestinationAmount      uint64
	MaximumPoolShareAmount uint64

	// TradeDirectionAtoB withdraws token A, TradeDirectionBtoA token B.
	Direction TradeDirection

	FromFeeAccount bool
}

type WithdrawSingleTokenTypeResult struct {
	PoolShareAmount uint64
	WithdrawFee     uint64
	StateVersion    uint64
}

// WithdrawSingleTokenTypeExactAmountOut pays out an exact amount of one
// token, charging the caller the covering pool shares plus the owner
// withdraw fee on top.
func (p *Pool) WithdrawSingleTokenTypeExactAmountOut(params WithdrawSingleTokenTypeParams) (*WithdrawSingleTokenTypeResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.checkVersion(params.StateVersion); err != nil {
		return nil, err
	}
	if params.DestinationAmount == 0 {
		return nil, ErrZeroAmount
	}

	swapDestination := p.state.ReserveA
	if params.Direction == TradeDirectionBtoA {
		swapDestination = p.state.ReserveB
	}
	if params.DestinationAmount >= swapDestination {
		return nil, ErrInsufficientReserve
	}

	shares, err := p.Curve.WithdrawSingleTokenTypeExactOut(
		new(big.Int).SetUint64(params.DestinationAmount),
		new(big.Int).SetUint64(p.state.ReserveA),
		new(big.Int).SetUint64(p.state.ReserveB),
		new(big.Int).SetUint64(p.state.PoolShareSupply),
		params.Direction,
		&p.Fees,
	)
	if err != nil {
		return nil, err
	}

	burnShares, err := toU64(shares)
	if err != nil {
		return nil, err
	}
	if burnShares == 0 {
		return nil, ErrZeroTradingTokens
	}

	withdrawFee := uint64(0)
	if !params.FromFeeAccount {
		fee, err := toU64(p.Fees.OwnerWithdrawFee(new(big.Int).SetUint64(burnShares)))
		if err != nil {
			return nil, err
		}
		withdrawFee = fee
	} else if burnShares > p.state.FeeShares {
		return nil, ErrInsufficientReserve
	}

	totalShares, err := addU64(burnShares, withdrawFee)
	if err != nil {
		return nil, err
	}
	if totalShares > params.MaximumPoolShareAmount {
		return nil, ErrSlippageExceeded
	}
	if totalShares > p.state.PoolShareSupply {
		return nil, ErrInsufficientReserve
	}

	next := p.state
	if params.Direction == TradeDirectionAtoB {
		if next.ReserveA, err = subU64(next.ReserveA, params.DestinationAmount); err != nil {
			return nil, err
		}
	} else {
		if next.ReserveB, err = subU64(next.ReserveB, params.DestinationAmount); err != nil {
			return nil, err
		}
	}
	if next.PoolShareSupply, err = subU64(next.PoolShareSupply, burnShares); err != nil {
		return nil, err
	}
	if params.FromFeeAccount {
		if next.FeeShares, err = subU64(next.FeeShares, burnShares); err != nil {
			return nil, err
		}
	} else if next.FeeShares, err = addU64(next.FeeShares, withdrawFee); err != nil {
		return nil, err
	}
	next.Version++
	p.state = next

	return &WithdrawSingleTokenTypeResult{
		PoolShareAmount: totalShares,
		WithdrawFee:     withdrawFee,
		StateVersion:    next.Version,
	}, nil
}

func toU64(x *big.Int) (uint64, error) {
	if x == nil || !x.IsUint64() {
		return 0, ErrArithmeticOverflow
	}
	return x.Uint64(), nil
}

func addU64(a, b uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, ErrArithmeticOverflow
	}
	return sum, nil
}

func subU64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrInsufficientReserve
	}
	return a - b, nil
}
