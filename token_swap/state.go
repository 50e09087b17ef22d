package tokenswap

import (
	"bytes"
	"encoding/binary"
	"errors"

	bin "github.com/gagliardetto/binary"
	solanago "github.com/gagliardetto/solana-go"

	"github.com/krazyTry/tokenswap-go/token_swap/math"
	"github.com/krazyTry/tokenswap-go/token_swap/math/fees"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

const (
	swapStateVersion = 1

	// SwapStateLen is the packed size of a versioned swap account.
	SwapStateLen = 324
)

// swapV1Layout mirrors the packed on-chain swap account byte for byte.
type swapV1Layout struct {
	Version        uint8
	IsInitialized  uint8
	BumpSeed       uint8
	TokenProgramID solanago.PublicKey
	TokenAAccount  solanago.PublicKey
	TokenBAccount  solanago.PublicKey
	PoolMint       solanago.PublicKey
	TokenAMint     solanago.PublicKey
	TokenBMint     solanago.PublicKey
	PoolFeeAccount solanago.PublicKey

	TradeFeeNumerator           uint64
	TradeFeeDenominator         uint64
	OwnerTradeFeeNumerator      uint64
	OwnerTradeFeeDenominator    uint64
	OwnerWithdrawFeeNumerator   uint64
	OwnerWithdrawFeeDenominator uint64
	HostFeeNumerator            uint64
	HostFeeDenominator          uint64

	CurveType       uint8
	CurveParameters [32]byte
}

// SwapState is the decoded form of an initialized swap account.
type SwapState struct {
	BumpSeed       uint8
	TokenProgramID solanago.PublicKey
	TokenAAccount  solanago.PublicKey
	TokenBAccount  solanago.PublicKey
	PoolMint       solanago.PublicKey
	TokenAMint     solanago.PublicKey
	TokenBMint     solanago.PublicKey
	PoolFeeAccount solanago.PublicKey
	Fees           fees.Fees
	Curve          math.SwapCurve
}

// DecodeSwapState unpacks a versioned swap account.
func DecodeSwapState(data []byte) (*SwapState, error) {
	layout := &swapV1Layout{}
	if err := bin.NewBinDecoder(data).Decode(layout); err != nil {
		return nil, err
	}
	if layout.Version != swapStateVersion {
		return nil, errors.New("unsupported swap state version")
	}
	if layout.IsInitialized == 0 {
		return nil, errors.New("swap account is not initialized")
	}

	curve := math.SwapCurve{Type: shared.CurveType(layout.CurveType)}
	if curve.Type == shared.CurveTypeConstantPrice {
		curve.TokenBPrice = binary.LittleEndian.Uint64(layout.CurveParameters[:8])
	}
	if err := curve.Validate(); err != nil {
		return nil, err
	}

	return &SwapState{
		BumpSeed:       layout.BumpSeed,
		TokenProgramID: layout.TokenProgramID,
		TokenAAccount:  layout.TokenAAccount,
		TokenBAccount:  layout.TokenBAccount,
		PoolMint:       layout.PoolMint,
		TokenAMint:     layout.TokenAMint,
		TokenBMint:     layout.TokenBMint,
		PoolFeeAccount: layout.PoolFeeAccount,
		Fees: fees.Fees{
			TradeFeeNumerator:           layout.TradeFeeNumerator,
			TradeFeeDenominator:         layout.TradeFeeDenominator,
			OwnerTradeFeeNumerator:      layout.OwnerTradeFeeNumerator,
			OwnerTradeFeeDenominator:    layout.OwnerTradeFeeDenominator,
			OwnerWithdrawFeeNumerator:   layout.OwnerWithdrawFeeNumerator,
			OwnerWithdrawFeeDenominator: layout.OwnerWithdrawFeeDenominator,
			HostFeeNumerator:            layout.HostFeeNumerator,
			HostFeeDenominator:          layout.HostFeeDenominator,
		},
		Curve: curve,
	}, nil
}

// Encode packs the state back into the versioned account layout.
func (s *SwapState) Encode() ([]byte, error) {
	layout := &swapV1Layout{
		Version:        swapStateVersion,
		IsInitialized:  1,
		BumpSeed:       s.BumpSeed,
		TokenProgramID: s.TokenProgramID,
		TokenAAccount:  s.TokenAAccount,
		TokenBAccount:  s.TokenBAccount,
		PoolMint:       s.PoolMint,
		TokenAMint:     s.TokenAMint,
		TokenBMint:     s.TokenBMint,
		PoolFeeAccount: s.PoolFeeAccount,

		TradeFeeNumerator:           s.Fees.TradeFeeNumerator,
		TradeFeeDenominator:         s.Fees.TradeFeeDenominator,
		OwnerTradeFeeNumerator:      s.Fees.OwnerTradeFeeNumerator,
		OwnerTradeFeeDenominator:    s.Fees.OwnerTradeFeeDenominator,
		OwnerWithdrawFeeNumerator:   s.Fees.OwnerWithdrawFeeNumerator,
		OwnerWithdrawFeeDenominator: s.Fees.OwnerWithdrawFeeDenominator,
		HostFeeNumerator:            s.Fees.HostFeeNumerator,
		HostFeeDenominator:          s.Fees.HostFeeDenominator,

		CurveType: uint8(s.Curve.Type),
	}
	if s.Curve.Type == shared.CurveTypeConstantPrice {
		binary.LittleEndian.PutUint64(layout.CurveParameters[:8], s.Curve.TokenBPrice)
	}

	buf := new(bytes.Buffer)
	if err := bin.NewBinEncoder(buf).Encode(layout); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Authority re-derives the reserve authority from the stored bump seed.
func (s *SwapState) Authority(swapKey solanago.PublicKey) (solanago.PublicKey, error) {
	return SwapAuthorityForBump(swapKey, s.BumpSeed)
}
