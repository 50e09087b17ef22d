package swapV1

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"

	tokenswapgen "github.com/krazyTry/tokenswap-go/gen/token_swap"
	tokenswap "github.com/krazyTry/tokenswap-go/token_swap"
	"github.com/krazyTry/tokenswap-go/token_swap/shared"
)

// Instruction tags of the token-swap program.
const (
	instructionInitialize uint8 = iota
	instructionSwap
	instructionDepositAllTokenTypes
	instructionWithdrawAllTokenTypes
	instructionDepositSingleTokenTypeExactAmountIn
	instructionWithdrawSingleTokenTypeExactAmountOut
)

func encodeAmounts(tag uint8, amounts ...uint64) []byte {
	data := make([]byte, 1+8*len(amounts))
	data[0] = tag
	for i, amount := range amounts {
		binary.LittleEndian.PutUint64(data[1+8*i:], amount)
	}
	return data
}

func meta(key solana.PublicKey, writable, signer bool) *solana.AccountMeta {
	return &solana.AccountMeta{PublicKey: key, IsWritable: writable, IsSigner: signer}
}

// NewInitializeInstruction seeds a new swap account. The account itself and
// the seed reserves must already be in place, custody assigned to the
// derived authority.
func NewInitializeInstruction(
	state *tokenswap.SwapState,
	swap solana.PublicKey,
	authority solana.PublicKey,
	poolDestination solana.PublicKey,
) solana.Instruction {
	data := make([]byte, 0, 99)
	data = append(data, instructionInitialize, state.BumpSeed)
	for _, amount := range []uint64{
		state.Fees.TradeFeeNumerator, state.Fees.TradeFeeDenominator,
		state.Fees.OwnerTradeFeeNumerator, state.Fees.OwnerTradeFeeDenominator,
		state.Fees.OwnerWithdrawFeeNumerator, state.Fees.OwnerWithdrawFeeDenominator,
		state.Fees.HostFeeNumerator, state.Fees.HostFeeDenominator,
	} {
		data = binary.LittleEndian.AppendUint64(data, amount)
	}
	data = append(data, uint8(state.Curve.Type))
	var curveParameters [32]byte
	if state.Curve.Type == shared.CurveTypeConstantPrice {
		binary.LittleEndian.PutUint64(curveParameters[:8], state.Curve.TokenBPrice)
	}
	data = append(data, curveParameters[:]...)

	return solana.NewInstruction(
		tokenswapgen.ProgramID,
		solana.AccountMetaSlice{
			meta(swap, true, true),
			meta(authority, false, false),
			meta(state.TokenAAccount, false, false),
			meta(state.TokenBAccount, false, false),
			meta(state.PoolMint, true, false),
			meta(state.PoolFeeAccount, false, false),
			meta(poolDestination, true, false),
			meta(state.TokenProgramID, false, false),
		},
		data,
	)
}

func NewSwapInstruction(
	amountIn uint64,
	minimumAmountOut uint64,
	swap solana.PublicKey,
	authority solana.PublicKey,
	userTransferAuthority solana.PublicKey,
	userSource solana.PublicKey,
	swapSource solana.PublicKey,
	swapDestination solana.PublicKey,
	userDestination solana.PublicKey,
	poolMint solana.PublicKey,
	feeAccount solana.PublicKey,
	tokenProgram solana.PublicKey,
	hostFeeAccount *solana.PublicKey,
) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		meta(swap, false, false),
		meta(authority, false, false),
		meta(userTransferAuthority, false, true),
		meta(userSource, true, false),
		meta(swapSource, true, false),
		meta(swapDestination, true, false),
		meta(userDestination, true, false),
		meta(poolMint, true, false),
		meta(feeAccount, true, false),
		meta(tokenProgram, false, false),
	}
	if hostFeeAccount != nil {
		accounts = append(accounts, meta(*hostFeeAccount, true, false))
	}
	return solana.NewInstruction(
		tokenswapgen.ProgramID,
		accounts,
		encodeAmounts(instructionSwap, amountIn, minimumAmountOut),
	)
}

func NewDepositAllTokenTypesInstruction(
	poolShareAmount uint64,
	maximumTokenA uint64,
	maximumTokenB uint64,
	swap solana.PublicKey,
	authority solana.PublicKey,
	userTransferAuthority solana.PublicKey,
	userTokenA solana.PublicKey,
	userTokenB solana.PublicKey,
	swapTokenA solana.PublicKey,
	swapTokenB solana.PublicKey,
	poolMint solana.PublicKey,
	userPoolShares solana.PublicKey,
	tokenProgram solana.PublicKey,
) solana.Instruction {
	return solana.NewInstruction(
		tokenswapgen.ProgramID,
		solana.AccountMetaSlice{
			meta(swap, false, false),
			meta(authority, false, false),
			meta(userTransferAuthority, false, true),
			meta(userTokenA, true, false),
			meta(userTokenB, true, false),
			meta(swapTokenA, true, false),
			meta(swapTokenB, true, false),
			meta(poolMint, true, false),
			meta(userPoolShares, true, false),
			meta(tokenProgram, false, false),
		},
		encodeAmounts(instructionDepositAllTokenTypes, poolShareAmount, maximumTokenA, maximumTokenB),
	)
}

func NewWithdrawAllTokenTypesInstruction(
	poolShareAmount uint64,
	minimumTokenA uint64,
	minimumTokenB uint64,
	swap solana.PublicKey,
	authority solana.PublicKey,
	userTransferAuthority solana.PublicKey,
	poolMint solana.PublicKey,
	userPoolShares solana.PublicKey,
	swapTokenA solana.PublicKey,
	swapTokenB solana.PublicKey,
	userTokenA solana.PublicKey,
	userTokenB solana.PublicKey,
	feeAccount solana.PublicKey,
	tokenProgram solana.PublicKey,
) solana.Instruction {
	return solana.NewInstruction(
		tokenswapgen.ProgramID,
		solana.AccountMetaSlice{
			meta(swap, false, false),
			meta(authority, false, false),
			meta(userTransferAuthority, false, true),
			meta(poolMint, true, false),
			meta(userPoolShares, true, false),
			meta(swapTokenA, true, false),
			meta(swapTokenB, true, false),
			meta(userTokenA, true, false),
			meta(userTokenB, true, false),
			meta(feeAccount, true, false),
			meta(tokenProgram, false, false),
		},
		encodeAmounts(instructionWithdrawAllTokenTypes, poolShareAmount, minimumTokenA, minimumTokenB),
	)
}

func NewDepositSingleTokenTypeInstruction(
	sourceTokenAmount uint64,
	minimumPoolShareAmount uint64,
	swap solana.PublicKey,
	authority solana.PublicKey,
	userTransferAuthority solana.PublicKey,
	userSource solana.PublicKey,
	swapTokenA solana.PublicKey,
	swapTokenB solana.PublicKey,
	poolMint solana.PublicKey,
	userPoolShares solana.PublicKey,
	tokenProgram solana.PublicKey,
) solana.Instruction {
	return solana.NewInstruction(
		tokenswapgen.ProgramID,
		solana.AccountMetaSlice{
			meta(swap, false, false),
			meta(authority, false, false),
			meta(userTransferAuthority, false, true),
			meta(userSource, true, false),
			meta(swapTokenA, true, false),
			meta(swapTokenB, true, false),
			meta(poolMint, true, false),
			meta(userPoolShares, true, false),
			meta(tokenProgram, false, false),
		},
		encodeAmounts(instructionDepositSingleTokenTypeExactAmountIn, sourceTokenAmount, minimumPoolShareAmount),
	)
}

func NewWithdrawSingleTokenTypeInstruction(
	destinationTokenAmount uint64,
	maximumPoolShareAmount uint64,
	swap solana.PublicKey,
	authority solana.PublicKey,
	userTransferAuthority solana.PublicKey,
	poolMint solana.PublicKey,
	userPoolShares solana.PublicKey,
	swapTokenA solana.PublicKey,
	swapTokenB solana.PublicKey,
	userDestination solana.PublicKey,
	feeAccount solana.PublicKey,
	tokenProgram solana.PublicKey,
) solana.Instruction {
	return solana.NewInstruction(
		tokenswapgen.ProgramID,
		solana.AccountMetaSlice{
			meta(swap, false, false),
			meta(authority, false, false),
			meta(userTransferAuthority, false, true),
			meta(poolMint, true, false),
			meta(userPoolShares, true, false),
			meta(swapTokenA, true, false),
			meta(swapTokenB, true, false),
			meta(userDestination, true, false),
			meta(feeAccount, true, false),
			meta(tokenProgram, false, false),
		},
		encodeAmounts(instructionWithdrawSingleTokenTypeExactAmountOut, destinationTokenAmount, maximumPoolShareAmount),
	)
}
