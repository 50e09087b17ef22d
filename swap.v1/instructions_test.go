package swapV1

import (
	"bytes"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestNewSwapInstruction(t *testing.T) {
	swap := solana.MustPublicKeyFromBase58("8HoQnePLqPj4M7PUDzfw8e3Ymdwgc7NUGnaMujpXoXtE")
	user := solana.MustPublicKeyFromBase58("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")

	ix := NewSwapInstruction(
		100_000, 89_754,
		swap, swap, user, user, swap, swap, user, swap, swap,
		solana.TokenProgramID, nil,
	)

	data, err := ix.Data()
	if err != nil {
		t.Fatal("Data() fail", err)
	}
	want := []byte{
		instructionSwap,
		0xa0, 0x86, 0x01, 0, 0, 0, 0, 0, // 100_000 LE
		0x9a, 0x5e, 0x01, 0, 0, 0, 0, 0, // 89_754 LE
	}
	if !bytes.Equal(data, want) {
		t.Fatal("Data() fail, got", data)
	}
	if len(ix.Accounts()) != 10 {
		t.Fatal("Accounts() fail, got", len(ix.Accounts()))
	}
	if !ix.Accounts()[2].IsSigner {
		t.Fatal("transfer authority must sign")
	}

	host := solana.MustPublicKeyFromBase58("So11111111111111111111111111111111111111112")
	ix = NewSwapInstruction(
		100_000, 89_754,
		swap, swap, user, user, swap, swap, user, swap, swap,
		solana.TokenProgramID, &host,
	)
	accounts := ix.Accounts()
	if len(accounts) != 11 {
		t.Fatal("Accounts() with host fail, got", len(accounts))
	}
	if !accounts[10].PublicKey.Equals(host) || !accounts[10].IsWritable {
		t.Fatal("host fee account meta fail")
	}
}

func TestInstructionTags(t *testing.T) {
	swap := solana.MustPublicKeyFromBase58("8HoQnePLqPj4M7PUDzfw8e3Ymdwgc7NUGnaMujpXoXtE")

	for _, tc := range []struct {
		tag     uint8
		ix      solana.Instruction
		amounts int
	}{
		{instructionDepositAllTokenTypes, NewDepositAllTokenTypesInstruction(
			1, 2, 3, swap, swap, swap, swap, swap, swap, swap, swap, swap, solana.TokenProgramID), 3},
		{instructionWithdrawAllTokenTypes, NewWithdrawAllTokenTypesInstruction(
			1, 2, 3, swap, swap, swap, swap, swap, swap, swap, swap, swap, swap, solana.TokenProgramID), 3},
		{instructionDepositSingleTokenTypeExactAmountIn, NewDepositSingleTokenTypeInstruction(
			1, 2, swap, swap, swap, swap, swap, swap, swap, swap, solana.TokenProgramID), 2},
		{instructionWithdrawSingleTokenTypeExactAmountOut, NewWithdrawSingleTokenTypeInstruction(
			1, 2, swap, swap, swap, swap, swap, swap, swap, swap, swap, solana.TokenProgramID), 2},
	} {
		data, err := tc.ix.Data()
		if err != nil {
			t.Fatal("Data() fail", err)
		}
		if data[0] != tc.tag {
			t.Fatal("tag fail, got", data[0], "want", tc.tag)
		}
		if len(data) != 1+8*tc.amounts {
			t.Fatal("data length fail for tag", tc.tag, len(data))
		}
	}
}
