// Package token2022 builds instructions for the Token-2022 program that the
// generated token builders do not cover.
package token2022

import (
	"encoding/binary"

	"github.com/gagliardetto/solana-go"
)

// instruction tag shared with the legacy token program
const transferCheckedTag = 12

// TransferCheckedInstruction builds a Token-2022 transfer_checked instruction.
// Position NFTs move with amount 1 and 0 decimals; the mint account is
// required so the program can verify the decimals claim.
func TransferCheckedInstruction(
	source solana.PublicKey,
	mint solana.PublicKey,
	destination solana.PublicKey,
	authority solana.PublicKey,
	amount uint64,
	decimals uint8,
) solana.Instruction {
	data := make([]byte, 10)
	data[0] = transferCheckedTag
	binary.LittleEndian.PutUint64(data[1:9], amount)
	data[9] = decimals

	return solana.NewInstruction(
		solana.Token2022ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(source, true, false),
			solana.NewAccountMeta(mint, false, false),
			solana.NewAccountMeta(destination, true, false),
			solana.NewAccountMeta(authority, false, true),
		},
		data,
	)
}
