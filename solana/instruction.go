package solana

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
)

// FindAssociatedTokenAddress derives the ATA for a wallet under a specific
// token program (SPL Token or Token-2022).
func FindAssociatedTokenAddress(wallet, mint, tokenProgram solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindProgramAddress(
		[][]byte{wallet.Bytes(), tokenProgram.Bytes(), mint.Bytes()},
		solana.SPLAssociatedTokenAccountProgramID,
	)
	return ata, err
}

// CreateAssociatedTokenAccountInstruction builds an ATA create instruction that
// supports custom token programs (SPL/Token2022).
func CreateAssociatedTokenAccountInstruction(payer, ata, owner, mint, tokenProgram solana.PublicKey) solana.Instruction {
	accounts := solana.AccountMetaSlice{
		solana.NewAccountMeta(payer, true, true),
		solana.NewAccountMeta(ata, true, false),
		solana.NewAccountMeta(owner, false, false),
		solana.NewAccountMeta(mint, false, false),
		solana.NewAccountMeta(system.ProgramID, false, false),
		solana.NewAccountMeta(tokenProgram, false, false),
	}
	return solana.NewInstruction(solana.SPLAssociatedTokenAccountProgramID, accounts, nil)
}

// MergeInstructions deduplicates ATA create instructions while preserving the
// relative order of everything else. Assembling a lock or unlock sequence can
// request the same associated account more than once; creating it twice would
// fail the whole transaction.
func MergeInstructions(oldInstructions []solana.Instruction) []solana.Instruction {
	var newInstructions []solana.Instruction

loop:
	for _, v := range oldInstructions {
		if !v.ProgramID().Equals(solana.SPLAssociatedTokenAccountProgramID) {
			newInstructions = append(newInstructions, v)
			continue
		}
		vs := v.Accounts()
		for _, vv := range newInstructions {
			if !vv.ProgramID().Equals(solana.SPLAssociatedTokenAccountProgramID) {
				continue
			}
			vvs := vv.Accounts()
			if vs[1].PublicKey != vvs[1].PublicKey {
				continue
			}
			continue loop
		}
		newInstructions = append(newInstructions, v)
	}
	return newInstructions
}
