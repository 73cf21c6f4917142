package locker

import (
	"github.com/gagliardetto/solana-go"
)

// ProgramID is the lock service's deployment identity. Record addresses are
// derived under it.
var ProgramID = solana.MustPublicKeyFromBase58("DtnLiyCepzKfNiyFHBHEqabhrNe65tx8FPxLWQeh6JeC")

// DeriveLockRecordAddress derives the record address for an owner's lock on
// a position NFT.
func DeriveLockRecordAddress(owner, positionNftMint solana.PublicKey) (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("lock"),
		owner.Bytes(),
		positionNftMint.Bytes(),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}

// DeriveConfigAddress derives the singleton configuration address.
func DeriveConfigAddress() (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("config"),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}

// DeriveEscrowAuthorityAddress derives the escrow authority address. The
// service signs escrow transfers with its own keypair; the derivation is
// kept for record-addressing parity.
func DeriveEscrowAuthorityAddress() (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("escrow_authority"),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}
