package cp_amm

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
)

// DerivePoolAuthorityPDA derives the authority that signs for the pool's
// token vaults.
func DerivePoolAuthorityPDA() (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("pool_authority"),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}

// DeriveEventAuthorityPDA derives the Anchor event authority of the engine.
func DeriveEventAuthorityPDA() (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("__event_authority"),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}

// DerivePositionAddress derives the position account from its NFT mint.
func DerivePositionAddress(positionNft solana.PublicKey) (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("position"),
		positionNft.Bytes(),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}

// DerivePositionNftAccount derives the engine-owned token account that holds
// the position NFT right after create_position.
func DerivePositionNftAccount(positionNftMint solana.PublicKey) (solana.PublicKey, error) {
	seeds := [][]byte{
		[]byte("position_nft_account"),
		positionNftMint.Bytes(),
	}
	pda, _, err := solana.FindProgramAddress(seeds, ProgramID)
	return pda, err
}

// GetTokenProgram maps a pool token flag to the owning token program.
func GetTokenProgram(flag uint8) solana.PublicKey {
	if flag == TokenFlagToken2022 {
		return solana.Token2022ProgramID
	}
	return solana.TokenProgramID
}

// instructionDiscriminator computes the Anchor sighash of a global
// instruction, sha256("global:<name>")[0:8].
func instructionDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	return hash[:8]
}
