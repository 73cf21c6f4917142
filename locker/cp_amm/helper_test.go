package cp_amm

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestDerivePoolAuthorityPDA(t *testing.T) {
	pda, err := DerivePoolAuthorityPDA()
	if err != nil {
		t.Fatal(err)
	}
	want := solana.MustPublicKeyFromBase58("HLnpSz9h2S4hiLQ43rnSD9XkcUThA7B8hQMKmDaiTLcC")
	if !pda.Equals(want) {
		t.Fatalf("pool authority = %s, want %s", pda, want)
	}
}

func TestDerivePositionAddresses(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	position, err := DerivePositionAddress(mint)
	if err != nil {
		t.Fatal(err)
	}
	nftAccount, err := DerivePositionNftAccount(mint)
	if err != nil {
		t.Fatal(err)
	}
	if position.Equals(nftAccount) {
		t.Error("distinct seeds collided")
	}

	again, err := DerivePositionAddress(mint)
	if err != nil {
		t.Fatal(err)
	}
	if !position.Equals(again) {
		t.Error("derivation not deterministic")
	}
}

func TestGetTokenProgram(t *testing.T) {
	if !GetTokenProgram(TokenFlagSPL).Equals(solana.TokenProgramID) {
		t.Error("flag 0 must map to the legacy token program")
	}
	if !GetTokenProgram(TokenFlagToken2022).Equals(solana.Token2022ProgramID) {
		t.Error("flag 1 must map to Token-2022")
	}
}
