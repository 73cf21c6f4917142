package token2022

import (
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestTransferCheckedInstruction(t *testing.T) {
	source := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()
	destination := solana.NewWallet().PublicKey()
	authority := solana.NewWallet().PublicKey()

	ix := TransferCheckedInstruction(source, mint, destination, authority, 1, 0)

	if !ix.ProgramID().Equals(solana.Token2022ProgramID) {
		t.Fatal("program id")
	}

	accounts := ix.Accounts()
	if len(accounts) != 4 {
		t.Fatalf("accounts = %d, want 4", len(accounts))
	}
	if !accounts[0].IsWritable || accounts[0].IsSigner {
		t.Error("source must be writable, not a signer")
	}
	if accounts[1].IsWritable {
		t.Error("mint must be read-only")
	}
	if !accounts[2].IsWritable {
		t.Error("destination must be writable")
	}
	if !accounts[3].IsSigner || accounts[3].IsWritable {
		t.Error("authority must be a read-only signer")
	}

	data, err := ix.Data()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 10 {
		t.Fatalf("data = %d bytes, want 10", len(data))
	}
	if data[0] != 12 {
		t.Errorf("tag = %d, want 12", data[0])
	}
	if binary.LittleEndian.Uint64(data[1:9]) != 1 {
		t.Error("amount must be 1")
	}
	if data[9] != 0 {
		t.Error("decimals must be 0")
	}
}
