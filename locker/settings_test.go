package locker

import (
	"fmt"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestParseSettings(t *testing.T) {
	pool := solana.NewWallet().PublicKey()
	escrow := solana.NewWallet()

	raw := fmt.Sprintf(`{
		"rpc_endpoint": "http://127.0.0.1:8899",
		"ws_endpoint": "ws://127.0.0.1:8900",
		"pool": %q,
		"escrow_key": %q,
		"data_dir": "/var/lib/liqlock",
		"simulate": true,
		"vesting": true
	}`, pool.String(), escrow.PrivateKey.String())

	s, err := ParseSettings([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if s.RPCEndpoint != "http://127.0.0.1:8899" || s.WSEndpoint != "ws://127.0.0.1:8900" {
		t.Error("endpoints mismatch")
	}
	if !s.Pool.Equals(pool) {
		t.Error("pool mismatch")
	}
	if !s.EscrowKey.PublicKey().Equals(escrow.PublicKey()) {
		t.Error("escrow key mismatch")
	}
	if !s.Simulate || !s.Vesting {
		t.Error("flags mismatch")
	}
}

func TestParseSettingsRejectsBadInput(t *testing.T) {
	if _, err := ParseSettings([]byte("{not json")); err == nil {
		t.Error("invalid json accepted")
	}
	if _, err := ParseSettings([]byte(`{"pool": "x"}`)); err == nil {
		t.Error("missing rpc endpoint accepted")
	}

	escrow := solana.NewWallet()
	raw := fmt.Sprintf(`{"rpc_endpoint": "http://h", "pool": "not-base58", "escrow_key": %q}`, escrow.PrivateKey.String())
	if _, err := ParseSettings([]byte(raw)); err == nil {
		t.Error("bad pool key accepted")
	}
}
