package locker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/tidwall/gjson"
)

// Settings is the deployment configuration of a Locker instance.
type Settings struct {
	RPCEndpoint string
	WSEndpoint  string
	Pool        solana.PublicKey
	EscrowKey   solana.PrivateKey
	DataDir     string
	Simulate    bool
	Vesting     bool
}

// ParseSettings reads deployment settings from a JSON document:
//
//	{
//	  "rpc_endpoint": "...",
//	  "ws_endpoint": "...",
//	  "pool": "<base58>",
//	  "escrow_key": "<base58 private key>",
//	  "data_dir": "...",
//	  "simulate": false,
//	  "vesting": false
//	}
func ParseSettings(data []byte) (*Settings, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("settings: invalid json")
	}
	doc := gjson.ParseBytes(data)

	s := &Settings{
		RPCEndpoint: doc.Get("rpc_endpoint").String(),
		WSEndpoint:  doc.Get("ws_endpoint").String(),
		DataDir:     doc.Get("data_dir").String(),
		Simulate:    doc.Get("simulate").Bool(),
		Vesting:     doc.Get("vesting").Bool(),
	}
	if s.RPCEndpoint == "" {
		return nil, fmt.Errorf("settings: rpc_endpoint missing")
	}

	pool, err := solana.PublicKeyFromBase58(doc.Get("pool").String())
	if err != nil {
		return nil, fmt.Errorf("settings: pool: %w", err)
	}
	s.Pool = pool

	escrowKey, err := solana.PrivateKeyFromBase58(doc.Get("escrow_key").String())
	if err != nil {
		return nil, fmt.Errorf("settings: escrow_key: %w", err)
	}
	s.EscrowKey = escrowKey

	return s, nil
}

// NewLockerFromSettings builds a Locker from parsed settings: RPC and
// websocket clients, a file-backed store under DataDir, and the escrow
// wallet.
func NewLockerFromSettings(ctx context.Context, s *Settings, opts ...Option) (*Locker, error) {
	var wsClient *ws.Client
	if s.WSEndpoint != "" {
		var err error
		if wsClient, err = ws.Connect(ctx, s.WSEndpoint); err != nil {
			return nil, err
		}
	}

	store, err := NewFileStore(s.DataDir)
	if err != nil {
		return nil, err
	}

	escrow := &solana.Wallet{PrivateKey: s.EscrowKey}

	all := []Option{WithSimulate(s.Simulate), WithVesting(s.Vesting)}
	all = append(all, opts...)

	return NewLocker(rpc.New(s.RPCEndpoint), wsClient, store, escrow, all...), nil
}
