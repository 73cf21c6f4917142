package locker

import (
	"context"
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestInitializeConfig(t *testing.T) {
	runner := newFakeRunner()
	pool := solana.NewWallet().PublicKey()
	runner.accounts[pool] = encodePoolAccount(t, enabledPool())

	l := NewLocker(nil, nil, NewMemoryStore(), solana.NewWallet(), WithRunner(runner))
	admin := solana.NewWallet().PublicKey()
	rewardMint := solana.NewWallet().PublicKey()

	cfg, err := l.InitializeConfig(context.Background(), admin, pool, 250, rewardMint)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.PoolID.Equals(pool) || !cfg.Admin.Equals(admin) || cfg.FeeBps != 250 {
		t.Error("config mismatch")
	}

	got, err := l.Config()
	if err != nil {
		t.Fatal(err)
	}
	if !got.RewardMint.Equals(rewardMint) {
		t.Error("reward mint not persisted")
	}

	if _, err := l.InitializeConfig(context.Background(), admin, pool, 250, rewardMint); err != ErrConfigExists {
		t.Fatalf("err = %v, want ErrConfigExists", err)
	}
}

func TestInitializeConfigRejectsFeeBps(t *testing.T) {
	l := NewLocker(nil, nil, NewMemoryStore(), solana.NewWallet(), WithRunner(newFakeRunner()))
	_, err := l.InitializeConfig(context.Background(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), 10_001, solana.PublicKey{})
	if err != ErrInvalidFeeBps {
		t.Fatalf("err = %v, want ErrInvalidFeeBps", err)
	}
}

func TestInitializeConfigRejectsMissingPool(t *testing.T) {
	l := NewLocker(nil, nil, NewMemoryStore(), solana.NewWallet(), WithRunner(newFakeRunner()))
	_, err := l.InitializeConfig(context.Background(), solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey(), 0, solana.PublicKey{})
	if err != ErrInvalidPool {
		t.Fatalf("err = %v, want ErrInvalidPool", err)
	}
}
