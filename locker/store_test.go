package locker

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/liqlock-go/u128"
)

func storeUnderTest(t *testing.T, name string) Store {
	t.Helper()
	switch name {
	case "memory":
		return NewMemoryStore()
	case "file":
		s, err := NewFileStore(t.TempDir())
		if err != nil {
			t.Fatal(err)
		}
		return s
	}
	t.Fatalf("unknown store %q", name)
	return nil
}

func sampleRecord(owner solana.PublicKey) *LockRecord {
	return &LockRecord{
		Owner:           owner,
		PositionNftMint: solana.NewWallet().PublicKey(),
		Position:        solana.NewWallet().PublicKey(),
		LockStart:       100,
		LockEnd:         100 + 7_776_000,
		LiquidityLocked: u128.GenUint128FromString("1000"),
		DurationMonths:  Duration3Months,
		Status:          LockStatusActive,
		LastClaimTime:   100,
	}
}

func TestStoreConfig(t *testing.T) {
	for _, name := range []string{"memory", "file"} {
		t.Run(name, func(t *testing.T) {
			s := storeUnderTest(t, name)

			if _, err := s.Config(); err != ErrConfigNotFound {
				t.Fatalf("err = %v, want ErrConfigNotFound", err)
			}

			cfg := &LockConfig{
				PoolID: solana.NewWallet().PublicKey(),
				Admin:  solana.NewWallet().PublicKey(),
				FeeBps: 100,
			}
			if err := s.CreateConfig(cfg); err != nil {
				t.Fatal(err)
			}
			if err := s.CreateConfig(cfg); err != ErrConfigExists {
				t.Fatalf("err = %v, want ErrConfigExists", err)
			}

			got, err := s.Config()
			if err != nil {
				t.Fatal(err)
			}
			if !got.PoolID.Equals(cfg.PoolID) || got.FeeBps != 100 {
				t.Error("config mismatch")
			}
		})
	}
}

func TestStoreLockLifecycle(t *testing.T) {
	for _, name := range []string{"memory", "file"} {
		t.Run(name, func(t *testing.T) {
			s := storeUnderTest(t, name)
			owner := solana.NewWallet().PublicKey()
			record := sampleRecord(owner)

			if _, err := s.Lock(owner, record.PositionNftMint); err != ErrLockNotFound {
				t.Fatalf("err = %v, want ErrLockNotFound", err)
			}
			if err := s.CreateLock(record); err != nil {
				t.Fatal(err)
			}
			if err := s.CreateLock(record); err != ErrLockExists {
				t.Fatalf("err = %v, want ErrLockExists", err)
			}

			got, err := s.Lock(owner, record.PositionNftMint)
			if err != nil {
				t.Fatal(err)
			}
			if got.LiquidityLocked.BigInt().Cmp(record.LiquidityLocked.BigInt()) != 0 {
				t.Error("liquidity mismatch")
			}

			// mutating the returned record must not leak into the store
			got.Status = LockStatusClaimed
			again, err := s.Lock(owner, record.PositionNftMint)
			if err != nil {
				t.Fatal(err)
			}
			if again.Status != LockStatusActive {
				t.Error("store leaked caller mutation")
			}
		})
	}
}

func TestStoreUpdateLockCAS(t *testing.T) {
	for _, name := range []string{"memory", "file"} {
		t.Run(name, func(t *testing.T) {
			s := storeUnderTest(t, name)
			record := sampleRecord(solana.NewWallet().PublicKey())
			if err := s.CreateLock(record); err != nil {
				t.Fatal(err)
			}

			next := record.clone()
			next.Status = LockStatusClaimed
			next.LiquidityLocked = u128.GenUint128FromString("0")
			if err := s.UpdateLock(next, LockStatusActive, record.LiquidityLocked); err != nil {
				t.Fatal(err)
			}

			// second writer still holds the old expectation
			if err := s.UpdateLock(next, LockStatusActive, record.LiquidityLocked); err != ErrStaleRecord {
				t.Fatalf("err = %v, want ErrStaleRecord", err)
			}
		})
	}
}

func TestStoreLocksByOwner(t *testing.T) {
	for _, name := range []string{"memory", "file"} {
		t.Run(name, func(t *testing.T) {
			s := storeUnderTest(t, name)
			owner := solana.NewWallet().PublicKey()
			other := solana.NewWallet().PublicKey()

			for i := 0; i < 3; i++ {
				if err := s.CreateLock(sampleRecord(owner)); err != nil {
					t.Fatal(err)
				}
			}
			if err := s.CreateLock(sampleRecord(other)); err != nil {
				t.Fatal(err)
			}

			locks, err := s.LocksByOwner(owner)
			if err != nil {
				t.Fatal(err)
			}
			if len(locks) != 3 {
				t.Fatalf("len = %d, want 3", len(locks))
			}
			for _, lock := range locks {
				if !lock.Owner.Equals(owner) {
					t.Error("wrong owner in result")
				}
			}
		})
	}
}
