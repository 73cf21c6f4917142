package locker

import (
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/krazyTry/liqlock-go/u128"
)

func TestLockRecordRoundTrip(t *testing.T) {
	record := &LockRecord{
		Owner:              solana.NewWallet().PublicKey(),
		PositionNftMint:    solana.NewWallet().PublicKey(),
		Position:           solana.NewWallet().PublicKey(),
		LockStart:          1_700_000_000,
		LockEnd:            1_707_776_000,
		LiquidityLocked:    u128.GenUint128FromString("340282366920938463463374607431768211455"),
		DurationMonths:     Duration3Months,
		Status:             LockStatusActive,
		TotalRewardsEarned: 12345,
		RewardsClaimed:     45,
		LastClaimTime:      1_700_000_100,
	}

	data, err := EncodeLockRecord(record)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeLockRecord(data)
	if err != nil {
		t.Fatal(err)
	}

	if !decoded.Owner.Equals(record.Owner) || !decoded.PositionNftMint.Equals(record.PositionNftMint) {
		t.Error("keys mismatch")
	}
	if decoded.LockEnd != record.LockEnd || decoded.DurationMonths != record.DurationMonths {
		t.Error("term mismatch")
	}
	if decoded.LiquidityLocked.BigInt().Cmp(record.LiquidityLocked.BigInt()) != 0 {
		t.Error("liquidity mismatch")
	}
	if decoded.Status != LockStatusActive {
		t.Errorf("status = %v", decoded.Status)
	}
	if decoded.TotalRewardsEarned != 12345 || decoded.RewardsClaimed != 45 {
		t.Error("reward counters mismatch")
	}
}

func TestLockConfigRoundTrip(t *testing.T) {
	cfg := &LockConfig{
		PoolID:     solana.NewWallet().PublicKey(),
		Admin:      solana.NewWallet().PublicKey(),
		FeeBps:     250,
		RewardMint: solana.NewWallet().PublicKey(),
	}

	data, err := EncodeLockConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := DecodeLockConfig(data)
	if err != nil {
		t.Fatal(err)
	}

	if !decoded.PoolID.Equals(cfg.PoolID) || !decoded.Admin.Equals(cfg.Admin) {
		t.Error("keys mismatch")
	}
	if decoded.FeeBps != 250 {
		t.Errorf("feeBps = %d", decoded.FeeBps)
	}
}

func TestDecodeRejectsWrongDiscriminator(t *testing.T) {
	cfg := &LockConfig{PoolID: solana.NewWallet().PublicKey()}
	data, err := EncodeLockConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := DecodeLockRecord(data); err == nil {
		t.Fatal("config bytes decoded as a lock record")
	}
	if _, err := DecodeLockConfig([]byte{1, 2, 3}); err == nil {
		t.Fatal("short input decoded")
	}
}

func TestLockStatusString(t *testing.T) {
	if LockStatusActive.String() != "Active" || LockStatusClaimed.String() != "Claimed" {
		t.Error("status names")
	}
}
