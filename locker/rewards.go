package locker

import (
	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"
)

// RecordRewardAccrual adds newly earned rewards to a lock's counters. The
// counters only grow; emission math stays outside this service.
func (l *Locker) RecordRewardAccrual(owner, positionNftMint solana.PublicKey, amount uint64) (*LockRecord, error) {
	record, err := l.store.Lock(owner, positionNftMint)
	if err != nil {
		return nil, err
	}
	if record.Status != LockStatusActive {
		return nil, ErrLockNotActive
	}

	prevStatus, prevLiquidity := record.Status, record.LiquidityLocked
	record.TotalRewardsEarned += amount
	if err := l.store.UpdateLock(record, prevStatus, prevLiquidity); err != nil {
		return nil, err
	}
	return record, nil
}

// RecordRewardClaim records a vested-reward payout, deducting the
// configured fee. It returns the net amount paid and the updated record.
// Claims never exceed what has accrued.
func (l *Locker) RecordRewardClaim(owner, positionNftMint solana.PublicKey, amount uint64, claimTime uint64) (uint64, *LockRecord, error) {
	record, err := l.store.Lock(owner, positionNftMint)
	if err != nil {
		return 0, nil, err
	}
	if record.RewardsClaimed+amount > record.TotalRewardsEarned {
		return 0, nil, ErrInvalidUnlockAmount
	}

	cfg, err := l.store.Config()
	if err != nil {
		return 0, nil, err
	}

	net := netOfFee(amount, cfg.FeeBps)

	prevStatus, prevLiquidity := record.Status, record.LiquidityLocked
	record.RewardsClaimed += amount
	if claimTime > record.LastClaimTime {
		record.LastClaimTime = claimTime
	}
	if err := l.store.UpdateLock(record, prevStatus, prevLiquidity); err != nil {
		return 0, nil, err
	}
	return net, record, nil
}

// netOfFee deducts feeBps basis points from amount, rounding the fee down.
func netOfFee(amount uint64, feeBps uint16) uint64 {
	if feeBps == 0 {
		return amount
	}
	fee := decimal.NewFromUint64(amount).
		Mul(decimal.NewFromInt(int64(feeBps))).
		Div(decimal.NewFromInt(maxFeeBps)).
		Floor()
	return amount - fee.BigInt().Uint64()
}
