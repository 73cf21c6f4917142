package locker

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/liqlock-go/locker/cp_amm"
)

// VestPosition attaches an engine vesting schedule to an existing active
// lock. The schedule cliffs at the lock term and releases over four equal
// periods. The position NFT must still be in the account the engine checks
// against the owner signature, so this runs as part of the lock flow or on
// a position whose NFT the owner holds.
func (l *Locker) VestPosition(
	ctx context.Context,
	owner *solana.Wallet,
	positionNftMint solana.PublicKey,
) (solana.Signature, error) {
	record, err := l.store.Lock(owner.PublicKey(), positionNftMint)
	if err != nil {
		return solana.Signature{}, err
	}
	if record.Status != LockStatusActive {
		return solana.Signature{}, ErrLockNotActive
	}

	cfg, err := l.store.Config()
	if err != nil {
		return solana.Signature{}, err
	}

	positionNftAccount, err := cp_amm.DerivePositionNftAccount(positionNftMint)
	if err != nil {
		return solana.Signature{}, err
	}

	vesting := solana.NewWallet()
	lockIx, err := cp_amm.NewLockPositionInstruction(
		record.DurationMonths.VestingParameters(),
		cfg.PoolID,
		record.Position,
		vesting.PublicKey(),
		positionNftAccount,
		owner.PublicKey(),
		owner.PublicKey(),
		eventAuthority,
	)
	if err != nil {
		return solana.Signature{}, err
	}

	sig, err := l.runner.Run(ctx, []solana.Instruction{lockIx}, owner.PublicKey(), func(key solana.PublicKey) *solana.PrivateKey {
		switch {
		case key.Equals(owner.PublicKey()):
			return &owner.PrivateKey
		case key.Equals(vesting.PublicKey()):
			return &vesting.PrivateKey
		default:
			return nil
		}
	})
	if err != nil {
		return solana.Signature{}, engineErr("lock_position", err)
	}

	l.logger.Info("vesting attached",
		zap.String("owner", owner.PublicKey().String()),
		zap.String("positionNftMint", positionNftMint.String()),
		zap.String("vesting", vesting.PublicKey().String()),
	)
	return sig, nil
}
