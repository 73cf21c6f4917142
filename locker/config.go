package locker

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
)

const maxFeeBps = 10_000

// InitializeConfig creates the singleton deployment configuration. It can
// run once; a second call fails with ErrConfigExists. The configured pool
// must exist on chain before locking starts.
func (l *Locker) InitializeConfig(
	ctx context.Context,
	admin solana.PublicKey,
	poolID solana.PublicKey,
	feeBps uint16,
	rewardMint solana.PublicKey,
) (*LockConfig, error) {
	if feeBps > maxFeeBps {
		return nil, ErrInvalidFeeBps
	}

	ok, err := l.runner.AccountExists(ctx, poolID)
	if err != nil {
		return nil, engineErr("get_pool", err)
	}
	if !ok {
		return nil, ErrInvalidPool
	}

	cfg := &LockConfig{
		PoolID:     poolID,
		Admin:      admin,
		FeeBps:     feeBps,
		RewardMint: rewardMint,
	}
	if err := l.store.CreateConfig(cfg); err != nil {
		return nil, err
	}

	l.logger.Info("configuration initialized",
		zap.String("pool", poolID.String()),
		zap.String("admin", admin.String()),
		zap.Uint16("feeBps", feeBps),
	)
	return cfg, nil
}

// Config returns the deployment configuration.
func (l *Locker) Config() (*LockConfig, error) {
	return l.store.Config()
}
