package locker

import (
	"context"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/krazyTry/liqlock-go/locker/cp_amm"
	solanago "github.com/krazyTry/liqlock-go/solana"
	"github.com/krazyTry/liqlock-go/solana/token2022"
	"github.com/krazyTry/liqlock-go/u128"
)

// LockLiquidity opens a position on the configured pool, deposits liquidity
// into it, and moves the position NFT into service escrow for the duration
// class. Everything runs in one transaction; the lock record is committed
// only after it confirms.
//
// The user signs as owner and fee payer. A fresh NFT mint keypair is
// generated per lock and signs the position creation.
func (l *Locker) LockLiquidity(
	ctx context.Context,
	user *solana.Wallet,
	pool solana.PublicKey,
	liquidity *big.Int,
	durationMonths uint8,
) (*Lock, error) {
	duration, err := ParseDuration(durationMonths)
	if err != nil {
		return nil, err
	}

	if liquidity == nil || liquidity.Sign() <= 0 {
		return nil, ErrInvalidLiquidity
	}
	liquidityDelta, err := u128.FromBig(liquidity)
	if err != nil {
		return nil, ErrInvalidLiquidity
	}

	cfg, err := l.store.Config()
	if err != nil {
		return nil, err
	}
	if !pool.Equals(cfg.PoolID) {
		return nil, ErrInvalidPool
	}

	poolState, err := l.GetPool(ctx, pool)
	if err != nil {
		return nil, err
	}
	if !poolState.Enabled() {
		return nil, ErrPoolDisabled
	}

	positionNft := solana.NewWallet()

	position, err := cp_amm.DerivePositionAddress(positionNft.PublicKey())
	if err != nil {
		return nil, err
	}
	positionNftAccount, err := cp_amm.DerivePositionNftAccount(positionNft.PublicKey())
	if err != nil {
		return nil, err
	}

	tokenAProgram := cp_amm.GetTokenProgram(poolState.TokenAFlag)
	tokenBProgram := cp_amm.GetTokenProgram(poolState.TokenBFlag)

	userTokenA, err := solanago.FindAssociatedTokenAddress(user.PublicKey(), poolState.TokenAMint, tokenAProgram)
	if err != nil {
		return nil, err
	}
	userTokenB, err := solanago.FindAssociatedTokenAddress(user.PublicKey(), poolState.TokenBMint, tokenBProgram)
	if err != nil {
		return nil, err
	}

	escrowNftAccount, err := solanago.FindAssociatedTokenAddress(l.escrow.PublicKey(), positionNft.PublicKey(), solana.Token2022ProgramID)
	if err != nil {
		return nil, err
	}

	var instructions []solana.Instruction

	instructions = append(instructions, cp_amm.NewCreatePositionInstruction(
		user.PublicKey(),
		positionNft.PublicKey(),
		positionNftAccount,
		pool,
		position,
		poolAuthority,
		user.PublicKey(),
		eventAuthority,
	))

	instructions = append(instructions, solanago.CreateAssociatedTokenAccountInstruction(
		user.PublicKey(),
		escrowNftAccount,
		l.escrow.PublicKey(),
		positionNft.PublicKey(),
		solana.Token2022ProgramID,
	))

	addIx, err := cp_amm.NewAddLiquidityInstruction(
		&cp_amm.AddLiquidityParameters{
			LiquidityDelta:        liquidityDelta,
			TokenAAmountThreshold: cp_amm.U64Max,
			TokenBAmountThreshold: cp_amm.U64Max,
		},
		pool,
		position,
		userTokenA,
		userTokenB,
		poolState.TokenAVault,
		poolState.TokenBVault,
		poolState.TokenAMint,
		poolState.TokenBMint,
		positionNftAccount,
		user.PublicKey(),
		tokenAProgram,
		tokenBProgram,
		eventAuthority,
	)
	if err != nil {
		return nil, err
	}
	instructions = append(instructions, addIx)

	vesting := solana.NewWallet()
	if l.vestOnLock {
		lockIx, err := cp_amm.NewLockPositionInstruction(
			duration.VestingParameters(),
			pool,
			position,
			vesting.PublicKey(),
			positionNftAccount,
			user.PublicKey(),
			user.PublicKey(),
			eventAuthority,
		)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, lockIx)
	}

	// NFT moves into escrow last, once the position carries the liquidity.
	instructions = append(instructions, token2022.TransferCheckedInstruction(
		positionNftAccount,
		positionNft.PublicKey(),
		escrowNftAccount,
		user.PublicKey(),
		1,
		0,
	))

	instructions = solanago.MergeInstructions(instructions)

	sig, err := l.runner.Run(ctx, instructions, user.PublicKey(), func(key solana.PublicKey) *solana.PrivateKey {
		switch {
		case key.Equals(user.PublicKey()):
			return &user.PrivateKey
		case key.Equals(positionNft.PublicKey()):
			return &positionNft.PrivateKey
		case key.Equals(vesting.PublicKey()):
			return &vesting.PrivateKey
		default:
			return nil
		}
	})
	if err != nil {
		return nil, engineErr("lock_liquidity", err)
	}

	now := uint64(l.now())
	record := &LockRecord{
		Owner:           user.PublicKey(),
		PositionNftMint: positionNft.PublicKey(),
		Position:        position,
		LockStart:       now,
		LockEnd:         now + duration.Seconds(),
		LiquidityLocked: liquidityDelta,
		DurationMonths:  duration,
		Status:          LockStatusActive,
		LastClaimTime:   now,
	}
	if err := l.store.CreateLock(record); err != nil {
		return nil, err
	}

	address, err := DeriveLockRecordAddress(record.Owner, record.PositionNftMint)
	if err != nil {
		return nil, err
	}

	l.logger.Info("liquidity locked",
		zap.String("owner", record.Owner.String()),
		zap.String("positionNftMint", record.PositionNftMint.String()),
		zap.String("liquidity", liquidity.String()),
		zap.Uint8("durationMonths", uint8(duration)),
		zap.Uint64("lockEnd", record.LockEnd),
	)

	return &Lock{
		Address:         address,
		Record:          record,
		PositionNftMint: record.PositionNftMint,
		Signature:       sig,
	}, nil
}
