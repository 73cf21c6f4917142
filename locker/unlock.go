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

// UnlockLiquidity returns a matured lock to its owner: the position NFT
// leaves escrow and the requested liquidity is withdrawn from the position.
// A nil or zero liquidity withdraws everything and closes the record as
// Claimed; a partial amount leaves the record Active with the remainder.
//
// minA and minB bound the token amounts received; zero disables the bound.
// Every validation runs before the transaction is assembled, and the record
// mutation is committed only after the transaction confirms.
func (l *Locker) UnlockLiquidity(
	ctx context.Context,
	caller *solana.Wallet,
	owner solana.PublicKey,
	positionNftMint solana.PublicKey,
	liquidity *big.Int,
	minA uint64,
	minB uint64,
) (*Lock, error) {
	if !caller.PublicKey().Equals(owner) {
		return nil, ErrUnauthorized
	}

	record, err := l.store.Lock(owner, positionNftMint)
	if err != nil {
		return nil, err
	}
	if record.Status != LockStatusActive {
		return nil, ErrLockNotActive
	}
	if uint64(l.now()) < record.LockEnd {
		return nil, ErrLockNotExpired
	}

	locked := record.LiquidityLocked.BigInt()
	if liquidity == nil {
		liquidity = new(big.Int)
	}
	if liquidity.Sign() < 0 || liquidity.Cmp(locked) > 0 {
		return nil, ErrInvalidUnlockAmount
	}
	isFullUnlock := liquidity.Sign() == 0 || liquidity.Cmp(locked) == 0

	cfg, err := l.store.Config()
	if err != nil {
		return nil, err
	}

	poolState, err := l.GetPool(ctx, cfg.PoolID)
	if err != nil {
		return nil, err
	}

	tokenAProgram := cp_amm.GetTokenProgram(poolState.TokenAFlag)
	tokenBProgram := cp_amm.GetTokenProgram(poolState.TokenBFlag)

	userTokenA, err := solanago.FindAssociatedTokenAddress(owner, poolState.TokenAMint, tokenAProgram)
	if err != nil {
		return nil, err
	}
	userTokenB, err := solanago.FindAssociatedTokenAddress(owner, poolState.TokenBMint, tokenBProgram)
	if err != nil {
		return nil, err
	}

	escrowNftAccount, err := solanago.FindAssociatedTokenAddress(l.escrow.PublicKey(), positionNftMint, solana.Token2022ProgramID)
	if err != nil {
		return nil, err
	}
	userNftAccount, err := solanago.FindAssociatedTokenAddress(owner, positionNftMint, solana.Token2022ProgramID)
	if err != nil {
		return nil, err
	}

	var instructions []solana.Instruction

	exists, err := l.runner.AccountExists(ctx, userNftAccount)
	if err != nil {
		return nil, engineErr("get_token_account", err)
	}
	if !exists {
		instructions = append(instructions, solanago.CreateAssociatedTokenAccountInstruction(
			owner,
			userNftAccount,
			owner,
			positionNftMint,
			solana.Token2022ProgramID,
		))
	}

	// NFT returns to the owner first so the engine sees the owner holding
	// the position during removal.
	instructions = append(instructions, token2022.TransferCheckedInstruction(
		escrowNftAccount,
		positionNftMint,
		userNftAccount,
		l.escrow.PublicKey(),
		1,
		0,
	))

	if isFullUnlock {
		removeIx, err := cp_amm.NewRemoveAllLiquidityInstruction(
			&cp_amm.RemoveAllLiquidityParameters{
				TokenAAmountThreshold: minA,
				TokenBAmountThreshold: minB,
			},
			poolAuthority,
			cfg.PoolID,
			record.Position,
			userTokenA,
			userTokenB,
			poolState.TokenAVault,
			poolState.TokenBVault,
			poolState.TokenAMint,
			poolState.TokenBMint,
			userNftAccount,
			owner,
			tokenAProgram,
			tokenBProgram,
			eventAuthority,
		)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, removeIx)
	} else {
		liquidityDelta, err := u128.FromBig(liquidity)
		if err != nil {
			return nil, ErrInvalidUnlockAmount
		}
		removeIx, err := cp_amm.NewRemoveLiquidityInstruction(
			&cp_amm.RemoveLiquidityParameters{
				LiquidityDelta:        liquidityDelta,
				TokenAAmountThreshold: minA,
				TokenBAmountThreshold: minB,
			},
			poolAuthority,
			cfg.PoolID,
			record.Position,
			userTokenA,
			userTokenB,
			poolState.TokenAVault,
			poolState.TokenBVault,
			poolState.TokenAMint,
			poolState.TokenBMint,
			userNftAccount,
			owner,
			tokenAProgram,
			tokenBProgram,
			eventAuthority,
		)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, removeIx)
	}

	instructions = solanago.MergeInstructions(instructions)

	sig, err := l.runner.Run(ctx, instructions, owner, func(key solana.PublicKey) *solana.PrivateKey {
		switch {
		case key.Equals(caller.PublicKey()):
			return &caller.PrivateKey
		case key.Equals(l.escrow.PublicKey()):
			return &l.escrow.PrivateKey
		default:
			return nil
		}
	})
	if err != nil {
		return nil, engineErr("unlock_liquidity", err)
	}

	prevStatus, prevLiquidity := record.Status, record.LiquidityLocked
	if isFullUnlock {
		record.LiquidityLocked = u128.GenUint128FromString("0")
		record.Status = LockStatusClaimed
	} else {
		remaining, err := u128.FromBig(new(big.Int).Sub(locked, liquidity))
		if err != nil {
			return nil, err
		}
		record.LiquidityLocked = remaining
	}
	if err := l.store.UpdateLock(record, prevStatus, prevLiquidity); err != nil {
		return nil, err
	}

	address, err := DeriveLockRecordAddress(owner, positionNftMint)
	if err != nil {
		return nil, err
	}

	l.logger.Info("liquidity unlocked",
		zap.String("owner", owner.String()),
		zap.String("positionNftMint", positionNftMint.String()),
		zap.Bool("full", isFullUnlock),
		zap.String("status", record.Status.String()),
	)

	return &Lock{
		Address:         address,
		Record:          record,
		PositionNftMint: positionNftMint,
		Signature:       sig,
	}, nil
}
