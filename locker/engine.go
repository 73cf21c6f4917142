package locker

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/krazyTry/liqlock-go/locker/cp_amm"
	solanago "github.com/krazyTry/liqlock-go/solana"
)

// Vesting pairs a vesting account with its decoded state.
type Vesting struct {
	Vesting      solana.PublicKey
	VestingState *cp_amm.Vesting
}

// GetPool fetches and decodes the engine pool account.
func (l *Locker) GetPool(ctx context.Context, pool solana.PublicKey) (*cp_amm.Pool, error) {
	data, err := l.runner.Account(ctx, pool)
	if err != nil {
		return nil, engineErr("get_pool", err)
	}

	obj, err := cp_amm.ParseAnyAccount(data)
	if err != nil {
		return nil, engineErr("get_pool", err)
	}

	state, ok := obj.(*cp_amm.Pool)
	if !ok {
		return nil, engineErr("get_pool", fmt.Errorf("obj.(*cp_amm.Pool) fail"))
	}
	return state, nil
}

// GetPosition fetches and decodes an engine position account.
func (l *Locker) GetPosition(ctx context.Context, position solana.PublicKey) (*cp_amm.Position, error) {
	data, err := l.runner.Account(ctx, position)
	if err != nil {
		return nil, engineErr("get_position", err)
	}

	obj, err := cp_amm.ParseAnyAccount(data)
	if err != nil {
		return nil, engineErr("get_position", err)
	}

	state, ok := obj.(*cp_amm.Position)
	if !ok {
		return nil, engineErr("get_position", fmt.Errorf("obj.(*cp_amm.Position) fail"))
	}
	return state, nil
}

// GetVestingsByPosition retrieves all vesting accounts attached to a
// position.
func (l *Locker) GetVestingsByPosition(ctx context.Context, position solana.PublicKey) ([]*Vesting, error) {
	opt := solanago.GenProgramAccountFilter(
		cp_amm.AccountKeyVesting,
		&solanago.Filter{
			Owner:  position,
			Offset: 8,
		},
	)

	outs, err := l.rpcClient.GetProgramAccountsWithOpts(ctx, cp_amm.ProgramID, opt)
	if err != nil {
		if err == rpc.ErrNotFound {
			return nil, nil
		}
		return nil, engineErr("get_vestings", err)
	}

	var list []*Vesting
	for _, out := range outs {
		obj, err := cp_amm.ParseAnyAccount(out.Account.Data.GetBinary())
		if err != nil {
			return nil, engineErr("get_vestings", err)
		}
		vesting, ok := obj.(*cp_amm.Vesting)
		if !ok {
			return nil, engineErr("get_vestings", fmt.Errorf("obj.(*cp_amm.Vesting) fail"))
		}

		list = append(list, &Vesting{
			Vesting:      out.Pubkey,
			VestingState: vesting,
		})
	}

	return list, nil
}

// VerifyCustody decodes the token account expected to hold the position NFT
// and reports whether it does.
func (l *Locker) VerifyCustody(ctx context.Context, holder, positionNftMint solana.PublicKey) (bool, error) {
	ata, err := solanago.FindAssociatedTokenAddress(holder, positionNftMint, solana.Token2022ProgramID)
	if err != nil {
		return false, err
	}

	data, err := l.runner.Account(ctx, ata)
	if err != nil {
		if err == rpc.ErrNotFound {
			return false, nil
		}
		return false, engineErr("get_token_account", err)
	}

	account, err := (&solanago.AccountLayout{}).Decode(data)
	if err != nil {
		return false, engineErr("get_token_account", err)
	}
	return account.HoldsToken(positionNftMint), nil
}
