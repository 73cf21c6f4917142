package cp_amm

import (
	"bytes"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// NewCreatePositionInstruction opens a fresh position keyed by a new NFT
// mint. The mint keypair and the payer must both sign.
func NewCreatePositionInstruction(
	owner solana.PublicKey,
	positionNftMint solana.PublicKey,
	positionNftAccount solana.PublicKey,
	pool solana.PublicKey,
	position solana.PublicKey,
	poolAuthority solana.PublicKey,
	payer solana.PublicKey,
	eventAuthority solana.PublicKey,
) solana.Instruction {
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(owner, false, true),
			solana.NewAccountMeta(positionNftMint, true, true),
			solana.NewAccountMeta(positionNftAccount, true, false),
			solana.NewAccountMeta(pool, true, false),
			solana.NewAccountMeta(position, true, false),
			solana.NewAccountMeta(poolAuthority, false, false),
			solana.NewAccountMeta(payer, true, true),
			solana.NewAccountMeta(solana.Token2022ProgramID, false, false),
			solana.NewAccountMeta(solana.SystemProgramID, false, false),
			solana.NewAccountMeta(eventAuthority, false, false),
			solana.NewAccountMeta(ProgramID, false, false),
		},
		instructionDiscriminator("create_position"),
	)
}

// NewAddLiquidityInstruction deposits both sides into a position.
func NewAddLiquidityInstruction(
	params *AddLiquidityParameters,
	pool solana.PublicKey,
	position solana.PublicKey,
	tokenAAccount solana.PublicKey,
	tokenBAccount solana.PublicKey,
	tokenAVault solana.PublicKey,
	tokenBVault solana.PublicKey,
	tokenAMint solana.PublicKey,
	tokenBMint solana.PublicKey,
	positionNftAccount solana.PublicKey,
	owner solana.PublicKey,
	tokenAProgram solana.PublicKey,
	tokenBProgram solana.PublicKey,
	eventAuthority solana.PublicKey,
) (solana.Instruction, error) {
	data, err := encodeInstruction("add_liquidity", params)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(pool, true, false),
			solana.NewAccountMeta(position, true, false),
			solana.NewAccountMeta(tokenAAccount, true, false),
			solana.NewAccountMeta(tokenBAccount, true, false),
			solana.NewAccountMeta(tokenAVault, true, false),
			solana.NewAccountMeta(tokenBVault, true, false),
			solana.NewAccountMeta(tokenAMint, false, false),
			solana.NewAccountMeta(tokenBMint, false, false),
			solana.NewAccountMeta(positionNftAccount, false, false),
			solana.NewAccountMeta(owner, false, true),
			solana.NewAccountMeta(tokenAProgram, false, false),
			solana.NewAccountMeta(tokenBProgram, false, false),
			solana.NewAccountMeta(eventAuthority, false, false),
			solana.NewAccountMeta(ProgramID, false, false),
		},
		data,
	), nil
}

// NewLockPositionInstruction attaches a vesting schedule to a position. The
// vesting account is a fresh keypair and must sign alongside the owner and
// payer.
func NewLockPositionInstruction(
	params *VestingParameters,
	pool solana.PublicKey,
	position solana.PublicKey,
	vesting solana.PublicKey,
	positionNftAccount solana.PublicKey,
	owner solana.PublicKey,
	payer solana.PublicKey,
	eventAuthority solana.PublicKey,
) (solana.Instruction, error) {
	data, err := encodeInstruction("lock_position", params)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(pool, false, false),
			solana.NewAccountMeta(position, true, false),
			solana.NewAccountMeta(vesting, true, true),
			solana.NewAccountMeta(positionNftAccount, false, false),
			solana.NewAccountMeta(owner, false, true),
			solana.NewAccountMeta(payer, true, true),
			solana.NewAccountMeta(solana.SystemProgramID, false, false),
			solana.NewAccountMeta(eventAuthority, false, false),
			solana.NewAccountMeta(ProgramID, false, false),
		},
		data,
	), nil
}

// NewRemoveLiquidityInstruction withdraws part of a position's liquidity.
func NewRemoveLiquidityInstruction(
	params *RemoveLiquidityParameters,
	poolAuthority solana.PublicKey,
	pool solana.PublicKey,
	position solana.PublicKey,
	tokenAAccount solana.PublicKey,
	tokenBAccount solana.PublicKey,
	tokenAVault solana.PublicKey,
	tokenBVault solana.PublicKey,
	tokenAMint solana.PublicKey,
	tokenBMint solana.PublicKey,
	positionNftAccount solana.PublicKey,
	owner solana.PublicKey,
	tokenAProgram solana.PublicKey,
	tokenBProgram solana.PublicKey,
	eventAuthority solana.PublicKey,
) (solana.Instruction, error) {
	data, err := encodeInstruction("remove_liquidity", params)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		ProgramID,
		removeLiquidityAccounts(poolAuthority, pool, position, tokenAAccount, tokenBAccount,
			tokenAVault, tokenBVault, tokenAMint, tokenBMint, positionNftAccount, owner,
			tokenAProgram, tokenBProgram, eventAuthority),
		data,
	), nil
}

// NewRemoveAllLiquidityInstruction drains a position completely.
func NewRemoveAllLiquidityInstruction(
	params *RemoveAllLiquidityParameters,
	poolAuthority solana.PublicKey,
	pool solana.PublicKey,
	position solana.PublicKey,
	tokenAAccount solana.PublicKey,
	tokenBAccount solana.PublicKey,
	tokenAVault solana.PublicKey,
	tokenBVault solana.PublicKey,
	tokenAMint solana.PublicKey,
	tokenBMint solana.PublicKey,
	positionNftAccount solana.PublicKey,
	owner solana.PublicKey,
	tokenAProgram solana.PublicKey,
	tokenBProgram solana.PublicKey,
	eventAuthority solana.PublicKey,
) (solana.Instruction, error) {
	data, err := encodeInstruction("remove_all_liquidity", params)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		ProgramID,
		removeLiquidityAccounts(poolAuthority, pool, position, tokenAAccount, tokenBAccount,
			tokenAVault, tokenBVault, tokenAMint, tokenBMint, positionNftAccount, owner,
			tokenAProgram, tokenBProgram, eventAuthority),
		data,
	), nil
}

// remove_liquidity and remove_all_liquidity share the same account table.
func removeLiquidityAccounts(
	poolAuthority solana.PublicKey,
	pool solana.PublicKey,
	position solana.PublicKey,
	tokenAAccount solana.PublicKey,
	tokenBAccount solana.PublicKey,
	tokenAVault solana.PublicKey,
	tokenBVault solana.PublicKey,
	tokenAMint solana.PublicKey,
	tokenBMint solana.PublicKey,
	positionNftAccount solana.PublicKey,
	owner solana.PublicKey,
	tokenAProgram solana.PublicKey,
	tokenBProgram solana.PublicKey,
	eventAuthority solana.PublicKey,
) solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		solana.NewAccountMeta(poolAuthority, false, false),
		solana.NewAccountMeta(pool, true, false),
		solana.NewAccountMeta(position, true, false),
		solana.NewAccountMeta(tokenAAccount, true, false),
		solana.NewAccountMeta(tokenBAccount, true, false),
		solana.NewAccountMeta(tokenAVault, true, false),
		solana.NewAccountMeta(tokenBVault, true, false),
		solana.NewAccountMeta(tokenAMint, false, false),
		solana.NewAccountMeta(tokenBMint, false, false),
		solana.NewAccountMeta(positionNftAccount, false, false),
		solana.NewAccountMeta(owner, false, true),
		solana.NewAccountMeta(tokenAProgram, false, false),
		solana.NewAccountMeta(tokenBProgram, false, false),
		solana.NewAccountMeta(eventAuthority, false, false),
		solana.NewAccountMeta(ProgramID, false, false),
	}
}

type borshMarshaler interface {
	MarshalWithEncoder(encoder *binary.Encoder) error
}

func encodeInstruction(name string, params borshMarshaler) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.Write(instructionDiscriminator(name)); err != nil {
		return nil, err
	}
	if err := params.MarshalWithEncoder(binary.NewBorshEncoder(buf)); err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
