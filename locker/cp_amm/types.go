package cp_amm

import (
	binary "github.com/gagliardetto/binary"
)

// AddLiquidityParameters is the borsh payload of add_liquidity.
type AddLiquidityParameters struct {
	LiquidityDelta        binary.Uint128
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
}

func (p *AddLiquidityParameters) MarshalWithEncoder(encoder *binary.Encoder) error {
	if err := encoder.Encode(p.LiquidityDelta); err != nil {
		return err
	}
	if err := encoder.Encode(p.TokenAAmountThreshold); err != nil {
		return err
	}
	return encoder.Encode(p.TokenBAmountThreshold)
}

// RemoveLiquidityParameters is the borsh payload of remove_liquidity.
type RemoveLiquidityParameters struct {
	LiquidityDelta        binary.Uint128
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
}

func (p *RemoveLiquidityParameters) MarshalWithEncoder(encoder *binary.Encoder) error {
	if err := encoder.Encode(p.LiquidityDelta); err != nil {
		return err
	}
	if err := encoder.Encode(p.TokenAAmountThreshold); err != nil {
		return err
	}
	return encoder.Encode(p.TokenBAmountThreshold)
}

// RemoveAllLiquidityParameters is the borsh payload of remove_all_liquidity,
// two slippage bounds and nothing else.
type RemoveAllLiquidityParameters struct {
	TokenAAmountThreshold uint64
	TokenBAmountThreshold uint64
}

func (p *RemoveAllLiquidityParameters) MarshalWithEncoder(encoder *binary.Encoder) error {
	if err := encoder.Encode(p.TokenAAmountThreshold); err != nil {
		return err
	}
	return encoder.Encode(p.TokenBAmountThreshold)
}

// VestingParameters is the borsh payload of lock_position.
type VestingParameters struct {
	CliffPoint           *uint64
	PeriodFrequency      uint64
	CliffUnlockLiquidity binary.Uint128
	LiquidityPerPeriod   binary.Uint128
	NumberOfPeriod       uint16
}

func (p *VestingParameters) MarshalWithEncoder(encoder *binary.Encoder) error {
	if err := encoder.WriteBool(p.CliffPoint != nil); err != nil {
		return err
	}
	if p.CliffPoint != nil {
		if err := encoder.Encode(*p.CliffPoint); err != nil {
			return err
		}
	}
	if err := encoder.Encode(p.PeriodFrequency); err != nil {
		return err
	}
	if err := encoder.Encode(p.CliffUnlockLiquidity); err != nil {
		return err
	}
	if err := encoder.Encode(p.LiquidityPerPeriod); err != nil {
		return err
	}
	return encoder.Encode(p.NumberOfPeriod)
}
