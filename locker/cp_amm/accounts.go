package cp_amm

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

type BaseFeeStruct struct {
	CliffFeeNumerator uint64
	BaseFeeMode       uint8
	Padding           [5]uint8
	FirstFactor       uint16
	SecondFactor      [8]uint8
	ThirdFactor       uint64
	Padding1          uint64
}

type DynamicFeeStruct struct {
	Initialized              uint8
	Padding                  [7]uint8
	MaxVolatilityAccumulator uint32
	VariableFeeControl       uint32
	BinStep                  uint16
	FilterPeriod             uint16
	DecayPeriod              uint16
	ReductionFactor          uint16
	LastUpdateTimestamp      uint64
	BinStepU128              binary.Uint128
	SqrtPriceReference       binary.Uint128
	VolatilityAccumulator    binary.Uint128
	VolatilityReference      binary.Uint128
}

type PoolFeesStruct struct {
	BaseFee            BaseFeeStruct
	ProtocolFeePercent uint8
	PartnerFeePercent  uint8
	ReferralFeePercent uint8
	Padding0           [5]uint8
	DynamicFee         DynamicFeeStruct
	Padding1           [2]uint64
}

type RewardInfo struct {
	Initialized                               uint8
	RewardTokenFlag                           uint8
	Padding0                                  [6]uint8
	Padding1                                  [8]uint8
	Mint                                      solana.PublicKey
	Vault                                     solana.PublicKey
	Funder                                    solana.PublicKey
	RewardDuration                            uint64
	RewardDurationEnd                         uint64
	RewardRate                                binary.Uint128
	RewardPerTokenStored                      [32]uint8
	LastUpdateTime                            uint64
	CumulativeSecondsWithEmptyLiquidityReward uint64
}

type PoolMetrics struct {
	TotalLpAFee       binary.Uint128
	TotalLpBFee       binary.Uint128
	TotalProtocolAFee uint64
	TotalProtocolBFee uint64
	TotalPartnerAFee  uint64
	TotalPartnerBFee  uint64
	TotalPosition     uint64
	Padding           uint64
}

// Pool is the engine's pool account. The lock flows read it to resolve
// vaults, mints and the token program of each side, and to check PoolStatus
// before locking.
type Pool struct {
	PoolFees               PoolFeesStruct
	TokenAMint             solana.PublicKey
	TokenBMint             solana.PublicKey
	TokenAVault            solana.PublicKey
	TokenBVault            solana.PublicKey
	WhitelistedVault       solana.PublicKey
	Partner                solana.PublicKey
	Liquidity              binary.Uint128
	Padding                binary.Uint128
	ProtocolAFee           uint64
	ProtocolBFee           uint64
	PartnerAFee            uint64
	PartnerBFee            uint64
	SqrtMinPrice           binary.Uint128
	SqrtMaxPrice           binary.Uint128
	SqrtPrice              binary.Uint128
	ActivationPoint        uint64
	ActivationType         uint8
	PoolStatus             uint8
	TokenAFlag             uint8
	TokenBFlag             uint8
	CollectFeeMode         uint8
	PoolType               uint8
	Version                uint8
	Padding0               uint8
	FeeAPerLiquidity       [32]uint8
	FeeBPerLiquidity       [32]uint8
	PermanentLockLiquidity binary.Uint128
	Metrics                PoolMetrics
	Creator                solana.PublicKey
	Padding1               [6]uint64
	RewardInfos            [2]RewardInfo
}

// Enabled reports whether the pool accepts liquidity operations.
func (p *Pool) Enabled() bool {
	return p.PoolStatus == 0
}

type PositionMetrics struct {
	TotalClaimedAFee uint64
	TotalClaimedBFee uint64
}

type UserRewardInfo struct {
	RewardPerTokenCheckpoint [32]uint8
	RewardPendings           uint64
	TotalClaimedRewards      uint64
}

// Position is the engine's position account keyed by its NFT mint.
type Position struct {
	Pool                     solana.PublicKey
	NftMint                  solana.PublicKey
	FeeAPerTokenCheckpoint   [32]uint8
	FeeBPerTokenCheckpoint   [32]uint8
	FeeAPending              uint64
	FeeBPending              uint64
	UnlockedLiquidity        binary.Uint128
	VestedLiquidity          binary.Uint128
	PermanentLockedLiquidity binary.Uint128
	Metrics                  PositionMetrics
	RewardInfos              [2]UserRewardInfo
	Padding                  [6]binary.Uint128
}

// Vesting is the engine's vesting account attached to a position by
// lock_position.
type Vesting struct {
	Position               solana.PublicKey
	CliffPoint             uint64
	PeriodFrequency        uint64
	CliffUnlockLiquidity   binary.Uint128
	LiquidityPerPeriod     binary.Uint128
	TotalReleasedLiquidity binary.Uint128
	NumberOfPeriod         uint16
	Padding                [14]uint8
	Padding2               [4]binary.Uint128
}

// AccountDiscriminator returns the 8-byte Anchor account discriminator,
// sha256("account:<name>")[0:8].
func AccountDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	return hash[:8]
}

// ParseAnyAccount decodes raw engine account data by matching its
// discriminator against the account types the lock flows read.
func ParseAnyAccount(data []byte) (interface{}, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("account data too short: %d bytes", len(data))
	}
	disc, body := data[:8], data[8:]

	var obj interface{}
	switch {
	case bytes.Equal(disc, AccountDiscriminator(AccountKeyPool)):
		obj = new(Pool)
	case bytes.Equal(disc, AccountDiscriminator(AccountKeyPosition)):
		obj = new(Position)
	case bytes.Equal(disc, AccountDiscriminator(AccountKeyVesting)):
		obj = new(Vesting)
	default:
		return nil, fmt.Errorf("unknown account discriminator %v", disc)
	}

	if err := binary.NewBorshDecoder(body).Decode(obj); err != nil {
		return nil, err
	}
	return obj, nil
}
