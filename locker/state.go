package locker

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// LockStatus is the state of a lock record.
type LockStatus uint8

const (
	// LockStatusActive marks a live lock, including partially unlocked ones.
	LockStatusActive LockStatus = 0
	// LockStatusUnlocked is kept for layout parity with deployed records. No
	// transition produces it.
	LockStatusUnlocked LockStatus = 1
	// LockStatusClaimed marks a lock whose liquidity was fully withdrawn.
	LockStatusClaimed LockStatus = 2
)

func (s LockStatus) String() string {
	switch s {
	case LockStatusActive:
		return "Active"
	case LockStatusUnlocked:
		return "Unlocked"
	case LockStatusClaimed:
		return "Claimed"
	}
	return fmt.Sprintf("LockStatus(%d)", uint8(s))
}

// LockRecord is the durable per-lock bookkeeping record, one per
// (owner, position NFT mint) pair.
type LockRecord struct {
	Owner           solana.PublicKey
	PositionNftMint solana.PublicKey
	Position        solana.PublicKey
	LockStart       uint64
	LockEnd         uint64
	LiquidityLocked binary.Uint128
	DurationMonths  Duration
	Status          LockStatus

	TotalRewardsEarned uint64
	RewardsClaimed     uint64
	LastClaimTime      uint64
}

// LockConfig is the singleton deployment configuration record.
type LockConfig struct {
	PoolID     solana.PublicKey
	Admin      solana.PublicKey
	FeeBps     uint16
	RewardMint solana.PublicKey
}

const (
	lockRecordAccountName = "LockRecord"
	lockConfigAccountName = "LockConfig"
)

// recordDiscriminator derives the 8-byte discriminator prefixed to every
// persisted record, sha256("account:<name>")[0:8].
func recordDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("account:" + name))
	return hash[:8]
}

func encodeRecord(name string, obj interface{}) ([]byte, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.Write(recordDiscriminator(name)); err != nil {
		return nil, err
	}
	if err := binary.NewBorshEncoder(buf).Encode(obj); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRecord(name string, data []byte, obj interface{}) error {
	disc := recordDiscriminator(name)
	if len(data) < len(disc) || !bytes.Equal(data[:len(disc)], disc) {
		return fmt.Errorf("not a %s record", name)
	}
	return binary.NewBorshDecoder(data[len(disc):]).Decode(obj)
}

// EncodeLockRecord serializes a record with its discriminator.
func EncodeLockRecord(record *LockRecord) ([]byte, error) {
	return encodeRecord(lockRecordAccountName, record)
}

// DecodeLockRecord parses a serialized record, checking the discriminator.
func DecodeLockRecord(data []byte) (*LockRecord, error) {
	record := &LockRecord{}
	if err := decodeRecord(lockRecordAccountName, data, record); err != nil {
		return nil, err
	}
	return record, nil
}

// EncodeLockConfig serializes the configuration with its discriminator.
func EncodeLockConfig(cfg *LockConfig) ([]byte, error) {
	return encodeRecord(lockConfigAccountName, cfg)
}

// DecodeLockConfig parses a serialized configuration, checking the
// discriminator.
func DecodeLockConfig(data []byte) (*LockConfig, error) {
	cfg := &LockConfig{}
	if err := decodeRecord(lockConfigAccountName, data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// clone returns an independent copy so callers cannot mutate stored state.
func (r *LockRecord) clone() *LockRecord {
	cp := *r
	return &cp
}
