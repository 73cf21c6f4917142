package locker

import (
	"github.com/gagliardetto/solana-go"
)

// Lock is the result of a successful lock flow.
type Lock struct {
	// Address of the durable record, derived from (owner, position NFT mint).
	Address solana.PublicKey

	// Record is the committed bookkeeping state.
	Record *LockRecord

	// PositionNftMint identifies the engine position the lock wraps.
	PositionNftMint solana.PublicKey

	// Signature of the confirmed transaction. Zero when simulating.
	Signature solana.Signature
}
