// Package solana carries the shared RPC, account and instruction plumbing
// used by the lock service.
package solana

import "github.com/gagliardetto/solana-go"

// Filter represents a filter for querying program accounts by owner and offset
type Filter struct {
	Owner  solana.PublicKey // Account owner to filter by
	Offset uint64           // Byte offset of the owner field in the account data
}
