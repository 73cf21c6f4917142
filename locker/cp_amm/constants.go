package cp_amm

import (
	"github.com/gagliardetto/solana-go"
)

// Liquidity engine (Meteora DAMM v2) program id.
var ProgramID = solana.MustPublicKeyFromBase58("cpamdpZCGKUy5JxQXB4dcpGPiikHawvSWAd6mEn1sGG")

// Account names used for program-account discriminator filters.
const (
	AccountKeyPool     = "Pool"
	AccountKeyPosition = "Position"
	AccountKeyVesting  = "Vesting"
)

// U64Max disables a slippage threshold when passed as a token amount bound.
const U64Max = ^uint64(0)

const (
	// TokenFlagSPL marks a pool side served by the legacy token program.
	TokenFlagSPL = 0
	// TokenFlagToken2022 marks a pool side served by Token-2022.
	TokenFlagToken2022 = 1
)
