package liqlock

import (
	"github.com/krazyTry/liqlock-go/locker"
)

// NewLocker creates a liquidity lock client.
//
// Example:
//
// lockClient := NewLocker(rpcClient, wsClient, locker.NewMemoryStore(), escrowWallet)
//
// lockClient.LockLiquidity(ctx, userWallet, pool, liquidity, 6)
//
// lockClient.UnlockLiquidity(ctx, userWallet, userWallet.PublicKey(), nftMint, nil, 0, 0)
var NewLocker = locker.NewLocker

// NewLockerFromSettings creates a liquidity lock client from JSON settings.
//
// Example:
//
// settings, _ := locker.ParseSettings(raw)
//
// lockClient, _ := NewLockerFromSettings(ctx, settings)
var NewLockerFromSettings = locker.NewLockerFromSettings
