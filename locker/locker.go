// Package locker locks liquidity in a Meteora DAMM v2 pool: it opens a
// position, deposits both sides, moves the position NFT into service escrow
// for a fixed term, and releases it after maturity. One durable lock record
// tracks every (owner, position NFT) pair.
package locker

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"go.uber.org/zap"

	"github.com/krazyTry/liqlock-go/locker/cp_amm"
)

var (
	poolAuthority  solana.PublicKey
	eventAuthority solana.PublicKey
)

func init() {
	var err error
	if poolAuthority, err = cp_amm.DerivePoolAuthorityPDA(); err != nil {
		panic(err)
	}
	if eventAuthority, err = cp_amm.DeriveEventAuthorityPDA(); err != nil {
		panic(err)
	}
}

// Locker orchestrates lock and unlock flows against the liquidity engine.
type Locker struct {
	rpcClient *rpc.Client
	wsClient  *ws.Client
	runner    TxRunner
	store     Store

	// escrow holds position NFTs during the lock term. The key never leaves
	// the service.
	escrow *solana.Wallet

	logger     *zap.Logger
	now        func() int64
	vestOnLock bool
}

type Option func(*Locker)

// WithLogger attaches a structured logger to the orchestrator.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Locker) {
		l.logger = logger
	}
}

// WithSimulate makes every transaction a simulation instead of a send.
func WithSimulate(b bool) Option {
	return func(l *Locker) {
		if r, ok := l.runner.(*rpcRunner); ok {
			r.bSimulate = b
		}
	}
}

// WithVesting attaches an engine vesting schedule to every new lock.
func WithVesting(b bool) Option {
	return func(l *Locker) {
		l.vestOnLock = b
	}
}

// WithRunner replaces the transaction runner. Tests drive the state machine
// through a fake runner this way.
func WithRunner(runner TxRunner) Option {
	return func(l *Locker) {
		l.runner = runner
	}
}

func NewLocker(
	rpcClient *rpc.Client,
	wsClient *ws.Client,
	store Store,
	escrow *solana.Wallet,
	opts ...Option,
) *Locker {
	l := &Locker{
		rpcClient: rpcClient,
		wsClient:  wsClient,
		runner:    &rpcRunner{rpcClient: rpcClient, wsClient: wsClient},
		store:     store,
		escrow:    escrow,
		logger:    zap.NewNop(),
		now:       unixNow,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// EscrowAuthority is the public key that holds position NFTs while locked.
func (l *Locker) EscrowAuthority() solana.PublicKey {
	return l.escrow.PublicKey()
}

// Store exposes the record store for read paths.
func (l *Locker) Store() Store {
	return l.store
}

// GetLock fetches one lock record.
func (l *Locker) GetLock(owner, positionNftMint solana.PublicKey) (*LockRecord, error) {
	return l.store.Lock(owner, positionNftMint)
}

// GetLocksByOwner lists every lock record of an owner.
func (l *Locker) GetLocksByOwner(owner solana.PublicKey) ([]*LockRecord, error) {
	return l.store.LocksByOwner(owner)
}
