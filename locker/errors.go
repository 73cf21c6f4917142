package locker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration is returned for a duration class outside {3, 6, 12}.
	ErrInvalidDuration = errors.New("invalid lock duration")

	// ErrInvalidLiquidity is returned for a zero or negative liquidity amount.
	ErrInvalidLiquidity = errors.New("invalid liquidity amount")

	// ErrInvalidPool is returned when the requested pool is not the configured one.
	ErrInvalidPool = errors.New("pool does not match configuration")

	// ErrPoolDisabled is returned when the configured pool is not accepting liquidity.
	ErrPoolDisabled = errors.New("pool is disabled")

	// ErrInvalidFeeBps is returned when a fee parameter exceeds 10000 basis points.
	ErrInvalidFeeBps = errors.New("fee bps out of range")

	ErrUnauthorized        = errors.New("caller is not the lock owner")
	ErrLockNotActive       = errors.New("lock is not active")
	ErrLockNotExpired      = errors.New("lock has not expired")
	ErrInvalidUnlockAmount = errors.New("unlock amount exceeds locked liquidity")

	ErrConfigExists   = errors.New("configuration already initialized")
	ErrConfigNotFound = errors.New("configuration not initialized")
	ErrLockExists     = errors.New("lock record already exists")
	ErrLockNotFound   = errors.New("lock record not found")

	// ErrStaleRecord is returned when a compare-and-swap update loses to a
	// concurrent writer.
	ErrStaleRecord = errors.New("lock record changed concurrently")
)

// EngineError wraps a failure from the liquidity engine or a token-transfer
// primitive. The underlying error is propagated verbatim.
type EngineError struct {
	Call string
	Err  error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("engine call %s: %v", e.Call, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

func engineErr(call string, err error) error {
	return &EngineError{Call: call, Err: err}
}
