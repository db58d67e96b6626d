// Package bootstrap establishes the goal store connection before the API
// starts serving.
//
// The startup sequence has two states. It begins in StateConnecting and dials
// the store until a dial succeeds, waiting a fixed interval between attempts.
// Only then does it move to StateServing. The HTTP listener must not be opened
// until Connect returns.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/pkordes/goal-tracker/internal/repo"
)

// State is the position of a Sequence in the startup state machine.
type State int32

const (
	StateConnecting State = iota
	StateServing
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateServing:
		return "serving"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ErrAttemptsExhausted is returned by Connect when Policy.MaxAttempts dials
// have all failed.
var ErrAttemptsExhausted = errors.New("store connection attempts exhausted")

// Policy controls how Connect retries.
type Policy struct {
	// Interval is the constant delay between attempts. No growth, no jitter.
	Interval time.Duration

	// MaxAttempts caps the number of dials. 0 means retry forever.
	MaxAttempts uint64

	// AttemptTimeout bounds each dial. 0 leaves it to the driver.
	AttemptTimeout time.Duration
}

// DefaultPolicy retries every 5 seconds, forever.
func DefaultPolicy() Policy {
	return Policy{Interval: 5 * time.Second}
}

// DialFunc opens and verifies a store connection.
type DialFunc func(ctx context.Context) (repo.Conn, error)

// Sequence runs the connecting → serving transition once.
type Sequence struct {
	policy Policy
	dial   DialFunc
	log    *zap.Logger

	state    atomic.Int32
	attempts atomic.Uint64
}

// New constructs a Sequence in StateConnecting.
func New(policy Policy, dial DialFunc, log *zap.Logger) *Sequence {
	if policy.Interval <= 0 {
		policy.Interval = DefaultPolicy().Interval
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Sequence{policy: policy, dial: dial, log: log}
}

// State reports the current state. Safe for concurrent use.
func (s *Sequence) State() State {
	return State(s.state.Load())
}

// Attempts reports how many dials have been made so far.
func (s *Sequence) Attempts() uint64 {
	return s.attempts.Load()
}

// Connect dials until one attempt succeeds, returning the open connection and
// moving the Sequence to StateServing. It returns an error only when ctx is
// done or Policy.MaxAttempts is reached; the state then stays
// StateConnecting.
func (s *Sequence) Connect(ctx context.Context) (repo.Conn, error) {
	b := retry.NewConstant(s.policy.Interval)
	if s.policy.MaxAttempts > 0 {
		b = retry.WithMaxRetries(s.policy.MaxAttempts-1, b)
	}

	var (
		conn    repo.Conn
		lastErr error
	)
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		n := s.attempts.Add(1)
		s.log.Info("connecting to store", zap.Uint64("attempt", n))

		c, err := s.dialOnce(ctx)
		if err != nil {
			lastErr = err
			fields := []zap.Field{zap.Uint64("attempt", n), zap.Error(err)}
			if s.policy.MaxAttempts == 0 || n < s.policy.MaxAttempts {
				fields = append(fields, zap.Duration("retry_in", s.policy.Interval))
			}
			s.log.Error("store connection failed", fields...)
			return retry.RetryableError(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("bootstrap: %w", ctxErr)
		}
		return nil, fmt.Errorf("bootstrap: %w after %d attempts: %w", ErrAttemptsExhausted, s.Attempts(), lastErr)
	}

	s.state.Store(int32(StateServing))
	s.log.Info("connected to store", zap.Uint64("attempts", s.Attempts()), zap.Stringer("state", s.State()))
	return conn, nil
}

func (s *Sequence) dialOnce(ctx context.Context) (repo.Conn, error) {
	if s.policy.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.policy.AttemptTimeout)
		defer cancel()
	}
	return s.dial(ctx)
}
