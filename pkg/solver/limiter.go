package solver

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopStates    StopReason = 4 // State budget exhausted
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopStates, "States"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

var (
	ErrInterrupted = errors.New("search interrupted")
	ErrMovetime    = errors.New("movetime limit reached")
	ErrStateLimit  = errors.New("state limit reached")
)

// Error reported for a stop reason, nil for StopNone
func (sr StopReason) Err() error {
	switch {
	case sr&StopInterrupt != 0:
		return ErrInterrupted
	case sr&StopMovetime != 0:
		return ErrMovetime
	case sr&StopStates != 0:
		return ErrStateLimit
	}
	return nil
}

type LimiterLike interface {
	SetContext(ctx context.Context)
	// Set the limits
	SetLimits(*Limits)
	// Get the limits
	Limits() *Limits
	// Get elapsed time in ms (from the last 'Reset' call)
	Elapsed() uint32
	// Set the stop signal, will cause to exit search if set to true
	SetStop(bool)
	// Get the stop signal
	Stop() bool
	// Reset the limiter's flags, called on search setup
	Reset()
	// Check whether the search may continue, records the stop reason if not
	Ok(states uint64) bool
	// Get the reason why the search was stopped
	StopReason() StopReason
}

type Limiter struct {
	limits *Limits
	clock  *clock
	stop   atomic.Bool
	reason atomic.Int32
	ctx    context.Context
}

func NewLimiter() *Limiter {
	return &Limiter{
		limits: DefaultLimits(),
		clock:  newClock(),
		ctx:    context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.clock.Restart(l.limits.Movetime)
	l.stop.Store(false)
	l.reason.Store(int32(StopNone))
}

func (l *Limiter) StopReason() StopReason {
	return StopReason(l.reason.Load())
}

func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

func (l *Limiter) Elapsed() uint32 {
	return uint32(l.clock.Millis())
}

func (l *Limiter) LimitMask(states uint64) StopReason {
	reason := StopNone
	if l.Stop() {
		reason |= StopInterrupt
	}
	// If infinite, only the stop signal matters
	if l.limits.Infinite {
		return reason
	}
	if l.clock.Expired() {
		reason |= StopMovetime
	}
	if states > l.limits.States {
		reason |= StopStates
	}
	return reason
}

func (l *Limiter) Ok(states uint64) bool {
	reason := l.LimitMask(states)
	if reason == StopNone {
		return true
	}
	l.trip(reason)
	return false
}

// Record the stop reason, keeps the first one since other threads may
// trip a limit later
func (l *Limiter) trip(reason StopReason) {
	l.stop.Store(true)
	l.reason.CompareAndSwap(int32(StopNone), int32(reason))
}

// Clear the stop signal and reason, without restarting the timer
func (l *Limiter) ClearStop() {
	l.stop.Store(false)
	l.reason.Store(int32(StopNone))
}
