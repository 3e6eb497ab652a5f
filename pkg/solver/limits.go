package solver

import (
	"encoding/json"
	"math"
	"strings"
)

type Limits struct {
	// Maximum time in milliseconds, -1 means no limit
	Movetime int
	// Maximum number of distinct states the memo table may hold
	States   uint64
	Infinite bool
	NThreads int
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultMovetimeLimit int    = -1
	DefaultStatesLimit   uint64 = math.MaxUint64
)

func DefaultLimits() *Limits {
	return &Limits{
		Movetime: DefaultMovetimeLimit,
		States:   DefaultStatesLimit,
		Infinite: true,
		NThreads: 1,
	}
}

// Set the maximum time for the solver to think
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

// Set the maximum number of states the solver may compute
func (l *Limits) SetStates(states uint64) *Limits {
	l.States = states
	l.Infinite = false
	return l
}

func (l *Limits) SetInfinite(infinite bool) {
	l.Infinite = infinite
}

// Number of goroutines evaluating the root moves, 1 keeps the search single threaded
func (l *Limits) SetThreads(threads int) *Limits {
	l.NThreads = max(threads, 1)
	return l
}
