package solver

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/IlikeChooros/go-collinear/pkg/board"
)

// Memoized win/loss search over the states of one board. A state is the set
// of points still present, a move picks a line with at least one present point
// and removes every point of it. The player with no move (empty state) loses.
//
// A Solver owns its memo table, so it must not be shared between concurrent
// calls and a new one is needed for every board.
type Solver[M board.Mask[M]] struct {
	settings
	lines   []M
	keep    []M // full ^ line, for every line
	full    M
	limiter *Limiter
	table   table[M]
	flight  *singleflight.Group // only in the parallel search
	states  atomic.Uint64
	hits    atomic.Uint64
}

type Result struct {
	FirstPlayerWins bool
	// Size of the memo table after the search
	StatesEvaluated int
	Stats           Stats
}

// Create a solver for the board described by 'full' (all points present)
// and its line catalog, which should be sorted by descending point count
func New[M board.Mask[M]](lines []M, full M, opts ...Option) *Solver[M] {
	st := defaultSettings()
	for _, opt := range opts {
		opt(&st)
	}

	keep := make([]M, len(lines))
	for i, line := range lines {
		keep[i] = full.Xor(line)
	}

	s := &Solver[M]{
		settings: st,
		lines:    lines,
		keep:     keep,
		full:     full,
		limiter:  NewLimiter(),
	}
	s.limiter.SetLimits(st.limits)

	if st.limits.NThreads > 1 {
		s.table = newLockedTable[M]()
		s.flight = &singleflight.Group{}
	} else {
		s.table = make(mapTable[M])
	}
	return s
}

// Decide whether the starting position (every point present) is a win
// for the first player
func (s *Solver[M]) Solve(ctx context.Context) (Result, error) {
	level.Debug(s.logger).Log("msg", "solve started", "points", s.full.Count(),
		"lines", len(s.lines), "limits", s.limits)

	win, err := s.Win(ctx, s.full)
	stats := s.Stats()
	s.listener.invoke(s.listener.onStop, stats)
	s.metrics.observe(stats, win, err)

	if err != nil {
		level.Warn(s.logger).Log("msg", "solve aborted", "reason", stats.StopReason,
			"states", stats.States, "err", err)
		return Result{}, errors.Wrapf(err, "solve aborted after %d states", stats.States)
	}

	level.Debug(s.logger).Log("msg", "solve finished", "first_player_wins", win,
		"states", s.Size(), "memo_hits", stats.MemoHits, "elapsed", stats.Elapsed)
	return Result{FirstPlayerWins: win, StatesEvaluated: s.Size(), Stats: stats}, nil
}

// Whether the player to move in 'state' can force a win. The memo table
// is kept between calls, so states solved before are answered immediately.
func (s *Solver[M]) Win(ctx context.Context, state M) (bool, error) {
	s.limiter.SetContext(ctx)
	s.limiter.Reset()
	if !s.limiter.Ok(s.states.Load()) {
		return false, s.limiter.StopReason().Err()
	}

	if s.flight != nil {
		return s.winParallel(ctx, state)
	}

	t := &thread[M]{Solver: s, id: mainThreadId}
	return t.win(state)
}

// States reachable from 'state' in one move, in line catalog order
func (s *Solver[M]) Moves(state M) []M {
	moves := make([]M, 0, len(s.lines))
	for i, line := range s.lines {
		if state.And(line).IsZero() {
			continue
		}
		moves = append(moves, state.And(s.keep[i]))
	}
	return moves
}

// Number of distinct states in the memo table
func (s *Solver[M]) Size() int {
	return s.table.Len()
}

func (s *Solver[M]) Lines() []M {
	return s.lines
}

func (s *Solver[M]) Limiter() LimiterLike {
	return s.limiter
}

func (s *Solver[M]) Stats() Stats {
	states := s.states.Load()
	return Stats{
		States:     states,
		MemoHits:   s.hits.Load(),
		Sps:        states * 1000 / uint64(s.limiter.clock.Millis()),
		Elapsed:    s.limiter.clock.Elapsed(),
		StopReason: s.limiter.StopReason(),
	}
}

func (s *Solver[M]) String() string {
	return fmt.Sprintf("Solver={Points=%d, Lines=%d, Size=%d, Threads=%d}",
		s.full.Count(), len(s.lines), s.Size(), s.limits.NThreads)
}

// Search state of one goroutine
type thread[M board.Mask[M]] struct {
	*Solver[M]
	id    int
	local uint64
}

func (t *thread[M]) win(state M) (bool, error) {
	if state.IsZero() {
		return false, nil // no move left
	}
	if win, ok := t.table.Get(state); ok {
		t.hits.Add(1)
		return win, nil
	}
	if t.flight == nil {
		return t.expand(state)
	}

	// At most one goroutine computes a state, others wait for its verdict
	v, err, _ := t.flight.Do(state.String(), func() (any, error) {
		// It may have been stored after the lookup above
		if win, ok := t.table.Get(state); ok {
			t.hits.Add(1)
			return win, nil
		}
		return t.expand(state)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// Try every move, a single losing successor makes 'state' a win
func (t *thread[M]) expand(state M) (bool, error) {
	if err := t.tick(); err != nil {
		return false, err
	}

	for i, line := range t.lines {
		if state.And(line).IsZero() {
			continue
		}
		win, err := t.win(state.And(t.keep[i]))
		if err != nil {
			return false, err
		}
		if !win {
			t.table.Put(state, true)
			return true, nil
		}
	}

	t.table.Put(state, false)
	return false, nil
}

// Count a new state and check the limits
func (t *thread[M]) tick() error {
	states := t.states.Add(1)
	t.local++

	if states > t.limits.States {
		t.limiter.trip(StopStates)
		return t.limiter.StopReason().Err()
	}
	if t.local%checkInterval == 0 && !t.limiter.Ok(states) {
		return t.limiter.StopReason().Err()
	}
	if t.id == mainThreadId && t.listener.onProgress != nil && t.local%t.listener.nStates == 0 {
		t.listener.onProgress(t.Stats())
	}
	return nil
}
