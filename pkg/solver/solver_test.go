package solver

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IlikeChooros/go-collinear/pkg/board"
	"github.com/IlikeChooros/go-collinear/pkg/lines"
)

func newSolver[M board.Mask[M]](t testing.TB, m, n int, opts ...Option) *Solver[M] {
	b, err := board.New(m, n)
	require.NoError(t, err)
	return New(lines.Enumerate[M](b), board.Full[M](b.Points()), opts...)
}

// Plain memoized search, without any of the solver's machinery
func referenceWin(state board.Wide, catalog []board.Wide, memo map[board.Wide]bool) bool {
	if state.IsZero() {
		return false
	}
	if win, ok := memo[state]; ok {
		return win
	}
	win := false
	for _, line := range catalog {
		present := state.And(line)
		if present.IsZero() {
			continue
		}
		if !referenceWin(state.Xor(present), catalog, memo) {
			win = true
			break
		}
	}
	memo[state] = win
	return win
}

func TestSolveSingleRow(t *testing.T) {
	for _, n := range []int{2, 3, 7} {
		s := newSolver[board.Mask64](t, 1, n)
		result, err := s.Solve(context.Background())
		require.NoError(t, err)
		assert.True(t, result.FirstPlayerWins, "1x%d", n)
		assert.Equal(t, 1, result.StatesEvaluated, "1x%d", n)
	}
}

func TestSolveSinglePoint(t *testing.T) {
	s := newSolver[board.Mask64](t, 1, 1)
	require.Empty(t, s.Lines())

	result, err := s.Solve(context.Background())
	require.NoError(t, err)
	assert.False(t, result.FirstPlayerWins)
	assert.Equal(t, 1, result.StatesEvaluated)
}

func TestSolveWithoutLines(t *testing.T) {
	for _, points := range []int{1, 3, 64} {
		s := New[board.Mask64](nil, board.Full[board.Mask64](points))
		result, err := s.Solve(context.Background())
		require.NoError(t, err)
		assert.False(t, result.FirstPlayerWins)
		assert.Equal(t, 1, result.StatesEvaluated)
	}
}

func TestSolve2x2(t *testing.T) {
	s := newSolver[board.Mask64](t, 2, 2)
	result, err := s.Solve(context.Background())
	require.NoError(t, err)

	// Every pair of points is a line, so whatever pair the first player takes,
	// the second one takes the remaining two
	assert.False(t, result.FirstPlayerWins)
	assert.Less(t, result.StatesEvaluated, 16)
	assert.Equal(t, result.StatesEvaluated, int(result.Stats.States))
}

func TestSolveMatchesReference(t *testing.T) {
	for _, dims := range [][2]int{{1, 4}, {2, 3}, {2, 4}, {3, 3}, {3, 4}, {2, 6}} {
		t.Run(fmt.Sprintf("%dx%d", dims[0], dims[1]), func(t *testing.T) {
			b, err := board.New(dims[0], dims[1])
			require.NoError(t, err)
			catalog := lines.Enumerate[board.Wide](b)
			want := referenceWin(board.Full[board.Wide](b.Points()), catalog, map[board.Wide]bool{})

			narrow, err := newSolver[board.Mask64](t, b.M, b.N).Solve(context.Background())
			require.NoError(t, err)
			wide, err := newSolver[board.Wide](t, b.M, b.N).Solve(context.Background())
			require.NoError(t, err)

			assert.Equal(t, want, narrow.FirstPlayerWins)
			assert.Equal(t, want, wide.FirstPlayerWins)
			assert.Equal(t, narrow.StatesEvaluated, wide.StatesEvaluated)
		})
	}
}

func TestSolveIdempotent(t *testing.T) {
	first, err := newSolver[board.Mask64](t, 3, 3).Solve(context.Background())
	require.NoError(t, err)
	second, err := newSolver[board.Mask64](t, 3, 3).Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.FirstPlayerWins, second.FirstPlayerWins)
	assert.Equal(t, first.StatesEvaluated, second.StatesEvaluated)
}

func TestWinReusesMemo(t *testing.T) {
	s := newSolver[board.Mask64](t, 3, 3)
	full := board.Full[board.Mask64](9)

	win, err := s.Win(context.Background(), full)
	require.NoError(t, err)
	size := s.Size()

	again, err := s.Win(context.Background(), full)
	require.NoError(t, err)
	assert.Equal(t, win, again)
	assert.Equal(t, size, s.Size())
	assert.Greater(t, s.Stats().MemoHits, uint64(0))
}

func TestWinEmptyState(t *testing.T) {
	s := newSolver[board.Mask64](t, 2, 2)
	win, err := s.Win(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, win)
	assert.Equal(t, 0, s.Size())
}

func TestWinSubState(t *testing.T) {
	s := newSolver[board.Mask64](t, 3, 3)
	// A single remaining point can always be taken
	for id := 0; id < 9; id++ {
		win, err := s.Win(context.Background(), board.FromIDs[board.Mask64](id))
		require.NoError(t, err)
		assert.True(t, win, "point %d", id)
	}
}

func TestMovesShrinkState(t *testing.T) {
	s := newSolver[board.Mask64](t, 3, 4)
	full := board.Full[board.Mask64](12)
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		state := board.Mask64(r.Uint64()).And(full)
		for _, next := range s.Moves(state) {
			assert.Less(t, next.Count(), state.Count())
			assert.Equal(t, next, next.And(state), "successor must be a subset")
		}
		if state.IsZero() {
			assert.Empty(t, s.Moves(state))
		}
	}
}

func TestMovesSkipEmptyLines(t *testing.T) {
	s := newSolver[board.Mask64](t, 1, 3)
	// The only line still has a point
	assert.Equal(t, []board.Mask64{0}, s.Moves(board.FromIDs[board.Mask64](1)))
}

func TestSolveStateLimit(t *testing.T) {
	s := newSolver[board.Mask64](t, 4, 4, WithLimits(DefaultLimits().SetStates(5)))
	_, err := s.Solve(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStateLimit), err)
	assert.Equal(t, StopStates, s.Stats().StopReason)
}

func TestSolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := newSolver[board.Mask64](t, 3, 3)
	_, err := s.Solve(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInterrupted), err)
	assert.Equal(t, 0, s.Size())
}

func TestSolveListener(t *testing.T) {
	progress := 0
	stops := 0
	var final Stats

	listener := NewStatsListener()
	listener.
		SetProgressInterval(1).
		OnProgress(func(stats Stats) {
			progress++
		}).
		OnStop(func(stats Stats) {
			stops++
			final = stats
		})

	s := newSolver[board.Mask64](t, 3, 3, WithListener(listener))
	result, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stops)
	assert.Equal(t, result.StatesEvaluated, progress)
	assert.Equal(t, uint64(result.StatesEvaluated), final.States)
	assert.Equal(t, StopNone, final.StopReason)
}

func TestSolveMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	metrics := NewMetrics(reg)

	s := newSolver[board.Mask64](t, 1, 2, WithMetrics(metrics))
	_, err := s.Solve(context.Background())
	require.NoError(t, err)

	s = newSolver[board.Mask64](t, 2, 2, WithMetrics(metrics))
	result, err := s.Solve(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.solves.WithLabelValues(outcomeFirst)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.solves.WithLabelValues(outcomeSecond)))
	assert.Equal(t, float64(1+result.StatesEvaluated), testutil.ToFloat64(metrics.statesEvaluated))

	_, err = newSolver[board.Mask64](t, 4, 4, WithMetrics(metrics),
		WithLimits(DefaultLimits().SetStates(1))).Solve(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.solves.WithLabelValues(outcomeFailed)))
}

func TestTableNeverOverwrites(t *testing.T) {
	for _, tbl := range []table[board.Mask64]{make(mapTable[board.Mask64]), newLockedTable[board.Mask64]()} {
		tbl.Put(3, true)
		tbl.Put(3, false)
		win, ok := tbl.Get(3)
		assert.True(t, ok)
		assert.True(t, win)
		assert.Equal(t, 1, tbl.Len())

		_, ok = tbl.Get(4)
		assert.False(t, ok)
	}
}

func BenchmarkSolve3x4(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s := newSolver[board.Mask64](b, 3, 4)
		if _, err := s.Solve(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
