// Package collinear decides the collinear-erasure game on an m x n grid of
// points: a move removes every remaining point of a line (through at least two
// grid points) that still has a point on it, and the player who cannot move
// loses.
//
// Point (x, y) is identified by x*n + y, which is also its bit position in
// the returned lines.
package collinear

import (
	"context"
	"time"

	"github.com/IlikeChooros/go-collinear/pkg/board"
	"github.com/IlikeChooros/go-collinear/pkg/lines"
	"github.com/IlikeChooros/go-collinear/pkg/solver"
)

type Result struct {
	M, N            int
	Points          int
	Lines           int
	FirstPlayerWins bool
	// Number of distinct states in the memo table
	StatesEvaluated int
	Elapsed         time.Duration
}

// Every maximal line of the m x n board with at least 2 points, sorted by
// descending point count. Fails with board.ErrInvalidDimension for
// non-positive dimensions or boards above board.MaxPoints points.
func EnumerateLines(m, n int) ([]board.Wide, error) {
	b, err := board.New(m, n)
	if err != nil {
		return nil, err
	}
	return lines.Enumerate[board.Wide](b), nil
}

// Decide whether the first player can force a win on the m x n board.
// Boards up to 64 points are searched with 64-bit masks, bigger ones with
// board.Wide. Dimensions are validated before any search begins.
func Solve(ctx context.Context, m, n int, opts ...solver.Option) (Result, error) {
	b, err := board.New(m, n)
	if err != nil {
		return Result{}, err
	}
	if b.Narrow() {
		return solve[board.Mask64](ctx, b, opts)
	}
	return solve[board.Wide](ctx, b, opts)
}

func solve[M board.Mask[M]](ctx context.Context, b board.Board, opts []solver.Option) (Result, error) {
	catalog := lines.Enumerate[M](b)
	s := solver.New(catalog, board.Full[M](b.Points()), opts...)

	r, err := s.Solve(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{
		M:               b.M,
		N:               b.N,
		Points:          b.Points(),
		Lines:           len(catalog),
		FirstPlayerWins: r.FirstPlayerWins,
		StatesEvaluated: r.StatesEvaluated,
		Elapsed:         r.Stats.Elapsed,
	}, nil
}
