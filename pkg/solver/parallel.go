package solver

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Returned by a root worker to cancel the others
var errWinFound = errors.New("winning move found")

// Evaluate the moves of 'state' on up to NThreads goroutines sharing one memo
// table, the first losing successor cancels the remaining workers
func (s *Solver[M]) winParallel(ctx context.Context, state M) (bool, error) {
	if state.IsZero() {
		return false, nil
	}
	if win, ok := s.table.Get(state); ok {
		s.hits.Add(1)
		return win, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limits.NThreads)
	s.limiter.SetContext(gctx)
	defer s.limiter.SetContext(ctx)

	// The root itself
	s.states.Add(1)

	for i, next := range s.Moves(state) {
		if gctx.Err() != nil {
			break
		}
		next := next
		t := &thread[M]{Solver: s, id: i}
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			win, err := t.win(next)
			if err != nil {
				return err
			}
			if !win {
				return errWinFound
			}
			return nil
		})
	}

	err := g.Wait()
	switch {
	case err == nil:
		s.table.Put(state, false)
		return false, nil
	case errors.Is(err, errWinFound):
		// Workers cancelled after the win tripped the stop signal
		s.limiter.ClearStop()
		s.table.Put(state, true)
		return true, nil
	}

	if reason := s.limiter.StopReason(); reason != StopNone {
		return false, reason.Err()
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, ErrInterrupted
	}
	return false, err
}
