package board

import (
	"github.com/pkg/errors"
)

// Largest number of points a board may have, bounded by the widest
// PointSet representation (Wide)
const MaxPoints = WideWords * 64

var ErrInvalidDimension = errors.New("invalid board dimension")

// Rectangular m x n grid of points. Point (x, y) has id x*N + y, which is
// also its bit position in every PointSet built for this board.
type Board struct {
	M int
	N int
}

// Create a new board, fails with ErrInvalidDimension if m or n is not positive,
// or the board has more than MaxPoints points
func New(m, n int) (Board, error) {
	if err := Validate(m, n); err != nil {
		return Board{}, err
	}
	return Board{M: m, N: n}, nil
}

// Check the board dimensions without building the board
func Validate(m, n int) error {
	if m <= 0 || n <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "m=%d n=%d: both dimensions must be positive", m, n)
	}
	// m*n may overflow for huge inputs, so divide instead
	if m > MaxPoints/n {
		return errors.Wrapf(ErrInvalidDimension, "m=%d n=%d: board exceeds %d points", m, n, MaxPoints)
	}
	return nil
}

// Number of points on the board
func (b Board) Points() int {
	return b.M * b.N
}

func (b Board) ID(x, y int) int {
	return x*b.N + y
}

func (b Board) XY(id int) (x, y int) {
	return id / b.N, id % b.N
}

func (b Board) InBounds(x, y int) bool {
	return 0 <= x && x < b.M && 0 <= y && y < b.N
}

// Whether every PointSet of this board fits in a Mask64
func (b Board) Narrow() bool {
	return b.Points() <= 64
}
