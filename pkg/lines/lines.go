package lines

import (
	"slices"

	"github.com/IlikeChooros/go-collinear/pkg/board"
)

// Step between two consecutive points of a line
type Direction struct {
	DX, DY int
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Primitive directions that can step between two points of the board,
// one per pair of opposite directions (dx > 0, or dx == 0 and dy > 0)
func Directions(b board.Board) []Direction {
	dirs := make([]Direction, 0)
	for dy := -(b.N - 1); dy < b.N; dy++ {
		for dx := -(b.M - 1); dx < b.M; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if gcd(abs(dx), abs(dy)) != 1 {
				continue
			}
			if dx < 0 || (dx == 0 && dy < 0) {
				continue
			}
			dirs = append(dirs, Direction{DX: dx, DY: dy})
		}
	}
	return dirs
}

// Enumerate every maximal line of the board with at least 2 points, each line
// exactly once, sorted by descending point count. Order among lines of the same
// size is unspecified, but stable between calls.
func Enumerate[M board.Mask[M]](b board.Board) []M {
	// Distinct directions may still retrace the same point set,
	// the set keeps the catalog free of duplicates
	seen := make(map[M]struct{})
	catalog := make([]M, 0)

	for _, d := range Directions(b) {
		for x0 := 0; x0 < b.M; x0++ {
			for y0 := 0; y0 < b.N; y0++ {
				// Only walk from the first point of the line
				if b.InBounds(x0-d.DX, y0-d.DY) {
					continue
				}

				line, length := walk[M](b, x0, y0, d)
				if length < 2 {
					continue
				}
				if _, ok := seen[line]; !ok {
					seen[line] = struct{}{}
					catalog = append(catalog, line)
				}
			}
		}
	}

	Sort(catalog)
	return catalog
}

// Collect the points from (x0, y0) stepping by d until leaving the board
func walk[M board.Mask[M]](b board.Board, x0, y0 int, d Direction) (line M, length int) {
	for x, y := x0, y0; b.InBounds(x, y); x, y = x+d.DX, y+d.DY {
		line = line.Set(b.ID(x, y))
		length++
	}
	return line, length
}

// Sort lines by descending point count, the search checks long lines first
func Sort[M board.Mask[M]](catalog []M) {
	slices.SortStableFunc(catalog, func(a, b M) int {
		return b.Count() - a.Count()
	})
}
