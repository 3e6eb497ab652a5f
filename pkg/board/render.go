package board

import "strings"

// Draw the mask as an M-row ASCII grid, 'o' for members and '.' otherwise
func Render[M Mask[M]](b Board, m M) string {
	sb := strings.Builder{}
	sb.Grow(b.M * (b.N + 1))
	for x := 0; x < b.M; x++ {
		for y := 0; y < b.N; y++ {
			if m.Has(b.ID(x, y)) {
				sb.WriteByte('o')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
