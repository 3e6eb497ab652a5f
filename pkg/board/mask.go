package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// PointSet over the points of one board, bit i set means point i is a member.
// Implementations are small comparable values, so they can be used directly
// as memo table keys.
type Mask[M any] interface {
	comparable
	Set(id int) M
	Has(id int) bool
	And(other M) M
	Or(other M) M
	Xor(other M) M
	IsZero() bool
	// Population count
	Count() int
	String() string
}

// Build the mask with the first 'points' bits set, ie. the fullMask
// of a board with that many points
func Full[M Mask[M]](points int) M {
	var full M
	for id := 0; id < points; id++ {
		full = full.Set(id)
	}
	return full
}

// Build a mask from the given point ids
func FromIDs[M Mask[M]](ids ...int) M {
	var m M
	for _, id := range ids {
		m = m.Set(id)
	}
	return m
}

// Point ids of the mask, in ascending order
func IDs[M Mask[M]](m M, points int) []int {
	ids := make([]int, 0, m.Count())
	for id := 0; id < points; id++ {
		if m.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// PointSet for boards with at most 64 points
type Mask64 uint64

func (m Mask64) Set(id int) Mask64 {
	return m | 1<<uint(id)
}

func (m Mask64) Has(id int) bool {
	return m&(1<<uint(id)) != 0
}

func (m Mask64) And(other Mask64) Mask64 { return m & other }
func (m Mask64) Or(other Mask64) Mask64  { return m | other }
func (m Mask64) Xor(other Mask64) Mask64 { return m ^ other }
func (m Mask64) IsZero() bool            { return m == 0 }

func (m Mask64) Count() int {
	return bits.OnesCount64(uint64(m))
}

func (m Mask64) String() string {
	return fmt.Sprintf("%#x", uint64(m))
}

const WideWords = 4

// PointSet for boards with up to MaxPoints points, words[0] holds ids 0..63
type Wide [WideWords]uint64

func (w Wide) Set(id int) Wide {
	w[id>>6] |= 1 << uint(id&63)
	return w
}

func (w Wide) Has(id int) bool {
	return w[id>>6]&(1<<uint(id&63)) != 0
}

func (w Wide) And(other Wide) Wide {
	for i := range w {
		w[i] &= other[i]
	}
	return w
}

func (w Wide) Or(other Wide) Wide {
	for i := range w {
		w[i] |= other[i]
	}
	return w
}

func (w Wide) Xor(other Wide) Wide {
	for i := range w {
		w[i] ^= other[i]
	}
	return w
}

func (w Wide) IsZero() bool {
	return w == Wide{}
}

func (w Wide) Count() int {
	n := 0
	for _, word := range w {
		n += bits.OnesCount64(word)
	}
	return n
}

// Hex representation, most significant word first, leading zero words skipped
func (w Wide) String() string {
	top := len(w) - 1
	for top > 0 && w[top] == 0 {
		top--
	}
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "%#x", w[top])
	for i := top - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", w[i])
	}
	return sb.String()
}

// Widen a narrow mask, keeps every bit
func (m Mask64) Wide() Wide {
	return Wide{uint64(m)}
}
