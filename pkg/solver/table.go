package solver

import "sync"

// Memo table, maps a state to whether it is a win for the player to move.
// Entries are inserted once and never overwritten.
type table[M comparable] interface {
	Get(state M) (win bool, ok bool)
	Put(state M, win bool)
	Len() int
}

type mapTable[M comparable] map[M]bool

func (t mapTable[M]) Get(state M) (bool, bool) {
	win, ok := t[state]
	return win, ok
}

func (t mapTable[M]) Put(state M, win bool) {
	if _, ok := t[state]; !ok {
		t[state] = win
	}
}

func (t mapTable[M]) Len() int {
	return len(t)
}

// Table shared by the threads of a parallel search
type lockedTable[M comparable] struct {
	mu sync.RWMutex
	m  map[M]bool
}

func newLockedTable[M comparable]() *lockedTable[M] {
	return &lockedTable[M]{m: make(map[M]bool)}
}

func (t *lockedTable[M]) Get(state M) (bool, bool) {
	t.mu.RLock()
	win, ok := t.m[state]
	t.mu.RUnlock()
	return win, ok
}

func (t *lockedTable[M]) Put(state M, win bool) {
	t.mu.Lock()
	if _, ok := t.m[state]; !ok {
		t.m[state] = win
	}
	t.mu.Unlock()
}

func (t *lockedTable[M]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.m)
}
