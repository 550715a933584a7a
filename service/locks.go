package service

import (
	"sync"
)

// LockTable provides per-user mutual exclusion. Every mutating operation for
// a user (start, reveal, cashout, claims, ledger changes) runs under that
// user's lock; cross-user operations acquire both locks in ascending ID order
// so two concurrent transfers cannot deadlock.
type LockTable struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

// NewLockTable creates an empty lock table
func NewLockTable() *LockTable {
	return &LockTable{locks: make(map[int64]*sync.Mutex)}
}

func (t *LockTable) lockFor(userID int64) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		t.locks[userID] = l
	}
	return l
}

// Lock acquires the user's lock and returns the unlock function
func (t *LockTable) Lock(userID int64) func() {
	l := t.lockFor(userID)
	l.Lock()
	return l.Unlock
}

// LockPair acquires both users' locks in ascending ID order and returns the
// unlock function. The two IDs must differ.
func (t *LockTable) LockPair(a, b int64) func() {
	if a == b {
		return t.Lock(a)
	}
	first, second := a, b
	if second < first {
		first, second = second, first
	}

	fl := t.lockFor(first)
	sl := t.lockFor(second)
	fl.Lock()
	sl.Lock()
	return func() {
		sl.Unlock()
		fl.Unlock()
	}
}
