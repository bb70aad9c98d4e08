package latches

import (
	"context"
	"sync"

	"github.com/dgryski/go-farm"
	"github.com/pingcap/errors"
)

// Latches provide the single-row atomicity the transaction protocol is built on. A latch is an in-process lock on one
// row key (a data row or a transaction metadata row, the two never share a key). Holding a row's latch is what makes
// "read the row, decide, write the row" atomic with respect to every other operation on the same row.
//
// Latches are only ever held for one read-modify-write and must never be held across a network call. As a result no
// operation ever holds two latches and there is no deadlock to detect.
//
// Each latched key maps to a channel that is closed on release. Waiters select on that channel and their context, so
// acquisition can be cancelled. The map is split into slots chosen by a fingerprint of the key to reduce contention on
// the slot mutex.

// RowLocker hands out exclusive per-row locks.
type RowLocker interface {
	// Acquire blocks until the row is locked or ctx is done.
	Acquire(ctx context.Context, row []byte) (*RowLock, error)
}

const defaultSlots = 256

type Latches struct {
	slots []latchSlot
}

type latchSlot struct {
	mu   sync.Mutex
	held map[string]chan struct{}
}

// RowLock is a held latch. Release it exactly once, further calls are no-ops.
type RowLock struct {
	slot     *latchSlot
	key      string
	ch       chan struct{}
	released bool
}

// NewLatches creates a new Latches object. There should only be one such object per set of rows, shared between all
// goroutines.
func NewLatches() *Latches {
	return NewLatchesWithSlots(defaultSlots)
}

func NewLatchesWithSlots(n int) *Latches {
	if n <= 0 {
		n = 1
	}
	l := &Latches{slots: make([]latchSlot, n)}
	for i := range l.slots {
		l.slots[i].held = make(map[string]chan struct{})
	}
	return l
}

func (l *Latches) slot(key []byte) *latchSlot {
	return &l.slots[farm.Fingerprint64(key)%uint64(len(l.slots))]
}

// TryAcquire locks the row if it is free. Otherwise it returns nil and a channel that is closed when the current
// holder releases it.
func (l *Latches) TryAcquire(row []byte) (*RowLock, <-chan struct{}) {
	s := l.slot(row)
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.held[string(row)]; ok {
		return nil, ch
	}
	ch := make(chan struct{})
	s.held[string(row)] = ch
	return &RowLock{slot: s, key: string(row), ch: ch}, nil
}

func (l *Latches) Acquire(ctx context.Context, row []byte) (*RowLock, error) {
	for {
		lock, wait := l.TryAcquire(row)
		if lock != nil {
			return lock, nil
		}
		select {
		case <-wait:
		case <-ctx.Done():
			return nil, errors.Trace(ctx.Err())
		}
	}
}

// Release unlocks the row and wakes every waiter; one of them will get it.
func (rl *RowLock) Release() {
	s := rl.slot
	s.mu.Lock()
	defer s.mu.Unlock()
	if rl.released {
		return
	}
	rl.released = true
	delete(s.held, rl.key)
	close(rl.ch)
}

// WithRowLock runs fn while holding the lock on row. The lock is released however fn exits, including panics.
func WithRowLock(ctx context.Context, l RowLocker, row []byte, fn func() error) error {
	lock, err := l.Acquire(ctx, row)
	if err != nil {
		return err
	}
	defer lock.Release()
	return fn()
}
