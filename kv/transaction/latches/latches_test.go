package latches

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryAcquire(t *testing.T) {
	l := NewLatches()

	// Acquiring a new latch is ok.
	lock, wait := l.TryAcquire([]byte{3})
	require.NotNil(t, lock)
	assert.Nil(t, wait)

	// Can only acquire once.
	lock2, wait := l.TryAcquire([]byte{3})
	assert.Nil(t, lock2)
	assert.NotNil(t, wait)

	// Other rows are independent.
	other, _ := l.TryAcquire([]byte{3, 0, 42})
	require.NotNil(t, other)
	other.Release()

	// Release then acquire is ok, and the old waiters are woken.
	lock.Release()
	select {
	case <-wait:
	default:
		t.Fatal("waiter not woken by release")
	}
	lock, _ = l.TryAcquire([]byte{3})
	require.NotNil(t, lock)
	lock.Release()
	// Releasing twice is a no-op and does not free a later holder.
	lock2, _ = l.TryAcquire([]byte{3})
	require.NotNil(t, lock2)
	lock.Release()
	lock3, _ := l.TryAcquire([]byte{3})
	assert.Nil(t, lock3)
	lock2.Release()
}

func TestAcquireCancel(t *testing.T) {
	l := NewLatches()
	lock, err := l.Acquire(context.Background(), []byte("row"))
	require.Nil(t, err)
	defer lock.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = l.Acquire(ctx, []byte("row"))
	assert.NotNil(t, err)
}

func TestAcquireIsExclusive(t *testing.T) {
	l := NewLatchesWithSlots(4)
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := WithRowLock(context.Background(), l, []byte("hot"), func() error {
				v := counter
				time.Sleep(time.Millisecond)
				counter = v + 1
				return nil
			})
			assert.Nil(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, counter)
}

func TestWithRowLockReleases(t *testing.T) {
	l := NewLatches()
	row := []byte("r")
	boom := errors.New("boom")
	err := WithRowLock(context.Background(), l, row, func() error { return boom })
	assert.Equal(t, boom, err)

	func() {
		defer func() { recover() }()
		WithRowLock(context.Background(), l, row, func() error { panic("boom") })
	}()

	lock, _ := l.TryAcquire(row)
	require.NotNil(t, lock)
	lock.Release()
}
