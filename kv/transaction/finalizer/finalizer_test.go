package finalizer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
)

type recordingRows struct {
	mu        sync.Mutex
	commits   []uint64
	rollbacks []uint64
	fail      bool
}

func (r *recordingRows) CommitRow(ctx context.Context, row []byte, startID, commitID uint64, isDelete bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits = append(r.commits, startID)
	if r.fail {
		return errors.New("no route to host")
	}
	return nil
}

func (r *recordingRows) RollbackRow(ctx context.Context, row []byte, startID uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rollbacks = append(r.rollbacks, startID)
	return nil
}

func task(startID uint64, status mvcc.TxnStatus, commitID uint64) mvcc.FinalizeTask {
	return mvcc.FinalizeTask{
		Row:    []byte("r"),
		Record: &mvcc.TxnRecord{StartID: startID, Status: status, CommitID: commitID},
	}
}

func TestFinalizerWorkers(t *testing.T) {
	rows := &recordingRows{fail: true}
	f := New(rows, 2)
	f.Start()
	for i := uint64(1); i <= 20; i++ {
		f.Submit(task(i, mvcc.TxnCommitted, i+100))
	}
	f.Submit(task(50, mvcc.TxnAborted, 0))
	f.Submit(task(51, mvcc.TxnActive, 0))
	f.Wait()
	assert.Len(t, rows.commits, 20)
	assert.Equal(t, []uint64{50}, rows.rollbacks)

	f.Stop()
	f.Stop()
	f.Submit(task(60, mvcc.TxnAborted, 0))
	assert.Equal(t, []uint64{50}, rows.rollbacks)
}

func TestFinalizerInline(t *testing.T) {
	rows := &recordingRows{}
	f := New(rows, 0)
	f.Start()
	f.Submit(task(7, mvcc.TxnCommitted, 8))
	assert.Equal(t, []uint64{7}, rows.commits)
	f.Stop()
}

func TestFinalizerStopWhileSubmitting(t *testing.T) {
	rows := &recordingRows{}
	f := New(rows, 2)
	f.Start()
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				f.Submit(task(uint64(g*1000+i), mvcc.TxnAborted, 0))
			}
		}(g)
	}
	f.Stop()
	wg.Wait()

	// Every task accepted before Stop is handled, so Wait returns.
	done := make(chan struct{})
	go func() {
		f.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Wait blocked after Stop")
	}
	accepted := len(rows.rollbacks)
	f.Submit(task(9999, mvcc.TxnAborted, 0))
	assert.Len(t, rows.rollbacks, accepted)
}
