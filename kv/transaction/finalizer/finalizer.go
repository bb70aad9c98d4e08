package finalizer

import (
	"context"
	"sync"
	"time"

	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap-incubator/domino/kv/util/worker"
)

// RowFinalizer stamps data rows. The coordinator implements it.
type RowFinalizer interface {
	CommitRow(ctx context.Context, row []byte, startID, commitID uint64, isDelete bool) error
	RollbackRow(ctx context.Context, row []byte, startID uint64) error
}

const finalizeTimeout = 10 * time.Second

// Finalizer stamps rows with their writer's outcome on background workers. Failed or dropped tasks are only logged:
// an unstamped row is resolved through the coordinator instead.
type Finalizer struct {
	rows    RowFinalizer
	workers int
	worker  *worker.Worker
	wg      sync.WaitGroup

	// mu orders submissions against Stop, so no task is queued behind the stop tasks.
	mu      sync.Mutex
	idle    *sync.Cond
	pending int
	stopped bool
}

var _ mvcc.Finalizer = new(Finalizer)

// New creates a Finalizer with the given number of workers. With zero workers, Submit finalizes synchronously.
func New(rows RowFinalizer, workers int) *Finalizer {
	f := &Finalizer{rows: rows, workers: workers}
	f.idle = sync.NewCond(&f.mu)
	f.worker = worker.NewWorker("finalizer", &f.wg)
	return f
}

func (f *Finalizer) Start() {
	for i := 0; i < f.workers; i++ {
		f.worker.Start(taskHandler{f})
	}
}

func (f *Finalizer) Submit(task mvcc.FinalizeTask) {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	if f.workers == 0 {
		f.mu.Unlock()
		f.finalize(task)
		return
	}
	if f.worker.TrySend(task) {
		f.pending++
	} else {
		log.Warnf("finalizer queue full, dropped %s on row %q", task.Record, task.Row)
	}
	f.mu.Unlock()
}

type taskHandler struct {
	f *Finalizer
}

func (h taskHandler) Handle(t worker.Task) {
	h.f.finalize(t.(mvcc.FinalizeTask))
	h.f.mu.Lock()
	h.f.pending--
	if h.f.pending == 0 {
		h.f.idle.Broadcast()
	}
	h.f.mu.Unlock()
}

func (f *Finalizer) finalize(task mvcc.FinalizeTask) {
	ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()
	var err error
	rec := task.Record
	switch rec.Status {
	case mvcc.TxnCommitted:
		err = f.rows.CommitRow(ctx, task.Row, rec.StartID, rec.CommitID, task.IsDelete)
	case mvcc.TxnAborted:
		err = f.rows.RollbackRow(ctx, task.Row, rec.StartID)
	default:
		log.Warnf("finalize of non-terminal %s on row %q skipped", rec, task.Row)
		return
	}
	if err != nil {
		log.Warnf("finalize %s on row %q failed: %v", rec, task.Row, err)
	}
}

// Wait blocks until every task submitted so far is handled.
func (f *Finalizer) Wait() {
	f.mu.Lock()
	for f.pending > 0 {
		f.idle.Wait()
	}
	f.mu.Unlock()
}

// Stop handles the queued tasks and stops the workers. Later submissions are dropped.
func (f *Finalizer) Stop() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.stopped = true
	f.mu.Unlock()
	f.worker.Stop()
	f.wg.Wait()
}
