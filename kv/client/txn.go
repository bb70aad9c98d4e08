package client

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap/errors"
	"go.uber.org/atomic"
)

var errTxnFinished = errors.New("transaction already committed or rolled back")

// Txn is a transaction handle. Writes go to the data rows immediately, tagged with the start id, and are kept in a
// local buffer which is how the transaction reads its own writes. A fatal error disables the handle: from then on
// every operation fails with ErrTxnDisabled.
type Txn struct {
	client  *Client
	startID uint64

	mu       sync.Mutex
	rows     map[string]*rowBuffer
	touched  []string
	cause    error
	commitID uint64

	disabled      *atomic.Bool
	stopOnce      sync.Once
	stopHeartbeat chan struct{}
	heartbeatDone chan struct{}
}

// rowBuffer holds the latest mutation of each column the transaction wrote in one row.
type rowBuffer struct {
	cells map[string]*mvcc.Mutation
}

func (rb *rowBuffer) onlyDeletes() bool {
	for _, m := range rb.cells {
		if m.Kind != mvcc.VersionDelete {
			return false
		}
	}
	return true
}

func newTxn(c *Client, startID uint64) *Txn {
	return &Txn{
		client:        c,
		startID:       startID,
		rows:          make(map[string]*rowBuffer),
		disabled:      atomic.NewBool(false),
		stopHeartbeat: make(chan struct{}),
		heartbeatDone: make(chan struct{}),
	}
}

func (t *Txn) StartID() uint64 {
	return t.startID
}

// CommitID returns the commit id after a successful Commit, otherwise 0.
func (t *Txn) CommitID() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.commitID
}

// checkReady fails if the transaction can no longer be used.
func (t *Txn) checkReady() error {
	if !t.disabled.Load() {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return &mvcc.ErrTxnDisabled{StartID: t.startID, Cause: t.cause}
}

// disable marks the handle unusable. Only the first cause is kept. It never touches the metadata row.
func (t *Txn) disable(cause error) {
	t.mu.Lock()
	if t.cause == nil {
		t.cause = cause
	}
	t.mu.Unlock()
	t.disabled.Store(true)
	t.stopOnce.Do(func() { close(t.stopHeartbeat) })
}

// fail disables the transaction if err is fatal to it, and returns err.
func (t *Txn) fail(err error) error {
	if outcome := mvcc.Classify(err); outcome.Fatal() {
		log.Warnf("txn %d disabled, %s: %v", t.startID, outcome, err)
		t.disable(err)
	}
	return err
}

func (t *Txn) heartbeatLoop(interval time.Duration) {
	defer close(t.heartbeatDone)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.stopHeartbeat:
			return
		case <-ticker.C:
		}
		ctx, cancel := context.WithTimeout(context.Background(), interval)
		rec, err := t.client.coord.Heartbeat(ctx, t.startID)
		cancel()
		if err != nil {
			if mvcc.Classify(err) == mvcc.OutcomeInvalidState {
				t.disable(err)
				return
			}
			log.Warnf("heartbeat of txn %d failed: %v", t.startID, err)
			continue
		}
		if rec.Status != mvcc.TxnActive {
			log.Infof("txn %d is %s, disabling", t.startID, rec.Status)
			t.disable(&mvcc.ErrTxnOutOfDate{StartID: t.startID, Status: rec.Status})
			return
		}
	}
}

// Put writes value into row/column. The arguments are copied, the caller may reuse them.
func (t *Txn) Put(ctx context.Context, row, column, value []byte) error {
	m := &mvcc.Mutation{Column: cloneBytes(column), Kind: mvcc.VersionPut, Value: append([]byte{}, value...)}
	return t.write(ctx, cloneBytes(row), []*mvcc.Mutation{m})
}

func (t *Txn) Delete(ctx context.Context, row, column []byte) error {
	return t.write(ctx, cloneBytes(row), []*mvcc.Mutation{{Column: cloneBytes(column), Kind: mvcc.VersionDelete}})
}

func cloneBytes(b []byte) []byte {
	return append([]byte(nil), b...)
}

// DeleteRow deletes every column of row visible to the transaction.
func (t *Txn) DeleteRow(ctx context.Context, row []byte) error {
	visible, err := t.GetRow(ctx, row)
	if err != nil || visible == nil {
		return err
	}
	mutations := make([]*mvcc.Mutation, 0, len(visible.Cells))
	for _, cell := range visible.Cells {
		mutations = append(mutations, &mvcc.Mutation{Column: cell.Column, Kind: mvcc.VersionDelete})
	}
	return t.write(ctx, row, mutations)
}

// write checks row for conflicting writers, then writes the mutations. If the row changes between the check and the
// write, the check is repeated up to WriteRetryLimit times.
func (t *Txn) write(ctx context.Context, row []byte, mutations []*mvcc.Mutation) error {
	if err := t.checkReady(); err != nil {
		return err
	}
	data := t.client.data
	for attempt := 0; ; attempt++ {
		raw, err := data.GetRow(ctx, row)
		if err != nil {
			return t.fail(err)
		}
		checked, err := t.client.resolver.CheckConflict(ctx, raw, t.startID)
		if err != nil {
			return t.fail(err)
		}
		err = data.WriteRow(ctx, row, t.startID, mutations, checked)
		if errors.Cause(err) == mvcc.ErrRowChanged && attempt < t.client.conf.WriteRetryLimit {
			log.Debugf("txn %d: row %q changed during write, retry %d", t.startID, row, attempt+1)
			continue
		}
		if err != nil {
			return t.fail(err)
		}
		break
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	rb, ok := t.rows[string(row)]
	if !ok {
		rb = &rowBuffer{cells: make(map[string]*mvcc.Mutation)}
		t.rows[string(row)] = rb
		t.touched = append(t.touched, string(row))
	}
	for _, m := range mutations {
		rb.cells[string(m.Column)] = m
	}
	return nil
}

// Get returns the value of row/column in the transaction's snapshot, or nil if the cell is absent.
func (t *Txn) Get(ctx context.Context, row, column []byte) ([]byte, error) {
	if err := t.checkReady(); err != nil {
		return nil, err
	}
	t.mu.Lock()
	if rb, ok := t.rows[string(row)]; ok {
		if m, ok := rb.cells[string(column)]; ok {
			t.mu.Unlock()
			if m.Kind == mvcc.VersionDelete {
				return nil, nil
			}
			return m.Value, nil
		}
	}
	t.mu.Unlock()
	resolved, err := t.readRow(ctx, row)
	if err != nil || resolved == nil {
		return nil, err
	}
	return resolved.Get(column), nil
}

// GetRow returns every present cell of row, or nil if the row is absent.
func (t *Txn) GetRow(ctx context.Context, row []byte) (*mvcc.Row, error) {
	if err := t.checkReady(); err != nil {
		return nil, err
	}
	return t.readRow(ctx, row)
}

func (t *Txn) readRow(ctx context.Context, row []byte) (*mvcc.Row, error) {
	raw, err := t.client.data.GetRow(ctx, row)
	if err != nil {
		return nil, t.fail(err)
	}
	if raw == nil {
		return t.mergeBuffer(row, nil), nil
	}
	return t.resolve(ctx, raw)
}

// resolve applies the snapshot to raw, then the transaction's own writes.
func (t *Txn) resolve(ctx context.Context, raw *mvcc.RawRow) (*mvcc.Row, error) {
	resolved, err := t.client.resolver.ResolveRow(ctx, raw, t.startID)
	if err != nil {
		return nil, t.fail(err)
	}
	return t.mergeBuffer(raw.Key, resolved), nil
}

func (t *Txn) mergeBuffer(key []byte, resolved *mvcc.Row) *mvcc.Row {
	t.mu.Lock()
	rb, ok := t.rows[string(key)]
	if !ok {
		t.mu.Unlock()
		return resolved
	}
	cells := make(map[string][]byte)
	if resolved != nil {
		for _, cell := range resolved.Cells {
			cells[string(cell.Column)] = cell.Value
		}
	}
	for column, m := range rb.cells {
		if m.Kind == mvcc.VersionDelete {
			delete(cells, column)
		} else {
			cells[column] = m.Value
		}
	}
	t.mu.Unlock()
	if len(cells) == 0 {
		return nil
	}
	merged := &mvcc.Row{Key: key, Cells: make([]*mvcc.Cell, 0, len(cells))}
	for column, value := range cells {
		merged.Cells = append(merged.Cells, &mvcc.Cell{Column: []byte(column), Value: value})
	}
	sort.Slice(merged.Cells, func(i, j int) bool { return bytes.Compare(merged.Cells[i].Column, merged.Cells[j].Column) < 0 })
	return merged
}

// Scan returns a scanner over the rows of [start, end) in the transaction's snapshot. An empty end means no bound.
func (t *Txn) Scan(ctx context.Context, start, end []byte) (*Scanner, error) {
	if err := t.checkReady(); err != nil {
		return nil, err
	}
	return newScanner(t, start, end), nil
}

// Commit commits the transaction. If it was aborted, e.g. by expiry, its rows are rolled back and an ErrTxnAborted
// is returned. Either way the handle is finished afterwards.
func (t *Txn) Commit(ctx context.Context) error {
	if err := t.checkReady(); err != nil {
		if !t.abortedRemotely() {
			return err
		}
		// The metadata row already says ABORTED, e.g. a heartbeat found the transaction expired.
		t.finishHeartbeat()
		t.finalizeRows(&mvcc.TxnRecord{StartID: t.startID, Status: mvcc.TxnAborted})
		t.markFinished()
		return &mvcc.ErrTxnAborted{StartID: t.startID}
	}
	t.finishHeartbeat()
	commitID, err := t.client.coord.CommitTransaction(ctx, t.startID)
	if err != nil {
		if _, ok := errors.Cause(err).(*mvcc.ErrTxnAborted); ok {
			t.finalizeRows(&mvcc.TxnRecord{StartID: t.startID, Status: mvcc.TxnAborted})
			t.disable(errTxnFinished)
			return err
		}
		// The outcome is unknown, leave the rows to the resolver.
		t.disable(err)
		return err
	}
	t.mu.Lock()
	t.commitID = commitID
	t.mu.Unlock()
	t.finalizeRows(&mvcc.TxnRecord{StartID: t.startID, Status: mvcc.TxnCommitted, CommitID: commitID})
	t.disable(errTxnFinished)
	return nil
}

// Rollback aborts the transaction and rolls back its rows. A disabled transaction can still be rolled back.
func (t *Txn) Rollback(ctx context.Context) error {
	t.mu.Lock()
	finished := t.cause == errTxnFinished
	t.mu.Unlock()
	if finished {
		return t.checkReady()
	}
	t.finishHeartbeat()
	defer t.markFinished()
	if err := t.client.coord.AbortTransaction(ctx, t.startID); err != nil {
		return err
	}
	rec, err := t.client.coord.GetTransactionStatus(ctx, t.startID)
	if err != nil {
		return err
	}
	t.finalizeRows(rec)
	if rec.Status == mvcc.TxnCommitted {
		return errors.Errorf("txn %d is already committed at %d", t.startID, rec.CommitID)
	}
	return nil
}

// abortedRemotely reports whether the handle was disabled because its metadata row is ABORTED.
func (t *Txn) abortedRemotely() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := errors.Cause(t.cause).(*mvcc.ErrTxnOutOfDate)
	return ok && e.Status == mvcc.TxnAborted
}

// markFinished replaces the disable cause, so that later Commit and Rollback calls see a finished handle.
func (t *Txn) markFinished() {
	t.mu.Lock()
	t.cause = errTxnFinished
	t.mu.Unlock()
	t.disable(errTxnFinished)
}

func (t *Txn) finishHeartbeat() {
	t.stopOnce.Do(func() { close(t.stopHeartbeat) })
	<-t.heartbeatDone
}

func (t *Txn) finalizeRows(rec *mvcc.TxnRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, row := range t.touched {
		t.client.finalizer.Submit(mvcc.FinalizeTask{
			Row:      []byte(row),
			Record:   rec,
			IsDelete: t.rows[row].onlyDeletes(),
		})
	}
}
