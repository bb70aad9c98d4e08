package mvcc

import (
	"context"
	"fmt"
)

// StatusSource answers transaction status queries. It is implemented by the coordinator, which also reclaims expired
// transactions while answering.
type StatusSource interface {
	GetTransactionStatus(ctx context.Context, startID uint64) (*TxnRecord, error)
}

// FinalizeTask asks for row to be stamped with the terminal outcome of Record.
type FinalizeTask struct {
	Row      []byte
	Record   *TxnRecord
	IsDelete bool
}

// Finalizer stamps rows in the background. Submit must not block for long and may drop tasks, finalization is
// never needed for correctness.
type Finalizer interface {
	Submit(task FinalizeTask)
}

// Resolver decides which version of each cell of a raw row a snapshot sees.
//
// A version written by w is visible to reader r iff w != r and w's transaction is COMMITTED with a commit id <= r.
// Versions are considered from the newest writer down, the first visible one wins, and a visible tombstone makes the
// cell absent. Writers with w > r are skipped without a lookup: their commit id, if any, is greater than w.
type Resolver struct {
	status    StatusSource
	cache     *StatusCache
	finalizer Finalizer
}

func NewResolver(status StatusSource, cache *StatusCache) *Resolver {
	return &Resolver{status: status, cache: cache}
}

// SetFinalizer enables roll-forward: rows whose writer's terminal status had to be fetched from the coordinator are
// handed to f for stamping.
func (r *Resolver) SetFinalizer(f Finalizer) {
	r.finalizer = f
}

// ResolveRow returns the row as seen by reader, or nil if no cell is visible.
func (r *Resolver) ResolveRow(ctx context.Context, raw *RawRow, reader uint64) (*Row, error) {
	if raw == nil {
		return nil, nil
	}
	statuses := make(map[uint64]*TxnRecord)
	var row *Row
	for _, cell := range raw.Cells {
		v, err := r.resolveCell(ctx, raw, cell, reader, statuses)
		if err != nil {
			return nil, err
		}
		if v == nil {
			continue
		}
		if row == nil {
			row = &Row{Key: raw.Key}
		}
		row.Cells = append(row.Cells, &Cell{Column: cell.Column, Value: v.Value})
	}
	return row, nil
}

func (r *Resolver) resolveCell(ctx context.Context, raw *RawRow, cell *RawCell, reader uint64,
	statuses map[uint64]*TxnRecord) (*Version, error) {
	for _, v := range cell.Versions {
		if v.StartID >= reader {
			continue
		}
		rec, ok := statuses[v.StartID]
		if !ok {
			var err error
			if rec, err = r.WriterStatus(ctx, raw, v.StartID); err != nil {
				return nil, err
			}
			statuses[v.StartID] = rec
		}
		if !rec.VisibleTo(reader) {
			continue
		}
		if v.IsTombstone() {
			return nil, nil
		}
		return v, nil
	}
	return nil, nil
}

// WriterStatus returns the status of the transaction that wrote versions into raw. The row's own stamp is used
// first, then the cache, then the coordinator. Only terminal records are cached.
func (r *Resolver) WriterStatus(ctx context.Context, raw *RawRow, writer uint64) (*TxnRecord, error) {
	if stamp := raw.Stamp(writer); stamp != nil {
		writerStatusCounter.WithLabelValues("stamp").Inc()
		return stamp.Record(writer), nil
	}
	if rec, ok := r.cache.Get(writer); ok {
		writerStatusCounter.WithLabelValues("cache").Inc()
		return rec, nil
	}
	rec, err := r.status.GetTransactionStatus(ctx, writer)
	if err != nil {
		return nil, err
	}
	writerStatusCounter.WithLabelValues("coordinator").Inc()
	if rec == nil || rec.StartID != writer {
		return nil, &ErrInvalidRowStatus{Key: MetaKey(writer), Reason: fmt.Sprintf("status query returned %v", rec)}
	}
	if err = rec.Check(); err != nil {
		return nil, err
	}
	if rec.Status.IsTerminal() {
		r.cache.Put(rec)
		if r.finalizer != nil {
			r.finalizer.Submit(FinalizeTask{Row: raw.Key, Record: rec, IsDelete: raw.OnlyDeletes(writer)})
		}
	}
	return rec, nil
}

// CheckConflict resolves every foreign writer of raw on behalf of a transaction about to write it. It returns the
// writers found harmless, or an ErrWriteConflict for the first writer that is still running or committed after
// startID.
func (r *Resolver) CheckConflict(ctx context.Context, raw *RawRow, startID uint64) ([]uint64, error) {
	if raw == nil {
		return nil, nil
	}
	var checked []uint64
	for _, w := range raw.Writers() {
		if w == startID {
			continue
		}
		rec, err := r.WriterStatus(ctx, raw, w)
		if err != nil {
			return nil, err
		}
		if rec.Status == TxnActive || (rec.Status == TxnCommitted && rec.CommitID > startID) {
			return nil, &ErrWriteConflict{StartID: startID, ConflictID: w, Row: raw.Key}
		}
		checked = append(checked, w)
	}
	return checked, nil
}
