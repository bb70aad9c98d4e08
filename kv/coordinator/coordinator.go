package coordinator

import (
	"context"
	"time"

	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap-incubator/domino/kv/oracle"
	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap-incubator/domino/kv/transaction/latches"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap-incubator/domino/kv/util/engine_util"
	"github.com/pingcap/errors"
)

// Coordinator decides the outcome of transactions and finalizes data rows. Every status transition happens under the
// latch of the transaction's metadata row, so transitions of one transaction are totally ordered, and no transition
// leaves COMMITTED or ABORTED.
type Coordinator interface {
	mvcc.StatusSource
	// BeginTransaction creates the ACTIVE metadata row of startID.
	BeginTransaction(ctx context.Context, startID uint64) error
	// CommitTransaction commits an ACTIVE transaction and returns its commit id. It returns the same commit id for a
	// committed transaction and ErrTxnAborted for any other.
	CommitTransaction(ctx context.Context, startID uint64) (uint64, error)
	// AbortTransaction aborts startID unless it is committed.
	AbortTransaction(ctx context.Context, startID uint64) error
	// Heartbeat refreshes the liveness of an ACTIVE transaction and returns its record.
	Heartbeat(ctx context.Context, startID uint64) (*mvcc.TxnRecord, error)
	CommitRow(ctx context.Context, row []byte, startID, commitID uint64, isDelete bool) error
	RollbackRow(ctx context.Context, row []byte, startID uint64) error
}

// Local is a Coordinator co-located with the data store. Metadata rows live in CfMeta of the same storage.
type Local struct {
	storage storage.Storage
	store   *mvcc.Store
	oracle  oracle.Oracle
	latches *latches.Latches
	expiry  time.Duration
	now     func() time.Time
}

var _ Coordinator = new(Local)

func NewLocal(s storage.Storage, store *mvcc.Store, o oracle.Oracle, conf *config.Config) *Local {
	return &Local{
		storage: s,
		store:   store,
		oracle:  o,
		latches: latches.NewLatches(),
		expiry:  conf.TxnExpiry.Duration,
		now:     time.Now,
	}
}

// SetClock replaces the clock used for heartbeats and expiry.
func (c *Local) SetClock(now func() time.Time) {
	c.now = now
}

func (c *Local) nowMs() int64 {
	return c.now().UnixNano() / int64(time.Millisecond)
}

func (c *Local) BeginTransaction(ctx context.Context, startID uint64) error {
	start := time.Now()
	err := c.withMetaLock(ctx, startID, func() error {
		rec, err := c.readRecord(ctx, startID)
		if err != nil {
			return err
		}
		if rec != nil {
			if rec.Status == mvcc.TxnActive {
				return nil
			}
			return &mvcc.ErrInvalidRowStatus{Key: mvcc.MetaKey(startID), Reason: "begin of finished transaction " + rec.String()}
		}
		return c.writeRecord(ctx, &mvcc.TxnRecord{StartID: startID, Status: mvcc.TxnActive, LastHeartbeat: c.nowMs()})
	})
	observe("begin", start, err)
	return err
}

func (c *Local) CommitTransaction(ctx context.Context, startID uint64) (uint64, error) {
	start := time.Now()
	var commitID uint64
	err := c.withMetaLock(ctx, startID, func() error {
		rec, err := c.readRecord(ctx, startID)
		if err != nil {
			return err
		}
		if rec == nil || rec.Status == mvcc.TxnAborted {
			log.Debugf("commit of txn %d refused, record %v", startID, rec)
			return &mvcc.ErrTxnAborted{StartID: startID}
		}
		if rec.Status == mvcc.TxnCommitted {
			commitID = rec.CommitID
			return nil
		}
		id, err := c.oracle.NextID(ctx)
		if err != nil {
			return errors.Trace(err)
		}
		if id <= startID {
			return &mvcc.ErrInvalidRowStatus{Key: mvcc.MetaKey(startID), Reason: "oracle returned a commit id not above the start id"}
		}
		rec.Status = mvcc.TxnCommitted
		rec.CommitID = id
		if err = c.writeRecord(ctx, rec); err != nil {
			return err
		}
		commitID = id
		return nil
	})
	observe("commit", start, err)
	if err != nil {
		return 0, err
	}
	return commitID, nil
}

func (c *Local) AbortTransaction(ctx context.Context, startID uint64) error {
	start := time.Now()
	err := c.withMetaLock(ctx, startID, func() error {
		rec, err := c.readRecord(ctx, startID)
		if err != nil {
			return err
		}
		if rec != nil && rec.Status == mvcc.TxnCommitted {
			log.Warnf("abort of committed txn %d ignored", startID)
			return nil
		}
		return c.abortLocked(ctx, startID, rec)
	})
	observe("abort", start, err)
	return err
}

// abortLocked writes ABORTED over an ACTIVE or missing record. The caller holds the metadata latch.
func (c *Local) abortLocked(ctx context.Context, startID uint64, rec *mvcc.TxnRecord) error {
	if rec != nil && rec.Status == mvcc.TxnAborted {
		return nil
	}
	aborted := &mvcc.TxnRecord{StartID: startID, Status: mvcc.TxnAborted}
	if rec != nil {
		aborted.LastHeartbeat = rec.LastHeartbeat
	}
	return c.writeRecord(ctx, aborted)
}

// GetTransactionStatus returns the record of startID. An ACTIVE transaction whose last heartbeat is older than the
// expiry is aborted first. A missing record counts as ACTIVE with a heartbeat at time zero.
func (c *Local) GetTransactionStatus(ctx context.Context, startID uint64) (*mvcc.TxnRecord, error) {
	start := time.Now()
	var result *mvcc.TxnRecord
	err := c.withMetaLock(ctx, startID, func() error {
		rec, err := c.readRecord(ctx, startID)
		if err != nil {
			return err
		}
		if rec != nil && rec.Status != mvcc.TxnActive {
			result = rec
			return nil
		}
		var lastHeartbeat int64
		if rec != nil {
			lastHeartbeat = rec.LastHeartbeat
		}
		idle := time.Duration(c.nowMs()-lastHeartbeat) * time.Millisecond
		if idle <= c.expiry {
			result = rec
			return nil
		}
		log.Infof("txn %d expired after %v without heartbeat, aborting", startID, idle)
		if err = c.abortLocked(ctx, startID, rec); err != nil {
			return err
		}
		expiredCounter.Inc()
		result, err = c.readRecord(ctx, startID)
		return err
	})
	observe("status", start, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Local) Heartbeat(ctx context.Context, startID uint64) (*mvcc.TxnRecord, error) {
	start := time.Now()
	var result *mvcc.TxnRecord
	err := c.withMetaLock(ctx, startID, func() error {
		rec, err := c.readRecord(ctx, startID)
		if err != nil {
			return err
		}
		if rec == nil {
			return &mvcc.ErrInvalidRowStatus{Key: mvcc.MetaKey(startID), Reason: "heartbeat of unknown transaction"}
		}
		if rec.Status == mvcc.TxnActive {
			rec.LastHeartbeat = c.nowMs()
			if err = c.writeRecord(ctx, rec); err != nil {
				return err
			}
		}
		result = rec
		return nil
	})
	observe("heartbeat", start, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CommitRow stamps row after checking that startID is committed at commitID.
func (c *Local) CommitRow(ctx context.Context, row []byte, startID, commitID uint64, isDelete bool) error {
	rec, err := c.readRecord(ctx, startID)
	if err != nil {
		return err
	}
	if rec == nil || rec.Status != mvcc.TxnCommitted || rec.CommitID != commitID {
		return &mvcc.ErrInvalidRowStatus{Key: row, Reason: "commit stamp does not match metadata " + recordString(startID, rec)}
	}
	return c.store.CommitRow(ctx, row, startID, commitID, isDelete)
}

// RollbackRow rolls row back after checking that startID is not committed or still running.
func (c *Local) RollbackRow(ctx context.Context, row []byte, startID uint64) error {
	rec, err := c.readRecord(ctx, startID)
	if err != nil {
		return err
	}
	if rec != nil && rec.Status != mvcc.TxnAborted {
		return &mvcc.ErrInvalidRowStatus{Key: row, Reason: "rollback stamp does not match metadata " + rec.String()}
	}
	return c.store.RollbackRow(ctx, row, startID)
}

func (c *Local) withMetaLock(ctx context.Context, startID uint64, fn func() error) error {
	return latches.WithRowLock(ctx, c.latches, mvcc.MetaKey(startID), fn)
}

func (c *Local) readRecord(ctx context.Context, startID uint64) (*mvcc.TxnRecord, error) {
	reader, err := c.storage.Reader(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer reader.Close()
	value, err := reader.GetCF(engine_util.CfMeta, mvcc.MetaKey(startID))
	if err != nil {
		return nil, errors.Trace(err)
	}
	return mvcc.ParseTxnRecord(startID, value)
}

func (c *Local) writeRecord(ctx context.Context, rec *mvcc.TxnRecord) error {
	if err := rec.Check(); err != nil {
		return err
	}
	return errors.Trace(c.storage.Write(ctx, []storage.Modify{
		storage.NewPut(engine_util.CfMeta, mvcc.MetaKey(rec.StartID), rec.ToBytes()),
	}))
}

func recordString(startID uint64, rec *mvcc.TxnRecord) string {
	if rec == nil {
		return "missing"
	}
	return rec.String()
}
