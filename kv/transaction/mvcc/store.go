package mvcc

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap-incubator/domino/kv/transaction/latches"
	"github.com/pingcap-incubator/domino/kv/util/engine_util"
	"github.com/pingcap/errors"
)

// Store is the data shard: it serves raw reads and performs every data row mutation as a read-modify-write under
// that row's latch.
type Store struct {
	storage storage.Storage
	latches *latches.Latches
}

func NewStore(s storage.Storage) *Store {
	return &Store{storage: s, latches: latches.NewLatches()}
}

func (s *Store) GetRow(ctx context.Context, row []byte) (*RawRow, error) {
	reader, err := s.storage.Reader(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer reader.Close()
	return ReadRawRow(reader, row)
}

func (s *Store) ScanRows(ctx context.Context, start, end []byte, limit int) ([]*RawRow, error) {
	reader, err := s.storage.Reader(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer reader.Close()
	return ScanRawRows(reader, start, end, limit)
}

// WriteRow writes the mutations of startID into row. checked lists the foreign writers the caller resolved as
// harmless before calling. If an unstamped writer outside checked is found, nothing is written and ErrRowChanged is
// returned.
func (s *Store) WriteRow(ctx context.Context, row []byte, startID uint64, mutations []*Mutation, checked []uint64) error {
	err := latches.WithRowLock(ctx, s.latches, row, func() error {
		raw, err := s.GetRow(ctx, row)
		if err != nil {
			return err
		}
		if raw != nil {
			if err = checkWritable(raw, startID, checked); err != nil {
				return err
			}
		}
		batch := make([]storage.Modify, 0, len(mutations))
		for _, m := range mutations {
			if m.Kind != VersionPut && m.Kind != VersionDelete {
				return errors.Errorf("invalid mutation kind %d", m.Kind)
			}
			if m.Kind == VersionDelete && len(m.Value) != 0 {
				return errors.Errorf("delete of column %q carries a value", m.Column)
			}
			batch = append(batch, storage.NewPut(engine_util.CfData, CellKey(row, m.Column, startID), m.Version(startID).ToBytes()))
		}
		return errors.Trace(s.storage.Write(ctx, batch))
	})
	rowWriteCounter.WithLabelValues("write", Classify(err).String()).Inc()
	return err
}

func checkWritable(raw *RawRow, startID uint64, checked []uint64) error {
	if stamp := raw.Stamp(startID); stamp != nil {
		if stamp.Kind == StampRollback {
			return &ErrTxnOutOfDate{StartID: startID, Status: TxnAborted}
		}
		return &ErrInvalidRowStatus{Key: raw.Key, Reason: fmt.Sprintf("write by txn %d after its commit stamp", startID)}
	}
	known := make(map[uint64]struct{}, len(checked))
	for _, w := range checked {
		known[w] = struct{}{}
	}
	for _, w := range raw.Writers() {
		if w == startID {
			continue
		}
		stamp := raw.Stamp(w)
		if stamp == nil {
			if _, ok := known[w]; !ok {
				return ErrRowChanged
			}
			continue
		}
		if stamp.Kind == StampCommit && stamp.CommitID > startID {
			return &ErrWriteConflict{StartID: startID, ConflictID: w, Row: raw.Key}
		}
	}
	return nil
}

// CommitRow stamps row with the commit of startID. Repeating it is a no-op, stamping a row already rolled back for
// startID fails with ErrInvalidRowStatus.
func (s *Store) CommitRow(ctx context.Context, row []byte, startID, commitID uint64, isDelete bool) error {
	if commitID <= startID {
		return &ErrInvalidRowStatus{Key: row, Reason: fmt.Sprintf("commit id %d is not greater than start id %d", commitID, startID)}
	}
	err := latches.WithRowLock(ctx, s.latches, row, func() error {
		stamp, err := s.getStamp(ctx, row, startID)
		if err != nil {
			return err
		}
		if stamp != nil {
			if stamp.Kind == StampCommit && stamp.CommitID == commitID {
				return nil
			}
			return &ErrInvalidRowStatus{Key: row, Reason: fmt.Sprintf("commit of txn %d at %d over stamp %s at %d",
				startID, commitID, stamp.Kind, stamp.CommitID)}
		}
		stamp = &Stamp{Kind: StampCommit, CommitID: commitID, IsDelete: isDelete}
		return errors.Trace(s.storage.Write(ctx, []storage.Modify{
			storage.NewPut(engine_util.CfWrite, StampKey(row, startID), stamp.ToBytes()),
		}))
	})
	rowWriteCounter.WithLabelValues("commit", Classify(err).String()).Inc()
	return err
}

// RollbackRow removes every version startID wrote into row and leaves a rollback stamp, which also rejects any later
// write by startID. Repeating it is a no-op, rolling back a committed row fails with ErrInvalidRowStatus.
func (s *Store) RollbackRow(ctx context.Context, row []byte, startID uint64) error {
	err := latches.WithRowLock(ctx, s.latches, row, func() error {
		reader, err := s.storage.Reader(ctx)
		if err != nil {
			return errors.Trace(err)
		}
		stamp, err := readStamp(reader, row, startID)
		if err != nil {
			reader.Close()
			return err
		}
		if stamp != nil {
			reader.Close()
			if stamp.Kind == StampRollback {
				return nil
			}
			return &ErrInvalidRowStatus{Key: row, Reason: fmt.Sprintf("rollback of txn %d over its commit stamp", startID)}
		}
		batch, err := versionDeletes(reader, row, startID)
		reader.Close()
		if err != nil {
			return err
		}
		stamp = &Stamp{Kind: StampRollback}
		batch = append(batch, storage.NewPut(engine_util.CfWrite, StampKey(row, startID), stamp.ToBytes()))
		return errors.Trace(s.storage.Write(ctx, batch))
	})
	rowWriteCounter.WithLabelValues("rollback", Classify(err).String()).Inc()
	return err
}

func (s *Store) getStamp(ctx context.Context, row []byte, startID uint64) (*Stamp, error) {
	reader, err := s.storage.Reader(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer reader.Close()
	return readStamp(reader, row, startID)
}

// versionDeletes returns deletes of every CfData key of row written by startID.
func versionDeletes(reader storage.StorageReader, row []byte, startID uint64) ([]storage.Modify, error) {
	iter := reader.IterCF(engine_util.CfData)
	defer iter.Close()
	prefix := RowPrefix(row)
	var batch []storage.Modify
	for iter.Seek(prefix); iter.Valid(); iter.Next() {
		key := iter.Item().KeyCopy(nil)
		if !bytes.HasPrefix(key, prefix) {
			break
		}
		_, _, writer, err := DecodeCellKey(key)
		if err != nil {
			return nil, err
		}
		if writer == startID {
			batch = append(batch, storage.NewDelete(engine_util.CfData, key))
		}
	}
	return batch, nil
}
