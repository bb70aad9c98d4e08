package mvcc

import (
	"bytes"
	"context"

	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap-incubator/domino/kv/util/codec"
	"github.com/pingcap-incubator/domino/kv/util/engine_util"
	"github.com/pingcap/errors"
)

// RowReader reads raw multi-version rows. Both the local store and the remote coordinator client implement it.
type RowReader interface {
	// GetRow returns every version of row, or nil if the row has no version at all.
	GetRow(ctx context.Context, row []byte) (*RawRow, error)
	// ScanRows returns up to limit raw rows with start <= key < end in key order. An empty end means no bound.
	ScanRows(ctx context.Context, start, end []byte, limit int) ([]*RawRow, error)
}

// DataStore is the data row surface used by transactions: raw reads plus the write phase.
type DataStore interface {
	RowReader
	WriteRow(ctx context.Context, row []byte, startID uint64, mutations []*Mutation, checked []uint64) error
}

// ReadRawRow reads one row from a storage snapshot. It returns nil if the row has neither versions nor stamps.
func ReadRawRow(reader storage.StorageReader, row []byte) (*RawRow, error) {
	iter := reader.IterCF(engine_util.CfData)
	defer iter.Close()
	prefix := RowPrefix(row)
	iter.Seek(prefix)
	raw, err := readRow(iter, prefix)
	if err != nil {
		return nil, err
	}
	stamps, err := readStamps(reader, prefix)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		// A row whose writers were all rolled back still carries their stamps.
		if len(stamps) == 0 {
			return nil, nil
		}
		raw = &RawRow{Key: row}
	}
	raw.Stamps = stamps
	return raw, nil
}

// ScanRawRows reads up to limit rows starting at start from a storage snapshot.
func ScanRawRows(reader storage.StorageReader, start, end []byte, limit int) ([]*RawRow, error) {
	if limit <= 0 {
		return nil, nil
	}
	iter := reader.IterCF(engine_util.CfData)
	defer iter.Close()
	iter.Seek(RowPrefix(start))
	var rows []*RawRow
	for len(rows) < limit && iter.Valid() {
		row, _, _, err := DecodeCellKey(iter.Item().Key())
		if err != nil {
			return nil, err
		}
		if engine_util.ExceedEndKey(row, end) {
			break
		}
		prefix := RowPrefix(row)
		raw, err := readRow(iter, prefix)
		if err != nil {
			return nil, err
		}
		if raw.Stamps, err = readStamps(reader, prefix); err != nil {
			return nil, err
		}
		rows = append(rows, raw)
	}
	return rows, nil
}

// readRow consumes every CfData entry with the row prefix, leaving iter on the first key of the next row.
func readRow(iter engine_util.DBIterator, prefix []byte) (*RawRow, error) {
	var raw *RawRow
	for ; iter.Valid(); iter.Next() {
		item := iter.Item()
		if !bytes.HasPrefix(item.Key(), prefix) {
			break
		}
		row, column, startID, err := DecodeCellKey(item.KeyCopy(nil))
		if err != nil {
			return nil, err
		}
		value, err := item.ValueCopy(nil)
		if err != nil {
			return nil, errors.Trace(err)
		}
		v, err := ParseVersion(startID, value)
		if err != nil {
			return nil, err
		}
		if raw == nil {
			raw = &RawRow{Key: row}
		}
		raw.addVersion(column, v)
	}
	return raw, nil
}

func readStamps(reader storage.StorageReader, prefix []byte) (map[uint64]*Stamp, error) {
	iter := reader.IterCF(engine_util.CfWrite)
	defer iter.Close()
	var stamps map[uint64]*Stamp
	for iter.Seek(prefix); iter.Valid(); iter.Next() {
		item := iter.Item()
		if !bytes.HasPrefix(item.Key(), prefix) {
			break
		}
		rest, startID, err := codec.DecodeID(item.Key()[len(prefix):])
		if err != nil || len(rest) != 0 {
			return nil, &ErrInvalidRowStatus{Key: item.KeyCopy(nil), Reason: "malformed stamp key"}
		}
		value, err := item.Value()
		if err != nil {
			return nil, errors.Trace(err)
		}
		stamp, err := ParseStamp(value)
		if err != nil {
			return nil, &ErrInvalidRowStatus{Key: item.KeyCopy(nil), Reason: err.Error()}
		}
		if stamps == nil {
			stamps = make(map[uint64]*Stamp)
		}
		stamps[startID] = stamp
	}
	return stamps, nil
}

// readStamp reads the stamp of one writer, nil if the row is not finalized for it.
func readStamp(reader storage.StorageReader, row []byte, startID uint64) (*Stamp, error) {
	value, err := reader.GetCF(engine_util.CfWrite, StampKey(row, startID))
	if err != nil {
		return nil, errors.Trace(err)
	}
	stamp, err := ParseStamp(value)
	if err != nil {
		return nil, &ErrInvalidRowStatus{Key: row, Reason: err.Error()}
	}
	return stamp, nil
}
