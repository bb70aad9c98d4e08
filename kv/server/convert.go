package server

import (
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap-incubator/domino/proto/pkg/dominopb"
	"github.com/pingcap/errors"
)

func recordToPb(rec *mvcc.TxnRecord) *dominopb.TxnRecord {
	if rec == nil {
		return nil
	}
	return &dominopb.TxnRecord{
		StartId:       rec.StartID,
		Status:        int32(rec.Status),
		CommitId:      rec.CommitID,
		LastHeartbeat: rec.LastHeartbeat,
	}
}

func recordFromPb(rec *dominopb.TxnRecord) *mvcc.TxnRecord {
	if rec == nil {
		return nil
	}
	return &mvcc.TxnRecord{
		StartID:       rec.StartId,
		Status:        mvcc.TxnStatus(rec.Status),
		CommitID:      rec.CommitId,
		LastHeartbeat: rec.LastHeartbeat,
	}
}

func rawRowToPb(raw *mvcc.RawRow) *dominopb.RawRow {
	if raw == nil {
		return nil
	}
	row := &dominopb.RawRow{Key: raw.Key}
	for _, cell := range raw.Cells {
		pc := &dominopb.RawCell{Column: cell.Column}
		for _, v := range cell.Versions {
			pc.Versions = append(pc.Versions, &dominopb.Version{StartId: v.StartID, Kind: int32(v.Kind), Value: v.Value})
		}
		row.Cells = append(row.Cells, pc)
	}
	for startID, stamp := range raw.Stamps {
		row.Stamps = append(row.Stamps, &dominopb.Stamp{
			StartId:  startID,
			Kind:     int32(stamp.Kind),
			CommitId: stamp.CommitID,
			IsDelete: stamp.IsDelete,
		})
	}
	return row
}

func rawRowFromPb(row *dominopb.RawRow) *mvcc.RawRow {
	if row == nil {
		return nil
	}
	raw := &mvcc.RawRow{Key: row.Key}
	if raw.Key == nil {
		raw.Key = []byte{}
	}
	for _, pc := range row.Cells {
		cell := &mvcc.RawCell{Column: pc.Column}
		for _, v := range pc.Versions {
			kind := mvcc.VersionKind(v.Kind)
			cell.Versions = append(cell.Versions, &mvcc.Version{StartID: v.StartId, Kind: kind, Value: putValue(kind, v.Value)})
		}
		raw.Cells = append(raw.Cells, cell)
	}
	if len(row.Stamps) > 0 {
		raw.Stamps = make(map[uint64]*mvcc.Stamp, len(row.Stamps))
		for _, s := range row.Stamps {
			raw.Stamps[s.StartId] = &mvcc.Stamp{Kind: mvcc.StampKind(s.Kind), CommitID: s.CommitId, IsDelete: s.IsDelete}
		}
	}
	return raw
}

func mutationsToPb(mutations []*mvcc.Mutation) []*dominopb.Mutation {
	pbs := make([]*dominopb.Mutation, 0, len(mutations))
	for _, m := range mutations {
		pbs = append(pbs, &dominopb.Mutation{Column: m.Column, Kind: int32(m.Kind), Value: m.Value})
	}
	return pbs
}

func mutationsFromPb(pbs []*dominopb.Mutation) []*mvcc.Mutation {
	mutations := make([]*mvcc.Mutation, 0, len(pbs))
	for _, m := range pbs {
		kind := mvcc.VersionKind(m.Kind)
		mutations = append(mutations, &mvcc.Mutation{Column: m.Column, Kind: kind, Value: putValue(kind, m.Value)})
	}
	return mutations
}

// putValue restores the empty value of a put, which protobuf decodes as nil. A nil value reads as an absent cell.
func putValue(kind mvcc.VersionKind, value []byte) []byte {
	if kind == mvcc.VersionPut && value == nil {
		return []byte{}
	}
	return value
}

// errorToPb carries a protocol error over the wire. Errors outside the protocol keep only their message and come
// back as I/O failures.
func errorToPb(err error) *dominopb.Error {
	if err == nil {
		return nil
	}
	cause := errors.Cause(err)
	if cause == mvcc.ErrRowChanged {
		return &dominopb.Error{Kind: dominopb.ErrorKind_RowChanged, Message: cause.Error()}
	}
	switch e := cause.(type) {
	case *mvcc.ErrTxnAborted:
		return &dominopb.Error{Kind: dominopb.ErrorKind_TxnAborted, Message: e.Error(), StartId: e.StartID}
	case *mvcc.ErrTxnOutOfDate:
		return &dominopb.Error{Kind: dominopb.ErrorKind_TxnOutOfDate, Message: e.Error(), StartId: e.StartID, Status: int32(e.Status)}
	case *mvcc.ErrInvalidRowStatus:
		return &dominopb.Error{Kind: dominopb.ErrorKind_InvalidRowStatus, Message: e.Reason, Key: e.Key}
	case *mvcc.ErrWriteConflict:
		return &dominopb.Error{Kind: dominopb.ErrorKind_WriteConflict, Message: e.Error(), StartId: e.StartID, ConflictId: e.ConflictID, Key: e.Row}
	case *mvcc.ErrTxnDisabled:
		return &dominopb.Error{Kind: dominopb.ErrorKind_TxnDisabled, Message: e.Error(), StartId: e.StartID, Cause: errorToPb(e.Cause)}
	}
	return &dominopb.Error{Kind: dominopb.ErrorKind_Other, Message: err.Error()}
}

func errorFromPb(pe *dominopb.Error) error {
	if pe == nil {
		return nil
	}
	switch pe.Kind {
	case dominopb.ErrorKind_TxnAborted:
		return &mvcc.ErrTxnAborted{StartID: pe.StartId}
	case dominopb.ErrorKind_TxnOutOfDate:
		return &mvcc.ErrTxnOutOfDate{StartID: pe.StartId, Status: mvcc.TxnStatus(pe.Status)}
	case dominopb.ErrorKind_InvalidRowStatus:
		return &mvcc.ErrInvalidRowStatus{Key: pe.Key, Reason: pe.Message}
	case dominopb.ErrorKind_WriteConflict:
		return &mvcc.ErrWriteConflict{StartID: pe.StartId, ConflictID: pe.ConflictId, Row: pe.Key}
	case dominopb.ErrorKind_RowChanged:
		return mvcc.ErrRowChanged
	case dominopb.ErrorKind_TxnDisabled:
		return &mvcc.ErrTxnDisabled{StartID: pe.StartId, Cause: errorFromPb(pe.Cause)}
	}
	return errors.Errorf("remote: %s", pe.Message)
}
