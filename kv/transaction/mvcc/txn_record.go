package mvcc

import (
	"encoding/binary"
	"fmt"
)

// TxnStatus is the lifecycle state of a transaction. ACTIVE is the only non-terminal state.
type TxnStatus byte

const (
	TxnActive    TxnStatus = 1
	TxnCommitted TxnStatus = 2
	TxnAborted   TxnStatus = 3
)

func (s TxnStatus) String() string {
	switch s {
	case TxnActive:
		return "ACTIVE"
	case TxnCommitted:
		return "COMMITTED"
	case TxnAborted:
		return "ABORTED"
	}
	return fmt.Sprintf("UNKNOWN(%d)", byte(s))
}

func (s TxnStatus) IsTerminal() bool {
	return s == TxnCommitted || s == TxnAborted
}

// TxnRecord is the content of a transaction's metadata row, the single source of truth for its outcome.
type TxnRecord struct {
	StartID  uint64
	Status   TxnStatus
	CommitID uint64 // Only set when Status is TxnCommitted.
	// Unix milliseconds of the last heartbeat from the owning client.
	LastHeartbeat int64
}

const txnRecordLen = 17

func (r *TxnRecord) ToBytes() []byte {
	buf := make([]byte, txnRecordLen)
	buf[0] = byte(r.Status)
	binary.BigEndian.PutUint64(buf[1:], r.CommitID)
	binary.BigEndian.PutUint64(buf[9:], uint64(r.LastHeartbeat))
	return buf
}

// ParseTxnRecord decodes the metadata row of startID. A nil value returns nil, nil.
func ParseTxnRecord(startID uint64, value []byte) (*TxnRecord, error) {
	if value == nil {
		return nil, nil
	}
	if len(value) != txnRecordLen {
		return nil, &ErrInvalidRowStatus{
			Key:    MetaKey(startID),
			Reason: fmt.Sprintf("metadata value is incorrect length, expected %d, found %d", txnRecordLen, len(value)),
		}
	}
	r := &TxnRecord{
		StartID:       startID,
		Status:        TxnStatus(value[0]),
		CommitID:      binary.BigEndian.Uint64(value[1:]),
		LastHeartbeat: int64(binary.BigEndian.Uint64(value[9:])),
	}
	if err := r.Check(); err != nil {
		return nil, err
	}
	return r, nil
}

// Check validates the record invariants: a known status, and a commit id that is set exactly when committed and is
// greater than the start id.
func (r *TxnRecord) Check() error {
	switch r.Status {
	case TxnActive, TxnAborted:
		if r.CommitID != 0 {
			return r.invalid(fmt.Sprintf("%s transaction has commit id %d", r.Status, r.CommitID))
		}
	case TxnCommitted:
		if r.CommitID <= r.StartID {
			return r.invalid(fmt.Sprintf("commit id %d is not greater than start id", r.CommitID))
		}
	default:
		return r.invalid(fmt.Sprintf("unknown status %d", byte(r.Status)))
	}
	return nil
}

func (r *TxnRecord) invalid(reason string) error {
	return &ErrInvalidRowStatus{Key: MetaKey(r.StartID), Reason: reason}
}

func (r *TxnRecord) String() string {
	if r.Status == TxnCommitted {
		return fmt.Sprintf("txn %d %s at %d", r.StartID, r.Status, r.CommitID)
	}
	return fmt.Sprintf("txn %d %s", r.StartID, r.Status)
}

// VisibleTo reports whether the writes of this transaction belong to the snapshot of reader.
func (r *TxnRecord) VisibleTo(reader uint64) bool {
	return r.Status == TxnCommitted && r.CommitID <= reader
}
