package mvcc

import (
	"encoding/binary"
	"fmt"
)

// Stamp records the final outcome of one writer on one row. A serialized version is stored in CfWrite when a row is
// finalized, which lets readers resolve the writer's versions in that row without asking the coordinator.
type Stamp struct {
	Kind     StampKind
	CommitID uint64
	// IsDelete is set when every version the writer left in the row is a tombstone.
	IsDelete bool
}

const stampLen = 10

func (s *Stamp) ToBytes() []byte {
	buf := make([]byte, stampLen)
	buf[0] = byte(s.Kind)
	binary.BigEndian.PutUint64(buf[1:], s.CommitID)
	if s.IsDelete {
		buf[9] = 1
	}
	return buf
}

func ParseStamp(value []byte) (*Stamp, error) {
	if value == nil {
		return nil, nil
	}
	if len(value) != stampLen {
		return nil, fmt.Errorf("mvcc/write/ParseStamp: value is incorrect length, expected %d, found %d", stampLen, len(value))
	}
	kind := StampKind(value[0])
	if kind != StampCommit && kind != StampRollback {
		return nil, fmt.Errorf("mvcc/write/ParseStamp: unknown kind %d", value[0])
	}
	return &Stamp{
		Kind:     kind,
		CommitID: binary.BigEndian.Uint64(value[1:]),
		IsDelete: value[9] != 0,
	}, nil
}

// Record returns the transaction record implied by the stamp of writer startID.
func (s *Stamp) Record(startID uint64) *TxnRecord {
	if s.Kind == StampCommit {
		return &TxnRecord{StartID: startID, Status: TxnCommitted, CommitID: s.CommitID}
	}
	return &TxnRecord{StartID: startID, Status: TxnAborted}
}

type StampKind byte

const (
	StampCommit   StampKind = 1
	StampRollback StampKind = 2
)

func (k StampKind) String() string {
	switch k {
	case StampCommit:
		return "commit"
	case StampRollback:
		return "rollback"
	}
	return fmt.Sprintf("unknown(%d)", byte(k))
}
