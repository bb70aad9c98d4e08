package mvcc

import (
	"fmt"
)

// Version is one immutable version of a cell, as stored in CfData. The writer's start id is part of the key.
type Version struct {
	StartID uint64
	Kind    VersionKind
	Value   []byte
}

type VersionKind byte

const (
	VersionPut    VersionKind = 1
	VersionDelete VersionKind = 2
)

func (k VersionKind) String() string {
	switch k {
	case VersionPut:
		return "put"
	case VersionDelete:
		return "delete"
	}
	return fmt.Sprintf("unknown(%d)", byte(k))
}

func (v *Version) IsTombstone() bool {
	return v.Kind == VersionDelete
}

// ToBytes returns the CfData value of v. It is never empty.
func (v *Version) ToBytes() []byte {
	buf := make([]byte, 0, 1+len(v.Value))
	buf = append(buf, byte(v.Kind))
	return append(buf, v.Value...)
}

func ParseVersion(startID uint64, value []byte) (*Version, error) {
	if len(value) == 0 {
		return nil, fmt.Errorf("mvcc/version/ParseVersion: empty value for writer %d", startID)
	}
	kind := VersionKind(value[0])
	switch kind {
	case VersionPut:
	case VersionDelete:
		if len(value) != 1 {
			return nil, fmt.Errorf("mvcc/version/ParseVersion: tombstone of writer %d carries a value", startID)
		}
	default:
		return nil, fmt.Errorf("mvcc/version/ParseVersion: unknown kind %d for writer %d", value[0], startID)
	}
	return &Version{StartID: startID, Kind: kind, Value: value[1:]}, nil
}

// Mutation is a client write of one cell.
type Mutation struct {
	Column []byte
	Kind   VersionKind
	Value  []byte
}

func (m *Mutation) Version(startID uint64) *Version {
	return &Version{StartID: startID, Kind: m.Kind, Value: m.Value}
}
