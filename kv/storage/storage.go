package storage

import (
	"context"

	"github.com/pingcap-incubator/domino/kv/util/engine_util"
)

// Storage is the raw multi-versioned store the transaction layer is built on. It offers nothing stronger than
// atomic application of one batch, the row-scoped read-modify-write is built on top of it with row locks.
type Storage interface {
	Start() error
	Stop() error
	Write(ctx context.Context, batch []Modify) error
	Reader(ctx context.Context) (StorageReader, error)
}

// StorageReader reads a consistent view of the store. Callers must Close it.
type StorageReader interface {
	// GetCF returns nil, nil when the key does not exist.
	GetCF(cf string, key []byte) ([]byte, error)
	IterCF(cf string) engine_util.DBIterator
	Close()
}
