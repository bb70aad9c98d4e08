package engine_util

import (
	"bytes"

	"github.com/Connor1996/badger"
	"github.com/pingcap/errors"
)

// Column families used by the transaction layer. Badger has no native column families, so every key is stored
// with its CF name as a prefix.
const (
	// CfData holds cell versions, keyed by row, column and writer start id.
	CfData string = "data"
	// CfWrite holds per-row finalization stamps, keyed by row and writer start id.
	CfWrite string = "write"
	// CfMeta holds transaction metadata rows, keyed by start id.
	CfMeta string = "meta"
)

var CFs = [3]string{CfData, CfWrite, CfMeta}

func KeyWithCF(cf string, key []byte) []byte {
	return append([]byte(cf+"_"), key...)
}

// GetCF reads one key of a CF. A missing key returns (nil, nil).
func GetCF(db *badger.DB, cf string, key []byte) (val []byte, err error) {
	err = db.View(func(txn *badger.Txn) error {
		val, err = GetCFFromTxn(txn, cf, key)
		return err
	})
	return
}

// GetCFFromTxn is GetCF inside an existing badger transaction.
func GetCFFromTxn(txn *badger.Txn, cf string, key []byte) ([]byte, error) {
	item, err := txn.Get(KeyWithCF(cf, key))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	val, err := item.ValueCopy(nil)
	return val, errors.Trace(err)
}

func PutCF(db *badger.DB, cf string, key []byte, val []byte) error {
	return db.Update(func(txn *badger.Txn) error {
		return txn.Set(KeyWithCF(cf, key), val)
	})
}

func DeleteCF(db *badger.DB, cf string, key []byte) error {
	return db.Update(func(txn *badger.Txn) error {
		return txn.Delete(KeyWithCF(cf, key))
	})
}

// ExceedEndKey reports whether current is at or past endKey. An empty endKey means no upper bound.
func ExceedEndKey(current, endKey []byte) bool {
	if len(endKey) == 0 {
		return false
	}
	return bytes.Compare(current, endKey) >= 0
}
