package engine_util

import (
	"bytes"
	"io/ioutil"
	"os"
	"testing"

	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/stretchr/testify/require"
)

func TestEngineUtil(t *testing.T) {
	dir, err := ioutil.TempDir("", "engine_util")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	conf := config.NewTestConfig()
	conf.DBPath = dir
	db, err := CreateDB("kv", conf)
	require.Nil(t, err)
	defer db.Close()

	batch := new(WriteBatch)
	batch.SetCF(CfData, []byte("a"), []byte("a1"))
	batch.SetCF(CfData, []byte("b"), []byte("b1"))
	batch.SetCF(CfData, []byte("c"), []byte("c1"))
	batch.SetCF(CfWrite, []byte("a"), []byte("a2"))
	batch.SetCF(CfWrite, []byte("b"), []byte("b2"))
	batch.SetCF(CfMeta, []byte("a"), []byte("a3"))
	batch.SetCF(CfData, []byte("e"), []byte("e1"))
	batch.DeleteCF(CfData, []byte("e"))
	require.Equal(t, 8, batch.Len())
	require.Nil(t, batch.WriteToDB(db))

	val, err := GetCF(db, CfData, []byte("e"))
	require.Nil(t, err)
	require.Nil(t, val)

	require.Nil(t, PutCF(db, CfData, []byte("e"), []byte("e2")))
	val, err = GetCF(db, CfData, []byte("e"))
	require.Nil(t, err)
	require.Equal(t, []byte("e2"), val)
	require.Nil(t, DeleteCF(db, CfData, []byte("e")))
	val, _ = GetCF(db, CfData, []byte("e"))
	require.Nil(t, val)

	txn := db.NewTransaction(false)
	defer txn.Discard()
	dataIter := NewCFIterator(CfData, txn)
	var keys [][]byte
	for dataIter.Seek([]byte("a")); dataIter.Valid(); dataIter.Next() {
		keys = append(keys, dataIter.Item().KeyCopy(nil))
	}
	dataIter.Close()
	require.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, keys)

	// Iteration never leaks into another CF.
	writeIter := NewCFIterator(CfWrite, txn)
	writeIter.Seek([]byte("b"))
	require.True(t, writeIter.Valid())
	item := writeIter.Item()
	require.True(t, bytes.Equal(item.Key(), []byte("b")))
	val, _ = item.Value()
	require.True(t, bytes.Equal(val, []byte("b2")))
	writeIter.Next()
	require.False(t, writeIter.Valid())
	writeIter.Close()
}

func TestExceedEndKey(t *testing.T) {
	require.False(t, ExceedEndKey([]byte("a"), nil))
	require.False(t, ExceedEndKey([]byte("a"), []byte("b")))
	require.True(t, ExceedEndKey([]byte("b"), []byte("b")))
	require.True(t, ExceedEndKey([]byte("c"), []byte("b")))
}
