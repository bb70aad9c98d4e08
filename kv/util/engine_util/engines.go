package engine_util

import (
	"os"
	"path/filepath"

	"github.com/Connor1996/badger"
	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap/errors"
)

// CreateDB opens (creating if needed) a badger DB at conf.DBPath/subPath.
func CreateDB(subPath string, conf *config.Config) (*badger.DB, error) {
	vlogSize, err := conf.Engine.ValueLogFileBytes()
	if err != nil {
		return nil, err
	}
	tableSize, err := conf.Engine.MaxTableBytes()
	if err != nil {
		return nil, err
	}
	opts := badger.DefaultOptions
	opts.Dir = filepath.Join(conf.DBPath, subPath)
	opts.ValueDir = opts.Dir
	opts.ValueLogFileSize = vlogSize
	opts.MaxTableSize = tableSize
	opts.NumMemtables = conf.Engine.NumMemTables
	opts.NumLevelZeroTables = conf.Engine.NumL0Tables
	opts.NumLevelZeroTablesStall = conf.Engine.NumL0TablesStall
	opts.NumCompactors = conf.Engine.NumCompactors
	opts.SyncWrites = conf.Engine.SyncWrites
	if err := os.MkdirAll(opts.Dir, os.ModePerm); err != nil {
		return nil, errors.Trace(err)
	}
	db, err := badger.Open(opts)
	return db, errors.Trace(err)
}
