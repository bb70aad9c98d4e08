package standalone_storage

import (
	"context"

	"github.com/Connor1996/badger"
	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap-incubator/domino/kv/util/engine_util"
	"github.com/pingcap/errors"
)

// StandAloneStorage is a Storage backed by a local badger database. Column families are emulated with key
// prefixes, see engine_util.KeyWithCF.
type StandAloneStorage struct {
	conf *config.Config
	db   *badger.DB
}

func NewStandAloneStorage(conf *config.Config) *StandAloneStorage {
	return &StandAloneStorage{conf: conf}
}

func (s *StandAloneStorage) Start() error {
	db, err := engine_util.CreateDB("kv", s.conf)
	if err != nil {
		return err
	}
	s.db = db
	log.Infof("standalone storage opened at %s", s.conf.DBPath)
	return nil
}

func (s *StandAloneStorage) Stop() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return errors.Trace(err)
}

func (s *StandAloneStorage) Reader(ctx context.Context) (storage.StorageReader, error) {
	if s.db == nil {
		return nil, errors.New("standalone storage is not started")
	}
	return &standAloneReader{txn: s.db.NewTransaction(false)}, nil
}

func (s *StandAloneStorage) Write(ctx context.Context, batch []storage.Modify) error {
	if s.db == nil {
		return errors.New("standalone storage is not started")
	}
	wb := new(engine_util.WriteBatch)
	for _, m := range batch {
		switch data := m.Data.(type) {
		case storage.Put:
			wb.SetCF(data.Cf, data.Key, data.Value)
		case storage.Delete:
			wb.DeleteCF(data.Cf, data.Key)
		}
	}
	return wb.WriteToDB(s.db)
}

// standAloneReader reads from one read-only badger transaction, so all reads see the same snapshot.
type standAloneReader struct {
	txn *badger.Txn
}

func (r *standAloneReader) GetCF(cf string, key []byte) ([]byte, error) {
	return engine_util.GetCFFromTxn(r.txn, cf, key)
}

func (r *standAloneReader) IterCF(cf string) engine_util.DBIterator {
	return engine_util.NewCFIterator(cf, r.txn)
}

func (r *standAloneReader) Close() {
	r.txn.Discard()
}
