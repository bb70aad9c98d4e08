package storage

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/Connor1996/badger/y"
	"github.com/google/btree"
	"github.com/pingcap-incubator/domino/kv/util/engine_util"
)

const memTreeDegree = 32

// MemStorage is a Storage backed by memory. Data is not written to disk. It is intended for testing and for
// running the coordinator without a data directory.
type MemStorage struct {
	mu  sync.Mutex
	cfs map[string]*btree.BTree
}

func NewMemStorage() *MemStorage {
	s := &MemStorage{cfs: make(map[string]*btree.BTree, len(engine_util.CFs))}
	for _, cf := range engine_util.CFs {
		s.cfs[cf] = btree.New(memTreeDegree)
	}
	return s
}

func (s *MemStorage) Start() error {
	return nil
}

func (s *MemStorage) Stop() error {
	return nil
}

// Reader returns a snapshot of every CF. Writes made after Reader returns are not seen by it.
func (s *MemStorage) Reader(ctx context.Context) (StorageReader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(map[string]*btree.BTree, len(s.cfs))
	for cf, tree := range s.cfs {
		snap[cf] = tree.Clone()
	}
	return &memReader{cfs: snap}, nil
}

func (s *MemStorage) Write(ctx context.Context, batch []Modify) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range batch {
		if _, ok := s.cfs[m.Cf()]; !ok {
			return fmt.Errorf("mem-storage: bad CF %s", m.Cf())
		}
	}
	for _, m := range batch {
		tree := s.cfs[m.Cf()]
		switch data := m.Data.(type) {
		case Put:
			tree.ReplaceOrInsert(memItem{key: data.Key, value: data.Value})
		case Delete:
			tree.Delete(memItem{key: data.Key})
		}
	}
	return nil
}

// Get reads a key directly, bypassing snapshots. Returns nil when missing.
func (s *MemStorage) Get(cf string, key []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	tree, ok := s.cfs[cf]
	if !ok {
		return nil
	}
	result := tree.Get(memItem{key: key})
	if result == nil {
		return nil
	}
	return result.(memItem).value
}

func (s *MemStorage) Set(cf string, key []byte, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tree, ok := s.cfs[cf]; ok {
		tree.ReplaceOrInsert(memItem{key: key, value: value})
	}
}

func (s *MemStorage) Len(cf string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tree, ok := s.cfs[cf]; ok {
		return tree.Len()
	}
	return -1
}

// memReader is a StorageReader over cloned trees, so it needs no locking.
type memReader struct {
	cfs map[string]*btree.BTree
}

func (mr *memReader) GetCF(cf string, key []byte) ([]byte, error) {
	tree, ok := mr.cfs[cf]
	if !ok {
		return nil, fmt.Errorf("mem-storage: bad CF %s", cf)
	}
	result := tree.Get(memItem{key: key})
	if result == nil {
		return nil, nil
	}
	return result.(memItem).value, nil
}

func (mr *memReader) IterCF(cf string) engine_util.DBIterator {
	tree, ok := mr.cfs[cf]
	if !ok {
		tree = btree.New(2)
	}
	it := &memIter{data: tree}
	if min := tree.Min(); min != nil {
		it.item = min.(memItem)
	}
	return it
}

func (mr *memReader) Close() {}

type memIter struct {
	data *btree.BTree
	item memItem
}

func (it *memIter) Item() engine_util.DBItem {
	return it.item
}

func (it *memIter) Valid() bool {
	return it.item.key != nil
}

func (it *memIter) Next() {
	first := true
	oldItem := it.item
	it.item = memItem{}
	it.data.AscendGreaterOrEqual(oldItem, func(item btree.Item) bool {
		// The first item is oldItem itself.
		if first {
			first = false
			return true
		}
		it.item = item.(memItem)
		return false
	})
}

func (it *memIter) Seek(key []byte) {
	it.item = memItem{}
	it.data.AscendGreaterOrEqual(memItem{key: key}, func(item btree.Item) bool {
		it.item = item.(memItem)
		return false
	})
}

func (it *memIter) Close() {}

type memItem struct {
	key   []byte
	value []byte
}

func (it memItem) Key() []byte {
	return it.key
}

func (it memItem) KeyCopy(dst []byte) []byte {
	return y.SafeCopy(dst, it.key)
}

func (it memItem) Value() ([]byte, error) {
	return it.value, nil
}

func (it memItem) ValueSize() int {
	return len(it.value)
}

func (it memItem) ValueCopy(dst []byte) ([]byte, error) {
	return y.SafeCopy(dst, it.value), nil
}

func (it memItem) Less(than btree.Item) bool {
	return bytes.Compare(it.key, than.(memItem).key) < 0
}
