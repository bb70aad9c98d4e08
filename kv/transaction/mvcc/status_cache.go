package mvcc

import "sync"

// StatusCache remembers terminal transaction records so that readers do not ask the coordinator twice about the same
// finished writer. Terminal records never change, so entries never need invalidation. It keeps two generations of at
// most size entries each; when the new generation fills up, it replaces the old one.
type StatusCache struct {
	mu     sync.Mutex
	size   int
	oldMap map[uint64]*TxnRecord
	newMap map[uint64]*TxnRecord
}

func NewStatusCache(size int) *StatusCache {
	if size <= 0 {
		size = 1
	}
	return &StatusCache{
		size:   size,
		oldMap: make(map[uint64]*TxnRecord),
		newMap: make(map[uint64]*TxnRecord, size),
	}
}

func (sc *StatusCache) Get(startID uint64) (*TxnRecord, bool) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if rec, ok := sc.newMap[startID]; ok {
		return rec, true
	}
	rec, ok := sc.oldMap[startID]
	return rec, ok
}

// Put caches rec if it is terminal. ACTIVE records are ignored.
func (sc *StatusCache) Put(rec *TxnRecord) {
	if rec == nil || !rec.Status.IsTerminal() {
		return
	}
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if _, ok := sc.newMap[rec.StartID]; ok {
		return
	}
	if _, ok := sc.oldMap[rec.StartID]; ok {
		return
	}
	sc.newMap[rec.StartID] = rec
	if len(sc.newMap) >= sc.size {
		sc.oldMap = sc.newMap
		sc.newMap = make(map[uint64]*TxnRecord, sc.size)
	}
}

func (sc *StatusCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return len(sc.oldMap) + len(sc.newMap)
}
