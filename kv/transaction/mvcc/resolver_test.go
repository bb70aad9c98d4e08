package mvcc

import (
	"context"
	"sync"
	"testing"

	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStatus is a StatusSource over a fixed set of records which counts queries.
type fakeStatus struct {
	mu      sync.Mutex
	records map[uint64]*TxnRecord
	calls   map[uint64]int
	err     error
}

func newFakeStatus(records ...*TxnRecord) *fakeStatus {
	fs := &fakeStatus{records: make(map[uint64]*TxnRecord), calls: make(map[uint64]int)}
	for _, r := range records {
		fs.records[r.StartID] = r
	}
	return fs
}

func (fs *fakeStatus) GetTransactionStatus(ctx context.Context, startID uint64) (*TxnRecord, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.calls[startID]++
	if fs.err != nil {
		return nil, fs.err
	}
	if rec, ok := fs.records[startID]; ok {
		return rec, nil
	}
	return &TxnRecord{StartID: startID, Status: TxnAborted}, nil
}

func (fs *fakeStatus) callsFor(startID uint64) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.calls[startID]
}

type recordingFinalizer struct {
	tasks []FinalizeTask
}

func (f *recordingFinalizer) Submit(task FinalizeTask) {
	f.tasks = append(f.tasks, task)
}

func committed(startID, commitID uint64) *TxnRecord {
	return &TxnRecord{StartID: startID, Status: TxnCommitted, CommitID: commitID}
}

func active(startID uint64) *TxnRecord {
	return &TxnRecord{StartID: startID, Status: TxnActive}
}

func put(column, value string) *Mutation {
	return &Mutation{Column: []byte(column), Kind: VersionPut, Value: []byte(value)}
}

func del(column string) *Mutation {
	return &Mutation{Column: []byte(column), Kind: VersionDelete}
}

func newTestStore() *Store {
	return NewStore(storage.NewMemStorage())
}

// mustWrite writes without conflict checking, marking every foreign writer as checked.
func mustWrite(t *testing.T, s *Store, row string, startID uint64, muts ...*Mutation) {
	ctx := context.Background()
	raw, err := s.GetRow(ctx, []byte(row))
	require.Nil(t, err)
	var checked []uint64
	if raw != nil {
		checked = raw.Writers()
	}
	require.Nil(t, s.WriteRow(ctx, []byte(row), startID, muts, checked))
}

func resolve(t *testing.T, r *Resolver, s *Store, row string, reader uint64) *Row {
	raw, err := s.GetRow(context.Background(), []byte(row))
	require.Nil(t, err)
	resolved, err := r.ResolveRow(context.Background(), raw, reader)
	require.Nil(t, err)
	return resolved
}

func TestResolveSnapshotCutoff(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("c", "x"))
	status := newFakeStatus(committed(10, 15))
	r := NewResolver(status, NewStatusCache(16))

	row := resolve(t, r, s, "r", 20)
	require.NotNil(t, row)
	assert.Equal(t, []byte("x"), row.Get([]byte("c")))

	assert.Nil(t, resolve(t, r, s, "r", 12))
	// The writer never reads its own version through the resolver.
	assert.Nil(t, resolve(t, r, s, "r", 10))
	// Readers older than the writer do not look it up.
	assert.Nil(t, resolve(t, r, s, "r", 5))
	assert.Equal(t, 1, status.callsFor(10))
}

func TestResolveFallsThroughInvisibleVersions(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("c", "v10"))
	mustWrite(t, s, "r", 20, put("c", "v20"))
	mustWrite(t, s, "r", 30, put("c", "v30"))
	mustWrite(t, s, "r", 40, put("c", "v40"))
	status := newFakeStatus(committed(10, 11), active(20), committed(30, 45), committed(40, 41))
	status.records[20] = &TxnRecord{StartID: 20, Status: TxnAborted}
	r := NewResolver(status, NewStatusCache(16))

	// 40 committed at 41, but reader 35 started before; 30 commits after 35; 20 aborted; 10 visible.
	row := resolve(t, r, s, "r", 35)
	require.NotNil(t, row)
	assert.Equal(t, []byte("v10"), row.Get([]byte("c")))

	row = resolve(t, r, s, "r", 50)
	assert.Equal(t, []byte("v40"), row.Get([]byte("c")))
}

func TestResolveActiveIsNotCached(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("c", "x"))
	status := newFakeStatus(active(10))
	cache := NewStatusCache(16)
	r := NewResolver(status, cache)

	assert.Nil(t, resolve(t, r, s, "r", 20))
	assert.Nil(t, resolve(t, r, s, "r", 20))
	assert.Equal(t, 2, status.callsFor(10))
	assert.Equal(t, 0, cache.Len())

	status.records[10] = committed(10, 15)
	assert.NotNil(t, resolve(t, r, s, "r", 20))
	assert.NotNil(t, resolve(t, r, s, "r", 21))
	assert.Equal(t, 3, status.callsFor(10))
	assert.Equal(t, 1, cache.Len())
}

func TestResolveTombstone(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("a", "1"), put("b", "2"))
	mustWrite(t, s, "r", 20, del("a"))
	status := newFakeStatus(committed(10, 11), committed(20, 21))
	r := NewResolver(status, NewStatusCache(16))

	row := resolve(t, r, s, "r", 30)
	require.NotNil(t, row)
	assert.Nil(t, row.Get([]byte("a")))
	assert.Equal(t, []byte("2"), row.Get([]byte("b")))
	assert.Equal(t, 1, row.Len())

	// Before the delete committed, the old value shows.
	row = resolve(t, r, s, "r", 15)
	assert.Equal(t, []byte("1"), row.Get([]byte("a")))

	// A row with only tombstones visible is absent.
	mustWrite(t, s, "r", 40, del("b"))
	status.records[40] = committed(40, 41)
	assert.Nil(t, resolve(t, r, s, "r", 50))
}

func TestResolveUsesStamps(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("c", "x"))
	require.Nil(t, s.CommitRow(ctx, []byte("r"), 10, 15, false))
	status := newFakeStatus()
	r := NewResolver(status, NewStatusCache(16))

	row := resolve(t, r, s, "r", 20)
	require.NotNil(t, row)
	assert.Equal(t, []byte("x"), row.Get([]byte("c")))
	assert.Equal(t, 0, status.callsFor(10))
}

func TestResolveRollForward(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, del("c"))
	mustWrite(t, s, "r", 12, put("d", "y"))
	status := newFakeStatus(committed(10, 11), active(12))
	r := NewResolver(status, NewStatusCache(16))
	f := &recordingFinalizer{}
	r.SetFinalizer(f)

	resolve(t, r, s, "r", 20)
	require.Len(t, f.tasks, 1)
	assert.Equal(t, []byte("r"), f.tasks[0].Row)
	assert.Equal(t, uint64(10), f.tasks[0].Record.StartID)
	assert.True(t, f.tasks[0].IsDelete)
}

func TestResolveErrors(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("c", "x"))
	status := newFakeStatus()
	status.err = errors.New("connection reset")
	r := NewResolver(status, NewStatusCache(16))
	raw, err := s.GetRow(context.Background(), []byte("r"))
	require.Nil(t, err)
	_, err = r.ResolveRow(context.Background(), raw, 20)
	assert.Equal(t, OutcomeIOFailure, Classify(err))

	status.err = nil
	status.records[10] = &TxnRecord{StartID: 10, Status: TxnCommitted, CommitID: 9}
	_, err = r.ResolveRow(context.Background(), raw, 20)
	assert.Equal(t, OutcomeInvalidState, Classify(err))
}

func TestCheckConflict(t *testing.T) {
	s := newTestStore()
	mustWrite(t, s, "r", 10, put("c", "x"))
	mustWrite(t, s, "r", 20, put("c", "y"))
	status := newFakeStatus(committed(10, 15), &TxnRecord{StartID: 20, Status: TxnAborted})
	r := NewResolver(status, NewStatusCache(16))
	raw, err := s.GetRow(context.Background(), []byte("r"))
	require.Nil(t, err)

	checked, err := r.CheckConflict(context.Background(), raw, 30)
	require.Nil(t, err)
	assert.Equal(t, []uint64{20, 10}, checked)

	// 10 committed at 15, after 12 started.
	_, err = r.CheckConflict(context.Background(), raw, 12)
	conflict, ok := errors.Cause(err).(*ErrWriteConflict)
	require.True(t, ok)
	assert.Equal(t, uint64(10), conflict.ConflictID)

	mustWrite(t, s, "r", 25, put("c", "z"))
	status.records[25] = active(25)
	raw, _ = s.GetRow(context.Background(), []byte("r"))
	_, err = r.CheckConflict(context.Background(), raw, 30)
	assert.Equal(t, OutcomeConflict, Classify(err))
}
