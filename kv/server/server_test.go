package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/pingcap-incubator/domino/kv/client"
	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap-incubator/domino/kv/coordinator"
	"github.com/pingcap-incubator/domino/kv/oracle"
	"github.com/pingcap-incubator/domino/kv/storage"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"
)

type testNode struct {
	grpcServer *grpc.Server
	remote     *RemoteStore
	coord      *coordinator.Local
	store      *mvcc.Store
	oracle     *oracle.Sequence
}

func newTestNode(t *testing.T, conf *config.Config) *testNode {
	s := storage.NewMemStorage()
	require.Nil(t, s.Start())
	store := mvcc.NewStore(s)
	seq := oracle.NewSequence(0)
	coord := coordinator.NewLocal(s, store, seq, conf)

	lis := bufconn.Listen(1 << 20)
	grpcServer := NewGRPCServer(NewServer(coord, store, seq))
	go grpcServer.Serve(lis)
	remote, err := Dial("bufnet", grpc.WithDialer(func(string, time.Duration) (net.Conn, error) {
		return lis.Dial()
	}))
	require.Nil(t, err)
	return &testNode{grpcServer: grpcServer, remote: remote, coord: coord, store: store, oracle: seq}
}

func (n *testNode) stop() {
	n.remote.Close()
	n.grpcServer.Stop()
}

func TestRemoteCoordinator(t *testing.T) {
	n := newTestNode(t, config.NewTestConfig())
	defer n.stop()
	ctx := context.Background()

	startID, err := n.remote.NextID(ctx)
	require.Nil(t, err)
	require.Nil(t, n.remote.BeginTransaction(ctx, startID))
	rec, err := n.remote.Heartbeat(ctx, startID)
	require.Nil(t, err)
	assert.Equal(t, mvcc.TxnActive, rec.Status)
	assert.Equal(t, startID, rec.StartID)

	commitID, err := n.remote.CommitTransaction(ctx, startID)
	require.Nil(t, err)
	assert.True(t, commitID > startID)
	rec, err = n.remote.GetTransactionStatus(ctx, startID)
	require.Nil(t, err)
	assert.Equal(t, &mvcc.TxnRecord{StartID: startID, Status: mvcc.TxnCommitted, CommitID: commitID, LastHeartbeat: rec.LastHeartbeat}, rec)

	// Typed errors survive the round trip.
	other, err := n.remote.NextID(ctx)
	require.Nil(t, err)
	require.Nil(t, n.remote.AbortTransaction(ctx, other))
	_, err = n.remote.CommitTransaction(ctx, other)
	aborted, ok := errors.Cause(err).(*mvcc.ErrTxnAborted)
	require.True(t, ok, "%v", err)
	assert.Equal(t, other, aborted.StartID)

	_, err = n.remote.Heartbeat(ctx, 12345)
	assert.Equal(t, mvcc.OutcomeInvalidState, mvcc.Classify(err))
}

func TestRemoteDataStore(t *testing.T) {
	n := newTestNode(t, config.NewTestConfig())
	defer n.stop()
	ctx := context.Background()

	raw, err := n.remote.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	assert.Nil(t, raw)

	mutations := []*mvcc.Mutation{
		{Column: []byte("a"), Kind: mvcc.VersionPut, Value: []byte("1")},
		{Column: []byte("b"), Kind: mvcc.VersionDelete},
	}
	require.Nil(t, n.remote.WriteRow(ctx, []byte("r"), 10, mutations, nil))
	err = n.remote.WriteRow(ctx, []byte("r"), 20, mutations, nil)
	assert.Equal(t, mvcc.ErrRowChanged, errors.Cause(err))

	require.Nil(t, n.coord.BeginTransaction(ctx, 10))
	n.oracle.Set(14)
	commitID, err := n.remote.CommitTransaction(ctx, 10)
	require.Nil(t, err)
	require.Nil(t, n.remote.CommitRow(ctx, []byte("r"), 10, commitID, false))

	raw, err = n.remote.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, []byte("r"), raw.Key)
	require.Len(t, raw.Cells, 2)
	assert.Equal(t, []byte("a"), raw.Cells[0].Column)
	assert.Equal(t, []byte("1"), raw.Cells[0].Versions[0].Value)
	assert.True(t, raw.Cells[1].Versions[0].IsTombstone())
	assert.Equal(t, []uint64{10}, raw.Writers())
	assert.Equal(t, &mvcc.Stamp{Kind: mvcc.StampCommit, CommitID: commitID}, raw.Stamp(10))

	err = n.remote.WriteRow(ctx, []byte("r"), 12, mutations, nil)
	conflict, ok := errors.Cause(err).(*mvcc.ErrWriteConflict)
	require.True(t, ok, "%v", err)
	assert.Equal(t, uint64(10), conflict.ConflictID)
	assert.Equal(t, []byte("r"), conflict.Row)

	require.Nil(t, n.remote.WriteRow(ctx, []byte("s"), 30, mutations, nil))
	rows, err := n.remote.ScanRows(ctx, nil, nil, 10)
	require.Nil(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []byte("r"), rows[0].Key)
	assert.Equal(t, []byte("s"), rows[1].Key)
	rows, err = n.remote.ScanRows(ctx, []byte("s"), nil, 0)
	require.Nil(t, err)
	assert.Len(t, rows, 0)
}

func TestClientOverGRPC(t *testing.T) {
	conf := config.NewTestConfig()
	n := newTestNode(t, conf)
	defer n.stop()
	c := client.NewClient(n.remote, n.remote, n.remote, conf)
	defer c.Close()
	ctx := context.Background()

	a, err := c.Begin(ctx)
	require.Nil(t, err)
	require.Nil(t, a.Put(ctx, []byte("r"), []byte("c"), []byte("x")))
	early, err := c.Begin(ctx)
	require.Nil(t, err)

	// a is still running.
	err = early.Put(ctx, []byte("r"), []byte("c"), []byte("y"))
	_, ok := errors.Cause(err).(*mvcc.ErrWriteConflict)
	require.True(t, ok, "%v", err)

	require.Nil(t, a.Commit(ctx))
	late, err := c.Begin(ctx)
	require.Nil(t, err)

	val, err := late.Get(ctx, []byte("r"), []byte("c"))
	require.Nil(t, err)
	assert.Equal(t, []byte("x"), val)
	val, err = early.Get(ctx, []byte("r"), []byte("c"))
	require.Nil(t, err)
	assert.Nil(t, val)

	scanner, err := late.Scan(ctx, nil, nil)
	require.Nil(t, err)
	rows, err := scanner.NextN(ctx, 10)
	require.Nil(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []byte("x"), rows[0].Get([]byte("c")))

	// An empty value is a present cell on both sides of the wire.
	require.Nil(t, late.Put(ctx, []byte("empty"), []byte("c"), []byte{}))
	require.Nil(t, late.Commit(ctx))
	require.Nil(t, early.Rollback(ctx))
	c.WaitFinalized()

	raw, err := n.remote.GetRow(ctx, []byte("empty"))
	require.Nil(t, err)
	require.Len(t, raw.Cells, 1)
	assert.NotNil(t, raw.Cells[0].Versions[0].Value)
	assert.Len(t, raw.Cells[0].Versions[0].Value, 0)

	reader, err := c.Begin(ctx)
	require.Nil(t, err)
	val, err = reader.Get(ctx, []byte("empty"), []byte("c"))
	require.Nil(t, err)
	assert.NotNil(t, val)
	assert.Len(t, val, 0)
	require.Nil(t, reader.Commit(ctx))
	c.WaitFinalized()
	raw, err = n.store.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	require.NotNil(t, raw.Stamp(a.StartID()))
	assert.Equal(t, a.CommitID(), raw.Stamp(a.StartID()).CommitID)
}
