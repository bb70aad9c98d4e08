package client

import (
	"context"

	"github.com/pingcap-incubator/domino/kv/config"
	"github.com/pingcap-incubator/domino/kv/coordinator"
	"github.com/pingcap-incubator/domino/kv/oracle"
	"github.com/pingcap-incubator/domino/kv/transaction/finalizer"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap/errors"
)

// Client starts snapshot isolation transactions. It owns the status cache shared by its transactions and the
// workers finalizing their rows. A Client is safe for concurrent use.
type Client struct {
	coord     coordinator.Coordinator
	data      mvcc.DataStore
	oracle    oracle.Oracle
	resolver  *mvcc.Resolver
	finalizer *finalizer.Finalizer
	conf      *config.Config
}

// NewClient creates a client. coord and data may be the local coordinator and store, or a remote service client
// implementing both.
func NewClient(coord coordinator.Coordinator, data mvcc.DataStore, o oracle.Oracle, conf *config.Config) *Client {
	f := finalizer.New(coord, conf.FinalizerWorkers)
	f.Start()
	resolver := mvcc.NewResolver(coord, mvcc.NewStatusCache(conf.StatusCacheSize))
	if conf.RollForward {
		resolver.SetFinalizer(f)
	}
	return &Client{
		coord:     coord,
		data:      data,
		oracle:    o,
		resolver:  resolver,
		finalizer: f,
		conf:      conf,
	}
}

// Begin starts a transaction. Its start id is its snapshot.
func (c *Client) Begin(ctx context.Context) (*Txn, error) {
	startID, err := c.oracle.NextID(ctx)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = c.coord.BeginTransaction(ctx, startID); err != nil {
		return nil, err
	}
	txn := newTxn(c, startID)
	go txn.heartbeatLoop(c.conf.HeartbeatInterval.Duration)
	return txn, nil
}

// WaitFinalized blocks until every row finalization queued so far is done.
func (c *Client) WaitFinalized() {
	c.finalizer.Wait()
}

// Close stops the background finalizers after the queued work is done.
func (c *Client) Close() {
	c.finalizer.Stop()
}
