package server

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/pingcap-incubator/domino/kv/coordinator"
	"github.com/pingcap-incubator/domino/kv/oracle"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap-incubator/domino/proto/pkg/dominopb"
	"github.com/pingcap/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// RemoteStore is the client side of Server. It is a Coordinator, a DataStore and an Oracle, so a client.Client can
// run against a remote node the same way it runs against a local one. Protocol errors come back with their types.
type RemoteStore struct {
	conn   *grpc.ClientConn
	client dominopb.DominoClient
}

var (
	_ coordinator.Coordinator = new(RemoteStore)
	_ mvcc.DataStore          = new(RemoteStore)
	_ oracle.Oracle           = new(RemoteStore)
)

// Dial connects to the Server at addr.
func Dial(addr string, opts ...grpc.DialOption) (*RemoteStore, error) {
	opts = append([]grpc.DialOption{
		grpc.WithInsecure(),
		grpc.WithInitialWindowSize(grpcInitialWindowSize),
		grpc.WithInitialConnWindowSize(grpcInitialConnWindowSize),
		grpc.WithUnaryInterceptor(grpc_prometheus.UnaryClientInterceptor),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                3 * time.Second,
			Timeout:             60 * time.Second,
			PermitWithoutStream: true,
		}),
	}, opts...)
	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, errors.Annotatef(err, "dial %s", addr)
	}
	return NewRemoteStore(conn), nil
}

func NewRemoteStore(conn *grpc.ClientConn) *RemoteStore {
	return &RemoteStore{conn: conn, client: dominopb.NewDominoClient(conn)}
}

func (r *RemoteStore) Close() error {
	return r.conn.Close()
}

func (r *RemoteStore) BeginTransaction(ctx context.Context, startID uint64) error {
	resp, err := r.client.BeginTransaction(ctx, &dominopb.BeginTransactionRequest{StartId: startID})
	if err != nil {
		return errors.Trace(err)
	}
	return errorFromPb(resp.Error)
}

func (r *RemoteStore) CommitTransaction(ctx context.Context, startID uint64) (uint64, error) {
	resp, err := r.client.CommitTransaction(ctx, &dominopb.CommitTransactionRequest{StartId: startID})
	if err != nil {
		return 0, errors.Trace(err)
	}
	if err = errorFromPb(resp.Error); err != nil {
		return 0, err
	}
	return resp.CommitId, nil
}

func (r *RemoteStore) AbortTransaction(ctx context.Context, startID uint64) error {
	resp, err := r.client.AbortTransaction(ctx, &dominopb.AbortTransactionRequest{StartId: startID})
	if err != nil {
		return errors.Trace(err)
	}
	return errorFromPb(resp.Error)
}

func (r *RemoteStore) GetTransactionStatus(ctx context.Context, startID uint64) (*mvcc.TxnRecord, error) {
	resp, err := r.client.GetTransactionStatus(ctx, &dominopb.GetTransactionStatusRequest{StartId: startID})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = errorFromPb(resp.Error); err != nil {
		return nil, err
	}
	return recordFromPb(resp.Record), nil
}

func (r *RemoteStore) Heartbeat(ctx context.Context, startID uint64) (*mvcc.TxnRecord, error) {
	resp, err := r.client.Heartbeat(ctx, &dominopb.HeartbeatRequest{StartId: startID})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = errorFromPb(resp.Error); err != nil {
		return nil, err
	}
	return recordFromPb(resp.Record), nil
}

func (r *RemoteStore) CommitRow(ctx context.Context, row []byte, startID, commitID uint64, isDelete bool) error {
	resp, err := r.client.CommitRow(ctx, &dominopb.CommitRowRequest{Row: row, StartId: startID, CommitId: commitID, IsDelete: isDelete})
	if err != nil {
		return errors.Trace(err)
	}
	return errorFromPb(resp.Error)
}

func (r *RemoteStore) RollbackRow(ctx context.Context, row []byte, startID uint64) error {
	resp, err := r.client.RollbackRow(ctx, &dominopb.RollbackRowRequest{Row: row, StartId: startID})
	if err != nil {
		return errors.Trace(err)
	}
	return errorFromPb(resp.Error)
}

func (r *RemoteStore) GetRow(ctx context.Context, row []byte) (*mvcc.RawRow, error) {
	resp, err := r.client.GetRow(ctx, &dominopb.GetRowRequest{Row: row})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = errorFromPb(resp.Error); err != nil {
		return nil, err
	}
	return rawRowFromPb(resp.Row), nil
}

func (r *RemoteStore) ScanRows(ctx context.Context, start, end []byte, limit int) ([]*mvcc.RawRow, error) {
	if limit <= 0 {
		return nil, nil
	}
	resp, err := r.client.ScanRows(ctx, &dominopb.ScanRowsRequest{Start: start, End: end, Limit: uint32(limit)})
	if err != nil {
		return nil, errors.Trace(err)
	}
	if err = errorFromPb(resp.Error); err != nil {
		return nil, err
	}
	rows := make([]*mvcc.RawRow, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		rows = append(rows, rawRowFromPb(row))
	}
	return rows, nil
}

func (r *RemoteStore) WriteRow(ctx context.Context, row []byte, startID uint64, mutations []*mvcc.Mutation, checked []uint64) error {
	resp, err := r.client.WriteRow(ctx, &dominopb.WriteRowRequest{
		Row:       row,
		StartId:   startID,
		Mutations: mutationsToPb(mutations),
		Checked:   checked,
	})
	if err != nil {
		return errors.Trace(err)
	}
	return errorFromPb(resp.Error)
}

func (r *RemoteStore) NextID(ctx context.Context) (uint64, error) {
	resp, err := r.client.NextID(ctx, &dominopb.NextIDRequest{})
	if err != nil {
		return 0, errors.Trace(err)
	}
	if err = errorFromPb(resp.Error); err != nil {
		return 0, err
	}
	return resp.Id, nil
}
