package server

import (
	"context"
	"time"

	"github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/ngaut/log"
	"github.com/pingcap-incubator/domino/kv/coordinator"
	"github.com/pingcap-incubator/domino/kv/oracle"
	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap-incubator/domino/proto/pkg/dominopb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

const (
	grpcInitialWindowSize     = 1 << 30
	grpcInitialConnWindowSize = 1 << 30
	grpcMaxRecvMsgSize        = 10 * 1024 * 1024
)

var _ dominopb.DominoServer = new(Server)

// Server exposes the coordinator, the data store and the timestamp oracle of one node to remote clients.
type Server struct {
	coord  coordinator.Coordinator
	data   mvcc.DataStore
	oracle oracle.Oracle
}

func NewServer(coord coordinator.Coordinator, data mvcc.DataStore, o oracle.Oracle) *Server {
	return &Server{coord: coord, data: data, oracle: o}
}

// NewGRPCServer creates a gRPC server with s registered and request metrics enabled.
func NewGRPCServer(s *Server) *grpc.Server {
	var alivePolicy = keepalive.EnforcementPolicy{
		MinTime:             2 * time.Second, // If a client pings more than once every 2 seconds, terminate the connection
		PermitWithoutStream: true,            // Allow pings even when there are no active streams
	}
	grpcServer := grpc.NewServer(
		grpc.KeepaliveEnforcementPolicy(alivePolicy),
		grpc.InitialWindowSize(grpcInitialWindowSize),
		grpc.InitialConnWindowSize(grpcInitialConnWindowSize),
		grpc.MaxRecvMsgSize(grpcMaxRecvMsgSize),
		grpc.UnaryInterceptor(grpc_prometheus.UnaryServerInterceptor),
	)
	dominopb.RegisterDominoServer(grpcServer, s)
	grpc_prometheus.Register(grpcServer)
	return grpcServer
}

// toPb converts the error of a handled request. Failures outside the protocol are logged here, the client only sees
// their message.
func toPb(method string, err error) *dominopb.Error {
	if mvcc.Classify(err) == mvcc.OutcomeIOFailure {
		log.Warnf("%s failed: %v", method, err)
	}
	return errorToPb(err)
}

// The below functions are Server's gRPC API (implements DominoServer).

func (s *Server) BeginTransaction(ctx context.Context, req *dominopb.BeginTransactionRequest) (*dominopb.BeginTransactionResponse, error) {
	err := s.coord.BeginTransaction(ctx, req.StartId)
	return &dominopb.BeginTransactionResponse{Error: toPb("BeginTransaction", err)}, nil
}

func (s *Server) CommitTransaction(ctx context.Context, req *dominopb.CommitTransactionRequest) (*dominopb.CommitTransactionResponse, error) {
	commitID, err := s.coord.CommitTransaction(ctx, req.StartId)
	return &dominopb.CommitTransactionResponse{Error: toPb("CommitTransaction", err), CommitId: commitID}, nil
}

func (s *Server) AbortTransaction(ctx context.Context, req *dominopb.AbortTransactionRequest) (*dominopb.AbortTransactionResponse, error) {
	err := s.coord.AbortTransaction(ctx, req.StartId)
	return &dominopb.AbortTransactionResponse{Error: toPb("AbortTransaction", err)}, nil
}

func (s *Server) GetTransactionStatus(ctx context.Context, req *dominopb.GetTransactionStatusRequest) (*dominopb.GetTransactionStatusResponse, error) {
	rec, err := s.coord.GetTransactionStatus(ctx, req.StartId)
	return &dominopb.GetTransactionStatusResponse{Error: toPb("GetTransactionStatus", err), Record: recordToPb(rec)}, nil
}

func (s *Server) Heartbeat(ctx context.Context, req *dominopb.HeartbeatRequest) (*dominopb.HeartbeatResponse, error) {
	rec, err := s.coord.Heartbeat(ctx, req.StartId)
	return &dominopb.HeartbeatResponse{Error: toPb("Heartbeat", err), Record: recordToPb(rec)}, nil
}

func (s *Server) CommitRow(ctx context.Context, req *dominopb.CommitRowRequest) (*dominopb.CommitRowResponse, error) {
	err := s.coord.CommitRow(ctx, req.Row, req.StartId, req.CommitId, req.IsDelete)
	return &dominopb.CommitRowResponse{Error: toPb("CommitRow", err)}, nil
}

func (s *Server) RollbackRow(ctx context.Context, req *dominopb.RollbackRowRequest) (*dominopb.RollbackRowResponse, error) {
	err := s.coord.RollbackRow(ctx, req.Row, req.StartId)
	return &dominopb.RollbackRowResponse{Error: toPb("RollbackRow", err)}, nil
}

func (s *Server) GetRow(ctx context.Context, req *dominopb.GetRowRequest) (*dominopb.GetRowResponse, error) {
	raw, err := s.data.GetRow(ctx, req.Row)
	return &dominopb.GetRowResponse{Error: toPb("GetRow", err), Row: rawRowToPb(raw)}, nil
}

func (s *Server) ScanRows(ctx context.Context, req *dominopb.ScanRowsRequest) (*dominopb.ScanRowsResponse, error) {
	resp := new(dominopb.ScanRowsResponse)
	rows, err := s.data.ScanRows(ctx, req.Start, req.End, int(req.Limit))
	if err != nil {
		resp.Error = toPb("ScanRows", err)
		return resp, nil
	}
	resp.Rows = make([]*dominopb.RawRow, 0, len(rows))
	for _, raw := range rows {
		resp.Rows = append(resp.Rows, rawRowToPb(raw))
	}
	return resp, nil
}

func (s *Server) WriteRow(ctx context.Context, req *dominopb.WriteRowRequest) (*dominopb.WriteRowResponse, error) {
	err := s.data.WriteRow(ctx, req.Row, req.StartId, mutationsFromPb(req.Mutations), req.Checked)
	return &dominopb.WriteRowResponse{Error: toPb("WriteRow", err)}, nil
}

func (s *Server) NextID(ctx context.Context, req *dominopb.NextIDRequest) (*dominopb.NextIDResponse, error) {
	id, err := s.oracle.NextID(ctx)
	return &dominopb.NextIDResponse{Error: toPb("NextID", err), Id: id}, nil
}
