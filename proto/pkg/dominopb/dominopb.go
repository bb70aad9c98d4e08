// Package dominopb holds the wire messages and the gRPC service of proto/dominopb.proto.
package dominopb

import (
	"context"

	"github.com/golang/protobuf/proto"
	"google.golang.org/grpc"
)

// Reference imports to suppress errors if they are not otherwise used.
var _ = proto.Marshal

type ErrorKind int32

const (
	ErrorKind_Other            ErrorKind = 0
	ErrorKind_TxnAborted       ErrorKind = 1
	ErrorKind_TxnOutOfDate     ErrorKind = 2
	ErrorKind_InvalidRowStatus ErrorKind = 3
	ErrorKind_WriteConflict    ErrorKind = 4
	ErrorKind_RowChanged       ErrorKind = 5
	ErrorKind_TxnDisabled      ErrorKind = 6
)

var ErrorKind_name = map[int32]string{
	0: "Other",
	1: "TxnAborted",
	2: "TxnOutOfDate",
	3: "InvalidRowStatus",
	4: "WriteConflict",
	5: "RowChanged",
	6: "TxnDisabled",
}

var ErrorKind_value = map[string]int32{
	"Other":            0,
	"TxnAborted":       1,
	"TxnOutOfDate":     2,
	"InvalidRowStatus": 3,
	"WriteConflict":    4,
	"RowChanged":       5,
	"TxnDisabled":      6,
}

func (x ErrorKind) String() string {
	return proto.EnumName(ErrorKind_name, int32(x))
}

type TxnRecord struct {
	StartId       uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
	Status        int32  `protobuf:"varint,2,opt,name=status,proto3" json:"status,omitempty"`
	CommitId      uint64 `protobuf:"varint,3,opt,name=commit_id,json=commitId,proto3" json:"commit_id,omitempty"`
	LastHeartbeat int64  `protobuf:"varint,4,opt,name=last_heartbeat,json=lastHeartbeat,proto3" json:"last_heartbeat,omitempty"`
}

func (m *TxnRecord) Reset()         { *m = TxnRecord{} }
func (m *TxnRecord) String() string { return proto.CompactTextString(m) }
func (*TxnRecord) ProtoMessage()    {}

func (m *TxnRecord) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

func (m *TxnRecord) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *TxnRecord) GetCommitId() uint64 {
	if m != nil {
		return m.CommitId
	}
	return 0
}

func (m *TxnRecord) GetLastHeartbeat() int64 {
	if m != nil {
		return m.LastHeartbeat
	}
	return 0
}

type Version struct {
	StartId uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
	Kind    int32  `protobuf:"varint,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Value   []byte `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Version) Reset()         { *m = Version{} }
func (m *Version) String() string { return proto.CompactTextString(m) }
func (*Version) ProtoMessage()    {}

func (m *Version) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

func (m *Version) GetKind() int32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

func (m *Version) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type RawCell struct {
	Column   []byte     `protobuf:"bytes,1,opt,name=column,proto3" json:"column,omitempty"`
	Versions []*Version `protobuf:"bytes,2,rep,name=versions,proto3" json:"versions,omitempty"`
}

func (m *RawCell) Reset()         { *m = RawCell{} }
func (m *RawCell) String() string { return proto.CompactTextString(m) }
func (*RawCell) ProtoMessage()    {}

func (m *RawCell) GetColumn() []byte {
	if m != nil {
		return m.Column
	}
	return nil
}

func (m *RawCell) GetVersions() []*Version {
	if m != nil {
		return m.Versions
	}
	return nil
}

type Stamp struct {
	StartId  uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
	Kind     int32  `protobuf:"varint,2,opt,name=kind,proto3" json:"kind,omitempty"`
	CommitId uint64 `protobuf:"varint,3,opt,name=commit_id,json=commitId,proto3" json:"commit_id,omitempty"`
	IsDelete bool   `protobuf:"varint,4,opt,name=is_delete,json=isDelete,proto3" json:"is_delete,omitempty"`
}

func (m *Stamp) Reset()         { *m = Stamp{} }
func (m *Stamp) String() string { return proto.CompactTextString(m) }
func (*Stamp) ProtoMessage()    {}

func (m *Stamp) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

func (m *Stamp) GetKind() int32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

func (m *Stamp) GetCommitId() uint64 {
	if m != nil {
		return m.CommitId
	}
	return 0
}

func (m *Stamp) GetIsDelete() bool {
	if m != nil {
		return m.IsDelete
	}
	return false
}

type RawRow struct {
	Key    []byte     `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Cells  []*RawCell `protobuf:"bytes,2,rep,name=cells,proto3" json:"cells,omitempty"`
	Stamps []*Stamp   `protobuf:"bytes,3,rep,name=stamps,proto3" json:"stamps,omitempty"`
}

func (m *RawRow) Reset()         { *m = RawRow{} }
func (m *RawRow) String() string { return proto.CompactTextString(m) }
func (*RawRow) ProtoMessage()    {}

func (m *RawRow) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *RawRow) GetCells() []*RawCell {
	if m != nil {
		return m.Cells
	}
	return nil
}

func (m *RawRow) GetStamps() []*Stamp {
	if m != nil {
		return m.Stamps
	}
	return nil
}

type Mutation struct {
	Column []byte `protobuf:"bytes,1,opt,name=column,proto3" json:"column,omitempty"`
	Kind   int32  `protobuf:"varint,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Value  []byte `protobuf:"bytes,3,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Mutation) Reset()         { *m = Mutation{} }
func (m *Mutation) String() string { return proto.CompactTextString(m) }
func (*Mutation) ProtoMessage()    {}

func (m *Mutation) GetColumn() []byte {
	if m != nil {
		return m.Column
	}
	return nil
}

func (m *Mutation) GetKind() int32 {
	if m != nil {
		return m.Kind
	}
	return 0
}

func (m *Mutation) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}

type Error struct {
	Kind       ErrorKind `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Message    string    `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	StartId    uint64    `protobuf:"varint,3,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
	ConflictId uint64    `protobuf:"varint,4,opt,name=conflict_id,json=conflictId,proto3" json:"conflict_id,omitempty"`
	Key        []byte    `protobuf:"bytes,5,opt,name=key,proto3" json:"key,omitempty"`
	Status     int32     `protobuf:"varint,6,opt,name=status,proto3" json:"status,omitempty"`
	Cause      *Error    `protobuf:"bytes,7,opt,name=cause,proto3" json:"cause,omitempty"`
}

func (m *Error) Reset()         { *m = Error{} }
func (m *Error) String() string { return proto.CompactTextString(m) }
func (*Error) ProtoMessage()    {}

func (m *Error) GetKind() ErrorKind {
	if m != nil {
		return m.Kind
	}
	return ErrorKind_Other
}

func (m *Error) GetMessage() string {
	if m != nil {
		return m.Message
	}
	return ""
}

func (m *Error) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

func (m *Error) GetConflictId() uint64 {
	if m != nil {
		return m.ConflictId
	}
	return 0
}

func (m *Error) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *Error) GetStatus() int32 {
	if m != nil {
		return m.Status
	}
	return 0
}

func (m *Error) GetCause() *Error {
	if m != nil {
		return m.Cause
	}
	return nil
}

type BeginTransactionRequest struct {
	StartId uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
}

func (m *BeginTransactionRequest) Reset()         { *m = BeginTransactionRequest{} }
func (m *BeginTransactionRequest) String() string { return proto.CompactTextString(m) }
func (*BeginTransactionRequest) ProtoMessage()    {}

func (m *BeginTransactionRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

type BeginTransactionResponse struct {
	Error *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *BeginTransactionResponse) Reset()         { *m = BeginTransactionResponse{} }
func (m *BeginTransactionResponse) String() string { return proto.CompactTextString(m) }
func (*BeginTransactionResponse) ProtoMessage()    {}

func (m *BeginTransactionResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

type CommitTransactionRequest struct {
	StartId uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
}

func (m *CommitTransactionRequest) Reset()         { *m = CommitTransactionRequest{} }
func (m *CommitTransactionRequest) String() string { return proto.CompactTextString(m) }
func (*CommitTransactionRequest) ProtoMessage()    {}

func (m *CommitTransactionRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

type CommitTransactionResponse struct {
	Error    *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	CommitId uint64 `protobuf:"varint,2,opt,name=commit_id,json=commitId,proto3" json:"commit_id,omitempty"`
}

func (m *CommitTransactionResponse) Reset()         { *m = CommitTransactionResponse{} }
func (m *CommitTransactionResponse) String() string { return proto.CompactTextString(m) }
func (*CommitTransactionResponse) ProtoMessage()    {}

func (m *CommitTransactionResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *CommitTransactionResponse) GetCommitId() uint64 {
	if m != nil {
		return m.CommitId
	}
	return 0
}

type AbortTransactionRequest struct {
	StartId uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
}

func (m *AbortTransactionRequest) Reset()         { *m = AbortTransactionRequest{} }
func (m *AbortTransactionRequest) String() string { return proto.CompactTextString(m) }
func (*AbortTransactionRequest) ProtoMessage()    {}

func (m *AbortTransactionRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

type AbortTransactionResponse struct {
	Error *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *AbortTransactionResponse) Reset()         { *m = AbortTransactionResponse{} }
func (m *AbortTransactionResponse) String() string { return proto.CompactTextString(m) }
func (*AbortTransactionResponse) ProtoMessage()    {}

func (m *AbortTransactionResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

type GetTransactionStatusRequest struct {
	StartId uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
}

func (m *GetTransactionStatusRequest) Reset()         { *m = GetTransactionStatusRequest{} }
func (m *GetTransactionStatusRequest) String() string { return proto.CompactTextString(m) }
func (*GetTransactionStatusRequest) ProtoMessage()    {}

func (m *GetTransactionStatusRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

type GetTransactionStatusResponse struct {
	Error  *Error     `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Record *TxnRecord `protobuf:"bytes,2,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *GetTransactionStatusResponse) Reset()         { *m = GetTransactionStatusResponse{} }
func (m *GetTransactionStatusResponse) String() string { return proto.CompactTextString(m) }
func (*GetTransactionStatusResponse) ProtoMessage()    {}

func (m *GetTransactionStatusResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *GetTransactionStatusResponse) GetRecord() *TxnRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

type HeartbeatRequest struct {
	StartId uint64 `protobuf:"varint,1,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
}

func (m *HeartbeatRequest) Reset()         { *m = HeartbeatRequest{} }
func (m *HeartbeatRequest) String() string { return proto.CompactTextString(m) }
func (*HeartbeatRequest) ProtoMessage()    {}

func (m *HeartbeatRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

type HeartbeatResponse struct {
	Error  *Error     `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Record *TxnRecord `protobuf:"bytes,2,opt,name=record,proto3" json:"record,omitempty"`
}

func (m *HeartbeatResponse) Reset()         { *m = HeartbeatResponse{} }
func (m *HeartbeatResponse) String() string { return proto.CompactTextString(m) }
func (*HeartbeatResponse) ProtoMessage()    {}

func (m *HeartbeatResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *HeartbeatResponse) GetRecord() *TxnRecord {
	if m != nil {
		return m.Record
	}
	return nil
}

type CommitRowRequest struct {
	Row      []byte `protobuf:"bytes,1,opt,name=row,proto3" json:"row,omitempty"`
	StartId  uint64 `protobuf:"varint,2,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
	CommitId uint64 `protobuf:"varint,3,opt,name=commit_id,json=commitId,proto3" json:"commit_id,omitempty"`
	IsDelete bool   `protobuf:"varint,4,opt,name=is_delete,json=isDelete,proto3" json:"is_delete,omitempty"`
}

func (m *CommitRowRequest) Reset()         { *m = CommitRowRequest{} }
func (m *CommitRowRequest) String() string { return proto.CompactTextString(m) }
func (*CommitRowRequest) ProtoMessage()    {}

func (m *CommitRowRequest) GetRow() []byte {
	if m != nil {
		return m.Row
	}
	return nil
}

func (m *CommitRowRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

func (m *CommitRowRequest) GetCommitId() uint64 {
	if m != nil {
		return m.CommitId
	}
	return 0
}

func (m *CommitRowRequest) GetIsDelete() bool {
	if m != nil {
		return m.IsDelete
	}
	return false
}

type CommitRowResponse struct {
	Error *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *CommitRowResponse) Reset()         { *m = CommitRowResponse{} }
func (m *CommitRowResponse) String() string { return proto.CompactTextString(m) }
func (*CommitRowResponse) ProtoMessage()    {}

func (m *CommitRowResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

type RollbackRowRequest struct {
	Row     []byte `protobuf:"bytes,1,opt,name=row,proto3" json:"row,omitempty"`
	StartId uint64 `protobuf:"varint,2,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
}

func (m *RollbackRowRequest) Reset()         { *m = RollbackRowRequest{} }
func (m *RollbackRowRequest) String() string { return proto.CompactTextString(m) }
func (*RollbackRowRequest) ProtoMessage()    {}

func (m *RollbackRowRequest) GetRow() []byte {
	if m != nil {
		return m.Row
	}
	return nil
}

func (m *RollbackRowRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

type RollbackRowResponse struct {
	Error *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *RollbackRowResponse) Reset()         { *m = RollbackRowResponse{} }
func (m *RollbackRowResponse) String() string { return proto.CompactTextString(m) }
func (*RollbackRowResponse) ProtoMessage()    {}

func (m *RollbackRowResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

type GetRowRequest struct {
	Row []byte `protobuf:"bytes,1,opt,name=row,proto3" json:"row,omitempty"`
}

func (m *GetRowRequest) Reset()         { *m = GetRowRequest{} }
func (m *GetRowRequest) String() string { return proto.CompactTextString(m) }
func (*GetRowRequest) ProtoMessage()    {}

func (m *GetRowRequest) GetRow() []byte {
	if m != nil {
		return m.Row
	}
	return nil
}

type GetRowResponse struct {
	Error *Error  `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Row   *RawRow `protobuf:"bytes,2,opt,name=row,proto3" json:"row,omitempty"`
}

func (m *GetRowResponse) Reset()         { *m = GetRowResponse{} }
func (m *GetRowResponse) String() string { return proto.CompactTextString(m) }
func (*GetRowResponse) ProtoMessage()    {}

func (m *GetRowResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *GetRowResponse) GetRow() *RawRow {
	if m != nil {
		return m.Row
	}
	return nil
}

type ScanRowsRequest struct {
	Start []byte `protobuf:"bytes,1,opt,name=start,proto3" json:"start,omitempty"`
	End   []byte `protobuf:"bytes,2,opt,name=end,proto3" json:"end,omitempty"`
	Limit uint32 `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (m *ScanRowsRequest) Reset()         { *m = ScanRowsRequest{} }
func (m *ScanRowsRequest) String() string { return proto.CompactTextString(m) }
func (*ScanRowsRequest) ProtoMessage()    {}

func (m *ScanRowsRequest) GetStart() []byte {
	if m != nil {
		return m.Start
	}
	return nil
}

func (m *ScanRowsRequest) GetEnd() []byte {
	if m != nil {
		return m.End
	}
	return nil
}

func (m *ScanRowsRequest) GetLimit() uint32 {
	if m != nil {
		return m.Limit
	}
	return 0
}

type ScanRowsResponse struct {
	Error *Error    `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Rows  []*RawRow `protobuf:"bytes,2,rep,name=rows,proto3" json:"rows,omitempty"`
}

func (m *ScanRowsResponse) Reset()         { *m = ScanRowsResponse{} }
func (m *ScanRowsResponse) String() string { return proto.CompactTextString(m) }
func (*ScanRowsResponse) ProtoMessage()    {}

func (m *ScanRowsResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *ScanRowsResponse) GetRows() []*RawRow {
	if m != nil {
		return m.Rows
	}
	return nil
}

type WriteRowRequest struct {
	Row       []byte      `protobuf:"bytes,1,opt,name=row,proto3" json:"row,omitempty"`
	StartId   uint64      `protobuf:"varint,2,opt,name=start_id,json=startId,proto3" json:"start_id,omitempty"`
	Mutations []*Mutation `protobuf:"bytes,3,rep,name=mutations,proto3" json:"mutations,omitempty"`
	Checked   []uint64    `protobuf:"varint,4,rep,packed,name=checked,proto3" json:"checked,omitempty"`
}

func (m *WriteRowRequest) Reset()         { *m = WriteRowRequest{} }
func (m *WriteRowRequest) String() string { return proto.CompactTextString(m) }
func (*WriteRowRequest) ProtoMessage()    {}

func (m *WriteRowRequest) GetRow() []byte {
	if m != nil {
		return m.Row
	}
	return nil
}

func (m *WriteRowRequest) GetStartId() uint64 {
	if m != nil {
		return m.StartId
	}
	return 0
}

func (m *WriteRowRequest) GetMutations() []*Mutation {
	if m != nil {
		return m.Mutations
	}
	return nil
}

func (m *WriteRowRequest) GetChecked() []uint64 {
	if m != nil {
		return m.Checked
	}
	return nil
}

type WriteRowResponse struct {
	Error *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
}

func (m *WriteRowResponse) Reset()         { *m = WriteRowResponse{} }
func (m *WriteRowResponse) String() string { return proto.CompactTextString(m) }
func (*WriteRowResponse) ProtoMessage()    {}

func (m *WriteRowResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

type NextIDRequest struct {
}

func (m *NextIDRequest) Reset()         { *m = NextIDRequest{} }
func (m *NextIDRequest) String() string { return proto.CompactTextString(m) }
func (*NextIDRequest) ProtoMessage()    {}

type NextIDResponse struct {
	Error *Error `protobuf:"bytes,1,opt,name=error,proto3" json:"error,omitempty"`
	Id    uint64 `protobuf:"varint,2,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *NextIDResponse) Reset()         { *m = NextIDResponse{} }
func (m *NextIDResponse) String() string { return proto.CompactTextString(m) }
func (*NextIDResponse) ProtoMessage()    {}

func (m *NextIDResponse) GetError() *Error {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *NextIDResponse) GetId() uint64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func init() {
	proto.RegisterEnum("dominopb.ErrorKind", ErrorKind_name, ErrorKind_value)
	proto.RegisterType((*TxnRecord)(nil), "dominopb.TxnRecord")
	proto.RegisterType((*Version)(nil), "dominopb.Version")
	proto.RegisterType((*RawCell)(nil), "dominopb.RawCell")
	proto.RegisterType((*Stamp)(nil), "dominopb.Stamp")
	proto.RegisterType((*RawRow)(nil), "dominopb.RawRow")
	proto.RegisterType((*Mutation)(nil), "dominopb.Mutation")
	proto.RegisterType((*Error)(nil), "dominopb.Error")
	proto.RegisterType((*BeginTransactionRequest)(nil), "dominopb.BeginTransactionRequest")
	proto.RegisterType((*BeginTransactionResponse)(nil), "dominopb.BeginTransactionResponse")
	proto.RegisterType((*CommitTransactionRequest)(nil), "dominopb.CommitTransactionRequest")
	proto.RegisterType((*CommitTransactionResponse)(nil), "dominopb.CommitTransactionResponse")
	proto.RegisterType((*AbortTransactionRequest)(nil), "dominopb.AbortTransactionRequest")
	proto.RegisterType((*AbortTransactionResponse)(nil), "dominopb.AbortTransactionResponse")
	proto.RegisterType((*GetTransactionStatusRequest)(nil), "dominopb.GetTransactionStatusRequest")
	proto.RegisterType((*GetTransactionStatusResponse)(nil), "dominopb.GetTransactionStatusResponse")
	proto.RegisterType((*HeartbeatRequest)(nil), "dominopb.HeartbeatRequest")
	proto.RegisterType((*HeartbeatResponse)(nil), "dominopb.HeartbeatResponse")
	proto.RegisterType((*CommitRowRequest)(nil), "dominopb.CommitRowRequest")
	proto.RegisterType((*CommitRowResponse)(nil), "dominopb.CommitRowResponse")
	proto.RegisterType((*RollbackRowRequest)(nil), "dominopb.RollbackRowRequest")
	proto.RegisterType((*RollbackRowResponse)(nil), "dominopb.RollbackRowResponse")
	proto.RegisterType((*GetRowRequest)(nil), "dominopb.GetRowRequest")
	proto.RegisterType((*GetRowResponse)(nil), "dominopb.GetRowResponse")
	proto.RegisterType((*ScanRowsRequest)(nil), "dominopb.ScanRowsRequest")
	proto.RegisterType((*ScanRowsResponse)(nil), "dominopb.ScanRowsResponse")
	proto.RegisterType((*WriteRowRequest)(nil), "dominopb.WriteRowRequest")
	proto.RegisterType((*WriteRowResponse)(nil), "dominopb.WriteRowResponse")
	proto.RegisterType((*NextIDRequest)(nil), "dominopb.NextIDRequest")
	proto.RegisterType((*NextIDResponse)(nil), "dominopb.NextIDResponse")
}

// Reference imports to suppress errors if they are not otherwise used.
var _ context.Context
var _ grpc.ClientConn

// DominoClient is the client API for Domino service.
type DominoClient interface {
	BeginTransaction(ctx context.Context, in *BeginTransactionRequest, opts ...grpc.CallOption) (*BeginTransactionResponse, error)
	CommitTransaction(ctx context.Context, in *CommitTransactionRequest, opts ...grpc.CallOption) (*CommitTransactionResponse, error)
	AbortTransaction(ctx context.Context, in *AbortTransactionRequest, opts ...grpc.CallOption) (*AbortTransactionResponse, error)
	GetTransactionStatus(ctx context.Context, in *GetTransactionStatusRequest, opts ...grpc.CallOption) (*GetTransactionStatusResponse, error)
	Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (*HeartbeatResponse, error)
	CommitRow(ctx context.Context, in *CommitRowRequest, opts ...grpc.CallOption) (*CommitRowResponse, error)
	RollbackRow(ctx context.Context, in *RollbackRowRequest, opts ...grpc.CallOption) (*RollbackRowResponse, error)
	GetRow(ctx context.Context, in *GetRowRequest, opts ...grpc.CallOption) (*GetRowResponse, error)
	ScanRows(ctx context.Context, in *ScanRowsRequest, opts ...grpc.CallOption) (*ScanRowsResponse, error)
	WriteRow(ctx context.Context, in *WriteRowRequest, opts ...grpc.CallOption) (*WriteRowResponse, error)
	NextID(ctx context.Context, in *NextIDRequest, opts ...grpc.CallOption) (*NextIDResponse, error)
}

type dominoClient struct {
	cc *grpc.ClientConn
}

func NewDominoClient(cc *grpc.ClientConn) DominoClient {
	return &dominoClient{cc}
}

func (c *dominoClient) BeginTransaction(ctx context.Context, in *BeginTransactionRequest, opts ...grpc.CallOption) (*BeginTransactionResponse, error) {
	out := new(BeginTransactionResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/BeginTransaction", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) CommitTransaction(ctx context.Context, in *CommitTransactionRequest, opts ...grpc.CallOption) (*CommitTransactionResponse, error) {
	out := new(CommitTransactionResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/CommitTransaction", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) AbortTransaction(ctx context.Context, in *AbortTransactionRequest, opts ...grpc.CallOption) (*AbortTransactionResponse, error) {
	out := new(AbortTransactionResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/AbortTransaction", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) GetTransactionStatus(ctx context.Context, in *GetTransactionStatusRequest, opts ...grpc.CallOption) (*GetTransactionStatusResponse, error) {
	out := new(GetTransactionStatusResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/GetTransactionStatus", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) Heartbeat(ctx context.Context, in *HeartbeatRequest, opts ...grpc.CallOption) (*HeartbeatResponse, error) {
	out := new(HeartbeatResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/Heartbeat", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) CommitRow(ctx context.Context, in *CommitRowRequest, opts ...grpc.CallOption) (*CommitRowResponse, error) {
	out := new(CommitRowResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/CommitRow", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) RollbackRow(ctx context.Context, in *RollbackRowRequest, opts ...grpc.CallOption) (*RollbackRowResponse, error) {
	out := new(RollbackRowResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/RollbackRow", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) GetRow(ctx context.Context, in *GetRowRequest, opts ...grpc.CallOption) (*GetRowResponse, error) {
	out := new(GetRowResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/GetRow", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) ScanRows(ctx context.Context, in *ScanRowsRequest, opts ...grpc.CallOption) (*ScanRowsResponse, error) {
	out := new(ScanRowsResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/ScanRows", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) WriteRow(ctx context.Context, in *WriteRowRequest, opts ...grpc.CallOption) (*WriteRowResponse, error) {
	out := new(WriteRowResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/WriteRow", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *dominoClient) NextID(ctx context.Context, in *NextIDRequest, opts ...grpc.CallOption) (*NextIDResponse, error) {
	out := new(NextIDResponse)
	err := c.cc.Invoke(ctx, "/dominopb.Domino/NextID", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DominoServer is the server API for Domino service.
type DominoServer interface {
	BeginTransaction(context.Context, *BeginTransactionRequest) (*BeginTransactionResponse, error)
	CommitTransaction(context.Context, *CommitTransactionRequest) (*CommitTransactionResponse, error)
	AbortTransaction(context.Context, *AbortTransactionRequest) (*AbortTransactionResponse, error)
	GetTransactionStatus(context.Context, *GetTransactionStatusRequest) (*GetTransactionStatusResponse, error)
	Heartbeat(context.Context, *HeartbeatRequest) (*HeartbeatResponse, error)
	CommitRow(context.Context, *CommitRowRequest) (*CommitRowResponse, error)
	RollbackRow(context.Context, *RollbackRowRequest) (*RollbackRowResponse, error)
	GetRow(context.Context, *GetRowRequest) (*GetRowResponse, error)
	ScanRows(context.Context, *ScanRowsRequest) (*ScanRowsResponse, error)
	WriteRow(context.Context, *WriteRowRequest) (*WriteRowResponse, error)
	NextID(context.Context, *NextIDRequest) (*NextIDResponse, error)
}

func RegisterDominoServer(s *grpc.Server, srv DominoServer) {
	s.RegisterService(&_Domino_serviceDesc, srv)
}

func _Domino_BeginTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).BeginTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/BeginTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).BeginTransaction(ctx, req.(*BeginTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_CommitTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).CommitTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/CommitTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).CommitTransaction(ctx, req.(*CommitTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_AbortTransaction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AbortTransactionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).AbortTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/AbortTransaction",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).AbortTransaction(ctx, req.(*AbortTransactionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_GetTransactionStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetTransactionStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).GetTransactionStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/GetTransactionStatus",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).GetTransactionStatus(ctx, req.(*GetTransactionStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_Heartbeat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(HeartbeatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).Heartbeat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/Heartbeat",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).Heartbeat(ctx, req.(*HeartbeatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_CommitRow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommitRowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).CommitRow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/CommitRow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).CommitRow(ctx, req.(*CommitRowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_RollbackRow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RollbackRowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).RollbackRow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/RollbackRow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).RollbackRow(ctx, req.(*RollbackRowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_GetRow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).GetRow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/GetRow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).GetRow(ctx, req.(*GetRowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_ScanRows_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanRowsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).ScanRows(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/ScanRows",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).ScanRows(ctx, req.(*ScanRowsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_WriteRow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WriteRowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).WriteRow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/WriteRow",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).WriteRow(ctx, req.(*WriteRowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Domino_NextID_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NextIDRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DominoServer).NextID(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/dominopb.Domino/NextID",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DominoServer).NextID(ctx, req.(*NextIDRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Domino_serviceDesc = grpc.ServiceDesc{
	ServiceName: "dominopb.Domino",
	HandlerType: (*DominoServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "BeginTransaction",
			Handler:    _Domino_BeginTransaction_Handler,
		},
		{
			MethodName: "CommitTransaction",
			Handler:    _Domino_CommitTransaction_Handler,
		},
		{
			MethodName: "AbortTransaction",
			Handler:    _Domino_AbortTransaction_Handler,
		},
		{
			MethodName: "GetTransactionStatus",
			Handler:    _Domino_GetTransactionStatus_Handler,
		},
		{
			MethodName: "Heartbeat",
			Handler:    _Domino_Heartbeat_Handler,
		},
		{
			MethodName: "CommitRow",
			Handler:    _Domino_CommitRow_Handler,
		},
		{
			MethodName: "RollbackRow",
			Handler:    _Domino_RollbackRow_Handler,
		},
		{
			MethodName: "GetRow",
			Handler:    _Domino_GetRow_Handler,
		},
		{
			MethodName: "ScanRows",
			Handler:    _Domino_ScanRows_Handler,
		},
		{
			MethodName: "WriteRow",
			Handler:    _Domino_WriteRow_Handler,
		},
		{
			MethodName: "NextID",
			Handler:    _Domino_NextID_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "dominopb.proto",
}
