package mvcc

import (
	"context"
	"fmt"
	"testing"

	"github.com/pingcap-incubator/domino/kv/util/engine_util"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRowAndGetRow(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	raw, err := s.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	assert.Nil(t, raw)

	require.Nil(t, s.WriteRow(ctx, []byte("r"), 10, []*Mutation{put("b", "1"), put("a", "2"), del("c")}, nil))
	raw, err = s.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, []byte("r"), raw.Key)
	require.Len(t, raw.Cells, 3)
	assert.Equal(t, []byte("a"), raw.Cells[0].Column)
	assert.Equal(t, []byte("c"), raw.Cells[2].Column)
	assert.True(t, raw.Cells[2].Versions[0].IsTombstone())
	assert.Equal(t, []uint64{10}, raw.Writers())
	assert.False(t, raw.OnlyDeletes(10))

	// Writing the same cell again replaces the writer's own version.
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 10, []*Mutation{put("a", "3")}, nil))
	raw, _ = s.GetRow(ctx, []byte("r"))
	require.Len(t, raw.Cells[0].Versions, 1)
	assert.Equal(t, []byte("3"), raw.Cells[0].Versions[0].Value)
}

func TestWriteRowDetectsChange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 10, []*Mutation{put("c", "x")}, nil))

	err := s.WriteRow(ctx, []byte("r"), 20, []*Mutation{put("c", "y")}, nil)
	assert.Equal(t, ErrRowChanged, errors.Cause(err))
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 20, []*Mutation{put("c", "y")}, []uint64{10}))

	// Stamped writers need no check, but a commit after the writer started is a conflict.
	require.Nil(t, s.CommitRow(ctx, []byte("r"), 20, 25, false))
	require.Nil(t, s.RollbackRow(ctx, []byte("r"), 10))
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 30, []*Mutation{put("c", "z")}, nil))
	err = s.WriteRow(ctx, []byte("r"), 22, []*Mutation{put("c", "w")}, []uint64{30})
	_, ok := errors.Cause(err).(*ErrWriteConflict)
	assert.True(t, ok)
}

func TestWriteRowAfterFinalize(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 10, []*Mutation{put("c", "x")}, nil))
	require.Nil(t, s.RollbackRow(ctx, []byte("r"), 10))
	err := s.WriteRow(ctx, []byte("r"), 10, []*Mutation{put("c", "x")}, nil)
	assert.Equal(t, OutcomeOutOfDate, Classify(err))

	require.Nil(t, s.WriteRow(ctx, []byte("q"), 11, []*Mutation{put("c", "x")}, nil))
	require.Nil(t, s.CommitRow(ctx, []byte("q"), 11, 12, false))
	err = s.WriteRow(ctx, []byte("q"), 11, []*Mutation{put("c", "x")}, nil)
	assert.Equal(t, OutcomeInvalidState, Classify(err))
}

func TestCommitRowIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 10, []*Mutation{del("c")}, nil))

	require.Nil(t, s.CommitRow(ctx, []byte("r"), 10, 15, true))
	require.Nil(t, s.CommitRow(ctx, []byte("r"), 10, 15, true))
	raw, err := s.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	stamp := raw.Stamp(10)
	require.NotNil(t, stamp)
	assert.Equal(t, &Stamp{Kind: StampCommit, CommitID: 15, IsDelete: true}, stamp)

	assert.Equal(t, OutcomeInvalidState, Classify(s.CommitRow(ctx, []byte("r"), 10, 16, true)))
	assert.Equal(t, OutcomeInvalidState, Classify(s.RollbackRow(ctx, []byte("r"), 10)))
	assert.Equal(t, OutcomeInvalidState, Classify(s.CommitRow(ctx, []byte("r"), 10, 10, true)))
}

func TestRollbackRowIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	store := s.storage.(interface{ Len(string) int })
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 10, []*Mutation{put("a", "1"), put("b", "2")}, nil))
	require.Nil(t, s.WriteRow(ctx, []byte("r"), 20, []*Mutation{put("a", "3")}, []uint64{10}))
	assert.Equal(t, 3, store.Len(engine_util.CfData))

	require.Nil(t, s.RollbackRow(ctx, []byte("r"), 10))
	require.Nil(t, s.RollbackRow(ctx, []byte("r"), 10))
	assert.Equal(t, 1, store.Len(engine_util.CfData))
	assert.Equal(t, 1, store.Len(engine_util.CfWrite))

	raw, err := s.GetRow(ctx, []byte("r"))
	require.Nil(t, err)
	assert.Equal(t, []uint64{20}, raw.Writers())
	assert.Equal(t, StampRollback, raw.Stamp(10).Kind)
	assert.Equal(t, OutcomeInvalidState, Classify(s.CommitRow(ctx, []byte("r"), 10, 15, false)))

	// Rolling back a row the writer never touched just leaves the stamp.
	require.Nil(t, s.RollbackRow(ctx, []byte("untouched"), 10))
	raw, err = s.GetRow(ctx, []byte("untouched"))
	require.Nil(t, err)
	require.NotNil(t, raw)
	assert.Len(t, raw.Cells, 0)
	assert.Equal(t, StampRollback, raw.Stamp(10).Kind)
	assert.Equal(t, OutcomeOutOfDate, Classify(s.WriteRow(ctx, []byte("untouched"), 10, []*Mutation{put("c", "x")}, nil)))
}

func TestScanRows(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	for i := 0; i < 10; i++ {
		row := fmt.Sprintf("row%02d", i)
		mustWrite(t, s, row, 10, put("c", row))
		mustWrite(t, s, row, 20, put("d", row))
	}
	require.Nil(t, s.CommitRow(ctx, []byte("row03"), 10, 15, false))

	rows, err := s.ScanRows(ctx, []byte("row02"), []byte("row06"), 10)
	require.Nil(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []byte("row02"), rows[0].Key)
	assert.Equal(t, []byte("row05"), rows[3].Key)
	assert.Equal(t, StampCommit, rows[1].Stamp(10).Kind)
	assert.Nil(t, rows[0].Stamp(10))
	assert.Len(t, rows[0].Cells, 2)

	rows, err = s.ScanRows(ctx, nil, nil, 3)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []byte("row00"), rows[0].Key)

	rows, err = s.ScanRows(ctx, []byte("zzz"), nil, 3)
	require.Nil(t, err)
	assert.Len(t, rows, 0)
}

func TestRawScanner(t *testing.T) {
	s := newTestStore()
	for i := 0; i < 7; i++ {
		mustWrite(t, s, fmt.Sprintf("row%d", i), 10, put("c", "v"))
	}
	scan := NewRawScanner(s, []byte("row1"), nil)
	ctx := context.Background()

	rows, err := scan.Next(ctx, 3)
	require.Nil(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []byte("row1"), rows[0].Key)
	assert.False(t, scan.Exhausted())

	rows, err = scan.Next(ctx, 2)
	require.Nil(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []byte("row4"), rows[0].Key)

	rows, err = scan.Next(ctx, 5)
	require.Nil(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []byte("row6"), rows[0].Key)
	assert.True(t, scan.Exhausted())

	rows, err = scan.Next(ctx, 5)
	require.Nil(t, err)
	assert.Len(t, rows, 0)
}
