package mvcc

import (
	"testing"

	"github.com/pingcap/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxnRecordCodec(t *testing.T) {
	rec := &TxnRecord{StartID: 10, Status: TxnCommitted, CommitID: 15, LastHeartbeat: 1234}
	parsed, err := ParseTxnRecord(10, rec.ToBytes())
	require.Nil(t, err)
	assert.Equal(t, rec, parsed)

	parsed, err = ParseTxnRecord(10, nil)
	assert.Nil(t, err)
	assert.Nil(t, parsed)

	_, err = ParseTxnRecord(10, []byte{1})
	_, ok := errors.Cause(err).(*ErrInvalidRowStatus)
	assert.True(t, ok)
}

func TestTxnRecordCheck(t *testing.T) {
	assert.Nil(t, (&TxnRecord{StartID: 10, Status: TxnActive}).Check())
	assert.Nil(t, (&TxnRecord{StartID: 10, Status: TxnAborted}).Check())
	assert.NotNil(t, (&TxnRecord{StartID: 10, Status: TxnCommitted, CommitID: 10}).Check())
	assert.NotNil(t, (&TxnRecord{StartID: 10, Status: TxnAborted, CommitID: 11}).Check())
	assert.NotNil(t, (&TxnRecord{StartID: 10, Status: TxnStatus(9)}).Check())

	bad := (&TxnRecord{StartID: 10, Status: TxnCommitted, CommitID: 5}).ToBytes()
	_, err := ParseTxnRecord(10, bad)
	assert.NotNil(t, err)
}

func TestVisibleTo(t *testing.T) {
	rec := &TxnRecord{StartID: 10, Status: TxnCommitted, CommitID: 15}
	assert.True(t, rec.VisibleTo(20))
	assert.True(t, rec.VisibleTo(15))
	assert.False(t, rec.VisibleTo(12))
	assert.False(t, (&TxnRecord{StartID: 10, Status: TxnActive}).VisibleTo(20))
	assert.False(t, (&TxnRecord{StartID: 10, Status: TxnAborted}).VisibleTo(20))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeOK, Classify(nil))
	assert.Equal(t, OutcomeAborted, Classify(&ErrTxnAborted{StartID: 1}))
	assert.Equal(t, OutcomeOutOfDate, Classify(errors.Trace(&ErrTxnOutOfDate{StartID: 1, Status: TxnAborted})))
	assert.Equal(t, OutcomeInvalidState, Classify(&ErrInvalidRowStatus{Reason: "x"}))
	assert.Equal(t, OutcomeConflict, Classify(&ErrWriteConflict{}))
	assert.Equal(t, OutcomeConflict, Classify(ErrRowChanged))
	assert.Equal(t, OutcomeIOFailure, Classify(errors.New("disk on fire")))
	assert.Equal(t, OutcomeOutOfDate, Classify(&ErrTxnDisabled{StartID: 1, Cause: &ErrTxnOutOfDate{StartID: 1}}))

	assert.False(t, OutcomeOK.Fatal())
	assert.False(t, OutcomeAborted.Fatal())
	assert.False(t, OutcomeConflict.Fatal())
	assert.True(t, OutcomeOutOfDate.Fatal())
	assert.True(t, OutcomeInvalidState.Fatal())
	assert.True(t, OutcomeIOFailure.Fatal())
}

func TestStatusCache(t *testing.T) {
	sc := NewStatusCache(2)
	sc.Put(&TxnRecord{StartID: 1, Status: TxnActive})
	_, ok := sc.Get(1)
	assert.False(t, ok)

	sc.Put(&TxnRecord{StartID: 1, Status: TxnAborted})
	sc.Put(&TxnRecord{StartID: 2, Status: TxnCommitted, CommitID: 3})
	rec, ok := sc.Get(2)
	require.True(t, ok)
	assert.Equal(t, uint64(3), rec.CommitID)
	_, ok = sc.Get(1)
	assert.True(t, ok)

	// Two more entries push the first generation out.
	sc.Put(&TxnRecord{StartID: 4, Status: TxnAborted})
	sc.Put(&TxnRecord{StartID: 5, Status: TxnAborted})
	_, ok = sc.Get(1)
	assert.False(t, ok)
	_, ok = sc.Get(5)
	assert.True(t, ok)
	assert.Equal(t, 2, sc.Len())
}
