package mvcc

import (
	"fmt"

	"github.com/pingcap/errors"
)

// ErrTxnAborted is returned by a commit of a transaction that is not ACTIVE, usually because it lost a race with
// expiry. It is an expected outcome rather than a failure.
type ErrTxnAborted struct {
	StartID uint64
}

func (e *ErrTxnAborted) Error() string {
	return fmt.Sprintf("transaction %d is aborted", e.StartID)
}

// ErrTxnOutOfDate means the transaction's metadata says it can no longer be trusted, e.g. it expired and was
// reclaimed while its owner was still running.
type ErrTxnOutOfDate struct {
	StartID uint64
	Status  TxnStatus
}

func (e *ErrTxnOutOfDate) Error() string {
	return fmt.Sprintf("transaction %d is out of date, status %s", e.StartID, e.Status)
}

// ErrInvalidRowStatus means a metadata row or a data row is in a state the protocol can never produce.
type ErrInvalidRowStatus struct {
	Key    []byte
	Reason string
}

func (e *ErrInvalidRowStatus) Error() string {
	return fmt.Sprintf("invalid row status, key: %q, %s", e.Key, e.Reason)
}

// ErrWriteConflict is returned when a row was written by a transaction that committed after, or is still running
// concurrently with, the writer.
type ErrWriteConflict struct {
	StartID    uint64
	ConflictID uint64
	Row        []byte
}

func (e *ErrWriteConflict) Error() string {
	return fmt.Sprintf("write conflict, txn %d conflicts with txn %d on row %q", e.StartID, e.ConflictID, e.Row)
}

// ErrRowChanged is returned by WriteRow when an unchecked writer appeared in the row after the conflict check. The
// caller checks again.
var ErrRowChanged = errors.New("row changed since conflict check")

// ErrTxnDisabled is returned by every operation on a transaction handle after a fatal error, or after it finished.
type ErrTxnDisabled struct {
	StartID uint64
	Cause   error
}

func (e *ErrTxnDisabled) Error() string {
	return fmt.Sprintf("transaction %d is no longer usable: %v", e.StartID, e.Cause)
}

// Outcome is the classification of an operation result.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeAborted
	OutcomeConflict
	OutcomeOutOfDate
	OutcomeInvalidState
	OutcomeIOFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeAborted:
		return "aborted"
	case OutcomeConflict:
		return "conflict"
	case OutcomeOutOfDate:
		return "out-of-date"
	case OutcomeInvalidState:
		return "invalid-state"
	case OutcomeIOFailure:
		return "io-failure"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Fatal reports whether the outcome disables the transaction that observed it.
func (o Outcome) Fatal() bool {
	return o == OutcomeOutOfDate || o == OutcomeInvalidState || o == OutcomeIOFailure
}

// Classify maps an error to its outcome. Any error that is not a protocol error counts as an I/O failure.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	switch e := errors.Cause(err).(type) {
	case *ErrTxnAborted:
		return OutcomeAborted
	case *ErrWriteConflict:
		return OutcomeConflict
	case *ErrTxnOutOfDate:
		return OutcomeOutOfDate
	case *ErrInvalidRowStatus:
		return OutcomeInvalidState
	case *ErrTxnDisabled:
		return Classify(e.Cause)
	}
	if errors.Cause(err) == ErrRowChanged {
		return OutcomeConflict
	}
	return OutcomeIOFailure
}
