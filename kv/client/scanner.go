package client

import (
	"context"

	"github.com/pingcap-incubator/domino/kv/transaction/mvcc"
	"github.com/pingcap/errors"
)

var errScannerClosed = errors.New("scanner is closed")

// Scanner returns the rows of a range visible to its transaction, in key order. Raw rows with nothing visible are
// skipped, so fetching n rows may take several round trips to the store. The transaction must stay usable for the
// whole scan: every call checks it first.
//
// Rows can be read in counts with Next and NextN, or one by one:
//  for scanner.Advance(ctx) {
//      row := scanner.Row()
//  }
//  if err := scanner.Err(); err != nil {
type Scanner struct {
	txn     *Txn
	raw     *mvcc.RawScanner
	batch   int
	pending []*mvcc.Row
	current *mvcc.Row
	err     error
	closed  bool
}

func newScanner(txn *Txn, start, end []byte) *Scanner {
	return &Scanner{
		txn:   txn,
		raw:   mvcc.NewRawScanner(txn.client.data, start, end),
		batch: txn.client.conf.ScanBatchSize,
	}
}

func (s *Scanner) check() error {
	if s.closed {
		return errScannerClosed
	}
	return s.txn.checkReady()
}

// Next returns the next visible row, or nil when the range is exhausted.
func (s *Scanner) Next(ctx context.Context) (*mvcc.Row, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if len(s.pending) > 0 {
		row := s.pending[0]
		s.pending = s.pending[1:]
		return row, nil
	}
	for {
		rows, err := s.fetch(ctx, 1)
		if err != nil {
			return nil, err
		}
		if len(rows) > 0 {
			return rows[0], nil
		}
		if s.raw.Exhausted() {
			return nil, nil
		}
	}
}

// NextN returns the next n visible rows. It returns fewer only when the range is exhausted.
func (s *Scanner) NextN(ctx context.Context, n int) ([]*mvcc.Row, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.take(ctx, n)
}

func (s *Scanner) take(ctx context.Context, n int) ([]*mvcc.Row, error) {
	var result []*mvcc.Row
	if len(s.pending) > 0 {
		k := n
		if k > len(s.pending) {
			k = len(s.pending)
		}
		result = append(result, s.pending[:k]...)
		s.pending = s.pending[k:]
	}
	for len(result) < n && !s.raw.Exhausted() {
		if err := s.txn.checkReady(); err != nil {
			return nil, err
		}
		// Only ask for the rows still missing.
		rows, err := s.fetch(ctx, n-len(result))
		if err != nil {
			return nil, err
		}
		result = append(result, rows...)
	}
	return result, nil
}

// fetch reads up to n raw rows and returns the visible ones.
func (s *Scanner) fetch(ctx context.Context, n int) ([]*mvcc.Row, error) {
	raws, err := s.raw.Next(ctx, n)
	if err != nil {
		return nil, s.txn.fail(err)
	}
	rows := make([]*mvcc.Row, 0, len(raws))
	for _, raw := range raws {
		row, err := s.txn.resolve(ctx, raw)
		if err != nil {
			return nil, err
		}
		if row != nil {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// Advance moves to the next visible row. It returns false at the end of the range or on error, see Err.
func (s *Scanner) Advance(ctx context.Context) bool {
	s.current = nil
	if s.err != nil {
		return false
	}
	if s.err = s.check(); s.err != nil {
		return false
	}
	if len(s.pending) == 0 {
		var rows []*mvcc.Row
		rows, s.err = s.take(ctx, s.batch)
		if s.err != nil {
			return false
		}
		s.pending = rows
	}
	if len(s.pending) == 0 {
		return false
	}
	s.current, s.pending = s.pending[0], s.pending[1:]
	return true
}

// Valid reports whether Row returns a row.
func (s *Scanner) Valid() bool {
	return s.current != nil
}

// Row returns the row Advance moved to.
func (s *Scanner) Row() *mvcc.Row {
	return s.current
}

// Err returns the error that stopped Advance.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) Close() {
	s.closed = true
	s.pending = nil
	s.current = nil
}
