package mvcc

import (
	"context"
)

// RawScanner walks the raw rows of [start, end) in batches. It remembers where the last batch ended, so each call to
// Next continues after the last row returned. It knows nothing about visibility.
type RawScanner struct {
	reader    RowReader
	next      []byte
	end       []byte
	exhausted bool
}

func NewRawScanner(reader RowReader, start, end []byte) *RawScanner {
	return &RawScanner{reader: reader, next: start, end: end}
}

// Next fetches up to n raw rows. It returns fewer only if the range is exhausted.
func (s *RawScanner) Next(ctx context.Context, n int) ([]*RawRow, error) {
	if s.exhausted || n <= 0 {
		return nil, nil
	}
	rows, err := s.reader.ScanRows(ctx, s.next, s.end, n)
	if err != nil {
		return nil, err
	}
	if len(rows) < n {
		s.exhausted = true
	}
	if len(rows) > 0 {
		// The smallest row key after the last one.
		last := rows[len(rows)-1].Key
		s.next = append(append(make([]byte, 0, len(last)+1), last...), 0)
	}
	return rows, nil
}

func (s *RawScanner) Exhausted() bool {
	return s.exhausted
}
