package mvcc

import (
	"bytes"
	"sort"
)

// RawRow is every version stored for one row, with the finalization stamps of its writers. It is what the resolver
// works on.
type RawRow struct {
	Key []byte
	// Cells are sorted by column.
	Cells []*RawCell
	// Stamps maps writer start ids to their stamp in this row.
	Stamps map[uint64]*Stamp
}

// RawCell holds the versions of one column, newest writer first.
type RawCell struct {
	Column   []byte
	Versions []*Version
}

// Writers returns the distinct start ids that wrote to the row, in descending order.
func (r *RawRow) Writers() []uint64 {
	seen := make(map[uint64]struct{})
	var ids []uint64
	for _, cell := range r.Cells {
		for _, v := range cell.Versions {
			if _, ok := seen[v.StartID]; !ok {
				seen[v.StartID] = struct{}{}
				ids = append(ids, v.StartID)
			}
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

// OnlyDeletes reports whether every version written by startID in the row is a tombstone.
func (r *RawRow) OnlyDeletes(startID uint64) bool {
	found := false
	for _, cell := range r.Cells {
		for _, v := range cell.Versions {
			if v.StartID != startID {
				continue
			}
			if !v.IsTombstone() {
				return false
			}
			found = true
		}
	}
	return found
}

func (r *RawRow) Stamp(startID uint64) *Stamp {
	if r.Stamps == nil {
		return nil
	}
	return r.Stamps[startID]
}

func (r *RawRow) addVersion(column []byte, v *Version) {
	if n := len(r.Cells); n > 0 && bytes.Equal(r.Cells[n-1].Column, column) {
		r.Cells[n-1].Versions = append(r.Cells[n-1].Versions, v)
		return
	}
	r.Cells = append(r.Cells, &RawCell{Column: column, Versions: []*Version{v}})
}

// Row is the resolved content of a row as seen by one snapshot. Only present cells are kept.
type Row struct {
	Key   []byte
	Cells []*Cell
}

type Cell struct {
	Column []byte
	Value  []byte
}

// Get returns the value of column, or nil if the cell is absent.
func (r *Row) Get(column []byte) []byte {
	i := sort.Search(len(r.Cells), func(i int) bool { return bytes.Compare(r.Cells[i].Column, column) >= 0 })
	if i < len(r.Cells) && bytes.Equal(r.Cells[i].Column, column) {
		return r.Cells[i].Value
	}
	return nil
}

func (r *Row) Len() int {
	return len(r.Cells)
}
