package mvcc

import (
	"encoding/binary"

	"github.com/pingcap-incubator/domino/kv/util/codec"
	"github.com/pingcap/errors"
)

// Keys are encoded so that, in CfData, versions are sorted first by row, then by column (both ascending), then by
// writer start id (descending). Rows and columns are memcomparable encoded, so the encoded row is a prefix of every
// key of that row and of no key of any other row.

// metaPrefix prefixes transaction metadata keys in CfMeta.
const metaPrefix = 't'

// RowPrefix returns the prefix shared by every CfData and CfWrite key of row.
func RowPrefix(row []byte) []byte {
	return codec.EncodeBytes(row)
}

// CellKey returns the CfData key of the version of row/column written by startID.
func CellKey(row, column []byte, startID uint64) []byte {
	buf := make([]byte, 0, codec.EncodedLen(len(row))+codec.EncodedLen(len(column))+codec.IDLen)
	buf = codec.AppendBytes(buf, row)
	buf = codec.AppendBytes(buf, column)
	return codec.AppendID(buf, startID)
}

// DecodeCellKey splits a CfData key into row, column and writer start id.
func DecodeCellKey(key []byte) (row, column []byte, startID uint64, err error) {
	rest, row, err := codec.DecodeBytes(key)
	if err != nil {
		return nil, nil, 0, errors.Annotatef(err, "decode row of cell key %q", key)
	}
	rest, column, err = codec.DecodeBytes(rest)
	if err != nil {
		return nil, nil, 0, errors.Annotatef(err, "decode column of cell key %q", key)
	}
	rest, startID, err = codec.DecodeID(rest)
	if err != nil {
		return nil, nil, 0, errors.Annotatef(err, "decode start id of cell key %q", key)
	}
	if len(rest) != 0 {
		return nil, nil, 0, errors.Errorf("cell key %q has %d trailing bytes", key, len(rest))
	}
	return row, column, startID, nil
}

// StampKey returns the CfWrite key of the finalization stamp left by startID on row.
func StampKey(row []byte, startID uint64) []byte {
	return codec.AppendID(codec.EncodeBytes(row), startID)
}

func DecodeStampKey(key []byte) (row []byte, startID uint64, err error) {
	rest, row, err := codec.DecodeBytes(key)
	if err != nil {
		return nil, 0, errors.Annotatef(err, "decode row of stamp key %q", key)
	}
	rest, startID, err = codec.DecodeID(rest)
	if err != nil {
		return nil, 0, errors.Annotatef(err, "decode start id of stamp key %q", key)
	}
	if len(rest) != 0 {
		return nil, 0, errors.Errorf("stamp key %q has %d trailing bytes", key, len(rest))
	}
	return row, startID, nil
}

// MetaKey returns the CfMeta key of the metadata row of the transaction startID.
func MetaKey(startID uint64) []byte {
	key := make([]byte, 1+codec.IDLen)
	key[0] = metaPrefix
	binary.BigEndian.PutUint64(key[1:], startID)
	return key
}

func DecodeMetaKey(key []byte) (uint64, error) {
	if len(key) != 1+codec.IDLen || key[0] != metaPrefix {
		return 0, errors.Errorf("invalid meta key %q", key)
	}
	return binary.BigEndian.Uint64(key[1:]), nil
}
