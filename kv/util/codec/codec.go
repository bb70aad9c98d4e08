package codec

import (
	"encoding/binary"

	"github.com/pingcap/errors"
)

const (
	encGroupSize = 8
	encMarker    = byte(0xFF)
	encPad       = byte(0x0)

	// IDLen is the length of an encoded transaction id suffix.
	IDLen = 8
)

var pads = make([]byte, encGroupSize)

// EncodeBytes encodes data so that the byte-wise order of encoded values is the order of the raw values and no
// encoded value is a prefix of another. Every 8 bytes of input become a group followed by a marker, the last group
// is padded with zeros and its marker is `0xFF - padding count`:
//  [] -> [0, 0, 0, 0, 0, 0, 0, 0, 247]
//  [1, 2, 3] -> [1, 2, 3, 0, 0, 0, 0, 0, 250]
//  [1, 2, 3, 4, 5, 6, 7, 8] -> [1, 2, 3, 4, 5, 6, 7, 8, 255, 0, 0, 0, 0, 0, 0, 0, 0, 247]
// See https://github.com/facebook/mysql-5.6/wiki/MyRocks-record-format#memcomparable-format.
func EncodeBytes(data []byte) []byte {
	return AppendBytes(make([]byte, 0, EncodedLen(len(data))+IDLen), data)
}

// EncodedLen returns the length of EncodeBytes(data) for a data of length n.
func EncodedLen(n int) int {
	return (n/encGroupSize + 1) * (encGroupSize + 1)
}

// AppendBytes appends the memcomparable form of data to buf.
func AppendBytes(buf, data []byte) []byte {
	dLen := len(data)
	for idx := 0; idx <= dLen; idx += encGroupSize {
		remain := dLen - idx
		padCount := 0
		if remain >= encGroupSize {
			buf = append(buf, data[idx:idx+encGroupSize]...)
		} else {
			padCount = encGroupSize - remain
			buf = append(buf, data[idx:]...)
			buf = append(buf, pads[:padCount]...)
		}
		buf = append(buf, encMarker-byte(padCount))
	}
	return buf
}

// DecodeBytes decodes a value produced by EncodeBytes. It returns the bytes left over after the value and the
// decoded value.
func DecodeBytes(b []byte) ([]byte, []byte, error) {
	data := make([]byte, 0, len(b))
	for {
		if len(b) < encGroupSize+1 {
			return nil, nil, errors.New("insufficient bytes to decode value")
		}
		group := b[:encGroupSize]
		marker := b[encGroupSize]
		padCount := encMarker - marker
		if padCount > encGroupSize {
			return nil, nil, errors.Errorf("invalid marker byte, group bytes %q", b[:encGroupSize+1])
		}
		realGroupSize := encGroupSize - padCount
		data = append(data, group[:realGroupSize]...)
		if padCount != 0 {
			for _, v := range group[realGroupSize:] {
				if v != encPad {
					return nil, nil, errors.Errorf("invalid padding byte, group bytes %q", b[:encGroupSize+1])
				}
			}
			return b[encGroupSize+1:], data, nil
		}
		b = b[encGroupSize+1:]
	}
}

// AppendID appends a transaction id to an encoded key. The id is inverted so that, for the same key prefix, larger
// ids sort first.
func AppendID(encodedKey []byte, id uint64) []byte {
	var buf [IDLen]byte
	binary.BigEndian.PutUint64(buf[:], ^id)
	return append(encodedKey, buf[:]...)
}

// DecodeID decodes an id appended by AppendID, returning the remaining bytes.
func DecodeID(b []byte) ([]byte, uint64, error) {
	if len(b) < IDLen {
		return nil, 0, errors.Errorf("insufficient bytes to decode id, got %d", len(b))
	}
	return b[IDLen:], ^binary.BigEndian.Uint64(b[:IDLen]), nil
}

// EncodeUint64 encodes v in big endian so that byte order follows numeric order.
func EncodeUint64(v uint64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return buf[:]
}

// PrefixNext returns the smallest key that is greater than every key with the given prefix. It returns nil if no
// such key exists, i.e. the prefix is all 0xFF.
func PrefixNext(prefix []byte) []byte {
	next := make([]byte, len(prefix))
	copy(next, prefix)
	for i := len(next) - 1; i >= 0; i-- {
		next[i]++
		if next[i] != 0 {
			return next[:i+1]
		}
	}
	return nil
}
