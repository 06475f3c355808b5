package container

import (
	"fmt"

	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
)

// v2MetaFixedSize is the size of the V2 meta block's fixed-width fields,
// before the variable-length column name.
const v2MetaFixedSize = 14

// V2Meta holds the V2 container's meta block fields, all encoded big-endian
// (unlike the V2 header file, which is native-endian — see Version2's doc).
type V2Meta struct {
	ReverseLookupAllowed bool
	Exp                  int32 // log2(elements per value file), 1 <= Exp <= 30
	NumElements          int32
	ColumnName           string
}

// ParseV2Meta parses a V2 meta block starting at data[0], including the
// leading Version2 byte.
func ParseV2Meta(data []byte) (V2Meta, error) {
	if len(data) < v2MetaFixedSize {
		return V2Meta{}, fmt.Errorf("%w: V2 meta needs %d bytes, got %d", errs.ErrCorruptData, v2MetaFixedSize, len(data))
	}

	version, err := PeekVersion(data[0])
	if err != nil {
		return V2Meta{}, err
	}

	if version != Version2 {
		return V2Meta{}, fmt.Errorf("%w: expected V2, got %s", errs.ErrUnknownVersion, version)
	}

	engine := endian.GetBigEndianEngine()

	exp := int32(engine.Uint32(data[2:6]))
	if exp < 1 || exp > 30 {
		return V2Meta{}, fmt.Errorf("%w: V2 exp %d out of [1, 30]", errs.ErrCorruptData, exp)
	}

	numElements := int32(engine.Uint32(data[6:10]))
	nameLen := int32(engine.Uint32(data[10:14]))

	if nameLen < 0 || int(v2MetaFixedSize+nameLen) > len(data) {
		return V2Meta{}, fmt.Errorf("%w: V2 column name length %d exceeds meta block", errs.ErrCorruptData, nameLen)
	}

	return V2Meta{
		ReverseLookupAllowed: data[1] != 0,
		Exp:                  exp,
		NumElements:          numElements,
		ColumnName:           string(data[v2MetaFixedSize : v2MetaFixedSize+int(nameLen)]),
	}, nil
}

// Bytes serializes m, including the leading Version2 byte, into a new slice.
func (m V2Meta) Bytes() []byte {
	nameBytes := []byte(m.ColumnName)
	b := make([]byte, v2MetaFixedSize+len(nameBytes))
	engine := endian.GetBigEndianEngine()

	b[0] = byte(Version2)
	if m.ReverseLookupAllowed {
		b[1] = 0x01
	}
	engine.PutUint32(b[2:6], uint32(m.Exp))
	engine.PutUint32(b[6:10], uint32(m.NumElements))
	engine.PutUint32(b[10:14], uint32(len(nameBytes))) //nolint: gosec
	copy(b[v2MetaFixedSize:], nameBytes)

	return b
}

// BagSize returns 2^Exp, the number of elements each value file (other than
// possibly the last) holds.
func (m V2Meta) BagSize() int32 {
	return 1 << uint(m.Exp)
}

// NumValueFiles returns ceil(NumElements / BagSize()).
func (m V2Meta) NumValueFiles() int32 {
	bag := m.BagSize()
	if m.NumElements == 0 {
		return 0
	}

	return (m.NumElements + bag - 1) / bag
}

// FileNum returns the value-file index holding global index i: i >> Exp.
func (m V2Meta) FileNum(i int32) int32 {
	return i >> uint(m.Exp)
}

// Relative returns i's offset within its value file: i & (BagSize()-1).
func (m V2Meta) Relative(i int32) int32 {
	return i & (m.BagSize() - 1)
}
