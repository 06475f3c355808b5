package container

import (
	"fmt"

	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
)

// V1HeaderSize is the size in bytes of the fixed V1 header fields, before
// the numElements-length offset table and the payload region.
const V1HeaderSize = 10

// V1Header holds the fixed-size fields at the start of a V1 container, all
// encoded big-endian.
type V1Header struct {
	ReverseLookupAllowed bool
	NumBytesUsed         int32
	NumElements          int32
}

// ParseV1Header parses the 10-byte fixed header starting at data[0],
// including the version byte at data[0] which must already be Version1.
func ParseV1Header(data []byte) (V1Header, error) {
	if len(data) < V1HeaderSize {
		return V1Header{}, fmt.Errorf("%w: V1 header needs %d bytes, got %d", errs.ErrCorruptData, V1HeaderSize, len(data))
	}

	version, err := PeekVersion(data[0])
	if err != nil {
		return V1Header{}, err
	}

	if version != Version1 {
		return V1Header{}, fmt.Errorf("%w: expected V1, got %s", errs.ErrUnknownVersion, version)
	}

	engine := endian.GetBigEndianEngine()

	return V1Header{
		ReverseLookupAllowed: data[1] != 0,
		NumBytesUsed:         int32(engine.Uint32(data[2:6])),
		NumElements:          int32(engine.Uint32(data[6:10])),
	}, nil
}

// Bytes serializes h, including the leading Version1 byte, into a new
// V1HeaderSize-byte slice.
func (h V1Header) Bytes() []byte {
	b := make([]byte, V1HeaderSize)
	engine := endian.GetBigEndianEngine()

	b[0] = byte(Version1)
	if h.ReverseLookupAllowed {
		b[1] = 0x01
	}
	engine.PutUint32(b[2:6], uint32(h.NumBytesUsed))
	engine.PutUint32(b[6:10], uint32(h.NumElements))

	return b
}
