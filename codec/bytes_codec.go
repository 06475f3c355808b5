package codec

import (
	"bytes"

	"github.com/arloliu/dictfile/window"
)

// BytesCodec is the identity byte-slice codec: Encode writes the payload
// unchanged, Decode returns a zero-copy slice of the backing window, and
// Compare orders payloads byte-wise (equivalent to the UTF-8 lexicographic
// order documented on window.Compare).
//
// Because Decode never copies, a payload returned by BytesCodec is only
// valid as long as the window it was read from remains mapped; callers that
// need to retain a value past the next reader call must copy it themselves.
type BytesCodec struct{}

// NewBytesCodec returns a BytesCodec. It holds no state, so the zero value
// works equally well; the constructor exists for symmetry with other codecs.
func NewBytesCodec() BytesCodec {
	return BytesCodec{}
}

var (
	_ Codec[[]byte]     = BytesCodec{}
	_ IdentityByteSlice = BytesCodec{}
)

// Encode writes payload to sink unchanged.
func (BytesCodec) Encode(payload []byte, sink Sink) error {
	_, err := sink.Write(payload)

	return err
}

// Decode returns a zero-copy slice of the next n bytes of w.
func (BytesCodec) Decode(w *window.Window, n int) ([]byte, error) {
	return w.ReadBytes(n)
}

// Compare orders two byte payloads lexicographically.
func (BytesCodec) Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CanCompare always returns true: byte slices have a well-defined total order.
func (BytesCodec) CanCompare() bool {
	return true
}

// IsIdentityByteSlice reports true: BytesCodec's T is exactly the raw bytes
// stored in the dictionary, so the single-threaded cursor's indexOf fast
// path can compare undecoded windows directly.
func (BytesCodec) IsIdentityByteSlice() bool {
	return true
}
