package codec

import (
	"strings"

	"github.com/arloliu/dictfile/window"
)

// StringCodec decodes payloads into Go strings, copying bytes out of the
// backing window so the result outlives the mapping it was read from.
// Compare is nulls-first from the caller's perspective: StringCodec itself
// never sees NULL, but its ordering over non-null strings is plain UTF-8
// byte order, which the dict package treats as the order above NULL.
type StringCodec struct{}

// NewStringCodec returns a StringCodec.
func NewStringCodec() StringCodec {
	return StringCodec{}
}

var _ Codec[string] = StringCodec{}

// Encode writes payload's UTF-8 bytes to sink.
func (StringCodec) Encode(payload string, sink Sink) error {
	_, err := sink.Write([]byte(payload))

	return err
}

// Decode copies the next n bytes of w into a new string.
func (StringCodec) Decode(w *window.Window, n int) (string, error) {
	b, err := w.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// Compare orders two strings by UTF-8 byte value, which agrees with Unicode
// code point order. It agrees with UTF-16 code unit order except where a
// character above U+FFFF is compared with one in U+E000-U+FFFF (see
// window.Compare).
func (StringCodec) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// CanCompare always returns true: strings have a well-defined total order.
func (StringCodec) CanCompare() bool {
	return true
}
