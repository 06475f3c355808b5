package codec

import (
	"fmt"

	"github.com/arloliu/dictfile/window"
)

// compressionCodec is the subset of compress.Codec this package depends on.
// Codec cannot import package compress directly (compress depends on format,
// and importing it here would pull compression concerns into the payload
// codec layer); instead a caller wires a concrete compress.Codec in, which
// satisfies this interface structurally.
type compressionCodec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// CompressedCodec wraps an inner Codec[T] so that every entry's encoded
// bytes are transparently compressed on write and decompressed on read
// (C9). Each dictionary entry is compressed independently: the dictionary
// itself stays block-addressable, and a single entry can be decompressed
// without touching its neighbors.
//
// The wrapped inner codec never sees compressed bytes: Encode hands it a
// plain buffer to fill, then compresses the result before it reaches sink;
// Decode decompresses the stored block before handing it to the inner
// codec's Decode.
type CompressedCodec[T any] struct {
	inner   Codec[T]
	backend compressionCodec
}

// NewCompressedCodec wraps inner with backend, a compress.Codec (or any type
// exposing the same Compress/Decompress methods).
func NewCompressedCodec[T any](inner Codec[T], backend compressionCodec) *CompressedCodec[T] {
	return &CompressedCodec[T]{inner: inner, backend: backend}
}

var _ Codec[int] = (*CompressedCodec[int])(nil)

// scratchSink is an in-memory Sink used to capture the inner codec's
// uncompressed output before it is handed to the compression backend.
type scratchSink struct {
	buf []byte
}

func (s *scratchSink) Write(p []byte) (int, error) {
	s.buf = append(s.buf, p...)

	return len(p), nil
}

// Encode runs the inner codec into a scratch buffer, compresses the
// result, and writes the compressed bytes to sink.
func (c *CompressedCodec[T]) Encode(payload T, sink Sink) error {
	scratch := &scratchSink{}
	if err := c.inner.Encode(payload, scratch); err != nil {
		return err
	}

	compressed, err := c.backend.Compress(scratch.buf)
	if err != nil {
		return fmt.Errorf("codec: compress entry: %w", err)
	}

	_, err = sink.Write(compressed)

	return err
}

// Decode reads the next n (compressed) bytes from w, decompresses them, and
// decodes the inner payload from the decompressed bytes.
//
// The decompressed buffer is whatever the backend's Decompress returns. The
// Zstd, S2 and LZ4 backends allocate a new slice, so an inner codec that
// returns a value aliasing its input (codec.IdentityByteSlice implementations,
// for instance BytesCodec) gets a private buffer that stays valid independent
// of w's backing mapping. compress.NoOpCompressor returns its input, so with
// that backend such a payload aliases w's backing bytes.
func (c *CompressedCodec[T]) Decode(w *window.Window, n int) (T, error) {
	var zero T

	compressed, err := w.ReadBytes(n)
	if err != nil {
		return zero, err
	}

	decompressed, err := c.backend.Decompress(compressed)
	if err != nil {
		return zero, fmt.Errorf("codec: decompress entry: %w", err)
	}

	return c.inner.Decode(window.New(decompressed), len(decompressed))
}

// Compare delegates to the inner codec: compression is opaque to ordering,
// entries are always compared on their decoded form.
func (c *CompressedCodec[T]) Compare(a, b T) int {
	return c.inner.Compare(a, b)
}

// CanCompare delegates to the inner codec.
func (c *CompressedCodec[T]) CanCompare() bool {
	return c.inner.CanCompare()
}
