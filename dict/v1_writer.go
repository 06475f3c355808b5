package dict

import (
	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/container"
	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/internal/pool"
)

// V1Writer streams an input sequence of payloads into two growable buffers
// (an offset table and a value region), tracking along the way whether the
// sequence was strictly ascending under the codec's comparator (§4.7).
type V1Writer[T any] struct {
	codec     codec.Codec[T]
	headerOut *pool.ByteBuffer
	valuesOut *pool.ByteBuffer

	count              int32
	allowReverseLookup bool
	havePrev           bool
	prevNull           bool
	prevVal            T
}

// NewV1Writer creates an empty V1Writer bound to codec c. Reverse lookup
// starts enabled iff c itself can compare payloads; the first non-strict
// step (equal or decreasing) disables it for the rest of the build.
func NewV1Writer[T any](c codec.Codec[T]) *V1Writer[T] {
	return &V1Writer[T]{
		codec:              c,
		headerOut:          pool.NewByteBuffer(pool.BlobBufferDefaultSize),
		valuesOut:          pool.NewByteBuffer(pool.BlobBufferDefaultSize),
		allowReverseLookup: c.CanCompare(),
	}
}

// Append writes one payload (or NULL) to the stream. The length marker
// (-1 for NULL, 0 for non-null) is written into the value stream itself,
// immediately before any payload bytes, matching where the reader expects
// to find it at start-4 (§4.3/§4.4).
func (w *V1Writer[T]) Append(v Value[T]) error {
	if v.Null {
		writeBigEndianInt32(w.valuesOut, lengthMarkerNull)
	} else {
		writeBigEndianInt32(w.valuesOut, lengthMarkerNonNull)

		if err := w.codec.Encode(v.Payload, w.valuesOut); err != nil {
			return err
		}
	}

	if w.allowReverseLookup && w.havePrev {
		if compareNullable(w.codec, w.prevNull, w.prevVal, v.Null, v.Payload) >= 0 {
			w.allowReverseLookup = false
		}
	}

	w.prevNull = v.Null
	w.prevVal = v.Payload
	w.havePrev = true
	w.count++

	writeBigEndianInt32(w.headerOut, int32(w.valuesOut.Len()))

	return nil
}

// writeBigEndianInt32 appends v to buf as a big-endian 4-byte word.
func writeBigEndianInt32(buf *pool.ByteBuffer, v int32) {
	var tmp [4]byte
	endian.GetBigEndianEngine().PutUint32(tmp[:], uint32(v))
	buf.MustWrite(tmp[:])
}

// Finalize assembles the complete V1 container buffer and returns a reader
// over it. An empty writer (no Append calls) produces n=0 with reverse
// lookup allowed, per §4.7's empty-input rule.
func (w *V1Writer[T]) Finalize(opts ReadOptions) (*V1Reader[T], error) {
	header := container.V1Header{
		ReverseLookupAllowed: w.allowReverseLookup,
		NumBytesUsed:         int32(w.headerOut.Len() + w.valuesOut.Len()),
		NumElements:          w.count,
	}

	buf := make([]byte, 0, container.V1HeaderSize+w.headerOut.Len()+w.valuesOut.Len())
	buf = append(buf, header.Bytes()...)
	buf = append(buf, w.headerOut.Bytes()...)
	buf = append(buf, w.valuesOut.Bytes()...)

	return NewV1Reader(buf, w.codec, opts)
}
