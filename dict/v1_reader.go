package dict

import (
	"fmt"

	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/container"
	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/window"
)

// V1Reader provides constant-time positional access and, when the
// dictionary was built from strictly ascending input, logarithmic-time
// reverse lookup over a single-buffer V1 container (§4.3/§4.4).
//
// V1Reader is safe for concurrent use: Get duplicates the payload window's
// cursor on every call, so no shared mutable state is touched by concurrent
// readers. Cursor re-reserves a faster, non-concurrent-safe view over the
// same data.
type V1Reader[T any] struct {
	codec   codec.Codec[T]
	header  container.V1Header
	offsets *window.Window
	payload *window.Window
	opts    ReadOptions
}

// NewV1Reader parses a full V1 container buffer (including its leading
// version byte) and binds it to codec c.
func NewV1Reader[T any](buf []byte, c codec.Codec[T], opts ReadOptions) (*V1Reader[T], error) {
	header, err := container.ParseV1Header(buf)
	if err != nil {
		return nil, err
	}

	containerRegion := buf[container.V1HeaderSize:]
	if int32(len(containerRegion)) < header.NumBytesUsed {
		return nil, fmt.Errorf("%w: V1 numBytesUsed %d exceeds remaining buffer %d", errs.ErrCorruptData, header.NumBytesUsed, len(containerRegion))
	}

	containerRegion = containerRegion[:header.NumBytesUsed]

	offsetsSize := int(header.NumElements) * 4
	if offsetsSize > len(containerRegion) {
		return nil, fmt.Errorf("%w: V1 offsets table needs %d bytes, container region has %d", errs.ErrCorruptData, offsetsSize, len(containerRegion))
	}

	offsetsWin := window.New(containerRegion[:offsetsSize])
	payloadWin := window.New(containerRegion[offsetsSize:])

	return &V1Reader[T]{
		codec:   c,
		header:  header,
		offsets: offsetsWin,
		payload: payloadWin,
		opts:    opts,
	}, nil
}

// Size returns the dictionary's element count.
func (r *V1Reader[T]) Size() int {
	return int(r.header.NumElements)
}

// IsSorted reports whether reverse lookup (IndexOf) is available.
func (r *V1Reader[T]) IsSorted() bool {
	return r.header.ReverseLookupAllowed
}

// Get returns the payload at index i, or NULL.
func (r *V1Reader[T]) Get(i int) (Value[T], error) {
	if i < 0 || int32(i) >= r.header.NumElements {
		return Value[T]{}, fmt.Errorf("%w: index %d, size %d", errs.ErrOutOfRangeIndex, i, r.header.NumElements)
	}

	return r.getAt(int32(i))
}

func (r *V1Reader[T]) getAt(i int32) (Value[T], error) {
	engine := endian.GetBigEndianEngine()

	var start int32

	if i == 0 {
		start = 4
	} else {
		prevEnd, err := r.offsets.ReadInt32At(int(i-1)*4, engine)
		if err != nil {
			return Value[T]{}, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
		}

		start = prevEnd + 4
	}

	end, err := r.offsets.ReadInt32At(int(i)*4, engine)
	if err != nil {
		return Value[T]{}, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
	}

	return decodeEntry(r.codec, r.payload, start, end, engine, r.opts)
}

// IndexOf performs binary search for v using the Arrays.binarySearch
// insertion-point contract. It fails with errs.ErrReverseLookupUnsupported
// if the dictionary was not built from strictly ascending input, or if the
// bound codec cannot define an order over T.
func (r *V1Reader[T]) IndexOf(v T) (int, error) {
	if !r.header.ReverseLookupAllowed || !r.codec.CanCompare() {
		return 0, fmt.Errorf("%w", errs.ErrReverseLookupUnsupported)
	}

	idx, err := binarySearch(r.header.NumElements, r.getAt, func(cur Value[T]) int {
		return compareValue(r.codec, cur, v)
	})
	if err != nil {
		return 0, err
	}

	return int(idx), nil
}

// SerializedSize returns the exact byte length WriteTo would produce.
func (r *V1Reader[T]) SerializedSize() int {
	return container.V1HeaderSize + r.offsets.Len() + r.payload.Len()
}

// locate implements entryLocator: V1 has exactly one value file (index 0).
func (r *V1Reader[T]) locate(i int32) (fileIndex, start, end int32, engine endian.EndianEngine, err error) {
	engine = endian.GetBigEndianEngine()

	if i == 0 {
		start = 4
	} else {
		prevEnd, rerr := r.offsets.ReadInt32At(int(i-1)*4, engine)
		if rerr != nil {
			return 0, 0, 0, engine, fmt.Errorf("%w: %v", errs.ErrCorruptData, rerr)
		}

		start = prevEnd + 4
	}

	end, err = r.offsets.ReadInt32At(int(i)*4, engine)
	if err != nil {
		return 0, 0, 0, engine, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
	}

	return 0, start, end, engine, nil
}

func (r *V1Reader[T]) rawFile(int32) *window.Window { return r.payload }
func (r *V1Reader[T]) numEntries() int32            { return r.header.NumElements }
func (r *V1Reader[T]) entryCodec() codec.Codec[T]   { return r.codec }
func (r *V1Reader[T]) readOpts() ReadOptions        { return r.opts }

// WriteTo re-serializes the reader's backing bytes, byte-identically to the
// buffer it was constructed from (§8 property 5), provided the source was
// itself loaded from a V1 blob.
func (r *V1Reader[T]) WriteTo(sink WritableSink) error {
	if _, err := sink.Write(r.header.Bytes()); err != nil {
		return err
	}

	if _, err := sink.Write(r.offsets.Bytes()); err != nil {
		return err
	}

	if _, err := sink.Write(r.payload.Bytes()); err != nil {
		return err
	}

	return nil
}
