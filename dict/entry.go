package dict

import (
	"fmt"

	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/window"
)

// ReadOptions carries decode-time toggles owned by the readers rather than
// by a Codec or any process-wide flag.
type ReadOptions struct {
	// ReplaceEmptyWithNull reproduces the legacy behavior of folding a
	// zero-length non-null payload into NULL. The default (false, the zero
	// value) keeps empty and NULL distinct.
	ReplaceEmptyWithNull bool
}

// lengthMarkerNull and lengthMarkerNonNull are the two valid values of the
// 4-byte word immediately preceding a dictionary entry's payload bytes.
const (
	lengthMarkerNull    int32 = -1
	lengthMarkerNonNull int32 = 0
)

// decodeEntry is the copyBufferAndGet operation shared by the V1 and V2
// readers (§4.4): it duplicates payload, positions it at start, reads the
// length marker at start-4, and either returns NULL or decodes [start, end)
// through c.
func decodeEntry[T any](c codec.Codec[T], payload *window.Window, start, end int32, engine endian.EndianEngine, opts ReadOptions) (Value[T], error) {
	if start < 4 || end < start || int(end) > payload.Len() {
		return Value[T]{}, fmt.Errorf("%w: entry [%d, %d) out of payload bounds [4, %d]", errs.ErrCorruptData, start, end, payload.Len())
	}

	marker, err := payload.ReadInt32At(int(start-4), engine)
	if err != nil {
		return Value[T]{}, fmt.Errorf("%w: reading length marker: %v", errs.ErrCorruptData, err)
	}

	switch marker {
	case lengthMarkerNull:
		return NullValue[T](), nil
	case lengthMarkerNonNull:
		n := int(end - start)
		if opts.ReplaceEmptyWithNull && n == 0 {
			return NullValue[T](), nil
		}

		dup := payload.Duplicate()
		dup.SetPosition(int(start))
		dup.SetLimit(int(end))

		val, err := c.Decode(dup, n)
		if err != nil {
			return Value[T]{}, err
		}

		return NonNull(val), nil
	default:
		return Value[T]{}, fmt.Errorf("%w: length marker %d is neither -1 nor 0", errs.ErrCorruptData, marker)
	}
}

// compareValue orders a decoded Value against a non-null search target v,
// treating NULL as the minimum element (nulls-first), per §3's invariant
// that reverse lookup requires NULL to sort before every non-null payload.
func compareValue[T any](c codec.Codec[T], cur Value[T], v T) int {
	if cur.Null {
		return -1
	}

	return c.Compare(cur.Payload, v)
}
