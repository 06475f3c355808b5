package dict

import (
	"fmt"

	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/container"
	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/mapper"
	"github.com/arloliu/dictfile/window"
)

// V2Reader provides the same positional-access and reverse-lookup contract
// as V1Reader, but dispatches across N value files addressed by a
// power-of-two bag size (§4.3 V2 layout, §4.5).
//
// The header file's offsets are read in native byte order (the source
// format's accepted non-portability, see container.Version2); value-file
// entry length markers, like V1's payload region, are big-endian.
type V2Reader[T any] struct {
	codec        codec.Codec[T]
	meta         container.V2Meta
	headerWindow *window.Window
	valueWindows []*window.Window
	opts         ReadOptions
}

// NewV2Reader parses a V2 meta block and, via fm, resolves the header file
// and every value file it names.
func NewV2Reader[T any](metaBuf []byte, fm mapper.FileMapper, c codec.Codec[T], opts ReadOptions) (*V2Reader[T], error) {
	meta, err := container.ParseV2Meta(metaBuf)
	if err != nil {
		return nil, err
	}

	if fm == nil {
		return nil, fmt.Errorf("%w", errs.ErrMissingFileMapper)
	}

	headerWin, err := fm.Open(meta.ColumnName + "_header")
	if err != nil {
		return nil, err
	}

	numFiles := meta.NumValueFiles()
	valueWindows := make([]*window.Window, numFiles)

	for k := int32(0); k < numFiles; k++ {
		w, err := fm.Open(fmt.Sprintf("%s_value_%d", meta.ColumnName, k))
		if err != nil {
			return nil, err
		}

		valueWindows[k] = w
	}

	return &V2Reader[T]{
		codec:        c,
		meta:         meta,
		headerWindow: headerWin,
		valueWindows: valueWindows,
		opts:         opts,
	}, nil
}

// Size returns the dictionary's element count.
func (r *V2Reader[T]) Size() int {
	return int(r.meta.NumElements)
}

// IsSorted reports whether reverse lookup (IndexOf) is available.
func (r *V2Reader[T]) IsSorted() bool {
	return r.meta.ReverseLookupAllowed
}

// Get returns the payload at global index i, or NULL.
func (r *V2Reader[T]) Get(i int) (Value[T], error) {
	if i < 0 || int32(i) >= r.meta.NumElements {
		return Value[T]{}, fmt.Errorf("%w: index %d, size %d", errs.ErrOutOfRangeIndex, i, r.meta.NumElements)
	}

	return r.getAt(int32(i))
}

func (r *V2Reader[T]) getAt(i int32) (Value[T], error) {
	nativeEngine := endian.GetNativeEndianEngine()

	var start int32

	if r.meta.Relative(i) == 0 {
		start = 4
	} else {
		prevEnd, err := r.headerWindow.ReadInt32At(int(i-1)*4, nativeEngine)
		if err != nil {
			return Value[T]{}, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
		}

		start = prevEnd + 4
	}

	end, err := r.headerWindow.ReadInt32At(int(i)*4, nativeEngine)
	if err != nil {
		return Value[T]{}, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
	}

	file := r.valueWindows[r.meta.FileNum(i)]

	return decodeEntry(r.codec, file, start, end, endian.GetBigEndianEngine(), r.opts)
}

// IndexOf performs binary search for v identically to V1Reader.IndexOf; the
// only difference is that Get dispatches across value files.
func (r *V2Reader[T]) IndexOf(v T) (int, error) {
	if !r.meta.ReverseLookupAllowed || !r.codec.CanCompare() {
		return 0, fmt.Errorf("%w", errs.ErrReverseLookupUnsupported)
	}

	idx, err := binarySearch(r.meta.NumElements, r.getAt, func(cur Value[T]) int {
		return compareValue(r.codec, cur, v)
	})
	if err != nil {
		return 0, err
	}

	return int(idx), nil
}

// locate implements entryLocator: V2 dispatches the entry to one of N value
// files via meta.FileNum, reading offsets from the native-endian header file.
func (r *V2Reader[T]) locate(i int32) (fileIndex, start, end int32, engine endian.EndianEngine, err error) {
	nativeEngine := endian.GetNativeEndianEngine()

	if r.meta.Relative(i) == 0 {
		start = 4
	} else {
		prevEnd, rerr := r.headerWindow.ReadInt32At(int(i-1)*4, nativeEngine)
		if rerr != nil {
			return 0, 0, 0, nativeEngine, fmt.Errorf("%w: %v", errs.ErrCorruptData, rerr)
		}

		start = prevEnd + 4
	}

	end, err = r.headerWindow.ReadInt32At(int(i)*4, nativeEngine)
	if err != nil {
		return 0, 0, 0, nativeEngine, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
	}

	return r.meta.FileNum(i), start, end, endian.GetBigEndianEngine(), nil
}

func (r *V2Reader[T]) rawFile(fileIndex int32) *window.Window { return r.valueWindows[fileIndex] }
func (r *V2Reader[T]) numEntries() int32                     { return r.meta.NumElements }
func (r *V2Reader[T]) entryCodec() codec.Codec[T]             { return r.codec }
func (r *V2Reader[T]) readOpts() ReadOptions                  { return r.opts }

// SerializedSize always fails: a V2 reader cannot re-serialize itself.
func (r *V2Reader[T]) SerializedSize() (int, error) {
	return 0, fmt.Errorf("%w: V2 reader cannot report a serialized size", errs.ErrUnsupportedSerialization)
}

// WriteTo always fails: rebuilding a V2 container requires the V2 writer,
// not re-serialization of an existing reader.
func (r *V2Reader[T]) WriteTo(WritableSink) error {
	return fmt.Errorf("%w: V2 reader cannot be re-serialized, use the V2 writer", errs.ErrUnsupportedSerialization)
}
