package dict

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/container"
	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/internal/options"
	"github.com/arloliu/dictfile/internal/pool"
)

// v2MinExp and v2MaxExp bound the power-of-two bag size a V2Writer may pick
// for Exp, matching container.V2Meta's documented range.
const (
	v2MinExp = 1
	v2MaxExp = 30
)

// DefaultTargetPageSize is the byte size at which a V2Writer rotates to a
// new value file, absent a WithTargetPageSize override.
const DefaultTargetPageSize = 1 << 20 // 1 MiB

// V2WriterOption configures a V2Writer at construction time.
type V2WriterOption = options.Option[*v2WriterConfig]

type v2WriterConfig struct {
	targetPageSize int
	exp            int32
}

// WithTargetPageSize overrides the byte size at which a value file rotates.
// It is advisory, not an exact bound: see V2Writer's doc comment.
func WithTargetPageSize(n int) V2WriterOption {
	return options.NoError(func(c *v2WriterConfig) { c.targetPageSize = n })
}

// WithExp fixes the bag-size exponent up front instead of letting the
// writer infer it from targetPageSize or the final element count. Useful
// when a caller wants every value file (across multiple columns, say) to
// share the same bag size regardless of each column's actual byte density.
func WithExp(exp int32) V2WriterOption {
	return options.NoError(func(c *v2WriterConfig) { c.exp = exp })
}

// V2Writer streams payloads into N value files, each holding up to 2^Exp
// entries (§4.3's V2 layout). Unless WithExp fixes Exp up front, the writer
// starts with an unbounded first file and, once its accumulated size reaches
// targetPageSize, fixes Exp from the element count reached at that point
// and rotates to a fresh file every time a file reaches exactly 2^Exp
// entries from then on. A dictionary small enough never to reach
// targetPageSize gets Exp decided at Finalize instead, from its total count.
type V2Writer[T any] struct {
	codec          codec.Codec[T]
	sink           MultiFileSink
	columnName     string
	targetPageSize int

	headerOut *pool.ByteBuffer // native-endian int32 end-offsets, one per element, across all files
	curFile   *pool.ByteBuffer // current value file's bytes, not yet handed to sink
	fileCount int32            // entries written into curFile so far
	fileIndex int32            // index of curFile, and of the next file to create

	exp   int32 // 0 until decided
	count int32

	allowReverseLookup bool
	havePrev           bool
	prevNull           bool
	prevVal            T
}

// NewV2Writer creates an empty V2Writer for column columnName, writing
// through sink. By default the writer infers its bag-size exponent from
// DefaultTargetPageSize; pass WithTargetPageSize or WithExp to override.
func NewV2Writer[T any](c codec.Codec[T], sink MultiFileSink, columnName string, opts ...V2WriterOption) (*V2Writer[T], error) {
	cfg := &v2WriterConfig{targetPageSize: DefaultTargetPageSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.exp != 0 && (cfg.exp < v2MinExp || cfg.exp > v2MaxExp) {
		return nil, fmt.Errorf("%w: V2 writer exp override %d out of [%d, %d]", errs.ErrCorruptData, cfg.exp, v2MinExp, v2MaxExp)
	}

	return &V2Writer[T]{
		codec:              c,
		sink:               sink,
		columnName:         columnName,
		targetPageSize:     cfg.targetPageSize,
		exp:                cfg.exp,
		headerOut:          pool.NewByteBuffer(pool.BlobBufferDefaultSize),
		curFile:            pool.NewByteBuffer(pool.BlobBufferDefaultSize),
		allowReverseLookup: c.CanCompare(),
	}, nil
}

// Append writes one payload (or NULL) to the stream, rotating to a new
// value file once the current one is full.
func (w *V2Writer[T]) Append(v Value[T]) error {
	if v.Null {
		writeBigEndianInt32(w.curFile, lengthMarkerNull)
	} else {
		writeBigEndianInt32(w.curFile, lengthMarkerNonNull)

		if err := w.codec.Encode(v.Payload, w.curFile); err != nil {
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

	w.fileCount++
	w.count++

	writeNativeEndianInt32(w.headerOut, int32(w.curFile.Len()))

	if w.exp == 0 && w.curFile.Len() >= w.targetPageSize {
		w.exp = expFor(w.fileCount)
	}

	if w.exp != 0 && w.fileCount >= bagSizeForExp(w.exp) {
		return w.rotate()
	}

	return nil
}

// rotate hands the current value file's bytes to the sink and resets the
// per-file accumulator for the next one.
func (w *V2Writer[T]) rotate() error {
	sink, err := w.sink.Create(fmt.Sprintf("%s_value_%d", w.columnName, w.fileIndex))
	if err != nil {
		return err
	}

	if _, err := sink.Write(w.curFile.Bytes()); err != nil {
		return err
	}

	if closer, ok := sink.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return err
		}
	}

	w.fileIndex++
	w.curFile.Reset()
	w.fileCount = 0

	return nil
}

// Finalize flushes any partial last value file, decides Exp if it was never
// fixed during streaming, and writes the meta block and header file through
// sink. It returns the meta block bytes, which the caller stores as the
// column's V2 descriptor (see container.V2Meta).
func (w *V2Writer[T]) Finalize() ([]byte, error) {
	if w.exp == 0 {
		w.exp = expFor(w.count)
	}

	if w.fileCount > 0 {
		if err := w.rotate(); err != nil {
			return nil, err
		}
	}

	headerSink, err := w.sink.Create(w.columnName + "_header")
	if err != nil {
		return nil, err
	}

	if _, err := headerSink.Write(w.headerOut.Bytes()); err != nil {
		return nil, err
	}

	if closer, ok := headerSink.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return nil, err
		}
	}

	meta := container.V2Meta{
		ReverseLookupAllowed: w.allowReverseLookup,
		Exp:                  w.exp,
		NumElements:          w.count,
		ColumnName:           w.columnName,
	}

	return meta.Bytes(), nil
}

// writeNativeEndianInt32 appends v to buf as a native-endian 4-byte word,
// the encoding of the V2 header file's end offsets (§4.3). Value-file length
// markers are big-endian (writeBigEndianInt32).
func writeNativeEndianInt32(buf *pool.ByteBuffer, v int32) {
	var tmp [4]byte
	endian.GetNativeEndianEngine().PutUint32(tmp[:], uint32(v))
	buf.MustWrite(tmp[:])
}

// expFor returns the smallest exp in [v2MinExp, v2MaxExp] such that
// 2^exp >= n, i.e. ceil(log2(n)) clamped to the valid range.
func expFor(n int32) int32 {
	if n <= 2 {
		return v2MinExp
	}

	exp := int32(bits.Len32(uint32(n - 1)))

	switch {
	case exp < v2MinExp:
		return v2MinExp
	case exp > v2MaxExp:
		return v2MaxExp
	default:
		return exp
	}
}

// bagSizeForExp returns 2^exp.
func bagSizeForExp(exp int32) int32 {
	return 1 << uint(exp)
}
