// Package dictfile provides a high-performance, space-efficient binary
// format for storing sorted or unsorted dictionaries of string/byte-slice
// payloads, with zero-copy positional access and optional binary-search
// reverse lookup.
//
// dictfile targets scenarios where a large columnar dataset needs to
// de-duplicate a string-valued column into a compact, memory-mappable
// dictionary: category labels, tag values, enum-like text columns. Two
// on-disk layouts are supported:
//
//   - V1: a single buffer, best for dictionaries small enough to load or
//     map as one contiguous region.
//   - V2: a bag-sharded set of files (one header file plus N value files),
//     best for dictionaries too large to map as a single region, or where
//     a storage engine wants to address pages of fixed size.
//
// # Basic Usage
//
// Building a sorted V1 string dictionary and looking values up by value:
//
//	import "github.com/arloliu/dictfile"
//
//	w := dictfile.NewStringWriter()
//	w.Append(dictfile.NonNullString("apple"))
//	w.Append(dictfile.NonNullString("banana"))
//	w.Append(dictfile.NonNullString("cherry"))
//
//	r, err := w.Finalize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	idx, err := r.IndexOf("banana") // 1
//
// Reading a value back by position:
//
//	v, err := r.Get(0) // dict.Value[string]{Payload: "apple"}
//
// # Package Structure
//
// This package is a thin convenience layer over window, codec, container,
// mapper, and dict. Use those packages directly for compressed entries
// (codec.CompressedCodec), custom payload types, or fine-grained control
// over V2's value-file sharding.
package dictfile

import (
	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/compress"
	"github.com/arloliu/dictfile/dict"
	"github.com/arloliu/dictfile/format"
	"github.com/arloliu/dictfile/mapper"
)

// NonNullString wraps s as a non-null dict.Value[string].
func NonNullString(s string) dict.Value[string] { return dict.NonNull(s) }

// NullString returns a dict.Value[string] representing NULL.
func NullString() dict.Value[string] { return dict.NullValue[string]() }

// NonNullBytes wraps b as a non-null dict.Value[[]byte].
func NonNullBytes(b []byte) dict.Value[[]byte] { return dict.NonNull(b) }

// NullBytes returns a dict.Value[[]byte] representing NULL.
func NullBytes() dict.Value[[]byte] { return dict.NullValue[[]byte]() }

// NewStringWriter creates a V1 writer over the UTF-8 string codec.
func NewStringWriter() *dict.V1Writer[string] {
	return dict.NewV1Writer[string](codec.StringCodec{})
}

// NewBytesWriter creates a V1 writer over the identity byte-slice codec,
// enabling the cursor's raw-bytes binary-search fast path.
func NewBytesWriter() *dict.V1Writer[[]byte] {
	return dict.NewV1Writer[[]byte](codec.BytesCodec{})
}

// NewCompressedStringWriter creates a V1 writer whose entries are
// independently compressed with the algorithm identified by compression
// (format.CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4),
// looked up through compress.GetCodec.
func NewCompressedStringWriter(compression format.CompressionType) (*dict.V1Writer[string], error) {
	backend, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	return dict.NewV1Writer[string](codec.NewCompressedCodec[string](codec.StringCodec{}, backend)), nil
}

// OpenStringV1 parses a complete V1 container buffer as a string dictionary.
func OpenStringV1(buf []byte) (*dict.V1Reader[string], error) {
	return dict.NewV1Reader(buf, codec.StringCodec{}, dict.ReadOptions{})
}

// OpenBytesV1 parses a complete V1 container buffer as a byte-slice
// dictionary.
func OpenBytesV1(buf []byte) (*dict.V1Reader[[]byte], error) {
	return dict.NewV1Reader(buf, codec.BytesCodec{}, dict.ReadOptions{})
}

// NewStringV2Writer creates a V2 writer for columnName, streaming its output
// through sink. opts follows dict.NewV2Writer (dict.WithTargetPageSize,
// dict.WithExp); with no options the writer uses dict.DefaultTargetPageSize.
func NewStringV2Writer(sink dict.MultiFileSink, columnName string, opts ...dict.V2WriterOption) (*dict.V2Writer[string], error) {
	return dict.NewV2Writer[string](codec.StringCodec{}, sink, columnName, opts...)
}

// NewBytesV2Writer creates a V2 writer over the identity byte-slice codec.
func NewBytesV2Writer(sink dict.MultiFileSink, columnName string, opts ...dict.V2WriterOption) (*dict.V2Writer[[]byte], error) {
	return dict.NewV2Writer[[]byte](codec.BytesCodec{}, sink, columnName, opts...)
}

// OpenStringV2 parses a V2 meta block and resolves its header and value
// files through fm.
func OpenStringV2(metaBuf []byte, fm mapper.FileMapper) (*dict.V2Reader[string], error) {
	return dict.NewV2Reader[string](metaBuf, fm, codec.StringCodec{}, dict.ReadOptions{})
}

// OpenBytesV2 parses a V2 meta block as a byte-slice dictionary.
func OpenBytesV2(metaBuf []byte, fm mapper.FileMapper) (*dict.V2Reader[[]byte], error) {
	return dict.NewV2Reader[[]byte](metaBuf, fm, codec.BytesCodec{}, dict.ReadOptions{})
}

// OpenDir creates a mapper.MmapFileMapper rooted at dir, for resolving a V2
// dictionary's header and value files from the filesystem via mmap.
func OpenDir(dir string, opts ...mapper.MmapOption) (*mapper.MmapFileMapper, error) {
	return mapper.NewMmapFileMapper(dir, opts...)
}

// NewDirSink creates a mapper.DirSink rooted at dir, for writing a V2
// dictionary's header and value files to the filesystem.
func NewDirSink(dir string) *mapper.DirSink {
	return mapper.NewDirSink(dir)
}
