// Package compress provides compression and decompression codecs for dictionary
// value blocks.
//
// Compression in dictfile is orthogonal to the dictionary's own layout: it is
// applied per-entry, after the value codec has produced the raw bytes to store
// and before those bytes are written into the container, so the offset table
// and positional lookup semantics of the dictionary are unaffected by whichever
// algorithm is chosen.
//
// # Overview
//
// The compress package supports multiple general-purpose algorithms:
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - Values are already small or incompressible
//   - CPU is more critical than storage
//   - Random-access latency must stay minimal
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent (typically 3-5x on text-heavy values)
//   - Speed: Moderate (compression: ~400 MB/s, decompression: ~1000 MB/s)
//   - Memory: ~2-4 MB for compression, ~1-2 MB for decompression
//
// Best for dictionaries built once and read many times, where storage cost or
// network transfer size dominates.
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good (typically 1.5-2.5x)
//   - Speed: Fast (compression: ~1000 MB/s, decompression: ~2000 MB/s)
//   - Memory: ~256KB for compression, ~64KB for decompression
//
// Best for dictionaries rebuilt frequently, where build latency matters as
// much as final size.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate (typically 1.3-2x)
//   - Speed: Very fast decompression (~3000 MB/s), moderate compression (~800 MB/s)
//   - Memory: ~64KB for compression, ~16KB for decompression
//
// Best for read-heavy lookup workloads where decompression sits on the hot
// path of every positional get or reverse lookup.
//
// # Algorithm Selection Guide
//
// | Workload                | Recommended | Reason                         |
// |--------------------------|-------------|---------------------------------|
// | Storage-constrained      | Zstd        | Best compression ratio          |
// | Frequent rebuilds        | S2          | Balanced speed and compression  |
// | Lookup-heavy             | LZ4         | Fastest decompression           |
// | CPU-constrained          | None        | No compression overhead         |
// | Cold archival dictionary | Zstd        | Maximize space savings          |
//
// # Memory Management
//
// Every Compress and Decompress call returns a freshly allocated slice, except
// NoOpCompressor, which returns its input slice unchanged:
//   - Zstd reuses pooled encoders and decoders; output slices are not pooled
//   - LZ4 reuses pooled block compressors; Decompress starts with a buffer 4x
//     the compressed size and doubles it (up to 128MB) until the block fits
//   - S2 uses no pools
//
// # Thread Safety
//
// All codec implementations are safe to share across goroutines. The dictionary
// reader (dict package) holds one Codec per container and calls Decompress from
// whichever goroutine performs the lookup; callers needing a dedicated cursor
// per goroutine should use the dict package's single-threaded cursor instead.
//
// # Error Handling
//
// Decompress returns an error for data that is not a valid block of its
// algorithm. Zstd wraps the library error with context; LZ4 and S2 return the
// library error as is. None of them wrap errs.ErrCorruptData;
// codec.CompressedCodec adds a "codec: decompress entry" prefix.
//
// # Integration
//
// The codec package's CompressedCodec wraps a value Codec with a
// Compressor/Decompressor pair, so a single dictionary build can choose its
// compression algorithm independently from its value encoding:
//
//	valueCodec := codec.BytesCodec{}
//	blockCodec := compress.NewZstdCompressor()
//	compressed := codec.NewCompressedCodec[[]byte](valueCodec, blockCodec)
//	w := dict.NewV1Writer[[]byte](compressed)
//
// # Advanced Usage
//
// For custom compression needs, implement the Compressor/Decompressor interfaces:
//
//	type MyCodec struct{}
//
//	func (c *MyCodec) Compress(data []byte) ([]byte, error) {
//	    // Custom compression logic
//	    return compressedData, nil
//	}
//
//	func (c *MyCodec) Decompress(data []byte) ([]byte, error) {
//	    // Custom decompression logic
//	    return originalData, nil
//	}
package compress
