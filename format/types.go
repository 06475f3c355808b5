// Package format defines the small value types shared by the compress
// package and its callers: the compression tag that compress.GetCodec and
// compress.CreateCodec map to a backend. The tag is not stored in a V1
// header or a V2 meta block.
package format

// CompressionType identifies the block compression algorithm applied to a
// dictionary's value payloads, independent of the container version or the
// value codec used to encode individual values.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
