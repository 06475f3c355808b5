// Package container implements the on-disk header and meta-block formats of
// the two dictionary container versions: V1 (a single self-contained buffer)
// and V2 (a header file plus N value files sharded by a power-of-two bag
// size). It is deliberately ignorant of payload codecs and byte windows; it
// only knows how to serialize and parse the fixed-layout fields that
// precede a dictionary's payload bytes.
package container

import (
	"fmt"

	"github.com/arloliu/dictfile/errs"
)

// Version identifies a dictionary container's on-disk layout.
type Version byte

const (
	// VersionReserved is never a valid container version. It is reserved for
	// an unrelated encoded-string-dictionary format and must be rejected.
	VersionReserved Version = 0x00

	// Version1 is the single-buffer container (§4.3 V1 layout).
	Version1 Version = 0x01

	// Version2 is the multi-file, bag-sharded container (§4.3 V2 layout).
	// Its meta block and value files are big-endian, but its header file of
	// per-entry end offsets is written in the host's native byte order, so a
	// V2 container is not portable between hosts of different endianness.
	Version2 Version = 0x02
)

func (v Version) String() string {
	switch v {
	case Version1:
		return "V1"
	case Version2:
		return "V2"
	default:
		return fmt.Sprintf("Version(0x%02x)", byte(v))
	}
}

// PeekVersion reads the single version byte at data[0] and validates it.
// It does not consume from a window; callers read byte 0 themselves and
// pass it here to get a validated Version or errs.ErrUnknownVersion.
func PeekVersion(b byte) (Version, error) {
	switch Version(b) {
	case Version1:
		return Version1, nil
	case Version2:
		return Version2, nil
	default:
		return VersionReserved, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownVersion, b)
	}
}
