// Package codec defines the payload codec role the dictionary reads and
// writes through: encode a payload to bytes, decode a byte window back to a
// payload, and, when the payload type has a total order, compare two
// payloads.
//
// A Codec never sees the NULL marker itself — the container format's -1
// length word is handled by the dict package, which only calls Encode for
// non-null payloads and only calls Decode when there is a (possibly
// zero-length) byte run to consume.
package codec

import "github.com/arloliu/dictfile/window"

// Sink is the append-only byte channel a Codec writes encoded payloads into.
// *pool.ByteBuffer satisfies it.
type Sink interface {
	Write(p []byte) (int, error)
}

// Codec encodes, decodes, and optionally orders payloads of type T.
//
// Whether a zero-length, non-null payload should be folded into NULL on read
// (the legacy "replace-with-default" behavior) is a decode-time option owned
// by the dict package's readers, not by Codec: a reader checks its own
// ReplaceEmptyWithNull option against n == 0 before ever calling Decode, so
// Codec implementations stay free of that global-flag concern entirely.
type Codec[T any] interface {
	// Encode writes payload's bytes to sink. The caller has already written
	// the 4-byte length marker; Encode writes only the payload bytes.
	Encode(payload T, sink Sink) error

	// Decode consumes exactly n bytes starting at w's current position and
	// returns the decoded payload. Implementations that return a value
	// aliasing w's backing bytes (zero-copy) must document that the result's
	// lifetime is bound to the window's backing mapping.
	Decode(w *window.Window, n int) (T, error)

	// Compare defines a total order over T. NULL is not a valid input to
	// Compare; callers treat NULL as the order's minimum element themselves.
	Compare(a, b T) int

	// CanCompare reports whether Compare defines a meaningful order for T.
	// A codec over an incomparable payload type returns false here so the
	// dictionary can reject indexOf with errs.ErrReverseLookupUnsupported
	// instead of calling an undefined comparator.
	CanCompare() bool
}

// IdentityByteSlice is an optional capability a Codec can implement to tell
// the single-threaded cursor (dict package) that its T is itself a raw byte
// slice whose encoding is the identity function. When true, indexOf can
// compare undecoded byte windows directly and skip Decode entirely.
type IdentityByteSlice interface {
	IsIdentityByteSlice() bool
}
