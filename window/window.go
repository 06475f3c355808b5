// Package window provides a read-only view over a contiguous byte region with
// independent position/limit cursors, modeled after java.nio.ByteBuffer's
// duplicate/slice semantics but restricted to the read-only subset the
// dictionary formats need.
//
// A Window never owns the bytes it views: it is always backed by a slice
// supplied by a caller (typically mmap'd memory handed out by a
// mapper.FileMapper).
// Duplicating a Window shares the backing bytes but gives the copy its own
// position and limit; slicing produces a fresh Window over a sub-region.
package window

import (
	"bytes"
	"fmt"

	"github.com/arloliu/dictfile/endian"
)

// Window is a (base, position, limit) triple over an immutable byte region.
// 0 <= position <= limit <= len(base) holds at all times.
type Window struct {
	base     []byte
	position int
	limit    int
}

// New wraps data in a Window with position 0 and limit len(data).
func New(data []byte) *Window {
	return &Window{base: data, position: 0, limit: len(data)}
}

// Len returns the window's capacity, i.e. len(base).
func (w *Window) Len() int {
	return len(w.base)
}

// Position returns the current read cursor.
func (w *Window) Position() int {
	return w.position
}

// Limit returns the current limit.
func (w *Window) Limit() int {
	return w.limit
}

// Remaining returns limit - position.
func (w *Window) Remaining() int {
	return w.limit - w.position
}

// SetPosition moves the read cursor. It panics if pos is out of [0, limit].
func (w *Window) SetPosition(pos int) {
	if pos < 0 || pos > w.limit {
		panic(fmt.Sprintf("window: position %d out of [0, %d]", pos, w.limit))
	}
	w.position = pos
}

// SetLimit moves the limit. It panics if limit is out of [position, capacity].
func (w *Window) SetLimit(limit int) {
	if limit < w.position || limit > len(w.base) {
		panic(fmt.Sprintf("window: limit %d out of [%d, %d]", limit, w.position, len(w.base)))
	}
	w.limit = limit
}

// Duplicate returns a new Window sharing the same backing bytes but with its
// own independent position and limit, initialized to this window's current
// position and limit.
func (w *Window) Duplicate() *Window {
	return &Window{base: w.base, position: w.position, limit: w.limit}
}

// Slice returns a fresh Window over base[start:end], with position 0 and
// limit end-start. The returned window shares bytes with w; it does not copy.
func (w *Window) Slice(start, end int) (*Window, error) {
	if start < 0 || end < start || end > len(w.base) {
		return nil, fmt.Errorf("window: slice [%d:%d) out of [0, %d)", start, end, len(w.base))
	}

	return &Window{base: w.base[start:end], position: 0, limit: end - start}, nil
}

// Bytes returns the window's bytes between position and limit without
// copying. The returned slice aliases the backing array and must not be
// retained past the lifetime of the underlying mapping.
func (w *Window) Bytes() []byte {
	return w.base[w.position:w.limit]
}

// ReadBytes returns a zero-copy slice of the next n bytes starting at the
// current position and advances the position past them. It fails if fewer
// than n bytes remain before the limit.
func (w *Window) ReadBytes(n int) ([]byte, error) {
	if n < 0 || w.position+n > w.limit {
		return nil, fmt.Errorf("window: read %d bytes at position %d exceeds limit %d", n, w.position, w.limit)
	}

	b := w.base[w.position : w.position+n]
	w.position += n

	return b, nil
}

// BytesAt returns a zero-copy slice of base[start:end], ignoring position
// and limit entirely. It is used by callers that already know an entry's
// absolute bounds and want to avoid the allocation of a fresh Duplicate just
// to narrow position/limit before reading.
func (w *Window) BytesAt(start, end int) ([]byte, error) {
	if start < 0 || end < start || end > len(w.base) {
		return nil, fmt.Errorf("window: range [%d:%d) out of [0, %d)", start, end, len(w.base))
	}

	return w.base[start:end], nil
}

// ReadInt32At reads a big- or native-endian (per engine) signed 32-bit
// integer at the given absolute offset, without touching position or limit.
func (w *Window) ReadInt32At(offset int, engine endian.EndianEngine) (int32, error) {
	if offset < 0 || offset+4 > len(w.base) {
		return 0, fmt.Errorf("window: int32 read at %d out of [0, %d)", offset, len(w.base))
	}

	return int32(engine.Uint32(w.base[offset : offset+4])), nil
}

// Compare performs a byte-wise lexicographic comparison of two windows'
// Bytes(), returning <0, 0, or >0 as a does a<b, a==b, a>b.
//
// For well-formed UTF-8 this ordering is equivalent to comparing the decoded
// Unicode code point sequences. It agrees with the ordering of the UTF-16
// code unit sequences except where a character above U+FFFF is compared with
// one in U+E000-U+FFFF: UTF-16 orders the supplementary character (encoded
// as a surrogate pair, U+D800-U+DFFF) first, this comparison orders it last.
func Compare(a, b *Window) int {
	return bytes.Compare(a.Bytes(), b.Bytes())
}
