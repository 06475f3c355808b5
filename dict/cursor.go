package dict

import (
	"bytes"
	"fmt"

	"github.com/arloliu/dictfile/codec"
	"github.com/arloliu/dictfile/endian"
	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/window"
)

// entryLocator is implemented by *V1Reader[T] and *V2Reader[T]. It exposes
// just enough to let Cursor reuse one duplicated window per value file
// instead of allocating a fresh duplicate on every call, the way the
// concurrency-safe readers do.
type entryLocator[T any] interface {
	locate(i int32) (fileIndex, start, end int32, engine endian.EndianEngine, err error)
	rawFile(fileIndex int32) *window.Window
	numEntries() int32
	entryCodec() codec.Codec[T]
	readOpts() ReadOptions
	IsSorted() bool
}

// Cursor is a non-thread-safe accelerator over a V1Reader or V2Reader. It
// keeps one duplicated window per backing value file, built on first use,
// and hands it to every Get/IndexOf call. The raw-bytes IndexOf path reads
// entries straight from that window without allocating; Get and the general
// IndexOf path decode through decodeEntry, which still takes a fresh
// duplicate of the window for every entry it decodes.
//
// Contract: the Value returned by the most recent Get or matched by the
// most recent IndexOf — and any payload that borrows from it, notably a
// codec.IdentityByteSlice payload — is only valid until the next call to any
// method on this Cursor. Callers that need to retain it must copy first.
type Cursor[T any] struct {
	src     entryLocator[T]
	cursors []*window.Window // one reused duplicate per value file, lazily built
	lastN   int
}

// NewCursor wraps src (a *V1Reader[T] or *V2Reader[T]) in a single-threaded
// cursor. src must outlive the Cursor.
func NewCursor[T any](src entryLocator[T]) *Cursor[T] {
	return &Cursor[T]{src: src}
}

func (c *Cursor[T]) cursorFor(fileIndex int32) *window.Window {
	if c.cursors == nil {
		// Value files are opened lazily as they are first touched; most
		// single-threaded scans only ever visit one or two of them.
		c.cursors = make([]*window.Window, fileIndex+1)
	} else if int(fileIndex) >= len(c.cursors) {
		grown := make([]*window.Window, fileIndex+1)
		copy(grown, c.cursors)
		c.cursors = grown
	}

	if c.cursors[fileIndex] == nil {
		c.cursors[fileIndex] = c.src.rawFile(fileIndex).Duplicate()
	}

	return c.cursors[fileIndex]
}

// Get returns the payload at index i, reusing this cursor's per-file window.
// The result is only valid until the next call to any Cursor method.
func (c *Cursor[T]) Get(i int) (Value[T], error) {
	n := c.src.numEntries()
	if i < 0 || int32(i) >= n {
		return Value[T]{}, fmt.Errorf("%w: index %d, size %d", errs.ErrOutOfRangeIndex, i, n)
	}

	fileIndex, start, end, engine, err := c.src.locate(int32(i))
	if err != nil {
		return Value[T]{}, err
	}

	cursor := c.cursorFor(fileIndex)
	c.lastN = int(end - start)

	return decodeEntry(c.src.entryCodec(), cursor, start, end, engine, c.src.readOpts())
}

// GetLastValueSize returns the byte length of the most recent Get or
// IndexOf-matched entry, without re-reading the offset table.
func (c *Cursor[T]) GetLastValueSize() int {
	return c.lastN
}

// IndexOf performs the same binary search as the owning reader's IndexOf,
// but through this cursor's reused windows. When the bound codec is the
// identity byte-slice codec (codec.IdentityByteSlice), comparison happens
// directly on the undecoded window bytes via bytes.Compare (the order
// window.Compare defines), skipping
// Decode entirely — the hot path for ingested raw-byte binary search.
func (c *Cursor[T]) IndexOf(v T) (int, error) {
	return c.indexOf(v)
}

func (c *Cursor[T]) indexOf(v T) (int, error) {
	n := c.src.numEntries()
	codecRef := c.src.entryCodec()

	if !c.src.IsSorted() || !codecRef.CanCompare() {
		return 0, fmt.Errorf("%w", errs.ErrReverseLookupUnsupported)
	}

	if fastCodec, ok := any(codecRef).(codec.IdentityByteSlice); ok && fastCodec.IsIdentityByteSlice() {
		if target, ok := any(v).([]byte); ok {
			idx, err := c.indexOfRawBytes(n, target)
			if err != nil {
				return 0, err
			}

			return int(idx), nil
		}
	}

	idx, err := binarySearch(n, func(i int32) (Value[T], error) {
		fileIndex, start, end, engine, err := c.src.locate(i)
		if err != nil {
			return Value[T]{}, err
		}

		cursor := c.cursorFor(fileIndex)
		c.lastN = int(end - start)

		return decodeEntry(codecRef, cursor, start, end, engine, c.src.readOpts())
	}, func(cur Value[T]) int {
		return compareValue(codecRef, cur, v)
	})
	if err != nil {
		return 0, err
	}

	return int(idx), nil
}

// rawEntry is the undecoded view of one entry used by indexOfRawBytes: a
// nil-but-null-marked entry, or the entry's raw bytes aliasing the cursor's
// backing window.
type rawEntry struct {
	bytes []byte
	null  bool
}

// indexOfRawBytes is the raw-bytes binary search specialization (§4.6): it
// compares target against each candidate entry's undecoded bytes directly,
// via window.Compare-equivalent byte comparison, never calling Decode and
// therefore never allocating a decoded payload.
func (c *Cursor[T]) indexOfRawBytes(n int32, target []byte) (int32, error) {
	return binarySearch(n, func(i int32) (rawEntry, error) {
		fileIndex, start, end, engine, err := c.src.locate(i)
		if err != nil {
			return rawEntry{}, err
		}

		cursor := c.cursorFor(fileIndex)
		c.lastN = int(end - start)

		marker, err := cursor.ReadInt32At(int(start-4), engine)
		if err != nil {
			return rawEntry{}, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
		}

		if marker == lengthMarkerNull {
			return rawEntry{null: true}, nil
		}

		raw, err := cursor.BytesAt(int(start), int(end))
		if err != nil {
			return rawEntry{}, fmt.Errorf("%w: %v", errs.ErrCorruptData, err)
		}

		return rawEntry{bytes: raw}, nil
	}, func(cur rawEntry) int {
		if cur.null {
			return -1
		}

		return bytes.Compare(cur.bytes, target)
	})
}
