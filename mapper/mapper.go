// Package mapper resolves a dictionary's logical file names (a V1 blob, or a
// V2 container's header and value files) to read-only byte windows. The
// production implementation backs those windows with mmap'd memory; a
// plain in-memory implementation is provided for tests and for callers that
// already hold their dictionary bytes in memory.
package mapper

import "github.com/arloliu/dictfile/window"

// FileMapper resolves a logical file name to a read-only byte window whose
// limit equals the file's full capacity. It is the dictionary's only
// collaborator for turning names into bytes — the reader packages never
// open files themselves.
type FileMapper interface {
	// Open returns a window over name's full contents. Implementations may
	// cache the underlying mapping and return duplicates of the same window
	// on repeated Open calls for the same name.
	Open(name string) (*window.Window, error)

	// Close releases all mappings this FileMapper has opened. After Close,
	// windows previously returned by Open must not be dereferenced.
	Close() error
}
