package mapper

import (
	"fmt"

	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/window"
)

// MemoryMapper is a FileMapper backed by in-process byte slices instead of
// mmap'd files. It is used by tests that want to exercise the container and
// dict packages without touching the filesystem, and by callers that have
// already loaded a dictionary's bytes into memory.
type MemoryMapper struct {
	files map[string][]byte
}

// NewMemoryMapper returns a MemoryMapper with no files registered.
func NewMemoryMapper() *MemoryMapper {
	return &MemoryMapper{files: make(map[string][]byte)}
}

var _ FileMapper = (*MemoryMapper)(nil)

// Put registers data under name, overwriting any previous registration.
func (m *MemoryMapper) Put(name string, data []byte) {
	m.files[name] = data
}

// Open returns a window over the bytes previously registered under name.
func (m *MemoryMapper) Open(name string) (*window.Window, error) {
	data, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not registered", errs.ErrFileMappingFailure, name)
	}

	return window.New(data), nil
}

// Close is a no-op: MemoryMapper holds no external resources.
func (m *MemoryMapper) Close() error {
	return nil
}
