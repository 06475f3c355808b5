package mapper

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/arloliu/dictfile/errs"
	"github.com/arloliu/dictfile/internal/options"
	"github.com/arloliu/dictfile/window"
)

// MmapFileMapper resolves logical file names under a base directory to
// mmap'd, read-only byte windows via golang.org/x/sys/unix. It is safe for
// concurrent Open calls: a single mapped file may back several
// independently-constructed V2 readers sharing the same column's value
// files, so opens are serialized through an internal mutex and the
// underlying mapping is reused across callers rather than mapped twice.
type MmapFileMapper struct {
	baseDir string
	advise  bool

	mu   sync.Mutex
	open map[string]*mappedFile
}

type mappedFile struct {
	f    *os.File
	data []byte
}

// MmapOption configures a MmapFileMapper at construction time.
type MmapOption = options.Option[*mmapConfig]

type mmapConfig struct {
	advise bool
}

// WithMadviseRandom hints the kernel that value-file accesses are random,
// matching the dictionary's indexOf/get access pattern rather than a
// sequential scan.
func WithMadviseRandom() MmapOption {
	return options.NoError(func(c *mmapConfig) {
		c.advise = true
	})
}

// NewMmapFileMapper creates a FileMapper rooted at baseDir.
func NewMmapFileMapper(baseDir string, opts ...MmapOption) (*MmapFileMapper, error) {
	cfg := &mmapConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &MmapFileMapper{
		baseDir: baseDir,
		advise:  cfg.advise,
		open:    make(map[string]*mappedFile),
	}, nil
}

var _ FileMapper = (*MmapFileMapper)(nil)

// Open resolves name to baseDir/name, opens it read-only, and mmaps its
// entire contents MAP_SHARED. A zero-length file maps to an empty window
// without issuing mmap, since mmap of a zero-length region is invalid.
func (m *MmapFileMapper) Open(name string) (*window.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mf, ok := m.open[name]; ok {
		return window.New(mf.data), nil
	}

	path := filepath.Join(m.baseDir, name)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrFileMappingFailure, name, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: %s: %v", errs.ErrFileMappingFailure, name, err)
	}

	size := info.Size()
	if size == 0 {
		m.open[name] = &mappedFile{f: f, data: nil}

		return window.New(nil), nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("%w: %s: mmap: %v", errs.ErrFileMappingFailure, name, err)
	}

	if m.advise {
		_ = unix.Madvise(data, unix.MADV_RANDOM)
	}

	m.open[name] = &mappedFile{f: f, data: data}

	return window.New(data), nil
}

// Close unmaps and closes every file this mapper has opened.
func (m *MmapFileMapper) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var firstErr error

	for name, mf := range m.open {
		if mf.data != nil {
			if err := unix.Munmap(mf.data); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("%w: unmap %s: %v", errs.ErrFileMappingFailure, name, err)
			}
		}

		if err := mf.f.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%w: close %s: %v", errs.ErrFileMappingFailure, name, err)
		}

		delete(m.open, name)
	}

	return firstErr
}
