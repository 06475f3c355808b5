package mapper

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arloliu/dictfile/codec"
)

// DirSink creates plain files under a base directory. It is the write-side
// counterpart to MmapFileMapper: a V2 writer uses a DirSink to emit its
// header and value files, and a FileMapper rooted at the same directory
// reads them back.
type DirSink struct {
	baseDir string
}

// NewDirSink creates a DirSink rooted at baseDir. baseDir must already exist.
func NewDirSink(baseDir string) *DirSink {
	return &DirSink{baseDir: baseDir}
}

// Create opens baseDir/name for writing, truncating any existing contents.
// The returned value is a *os.File wrapped as a codec.Sink; callers that
// need to close the file can still recover it with a type assertion to
// io.Closer.
func (s *DirSink) Create(name string) (codec.Sink, error) {
	f, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return nil, fmt.Errorf("mapper: create %s: %w", name, err)
	}

	return f, nil
}
