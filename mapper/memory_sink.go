package mapper

import (
	"bytes"

	"github.com/arloliu/dictfile/codec"
)

// MemorySink is an in-memory MultiFileSink implementation (see
// dict.MultiFileSink) used by tests and by callers building a dictionary
// that will be handed off in-process, without ever touching the filesystem.
type MemorySink struct {
	files map[string]*bytes.Buffer
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string]*bytes.Buffer)}
}

// Create returns a fresh in-memory buffer registered under name. Calling
// Create again with the same name replaces the earlier buffer, so its bytes
// are no longer returned by Files, matching os.Create's truncate-on-create
// semantics.
func (s *MemorySink) Create(name string) (codec.Sink, error) {
	buf := new(bytes.Buffer)
	s.files[name] = buf

	return buf, nil
}

// Files returns every name written so far, each mapped to its accumulated
// bytes. The returned slices alias the sink's internal buffers.
func (s *MemorySink) Files() map[string][]byte {
	out := make(map[string][]byte, len(s.files))
	for name, buf := range s.files {
		out[name] = buf.Bytes()
	}

	return out
}
