package dict

import "github.com/arloliu/dictfile/codec"

// WritableSink is the append-only byte channel writers serialize a
// dictionary into (a file, a growable in-memory buffer, ...). It is
// structurally identical to codec.Sink; the alias keeps both packages'
// call sites self-documenting about which role a parameter plays.
type WritableSink = codec.Sink
