// Package dict implements the dictionary readers and writers: the V1
// single-buffer container (C4/C7), the V2 multi-file bag-sharded container
// (C5/C8), and the single-threaded cursor accelerator (C6) shared by both.
package dict

// Value is a decoded dictionary entry: either a non-null Payload or NULL.
// The dictionary's null-marker convention (-1 length word) is resolved into
// this explicit flag before a payload codec is ever consulted, so Codec
// implementations never need to know about NULL themselves.
type Value[T any] struct {
	Payload T
	Null    bool
}

// NullValue returns a Value representing NULL.
func NullValue[T any]() Value[T] {
	return Value[T]{Null: true}
}

// NonNull wraps payload as a non-null Value.
func NonNull[T any](payload T) Value[T] {
	return Value[T]{Payload: payload}
}
