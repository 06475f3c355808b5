package dict

import "github.com/arloliu/dictfile/internal/pool"

// stringReader is implemented by *V1Reader[string] and *V2Reader[string].
type stringReader interface {
	Size() int
	Get(i int) (Value[string], error)
}

// MaterializeStrings decodes every entry of r into a single pooled []string,
// for callers that need a plain columnar slice (e.g. handing a whole
// dictionary to a row-to-column conversion) rather than positional Get
// calls. NULL entries are materialized as "".
//
// The returned cleanup function must be called once the slice is no longer
// needed; it returns the backing array to the pool. The slice must not be
// retained past that call.
func MaterializeStrings(r stringReader) ([]string, func(), error) {
	n := r.Size()

	out, cleanup := pool.GetStringSlice(n)
	for i := 0; i < n; i++ {
		v, err := r.Get(i)
		if err != nil {
			cleanup()

			return nil, nil, err
		}

		out[i] = v.Payload
	}

	return out, cleanup, nil
}
