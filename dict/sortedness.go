package dict

import "github.com/arloliu/dictfile/codec"

// compareNullable orders two nullable payloads with NULL as the minimum
// element, matching compareValue's nulls-first convention but for two
// values that may both be absent (used by the writers' sortedness check,
// where either the previous or the current element may be NULL).
func compareNullable[T any](c codec.Codec[T], prevNull bool, prev T, curNull bool, cur T) int {
	switch {
	case prevNull && curNull:
		return 0
	case prevNull:
		return -1
	case curNull:
		return 1
	default:
		return c.Compare(prev, cur)
	}
}
