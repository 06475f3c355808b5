package dict

// binarySearch implements the java.util.Arrays.binarySearch contract: get(i)
// must return a non-decreasing sequence under compare. On a hit it returns
// the (a, possibly non-unique) matching index; on a miss it returns
// -(insertionPoint+1), where insertionPoint is where v would be inserted to
// keep the sequence non-decreasing.
//
// mid is computed as an unsigned right shift of lo+hi, matching the Java
// idiom that avoids signed overflow when lo+hi would exceed the int32 range
// at n approaching 2^31-1.
func binarySearch[T any](n int32, get func(int32) (T, error), compare func(T) int) (int32, error) {
	lo, hi := int32(0), n-1

	for lo <= hi {
		mid := int32(uint32(lo+hi) >> 1) //nolint: gosec

		cur, err := get(mid)
		if err != nil {
			return 0, err
		}

		switch c := compare(cur); {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid - 1
		default:
			return mid, nil
		}
	}

	return -(lo + 1), nil
}
