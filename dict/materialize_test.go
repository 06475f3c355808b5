package dict

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaterializeStringsV1(t *testing.T) {
	values := []Value[string]{NonNull("apple"), NullValue[string](), NonNull("cherry")}
	r := buildV1Strings(t, values)

	got, cleanup, err := MaterializeStrings(r)
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, []string{"apple", "", "cherry"}, got)
}

func TestMaterializeStringsV2(t *testing.T) {
	values := []Value[string]{NonNull("a0"), NonNull("a1"), NonNull("a2"), NonNull("a3"), NonNull("a4")}
	r := buildV2Strings(t, "col", 1, values)

	got, cleanup, err := MaterializeStrings(r)
	require.NoError(t, err)
	defer cleanup()

	require.Equal(t, []string{"a0", "a1", "a2", "a3", "a4"}, got)
}

func TestMaterializeStringsEmpty(t *testing.T) {
	r := buildV1Strings(t, nil)

	got, cleanup, err := MaterializeStrings(r)
	require.NoError(t, err)
	defer cleanup()

	require.Len(t, got, 0)
}
