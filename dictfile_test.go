package dictfile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dictfile"
	"github.com/arloliu/dictfile/dict"
	"github.com/arloliu/dictfile/format"
	"github.com/arloliu/dictfile/mapper"
)

func TestStringV1RoundTrip(t *testing.T) {
	w := dictfile.NewStringWriter()
	require.NoError(t, w.Append(dictfile.NonNullString("apple")))
	require.NoError(t, w.Append(dictfile.NonNullString("banana")))
	require.NoError(t, w.Append(dictfile.NonNullString("cherry")))

	r, err := w.Finalize(dict.ReadOptions{})
	require.NoError(t, err)

	idx, err := r.IndexOf("banana")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	v, err := r.Get(0)
	require.NoError(t, err)
	require.Equal(t, "apple", v.Payload)
}

func TestBytesV2RoundTripThroughMemory(t *testing.T) {
	sink := mapper.NewMemorySink()
	w, err := dictfile.NewBytesV2Writer(sink, "labels")
	require.NoError(t, err)

	require.NoError(t, w.Append(dictfile.NonNullBytes([]byte("alpha"))))
	require.NoError(t, w.Append(dictfile.NonNullBytes([]byte("beta"))))

	metaBuf, err := w.Finalize()
	require.NoError(t, err)

	fm := mapper.NewMemoryMapper()
	for name, data := range sink.Files() {
		fm.Put(name, data)
	}

	r, err := dictfile.OpenBytesV2(metaBuf, fm)
	require.NoError(t, err)
	require.Equal(t, 2, r.Size())

	idx, err := r.IndexOf([]byte("beta"))
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestCompressedStringWriterRoundTrip(t *testing.T) {
	w, err := dictfile.NewCompressedStringWriter(format.CompressionS2)
	require.NoError(t, err)

	require.NoError(t, w.Append(dictfile.NonNullString("repeated repeated repeated repeated")))
	require.NoError(t, w.Append(dictfile.NullString()))

	r, err := w.Finalize(dict.ReadOptions{})
	require.NoError(t, err)

	v0, err := r.Get(0)
	require.NoError(t, err)
	require.Equal(t, "repeated repeated repeated repeated", v0.Payload)

	v1, err := r.Get(1)
	require.NoError(t, err)
	require.True(t, v1.Null)
}

func TestCompressedStringWriterUnknownAlgorithm(t *testing.T) {
	_, err := dictfile.NewCompressedStringWriter(format.CompressionType(0xFF))
	require.Error(t, err)
}
