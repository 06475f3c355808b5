package window

import (
	"testing"

	"github.com/arloliu/dictfile/endian"
	"github.com/stretchr/testify/require"
)

func TestNewWindow(t *testing.T) {
	data := []byte("hello world")
	w := New(data)

	require.Equal(t, 0, w.Position())
	require.Equal(t, len(data), w.Limit())
	require.Equal(t, len(data), w.Len())
	require.Equal(t, len(data), w.Remaining())
}

func TestWindowSetPositionAndLimit(t *testing.T) {
	w := New([]byte("0123456789"))

	w.SetPosition(3)
	require.Equal(t, 3, w.Position())
	require.Equal(t, 7, w.Remaining())

	w.SetLimit(8)
	require.Equal(t, 8, w.Limit())
	require.Equal(t, 5, w.Remaining())

	require.Panics(t, func() { w.SetPosition(9) })
	require.Panics(t, func() { w.SetLimit(2) })
}

func TestWindowDuplicateIsIndependent(t *testing.T) {
	w := New([]byte("0123456789"))
	w.SetPosition(2)
	w.SetLimit(8)

	dup := w.Duplicate()
	dup.SetPosition(4)

	require.Equal(t, 2, w.Position())
	require.Equal(t, 4, dup.Position())
	require.Equal(t, w.Bytes()[2:], dup.Bytes())
}

func TestWindowSliceSharesBytes(t *testing.T) {
	w := New([]byte("0123456789"))

	s, err := w.Slice(2, 5)
	require.NoError(t, err)
	require.Equal(t, 0, s.Position())
	require.Equal(t, 3, s.Limit())
	require.Equal(t, []byte("234"), s.Bytes())

	_, err = w.Slice(-1, 5)
	require.Error(t, err)

	_, err = w.Slice(5, 100)
	require.Error(t, err)
}

func TestWindowReadInt32At(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	buf := engine.AppendUint32(nil, 0x01020304)
	w := New(buf)

	v, err := w.ReadInt32At(0, engine)
	require.NoError(t, err)
	require.Equal(t, int32(0x01020304), v)

	_, err = w.ReadInt32At(1, engine)
	require.Error(t, err)
}

func TestWindowReadBytesAdvancesPosition(t *testing.T) {
	w := New([]byte("0123456789"))
	w.SetPosition(2)

	b, err := w.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte("234"), b)
	require.Equal(t, 5, w.Position())

	_, err = w.ReadBytes(100)
	require.Error(t, err)
}

func TestCompareOrdersLikeUTF16(t *testing.T) {
	a := New([]byte("apple"))
	b := New([]byte("banana"))
	require.Negative(t, Compare(a, b))
	require.Positive(t, Compare(b, a))
	require.Zero(t, Compare(New([]byte("x")), New([]byte("x"))))

	// Non-ASCII BMP: é (U+00E9) sorts after z (U+007A) and before 中 (U+4E2D)
	// in both UTF-8 byte order and UTF-16 code unit order.
	require.Positive(t, Compare(New([]byte("é")), New([]byte("z"))))
	require.Negative(t, Compare(New([]byte("é")), New([]byte("中"))))
}
