package asf

import (
	"bytes"
	"testing"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/stretchr/testify/require"
)

func TestWideStrParseWholeSpan(t *testing.T) {
	raw := []byte{0x48, 0x00, 0x69, 0x00, 0x00, 0x00}
	w, err := parseWideStr(NewSpan(raw))
	require.NoError(t, err)
	require.Equal(t, "Hi\x00", w.String())
	require.Equal(t, 3, w.Len())
	require.Equal(t, 6, w.SizeOf())
}

func TestWideStrOddLength(t *testing.T) {
	_, err := parseWideStr(NewSpan([]byte{0x48, 0x00, 0x69}))
	require.Error(t, err)
	require.Equal(t, errs.KindInvalidField, errs.KindOf(err))
}

func TestWideStrCount16RoundTrip(t *testing.T) {
	w := NewWideStr("stream one\x00")

	var buf bytes.Buffer
	fw := newFieldWriter(&buf)
	fw.widestrCount16("test", w)
	require.NoError(t, fw.Err())
	require.Equal(t, w.SizeOfCount16(), buf.Len())

	r := NewReader(NewSpan(buf.Bytes()))
	got, err := parseWideStrCount16(r)
	require.NoError(t, err)
	require.Equal(t, w, got)
	require.Equal(t, 0, r.Remaining())
}

func TestWideStrCount32RoundTrip(t *testing.T) {
	w := NewWideStr("marker description")

	var buf bytes.Buffer
	fw := newFieldWriter(&buf)
	fw.widestrCount32("test", w)
	require.NoError(t, fw.Err())
	require.Equal(t, w.SizeOfCount32(), buf.Len())

	r := NewReader(NewSpan(buf.Bytes()))
	got, err := parseWideStrCount32(r)
	require.NoError(t, err)
	require.Equal(t, w, got)
}

func TestWideStrCount16PrefixOverflowsRemaining(t *testing.T) {
	// Declared byte length runs past the end of the span.
	r := NewReader(NewSpan([]byte{0x10, 0x00, 0x41, 0x00}))
	_, err := parseWideStrCount16(r)
	require.True(t, errs.IsEof(err))
}

func TestWideStrEmpty(t *testing.T) {
	w, err := parseWideStr(NewSpan(nil))
	require.NoError(t, err)
	require.True(t, w.IsEmpty())
	require.Equal(t, "", w.String())
	require.Equal(t, 2, w.SizeOfCount16())
}
