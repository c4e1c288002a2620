package asf

import (
	"bytes"
	"testing"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var basicContentDescriptionBytes = []byte{
	0x33, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11, 0xA6, 0xD9,
	0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C, 0x68, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x2E, 0x00, 0x12, 0x00, 0x02, 0x00,
	0x02, 0x00, 0x02, 0x00, 0x54, 0x00, 0x68, 0x00, 0x65, 0x00,
	0x20, 0x00, 0x4D, 0x00, 0x61, 0x00, 0x74, 0x00, 0x72, 0x00,
	0x69, 0x00, 0x78, 0x00, 0x20, 0x00, 0x50, 0x00, 0x61, 0x00,
	0x72, 0x00, 0x74, 0x00, 0x20, 0x00, 0x32, 0x00, 0x20, 0x00,
	0x6F, 0x00, 0x66, 0x00, 0x20, 0x00, 0x32, 0x00, 0x00, 0x00,
	0x63, 0x00, 0x6F, 0x00, 0x6E, 0x00, 0x66, 0x00, 0x75, 0x00,
	0x7A, 0x00, 0x65, 0x00, 0x64, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

func parseOneHeaderObject(t *testing.T, b []byte) (HeaderObject, *Reader) {
	t.Helper()
	r := NewReader(NewSpan(b))
	obj, err := parseHeaderObject(r)
	require.NoError(t, err)
	return obj, r
}

func TestParseBasicContentDescription(t *testing.T) {
	obj, r := parseOneHeaderObject(t, basicContentDescriptionBytes)
	require.Equal(t, 0, r.Remaining())

	cd, ok := obj.(*ContentDescription)
	require.True(t, ok)
	require.Equal(t, "The Matrix Part 2 of 2\x00", cd.Title.String())
	require.Equal(t, "confuzed\x00", cd.Author.String())
	require.Equal(t, "\x00", cd.Copyright.String())
	require.Equal(t, "\x00", cd.Description.String())
	require.Equal(t, "\x00", cd.Rating.String())
}

func TestWriteBasicContentDescription(t *testing.T) {
	obj, _ := parseOneHeaderObject(t, basicContentDescriptionBytes)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, basicContentDescriptionBytes, buf.Bytes())
	require.Equal(t, len(basicContentDescriptionBytes), obj.SizeOf())
}

func TestBrokenContentDescription(t *testing.T) {
	// Same object with the size field one byte short.
	broken := append([]byte(nil), basicContentDescriptionBytes...)
	broken[16] = 0x67
	broken = broken[:0x67]

	r := NewReader(NewSpan(broken))
	_, err := parseHeaderObject(r)
	require.Error(t, err)
	require.True(t, errs.IsEof(err))
}

func TestContentDescriptionTruncationSafety(t *testing.T) {
	for i := 0; i < len(basicContentDescriptionBytes); i++ {
		r := NewReader(NewSpan(basicContentDescriptionBytes[:i]))
		_, err := parseHeaderObject(r)
		require.Error(t, err, "prefix of %d bytes", i)
		require.True(t, errs.IsEof(err), "prefix of %d bytes: %v", i, err)
	}
}

var basicStreamPropertiesBytes = []byte{
	0x91, 0x07, 0xDC, 0xB7, 0xB7, 0xA9, 0xCF, 0x11, 0x8E, 0xE6,
	0x00, 0xC0, 0x0C, 0x20, 0x53, 0x65, 0x72, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x40, 0x9E, 0x69, 0xF8, 0x4D, 0x5B,
	0xCF, 0x11, 0xA8, 0xFD, 0x00, 0x80, 0x5F, 0x5C, 0x44, 0x2B,
	0x50, 0xCD, 0xC3, 0xBF, 0x8F, 0x61, 0xCF, 0x11, 0x8B, 0xB2,
	0x00, 0xAA, 0x00, 0xB4, 0xE2, 0x20, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x1C, 0x00, 0x00, 0x00, 0x08, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x70, 0x33, 0x77, 0x00, 0x61, 0x01,
	0x01, 0x00, 0x80, 0x3E, 0x00, 0x00, 0xD0, 0x07, 0x00, 0x00,
	0x80, 0x02, 0x10, 0x00, 0x0A, 0x00, 0x00, 0x22, 0x00, 0x00,
	0x0E, 0x00, 0x80, 0x07, 0x00, 0x00, 0x01, 0x80, 0x02, 0x80,
	0x02, 0x01, 0x00, 0x00,
}

func TestParseBasicStreamProperties(t *testing.T) {
	obj, r := parseOneHeaderObject(t, basicStreamPropertiesBytes)
	require.Equal(t, 0, r.Remaining())

	sp, ok := obj.(*StreamProperties)
	require.True(t, ok)
	require.Equal(t, AudioMediaGUID, sp.StreamType)
	require.Equal(t, AudioSpreadGUID, sp.ErrorCorrectionType)
	require.Equal(t, uint64(0), sp.TimeOffset)
	require.Equal(t, uint16(1), sp.Flags)
	require.Equal(t, uint32(7811952), sp.Reserved)
	require.Equal(t, 28, sp.TypeSpecificData.Len())
	require.Equal(t, int64(78), sp.TypeSpecificData.Offset())
	require.Equal(t, 8, sp.ErrorCorrectionData.Len())
	require.Equal(t, int64(106), sp.ErrorCorrectionData.Offset())
}

func TestWriteBasicStreamProperties(t *testing.T) {
	obj, _ := parseOneHeaderObject(t, basicStreamPropertiesBytes)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, basicStreamPropertiesBytes, buf.Bytes())
	require.Equal(t, len(basicStreamPropertiesBytes), obj.SizeOf())
}

func TestStreamPropertiesTruncationSafety(t *testing.T) {
	for i := 0; i < len(basicStreamPropertiesBytes); i++ {
		r := NewReader(NewSpan(basicStreamPropertiesBytes[:i]))
		_, err := parseHeaderObject(r)
		require.Error(t, err, "prefix of %d bytes", i)
		require.True(t, errs.IsEof(err), "prefix of %d bytes: %v", i, err)
	}
}

func TestUnknownObjectRoundTrip(t *testing.T) {
	input := make([]byte, 40)
	for i := 0; i < 16; i++ {
		input[i] = byte(i)
	}
	input[16] = 40
	for i := 24; i < 40; i++ {
		input[i] = 0xAB
	}

	obj, r := parseOneHeaderObject(t, input)
	require.Equal(t, 0, r.Remaining())

	unknown, ok := obj.(*Unknown)
	require.True(t, ok)
	require.Equal(t, guidFromWire(input[:16]), unknown.Object.GUID)
	require.Equal(t, 16, unknown.Object.Data.Len())
	require.Equal(t, int64(24), unknown.Object.Data.Offset())

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
	require.Equal(t, 40, obj.SizeOf())
}

func TestPaddingRetainsSizeOnly(t *testing.T) {
	body := bytes.Repeat([]byte{0x00}, 17)
	input := buildObject(PaddingObjectGUID, body)

	obj, _ := parseOneHeaderObject(t, input)
	padding, ok := obj.(*Padding)
	require.True(t, ok)
	require.Equal(t, 17, padding.Length)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
}

func TestObjectSizeBelowFrameSize(t *testing.T) {
	input := make([]byte, 24)
	input[16] = 23

	r := NewReader(NewSpan(input))
	_, err := parseHeaderObject(r)
	require.Error(t, err)
	require.Equal(t, errs.KindInvalidField, errs.KindOf(err))
}

func TestHeaderObjectsTagMismatch(t *testing.T) {
	input := buildObject(DataObjectGUID, make([]byte, 26))

	_, err := ParseHeaderObjects(NewReader(NewSpan(input)))
	require.Error(t, err)
	require.Equal(t, errs.KindTagMismatch, errs.KindOf(err))
}

func TestHeaderObjectsRoundTrip(t *testing.T) {
	var body bytes.Buffer
	body.Write([]byte{0x02, 0x00, 0x00, 0x00}) // num_objects, informational
	body.Write([]byte{0x01, 0x02})             // reserved1, reserved2
	body.Write(basicContentDescriptionBytes)
	body.Write(basicStreamPropertiesBytes)
	input := buildObject(HeaderObjectGUID, body.Bytes())

	h, err := ParseHeaderObjects(NewReader(NewSpan(input)))
	require.NoError(t, err)
	require.Equal(t, uint32(2), h.NumObjects)
	require.Equal(t, uint8(1), h.Reserved1)
	require.Equal(t, uint8(2), h.Reserved2)
	require.Len(t, h.Objects, 2)

	var buf bytes.Buffer
	require.NoError(t, h.Write(&buf))
	require.Equal(t, input, buf.Bytes())
	require.Equal(t, len(input), h.SizeOf())
}

// buildObject frames a body with a GUID and total size.
func buildObject(g uuid.UUID, body []byte) []byte {
	var buf bytes.Buffer
	fw := newFieldWriter(&buf)
	fw.guid(g)
	fw.u64(uint64(frameHeaderSize + len(body)))
	fw.bytes(body)
	return buf.Bytes()
}
