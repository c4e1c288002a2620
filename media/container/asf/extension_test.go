package asf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseOneExtensionObject(t *testing.T, b []byte) (HeaderObject, *Reader) {
	t.Helper()
	r := NewReader(NewSpan(b))
	obj, err := parseExtensionObject(r)
	require.NoError(t, err)
	return obj, r
}

// buildHeaderExtension frames extension objects into a complete
// Header Extension object.
func buildHeaderExtension(t *testing.T, objects ...HeaderObject) []byte {
	t.Helper()
	var ext bytes.Buffer
	for _, obj := range objects {
		require.NoError(t, obj.Write(&ext))
	}
	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.guid(Reserved1GUID)
	fw.u16(6)
	fw.u32(uint32(ext.Len()))
	fw.bytes(ext.Bytes())
	require.NoError(t, fw.Err())
	return buildObject(HeaderExtensionObjectGUID, body.Bytes())
}

func TestHeaderExtensionRoundTrip(t *testing.T) {
	input := buildHeaderExtension(t,
		&LanguageList{LanguageIDs: []WideStr{NewWideStr("en-us\x00"), NewWideStr("de\x00")}},
		&Compatibility{Profile: 2, Mode: 1},
	)

	obj, r := parseOneHeaderObject(t, input)
	require.Equal(t, 0, r.Remaining())

	ext, ok := obj.(*HeaderExtension)
	require.True(t, ok)
	require.Equal(t, Reserved1GUID, ext.Reserved1)
	require.Equal(t, uint16(6), ext.Reserved2)
	require.Len(t, ext.Objects, 2)

	languages, ok := ext.Objects[0].(*LanguageList)
	require.True(t, ok)
	require.Len(t, languages.LanguageIDs, 2)
	require.Equal(t, "en-us\x00", languages.LanguageIDs[0].String())

	compat, ok := ext.Objects[1].(*Compatibility)
	require.True(t, ok)
	require.Equal(t, uint8(2), compat.Profile)
	require.Equal(t, uint8(1), compat.Mode)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
	require.Equal(t, len(input), obj.SizeOf())
}

func TestHeaderExtensionUnknownObject(t *testing.T) {
	unknownFrame := make([]byte, 30)
	for i := 0; i < 16; i++ {
		unknownFrame[i] = byte(0xF0 + i)
	}
	unknownFrame[16] = 30

	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.guid(Reserved1GUID)
	fw.u16(6)
	fw.u32(uint32(len(unknownFrame)))
	fw.bytes(unknownFrame)
	input := buildObject(HeaderExtensionObjectGUID, body.Bytes())

	obj, _ := parseOneHeaderObject(t, input)
	ext := obj.(*HeaderExtension)
	require.Len(t, ext.Objects, 1)
	_, ok := ext.Objects[0].(*Unknown)
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
}

func TestExtendedStreamPropertiesRoundTrip(t *testing.T) {
	// Fixed fields, one stream name, one payload extension system and
	// a nested Stream Properties frame at the tail.
	nested := basicStreamPropertiesBytes

	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.u64(100)      // start time
	fw.u64(90100)    // end time
	fw.u32(128000)   // data bitrate
	fw.u32(3000)     // buffer size
	fw.u32(0)        // initial buffer fullness
	fw.u32(64000)    // alternate data bitrate
	fw.u32(3000)     // alternate buffer size
	fw.u32(0)        // alternate initial buffer fullness
	fw.u32(5000)     // maximum object size
	fw.u32(0x01)     // flags
	fw.u16(1)        // stream number
	fw.u16(0)        // language id index
	fw.u64(400000)   // average time per frame
	fw.u16(1)        // stream name count
	fw.u16(1)        // payload extension system count
	name := NewWideStr("main audio\x00")
	fw.u16(0)
	fw.u16len("name", name.SizeOf())
	fw.widestr(name)
	fw.guid(AudioSpreadGUID)
	fw.u16(2)
	fw.u32(3)
	fw.bytes([]byte{0x01, 0x02, 0x03})
	fw.bytes(nested)
	require.NoError(t, fw.Err())
	input := buildObject(ExtendedStreamPropertiesObjectGUID, body.Bytes())

	obj, r := parseOneExtensionObject(t, input)
	require.Equal(t, 0, r.Remaining())

	esp, ok := obj.(*ExtendedStreamProperties)
	require.True(t, ok)
	require.Equal(t, uint64(100), esp.StartTime)
	require.Equal(t, uint64(90100), esp.EndTime)
	require.Equal(t, uint32(128000), esp.DataBitrate)
	require.Equal(t, uint16(1), esp.StreamNumber)
	require.Len(t, esp.StreamNames, 1)
	require.Equal(t, "main audio\x00", esp.StreamNames[0].Name.String())
	require.Len(t, esp.PayloadExtensionSystems, 1)
	require.Equal(t, AudioSpreadGUID, esp.PayloadExtensionSystems[0].ID)
	require.Equal(t, 3, esp.PayloadExtensionSystems[0].Info.Len())

	sp, ok := esp.StreamProperties.(*StreamProperties)
	require.True(t, ok)
	require.Equal(t, AudioMediaGUID, sp.StreamType)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
	require.Equal(t, len(input), obj.SizeOf())
}

func TestExtendedStreamPropertiesWithoutNestedStream(t *testing.T) {
	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.u64(0)
	fw.u64(0)
	fw.u32(0)
	fw.u32(0)
	fw.u32(0)
	fw.u32(0)
	fw.u32(0)
	fw.u32(0)
	fw.u32(0)
	fw.u32(0)
	fw.u16(2)
	fw.u16(0)
	fw.u64(0)
	fw.u16(0)
	fw.u16(0)
	require.NoError(t, fw.Err())
	input := buildObject(ExtendedStreamPropertiesObjectGUID, body.Bytes())

	obj, _ := parseOneExtensionObject(t, input)
	esp := obj.(*ExtendedStreamProperties)
	require.Nil(t, esp.StreamProperties)
	require.Equal(t, uint16(2), esp.StreamNumber)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
}

func TestMetadataRoundTrip(t *testing.T) {
	name := NewWideStr("AspectRatioX\x00")
	data := []byte{0x10, 0x00, 0x00, 0x00}

	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.u16(1)
	fw.u16(0) // reserved
	fw.u16(2) // stream number
	fw.u16len("name", name.SizeOf())
	fw.u16(3) // data type dword
	fw.u32(uint32(len(data)))
	fw.widestr(name)
	fw.bytes(data)
	require.NoError(t, fw.Err())
	input := buildObject(MetadataObjectGUID, body.Bytes())

	obj, _ := parseOneExtensionObject(t, input)
	md, ok := obj.(*Metadata)
	require.True(t, ok)
	require.Len(t, md.Records, 1)
	require.Equal(t, uint16(2), md.Records[0].StreamNumber)
	require.Equal(t, uint16(3), md.Records[0].DataType)
	require.Equal(t, "AspectRatioX\x00", md.Records[0].Name.String())
	require.Equal(t, data, md.Records[0].Data.Bytes())

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
	require.Equal(t, len(input), obj.SizeOf())
}

func TestGroupMutualExclusionRoundTrip(t *testing.T) {
	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.guid(MutexLanguageGUID)
	fw.u16(2)
	writeU16List(fw, "record", []uint16{1, 2})
	writeU16List(fw, "record", []uint16{3})
	require.NoError(t, fw.Err())
	input := buildObject(GroupMutualExclusionObjectGUID, body.Bytes())

	obj, _ := parseOneExtensionObject(t, input)
	gme, ok := obj.(*GroupMutualExclusion)
	require.True(t, ok)
	require.Equal(t, MutexLanguageGUID, gme.ExclusionType)
	require.Equal(t, [][]uint16{{1, 2}, {3}}, gme.Records)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
	require.Equal(t, len(input), obj.SizeOf())
}
