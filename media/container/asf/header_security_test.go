package asf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

var basicContentEncryptionBytes = []byte{
	0xFB, 0xB3, 0x11, 0x22, 0x23, 0xBD, 0xD2, 0x11, 0xB4, 0xB7, 0x00, 0xA0,
	0xC9, 0x55, 0xFC, 0x6E, 0xBC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x18, 0x00, 0x00, 0x00, 0xB8, 0xE8, 0x9C, 0xBB, 0x79, 0x31, 0x80, 0x5C,
	0x3D, 0x7F, 0xDD, 0x00, 0xC5, 0x5C, 0xE9, 0xBA, 0x80, 0x3B, 0x1A, 0x5C,
	0xFB, 0x81, 0xDA, 0xF9, 0x04, 0x00, 0x00, 0x00, 0x44, 0x52, 0x4D, 0x00,
	0x19, 0x00, 0x00, 0x00, 0x4C, 0x35, 0x33, 0x6C, 0x51, 0x67, 0x74, 0x71,
	0x53, 0x41, 0x45, 0x63, 0x46, 0x36, 0x30, 0x35, 0x43, 0x54, 0x4F, 0x74,
	0x37, 0x59, 0x55, 0x6A, 0x00, 0x5F, 0x00, 0x00, 0x00, 0x68, 0x74, 0x74,
	0x70, 0x3A, 0x2F, 0x2F, 0x67, 0x6F, 0x2E, 0x6D, 0x69, 0x63, 0x72, 0x6F,
	0x73, 0x6F, 0x66, 0x74, 0x2E, 0x63, 0x6F, 0x6D, 0x2F, 0x66, 0x77, 0x6C,
	0x69, 0x6E, 0x6B, 0x2F, 0x3F, 0x70, 0x72, 0x64, 0x3D, 0x38, 0x31, 0x36,
	0x26, 0x70, 0x76, 0x65, 0x72, 0x3D, 0x37, 0x2E, 0x31, 0x26, 0x73, 0x62,
	0x70, 0x3D, 0x44, 0x52, 0x4D, 0x26, 0x70, 0x6C, 0x63, 0x69, 0x64, 0x3D,
	0x30, 0x78, 0x34, 0x30, 0x39, 0x26, 0x63, 0x6C, 0x63, 0x69, 0x64, 0x3D,
	0x30, 0x78, 0x34, 0x30, 0x39, 0x26, 0x61, 0x72, 0x3D, 0x50, 0x65, 0x72,
	0x73, 0x6F, 0x6E, 0x61, 0x6C, 0x56, 0x32, 0x00,
}

func TestParseBasicContentEncryption(t *testing.T) {
	obj, r := parseOneHeaderObject(t, basicContentEncryptionBytes)
	require.Equal(t, 0, r.Remaining())

	ce, ok := obj.(*ContentEncryption)
	require.True(t, ok)
	require.Equal(t, 24, ce.SecretData.Len())
	require.Equal(t, int64(28), ce.SecretData.Offset())
	require.Equal(t, []byte("DRM\x00"), ce.ProtectionType.Bytes())
	require.Equal(t, 25, ce.KeyID.Len())
	require.Equal(t, int64(64), ce.KeyID.Offset())
	require.Equal(t, 0x5F, ce.LicenseURL.Len())
	require.Equal(t, int64(93), ce.LicenseURL.Offset())
}

func TestWriteBasicContentEncryption(t *testing.T) {
	obj, _ := parseOneHeaderObject(t, basicContentEncryptionBytes)

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, basicContentEncryptionBytes, buf.Bytes())
	require.Equal(t, len(basicContentEncryptionBytes), obj.SizeOf())
}

func TestDigitalSignatureRoundTrip(t *testing.T) {
	var body bytes.Buffer
	fw := newFieldWriter(&body)
	fw.u32(2)
	fw.u32(4)
	fw.bytes([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	input := buildObject(DigitalSignatureObjectGUID, body.Bytes())

	obj, _ := parseOneHeaderObject(t, input)
	sig, ok := obj.(*DigitalSignature)
	require.True(t, ok)
	require.Equal(t, uint32(2), sig.SignatureType)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, sig.SignatureData.Bytes())

	var buf bytes.Buffer
	require.NoError(t, obj.Write(&buf))
	require.Equal(t, input, buf.Bytes())
}
