package asf

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestGUIDFromWire(t *testing.T) {
	wire := []byte{
		0x30, 0x26, 0xB2, 0x75, 0x8E, 0x66, 0xCF, 0x11,
		0xA6, 0xD9, 0x00, 0xAA, 0x00, 0x62, 0xCE, 0x6C,
	}
	require.Equal(t, HeaderObjectGUID, guidFromWire(wire))
}

func TestGUIDWireTransformInvolution(t *testing.T) {
	wire := [16]byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	}
	g := guidFromWire(wire[:])
	require.Equal(t, wire, guidToWire(g))

	// The swap is its own inverse: applying it twice is the identity.
	twice := guidToWire(uuid.UUID(guidToWire(uuid.UUID(wire))))
	require.Equal(t, wire, twice)
}

func TestGUIDRoundTripThroughReader(t *testing.T) {
	wire := guidToWire(AudioMediaGUID)
	r := NewReader(NewSpan(wire[:]))
	g, err := r.GUID()
	require.NoError(t, err)
	require.Equal(t, AudioMediaGUID, g)
	require.Equal(t, 0, r.Remaining())
}

func TestGUIDName(t *testing.T) {
	require.Equal(t, "AudioMedia", GUIDName(AudioMediaGUID))
	require.Equal(t, "DataObject", GUIDName(DataObjectGUID))

	unknown := guidFromWire([]byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	})
	require.Equal(t, unknown.String(), GUIDName(unknown))
}
