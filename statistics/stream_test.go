package statistics

import (
	"testing"
	"time"

	"github.com/bugVanisher/goasf/media/container/asf"
	"github.com/stretchr/testify/require"
)

func testContainer() *asf.Container {
	return &asf.Container{
		Header: &asf.HeaderObjects{
			Objects: []asf.HeaderObject{
				&asf.FileProperties{
					CreationDate: 116444736000000000,
					PlayDuration: 10_000_000 * 30, // 30s
					SendDuration: 10_000_000 * 28,
					Preroll:      3000,
				},
				&asf.StreamProperties{StreamType: asf.AudioMediaGUID, Flags: 1},
				&asf.StreamProperties{StreamType: asf.VideoMediaGUID, Flags: 2},
			},
		},
		Data: &asf.DataObject{
			TotalDataPackets: 2,
			Packets: []*asf.DataPacket{
				{
					ParsingData: asf.PayloadParsingData{PaddingLength: 10},
					Payloads: []*asf.Payload{
						{StreamNumber: 1, Data: asf.NewSpan(make([]byte, 100))},
						{StreamNumber: 2, KeyFrame: true, Data: asf.NewSpan(make([]byte, 200))},
					},
				},
				{
					Payloads: []*asf.Payload{
						{
							StreamNumber: 1,
							Compressed:   true,
							SubPayloads: []asf.Span{
								asf.NewSpan(make([]byte, 4)),
								asf.NewSpan(make([]byte, 8)),
							},
						},
					},
				},
			},
		},
		Indices: &asf.IndexObjects{},
	}
}

func TestCollect(t *testing.T) {
	s := Collect(testContainer())

	require.Equal(t, 2, s.Packets)
	require.Equal(t, uint64(312), s.PayloadBytes)
	require.Equal(t, uint64(10), s.PaddingBytes)
	require.Equal(t, 30*time.Second, s.PlayDuration)
	require.Equal(t, 28*time.Second, s.SendDuration)
	require.Equal(t, 3*time.Second, s.Preroll)
	require.Equal(t, time.Unix(0, 0).UTC(), s.CreationDate)

	require.Len(t, s.Streams, 2)

	audio := s.Streams[0]
	require.Equal(t, uint8(1), audio.StreamNumber)
	require.Equal(t, "AudioMedia", audio.MediaType)
	require.Equal(t, 2, audio.Payloads)
	require.Equal(t, 0, audio.KeyFrames)
	require.Equal(t, uint64(112), audio.PayloadBytes)

	video := s.Streams[1]
	require.Equal(t, uint8(2), video.StreamNumber)
	require.Equal(t, "VideoMedia", video.MediaType)
	require.Equal(t, 1, video.Payloads)
	require.Equal(t, 1, video.KeyFrames)
	require.Equal(t, uint64(200), video.PayloadBytes)
}

func TestBitrate(t *testing.T) {
	s := Collect(testContainer())
	// 312 bytes over 30 seconds.
	require.Equal(t, uint64(312*8/30), s.Bitrate())

	empty := Collect(&asf.Container{})
	require.Equal(t, uint64(0), empty.Bitrate())
}

func TestString(t *testing.T) {
	s := Collect(testContainer())
	out := s.String()
	require.Contains(t, out, "packets:2")
	require.Contains(t, out, "stream 1 (AudioMedia)")
	require.Contains(t, out, "stream 2 (VideoMedia)")
	require.Contains(t, out, "1 key frames")
}
