package statistics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bugVanisher/goasf/media/container/asf"
	"github.com/bugVanisher/goasf/utils"
)

// StreamStat 单个流的负载统计
type StreamStat struct {
	StreamNumber uint8
	MediaType    string
	Payloads     int
	KeyFrames    int
	PayloadBytes uint64
}

// FileStat 整个文件的统计信息
type FileStat struct {
	Packets      int
	PayloadBytes uint64
	PaddingBytes uint64
	CreationDate time.Time
	PlayDuration time.Duration
	SendDuration time.Duration
	Preroll      time.Duration
	Streams      []*StreamStat
}

// Collect 遍历解析结果，聚合文件和流级别的统计
func Collect(c *asf.Container) *FileStat {
	s := &FileStat{}
	streams := make(map[uint8]*StreamStat)

	stream := func(number uint8) *StreamStat {
		st, ok := streams[number]
		if !ok {
			st = &StreamStat{StreamNumber: number}
			streams[number] = st
		}
		return st
	}

	if c.Header != nil {
		for _, obj := range c.Header.Objects {
			switch o := obj.(type) {
			case *asf.FileProperties:
				s.CreationDate = utils.FiletimeToTime(o.CreationDate)
				s.PlayDuration = utils.Duration100ns(o.PlayDuration)
				s.SendDuration = utils.Duration100ns(o.SendDuration)
				s.Preroll = utils.PrerollToDuration(o.Preroll)
			case *asf.StreamProperties:
				stream(o.StreamNumber()).MediaType = asf.GUIDName(o.StreamType)
			}
		}
	}

	if c.Data != nil {
		s.Packets = len(c.Data.Packets)
		for _, pkt := range c.Data.Packets {
			s.PaddingBytes += uint64(pkt.ParsingData.PaddingLength)
			for _, p := range pkt.Payloads {
				st := stream(p.StreamNumber)
				st.Payloads++
				if p.KeyFrame {
					st.KeyFrames++
				}
				var size uint64
				if p.Compressed {
					for _, sub := range p.SubPayloads {
						size += uint64(sub.Len())
					}
				} else {
					size = uint64(p.Data.Len())
				}
				st.PayloadBytes += size
				s.PayloadBytes += size
			}
		}
	}

	for _, st := range streams {
		s.Streams = append(s.Streams, st)
	}
	sort.Slice(s.Streams, func(i, j int) bool {
		return s.Streams[i].StreamNumber < s.Streams[j].StreamNumber
	})
	return s
}

// Bitrate 按播放时长折算的平均码率，单位bit/s
func (s *FileStat) Bitrate() uint64 {
	secs := s.PlayDuration.Seconds()
	if secs <= 0 {
		return 0
	}
	return uint64(float64(s.PayloadBytes*8) / secs)
}

func (st *StreamStat) String() string {
	mediaType := st.MediaType
	if mediaType == "" {
		mediaType = "unknown"
	}
	return fmt.Sprintf("stream %d (%s): %d payloads, %d key frames, %d bytes",
		st.StreamNumber, mediaType, st.Payloads, st.KeyFrames, st.PayloadBytes)
}

func (s *FileStat) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "packets:%d payload:%dB padding:%dB play:%s bitrate:%dkb/s",
		s.Packets, s.PayloadBytes, s.PaddingBytes, s.PlayDuration, s.Bitrate()/1024)
	for _, st := range s.Streams {
		b.WriteString("\n  ")
		b.WriteString(st.String())
	}
	return b.String()
}
