package asf

import (
	"io"

	"github.com/google/uuid"
)

// FileProperties carries the global attributes of the file.
type FileProperties struct {
	FileID            uuid.UUID
	FileSize          uint64
	CreationDate      uint64
	DataPacketsCount  uint64
	PlayDuration      uint64
	SendDuration      uint64
	Preroll           uint64
	Flags             uint32
	MinDataPacketSize uint32
	MaxDataPacketSize uint32
	MaxBitrate        uint32
}

func parseFileProperties(r *Reader) (*FileProperties, error) {
	var (
		p   FileProperties
		err error
	)
	if p.FileID, err = r.GUID(); err != nil {
		return nil, err
	}
	if p.FileSize, err = r.U64(); err != nil {
		return nil, err
	}
	if p.CreationDate, err = r.U64(); err != nil {
		return nil, err
	}
	if p.DataPacketsCount, err = r.U64(); err != nil {
		return nil, err
	}
	if p.PlayDuration, err = r.U64(); err != nil {
		return nil, err
	}
	if p.SendDuration, err = r.U64(); err != nil {
		return nil, err
	}
	if p.Preroll, err = r.U64(); err != nil {
		return nil, err
	}
	if p.Flags, err = r.U32(); err != nil {
		return nil, err
	}
	if p.MinDataPacketSize, err = r.U32(); err != nil {
		return nil, err
	}
	if p.MaxDataPacketSize, err = r.U32(); err != nil {
		return nil, err
	}
	if p.MaxBitrate, err = r.U32(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *FileProperties) ObjectGUID() uuid.UUID {
	return FilePropertiesObjectGUID
}

func (p *FileProperties) SizeOf() int {
	return frameHeaderSize + 16 + 6*8 + 4*4
}

func (p *FileProperties) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, FilePropertiesObjectGUID, p.SizeOf())
	fw.guid(p.FileID)
	fw.u64(p.FileSize)
	fw.u64(p.CreationDate)
	fw.u64(p.DataPacketsCount)
	fw.u64(p.PlayDuration)
	fw.u64(p.SendDuration)
	fw.u64(p.Preroll)
	fw.u32(p.Flags)
	fw.u32(p.MinDataPacketSize)
	fw.u32(p.MaxDataPacketSize)
	fw.u32(p.MaxBitrate)
	return fw.Err()
}

// StreamProperties declares one media stream. TypeSpecificData is the
// opaque codec setup blob; both blobs are zero-copy spans.
type StreamProperties struct {
	StreamType          uuid.UUID
	ErrorCorrectionType uuid.UUID
	TimeOffset          uint64
	Flags               uint16
	Reserved            uint32
	TypeSpecificData    Span
	ErrorCorrectionData Span
}

func parseStreamProperties(r *Reader) (*StreamProperties, error) {
	var (
		p   StreamProperties
		err error
	)
	if p.StreamType, err = r.GUID(); err != nil {
		return nil, err
	}
	if p.ErrorCorrectionType, err = r.GUID(); err != nil {
		return nil, err
	}
	if p.TimeOffset, err = r.U64(); err != nil {
		return nil, err
	}
	tsLen, err := r.U32()
	if err != nil {
		return nil, err
	}
	ecLen, err := r.U32()
	if err != nil {
		return nil, err
	}
	if p.Flags, err = r.U16(); err != nil {
		return nil, err
	}
	if p.Reserved, err = r.U32(); err != nil {
		return nil, err
	}
	if p.TypeSpecificData, err = r.Take(uint64(tsLen)); err != nil {
		return nil, err
	}
	if p.ErrorCorrectionData, err = r.Take(uint64(ecLen)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *StreamProperties) ObjectGUID() uuid.UUID {
	return StreamPropertiesObjectGUID
}

// StreamNumber extracts the stream number from the flags field.
func (p *StreamProperties) StreamNumber() uint8 {
	return uint8(p.Flags & 0x7F)
}

func (p *StreamProperties) SizeOf() int {
	return frameHeaderSize + 16 + 16 + 8 + 4 + 4 + 2 + 4 +
		p.TypeSpecificData.Len() + p.ErrorCorrectionData.Len()
}

func (p *StreamProperties) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, StreamPropertiesObjectGUID, p.SizeOf())
	fw.guid(p.StreamType)
	fw.guid(p.ErrorCorrectionType)
	fw.u64(p.TimeOffset)
	fw.u32len("type specific data", p.TypeSpecificData.Len())
	fw.u32len("error correction data", p.ErrorCorrectionData.Len())
	fw.u16(p.Flags)
	fw.u32(p.Reserved)
	fw.span(p.TypeSpecificData)
	fw.span(p.ErrorCorrectionData)
	return fw.Err()
}

// CodecEntry describes one codec used by the file.
type CodecEntry struct {
	Type        uint16
	Name        WideStr
	Description WideStr
	Information Span
}

// CodecList enumerates the codecs used by the file's streams.
type CodecList struct {
	Reserved uuid.UUID
	Entries  []CodecEntry
}

func parseCodecEntry(r *Reader) (CodecEntry, error) {
	var (
		e   CodecEntry
		err error
	)
	if e.Type, err = r.U16(); err != nil {
		return e, err
	}
	if e.Name, err = parseWideStrCount16(r); err != nil {
		return e, err
	}
	if e.Description, err = parseWideStrCount16(r); err != nil {
		return e, err
	}
	infoLen, err := r.U16()
	if err != nil {
		return e, err
	}
	if e.Information, err = r.Take(uint64(infoLen)); err != nil {
		return e, err
	}
	return e, nil
}

func parseCodecList(r *Reader) (*CodecList, error) {
	var (
		p   CodecList
		err error
	)
	if p.Reserved, err = r.GUID(); err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		entry, err := parseCodecEntry(r)
		if err != nil {
			return nil, err
		}
		p.Entries = append(p.Entries, entry)
	}
	return &p, nil
}

func (p *CodecList) ObjectGUID() uuid.UUID {
	return CodecListObjectGUID
}

func (e CodecEntry) sizeOf() int {
	return 2 + e.Name.SizeOfCount16() + e.Description.SizeOfCount16() + 2 + e.Information.Len()
}

func (p *CodecList) SizeOf() int {
	size := frameHeaderSize + 16 + 4
	for _, e := range p.Entries {
		size += e.sizeOf()
	}
	return size
}

func (p *CodecList) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, CodecListObjectGUID, p.SizeOf())
	fw.guid(p.Reserved)
	fw.u32(uint32(len(p.Entries)))
	for _, e := range p.Entries {
		fw.u16(e.Type)
		fw.widestrCount16("codec name", e.Name)
		fw.widestrCount16("codec description", e.Description)
		fw.u16len("codec information", e.Information.Len())
		fw.span(e.Information)
	}
	return fw.Err()
}

// BitrateRecord pairs a stream number (in flags) with its average bitrate.
type BitrateRecord struct {
	Flags          uint16
	AverageBitrate uint32
}

// StreamBitrateProperties lists average bitrates per stream.
type StreamBitrateProperties struct {
	Records []BitrateRecord
}

func parseStreamBitrateProperties(r *Reader) (*StreamBitrateProperties, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &StreamBitrateProperties{}
	for i := uint16(0); i < count; i++ {
		var rec BitrateRecord
		if rec.Flags, err = r.U16(); err != nil {
			return nil, err
		}
		if rec.AverageBitrate, err = r.U32(); err != nil {
			return nil, err
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

func (p *StreamBitrateProperties) ObjectGUID() uuid.UUID {
	return StreamBitratePropertiesObjectGUID
}

func (p *StreamBitrateProperties) SizeOf() int {
	return frameHeaderSize + 2 + len(p.Records)*6
}

func (p *StreamBitrateProperties) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, StreamBitratePropertiesObjectGUID, p.SizeOf())
	fw.u16len("bitrate records", len(p.Records))
	for _, rec := range p.Records {
		fw.u16(rec.Flags)
		fw.u32(rec.AverageBitrate)
	}
	return fw.Err()
}

// ErrorCorrection carries stream error correction setup for legacy
// header sections.
type ErrorCorrection struct {
	Type uuid.UUID
	Data Span
}

func parseErrorCorrection(r *Reader) (*ErrorCorrection, error) {
	var (
		p   ErrorCorrection
		err error
	)
	if p.Type, err = r.GUID(); err != nil {
		return nil, err
	}
	dataLen, err := r.U32()
	if err != nil {
		return nil, err
	}
	if p.Data, err = r.Take(uint64(dataLen)); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *ErrorCorrection) ObjectGUID() uuid.UUID {
	return ErrorCorrectionObjectGUID
}

func (p *ErrorCorrection) SizeOf() int {
	return frameHeaderSize + 16 + 4 + p.Data.Len()
}

func (p *ErrorCorrection) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ErrorCorrectionObjectGUID, p.SizeOf())
	fw.guid(p.Type)
	fw.u32len("error correction data", p.Data.Len())
	fw.span(p.Data)
	return fw.Err()
}

// BitrateMutualExclusion marks streams that must not play together.
type BitrateMutualExclusion struct {
	ExclusionType uuid.UUID
	StreamNumbers []uint16
}

func parseBitrateMutualExclusion(r *Reader) (*BitrateMutualExclusion, error) {
	var (
		p   BitrateMutualExclusion
		err error
	)
	if p.ExclusionType, err = r.GUID(); err != nil {
		return nil, err
	}
	if p.StreamNumbers, err = parseU16List(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *BitrateMutualExclusion) ObjectGUID() uuid.UUID {
	return BitrateMutualExclusionObjectGUID
}

func (p *BitrateMutualExclusion) SizeOf() int {
	return frameHeaderSize + 16 + 2 + len(p.StreamNumbers)*2
}

func (p *BitrateMutualExclusion) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, BitrateMutualExclusionObjectGUID, p.SizeOf())
	fw.guid(p.ExclusionType)
	writeU16List(fw, "stream numbers", p.StreamNumbers)
	return fw.Err()
}

// parseU16List reads a u16 count followed by that many u16 values.
func parseU16List(r *Reader) ([]uint16, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	var values []uint16
	for i := uint16(0); i < count; i++ {
		v, err := r.U16()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func writeU16List(fw *fieldWriter, field string, values []uint16) {
	fw.u16len(field, len(values))
	for _, v := range values {
		fw.u16(v)
	}
}
