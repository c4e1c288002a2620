package asf

import (
	"io"

	"github.com/google/uuid"
)

// StreamName is a localized stream display name.
type StreamName struct {
	LanguageIDIndex uint16
	Name            WideStr
}

// PayloadExtensionSystem declares per-payload extension data attached
// to a stream's payloads inside data packets.
type PayloadExtensionSystem struct {
	ID       uuid.UUID
	DataSize uint16
	Info     Span
}

// ExtendedStreamProperties supersedes StreamProperties for v2 headers.
// When bytes remain after the fixed fields a full Stream Properties
// object frame is nested at the tail.
type ExtendedStreamProperties struct {
	StartTime                      uint64
	EndTime                        uint64
	DataBitrate                    uint32
	BufferSize                     uint32
	InitialBufferFullness          uint32
	AlternateDataBitrate           uint32
	AlternateBufferSize            uint32
	AlternateInitialBufferFullness uint32
	MaximumObjectSize              uint32
	Flags                          uint32
	StreamNumber                   uint16
	StreamLanguageIDIndex          uint16
	AverageTimePerFrame            uint64
	StreamNames                    []StreamName
	PayloadExtensionSystems        []PayloadExtensionSystem
	StreamProperties               HeaderObject
}

func parseStreamName(r *Reader) (StreamName, error) {
	var (
		n   StreamName
		err error
	)
	if n.LanguageIDIndex, err = r.U16(); err != nil {
		return n, err
	}
	nameLen, err := r.U16()
	if err != nil {
		return n, err
	}
	sp, err := r.Take(uint64(nameLen))
	if err != nil {
		return n, err
	}
	if n.Name, err = parseWideStr(sp); err != nil {
		return n, err
	}
	return n, nil
}

func parsePayloadExtensionSystem(r *Reader) (PayloadExtensionSystem, error) {
	var (
		s   PayloadExtensionSystem
		err error
	)
	if s.ID, err = r.GUID(); err != nil {
		return s, err
	}
	if s.DataSize, err = r.U16(); err != nil {
		return s, err
	}
	if s.Info, err = takeU32Prefixed(r); err != nil {
		return s, err
	}
	return s, nil
}

func parseExtendedStreamProperties(r *Reader) (*ExtendedStreamProperties, error) {
	var (
		p   ExtendedStreamProperties
		err error
	)
	if p.StartTime, err = r.U64(); err != nil {
		return nil, err
	}
	if p.EndTime, err = r.U64(); err != nil {
		return nil, err
	}
	if p.DataBitrate, err = r.U32(); err != nil {
		return nil, err
	}
	if p.BufferSize, err = r.U32(); err != nil {
		return nil, err
	}
	if p.InitialBufferFullness, err = r.U32(); err != nil {
		return nil, err
	}
	if p.AlternateDataBitrate, err = r.U32(); err != nil {
		return nil, err
	}
	if p.AlternateBufferSize, err = r.U32(); err != nil {
		return nil, err
	}
	if p.AlternateInitialBufferFullness, err = r.U32(); err != nil {
		return nil, err
	}
	if p.MaximumObjectSize, err = r.U32(); err != nil {
		return nil, err
	}
	if p.Flags, err = r.U32(); err != nil {
		return nil, err
	}
	if p.StreamNumber, err = r.U16(); err != nil {
		return nil, err
	}
	if p.StreamLanguageIDIndex, err = r.U16(); err != nil {
		return nil, err
	}
	if p.AverageTimePerFrame, err = r.U64(); err != nil {
		return nil, err
	}
	nameCount, err := r.U16()
	if err != nil {
		return nil, err
	}
	systemCount, err := r.U16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < nameCount; i++ {
		n, err := parseStreamName(r)
		if err != nil {
			return nil, err
		}
		p.StreamNames = append(p.StreamNames, n)
	}
	for i := uint16(0); i < systemCount; i++ {
		s, err := parsePayloadExtensionSystem(r)
		if err != nil {
			return nil, err
		}
		p.PayloadExtensionSystems = append(p.PayloadExtensionSystems, s)
	}
	if r.Remaining() > 0 {
		if p.StreamProperties, err = parseHeaderObject(r); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (p *ExtendedStreamProperties) ObjectGUID() uuid.UUID {
	return ExtendedStreamPropertiesObjectGUID
}

func (p *ExtendedStreamProperties) SizeOf() int {
	size := frameHeaderSize + 8 + 8 + 8*4 + 2 + 2 + 8 + 2 + 2
	for _, n := range p.StreamNames {
		size += 2 + 2 + n.Name.SizeOf()
	}
	for _, s := range p.PayloadExtensionSystems {
		size += 16 + 2 + 4 + s.Info.Len()
	}
	if p.StreamProperties != nil {
		size += p.StreamProperties.SizeOf()
	}
	return size
}

func (p *ExtendedStreamProperties) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ExtendedStreamPropertiesObjectGUID, p.SizeOf())
	fw.u64(p.StartTime)
	fw.u64(p.EndTime)
	fw.u32(p.DataBitrate)
	fw.u32(p.BufferSize)
	fw.u32(p.InitialBufferFullness)
	fw.u32(p.AlternateDataBitrate)
	fw.u32(p.AlternateBufferSize)
	fw.u32(p.AlternateInitialBufferFullness)
	fw.u32(p.MaximumObjectSize)
	fw.u32(p.Flags)
	fw.u16(p.StreamNumber)
	fw.u16(p.StreamLanguageIDIndex)
	fw.u64(p.AverageTimePerFrame)
	fw.u16len("stream names", len(p.StreamNames))
	fw.u16len("payload extension systems", len(p.PayloadExtensionSystems))
	for _, n := range p.StreamNames {
		fw.u16(n.LanguageIDIndex)
		fw.u16len("stream name", n.Name.SizeOf())
		fw.widestr(n.Name)
	}
	for _, s := range p.PayloadExtensionSystems {
		fw.guid(s.ID)
		fw.u16(s.DataSize)
		fw.u32len("extension system info", s.Info.Len())
		fw.span(s.Info)
	}
	if err := fw.Err(); err != nil {
		return err
	}
	if p.StreamProperties != nil {
		return p.StreamProperties.Write(w)
	}
	return nil
}

// AdvancedMutualExclusion marks streams that are mutually exclusive
// by language, bitrate or an unknown criterion.
type AdvancedMutualExclusion struct {
	ExclusionType uuid.UUID
	StreamNumbers []uint16
}

func parseAdvancedMutualExclusion(r *Reader) (*AdvancedMutualExclusion, error) {
	var (
		p   AdvancedMutualExclusion
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

func (p *AdvancedMutualExclusion) ObjectGUID() uuid.UUID {
	return AdvancedMutualExclusionObjectGUID
}

func (p *AdvancedMutualExclusion) SizeOf() int {
	return frameHeaderSize + 16 + 2 + len(p.StreamNumbers)*2
}

func (p *AdvancedMutualExclusion) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, AdvancedMutualExclusionObjectGUID, p.SizeOf())
	fw.guid(p.ExclusionType)
	writeU16List(fw, "stream numbers", p.StreamNumbers)
	return fw.Err()
}

// GroupMutualExclusion expresses exclusion between groups of streams.
type GroupMutualExclusion struct {
	ExclusionType uuid.UUID
	Records       [][]uint16
}

func parseGroupMutualExclusion(r *Reader) (*GroupMutualExclusion, error) {
	var (
		p   GroupMutualExclusion
		err error
	)
	if p.ExclusionType, err = r.GUID(); err != nil {
		return nil, err
	}
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < count; i++ {
		record, err := parseU16List(r)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, record)
	}
	return &p, nil
}

func (p *GroupMutualExclusion) ObjectGUID() uuid.UUID {
	return GroupMutualExclusionObjectGUID
}

func (p *GroupMutualExclusion) SizeOf() int {
	size := frameHeaderSize + 16 + 2
	for _, record := range p.Records {
		size += 2 + len(record)*2
	}
	return size
}

func (p *GroupMutualExclusion) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, GroupMutualExclusionObjectGUID, p.SizeOf())
	fw.guid(p.ExclusionType)
	fw.u16len("records", len(p.Records))
	for _, record := range p.Records {
		writeU16List(fw, "record streams", record)
	}
	return fw.Err()
}

// PriorityRecord assigns a priority to one stream.
type PriorityRecord struct {
	StreamNumber  uint16
	PriorityFlags uint16
}

// StreamPrioritization ranks streams for bandwidth-constrained delivery.
type StreamPrioritization struct {
	Records []PriorityRecord
}

func parseStreamPrioritization(r *Reader) (*StreamPrioritization, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &StreamPrioritization{}
	for i := uint16(0); i < count; i++ {
		var rec PriorityRecord
		if rec.StreamNumber, err = r.U16(); err != nil {
			return nil, err
		}
		if rec.PriorityFlags, err = r.U16(); err != nil {
			return nil, err
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

func (p *StreamPrioritization) ObjectGUID() uuid.UUID {
	return StreamPrioritizationObjectGUID
}

func (p *StreamPrioritization) SizeOf() int {
	return frameHeaderSize + 2 + len(p.Records)*4
}

func (p *StreamPrioritization) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, StreamPrioritizationObjectGUID, p.SizeOf())
	fw.u16len("priority records", len(p.Records))
	for _, rec := range p.Records {
		fw.u16(rec.StreamNumber)
		fw.u16(rec.PriorityFlags)
	}
	return fw.Err()
}

// BandwidthSharing declares streams that share bandwidth.
type BandwidthSharing struct {
	SharingType   uuid.UUID
	DataBitrate   uint32
	BufferSize    uint32
	StreamNumbers []uint16
}

func parseBandwidthSharing(r *Reader) (*BandwidthSharing, error) {
	var (
		p   BandwidthSharing
		err error
	)
	if p.SharingType, err = r.GUID(); err != nil {
		return nil, err
	}
	if p.DataBitrate, err = r.U32(); err != nil {
		return nil, err
	}
	if p.BufferSize, err = r.U32(); err != nil {
		return nil, err
	}
	if p.StreamNumbers, err = parseU16List(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *BandwidthSharing) ObjectGUID() uuid.UUID {
	return BandwidthSharingObjectGUID
}

func (p *BandwidthSharing) SizeOf() int {
	return frameHeaderSize + 16 + 4 + 4 + 2 + len(p.StreamNumbers)*2
}

func (p *BandwidthSharing) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, BandwidthSharingObjectGUID, p.SizeOf())
	fw.guid(p.SharingType)
	fw.u32(p.DataBitrate)
	fw.u32(p.BufferSize)
	writeU16List(fw, "stream numbers", p.StreamNumbers)
	return fw.Err()
}

// LanguageList enumerates the RFC 1766 language identifiers referenced
// by index from other objects.
type LanguageList struct {
	LanguageIDs []WideStr
}

func parseLanguageList(r *Reader) (*LanguageList, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &LanguageList{}
	for i := uint16(0); i < count; i++ {
		idLen, err := r.U8()
		if err != nil {
			return nil, err
		}
		sp, err := r.Take(uint64(idLen))
		if err != nil {
			return nil, err
		}
		id, err := parseWideStr(sp)
		if err != nil {
			return nil, err
		}
		p.LanguageIDs = append(p.LanguageIDs, id)
	}
	return p, nil
}

func (p *LanguageList) ObjectGUID() uuid.UUID {
	return LanguageListObjectGUID
}

func (p *LanguageList) SizeOf() int {
	size := frameHeaderSize + 2
	for _, id := range p.LanguageIDs {
		size += 1 + id.SizeOf()
	}
	return size
}

func (p *LanguageList) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, LanguageListObjectGUID, p.SizeOf())
	fw.u16len("language ids", len(p.LanguageIDs))
	for _, id := range p.LanguageIDs {
		fw.u8len("language id", id.SizeOf())
		fw.widestr(id)
	}
	return fw.Err()
}

// MetadataRecord is one name/value pair scoped to a stream.
type MetadataRecord struct {
	Reserved     uint16
	StreamNumber uint16
	DataType     uint16
	Name         WideStr
	Data         Span
}

// Metadata holds per-stream metadata records.
type Metadata struct {
	Records []MetadataRecord
}

func parseMetadataRecord(r *Reader) (MetadataRecord, error) {
	var (
		rec MetadataRecord
		err error
	)
	if rec.Reserved, err = r.U16(); err != nil {
		return rec, err
	}
	if rec.StreamNumber, err = r.U16(); err != nil {
		return rec, err
	}
	nameLen, err := r.U16()
	if err != nil {
		return rec, err
	}
	if rec.DataType, err = r.U16(); err != nil {
		return rec, err
	}
	dataLen, err := r.U32()
	if err != nil {
		return rec, err
	}
	nameSpan, err := r.Take(uint64(nameLen))
	if err != nil {
		return rec, err
	}
	if rec.Name, err = parseWideStr(nameSpan); err != nil {
		return rec, err
	}
	if rec.Data, err = r.Take(uint64(dataLen)); err != nil {
		return rec, err
	}
	return rec, nil
}

func writeMetadataRecord(fw *fieldWriter, first uint16, rec MetadataRecord) {
	fw.u16(first)
	fw.u16(rec.StreamNumber)
	fw.u16len("record name", rec.Name.SizeOf())
	fw.u16(rec.DataType)
	fw.u32len("record data", rec.Data.Len())
	fw.widestr(rec.Name)
	fw.span(rec.Data)
}

func metadataRecordSize(rec MetadataRecord) int {
	return 2 + 2 + 2 + 2 + 4 + rec.Name.SizeOf() + rec.Data.Len()
}

func parseMetadata(r *Reader) (*Metadata, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &Metadata{}
	for i := uint16(0); i < count; i++ {
		rec, err := parseMetadataRecord(r)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

func (p *Metadata) ObjectGUID() uuid.UUID {
	return MetadataObjectGUID
}

func (p *Metadata) SizeOf() int {
	size := frameHeaderSize + 2
	for _, rec := range p.Records {
		size += metadataRecordSize(rec)
	}
	return size
}

func (p *Metadata) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, MetadataObjectGUID, p.SizeOf())
	fw.u16len("description records", len(p.Records))
	for _, rec := range p.Records {
		writeMetadataRecord(fw, rec.Reserved, rec)
	}
	return fw.Err()
}

// MetadataLibraryRecord is a metadata record whose first field indexes
// the language list instead of being reserved.
type MetadataLibraryRecord struct {
	LanguageListIndex uint16
	StreamNumber      uint16
	DataType          uint16
	Name              WideStr
	Data              Span
}

// MetadataLibrary holds the language-aware metadata records.
type MetadataLibrary struct {
	Records []MetadataLibraryRecord
}

func parseMetadataLibrary(r *Reader) (*MetadataLibrary, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &MetadataLibrary{}
	for i := uint16(0); i < count; i++ {
		rec, err := parseMetadataRecord(r)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, MetadataLibraryRecord{
			LanguageListIndex: rec.Reserved,
			StreamNumber:      rec.StreamNumber,
			DataType:          rec.DataType,
			Name:              rec.Name,
			Data:              rec.Data,
		})
	}
	return p, nil
}

func (p *MetadataLibrary) ObjectGUID() uuid.UUID {
	return MetadataLibraryObjectGUID
}

func (p *MetadataLibrary) SizeOf() int {
	size := frameHeaderSize + 2
	for _, rec := range p.Records {
		size += 2 + 2 + 2 + 2 + 4 + rec.Name.SizeOf() + rec.Data.Len()
	}
	return size
}

func (p *MetadataLibrary) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, MetadataLibraryObjectGUID, p.SizeOf())
	fw.u16len("description records", len(p.Records))
	for _, rec := range p.Records {
		writeMetadataRecord(fw, rec.LanguageListIndex, MetadataRecord{
			StreamNumber: rec.StreamNumber,
			DataType:     rec.DataType,
			Name:         rec.Name,
			Data:         rec.Data,
		})
	}
	return fw.Err()
}

// IndexSpecifier selects a stream and the aspect of it to index.
type IndexSpecifier struct {
	StreamNumber uint16
	IndexType    uint16
}

func parseIndexSpecifiers(r *Reader) ([]IndexSpecifier, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	var specifiers []IndexSpecifier
	for i := uint16(0); i < count; i++ {
		var s IndexSpecifier
		if s.StreamNumber, err = r.U16(); err != nil {
			return nil, err
		}
		if s.IndexType, err = r.U16(); err != nil {
			return nil, err
		}
		specifiers = append(specifiers, s)
	}
	return specifiers, nil
}

func writeIndexSpecifiers(fw *fieldWriter, specifiers []IndexSpecifier) {
	fw.u16len("index specifiers", len(specifiers))
	for _, s := range specifiers {
		fw.u16(s.StreamNumber)
		fw.u16(s.IndexType)
	}
}

// IndexParameters configures time-based index generation.
type IndexParameters struct {
	IndexEntryTimeInterval uint32
	Specifiers             []IndexSpecifier
}

func parseIndexParameters(r *Reader) (*IndexParameters, error) {
	var (
		p   IndexParameters
		err error
	)
	if p.IndexEntryTimeInterval, err = r.U32(); err != nil {
		return nil, err
	}
	if p.Specifiers, err = parseIndexSpecifiers(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *IndexParameters) ObjectGUID() uuid.UUID {
	return IndexParametersObjectGUID
}

func (p *IndexParameters) SizeOf() int {
	return frameHeaderSize + 4 + 2 + len(p.Specifiers)*4
}

func (p *IndexParameters) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, IndexParametersObjectGUID, p.SizeOf())
	fw.u32(p.IndexEntryTimeInterval)
	writeIndexSpecifiers(fw, p.Specifiers)
	return fw.Err()
}

// MediaObjectIndexParameters configures object-count-based indexing.
type MediaObjectIndexParameters struct {
	IndexEntryCountInterval uint32
	Specifiers              []IndexSpecifier
}

func parseMediaObjectIndexParameters(r *Reader) (*MediaObjectIndexParameters, error) {
	var (
		p   MediaObjectIndexParameters
		err error
	)
	if p.IndexEntryCountInterval, err = r.U32(); err != nil {
		return nil, err
	}
	if p.Specifiers, err = parseIndexSpecifiers(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *MediaObjectIndexParameters) ObjectGUID() uuid.UUID {
	return MediaObjectIndexParametersObjectGUID
}

func (p *MediaObjectIndexParameters) SizeOf() int {
	return frameHeaderSize + 4 + 2 + len(p.Specifiers)*4
}

func (p *MediaObjectIndexParameters) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, MediaObjectIndexParametersObjectGUID, p.SizeOf())
	fw.u32(p.IndexEntryCountInterval)
	writeIndexSpecifiers(fw, p.Specifiers)
	return fw.Err()
}

// TimecodeIndexParameters configures timecode-based indexing.
type TimecodeIndexParameters struct {
	IndexEntryTimeInterval uint32
	Specifiers             []IndexSpecifier
}

func parseTimecodeIndexParameters(r *Reader) (*TimecodeIndexParameters, error) {
	var (
		p   TimecodeIndexParameters
		err error
	)
	if p.IndexEntryTimeInterval, err = r.U32(); err != nil {
		return nil, err
	}
	if p.Specifiers, err = parseIndexSpecifiers(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *TimecodeIndexParameters) ObjectGUID() uuid.UUID {
	return TimecodeIndexParametersObjectGUID
}

func (p *TimecodeIndexParameters) SizeOf() int {
	return frameHeaderSize + 4 + 2 + len(p.Specifiers)*4
}

func (p *TimecodeIndexParameters) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, TimecodeIndexParametersObjectGUID, p.SizeOf())
	fw.u32(p.IndexEntryTimeInterval)
	writeIndexSpecifiers(fw, p.Specifiers)
	return fw.Err()
}

// Compatibility is a two-byte legacy marker.
type Compatibility struct {
	Profile uint8
	Mode    uint8
}

func parseCompatibility(r *Reader) (*Compatibility, error) {
	var (
		p   Compatibility
		err error
	)
	if p.Profile, err = r.U8(); err != nil {
		return nil, err
	}
	if p.Mode, err = r.U8(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Compatibility) ObjectGUID() uuid.UUID {
	return CompatibilityObjectGUID
}

func (p *Compatibility) SizeOf() int {
	return frameHeaderSize + 2
}

func (p *Compatibility) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, CompatibilityObjectGUID, p.SizeOf())
	fw.u8(p.Profile)
	fw.u8(p.Mode)
	return fw.Err()
}

// EncryptedObjectRecord names one encrypted object.
type EncryptedObjectRecord struct {
	Type uint16
	Data Span
}

// ContentEncryptionRecord is one DRM system's record set.
type ContentEncryptionRecord struct {
	SystemID               uuid.UUID
	SystemVersion          uint32
	EncryptedObjectRecords []EncryptedObjectRecord
	Data                   Span
}

// AdvancedContentEncryption carries next-generation DRM records.
type AdvancedContentEncryption struct {
	Records []ContentEncryptionRecord
}

func parseContentEncryptionRecord(r *Reader) (ContentEncryptionRecord, error) {
	var (
		rec ContentEncryptionRecord
		err error
	)
	if rec.SystemID, err = r.GUID(); err != nil {
		return rec, err
	}
	if rec.SystemVersion, err = r.U32(); err != nil {
		return rec, err
	}
	count, err := r.U16()
	if err != nil {
		return rec, err
	}
	for i := uint16(0); i < count; i++ {
		var obj EncryptedObjectRecord
		if obj.Type, err = r.U16(); err != nil {
			return rec, err
		}
		objLen, err := r.U16()
		if err != nil {
			return rec, err
		}
		if obj.Data, err = r.Take(uint64(objLen)); err != nil {
			return rec, err
		}
		rec.EncryptedObjectRecords = append(rec.EncryptedObjectRecords, obj)
	}
	if rec.Data, err = takeU32Prefixed(r); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseAdvancedContentEncryption(r *Reader) (*AdvancedContentEncryption, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &AdvancedContentEncryption{}
	for i := uint16(0); i < count; i++ {
		rec, err := parseContentEncryptionRecord(r)
		if err != nil {
			return nil, err
		}
		p.Records = append(p.Records, rec)
	}
	return p, nil
}

func (p *AdvancedContentEncryption) ObjectGUID() uuid.UUID {
	return AdvancedContentEncryptionObjectGUID
}

func (p *AdvancedContentEncryption) SizeOf() int {
	size := frameHeaderSize + 2
	for _, rec := range p.Records {
		size += 16 + 4 + 2
		for _, obj := range rec.EncryptedObjectRecords {
			size += 2 + 2 + obj.Data.Len()
		}
		size += 4 + rec.Data.Len()
	}
	return size
}

func (p *AdvancedContentEncryption) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, AdvancedContentEncryptionObjectGUID, p.SizeOf())
	fw.u16len("content encryption records", len(p.Records))
	for _, rec := range p.Records {
		fw.guid(rec.SystemID)
		fw.u32(rec.SystemVersion)
		fw.u16len("encrypted object records", len(rec.EncryptedObjectRecords))
		for _, obj := range rec.EncryptedObjectRecords {
			fw.u16(obj.Type)
			fw.u16len("encrypted object data", obj.Data.Len())
			fw.span(obj.Data)
		}
		fw.u32len("record data", rec.Data.Len())
		fw.span(rec.Data)
	}
	return fw.Err()
}
