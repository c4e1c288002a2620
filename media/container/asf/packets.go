package asf

import "github.com/bugVanisher/goasf/common/errs"

// FieldType is the two-bit code selecting the width of a variable-size
// integer field inside a data packet header.
type FieldType uint8

const (
	FieldTypeNone FieldType = iota
	FieldTypeByte
	FieldTypeWord
	FieldTypeDword
)

// read consumes the field's bytes and zero-extends the value. None
// consumes nothing and yields zero.
func (t FieldType) read(r *Reader) (uint32, error) {
	switch t {
	case FieldTypeByte:
		v, err := r.U8()
		return uint32(v), err
	case FieldTypeWord:
		v, err := r.U16()
		return uint32(v), err
	case FieldTypeDword:
		return r.U32()
	default:
		return 0, nil
	}
}

// LengthTypeFlags is the first flags byte of the payload parsing data.
// Bits are taken MSB-first: error correction flag, packet length type,
// padding length type, sequence type, multiple payloads flag.
type LengthTypeFlags struct {
	ErrorCorrectionPresent bool
	PacketLenType          FieldType
	PaddingLenType         FieldType
	SequenceType           FieldType
	MultiplePayloads       bool
}

func parseLengthTypeFlags(b byte) LengthTypeFlags {
	return LengthTypeFlags{
		ErrorCorrectionPresent: b&0x80 != 0,
		PacketLenType:          FieldType(b >> 5 & 0x3),
		PaddingLenType:         FieldType(b >> 3 & 0x3),
		SequenceType:           FieldType(b >> 1 & 0x3),
		MultiplePayloads:       b&0x01 != 0,
	}
}

// PropertyFlags is the second flags byte, selecting the widths of the
// per-payload header fields. Bits are taken MSB-first: stream number,
// media object number, offset into media object, replicated data.
type PropertyFlags struct {
	StreamNumberLenType          FieldType
	MediaObjectNumberLenType     FieldType
	OffsetIntoMediaObjectLenType FieldType
	ReplicatedDataLenType        FieldType
}

func parsePropertyFlags(b byte) PropertyFlags {
	return PropertyFlags{
		StreamNumberLenType:          FieldType(b >> 6 & 0x3),
		MediaObjectNumberLenType:     FieldType(b >> 4 & 0x3),
		OffsetIntoMediaObjectLenType: FieldType(b >> 2 & 0x3),
		ReplicatedDataLenType:        FieldType(b & 0x3),
	}
}

// ErrorCorrectionData is the optional three-byte block preceding the
// payload parsing data.
type ErrorCorrectionData struct {
	Flags uint8
	Type  uint8
	Cycle uint8
}

// PayloadParsingData carries the decoded flag bytes and the packet's
// variable-width header integers.
type PayloadParsingData struct {
	Flags         LengthTypeFlags
	Properties    PropertyFlags
	PacketLength  uint32
	Sequence      uint32
	PaddingLength uint32
	SendTime      uint32
	Duration      uint16
}

// Payload is the smallest addressable piece of media in a packet.
// Normal payloads fill OffsetIntoMediaObject, ReplicatedData and Data;
// compressed payloads (replicated data length 1 on the wire) fill
// PresentationTime, PresentationTimeDelta and SubPayloads instead.
type Payload struct {
	StreamNumber      uint8
	KeyFrame          bool
	MediaObjectNumber uint32

	OffsetIntoMediaObject uint32
	ReplicatedData        Span
	Data                  Span

	Compressed            bool
	PresentationTime      uint32
	PresentationTimeDelta uint8
	SubPayloads           []Span
}

// DataPacket is one fixed-size record of the Data Object. Multiple on
// the parsing data flags distinguishes the single payload case (one
// element in Payloads) from the multi payload case.
type DataPacket struct {
	ErrorCorrection *ErrorCorrectionData
	ParsingData     PayloadParsingData
	Payloads        []*Payload
}

// parseDataPacket decodes one packet. fixedPacketLen comes from the
// enclosing Data Object's arithmetic and bounds every packet; it is
// never re-read from the wire.
func parseDataPacket(r *Reader, fixedPacketLen uint64) (*DataPacket, error) {
	pkt, err := parseDataPacketBody(r, fixedPacketLen)
	if err != nil {
		return nil, errs.Context("DataPacket", err)
	}
	return pkt, nil
}

func parseDataPacketBody(r *Reader, fixedPacketLen uint64) (*DataPacket, error) {
	start := r.Consumed()

	// The peek does not consume: when the high bit is clear the byte
	// belongs to the payload parsing data.
	first, err := r.Peek()
	if err != nil {
		return nil, err
	}
	var ec *ErrorCorrectionData
	if first&0x80 != 0 {
		ec, err = parseErrorCorrectionData(r)
		if err != nil {
			return nil, err
		}
	}

	pp, err := parsePayloadParsingData(r)
	if err != nil {
		return nil, err
	}

	headerLen := r.Consumed() - start
	var raw Span
	if pp.PacketLength == 0 {
		n := int64(fixedPacketLen) - int64(headerLen) - int64(pp.PaddingLength)
		if n < 0 {
			return nil, errs.Eof(r.Offset())
		}
		if raw, err = r.Take(uint64(n)); err != nil {
			return nil, err
		}
	} else {
		if raw, err = r.Take(uint64(pp.PacketLength)); err != nil {
			return nil, err
		}
	}

	payloads, err := parsePayloads(raw, pp)
	if err != nil {
		return nil, err
	}

	if err := r.Skip(uint64(pp.PaddingLength)); err != nil {
		return nil, err
	}
	if consumed := uint64(r.Consumed() - start); consumed != fixedPacketLen {
		return nil, errs.InvalidField(r.Offset(), "packet spans %d bytes, fixed packet length is %d", consumed, fixedPacketLen)
	}

	return &DataPacket{
		ErrorCorrection: ec,
		ParsingData:     pp,
		Payloads:        payloads,
	}, nil
}

func parseErrorCorrectionData(r *Reader) (*ErrorCorrectionData, error) {
	var (
		ec  ErrorCorrectionData
		err error
	)
	if ec.Flags, err = r.U8(); err != nil {
		return nil, errs.Context("ErrorCorrectionData", err)
	}
	if ec.Type, err = r.U8(); err != nil {
		return nil, errs.Context("ErrorCorrectionData", err)
	}
	if ec.Cycle, err = r.U8(); err != nil {
		return nil, errs.Context("ErrorCorrectionData", err)
	}
	return &ec, nil
}

func parsePayloadParsingData(r *Reader) (PayloadParsingData, error) {
	pp, err := parsePayloadParsingDataBody(r)
	if err != nil {
		return pp, errs.Context("PayloadParsingData", err)
	}
	return pp, nil
}

func parsePayloadParsingDataBody(r *Reader) (PayloadParsingData, error) {
	var pp PayloadParsingData
	b0, err := r.U8()
	if err != nil {
		return pp, err
	}
	b1, err := r.U8()
	if err != nil {
		return pp, err
	}
	pp.Flags = parseLengthTypeFlags(b0)
	pp.Properties = parsePropertyFlags(b1)
	if pp.PacketLength, err = pp.Flags.PacketLenType.read(r); err != nil {
		return pp, err
	}
	if pp.Sequence, err = pp.Flags.SequenceType.read(r); err != nil {
		return pp, err
	}
	if pp.PaddingLength, err = pp.Flags.PaddingLenType.read(r); err != nil {
		return pp, err
	}
	if pp.SendTime, err = r.U32(); err != nil {
		return pp, err
	}
	if pp.Duration, err = r.U16(); err != nil {
		return pp, err
	}
	return pp, nil
}

// parsePayloads decodes the raw payload region. In the single payload
// case the one payload owns the whole region; in the multi payload case
// a payload flags byte declares the count and a per-payload length type.
func parsePayloads(raw Span, pp PayloadParsingData) ([]*Payload, error) {
	br := NewReader(raw)
	if !pp.Flags.MultiplePayloads {
		p, err := parsePayload(br, pp.Properties, FieldTypeNone, false)
		if err != nil {
			return nil, err
		}
		return []*Payload{p}, nil
	}
	flags, err := br.U8()
	if err != nil {
		return nil, err
	}
	numPayloads := flags & 0x3F
	payloadLenType := FieldType(flags >> 6)
	payloads := make([]*Payload, 0, numPayloads)
	for i := 0; i < int(numPayloads); i++ {
		p, err := parsePayload(br, pp.Properties, payloadLenType, true)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, p)
	}
	return payloads, nil
}

func parsePayload(r *Reader, props PropertyFlags, payloadLenType FieldType, multi bool) (*Payload, error) {
	p, err := parsePayloadBody(r, props, payloadLenType, multi)
	if err != nil {
		return nil, errs.Context("Payload", err)
	}
	return p, nil
}

func parsePayloadBody(r *Reader, props PropertyFlags, payloadLenType FieldType, multi bool) (*Payload, error) {
	var p Payload
	streamFlags, err := r.U8()
	if err != nil {
		return nil, err
	}
	p.StreamNumber = streamFlags & 0x7F
	p.KeyFrame = streamFlags&0x80 != 0
	if p.MediaObjectNumber, err = props.MediaObjectNumberLenType.read(r); err != nil {
		return nil, err
	}
	timeOrOffset, err := props.OffsetIntoMediaObjectLenType.read(r)
	if err != nil {
		return nil, err
	}
	replicatedDataLen, err := props.ReplicatedDataLenType.read(r)
	if err != nil {
		return nil, err
	}

	// Replicated data length 1 marks the compressed encoding: a shared
	// time base followed by length-prefixed sub-payloads.
	if replicatedDataLen == 1 {
		p.Compressed = true
		p.PresentationTime = timeOrOffset
		if p.PresentationTimeDelta, err = r.U8(); err != nil {
			return nil, err
		}
		region, err := takePayloadData(r, payloadLenType, multi)
		if err != nil {
			return nil, err
		}
		sr := NewReader(region)
		for sr.Remaining() > 0 {
			subLen, err := sr.U8()
			if err != nil {
				return nil, err
			}
			sub, err := sr.Take(uint64(subLen))
			if err != nil {
				return nil, err
			}
			p.SubPayloads = append(p.SubPayloads, sub)
		}
		return &p, nil
	}

	p.OffsetIntoMediaObject = timeOrOffset
	if p.ReplicatedData, err = r.Take(uint64(replicatedDataLen)); err != nil {
		return nil, err
	}
	if p.Data, err = takePayloadData(r, payloadLenType, multi); err != nil {
		return nil, err
	}
	return &p, nil
}

// takePayloadData slices this payload's data region: length-prefixed in
// multi payload mode, the remainder of the raw payload span otherwise.
func takePayloadData(r *Reader, payloadLenType FieldType, multi bool) (Span, error) {
	if multi {
		n, err := payloadLenType.read(r)
		if err != nil {
			return Span{}, err
		}
		return r.Take(uint64(n))
	}
	return r.Rest(), nil
}
