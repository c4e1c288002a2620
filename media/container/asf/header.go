package asf

import (
	"io"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// headerObjectSize is the fixed part of the Header Objects section:
// the 24-byte frame plus num_objects:u32, reserved1:u8, reserved2:u8.
const headerObjectSize = 30

// HeaderObject is one typed header-section object. SizeOf covers the
// full frame including the 24-byte object header, and Write emits
// exactly SizeOf bytes.
type HeaderObject interface {
	ObjectGUID() uuid.UUID
	SizeOf() int
	Write(w io.Writer) error
}

// HeaderObjects is the top-level header section. NumObjects is the
// count declared on the wire; it is preserved on write but never
// validated against len(Objects).
type HeaderObjects struct {
	NumObjects uint32
	Reserved1  uint8
	Reserved2  uint8
	Objects    []HeaderObject
}

// ParseHeaderObjects decodes the mandatory first section of the stream.
func ParseHeaderObjects(r *Reader) (*HeaderObjects, error) {
	h, err := parseHeaderObjects(r)
	if err != nil {
		return nil, errs.Context("HeaderObjects", err)
	}
	return h, nil
}

func parseHeaderObjects(r *Reader) (*HeaderObjects, error) {
	start := r.Offset()
	h, err := parseObjectHeader(r)
	if err != nil {
		return nil, err
	}
	if h.GUID != HeaderObjectGUID {
		return nil, errs.TagMismatch(start, GUIDName(HeaderObjectGUID), GUIDName(h.GUID))
	}
	if h.Size < headerObjectSize {
		return nil, errs.Eof(r.Offset())
	}
	numObjects, err := r.U32()
	if err != nil {
		return nil, err
	}
	reserved1, err := r.U8()
	if err != nil {
		return nil, err
	}
	reserved2, err := r.U8()
	if err != nil {
		return nil, err
	}
	body, err := r.Take(h.Size - headerObjectSize)
	if err != nil {
		return nil, err
	}
	objects, err := parseHeaderObjectList(NewReader(body))
	if err != nil {
		return nil, err
	}
	return &HeaderObjects{
		NumObjects: numObjects,
		Reserved1:  reserved1,
		Reserved2:  reserved2,
		Objects:    objects,
	}, nil
}

func parseHeaderObjectList(r *Reader) ([]HeaderObject, error) {
	var objects []HeaderObject
	for r.Remaining() > 0 {
		obj, err := parseHeaderObject(r)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// parseHeaderObject frames one object and dispatches its body decoder
// by GUID. Unrecognized GUIDs become Unknown, never an error.
func parseHeaderObject(r *Reader) (HeaderObject, error) {
	obj, err := parseObject(r)
	if err != nil {
		return nil, err
	}
	br := NewReader(obj.Data)
	var (
		ho HeaderObject
	)
	switch obj.GUID {
	case FilePropertiesObjectGUID:
		ho, err = parseFileProperties(br)
	case StreamPropertiesObjectGUID:
		ho, err = parseStreamProperties(br)
	case HeaderExtensionObjectGUID:
		ho, err = parseHeaderExtension(br)
	case CodecListObjectGUID:
		ho, err = parseCodecList(br)
	case ScriptCommandObjectGUID:
		ho, err = parseScriptCommand(br)
	case MarkerObjectGUID:
		ho, err = parseMarker(br)
	case BitrateMutualExclusionObjectGUID:
		ho, err = parseBitrateMutualExclusion(br)
	case ErrorCorrectionObjectGUID:
		ho, err = parseErrorCorrection(br)
	case ContentDescriptionObjectGUID:
		ho, err = parseContentDescription(br)
	case ExtendedContentDescriptionObjectGUID:
		ho, err = parseExtendedContentDescription(br)
	case StreamBitratePropertiesObjectGUID:
		ho, err = parseStreamBitrateProperties(br)
	case ContentBrandingObjectGUID:
		ho, err = parseContentBranding(br)
	case ContentEncryptionObjectGUID:
		ho, err = parseContentEncryption(br)
	case ExtendedContentEncryptionObjectGUID:
		ho, err = parseExtendedContentEncryption(br)
	case DigitalSignatureObjectGUID:
		ho, err = parseDigitalSignature(br)
	case PaddingObjectGUID:
		ho = &Padding{Length: obj.Data.Len()}
	default:
		return &Unknown{Object: obj}, nil
	}
	if err != nil {
		return nil, errs.Context(GUIDName(obj.GUID), err)
	}
	return ho, nil
}

func (h *HeaderObjects) SizeOf() int {
	size := headerObjectSize
	for _, obj := range h.Objects {
		size += obj.SizeOf()
	}
	return size
}

func (h *HeaderObjects) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, HeaderObjectGUID, h.SizeOf())
	fw.u32(h.NumObjects)
	fw.u8(h.Reserved1)
	fw.u8(h.Reserved2)
	if err := fw.Err(); err != nil {
		return err
	}
	for _, obj := range h.Objects {
		if err := obj.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// Unknown wraps an object whose GUID is not in the dispatch table.
type Unknown struct {
	Object Object
}

func (u *Unknown) ObjectGUID() uuid.UUID {
	return u.Object.GUID
}

func (u *Unknown) SizeOf() int {
	return u.Object.SizeOf()
}

func (u *Unknown) Write(w io.Writer) error {
	return u.Object.Write(w)
}

// Padding is an opaque filler object. Only the body length is retained;
// writing emits that many zero bytes.
type Padding struct {
	Length int
}

func (p *Padding) ObjectGUID() uuid.UUID {
	return PaddingObjectGUID
}

func (p *Padding) SizeOf() int {
	return frameHeaderSize + p.Length
}

func (p *Padding) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, PaddingObjectGUID, p.SizeOf())
	fw.zeros(p.Length)
	return fw.Err()
}
