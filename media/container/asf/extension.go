package asf

import (
	"io"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// HeaderExtension nests a second object list with its own dispatch
// table for the v2/v3 header objects.
type HeaderExtension struct {
	Reserved1 uuid.UUID
	Reserved2 uint16
	Objects   []HeaderObject
}

func parseHeaderExtension(r *Reader) (*HeaderExtension, error) {
	var (
		p   HeaderExtension
		err error
	)
	if p.Reserved1, err = r.GUID(); err != nil {
		return nil, err
	}
	if p.Reserved2, err = r.U16(); err != nil {
		return nil, err
	}
	extData, err := takeU32Prefixed(r)
	if err != nil {
		return nil, err
	}
	er := NewReader(extData)
	for er.Remaining() > 0 {
		obj, err := parseExtensionObject(er)
		if err != nil {
			return nil, err
		}
		p.Objects = append(p.Objects, obj)
	}
	return &p, nil
}

// parseExtensionObject dispatches the extension-only variants.
// Unrecognized GUIDs become Unknown, as at the top level.
func parseExtensionObject(r *Reader) (HeaderObject, error) {
	obj, err := parseObject(r)
	if err != nil {
		return nil, err
	}
	br := NewReader(obj.Data)
	var (
		ho HeaderObject
	)
	switch obj.GUID {
	case ExtendedStreamPropertiesObjectGUID:
		ho, err = parseExtendedStreamProperties(br)
	case AdvancedMutualExclusionObjectGUID:
		ho, err = parseAdvancedMutualExclusion(br)
	case GroupMutualExclusionObjectGUID:
		ho, err = parseGroupMutualExclusion(br)
	case StreamPrioritizationObjectGUID:
		ho, err = parseStreamPrioritization(br)
	case BandwidthSharingObjectGUID:
		ho, err = parseBandwidthSharing(br)
	case LanguageListObjectGUID:
		ho, err = parseLanguageList(br)
	case MetadataObjectGUID:
		ho, err = parseMetadata(br)
	case MetadataLibraryObjectGUID:
		ho, err = parseMetadataLibrary(br)
	case IndexParametersObjectGUID:
		ho, err = parseIndexParameters(br)
	case MediaObjectIndexParametersObjectGUID:
		ho, err = parseMediaObjectIndexParameters(br)
	case TimecodeIndexParametersObjectGUID:
		ho, err = parseTimecodeIndexParameters(br)
	case CompatibilityObjectGUID:
		ho, err = parseCompatibility(br)
	case AdvancedContentEncryptionObjectGUID:
		ho, err = parseAdvancedContentEncryption(br)
	default:
		return &Unknown{Object: obj}, nil
	}
	if err != nil {
		return nil, errs.Context(GUIDName(obj.GUID), err)
	}
	return ho, nil
}

func (p *HeaderExtension) ObjectGUID() uuid.UUID {
	return HeaderExtensionObjectGUID
}

func (p *HeaderExtension) extensionDataSize() int {
	size := 0
	for _, obj := range p.Objects {
		size += obj.SizeOf()
	}
	return size
}

func (p *HeaderExtension) SizeOf() int {
	return frameHeaderSize + 16 + 2 + 4 + p.extensionDataSize()
}

func (p *HeaderExtension) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, HeaderExtensionObjectGUID, p.SizeOf())
	fw.guid(p.Reserved1)
	fw.u16(p.Reserved2)
	fw.u32len("extension data", p.extensionDataSize())
	if err := fw.Err(); err != nil {
		return err
	}
	for _, obj := range p.Objects {
		if err := obj.Write(w); err != nil {
			return err
		}
	}
	return nil
}
