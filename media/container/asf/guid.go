package asf

import "github.com/google/uuid"

// Object GUIDs from the ASF specification. The wire form of a GUID
// stores the first three fields little-endian (Microsoft IID layout);
// the values below are the logical UUIDs.
var (
	HeaderObjectGUID           = uuid.MustParse("75B22630-668E-11CF-A6D9-00AA0062CE6C")
	DataObjectGUID             = uuid.MustParse("75B22636-668E-11CF-A6D9-00AA0062CE6C")
	SimpleIndexObjectGUID      = uuid.MustParse("33000890-E5B1-11CF-89F4-00A0C90349CB")
	IndexObjectGUID            = uuid.MustParse("D6E229D3-35DA-11D1-9034-00A0C90349BE")
	MediaObjectIndexObjectGUID = uuid.MustParse("FEB103F8-12AD-4C64-840F-2A1D2F7AD48C")
	TimecodeIndexObjectGUID    = uuid.MustParse("3CB73FD0-0C4A-4803-953D-EDF7B6228F0C")

	FilePropertiesObjectGUID             = uuid.MustParse("8CABDCA1-A947-11CF-8EE4-00C00C205365")
	StreamPropertiesObjectGUID           = uuid.MustParse("B7DC0791-A9B7-11CF-8EE6-00C00C205365")
	HeaderExtensionObjectGUID            = uuid.MustParse("5FBF03B5-A92E-11CF-8EE3-00C00C205365")
	CodecListObjectGUID                  = uuid.MustParse("86D15240-311D-11D0-A3A4-00A0C90348F6")
	ScriptCommandObjectGUID              = uuid.MustParse("1EFB1A30-0B62-11D0-A39B-00A0C90348F6")
	MarkerObjectGUID                     = uuid.MustParse("F487CD01-A951-11CF-8EE6-00C00C205365")
	BitrateMutualExclusionObjectGUID     = uuid.MustParse("D6E229DC-35DA-11D1-9034-00A0C90349BE")
	ErrorCorrectionObjectGUID            = uuid.MustParse("75B22635-668E-11CF-A6D9-00AA0062CE6C")
	ContentDescriptionObjectGUID         = uuid.MustParse("75B22633-668E-11CF-A6D9-00AA0062CE6C")
	ExtendedContentDescriptionObjectGUID = uuid.MustParse("D2D0A440-E307-11D2-97F0-00A0C95EA850")
	ContentBrandingObjectGUID            = uuid.MustParse("2211B3FA-BD23-11D2-B4B7-00A0C955FC6E")
	StreamBitratePropertiesObjectGUID    = uuid.MustParse("7BF875CE-468D-11D1-8D82-006097C9A2B2")
	ContentEncryptionObjectGUID          = uuid.MustParse("2211B3FB-BD23-11D2-B4B7-00A0C955FC6E")
	ExtendedContentEncryptionObjectGUID  = uuid.MustParse("298AE614-2622-4C17-B935-DAE07EE9289C")
	DigitalSignatureObjectGUID           = uuid.MustParse("2211B3FC-BD23-11D2-B4B7-00A0C955FC6E")
	PaddingObjectGUID                    = uuid.MustParse("1806D474-CADF-4509-A4BA-9AABCB96AAE8")

	ExtendedStreamPropertiesObjectGUID   = uuid.MustParse("14E6A5CB-C672-4332-8399-A96952065B5A")
	AdvancedMutualExclusionObjectGUID    = uuid.MustParse("A08649CF-4775-4670-8A16-6E35357566CD")
	GroupMutualExclusionObjectGUID       = uuid.MustParse("D1465A40-5A79-4338-B71B-E36B8FD6C249")
	StreamPrioritizationObjectGUID       = uuid.MustParse("D4FED15B-88D3-454F-81F0-ED5C45999E24")
	BandwidthSharingObjectGUID           = uuid.MustParse("A69609E6-517B-11D2-B6AF-00C04FD908E9")
	LanguageListObjectGUID               = uuid.MustParse("7C4346A9-EFE0-4BFC-B229-393EDE415C85")
	MetadataObjectGUID                   = uuid.MustParse("C5F8CBEA-5BAF-4877-8467-AA8C44FA4CCA")
	MetadataLibraryObjectGUID            = uuid.MustParse("44231C94-9498-49D1-A141-1D134E457054")
	IndexParametersObjectGUID            = uuid.MustParse("D6E229DF-35DA-11D1-9034-00A0C90349BE")
	MediaObjectIndexParametersObjectGUID = uuid.MustParse("6B203BAD-3F11-48E4-ACA8-D7613DE2CFA7")
	TimecodeIndexParametersObjectGUID    = uuid.MustParse("F55E496D-9797-4B5D-8C8B-604DFE9BFB24")
	CompatibilityObjectGUID              = uuid.MustParse("26742C81-3E96-434F-9925-3A2072F1F53E")
	AdvancedContentEncryptionObjectGUID  = uuid.MustParse("43058533-6981-49E6-9B74-AD12CB86D58C")
)

// Stream media types and error correction types, used to label streams.
var (
	AudioMediaGUID          = uuid.MustParse("F8699E40-5B4D-11CF-A8FD-00805F5C442B")
	VideoMediaGUID          = uuid.MustParse("BC19EFC0-5B4D-11CF-A8FD-00805F5C442B")
	CommandMediaGUID        = uuid.MustParse("59DACFC0-59E6-11D0-A3AC-00A0C90348F6")
	JFIFMediaGUID           = uuid.MustParse("B61BE100-5B4E-11CF-A8FD-00805F5C442B")
	DegradableJPEGMediaGUID = uuid.MustParse("35907DE0-E415-11CF-A917-00805F5C442B")
	FileTransferMediaGUID   = uuid.MustParse("91BD222C-F21C-497A-8B6D-5AA86BFC0185")
	BinaryMediaGUID         = uuid.MustParse("3AFB65E2-47EF-40F2-AC2C-70A90D71D343")

	NoErrorCorrectionGUID = uuid.MustParse("20FB5700-5B55-11CF-A8FD-00805F5C442B")
	AudioSpreadGUID       = uuid.MustParse("BFC3CD50-618F-11CF-8BB2-00AA00B4E220")

	Reserved1GUID = uuid.MustParse("ABD3D211-A9BA-11CF-8EE6-00C00C205365")
	Reserved2GUID = uuid.MustParse("86D15241-311D-11D0-A3A4-00A0C90348F6")
	Reserved3GUID = uuid.MustParse("4B1ACBE3-100B-11D0-A39B-00A0C90348F6")
	Reserved4GUID = uuid.MustParse("4CFEDB20-75F6-11CF-9C0F-00A0C90349CB")

	MutexLanguageGUID = uuid.MustParse("D6E22A00-35DA-11D1-9034-00A0C90349BE")
	MutexBitrateGUID  = uuid.MustParse("D6E22A01-35DA-11D1-9034-00A0C90349BE")
	MutexUnknownGUID  = uuid.MustParse("D6E22A02-35DA-11D1-9034-00A0C90349BE")

	BandwidthSharingExclusiveGUID = uuid.MustParse("AF6060AA-5197-11D2-B6AF-00C04FD908E9")
	BandwidthSharingPartialGUID   = uuid.MustParse("AF6060AB-5197-11D2-B6AF-00C04FD908E9")
)

var guidNames = map[uuid.UUID]string{
	HeaderObjectGUID:                     "HeaderObject",
	DataObjectGUID:                       "DataObject",
	SimpleIndexObjectGUID:                "SimpleIndexObject",
	IndexObjectGUID:                      "IndexObject",
	MediaObjectIndexObjectGUID:           "MediaObjectIndexObject",
	TimecodeIndexObjectGUID:              "TimecodeIndexObject",
	FilePropertiesObjectGUID:             "FileProperties",
	StreamPropertiesObjectGUID:           "StreamProperties",
	HeaderExtensionObjectGUID:            "HeaderExtension",
	CodecListObjectGUID:                  "CodecList",
	ScriptCommandObjectGUID:              "ScriptCommand",
	MarkerObjectGUID:                     "Marker",
	BitrateMutualExclusionObjectGUID:     "BitrateMutualExclusion",
	ErrorCorrectionObjectGUID:            "ErrorCorrection",
	ContentDescriptionObjectGUID:         "ContentDescription",
	ExtendedContentDescriptionObjectGUID: "ExtendedContentDescription",
	ContentBrandingObjectGUID:            "ContentBranding",
	StreamBitratePropertiesObjectGUID:    "StreamBitrateProperties",
	ContentEncryptionObjectGUID:          "ContentEncryption",
	ExtendedContentEncryptionObjectGUID:  "ExtendedContentEncryption",
	DigitalSignatureObjectGUID:           "DigitalSignature",
	PaddingObjectGUID:                    "Padding",
	ExtendedStreamPropertiesObjectGUID:   "ExtendedStreamProperties",
	AdvancedMutualExclusionObjectGUID:    "AdvancedMutualExclusion",
	GroupMutualExclusionObjectGUID:       "GroupMutualExclusion",
	StreamPrioritizationObjectGUID:       "StreamPrioritization",
	BandwidthSharingObjectGUID:           "BandwidthSharing",
	LanguageListObjectGUID:               "LanguageList",
	MetadataObjectGUID:                   "Metadata",
	MetadataLibraryObjectGUID:            "MetadataLibrary",
	IndexParametersObjectGUID:            "IndexParameters",
	MediaObjectIndexParametersObjectGUID: "MediaObjectIndexParameters",
	TimecodeIndexParametersObjectGUID:    "TimecodeIndexParameters",
	CompatibilityObjectGUID:              "Compatibility",
	AdvancedContentEncryptionObjectGUID:  "AdvancedContentEncryption",
	AudioMediaGUID:                       "AudioMedia",
	VideoMediaGUID:                       "VideoMedia",
	CommandMediaGUID:                     "CommandMedia",
	JFIFMediaGUID:                        "JFIFMedia",
	DegradableJPEGMediaGUID:              "DegradableJPEGMedia",
	FileTransferMediaGUID:                "FileTransferMedia",
	BinaryMediaGUID:                      "BinaryMedia",
	NoErrorCorrectionGUID:                "NoErrorCorrection",
	AudioSpreadGUID:                      "AudioSpread",
}

// GUIDName returns the well-known name for g, or its canonical UUID
// string when it is not recognized.
func GUIDName(g uuid.UUID) string {
	if name, ok := guidNames[g]; ok {
		return name
	}
	return g.String()
}

// guidFromWire converts 16 wire bytes to the logical UUID. The first
// three fields are stored little-endian on the wire; the transform is
// its own inverse.
func guidFromWire(b []byte) uuid.UUID {
	return uuid.UUID{
		b[3], b[2], b[1], b[0],
		b[5], b[4],
		b[7], b[6],
		b[8], b[9], b[10], b[11], b[12], b[13], b[14], b[15],
	}
}

// guidToWire converts a logical UUID to its wire bytes.
func guidToWire(g uuid.UUID) [16]byte {
	return [16]byte{
		g[3], g[2], g[1], g[0],
		g[5], g[4],
		g[7], g[6],
		g[8], g[9], g[10], g[11], g[12], g[13], g[14], g[15],
	}
}
