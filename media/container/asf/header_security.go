package asf

import (
	"io"

	"github.com/google/uuid"
)

// ContentEncryption carries legacy DRM fields. The payloads stay
// opaque; nothing here is decrypted.
type ContentEncryption struct {
	SecretData     Span
	ProtectionType Span
	KeyID          Span
	LicenseURL     Span
}

func parseContentEncryption(r *Reader) (*ContentEncryption, error) {
	var (
		p   ContentEncryption
		err error
	)
	if p.SecretData, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	if p.ProtectionType, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	if p.KeyID, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	if p.LicenseURL, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *ContentEncryption) ObjectGUID() uuid.UUID {
	return ContentEncryptionObjectGUID
}

func (p *ContentEncryption) SizeOf() int {
	return frameHeaderSize +
		4 + p.SecretData.Len() +
		4 + p.ProtectionType.Len() +
		4 + p.KeyID.Len() +
		4 + p.LicenseURL.Len()
}

func (p *ContentEncryption) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ContentEncryptionObjectGUID, p.SizeOf())
	fw.u32len("secret data", p.SecretData.Len())
	fw.span(p.SecretData)
	fw.u32len("protection type", p.ProtectionType.Len())
	fw.span(p.ProtectionType)
	fw.u32len("key id", p.KeyID.Len())
	fw.span(p.KeyID)
	fw.u32len("license url", p.LicenseURL.Len())
	fw.span(p.LicenseURL)
	return fw.Err()
}

// ExtendedContentEncryption is an opaque PlayReady-era DRM blob.
type ExtendedContentEncryption struct {
	Data Span
}

func parseExtendedContentEncryption(r *Reader) (*ExtendedContentEncryption, error) {
	data, err := takeU32Prefixed(r)
	if err != nil {
		return nil, err
	}
	return &ExtendedContentEncryption{Data: data}, nil
}

func (p *ExtendedContentEncryption) ObjectGUID() uuid.UUID {
	return ExtendedContentEncryptionObjectGUID
}

func (p *ExtendedContentEncryption) SizeOf() int {
	return frameHeaderSize + 4 + p.Data.Len()
}

func (p *ExtendedContentEncryption) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ExtendedContentEncryptionObjectGUID, p.SizeOf())
	fw.u32len("encryption data", p.Data.Len())
	fw.span(p.Data)
	return fw.Err()
}

// DigitalSignature holds a header section signature.
type DigitalSignature struct {
	SignatureType uint32
	SignatureData Span
}

func parseDigitalSignature(r *Reader) (*DigitalSignature, error) {
	var (
		p   DigitalSignature
		err error
	)
	if p.SignatureType, err = r.U32(); err != nil {
		return nil, err
	}
	if p.SignatureData, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *DigitalSignature) ObjectGUID() uuid.UUID {
	return DigitalSignatureObjectGUID
}

func (p *DigitalSignature) SizeOf() int {
	return frameHeaderSize + 4 + 4 + p.SignatureData.Len()
}

func (p *DigitalSignature) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, DigitalSignatureObjectGUID, p.SizeOf())
	fw.u32(p.SignatureType)
	fw.u32len("signature data", p.SignatureData.Len())
	fw.span(p.SignatureData)
	return fw.Err()
}
