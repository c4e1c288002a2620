package asf

import (
	"io"

	"github.com/google/uuid"
)

// ContentDescription holds the five standard metadata strings. The
// terminating NULs present on the wire stay part of each string.
type ContentDescription struct {
	Title       WideStr
	Author      WideStr
	Copyright   WideStr
	Description WideStr
	Rating      WideStr
}

func parseContentDescription(r *Reader) (*ContentDescription, error) {
	lens := make([]uint16, 5)
	for i := range lens {
		n, err := r.U16()
		if err != nil {
			return nil, err
		}
		lens[i] = n
	}
	fields := make([]WideStr, 5)
	for i, n := range lens {
		sp, err := r.Take(uint64(n))
		if err != nil {
			return nil, err
		}
		if fields[i], err = parseWideStr(sp); err != nil {
			return nil, err
		}
	}
	return &ContentDescription{
		Title:       fields[0],
		Author:      fields[1],
		Copyright:   fields[2],
		Description: fields[3],
		Rating:      fields[4],
	}, nil
}

func (p *ContentDescription) ObjectGUID() uuid.UUID {
	return ContentDescriptionObjectGUID
}

func (p *ContentDescription) SizeOf() int {
	return frameHeaderSize + 5*2 +
		p.Title.SizeOf() + p.Author.SizeOf() + p.Copyright.SizeOf() +
		p.Description.SizeOf() + p.Rating.SizeOf()
}

func (p *ContentDescription) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ContentDescriptionObjectGUID, p.SizeOf())
	fw.u16len("title", p.Title.SizeOf())
	fw.u16len("author", p.Author.SizeOf())
	fw.u16len("copyright", p.Copyright.SizeOf())
	fw.u16len("description", p.Description.SizeOf())
	fw.u16len("rating", p.Rating.SizeOf())
	fw.widestr(p.Title)
	fw.widestr(p.Author)
	fw.widestr(p.Copyright)
	fw.widestr(p.Description)
	fw.widestr(p.Rating)
	return fw.Err()
}

// ContentDescriptor is one name/value pair of the extended description.
type ContentDescriptor struct {
	Name      WideStr
	ValueType uint16
	Value     Span
}

// ExtendedContentDescription holds arbitrary named metadata values.
type ExtendedContentDescription struct {
	Descriptors []ContentDescriptor
}

func parseExtendedContentDescription(r *Reader) (*ExtendedContentDescription, error) {
	count, err := r.U16()
	if err != nil {
		return nil, err
	}
	p := &ExtendedContentDescription{}
	for i := uint16(0); i < count; i++ {
		var d ContentDescriptor
		if d.Name, err = parseWideStrCount16(r); err != nil {
			return nil, err
		}
		if d.ValueType, err = r.U16(); err != nil {
			return nil, err
		}
		valueLen, err := r.U16()
		if err != nil {
			return nil, err
		}
		if d.Value, err = r.Take(uint64(valueLen)); err != nil {
			return nil, err
		}
		p.Descriptors = append(p.Descriptors, d)
	}
	return p, nil
}

func (p *ExtendedContentDescription) ObjectGUID() uuid.UUID {
	return ExtendedContentDescriptionObjectGUID
}

func (p *ExtendedContentDescription) SizeOf() int {
	size := frameHeaderSize + 2
	for _, d := range p.Descriptors {
		size += d.Name.SizeOfCount16() + 2 + 2 + d.Value.Len()
	}
	return size
}

func (p *ExtendedContentDescription) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ExtendedContentDescriptionObjectGUID, p.SizeOf())
	fw.u16len("descriptors", len(p.Descriptors))
	for _, d := range p.Descriptors {
		fw.widestrCount16("descriptor name", d.Name)
		fw.u16(d.ValueType)
		fw.u16len("descriptor value", d.Value.Len())
		fw.span(d.Value)
	}
	return fw.Err()
}

// ContentBranding carries banner imagery and attribution URLs.
type ContentBranding struct {
	BannerImageType uint32
	BannerImageData Span
	BannerImageURL  Span
	CopyrightURL    Span
}

func parseContentBranding(r *Reader) (*ContentBranding, error) {
	var (
		p   ContentBranding
		err error
	)
	if p.BannerImageType, err = r.U32(); err != nil {
		return nil, err
	}
	if p.BannerImageData, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	if p.BannerImageURL, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	if p.CopyrightURL, err = takeU32Prefixed(r); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *ContentBranding) ObjectGUID() uuid.UUID {
	return ContentBrandingObjectGUID
}

func (p *ContentBranding) SizeOf() int {
	return frameHeaderSize + 4 +
		4 + p.BannerImageData.Len() +
		4 + p.BannerImageURL.Len() +
		4 + p.CopyrightURL.Len()
}

func (p *ContentBranding) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ContentBrandingObjectGUID, p.SizeOf())
	fw.u32(p.BannerImageType)
	fw.u32len("banner image data", p.BannerImageData.Len())
	fw.span(p.BannerImageData)
	fw.u32len("banner image url", p.BannerImageURL.Len())
	fw.span(p.BannerImageURL)
	fw.u32len("copyright url", p.CopyrightURL.Len())
	fw.span(p.CopyrightURL)
	return fw.Err()
}

// takeU32Prefixed reads a u32 byte length followed by that many bytes.
func takeU32Prefixed(r *Reader) (Span, error) {
	n, err := r.U32()
	if err != nil {
		return Span{}, err
	}
	return r.Take(uint64(n))
}

// ScriptCommandEntry is one timed command.
type ScriptCommandEntry struct {
	PresentationTime uint32
	TypeIndex        uint16
	Name             WideStr
}

// ScriptCommand lists timed commands and their type table.
type ScriptCommand struct {
	Reserved uuid.UUID
	Types    []WideStr
	Commands []ScriptCommandEntry
}

func parseScriptCommand(r *Reader) (*ScriptCommand, error) {
	var (
		p   ScriptCommand
		err error
	)
	if p.Reserved, err = r.GUID(); err != nil {
		return nil, err
	}
	commandsCount, err := r.U16()
	if err != nil {
		return nil, err
	}
	typesCount, err := r.U16()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < typesCount; i++ {
		t, err := parseWideStrCount16(r)
		if err != nil {
			return nil, err
		}
		p.Types = append(p.Types, t)
	}
	for i := uint16(0); i < commandsCount; i++ {
		var c ScriptCommandEntry
		if c.PresentationTime, err = r.U32(); err != nil {
			return nil, err
		}
		if c.TypeIndex, err = r.U16(); err != nil {
			return nil, err
		}
		if c.Name, err = parseWideStrCount16(r); err != nil {
			return nil, err
		}
		p.Commands = append(p.Commands, c)
	}
	return &p, nil
}

func (p *ScriptCommand) ObjectGUID() uuid.UUID {
	return ScriptCommandObjectGUID
}

func (p *ScriptCommand) SizeOf() int {
	size := frameHeaderSize + 16 + 2 + 2
	for _, t := range p.Types {
		size += t.SizeOfCount16()
	}
	for _, c := range p.Commands {
		size += 4 + 2 + c.Name.SizeOfCount16()
	}
	return size
}

func (p *ScriptCommand) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, ScriptCommandObjectGUID, p.SizeOf())
	fw.guid(p.Reserved)
	fw.u16len("commands", len(p.Commands))
	fw.u16len("command types", len(p.Types))
	for _, t := range p.Types {
		fw.widestrCount16("command type", t)
	}
	for _, c := range p.Commands {
		fw.u32(c.PresentationTime)
		fw.u16(c.TypeIndex)
		fw.widestrCount16("command name", c.Name)
	}
	return fw.Err()
}

// MarkerEntry is one named seek point. EntryLength is preserved as
// declared on the wire rather than recomputed.
type MarkerEntry struct {
	Offset           uint64
	PresentationTime uint64
	EntryLength      uint16
	SendTime         uint32
	Flags            uint32
	Description      WideStr
}

// Marker lists named seek points.
type Marker struct {
	Reserved1 uuid.UUID
	Reserved2 uint16
	Name      WideStr
	Markers   []MarkerEntry
}

func parseMarkerEntry(r *Reader) (MarkerEntry, error) {
	var (
		e   MarkerEntry
		err error
	)
	if e.Offset, err = r.U64(); err != nil {
		return e, err
	}
	if e.PresentationTime, err = r.U64(); err != nil {
		return e, err
	}
	if e.EntryLength, err = r.U16(); err != nil {
		return e, err
	}
	if e.SendTime, err = r.U32(); err != nil {
		return e, err
	}
	if e.Flags, err = r.U32(); err != nil {
		return e, err
	}
	if e.Description, err = parseWideStrCount32(r); err != nil {
		return e, err
	}
	return e, nil
}

func parseMarker(r *Reader) (*Marker, error) {
	var (
		p   Marker
		err error
	)
	if p.Reserved1, err = r.GUID(); err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	if p.Reserved2, err = r.U16(); err != nil {
		return nil, err
	}
	if p.Name, err = parseWideStrCount16(r); err != nil {
		return nil, err
	}
	for i := uint32(0); i < count; i++ {
		e, err := parseMarkerEntry(r)
		if err != nil {
			return nil, err
		}
		p.Markers = append(p.Markers, e)
	}
	return &p, nil
}

func (p *Marker) ObjectGUID() uuid.UUID {
	return MarkerObjectGUID
}

func (p *Marker) SizeOf() int {
	size := frameHeaderSize + 16 + 4 + 2 + p.Name.SizeOfCount16()
	for _, e := range p.Markers {
		size += 8 + 8 + 2 + 4 + 4 + e.Description.SizeOfCount32()
	}
	return size
}

func (p *Marker) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	writeFrame(fw, MarkerObjectGUID, p.SizeOf())
	fw.guid(p.Reserved1)
	fw.u32(uint32(len(p.Markers)))
	fw.u16(p.Reserved2)
	fw.widestrCount16("marker name", p.Name)
	for _, e := range p.Markers {
		fw.u64(e.Offset)
		fw.u64(e.PresentationTime)
		fw.u16(e.EntryLength)
		fw.u32(e.SendTime)
		fw.u32(e.Flags)
		fw.widestrCount32("marker description", e.Description)
	}
	return fw.Err()
}
