package asf

import (
	"encoding/json"
	"math"
	"unicode/utf16"

	"github.com/bugVanisher/goasf/common/errs"
)

// WideStr is a sequence of UTF-16LE code units. ASF strings keep their
// terminators (when present) as part of the payload, so a WideStr is
// not trimmed on parse and round-trips byte-exactly.
type WideStr []uint16

// NewWideStr encodes a Go string into UTF-16 code units.
func NewWideStr(s string) WideStr {
	return WideStr(utf16.Encode([]rune(s)))
}

// String decodes the code units, replacing invalid surrogates.
func (w WideStr) String() string {
	return string(utf16.Decode(w))
}

func (w WideStr) Len() int {
	return len(w)
}

func (w WideStr) IsEmpty() bool {
	return len(w) == 0
}

// SizeOf returns the encoded byte length without any prefix.
func (w WideStr) SizeOf() int {
	return 2 * len(w)
}

// SizeOfCount16 returns the byte length including a u16 length prefix.
func (w WideStr) SizeOfCount16() int {
	return 2 + 2*len(w)
}

// SizeOfCount32 returns the byte length including a u32 length prefix.
func (w WideStr) SizeOfCount32() int {
	return 4 + 2*len(w)
}

func (w WideStr) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// parseWideStr decodes an entire span as UTF-16LE code units.
func parseWideStr(s Span) (WideStr, error) {
	if s.Len()%2 != 0 {
		return nil, errs.InvalidField(s.Offset(), "wide string byte length %d is odd", s.Len())
	}
	b := s.Bytes()
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
	}
	return WideStr(units), nil
}

// parseWideStrCount16 reads a u16 byte-length prefix and then the string.
func parseWideStrCount16(r *Reader) (WideStr, error) {
	n, err := r.U16()
	if err != nil {
		return nil, err
	}
	sp, err := r.Take(uint64(n))
	if err != nil {
		return nil, err
	}
	return parseWideStr(sp)
}

// parseWideStrCount32 reads a u32 byte-length prefix and then the string.
func parseWideStrCount32(r *Reader) (WideStr, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	sp, err := r.Take(uint64(n))
	if err != nil {
		return nil, err
	}
	return parseWideStr(sp)
}

func (fw *fieldWriter) widestr(w WideStr) {
	for _, unit := range w {
		fw.u16(unit)
	}
}

func (fw *fieldWriter) widestrCount16(field string, w WideStr) {
	if w.SizeOf() > math.MaxUint16 {
		fw.fail(errs.Overflow(field, w.SizeOf(), math.MaxUint16))
		return
	}
	fw.u16(uint16(w.SizeOf()))
	fw.widestr(w)
}

func (fw *fieldWriter) widestrCount32(field string, w WideStr) {
	if uint64(w.SizeOf()) > math.MaxUint32 {
		fw.fail(errs.Overflow(field, w.SizeOf(), math.MaxUint32))
		return
	}
	fw.u32(uint32(w.SizeOf()))
	fw.widestr(w)
}
