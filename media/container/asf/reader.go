package asf

import (
	"encoding/binary"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// Reader walks a Span consuming little-endian fields. All shortfalls
// surface as errs.Eof carrying the absolute offset of the failing byte.
type Reader struct {
	s   Span
	pos int
}

func NewReader(s Span) *Reader {
	return &Reader{s: s}
}

// Offset returns the absolute offset of the next unread byte.
func (r *Reader) Offset() int64 {
	return r.s.off + int64(r.pos)
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.s.b) - r.pos
}

// Consumed returns the number of bytes read so far.
func (r *Reader) Consumed() int {
	return r.pos
}

// Peek returns the next byte without consuming it.
func (r *Reader) Peek() (byte, error) {
	if r.Remaining() < 1 {
		return 0, errs.Eof(r.Offset())
	}
	return r.s.b[r.pos], nil
}

// Take consumes exactly n bytes as a sub-span.
func (r *Reader) Take(n uint64) (Span, error) {
	if n > uint64(r.Remaining()) {
		return Span{}, errs.Eof(r.Offset())
	}
	sp := r.s.Slice(r.pos, r.pos+int(n))
	r.pos += int(n)
	return sp, nil
}

// Skip discards exactly n bytes.
func (r *Reader) Skip(n uint64) error {
	_, err := r.Take(n)
	return err
}

// Rest consumes and returns everything left.
func (r *Reader) Rest() Span {
	sp := r.s.From(r.pos)
	r.pos = len(r.s.b)
	return sp
}

func (r *Reader) U8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, errs.Eof(r.Offset())
	}
	v := r.s.b[r.pos]
	r.pos++
	return v, nil
}

func (r *Reader) U16() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, errs.Eof(r.Offset())
	}
	v := binary.LittleEndian.Uint16(r.s.b[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *Reader) U32() (uint32, error) {
	if r.Remaining() < 4 {
		return 0, errs.Eof(r.Offset())
	}
	v := binary.LittleEndian.Uint32(r.s.b[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *Reader) U64() (uint64, error) {
	if r.Remaining() < 8 {
		return 0, errs.Eof(r.Offset())
	}
	v := binary.LittleEndian.Uint64(r.s.b[r.pos:])
	r.pos += 8
	return v, nil
}

// GUID consumes 16 bytes and undoes the Microsoft mixed-endian layout.
func (r *Reader) GUID() (uuid.UUID, error) {
	if r.Remaining() < 16 {
		return uuid.UUID{}, errs.Eof(r.Offset())
	}
	g := guidFromWire(r.s.b[r.pos:])
	r.pos += 16
	return g, nil
}
