package asf

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// fieldWriter emits little-endian fields into an io.Writer, latching
// the first error so serializers can stay linear.
type fieldWriter struct {
	w   io.Writer
	err error
}

func newFieldWriter(w io.Writer) *fieldWriter {
	return &fieldWriter{w: w}
}

func (fw *fieldWriter) Err() error {
	return fw.err
}

func (fw *fieldWriter) fail(err error) {
	if fw.err == nil {
		fw.err = err
	}
}

func (fw *fieldWriter) bytes(b []byte) {
	if fw.err != nil {
		return
	}
	_, fw.err = fw.w.Write(b)
}

func (fw *fieldWriter) u8(v uint8) {
	fw.bytes([]byte{v})
}

func (fw *fieldWriter) u16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	fw.bytes(b[:])
}

func (fw *fieldWriter) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	fw.bytes(b[:])
}

func (fw *fieldWriter) u64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	fw.bytes(b[:])
}

func (fw *fieldWriter) guid(g uuid.UUID) {
	b := guidToWire(g)
	fw.bytes(b[:])
}

func (fw *fieldWriter) span(s Span) {
	fw.bytes(s.Bytes())
}

func (fw *fieldWriter) zeros(n int) {
	if fw.err != nil {
		return
	}
	fw.bytes(make([]byte, n))
}

// u8len writes a u8 byte-length prefix, failing when n does not fit.
func (fw *fieldWriter) u8len(field string, n int) {
	if n > math.MaxUint8 {
		fw.fail(errs.Overflow(field, n, math.MaxUint8))
		return
	}
	fw.u8(uint8(n))
}

// u16len writes a u16 length prefix, failing when n does not fit.
func (fw *fieldWriter) u16len(field string, n int) {
	if n > math.MaxUint16 {
		fw.fail(errs.Overflow(field, n, math.MaxUint16))
		return
	}
	fw.u16(uint16(n))
}

// u32len writes a u32 length prefix, failing when n does not fit.
func (fw *fieldWriter) u32len(field string, n int) {
	if uint64(n) > math.MaxUint32 {
		fw.fail(errs.Overflow(field, n, math.MaxUint32))
		return
	}
	fw.u32(uint32(n))
}
