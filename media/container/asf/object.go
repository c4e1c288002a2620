package asf

import (
	"io"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// frameHeaderSize is the uniform object frame: 16-byte GUID plus an
// 8-byte total size that includes the frame itself.
const frameHeaderSize = 24

// ObjectHeader is the decoded frame of one object.
type ObjectHeader struct {
	GUID uuid.UUID
	Size uint64
}

// Object is a raw {guid, body} pair, the canonical container for
// anything the dispatch tables do not recognize.
type Object struct {
	GUID uuid.UUID
	Data Span
}

func parseObjectHeader(r *Reader) (ObjectHeader, error) {
	start := r.Offset()
	g, err := r.GUID()
	if err != nil {
		return ObjectHeader{}, err
	}
	size, err := r.U64()
	if err != nil {
		return ObjectHeader{}, err
	}
	if size < frameHeaderSize {
		return ObjectHeader{}, errs.InvalidField(start, "object size %d below frame size %d", size, frameHeaderSize)
	}
	return ObjectHeader{GUID: g, Size: size}, nil
}

func parseObject(r *Reader) (Object, error) {
	h, err := parseObjectHeader(r)
	if err != nil {
		return Object{}, err
	}
	data, err := r.Take(h.Size - frameHeaderSize)
	if err != nil {
		return Object{}, err
	}
	return Object{GUID: h.GUID, Data: data}, nil
}

func (o Object) SizeOf() int {
	return frameHeaderSize + o.Data.Len()
}

func (o Object) Write(w io.Writer) error {
	fw := newFieldWriter(w)
	fw.guid(o.GUID)
	fw.u64(uint64(o.SizeOf()))
	fw.span(o.Data)
	return fw.Err()
}

// writeFrame emits the 24-byte object frame for a typed variant.
func writeFrame(fw *fieldWriter, g uuid.UUID, totalSize int) {
	fw.guid(g)
	fw.u64(uint64(totalSize))
}
