package asf

import (
	"io"

	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// IndexObject is one trailing index frame. Index bodies are not
// decoded; the opaque span is retained so the section round-trips.
type IndexObject struct {
	GUID uuid.UUID
	Data Span
}

// IndexObjects is the trailing index section.
type IndexObjects struct {
	Objects []*IndexObject
}

// ParseIndexObjects consumes index frames until the input ends.
func ParseIndexObjects(r *Reader) (*IndexObjects, error) {
	p := &IndexObjects{}
	for r.Remaining() > 0 {
		obj, err := parseObject(r)
		if err != nil {
			return nil, errs.Context("IndexObjects", err)
		}
		p.Objects = append(p.Objects, &IndexObject{GUID: obj.GUID, Data: obj.Data})
	}
	return p, nil
}

func (p *IndexObjects) SizeOf() int {
	size := 0
	for _, obj := range p.Objects {
		size += frameHeaderSize + obj.Data.Len()
	}
	return size
}

func (p *IndexObjects) Write(w io.Writer) error {
	for _, obj := range p.Objects {
		if err := (Object{GUID: obj.GUID, Data: obj.Data}).Write(w); err != nil {
			return err
		}
	}
	return nil
}
