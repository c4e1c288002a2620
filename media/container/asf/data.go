package asf

import (
	"github.com/bugVanisher/goasf/common/errs"
	"github.com/google/uuid"
)

// dataObjectSize is the fixed part of the Data Object: the 24-byte
// frame plus file_id:GUID, total_data_packets:u64, reserved:u16.
const dataObjectSize = 50

// DataObject holds the media payload section. Packets are fixed-size:
// every packet spans (object_size-50)/total_data_packets bytes.
type DataObject struct {
	FileID           uuid.UUID
	TotalDataPackets uint64
	Reserved         uint16
	Packets          []*DataPacket
}

// ParseDataObject decodes the Data Object section, packets included.
func ParseDataObject(r *Reader) (*DataObject, error) {
	d, err := parseDataObject(r)
	if err != nil {
		return nil, errs.Context("DataObject", err)
	}
	return d, nil
}

func parseDataObject(r *Reader) (*DataObject, error) {
	start := r.Offset()
	h, err := parseObjectHeader(r)
	if err != nil {
		return nil, err
	}
	if h.GUID != DataObjectGUID {
		return nil, errs.TagMismatch(start, GUIDName(DataObjectGUID), GUIDName(h.GUID))
	}
	if h.Size < dataObjectSize {
		return nil, errs.Eof(r.Offset())
	}
	var d DataObject
	if d.FileID, err = r.GUID(); err != nil {
		return nil, err
	}
	if d.TotalDataPackets, err = r.U64(); err != nil {
		return nil, err
	}
	if d.Reserved, err = r.U16(); err != nil {
		return nil, err
	}
	body, err := r.Take(h.Size - dataObjectSize)
	if err != nil {
		return nil, err
	}
	if d.TotalDataPackets == 0 {
		return &d, nil
	}
	fixedPacketLen := uint64(body.Len()) / d.TotalDataPackets
	br := NewReader(body)
	for i := uint64(0); i < d.TotalDataPackets; i++ {
		pkt, err := parseDataPacket(br, fixedPacketLen)
		if err != nil {
			return nil, err
		}
		d.Packets = append(d.Packets, pkt)
	}
	return &d, nil
}
