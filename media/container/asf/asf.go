// Package asf parses and serializes the Advanced Systems Format
// container underlying WMA/WMV files.
//
// Parse reads an in-memory byte buffer into a typed, lossless object
// model. The model borrows from the input: spans reference the original
// buffer without copying, so the buffer must outlive the returned tree.
// Header-level objects serialize back byte-exactly via Write/SizeOf;
// the data packet decoder is read-only.
package asf

// Container is a fully parsed ASF byte stream: the header section, the
// data section and any trailing index objects, in wire order.
type Container struct {
	Header  *HeaderObjects
	Data    *DataObject
	Indices *IndexObjects
}

// Parse decodes a complete ASF stream from buf.
func Parse(buf []byte) (*Container, error) {
	r := NewReader(NewSpan(buf))
	header, err := ParseHeaderObjects(r)
	if err != nil {
		return nil, err
	}
	data, err := ParseDataObject(r)
	if err != nil {
		return nil, err
	}
	indices, err := ParseIndexObjects(r)
	if err != nil {
		return nil, err
	}
	return &Container{
		Header:  header,
		Data:    data,
		Indices: indices,
	}, nil
}
