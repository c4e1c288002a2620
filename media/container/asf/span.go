package asf

import "encoding/json"

// Span is an immutable view over a slice of the original input buffer.
// It remembers the absolute offset of its first byte so that parse
// errors and debug output can point back into the file. Slicing a Span
// never copies; the buffer must outlive every Span cut from it.
type Span struct {
	b   []byte
	off int64
}

// NewSpan wraps a whole input buffer starting at offset 0.
func NewSpan(b []byte) Span {
	return Span{b: b}
}

// Len returns the number of bytes in the span.
func (s Span) Len() int {
	return len(s.b)
}

// IsEmpty reports whether the span has no bytes.
func (s Span) IsEmpty() bool {
	return len(s.b) == 0
}

// Offset returns the absolute offset of the span's first byte within
// the original input.
func (s Span) Offset() int64 {
	return s.off
}

// Bytes exposes the underlying bytes. Callers must not mutate them.
func (s Span) Bytes() []byte {
	return s.b
}

// Slice cuts [from, to) out of the span, preserving absolute offsets:
// s.Slice(a, b).Offset() == s.Offset() + a.
func (s Span) Slice(from, to int) Span {
	return Span{b: s.b[from:to], off: s.off + int64(from)}
}

// From cuts [from, len) out of the span.
func (s Span) From(from int) Span {
	return s.Slice(from, len(s.b))
}

// MarshalJSON renders the span with its provenance so dump output stays
// lossless. The data field is base64 per encoding/json convention.
func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Offset int64  `json:"offset"`
		Length int    `json:"length"`
		Data   []byte `json:"data"`
	}{s.off, len(s.b), s.b})
}
