package errs

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies parse failures.
type Kind int32

const (
	KindUnknown Kind = iota
	// KindEof means a decoder requested more bytes than remain in its span.
	KindEof
	// KindTagMismatch means a fixed GUID expected at a specific offset did not match.
	KindTagMismatch
	// KindInvalidField means a field value is structurally impossible
	// (odd wide-string length, object size below the frame size).
	KindInvalidField
)

// ParseError is the error produced by the ASF decoders. It carries the
// kind of the leaf failure, the absolute offset of the failing byte and
// the stack of context labels accumulated on the way up.
type ParseError struct {
	Kind   Kind
	Offset int64
	Path   []string
	Msg    string
}

func (e *ParseError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s (offset %d)", e.Msg, e.Offset)
	}
	return fmt.Sprintf("%s: %s (offset %d)", strings.Join(e.Path, "/"), e.Msg, e.Offset)
}

// Eof reports that the input ran out at offset.
func Eof(offset int64) error {
	return &ParseError{Kind: KindEof, Offset: offset, Msg: "unexpected end of input"}
}

// TagMismatch reports an unexpected GUID where a fixed one is required.
func TagMismatch(offset int64, want, got string) error {
	return &ParseError{
		Kind:   KindTagMismatch,
		Offset: offset,
		Msg:    fmt.Sprintf("expected object %s, found %s", want, got),
	}
}

// InvalidField reports a structurally impossible field value.
func InvalidField(offset int64, format string, args ...interface{}) error {
	return &ParseError{
		Kind:   KindInvalidField,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// Context prepends label to the error's context path. Non-ParseError
// values are wrapped with pkg/errors so the message still nests.
func Context(label string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = append([]string{label}, pe.Path...)
		return err
	}
	return errors.Wrap(err, label)
}

// KindOf extracts the parse error kind, KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// IsEof reports whether err is rooted in an end-of-input failure.
func IsEof(err error) bool {
	return KindOf(err) == KindEof
}

// Overflow reports a value that does not fit its length prefix on write.
func Overflow(field string, n int, max uint64) error {
	return errors.Errorf("%s length %d exceeds prefix maximum %d", field, n, max)
}

func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
