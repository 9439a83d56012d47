package header

import (
	"fmt"
)

// Field is a single header field, a name paired with an opaque body stored as
// a string. Field values are immutable.
type Field struct {
	name string
	body string
}

// NewField constructs a header field from a name and body.
func NewField(name, body string) Field {
	return Field{name, body}
}

// Name returns the name of the header field.
func (f Field) Name() string {
	return f.name
}

// Body returns the value of the header field as a string.
func (f Field) Body() string {
	return f.body
}

// String returns the complete header field as a string.
func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.body)
}

// Bytes returns the complete header field as a slice of bytes.
func (f Field) Bytes() []byte {
	return []byte(f.String())
}
