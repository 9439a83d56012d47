package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/zostay/go-multipart/header/param"
)

// Errors returned by various header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation
	// being performed failed because the header named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrNoSuchFieldParameter is returned by Header methods when the
	// operation being performed failed because the header exists, but a
	// sub-field of the header does not exist.
	ErrNoSuchFieldParameter = errors.New("no such header field parameter")

	// ErrManyFields is returned by Header methods when the operation
	// being performed failed because there are multiple fields with the
	// given name.
	ErrManyFields = errors.New("many header fields found")
)

// These are the headers that matter to a multipart message part.
const (
	ContentDisposition      = "Content-disposition"
	ContentID               = "Content-id"
	ContentTransferEncoding = "Content-transfer-encoding"
	ContentType             = "Content-type"
)

const (
	// FormData is the disposition type set on parts built for a
	// multipart/form-data message.
	FormData = "form-data"

	// Binary is the Content-transfer-encoding applied to file-sourced parts,
	// whose bodies are emitted as-is.
	Binary = "binary"
)

// Break is the line break used to separate header fields and to terminate
// the header on output.
const Break = "\r\n"

// Header is an ordered collection of header fields with case-insensitive
// name lookup. The zero value is an empty header ready for use.
//
// The getter methods of this object will return an error if the field being
// fetched has not been set on the header. The error returned will be
// ErrNoSuchField.
type Header struct {
	fields []Field

	// valueCache holds the parsed param.Value for parameterized headers. We
	// assume that headers with a semantic value are singular, which is safe
	// for Content-type and Content-disposition.
	//
	// REMEMBER: This must only be used to hold "immutable" types. If a type
	// can be modified outside, we can have inconsistencies between what is
	// stored in valueCache and what is set in fields.
	valueCache map[string]any
}

// New constructs a Header from the given fields, in order.
func New(fields ...Field) *Header {
	return &Header{fields: fields}
}

// Clone returns a deep copy of the header object.
func (h *Header) Clone() *Header {
	// the value cache objects are immutable, so they may be copied as-is
	vc := make(map[string]any, len(h.valueCache))
	for k, v := range h.valueCache {
		vc[k] = v
	}

	fs := make([]Field, len(h.fields))
	copy(fs, h.fields)

	return &Header{
		fields:     fs,
		valueCache: vc,
	}
}

// getValue retrieves the cached value. The second value is a boolean that
// returns true if the cache value was set.
func (h *Header) getValue(name string) (any, bool) {
	n := strings.ToLower(name)
	v, found := h.valueCache[n]
	return v, found
}

// setValue replaces the cached value for the given name.
func (h *Header) setValue(name string, value any) {
	if h.valueCache == nil {
		h.valueCache = make(map[string]any, h.Len())
	}
	n := strings.ToLower(name)
	h.valueCache[n] = value
}

// forgetValue drops the cached value for the given name. Every mutation must
// call this to keep the cache consistent with the fields.
func (h *Header) forgetValue(name string) {
	delete(h.valueCache, strings.ToLower(name))
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// Fields returns a copy of all the fields in the header, in order.
func (h *Header) Fields() []Field {
	fs := make([]Field, len(h.fields))
	copy(fs, h.fields)
	return fs
}

// indexesNamed returns the indexes of fields with the given name.
func (h *Header) indexesNamed(name string) []int {
	is := make([]int, 0, len(h.fields))
	for i, f := range h.fields {
		if strings.EqualFold(f.Name(), name) {
			is = append(is, i)
		}
	}
	return is
}

// Get retrieves the string value of the named field.
//
// If the named field is not set in the header, it will return an empty string
// with ErrNoSuchField. If there are multiple fields for the given name, it
// will return the first value found and return ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.fields[ixs[0]].Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// GetAll fetches all the header field bodies for fields with the given name
// and returns them as a slice of strings.
//
// It returns nil with ErrNoSuchField if no field with the given name is set
// on the header.
func (h *Header) GetAll(name string) ([]string, error) {
	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		return nil, ErrNoSuchField
	}

	bs := make([]string, len(ixs))
	for i, ix := range ixs {
		bs[i] = h.fields[ix].Body()
	}
	return bs, nil
}

// Add appends a field with the given name and body to the end of the header.
// Any fields already present with the same name are left alone, so the new
// field will coexist with them.
func (h *Header) Add(name, body string) {
	h.forgetValue(name)
	h.fields = append(h.fields, NewField(name, body))
}

// Set will replace all existing header fields with the given name with a
// single header field with the given name and body. If the field already
// exists on the header, then the first occurrence will be replaced with this
// value and any other values will be deleted. If the field does not exist, it
// will be appended to the end of the header.
func (h *Header) Set(name, body string) {
	h.forgetValue(name)

	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		h.fields = append(h.fields, NewField(name, body))
		return
	}

	h.fields[ixs[0]] = NewField(name, body)

	// delete any but the first, back to front so the indexes stay valid
	for i := len(ixs) - 1; i > 0; i-- {
		h.fields = append(h.fields[:ixs[i]], h.fields[ixs[i]+1:]...)
	}
}

// Delete removes all fields with the given name from the header. It returns
// ErrNoSuchField if no field with that name is present.
func (h *Header) Delete(name string) error {
	h.forgetValue(name)

	ixs := h.indexesNamed(name)
	if len(ixs) == 0 {
		return ErrNoSuchField
	}

	for i := len(ixs) - 1; i >= 0; i-- {
		h.fields = append(h.fields[:ixs[i]], h.fields[ixs[i]+1:]...)
	}
	return nil
}

// getParamValue will parse a param.Value out of the given field or return an
// error.
func (h *Header) getParamValue(name string) (*param.Value, error) {
	body, err := h.Get(name)
	if err != nil {
		return nil, err
	}

	pv, err := param.Parse(body)
	if err != nil {
		return nil, err
	}

	h.setValue(name, pv)

	return pv, nil
}

// GetParamValue will return a param.Value for the header field matching the
// given name.
//
// This will return an error if it is unable to parse a param.Value. This will
// return ErrNoSuchField if no field with the given name is present. It will
// return ErrManyFields if more than one field with the given name is found.
func (h *Header) GetParamValue(name string) (*param.Value, error) {
	v, found := h.getValue(name)
	if !found {
		return h.getParamValue(name)
	}

	pv, isPV := v.(*param.Value)
	if !isPV {
		return h.getParamValue(name)
	}

	// return a copy to prevent the cached value from being modified
	return pv.Clone(), nil
}

// SetParamValue will replace all existing header fields with the given name
// with a single header containing the given param.Value.
func (h *Header) SetParamValue(name string, body *param.Value) {
	h.Set(name, body.String())
	h.setValue(name, body.Clone())
}

// GetContentDisposition returns the Content-disposition header as a
// param.Value.
//
// It returns nil and ErrNoSuchField if the field is not set on the header. It
// returns nil and ErrManyFields if the field is set more than once on the
// header. It will return nil and an error if there is a problem parsing the
// param.Value.
func (h *Header) GetContentDisposition() (*param.Value, error) {
	return h.GetParamValue(ContentDisposition)
}

// SetContentDisposition sets the Content-disposition to a new value from a
// param.Value.
func (h *Header) SetContentDisposition(v *param.Value) {
	h.SetParamValue(ContentDisposition, v)
}

// GetDispositionParam gets a named parameter of the Content-disposition
// header.
//
// This method returns an empty string with ErrNoSuchField if no field is
// present in the header. This method returns an empty string with
// ErrNoSuchFieldParameter if the field is present, but the parameter is not
// set on the field.
func (h *Header) GetDispositionParam(p string) (string, error) {
	pv, err := h.GetContentDisposition()
	if err != nil {
		return "", err
	}

	if v, ok := pv.Parameter(p); ok {
		return v, nil
	}

	return "", ErrNoSuchFieldParameter
}

// SetDispositionParam sets a parameter of the Content-disposition header. The
// header must already exist before calling this method or it fails with
// ErrNoSuchField.
func (h *Header) SetDispositionParam(p, v string) error {
	pv, err := h.GetContentDisposition()
	if err != nil {
		return err
	}

	h.SetContentDisposition(param.Modify(pv, param.Set(p, v)))
	return nil
}

// GetTransferEncoding returns the value of the Content-transfer-encoding
// header.
//
// It returns an empty string with ErrNoSuchField if the field is not set on
// the header.
func (h *Header) GetTransferEncoding() (string, error) {
	return h.Get(ContentTransferEncoding)
}

// SetTransferEncoding replaces the Content-transfer-encoding header.
func (h *Header) SetTransferEncoding(te string) {
	h.Set(ContentTransferEncoding, te)
}

// GetContentID returns the value of the Content-id header.
//
// It returns an empty string with ErrNoSuchField if the field is not set on
// the header.
func (h *Header) GetContentID() (string, error) {
	return h.Get(ContentID)
}

// SetContentID replaces the Content-id header. Angle brackets are added if
// not present.
func (h *Header) SetContentID(cid string) {
	if !strings.HasPrefix(cid, "<") {
		cid = "<" + cid
	}
	if !strings.HasSuffix(cid, ">") {
		cid += ">"
	}
	h.Set(ContentID, cid)
}

// NewContentID generates a fresh Content-id value of the usual
// <unique@host> form.
func NewContentID(host string) string {
	return fmt.Sprintf("<%s@%s>", uuid.New(), host)
}

// WriteTo writes the header fields to the destination io.Writer, one field
// per line, followed by the blank line terminating the header.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, f := range h.fields {
		n, err := fmt.Fprintf(w, "%s%s", f.String(), Break)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	n, err := io.WriteString(w, Break)
	total += int64(n)
	return total, err
}

// Bytes returns the header as a slice of bytes.
func (h *Header) Bytes() []byte {
	var buf bytes.Buffer
	_, _ = h.WriteTo(&buf)
	return buf.Bytes()
}

// String returns the header as a string.
func (h *Header) String() string {
	return string(h.Bytes())
}
