package param

import (
	"mime"
	"strings"
)

const (
	// Name is the name of the name parameter carried by the
	// Content-disposition header of a form-data part.
	Name = "name"

	// Filename is the name of the filename parameter that may be present in
	// the Content-disposition header.
	Filename = "filename"

	// Charset is the name of the charset parameter that may be present in the
	// Content-type header.
	Charset = "charset"
)

// Value represents a parsed parameterized header field, such as is used in
// the Content-type and Content-disposition headers. A Value object is
// immutable: you cannot change it in place. However, a Modify() function is
// provided to perform transformation of a Value into a new Value.
//
// Parameter names are case-insensitive and are folded to lowercase when a
// Value is constructed.
type Value struct {
	v  string
	ps map[string]string
}

// Parse takes a header field body, parses it as a Value and returns it. If an
// error occurs in the process, it returns an error.
func Parse(v string) (*Value, error) {
	dt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}

	return &Value{dt, ps}, nil
}

// New creates a new parameterized header field value. The second argument is
// optional and provides the parameters.
func New(v string, ps ...map[string]string) *Value {
	nps := map[string]string{}
	for _, p := range ps {
		for k, pv := range p {
			nps[strings.ToLower(k)] = pv
		}
	}
	return &Value{v, nps}
}

// Modifier is a modification to apply to a Value when calling the Modify()
// function.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value of the Value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets a parameter with the given name on the Value.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[strings.ToLower(name)] = value
	}
}

// Delete is a Modifier that removes the parameter with the given name from
// the Value.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, strings.ToLower(name))
	}
}

// Modify clones a Value, applies the given modifications (if any) and returns
// the new Value. You can pass multiple changes to this function:
//
//	v, _ := param.Parse(`form-data; name=avatar`)
//	nv := param.Modify(v, param.Set("filename", "avatar.png"))
func Modify(pv *Value, changes ...Modifier) *Value {
	copy := pv.Clone()
	for _, change := range changes {
		change(copy)
	}
	return copy
}

// Value returns the primary value of the Value. This is the value before the
// first semi-colon.
func (pv *Value) Value() string {
	return pv.v
}

// Disposition is a synonym for Value() and returns the disposition type,
// e.g., "form-data", "inline", or "attachment".
func (pv *Value) Disposition() string {
	return pv.v
}

// Parameters returns the parameters encoded on this Value as a map with
// lowercase keys. Do not modify this map. If you need to modify it, make a
// copy first.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the value of the parameter with the given
// case-insensitive name. The second return value is false if no parameter
// with that name is set.
func (pv *Value) Parameter(k string) (string, bool) {
	v, ok := pv.ps[strings.ToLower(k)]
	return v, ok
}

// Name returns the value of the "name" parameter. It is intended for use with
// the Content-disposition header of a form-data part.
func (pv *Value) Name() string {
	return pv.ps[Name]
}

// Filename returns the value of the "filename" parameter. It is intended for
// use with the Content-disposition header.
func (pv *Value) Filename() string {
	return pv.ps[Filename]
}

// String returns the serialized value of the Value including the primary
// value and all parameters, quoted as needed.
func (pv *Value) String() string {
	return mime.FormatMediaType(pv.v, pv.ps)
}

// Bytes returns the serialized value of the Value including the primary value
// and all parameters.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	var copy Value
	copy.v = pv.v
	copy.ps = make(map[string]string, len(pv.ps))
	for k, v := range pv.ps {
		copy.ps[k] = v
	}
	return &copy
}
