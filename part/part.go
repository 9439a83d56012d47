package part

import (
	"bytes"
	"context"
	"io"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/zostay/go-multipart/charset"
	"github.com/zostay/go-multipart/header"
	"github.com/zostay/go-multipart/header/param"
)

// Part is one segment of a multipart message: a header collection paired
// with a byte source producing the body. A Part is an immutable value. The
// headers and body are fixed at construction and every "modification" method
// returns a new Part.
//
// Part is generic over the type of its body source. Most code works with the
// general Part[Source]; builders return parts typed to their concrete source
// so nothing is lost, and Covary widens them when a uniform type is needed.
//
// Header metadata is available without consuming the body: none of the
// accessor methods perform I/O.
type Part[S Source] struct {
	hdr  *header.Header
	body S
}

// New constructs a Part from a header and a body source. This is the sole
// construction contract: the builders in this package all bottom out here.
// The header is cloned, so later changes to hdr do not affect the part.
func New[S Source](hdr *header.Header, body S) Part[S] {
	return Part[S]{hdr: hdr.Clone(), body: body}
}

// Covary reinterprets a part under the general Source type. This is pure
// type-level widening: the returned part shares the same header collection
// and the same body source, and no data is transformed.
func Covary[S Source](p Part[S]) Part[Source] {
	return Part[Source]{hdr: p.hdr, body: p.body}
}

// Header returns a copy of the part's header collection. Modifying the
// returned header does not modify the part.
func (p Part[S]) Header() *header.Header {
	return p.hdr.Clone()
}

// Body returns the part's body source. Opening the source is the point at
// which any deferred I/O happens.
func (p Part[S]) Body() S {
	return p.body
}

// dispositionParam looks up a Content-disposition parameter. The second
// return is false when the header or the parameter is absent, which is not
// an error condition.
func (p Part[S]) dispositionParam(name string) (string, bool) {
	v, err := p.hdr.GetDispositionParam(name)
	if err != nil {
		return "", false
	}
	return v, true
}

// decodeParam looks up a Content-disposition parameter and decodes it under
// the given character set.
//
// The stored parameter string maps one character per transmitted byte, so
// decoding under Latin1 is an identity transformation and skips the decode
// entirely. Every other character set decodes the recovered wire bytes;
// invalid sequences become replacement characters, never a failure.
func (p Part[S]) decodeParam(name string, enc encoding.Encoding) (string, bool) {
	v, ok := p.dispositionParam(name)
	if !ok {
		return "", false
	}

	if enc == charset.Latin1 {
		return v, true
	}

	return charset.Decode(enc, charset.Latin1Bytes(v)), true
}

// decodeParamFunc looks up a Content-disposition parameter and hands the
// recovered wire bytes to a caller-supplied decoder. A declining decoder
// collapses to absent, the same as a missing parameter.
func (p Part[S]) decodeParamFunc(name string, fn charset.DecodeFunc) (string, bool) {
	v, ok := p.dispositionParam(name)
	if !ok {
		return "", false
	}

	return fn(charset.Latin1Bytes(v))
}

// Name returns the name parameter of the Content-disposition header decoded
// as UTF-8. The second return is false if the header or the parameter is
// absent.
func (p Part[S]) Name() (string, bool) {
	return p.NameCharset(charset.UTF8)
}

// NameCharset returns the name parameter of the Content-disposition header
// decoded under the given character set. The second return is false if the
// header or the parameter is absent.
func (p Part[S]) NameCharset(enc encoding.Encoding) (string, bool) {
	return p.decodeParam(param.Name, enc)
}

// DecodeName passes the raw bytes of the name parameter to fn and returns
// its result. The second return is false if the header or parameter is
// absent or if fn declines to decode the bytes.
func (p Part[S]) DecodeName(fn charset.DecodeFunc) (string, bool) {
	return p.decodeParamFunc(param.Name, fn)
}

// Filename returns the filename parameter of the Content-disposition header
// decoded as UTF-8. The second return is false if the header or the
// parameter is absent.
func (p Part[S]) Filename() (string, bool) {
	return p.FilenameCharset(charset.UTF8)
}

// FilenameCharset returns the filename parameter of the Content-disposition
// header decoded under the given character set. The second return is false
// if the header or the parameter is absent.
func (p Part[S]) FilenameCharset(enc encoding.Encoding) (string, bool) {
	return p.decodeParam(param.Filename, enc)
}

// DecodeFilename passes the raw bytes of the filename parameter to fn and
// returns its result. The second return is false if the header or parameter
// is absent or if fn declines to decode the bytes.
func (p Part[S]) DecodeFilename(fn charset.DecodeFunc) (string, bool) {
	return p.decodeParamFunc(param.Filename, fn)
}

// singleton headers are replaced rather than repeated when merged onto a
// part.
var singletonFields = []string{
	header.ContentDisposition,
	header.ContentID,
	header.ContentTransferEncoding,
	header.ContentType,
}

func isSingleton(name string) bool {
	for _, s := range singletonFields {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// mergeFields applies extra fields to a header under the merge rule: the
// singleton part headers override any value already set, every other name
// coexists with what is there.
func mergeFields(hdr *header.Header, extra []header.Field) {
	for _, f := range extra {
		if isSingleton(f.Name()) {
			hdr.Set(f.Name(), f.Body())
		} else {
			hdr.Add(f.Name(), f.Body())
		}
	}
}

// With returns a new Part with the given fields merged onto its header under
// the same rule the builders use: singleton part headers override, all other
// names coexist.
func (p Part[S]) With(fields ...header.Field) Part[S] {
	hdr := p.hdr.Clone()
	mergeFields(hdr, fields)
	return Part[S]{hdr: hdr, body: p.body}
}

// WithContentType returns a new Part with its Content-type header replaced.
func (p Part[S]) WithContentType(mt string) Part[S] {
	return p.With(header.NewField(header.ContentType, mt))
}

// WithContentID returns a new Part carrying a freshly generated Content-id.
func (p Part[S]) WithContentID(host string) Part[S] {
	hdr := p.hdr.Clone()
	hdr.SetContentID(header.NewContentID(host))
	return Part[S]{hdr: hdr, body: p.body}
}

// WithDispositionParam returns a new Part with the named Content-disposition
// parameter set. If the part has no Content-disposition header, the part is
// returned unchanged.
func (p Part[S]) WithDispositionParam(name, value string) Part[S] {
	hdr := p.hdr.Clone()
	if err := hdr.SetDispositionParam(name, value); err != nil {
		return p
	}
	return Part[S]{hdr: hdr, body: p.body}
}

// WriteTo opens the part's body source and copies it to w. The source handle
// is released on every exit path, including error and cancellation of ctx.
//
// Only the body bytes are written; the header is not. Handing the header and
// body to a multipart encoder that does the boundary framing is the caller's
// business.
func (p Part[S]) WriteTo(ctx context.Context, w io.Writer) (int64, error) {
	rc, err := p.body.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = rc.Close() }()

	return io.Copy(w, newContextReader(ctx, rc))
}

// Content opens the part's body source, reads it to completion, and returns
// the bytes. The source handle is released before returning.
func (p Part[S]) Content(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(ctx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// contextReader stops a body copy when its context is canceled so partially
// read chunks are discarded instead of blocking the consumer.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func newContextReader(ctx context.Context, r io.Reader) io.Reader {
	return &contextReader{ctx, r}
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
