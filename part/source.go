package part

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-git/go-billy/v5"
)

// ChunkSize is the fixed size of the chunks used when streaming file and URL
// bodies. It is large enough to amortize the cost of the underlying reads
// and small enough to bound the memory held by any single in-flight chunk.
const ChunkSize = 8192

// Source produces the body bytes of a part on demand. Open acquires whatever
// underlying resource backs the source and returns a reader over its bytes.
// No I/O happens before Open is called, and each call to Open acquires the
// resource anew.
//
// The caller owns the returned io.ReadCloser and must close it on every exit
// path, including cancellation and error. Part.WriteTo does this for you.
// Concurrent consumption of a single returned reader is not supported.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// openFunc is a by-name resource acquisition: each call opens a fresh handle.
// It is kept internal because calling it with an already-opened resource
// would break the no-I/O-before-consumption contract and leak or
// double-consume the handle.
type openFunc func(ctx context.Context) (io.ReadCloser, error)

// BytesSource is an eager, in-memory Source. Its bytes are fully available
// at construction and Open never fails, so a BytesSource may be consumed any
// number of times.
type BytesSource struct {
	b []byte
}

// NewBytesSource returns a Source over the given bytes. The slice is not
// copied; do not modify it after handing it over.
func NewBytesSource(b []byte) *BytesSource {
	return &BytesSource{b}
}

// Open returns a reader over the source bytes. The error is always nil.
func (s *BytesSource) Open(_ context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.b)), nil
}

// Len returns the number of bytes the source will produce.
func (s *BytesSource) Len() int {
	return len(s.b)
}

// FileSource is a Source that lazily opens a file for reading. The file is
// not touched until Open is called and is read in ChunkSize chunks.
type FileSource struct {
	fs   billy.Basic
	path string
}

// NewFileSource returns a Source over the file at path in the given
// filesystem.
func NewFileSource(fsys billy.Basic, path string) *FileSource {
	return &FileSource{fsys, path}
}

// Path returns the path the source will read from.
func (s *FileSource) Path() string {
	return s.path
}

// Open opens the file read-only and returns a chunked reader over its
// contents. Closing the returned reader closes the file.
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, err
	}
	return newChunkedReader(f), nil
}

// URLSource is a Source that lazily fetches a network resource. No request
// is made until Open is called and the response body is read in ChunkSize
// chunks.
type URLSource struct {
	client *http.Client
	url    string
}

// NewURLSource returns a Source over the resource at url, fetched with the
// given client. A nil client means http.DefaultClient.
func NewURLSource(client *http.Client, url string) *URLSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &URLSource{client, url}
}

// URL returns the URL the source will fetch.
func (s *URLSource) URL() string {
	return s.url
}

// Open issues a GET for the resource and returns a chunked reader over the
// response body. A response status outside the 2xx range is an error and the
// response body is closed before returning it.
func (s *URLSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_ = res.Body.Close()
		return nil, fmt.Errorf("fetching %q: unexpected status %s", s.url, res.Status)
	}

	return newChunkedReader(res.Body), nil
}

// openerSource adapts a by-name open thunk into a Source whose reads are
// chunked. Only the builders construct these.
type openerSource struct {
	open openFunc
}

func (s *openerSource) Open(ctx context.Context) (io.ReadCloser, error) {
	rc, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	return newChunkedReader(rc), nil
}

// chunkedReader reads from an underlying handle through a fixed ChunkSize
// buffer, so no more than one chunk is in flight at a time. The underlying
// handle is closed on the first EOF as well as by Close, and Close is
// idempotent.
type chunkedReader struct {
	rc     io.ReadCloser
	buf    []byte
	r, w   int
	closed bool
	err    error
}

func newChunkedReader(rc io.ReadCloser) *chunkedReader {
	return &chunkedReader{
		rc:  rc,
		buf: make([]byte, ChunkSize),
	}
}

// Read fills the internal chunk from the underlying handle as needed and
// copies out of it.
func (c *chunkedReader) Read(p []byte) (int, error) {
	if c.r == c.w {
		if c.err != nil {
			return 0, c.err
		}

		c.r, c.w = 0, 0
		n, err := c.rc.Read(c.buf)
		c.w = n
		if err != nil {
			c.err = err
			if err == io.EOF {
				// normal completion, release the handle now
				if cerr := c.close(); cerr != nil {
					c.err = cerr
				}
			}
		}
		if n == 0 {
			return 0, c.err
		}
	}

	n := copy(p, c.buf[c.r:c.w])
	c.r += n
	return n, nil
}

// Close releases the underlying handle. It is safe to call more than once.
func (c *chunkedReader) Close() error {
	return c.close()
}

func (c *chunkedReader) close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.rc.Close()
}
