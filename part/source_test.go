package part

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trackingReadCloser counts closes and serves bytes from a buffer.
type trackingReadCloser struct {
	io.Reader
	closes int
}

func (rc *trackingReadCloser) Close() error {
	rc.closes++
	return nil
}

func TestBytesSource(t *testing.T) {
	t.Parallel()

	s := NewBytesSource([]byte("abc"))
	assert.Equal(t, 3, s.Len())

	for i := 0; i < 2; i++ {
		rc, err := s.Open(context.Background())
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, []byte("abc"), b)
		assert.NoError(t, rc.Close())
	}
}

func TestChunkedReader_BoundsReads(t *testing.T) {
	t.Parallel()

	content := bytes.Repeat([]byte("q"), ChunkSize*2+10)
	under := &trackingReadCloser{Reader: bytes.NewReader(content)}
	cr := newChunkedReader(under)

	// a huge destination still gets at most one chunk per pull
	big := make([]byte, ChunkSize*4)
	n, err := cr.Read(big)
	require.NoError(t, err)
	assert.LessOrEqual(t, n, ChunkSize)

	rest, err := io.ReadAll(cr)
	assert.NoError(t, err)
	assert.Equal(t, len(content), n+len(rest))
}

func TestChunkedReader_ClosesOnEOF(t *testing.T) {
	t.Parallel()

	under := &trackingReadCloser{Reader: bytes.NewReader([]byte("tiny"))}
	cr := newChunkedReader(under)

	b, err := io.ReadAll(cr)
	assert.NoError(t, err)
	assert.Equal(t, []byte("tiny"), b)

	// the handle is released on normal completion without an explicit Close
	assert.Equal(t, 1, under.closes)

	// Close after EOF does not close twice
	assert.NoError(t, cr.Close())
	assert.Equal(t, 1, under.closes)
}

func TestChunkedReader_IdempotentClose(t *testing.T) {
	t.Parallel()

	under := &trackingReadCloser{Reader: bytes.NewReader([]byte("data"))}
	cr := newChunkedReader(under)

	assert.NoError(t, cr.Close())
	assert.NoError(t, cr.Close())
	assert.Equal(t, 1, under.closes)
}

func TestChunkedReader_PropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("read failed")
	under := &trackingReadCloser{Reader: io.MultiReader(
		bytes.NewReader([]byte("ok")),
		&failingReader{err: boom},
	)}
	cr := newChunkedReader(under)

	b := make([]byte, ChunkSize)
	n, _ := cr.Read(b)
	assert.Equal(t, "ok", string(b[:n]))

	_, err := cr.Read(b)
	assert.ErrorIs(t, err, boom)
}

type failingReader struct {
	err error
}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, r.err
}

func TestOpenerSource_OpensPerConsumption(t *testing.T) {
	t.Parallel()

	var opened int
	src := &openerSource{open: func(ctx context.Context) (io.ReadCloser, error) {
		opened++
		return &trackingReadCloser{Reader: bytes.NewReader([]byte("fresh"))}, nil
	}}

	assert.Equal(t, 0, opened)

	for i := 1; i <= 2; i++ {
		rc, err := src.Open(context.Background())
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), b)
		assert.NoError(t, rc.Close())
		assert.Equal(t, i, opened)
	}
}

func TestOpenerSource_OpenFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("cannot open")
	src := &openerSource{open: func(ctx context.Context) (io.ReadCloser, error) {
		return nil, boom
	}}

	_, err := src.Open(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestFilePart_DefersThunk(t *testing.T) {
	t.Parallel()

	var opened int
	p := filePart("thunk", "thunk.dat", func(ctx context.Context) (io.ReadCloser, error) {
		opened++
		return &trackingReadCloser{Reader: bytes.NewReader([]byte("deferred"))}, nil
	})

	n, ok := p.Name()
	assert.True(t, ok)
	assert.Equal(t, "thunk", n)

	fn, ok := p.Filename()
	assert.True(t, ok)
	assert.Equal(t, "thunk.dat", fn)

	assert.Equal(t, 0, opened)

	body, err := p.Content(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []byte("deferred"), body)
	assert.Equal(t, 1, opened)
}

func TestURLBase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "report.pdf", urlBase("https://example.com/docs/report.pdf"))
	assert.Equal(t, "file.bin", urlBase("https://example.com/file.bin?sig=abc"))
}
