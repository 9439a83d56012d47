package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-multipart/charset"
)

func TestLatin1Bytes(t *testing.T) {
	t.Parallel()

	// each stored character is one wire byte
	assert.Equal(t, []byte("plain"), charset.Latin1Bytes("plain"))
	assert.Equal(t, []byte{0xe9, 0xe8}, charset.Latin1Bytes("éè"))

	// the UTF-8 bytes of "é" stored as two latin-1 characters come back as
	// the original two bytes
	stored := string([]rune{0xc3, 0xa9})
	assert.Equal(t, []byte{0xc3, 0xa9}, charset.Latin1Bytes(stored))

	// runes that cannot have come off the wire are substituted, not fatal
	b := charset.Latin1Bytes("a☃b")
	assert.Len(t, b, 3)
	assert.Equal(t, byte('a'), b[0])
	assert.Equal(t, byte('b'), b[2])
}

func TestDecode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "héllo", charset.Decode(charset.UTF8, []byte("héllo")))
	assert.Equal(t, "é", charset.Decode(charset.Latin1, []byte{0xe9}))

	// invalid sequences never fail, they substitute
	s := charset.Decode(charset.UTF8, []byte{0xff, 'o', 'k'})
	assert.Contains(t, s, "ok")
	assert.Contains(t, s, "�")
}

func TestLookup(t *testing.T) {
	t.Parallel()

	e, err := charset.Lookup("ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "é", charset.Decode(e, []byte{0xe9}))

	e, err = charset.Lookup("UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "snow☃", charset.Decode(e, []byte("snow☃")))

	_, err = charset.Lookup("not-a-charset")
	assert.Error(t, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	// for latin-1 representable text, recovering the wire bytes and
	// decoding them as latin-1 reproduces the stored string
	stored := "résumé"
	assert.Equal(t, stored, charset.Decode(charset.Latin1, charset.Latin1Bytes(stored)))
}
