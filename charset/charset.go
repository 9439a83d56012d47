// Package charset decodes header parameter bytes under arbitrary character
// sets. Parameter values travel on the wire one byte per character, so a
// stored parameter string is a faithful 1:1 byte-to-char mapping of the
// transmitted bytes. This package recovers those bytes and decodes them
// under any IANA-registered character set via:
//
// * golang.org/x/text/encoding/ianaindex
//
// This will make the size of your compiled binaries somewhat larger. But it
// will also give your code the ability to decode pretty much any character
// set it might encounter in the wild wild world of HTTP.
package charset

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// DecodeFunc is a caller-supplied decoder for raw parameter bytes. It returns
// the decoded string and true, or false when it declines to decode the input.
type DecodeFunc func(b []byte) (string, bool)

// latin1 reconstitutes the transmitted bytes from a stored parameter string.
// Runes outside latin-1 cannot have come off the wire; should one appear it
// is substituted rather than failing.
var latin1 = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())

// Latin1Bytes returns the single-byte-per-character encoding of s. For a
// string that was stored from wire bytes this recovers exactly the original
// transmitted bytes.
func Latin1Bytes(s string) []byte {
	b, err := latin1.Bytes([]byte(s))
	if err != nil {
		// ReplaceUnsupported substitutes instead of failing
		return []byte(s)
	}
	return b
}

// Decode decodes b under the given character set. Decoding never hard-fails:
// invalid sequences are replaced with the unicode replacement character,
// which is the substitution behavior of the golang.org/x/text decoders.
func Decode(enc encoding.Encoding, b []byte) string {
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		// x/text decoders substitute rather than fail, so this is not
		// expected to be reachable for the encodings we hand out
		return string(b)
	}
	return string(s)
}

// Lookup finds the encoding for an IANA-registered character set name, which
// can decode a wide range of rare and unusual character sets.
func Lookup(name string) (encoding.Encoding, error) {
	e, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("no encoding found for charset %q", name)
	}

	return e, nil
}

// Common encodings, re-exported so callers need not import the x/text
// packages for the usual cases.
var (
	// UTF8 is the default character set for decoding disposition parameters.
	UTF8 = unicode.UTF8

	// Latin1 is ISO 8859-1. Decoding a stored parameter string under Latin1
	// is an identity transformation and is special-cased as such.
	Latin1 encoding.Encoding = charmap.ISO8859_1
)
