// Package multipart models a single part of a multipart/form-data message
// body: an immutable header collection together with a lazily-opened byte
// stream, plus the typed accessors and builders needed to work with the
// Content-Disposition name and filename parameters.
//
// The code is split according to concern. The part package holds the core
// part.Part value, which is a header plus a part.Source producing the body
// bytes on demand. Parts are built through the constructors in that package:
// part.FormData for literal string values, part.FilePath for files,
// part.FileURL for network resources, and part.FileData for anything that
// already satisfies the part.Source interface. None of these touch the
// underlying resource until the body is actually consumed, so a part may be
// constructed, inspected, and passed around freely without triggering any
// I/O.
//
// Headers live in the header package, which provides an ordered,
// case-insensitive header collection with typed accessors for the
// Content-Disposition and Content-Transfer-Encoding fields. Parameterized
// header values such as Content-Disposition are handled by header/param,
// which represents them as immutable param.Value objects.
//
// Disposition parameter values arrive on the wire one byte per character.
// The charset package recovers the transmitted bytes from a stored parameter
// string and decodes them under any IANA-registered character set using
// golang.org/x/text, so callers that need something other than UTF-8 can ask
// for it explicitly.
//
// This library does not perform multipart boundary framing. A part's headers
// and body are handed to whatever encoder or transport the application uses
// downstream; writing the actual multipart message is that encoder's job.
package multipart
