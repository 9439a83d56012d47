package part

import (
	"net/http"
	"net/url"
	"path"

	"github.com/go-git/go-billy/v5"

	"github.com/zostay/go-multipart/header"
	"github.com/zostay/go-multipart/header/param"
)

// FormData builds a part carrying a literal form field value. The part's
// Content-disposition is form-data with the given name, and the body is the
// UTF-8 encoding of value, fully available in memory.
//
// Any extra fields are merged onto the header after the disposition:
// singleton part headers override, other names coexist.
func FormData(name, value string, extra ...header.Field) Part[*BytesSource] {
	hdr := header.New()
	hdr.SetContentDisposition(param.New(header.FormData, map[string]string{
		param.Name: name,
	}))
	mergeFields(hdr, extra)

	return New(hdr, NewBytesSource([]byte(value)))
}

// FileData builds a file part from an already-abstracted byte source. This
// is the fully general file constructor; the path- and URL-based builders
// delegate to it. The part's Content-disposition is form-data with the given
// name and filename, and its Content-transfer-encoding is binary.
//
// The source is not opened until the body is consumed.
func FileData[S Source](name, filename string, body S, extra ...header.Field) Part[S] {
	hdr := header.New()
	hdr.SetContentDisposition(param.New(header.FormData, map[string]string{
		param.Name:     name,
		param.Filename: filename,
	}))
	hdr.SetTransferEncoding(header.Binary)
	mergeFields(hdr, extra)

	return New(hdr, body)
}

// FilePath builds a file part whose body is read from the file at p in the
// given filesystem. The filename is the final segment of the path. The file
// is opened read-only, no earlier than the first pull against the body, and
// is read in ChunkSize chunks.
func FilePath(fsys billy.Basic, name, p string, extra ...header.Field) Part[*FileSource] {
	return FileData(name, path.Base(p), NewFileSource(fsys, p), extra...)
}

// FileURL builds a file part whose body is fetched from rawURL with the
// given client (nil means http.DefaultClient). The filename is the final
// segment of the URL path. No request is made until the body is consumed,
// and the response is read in ChunkSize chunks.
func FileURL(client *http.Client, name, rawURL string, extra ...header.Field) Part[*URLSource] {
	return FileData(name, urlBase(rawURL), NewURLSource(client, rawURL), extra...)
}

// urlBase extracts the final path segment of a URL for use as a filename. An
// unparseable URL falls back to the final slash-delimited segment of the raw
// string.
func urlBase(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return path.Base(rawURL)
	}
	return path.Base(u.Path)
}

// filePart builds a file part from a by-name open thunk: the thunk is
// evaluated afresh on each consumption of the body, never at construction.
//
// This stays unexported. Calling it with a handle that is already open would
// silently violate the no-I/O-before-consumption contract: the resource
// would leak if the body is never consumed and double-consume if it is
// consumed twice.
func filePart(name, filename string, open openFunc, extra ...header.Field) Part[Source] {
	return FileData[Source](name, filename, &openerSource{open}, extra...)
}
