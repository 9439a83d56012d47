// Package part provides the core Part value: a header collection paired with
// a lazily-opened byte source. Parts are built with FormData for literal
// values, FilePath for files, FileURL for network resources, or FileData for
// any Source. Construction never performs I/O; the body's backing resource
// is opened only when the body is consumed and is released when consumption
// completes or is abandoned.
package part
