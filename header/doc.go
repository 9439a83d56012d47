// Package header provides the header collection attached to a message part.
// It stores fields in order, looks them up case-insensitively, and layers
// typed accessors for the Content-disposition and Content-transfer-encoding
// fields on top of the low-level string access. Parameterized header bodies
// are handled through the param subpackage.
package header
