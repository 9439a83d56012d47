// Package param provides a tool for dealing with parameterized headers. These
// headers include the Content-type and Content-disposition header. Parameter
// names are case-insensitive, which matters for the name and filename
// parameters of form-data parts.
package param
