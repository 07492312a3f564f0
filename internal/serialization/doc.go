// Package serialization reads and writes layer parameters as raw
// little-endian streams.
//
// A stream holds one weight matrix and one bias vector:
//
//	magic "EVNP"                      4 bytes
//	version                           uint32
//	rows, cols, bias length           3 × uint32
//	weights, row-major                rows*cols × float32
//	bias                              float32 values
//	sha256 over everything past the magic
//
// The format carries no layer kind or activation: those live in the code
// that constructs the layer around the raw arrays, which is why loading
// goes through the FromRaw constructors.
package serialization
