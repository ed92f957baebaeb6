// Package memory implements the byte-addressable memory of the
// single-cycle simulator.
//
// Memory is a flat, zero-initialized byte store of fixed size.
// Indexing it by a byte offset yields a transient Cell view with typed
// 8/16/32-bit accessors, signed and unsigned. All multi-byte accesses
// use a fixed big-endian encoding, so views of different widths over
// the same bytes stay coherent: a 32-bit write is observable through
// the four 8-bit views and the two 16-bit views covering its offsets.
package memory
