// Package schema defines the fixed binary layout of solver metrics log
// records and reinterprets raw bytes as typed values.
//
// A metrics log is a flat sequence of fixed-size records with no delimiters,
// no header, and no self-description: the producer writes its in-memory
// counter rows verbatim, so every field is a fixed-width little-endian value
// at a known offset. Two layout variants exist. The base variant carries a
// 16-byte record header (timestamp, global allocated paths) and 96-byte
// worker blocks. The extended variant inserts a global conflict counter and
// path checksum into the header and appends per-worker conflict/allocation
// counters, for a 32-byte header and 112-byte worker blocks.
//
// The worker count is part of the producer's build configuration and cannot
// be recovered from the file; Layout carries it as caller-supplied
// configuration.
//
// Parsing is read-then-construct: each field is read at its documented offset
// through an endian.EndianEngine and copied into a plain struct. Nothing is
// reinterpreted in place and nothing is validated here beyond slice lengths
// established by the caller.
package schema
