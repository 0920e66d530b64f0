// Package schema declares the fixed binary layout of a flight data
// recorder record and derives everything else from that one declaration.
//
// A record is a static tree of named fields. Every field is either a
// leaf with a fixed-width Kind (flag, integer, float) or a group of
// child fields. The tree is pure data - the packages above it never
// hand-write per-field mapping code.
//
// THE INVARIANT:
//
// Header columns and row values must align one-to-one, forever. Both
// are therefore derived from a single depth-first pre-order traversal,
// Record.Leaves(). The header flattener takes the path of each leaf,
// the row flattener decodes one value per leaf in the same slice order.
// There is no second traversal that could drift.
//
// Byte layout is densely packed: fields follow each other with no
// padding or framing, every leaf is little-endian, and any bit pattern
// is a valid value for every Kind. Record.ByteSize() is fixed at
// declaration time and never varies within a stream.
package schema
