/*
Package vector implements a growable array with explicit memory control.

A Vector owns a contiguous buffer obtained from an alloc.Allocator; the
first Len elements are live, the rest of the buffer is spare capacity.
Growth follows a geometric schedule, so appending is amortized constant.
Element lifecycles (copy, relocation, disposal) go through alloc.Traits,
which lets value types with ownership semantics live in a vector without
the vector knowing their internals.

Mutating operations that may allocate return an error; on error the vector
is left unchanged, since every code path secures its storage before
touching elements. Operations draining a single-pass sequence are the
exception, as the storage need is unknown up front: a failure mid-stream
restores the vector's length but loses the input already drawn, and a
replacement keeps the elements it already overwrote. Element operations
themselves cannot fail. Checked access returns ErrOutOfRange, unchecked
access panics on misuse.

Status

Awaiting Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vek.vector'.
func tracer() tracing.Trace {
	return tracing.Select("vek.vector")
}
