/*
Package alloc decouples containers from the memory that backs them.

An Allocator hands out and takes back element buffers; its Policy states how
it travels when the owning container is copied, moved or swapped, and whether
two instances may exchange each other's memory. Traits describe the element
type: how to copy, relocate and dispose a value, and which of these collapse
into no-ops. A Container bundles an allocator with element traits and offers
the range-level construct/assign/destroy operations containers are built
from.

Status

Awaiting Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package alloc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vek.alloc'.
func tracer() tracing.Trace {
	return tracing.Select("vek.alloc")
}
