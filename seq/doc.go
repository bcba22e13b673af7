/*
Package seq abstracts sources of elements feeding into containers.

A Seq is single-pass: it hands out each element exactly once and cannot tell
in advance how many there will be. A Multipass sequence additionally knows its
length and can be traversed again. Container bulk operations probe for the
stronger capability and pick their strategy accordingly: with a Multipass
source the required space is known up front and a single allocation suffices;
a plain Seq forces incremental strategies.

Status

Awaiting Go 1.18 with generics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vek.seq'.
func tracer() tracing.Trace {
	return tracing.Select("vek.seq")
}
