package vector

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the storage layout of v for debugging: live elements plus
// the spare capacity region.
func Dump[T any](v *Vector[T]) string {
	printer := tp.New()
	printer.SetValue(fmt.Sprintf("vector(len=%d, cap=%d)", v.Len(), v.Cap()))
	if v.st.data == nil {
		printer.AddNode("unallocated")
		return printer.String()
	}
	live := printer.AddBranch("live")
	for i, x := range v.st.live() {
		live.AddNode(fmt.Sprintf("[%d] %v", i, x))
	}
	if n := v.st.available(); n > 0 {
		printer.AddNode(fmt.Sprintf("spare %d slot(s)", n))
	}
	return printer.String()
}
