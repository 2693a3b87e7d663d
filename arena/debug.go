package arena

import (
	"fmt"
	"strings"
)

// Dump renders every live vertex's fanin edges, weights, and Hessian
// entries; used by zhad.DepVar.String for debugging.
func (a *Arena) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "arena: independent vars=%d; vertices=%d\n", a.numIndep, a.subSize)
	for i := 0; i < a.subSize; i++ {
		v := &a.vertices[i]
		fmt.Fprintf(&b, "  vertex %d: edges L id=%d w=%g; R id=%d w=%g; weight=%g; ord2Weight=%g\n",
			i, v.edges[0].id, v.edges[0].w, v.edges[1].id, v.edges[1].w, v.weight, v.ord2Weight)
		fmt.Fprintf(&b, "    ord2Edges:")
		for k := 0; k < v.ord2Size; k++ {
			fmt.Fprintf(&b, " (%d, wt=%g)", v.ord2Edges[k].id, v.ord2Edges[k].w)
		}
		fmt.Fprintf(&b, "\n    selfOrd2Weight: %g\n", v.selfOrd2Weight)
	}
	return b.String()
}
