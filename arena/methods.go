// Vertex creation and read-side accessors for Arena. Split from
// types.go the way core/methods.go separates Graph's mutators from the
// type definitions in core/types.go.
package arena

// appendSlot advances the logical length by one and returns the id of
// the new slot, growing the physical backing slice only when the
// logical length exceeds it. Once a shape has been seen, replaying it
// allocates nothing; a taller shape than any prior evaluation still
// grows safely instead of indexing out of bounds.
func (a *Arena) appendSlot() ID {
	id := ID(a.subSize)
	a.subSize++
	if a.subSize > len(a.vertices) {
		a.vertices = append(a.vertices, vertex{})
	}
	return id
}

// CreateLeaf appends an independent-variable leaf: both fanin slots
// unused, both weights zero.
func (a *Arena) CreateLeaf() ID {
	id := a.appendSlot()
	v := &a.vertices[id]
	v.edges[0] = edge{None, 0}
	v.edges[1] = edge{None, 0}
	v.ord2Weight = 0
	v.weight = 0
	return id
}

// CreateUnary appends a vertex with a single fanin edge (child, w) and
// second-order local partial w2 = d2(vertex)/d(child)^2.
func (a *Arena) CreateUnary(child ID, w, w2 float64) ID {
	id := a.appendSlot()
	v := &a.vertices[id]
	v.edges[0] = edge{child, w}
	v.edges[1] = edge{None, 0}
	v.ord2Weight = w2
	v.weight = 0
	return id
}

// CreateBinary appends a vertex with two fanin edges and mixed
// second-order local partial wMixed = d2(vertex)/d(left)d(right). The
// same-variable second partials of a two-fanin op are assumed zero, per
// spec: no operator in this library needs them.
func (a *Arena) CreateBinary(left ID, wLeft float64, right ID, wRight float64, wMixed float64) ID {
	id := a.appendSlot()
	v := &a.vertices[id]
	v.edges[0] = edge{left, wLeft}
	v.edges[1] = edge{right, wRight}
	v.ord2Weight = wMixed
	v.weight = 0
	return id
}

// PeakLen reports the arena's physical vertex count — the high-water
// mark of any evaluation since the last Reset, which drops it to zero. Repeated evaluations of the same
// expression shape leave this unchanged after the first; it exists for
// tests and introspection, not for driving control flow.
func (a *Arena) PeakLen() int { return len(a.vertices) }

// Weight returns the first-order adjoint d(root)/d(id) accumulated by
// the most recent Sweep. Zero before the first Sweep or for an id never
// touched by one.
func (a *Arena) Weight(id ID) float64 {
	return a.vertices[id].weight
}

// SelfOrd2Weight returns the second-order diagonal d2(root)/d(id)^2
// accumulated by the most recent Sweep.
func (a *Arena) SelfOrd2Weight(id ID) float64 {
	return a.vertices[id].selfOrd2Weight
}

// MixedWeight returns the stored mixed second partial d2(root)/d(x)d(y)
// for x != y, or 0 if no contribution was ever pushed onto that pair.
// Panics if x == y — callers should read SelfOrd2Weight for the
// diagonal, matching the distinct storage the algorithm actually uses.
func (a *Arena) MixedWeight(x, y ID) float64 {
	if x == y {
		panic("arena: MixedWeight(x,x) — use SelfOrd2Weight for the diagonal")
	}
	hi, lo := x, y
	if lo > hi {
		hi, lo = lo, hi
	}
	entries := a.vertices[hi].ord2Edges
	n := a.vertices[hi].ord2Size
	for i := 0; i < n; i++ {
		if entries[i].id == lo {
			return entries[i].w
		}
	}
	return 0
}
