// Sweep implements the edge-pushing reverse pass (Gower & Mello, 2010):
// a single walk from the root vertex down to the independent-variable
// prefix that simultaneously accumulates first-order adjoints and
// builds the sparse, lower-triangular Hessian store.
//
// The pass is split in two: preReset() clears stale per-vertex
// accumulators, then the main loop walks the graph exactly once.
package arena

// insertEdge is the Hessian accumulator: it records that vertex a
// contributes delta to the mixed second partial against vertex b.
//
//   - a == b: the contribution is a diagonal one. A mixed edge (a,a)
//     from a two-fanin vertex would otherwise alias to two distinct
//     off-diagonal slots that both resolve to d2/da^2, so folding it
//     into the single diagonal cell requires doubling it.
//   - a != b: stored at the larger of the two ids, keyed by the
//     smaller, so storage and lookup always hit the vertex whose slice
//     has already been allocated for other mixed partials of that
//     vertex — never a fresh id.
func (a *Arena) insertEdge(x, y ID, delta float64) {
	if x == y {
		a.vertices[x].selfOrd2Weight += 2.0 * delta
		return
	}
	hi, lo := x, y
	if lo > hi {
		hi, lo = lo, hi
	}
	vh := &a.vertices[hi]
	for i := 0; i < vh.ord2Size; i++ {
		if vh.ord2Edges[i].id == lo {
			vh.ord2Edges[i].w += delta
			return
		}
	}
	if vh.ord2Size == len(vh.ord2Edges) {
		vh.ord2Edges = append(vh.ord2Edges, ord2Entry{id: lo, w: delta})
	} else {
		vh.ord2Edges[vh.ord2Size] = ord2Entry{id: lo, w: delta}
	}
	vh.ord2Size++
}

// preReset clears every vertex's per-sweep accumulators (ord2Size and
// selfOrd2Weight) and, for the independent-variable leaves only, the
// first- and second-order weights left over from whatever evaluation
// last wrote them. Non-leaf weight/ord2Weight are already current: they
// were set fresh by the CreateUnary/CreateBinary call that (re)built
// this vertex for the current expression.
func (a *Arena) preReset() {
	for i := a.subSize - 1; i >= 0; i-- {
		v := &a.vertices[i]
		v.ord2Size = 0
		v.selfOrd2Weight = 0
		if i < a.numIndep {
			v.weight = 0
			v.ord2Weight = 0
		}
	}
}

// Sweep runs the reverse pass seeded at root with adjoint seed (the
// DepVar assignment path always seeds with 1.0). After Sweep returns,
// Weight/SelfOrd2Weight/MixedWeight on any independent-variable id
// report that variable's contribution to root, and the arena's logical
// length is rewound to NumIndep so the next evaluation's intermediates
// reuse this sweep's peak capacity.
func (a *Arena) Sweep(root ID, seed float64) {
	last := a.subSize - 1
	if int(root) > last {
		// Re-sweeping a root built before the previous Sweep rewound the
		// logical length: its intermediates are still intact above NumIndep.
		last = int(root)
		a.subSize = last + 1
	}
	a.preReset()
	a.vertices[root].weight = seed
	a.subSize = a.numIndep
	a.once = true

	for i := last; i >= a.numIndep; i-- {
		v := &a.vertices[i]
		edgeL := v.edges[0]
		edgeR := v.edges[1]
		hasTwo := edgeR.id != None

		// Pushing: forward this vertex's own mixed partials onto its fanins.
		for k := 0; k < v.ord2Size; k++ {
			o := v.ord2Edges[k]
			a.insertEdge(edgeL.id, o.id, edgeL.w*o.w)
			if hasTwo {
				a.insertEdge(edgeR.id, o.id, edgeR.w*o.w)
			}
		}

		// Self-second propagation: spread this vertex's diagonal onto its fanins.
		if s := v.selfOrd2Weight; s != 0 {
			a.vertices[edgeL.id].selfOrd2Weight += edgeL.w * edgeL.w * s
			if hasTwo {
				a.vertices[edgeR.id].selfOrd2Weight += edgeR.w * edgeR.w * s
				a.insertEdge(edgeL.id, edgeR.id, edgeL.w*edgeR.w*s)
			}
		}

		if w := v.weight; w != 0 {
			// Creation: this vertex's own second-order local partial, scaled
			// by how much it contributes to the root, becomes a fresh
			// second-order contribution on its fanins.
			if ord2 := v.ord2Weight; ord2 != 0 {
				if hasTwo {
					a.insertEdge(edgeL.id, edgeR.id, w*ord2)
				} else {
					a.vertices[edgeL.id].selfOrd2Weight += w * ord2
				}
			}

			// Adjoint: propagate the first-order weight itself.
			v.weight = 0
			a.vertices[edgeL.id].weight += w * edgeL.w
			if hasTwo {
				a.vertices[edgeR.id].weight += w * edgeR.w
			}
		}
	}
}
