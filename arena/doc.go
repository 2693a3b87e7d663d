// Package arena is the index-addressed, append-only vertex store that
// backs the zhad reverse-mode automatic-differentiation engine, plus
// the reverse sweep (edge-pushing) that walks it.
//
// Overview:
//
//   - A vertex represents one intermediate result of a scalar expression.
//     It records up to two fanin edges (child vertex id, local partial
//     derivative) and the second-order local partial ("ord2Weight")
//     computed at construction time — see Arena.CreateLeaf,
//     Arena.CreateUnary, Arena.CreateBinary.
//   - Vertices are addressed by ID, a small integer assigned in strict
//     creation order: every fanin edge on vertex v points at an id < v.
//     Independent-variable leaves occupy ids [0, NumIndep).
//   - Sweep performs the edge-pushing algorithm of Gower & Mello (2010):
//     a single reverse pass (highest id down to the leaf prefix) that
//     simultaneously accumulates first-order adjoints and pushes
//     second-order contributions into a sparse, lower-triangular
//     Hessian store keyed by the larger of the two vertex ids.
//
// Memory-reuse contract:
//
//   - Arena tracks a physical vertex count (len(vertices)) separate
//     from the logical length in play (subSize). Reset drops the
//     logical length to zero (and flips `once` back to false) without
//     necessarily discarding the underlying slice's capacity.
//   - Appends beyond subSize but within the physical length are writes
//     to already-constructed slots — no allocation. Once a sweep has
//     completed (`once == true`) and the logical length is rewound to
//     NumIndep, replaying the same expression shape stays within the
//     prior peak and allocates nothing. A taller expression than any
//     prior evaluation still grows safely; see Arena.appendSlot.
//   - The per-vertex ord2Edges list is itself a capacity-preserving
//     sub-vector: its logical size (ord2Size) resets to 0 on every
//     sweep, but the backing slice is reused across sweeps.
//
// Error handling:
//
//   - Arena operations never fail. Out-of-range ids are a programmer
//     error (the library does not guard against them); callers only
//     ever see ids this package handed out.
//
// See also: the root zhad package, which is the only intended caller —
// Value/IndepVar/DepVar drive Arena through CreateLeaf/CreateUnary/
// CreateBinary and Sweep, and never touch vertex internals directly.
package arena
