package arena

// ID is an opaque index into the arena. Vertices are addressed by ID in
// strict creation order: every fanin edge on a vertex v points at an id
// strictly smaller than v.
type ID int32

// None is the sentinel ID denoting "no such vertex" — used for the
// second fanin slot of a unary vertex and for a leaf's two unused slots.
const None ID = -1

// edge is one fanin of a vertex: the child's id and ∂(vertex)/∂(child)
// evaluated at construction time.
type edge struct {
	id ID
	w  float64
}

// ord2Entry is one entry of a vertex's lower-triangular Hessian store:
// a mixed second partial against a vertex with a strictly smaller id.
type ord2Entry struct {
	id ID
	w  float64
}

// vertex is one record of the computation graph. See doc.go for the
// memory-reuse contract governing ord2Edges/ord2Size.
type vertex struct {
	edges          [2]edge
	ord2Weight     float64 // one fanin: d2(v)/d(child)^2; two fanins: d2(v)/d(left)d(right)
	weight         float64 // first-order adjoint accumulator, d(root)/d(v)
	selfOrd2Weight float64 // second-order diagonal accumulator, d2(root)/d(v)^2
	ord2Edges      []ord2Entry
	ord2Size       int // logical length of ord2Edges; capacity is preserved across sweeps
}

// Arena is the append-only, index-addressed vertex store for one graph.
// It is owned by exactly one DepVar; see the root zhad package.
type Arena struct {
	vertices []vertex
	subSize  int // logical length ("used prefix")
	numIndep int // number of independent-variable leaves, occupying ids [0, numIndep)
	once     bool
}

// Option configures a newly constructed Arena. Options validate eagerly
// and panic on nonsensical input rather than deferring to a runtime
// error return.
type Option func(*Arena)

// WithCapacityHint preallocates room for n vertices, avoiding the
// append-driven growth of the first evaluation when the caller already
// knows roughly how large the expression graph will be. Panics if n is
// negative.
func WithCapacityHint(n int) Option {
	if n < 0 {
		panic("arena: WithCapacityHint(n<0)")
	}
	return func(a *Arena) {
		if cap(a.vertices) < n {
			grown := make([]vertex, len(a.vertices), n)
			copy(grown, a.vertices)
			a.vertices = grown
		}
	}
}

// New constructs an empty Arena with zero independent variables.
// Use Reset to bind a specific number of independent variables.
func New(opts ...Option) *Arena {
	a := &Arena{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NumIndep reports the number of independent-variable leaves currently
// bound (the value fixed by the most recent Reset).
func (a *Arena) NumIndep() int { return a.numIndep }

// Len reports the logical length of the arena (the number of live
// vertices — independent variables plus intermediates created since the
// last Reset or Sweep rewind).
func (a *Arena) Len() int { return a.subSize }

// Reset clears the arena's logical state and fixes the number of
// independent variables to numIndep. It does not necessarily release
// the backing slice's capacity — physical vertex storage from a prior
// binding may be reused once growth resumes. Callers then create
// numIndep leaves via CreateLeaf.
func (a *Arena) Reset(numIndep int) {
	if numIndep < 0 {
		panic("arena: Reset(numIndep<0)")
	}
	a.vertices = a.vertices[:0]
	a.subSize = 0
	a.numIndep = numIndep
	a.once = false
}
