package zhad

import (
	"fmt"

	"github.com/nzleskowsky/zhad-go/arena"
)

// NewDepVar constructs an empty, unbound DepVar. Arena options (such as
// arena.WithCapacityHint) are applied to every graph a subsequent
// DependOn builds, pre-sizing vertex storage when the caller already
// knows roughly how large the expression will be. The zero value
// zhad.DepVar{} is equally usable when no options are needed.
func NewDepVar(opts ...arena.Option) *DepVar { return &DepVar{opts: opts} }

// DependOn binds d to a fixed set of independent variables: it clears
// d's graph (discarding any previous binding) and appends one leaf
// vertex per variable. Ids are assigned in reverse argument order —
// the last variable gets the smallest id — an implementation detail
// that is safe to ignore as long as IndepVar ids are treated as opaque;
// the package exposes them only through the debug String output.
//
// Calling DependOn again after evaluations is legal and simply rebinds
// to a new set of variables; any Values derived from the old graph must
// not be used afterward.
func (d *DepVar) DependOn(vars ...*IndepVar) {
	g := arena.New(d.opts...)
	g.Reset(len(vars))
	for i := len(vars) - 1; i >= 0; i-- {
		id := g.CreateLeaf()
		vars[i].v = 0
		vars[i].id = id
		vars[i].g = g
	}
	d.v = 0
	d.id = arena.None
	d.g = g
}

// Assign records v as this DepVar's current value and runs a reverse
// sweep seeded at v's vertex with adjoint 1.0, populating every
// Derivative1/Derivative2 query against the bound independent
// variables. Panics if v was built on a different DependOn graph.
func (d *DepVar) Assign(v Value) {
	if d.g != nil && v.g != d.g {
		panic(fmt.Errorf("Assign: %w", ErrGraphMismatch))
	}
	d.v = v.v
	d.id = v.id
	d.g = v.g
	d.g.Sweep(d.id, 1.0)
}

// Derivative1 returns d(this)/d(x), the first-order adjoint of x's
// vertex as of the most recent Assign. Returns 0 if no Assign has
// happened yet, or if x has never contributed to any assigned
// expression.
func (d *DepVar) Derivative1(x operand) float64 {
	checkSameGraph(d, x)
	return d.g.Weight(x.vid())
}

// Derivative2 returns d2(this)/d(x)d(y). When x and y are the same
// variable this reads the diagonal accumulator; otherwise it reads the
// sparse lower-triangular store keyed by the larger of the two ids,
// returning 0 if that pair was never touched by a sweep (Schwarz
// symmetry means argument order does not matter).
func (d *DepVar) Derivative2(x, y operand) float64 {
	checkSameGraph(d, x)
	checkSameGraph(d, y)
	if x.vid() == y.vid() {
		return d.g.SelfOrd2Weight(x.vid())
	}
	return d.g.MixedWeight(x.vid(), y.vid())
}
