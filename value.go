package zhad

import (
	"fmt"

	"github.com/nzleskowsky/zhad-go/arena"
)

// operand is satisfied by Value, IndepVar, and DepVar (each embeds a
// Value), letting every operator function in ops.go accept any mix of
// them without the caller spelling out a manual conversion.
type operand interface {
	val() float64
	vid() arena.ID
	gr() *arena.Arena
}

// Value is one scalar result of an expression evaluated on IndepVars: a
// numeric value paired with the id of the vertex that produced it and a
// back-pointer to the owning graph. Every arithmetic or math-function
// call in this package returns a fresh Value. Values are copyable and
// must not outlive the DepVar whose DependOn created their graph.
type Value struct {
	v  float64
	id arena.ID
	g  *arena.Arena
}

func (x Value) val() float64     { return x.v }
func (x Value) vid() arena.ID    { return x.id }
func (x Value) gr() *arena.Arena { return x.g }

// Get returns the numeric value carried by x.
func (x Value) Get() float64 { return x.v }

// String prints "(id, value)" for debugging.
func (x Value) String() string {
	return fmt.Sprintf("(id=%d, value=%g)", x.id, x.v)
}

// IndepVar is a Value destined to be an independent variable. Its id
// and graph are assigned once, by DepVar.DependOn; Set thereafter
// updates only its numeric value, never its id.
type IndepVar struct {
	Value
}

// Set updates x's numeric value in place. It does not touch x's id or
// graph — those are fixed for the lifetime of the binding established
// by DependOn.
func (x *IndepVar) Set(v float64) { x.v = v }

// DepVar is the scalar output whose sensitivities to a fixed set of
// independent variables are computed. It owns the computation graph:
// every Value and IndepVar derived from it shares that one graph, and
// independent variables from different DepVars are unrelated. The zero
// value is a usable, unbound DepVar; NewDepVar additionally accepts
// arena options applied to each graph DependOn builds.
type DepVar struct {
	Value
	opts []arena.Option
}

// String prints the DepVar's own (id, value) followed by a full
// vertex/edge dump of its graph.
func (d *DepVar) String() string {
	if d.g == nil {
		return fmt.Sprintf("DepVar %s (unbound)", d.Value)
	}
	return fmt.Sprintf("DepVar %s\n%s", d.Value, d.g.Dump())
}

func checkSameGraph(a, b operand) {
	if a.gr() != b.gr() {
		panic(ErrGraphMismatch)
	}
}
