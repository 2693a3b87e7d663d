// Operator and math-function overloads on Value/IndepVar/DepVar
// operands. Go has no operator overloading, so "a + b" becomes
// Add(a, b); the partials baked into each vertex are exactly the
// analytic partial derivatives of the corresponding elementary
// operation.
package zhad

import "math"

// Add returns a + b.
func Add(a, b operand) Value {
	checkSameGraph(a, b)
	g := a.gr()
	id := g.CreateBinary(a.vid(), 1, b.vid(), 1, 0)
	return Value{v: a.val() + b.val(), id: id, g: g}
}

// AddConst returns a + k (and, by commutativity, serves k + a as well —
// call AddConst(a, k) either way).
func AddConst(a operand, k float64) Value {
	g := a.gr()
	id := g.CreateUnary(a.vid(), 1, 0)
	return Value{v: a.val() + k, id: id, g: g}
}

// Sub returns a - b.
func Sub(a, b operand) Value {
	checkSameGraph(a, b)
	g := a.gr()
	id := g.CreateBinary(a.vid(), 1, b.vid(), -1, 0)
	return Value{v: a.val() - b.val(), id: id, g: g}
}

// SubConst returns a - k.
func SubConst(a operand, k float64) Value {
	g := a.gr()
	id := g.CreateUnary(a.vid(), 1, 0)
	return Value{v: a.val() - k, id: id, g: g}
}

// ConstSub returns k - a.
func ConstSub(k float64, a operand) Value {
	g := a.gr()
	id := g.CreateUnary(a.vid(), -1, 0)
	return Value{v: k - a.val(), id: id, g: g}
}

// Neg returns -a.
func Neg(a operand) Value {
	g := a.gr()
	id := g.CreateUnary(a.vid(), -1, 0)
	return Value{v: -a.val(), id: id, g: g}
}

// Mul returns a * b.
func Mul(a, b operand) Value {
	checkSameGraph(a, b)
	g := a.gr()
	av, bv := a.val(), b.val()
	id := g.CreateBinary(a.vid(), bv, b.vid(), av, 1)
	return Value{v: av * bv, id: id, g: g}
}

// MulConst returns a * k (and, by commutativity, serves k * a as well).
func MulConst(a operand, k float64) Value {
	g := a.gr()
	id := g.CreateUnary(a.vid(), k, 0)
	return Value{v: a.val() * k, id: id, g: g}
}

// Inv returns 1 / a.
func Inv(a operand) Value {
	g := a.gr()
	av := a.val()
	invv := 1 / av
	invv2 := invv * invv
	id := g.CreateUnary(a.vid(), -invv2, 2*invv2*invv)
	return Value{v: invv, id: id, g: g}
}

// Div returns a / b, built as a * inv(b) so the two underlying
// operations supply all the partials.
func Div(a, b operand) Value {
	return Mul(a, Inv(b))
}

// DivConst returns a / k.
func DivConst(a operand, k float64) Value {
	return MulConst(a, 1/k)
}

// ConstDiv returns k / a.
func ConstDiv(k float64, a operand) Value {
	return MulConst(Inv(a), k)
}

// Square returns a * a, computed directly (not via Mul) so the single
// fanin edge carries the combined partial 2a and second-order local
// partial 2, instead of two identical edges to the same vertex.
func Square(a operand) Value {
	g := a.gr()
	av := a.val()
	id := g.CreateUnary(a.vid(), 2*av, 2)
	return Value{v: av * av, id: id, g: g}
}

// Sqrt returns sqrt(a).
func Sqrt(a operand) Value {
	g := a.gr()
	av := a.val()
	sv := math.Sqrt(av)
	invS := 1 / sv
	id := g.CreateUnary(a.vid(), 0.5*invS, -0.25*invS/av)
	return Value{v: sv, id: id, g: g}
}

// Pow returns a^k for a constant exponent k.
func Pow(a operand, k float64) Value {
	g := a.gr()
	av := a.val()
	p0 := math.Pow(av, k)
	p1 := p0 / av
	id := g.CreateUnary(a.vid(), k*p1, k*(k-1)*p1/av)
	return Value{v: p0, id: id, g: g}
}

// Exp returns e^a.
func Exp(a operand) Value {
	g := a.gr()
	ev := math.Exp(a.val())
	id := g.CreateUnary(a.vid(), ev, ev)
	return Value{v: ev, id: id, g: g}
}

// Log returns the natural log of a.
func Log(a operand) Value {
	g := a.gr()
	av := a.val()
	inv := 1 / av
	id := g.CreateUnary(a.vid(), inv, -inv*inv)
	return Value{v: math.Log(av), id: id, g: g}
}

// Sin returns sin(a).
func Sin(a operand) Value {
	g := a.gr()
	av := a.val()
	sv := math.Sin(av)
	id := g.CreateUnary(a.vid(), math.Cos(av), -sv)
	return Value{v: sv, id: id, g: g}
}

// Cos returns cos(a).
func Cos(a operand) Value {
	g := a.gr()
	av := a.val()
	cv := math.Cos(av)
	id := g.CreateUnary(a.vid(), -math.Sin(av), -cv)
	return Value{v: cv, id: id, g: g}
}

// Tan returns tan(a).
func Tan(a operand) Value {
	g := a.gr()
	av := a.val()
	tv := math.Tan(av)
	sec := 1 / math.Cos(av)
	sec2 := sec * sec
	id := g.CreateUnary(a.vid(), sec2, 2*tv*sec2)
	return Value{v: tv, id: id, g: g}
}

// Asin returns asin(a).
func Asin(a operand) Value {
	g := a.gr()
	av := a.val()
	tmp := 1 / (1 - av*av)
	sq := math.Sqrt(tmp)
	id := g.CreateUnary(a.vid(), sq, av*sq*tmp)
	return Value{v: math.Asin(av), id: id, g: g}
}

// Acos returns acos(a).
func Acos(a operand) Value {
	g := a.gr()
	av := a.val()
	tmp := 1 / (1 - av*av)
	negSq := -math.Sqrt(tmp)
	id := g.CreateUnary(a.vid(), negSq, av*negSq*tmp)
	return Value{v: math.Acos(av), id: id, g: g}
}
