// Package zhad is a reverse-mode automatic-differentiation engine that
// computes first and second partial derivatives (gradient and Hessian)
// of a scalar expression built from Go arithmetic and math-function
// calls over Value operands.
//
// Overview:
//
//   - Declare the independent variables a DepVar depends on with
//     DependOn. This fixes how many leaves the computation graph has
//     and hands each IndepVar a stable id.
//   - Mutate the IndepVars' numeric values (Set), build an expression
//     with the package-level functions (Add, Mul, Sin, Pow, ...), and
//     Assign the resulting Value to the DepVar. Assign records the
//     root and runs a single reverse sweep that computes every first-
//     and second-order partial against the bound independent variables
//     in one pass (the edge-pushing algorithm of Gower & Mello, 2010).
//   - Read results with DepVar.Derivative1 / DepVar.Derivative2.
//   - Re-evaluate: mutate the IndepVars again, build a new expression,
//     Assign again. As long as the new expression creates no more
//     intermediate vertices than the deepest prior evaluation, no
//     allocation occurs.
//
// Example:
//
//	var y zhad.DepVar
//	var x0, x1 zhad.IndepVar
//	y.DependOn(&x0, &x1)
//	x0.Set(1)
//	x1.Set(2)
//	y.Assign(zhad.Mul(x0, x1))
//	y.Derivative1(x0) // == x1.Get() == 2
//	y.Derivative2(x0, x1) // == 1
//
// Error handling:
//
//   - The arithmetic and derivative-query API never returns an error:
//     this engine is a pure numeric transformer over user-controlled
//     inputs. Mixing Values built from two different
//     DependOn graphs is a programmer error and panics; Safe recovers
//     that specific panic into a sentinel error for call sites that
//     would rather not crash on it.
//   - Domain errors in elementary functions (log of a non-positive
//     number, asin/acos outside [-1,1]) propagate the host's floating
//     point behavior (NaN/Inf) exactly as math.Log/math.Asin do; no
//     panic, no error.
//
// Non-goals: derivatives beyond second order, a general sparse-Jacobian
// API (MixedWeight queries one entry at a time), matrix/tensor-valued
// operands, forward-mode AD, symbolic simplification, concurrent use of
// one DepVar's graph, and persistence of a graph across process
// lifetimes.
//
// See also: package arena, which stores the computation graph and runs
// the reverse sweep this package drives.
package zhad
