package zhad_test

import (
	"math"
	"testing"

	"github.com/nzleskowsky/zhad-go"
	"github.com/stretchr/testify/require"
)

const tol = 1e-8

// TestScenario1_SumOfTerms: y = x0 + x0 + x1 + x2.
func TestScenario1_SumOfTerms(t *testing.T) {
	var y zhad.DepVar
	var x0, x1, x2 zhad.IndepVar
	y.DependOn(&x0, &x1, &x2)
	x0.Set(1)
	x1.Set(2)
	x2.Set(3)

	y.Assign(zhad.Add(zhad.Add(zhad.Add(x0, x0), x1), x2))

	require.InDelta(t, 7.0, y.Get(), tol)
	require.InDelta(t, 2.0, y.Derivative1(x0), tol)
	require.InDelta(t, 1.0, y.Derivative1(x1), tol)
	require.InDelta(t, 1.0, y.Derivative1(x2), tol)
	for _, pair := range [][2]zhad.IndepVar{{x0, x0}, {x0, x1}, {x0, x2}, {x1, x1}, {x1, x2}, {x2, x2}} {
		require.InDelta(t, 0.0, y.Derivative2(pair[0], pair[1]), tol)
	}
}

// TestScenario2_ProductOfSquaresAndLinear: y = x0*x0*x1*x1*x2.
//
// The first partial and diagonal Hessian entry for x0 are both 24: x0
// appears twice in the product (y = x0^2 * x1^2 * x2), so its partial
// carries a factor of 2 that's easy to undercount by hand.
func TestScenario2_ProductOfSquaresAndLinear(t *testing.T) {
	var y zhad.DepVar
	var x0, x1, x2 zhad.IndepVar
	y.DependOn(&x0, &x1, &x2)
	x0.Set(1)
	x1.Set(2)
	x2.Set(3)

	y.Assign(zhad.Mul(zhad.Mul(zhad.Square(x0), zhad.Square(x1)), x2))

	require.InDelta(t, 12.0, y.Get(), tol)
	require.InDelta(t, 24.0, y.Derivative1(x0), tol)
	require.InDelta(t, 12.0, y.Derivative1(x1), tol)
	require.InDelta(t, 4.0, y.Derivative1(x2), tol)
	require.InDelta(t, 24.0, y.Derivative2(x0, x0), tol)
	require.InDelta(t, 24.0, y.Derivative2(x0, x1), tol)
	require.InDelta(t, 8.0, y.Derivative2(x0, x2), tol)
	require.InDelta(t, 6.0, y.Derivative2(x1, x1), tol)
	require.InDelta(t, 4.0, y.Derivative2(x1, x2), tol)
	require.InDelta(t, 0.0, y.Derivative2(x2, x2), tol)
}

// TestScenario3_SquareOverProduct: y = (x0*x0)/(x1*x2).
func TestScenario3_SquareOverProduct(t *testing.T) {
	var y zhad.DepVar
	var x0, x1, x2 zhad.IndepVar
	y.DependOn(&x0, &x1, &x2)
	x0.Set(1)
	x1.Set(2)
	x2.Set(3)

	y.Assign(zhad.Div(zhad.Square(x0), zhad.Mul(x1, x2)))

	require.InDelta(t, 1.0/6.0, y.Get(), tol)
	require.InDelta(t, 1.0/3.0, y.Derivative1(x0), tol)
	require.InDelta(t, -1.0/12.0, y.Derivative1(x1), tol)
	require.InDelta(t, -1.0/18.0, y.Derivative1(x2), tol)
	require.InDelta(t, 1.0/3.0, y.Derivative2(x0, x0), tol)
	require.InDelta(t, -1.0/6.0, y.Derivative2(x0, x1), tol)
	require.InDelta(t, -1.0/9.0, y.Derivative2(x0, x2), tol)
	require.InDelta(t, 1.0/12.0, y.Derivative2(x1, x1), tol)
	require.InDelta(t, 1.0/36.0, y.Derivative2(x1, x2), tol)
	require.InDelta(t, 2.0/54.0, y.Derivative2(x2, x2), tol)
}

// TestScenario4_SqrtOfLinear: y = sqrt(x0*x1 + x2).
func TestScenario4_SqrtOfLinear(t *testing.T) {
	var y zhad.DepVar
	var x0, x1, x2 zhad.IndepVar
	y.DependOn(&x0, &x1, &x2)
	x0v, x1v, x2v := 1.0, 2.0, 3.0
	x0.Set(x0v)
	x1.Set(x1v)
	x2.Set(x2v)

	y.Assign(zhad.Sqrt(zhad.Add(zhad.Mul(x0, x1), x2)))

	s := math.Sqrt(x0v*x1v + x2v)
	s3 := 4 * s * s * s
	require.InDelta(t, s, y.Get(), tol)
	require.InDelta(t, x1v/(2*s), y.Derivative1(x0), tol)
	require.InDelta(t, x0v/(2*s), y.Derivative1(x1), tol)
	require.InDelta(t, 1/(2*s), y.Derivative1(x2), tol)
	require.InDelta(t, -x1v*x1v/s3, y.Derivative2(x0, x0), tol)
	require.InDelta(t, (x0v*x1v+2*x2v)/s3, y.Derivative2(x0, x1), tol)
	require.InDelta(t, -x1v/s3, y.Derivative2(x0, x2), tol)
	require.InDelta(t, -x0v*x0v/s3, y.Derivative2(x1, x1), tol)
	require.InDelta(t, -x0v/s3, y.Derivative2(x1, x2), tol)
	require.InDelta(t, -1/s3, y.Derivative2(x2, x2), tol)
}

// TestScenario5_PowOfSum: y = pow(x0+x1, 5.3).
func TestScenario5_PowOfSum(t *testing.T) {
	var y zhad.DepVar
	var x0, x1 zhad.IndepVar
	y.DependOn(&x0, &x1)
	x0.Set(1)
	x1.Set(2)

	y.Assign(zhad.Pow(zhad.Add(x0, x1), 5.3))

	require.InDelta(t, math.Pow(3, 5.3), y.Get(), tol)
	want1 := 5.3 * math.Pow(3, 4.3)
	require.InDelta(t, want1, y.Derivative1(x0), tol)
	require.InDelta(t, want1, y.Derivative1(x1), tol)
	want2 := 22.79 * math.Pow(3, 3.3)
	require.InDelta(t, want2, y.Derivative2(x0, x0), tol)
	require.InDelta(t, want2, y.Derivative2(x0, x1), tol)
	require.InDelta(t, want2, y.Derivative2(x1, x1), tol)
}

// TestScenario6_ProductOfSines: y = sin(x0)*sin(x1).
func TestScenario6_ProductOfSines(t *testing.T) {
	var y zhad.DepVar
	var x0, x1 zhad.IndepVar
	y.DependOn(&x0, &x1)
	x0.Set(1)
	x1.Set(2)

	y.Assign(zhad.Mul(zhad.Sin(x0), zhad.Sin(x1)))

	s0, c0 := math.Sin(1), math.Cos(1)
	s1, c1 := math.Sin(2), math.Cos(2)
	require.InDelta(t, s0*s1, y.Get(), tol)
	require.InDelta(t, c0*s1, y.Derivative1(x0), tol)
	require.InDelta(t, s0*c1, y.Derivative1(x1), tol)
	require.InDelta(t, -s0*s1, y.Derivative2(x0, x0), tol)
	require.InDelta(t, -s0*s1, y.Derivative2(x1, x1), tol)
	require.InDelta(t, c0*c1, y.Derivative2(x0, x1), tol)
}

// TestSchwarzSymmetry checks derivative2(x,y) == derivative2(y,x) across
// a handful of mixed expressions, independent of argument order.
func TestSchwarzSymmetry(t *testing.T) {
	var y zhad.DepVar
	var x0, x1, x2 zhad.IndepVar
	y.DependOn(&x0, &x1, &x2)
	x0.Set(0.7)
	x1.Set(1.3)
	x2.Set(-0.4)

	y.Assign(zhad.Add(zhad.Mul(zhad.Square(x0), x1), zhad.Div(x2, x1)))

	require.Equal(t, y.Derivative2(x0, x1), y.Derivative2(x1, x0))
	require.Equal(t, y.Derivative2(x1, x2), y.Derivative2(x2, x1))
	require.Equal(t, y.Derivative2(x0, x2), y.Derivative2(x2, x0))
}

// TestFiniteDifferenceGradient cross-checks Derivative1 against a
// centered finite difference for a multi-operator expression,
// complementing the literal scenarios above with a property-based
// check.
func TestFiniteDifferenceGradient(t *testing.T) {
	const h = 1e-4
	f := func(x0v, x1v, x2v float64) float64 {
		var y zhad.DepVar
		var x0, x1, x2 zhad.IndepVar
		y.DependOn(&x0, &x1, &x2)
		x0.Set(x0v)
		x1.Set(x1v)
		x2.Set(x2v)
		y.Assign(zhad.Sqrt(zhad.Add(zhad.Mul(zhad.Square(x0), x1), zhad.Square(x2))))
		return y.Get()
	}

	x0v, x1v, x2v := 1.3, 0.9, 2.1

	var y zhad.DepVar
	var x0, x1, x2 zhad.IndepVar
	y.DependOn(&x0, &x1, &x2)
	x0.Set(x0v)
	x1.Set(x1v)
	x2.Set(x2v)
	y.Assign(zhad.Sqrt(zhad.Add(zhad.Mul(zhad.Square(x0), x1), zhad.Square(x2))))

	fd0 := (f(x0v+h, x1v, x2v) - f(x0v-h, x1v, x2v)) / (2 * h)
	fd1 := (f(x0v, x1v+h, x2v) - f(x0v, x1v-h, x2v)) / (2 * h)
	fd2 := (f(x0v, x1v, x2v+h) - f(x0v, x1v, x2v-h)) / (2 * h)

	require.InDelta(t, fd0, y.Derivative1(x0), 1e-5)
	require.InDelta(t, fd1, y.Derivative1(x1), 1e-5)
	require.InDelta(t, fd2, y.Derivative1(x2), 1e-5)
}

// TestFiniteDifferenceHessian cross-checks Derivative2 against centered
// finite differences of the exact gradient: each Hessian column is the
// rate of change of one first partial, so differencing Derivative1 at
// x±h gives every entry of that column at once.
func TestFiniteDifferenceHessian(t *testing.T) {
	const h = 1e-4
	eval := func(vals [2]float64) (d1 [2]float64, d2 [2][2]float64) {
		var y zhad.DepVar
		var x0, x1 zhad.IndepVar
		y.DependOn(&x0, &x1)
		x0.Set(vals[0])
		x1.Set(vals[1])
		y.Assign(zhad.Add(zhad.Mul(zhad.Exp(x0), zhad.Sin(x1)), zhad.Mul(zhad.Square(x0), x1)))
		d1 = [2]float64{y.Derivative1(x0), y.Derivative1(x1)}
		d2 = [2][2]float64{
			{y.Derivative2(x0, x0), y.Derivative2(x0, x1)},
			{y.Derivative2(x1, x0), y.Derivative2(x1, x1)},
		}
		return d1, d2
	}

	at := [2]float64{0.8, 1.1}
	_, d2 := eval(at)

	for j := 0; j < 2; j++ {
		plus, minus := at, at
		plus[j] += h
		minus[j] -= h
		gPlus, _ := eval(plus)
		gMinus, _ := eval(minus)
		for i := 0; i < 2; i++ {
			fd := (gPlus[i] - gMinus[i]) / (2 * h)
			require.InDeltaf(t, fd, d2[i][j], 1e-5, "Hessian entry (%d,%d)", i, j)
		}
	}
}
