//The package fits quadratic polynomials through 3-point neighborhoods,
//the building block for sub-grid event refinement
package interp

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//ErrDegenerate is returned when the interpolation points do not define
//a unique quadratic (coincident abscissas)
var ErrDegenerate = errors.New("interp: degenerate interpolation points")

//ErrNoExtremum is returned when the fitted polynomial is not curved and
//therefore has no extremum
var ErrNoExtremum = errors.New("interp: polynomial has no extremum")

//Quadratic is a degree-2 polynomial a*x² + b*x + c
type Quadratic struct {
	a, b, c float64
}

//FitQuadratic fits the unique quadratic passing through the 3 points
//(x[i], y[i]). The abscissas must be pairwise distinct; otherwise the
//Vandermonde system is singular and ErrDegenerate is returned.
func FitQuadratic(x, y [3]float64) (Quadratic, error) {
	if x[0] == x[1] || x[0] == x[2] || x[1] == x[2] {
		return Quadratic{}, ErrDegenerate
	}

	var vandermonde = mat.NewDense(3, 3, []float64{
		x[0] * x[0], x[0], 1,
		x[1] * x[1], x[1], 1,
		x[2] * x[2], x[2], 1,
	})
	var ordinates = mat.NewVecDense(3, []float64{y[0], y[1], y[2]})

	//a solver failure, including an ill-conditioning report, means the
	//abscissas are too close to define a usable quadratic
	var coefficients mat.VecDense
	if err := coefficients.SolveVec(vandermonde, ordinates); err != nil {
		return Quadratic{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	return Quadratic{
		a: coefficients.AtVec(0),
		b: coefficients.AtVec(1),
		c: coefficients.AtVec(2),
	}, nil
}

//Coefficients returns the polynomial coefficients, highest degree first
func (v Quadratic) Coefficients() (a, b, c float64) {
	return v.a, v.b, v.c
}

//Evaluate computes the polynomial value at x
func (v Quadratic) Evaluate(x float64) float64 {
	return (v.a*x+v.b)*x + v.c
}

//Extremum returns the abscissa at which the polynomial derivative is
//zero, i.e. -b/(2a). A flat polynomial (a = 0) has no extremum.
func (v Quadratic) Extremum() (float64, error) {
	if v.a == 0 {
		return 0, ErrNoExtremum
	}
	return -v.b / (2 * v.a), nil
}
