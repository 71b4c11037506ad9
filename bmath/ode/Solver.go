//The package provides an adaptive step-size solver for systems of
//ordinary differential equations with dense output on a caller-supplied
//time grid
package ode

import (
	"errors"
	"fmt"
	"math"
)

//ErrConvergence is returned when the solver cannot satisfy the local
//error control at some step
var ErrConvergence = errors.New("ode: solver could not satisfy error control")

const cSafetyFactor float64 = 0.9
const cMinStepFactor float64 = 0.2
const cMaxStepFactor float64 = 5.0
const cMaxStepsPerPoint int = 100000

const cDefaultRelativeTolerance float64 = 1e-8
const cDefaultAbsoluteTolerance float64 = 1e-10

//System is the right hand side of the ODE system y' = f(t, y).
//The function must return one derivative per state component.
type System func(t float64, y []float64) []float64

//Solver integrates ODE systems with the Dormand-Prince 5(4) embedded
//Runge-Kutta pair. The step size is adapted so that the estimated local
//truncation error stays within the configured tolerances.
type Solver struct {
	relativeTolerance float64
	absoluteTolerance float64
}

//CreateSolver creates a solver with the default tolerances
func CreateSolver() Solver {
	return Solver{
		relativeTolerance: cDefaultRelativeTolerance,
		absoluteTolerance: cDefaultAbsoluteTolerance,
	}
}

//CreateSolverWithTolerance creates a solver with the tolerances specified.
//
//relative scales with the magnitude of the state components, absolute
//bounds the error for components close to zero.
func CreateSolverWithTolerance(relative, absolute float64) Solver {
	return Solver{relativeTolerance: relative, absoluteTolerance: absolute}
}

//RelativeTolerance returns the relative local error tolerance
func (v Solver) RelativeTolerance() float64 {
	return v.relativeTolerance
}

//AbsoluteTolerance returns the absolute local error tolerance
func (v Solver) AbsoluteTolerance() float64 {
	return v.absoluteTolerance
}

//Integrate solves the system starting from the initial state given at
//times[0] and returns one state per requested time point. The time
//points must be strictly increasing. Internally the solver takes as
//many adaptive steps as the error control demands; only the states at
//the requested times are returned.
func (v Solver) Integrate(f System, initial []float64, times []float64) ([][]float64, error) {
	if len(times) < 2 {
		return nil, fmt.Errorf("ode: at least two time points are required, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		if times[i] <= times[i-1] {
			return nil, fmt.Errorf("ode: time points must be strictly increasing at index %d", i)
		}
	}

	var states = make([][]float64, len(times))
	states[0] = cloneState(initial)

	var y = cloneState(initial)
	var h = (times[1] - times[0]) / 16

	for i := 1; i < len(times); i++ {
		var t = times[i-1]
		var target = times[i]
		var minStep = 1e-14 * math.Max(1, math.Abs(target))
		var steps int

		for target-t > minStep {
			steps++
			if steps > cMaxStepsPerPoint {
				return nil, fmt.Errorf("%w: step limit reached at t=%g", ErrConvergence, t)
			}
			if h > target-t {
				h = target - t
			}
			if h < minStep {
				return nil, fmt.Errorf("%w: step size underflow at t=%g", ErrConvergence, t)
			}

			next, errNorm := v.step(f, t, y, h)
			if math.IsNaN(errNorm) || math.IsInf(errNorm, 0) {
				h = h / 2
				continue
			}
			if errNorm <= 1 {
				t = t + h
				y = next
			}
			h = h * stepFactor(errNorm)
		}
		states[i] = cloneState(y)
	}
	return states, nil
}

//step advances the state by one Dormand-Prince step of size h and
//returns the candidate state together with the scaled error norm
func (v Solver) step(f System, t float64, y []float64, h float64) ([]float64, float64) {
	k1 := f(t, y)
	k2 := f(t+h/5, stage(y, h, []float64{1.0 / 5}, k1))
	k3 := f(t+3*h/10, stage(y, h, []float64{3.0 / 40, 9.0 / 40}, k1, k2))
	k4 := f(t+4*h/5, stage(y, h, []float64{44.0 / 45, -56.0 / 15, 32.0 / 9}, k1, k2, k3))
	k5 := f(t+8*h/9, stage(y, h, []float64{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729}, k1, k2, k3, k4))
	k6 := f(t+h, stage(y, h, []float64{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656}, k1, k2, k3, k4, k5))

	next := stage(y, h, []float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84}, k1, k2, k3, k4, k5, k6)
	k7 := f(t+h, next)

	//difference between the 5th and the embedded 4th order solutions
	var errorSum float64
	for j := range y {
		e := h * (71.0/57600*k1[j] - 71.0/16695*k3[j] + 71.0/1920*k4[j] -
			17253.0/339200*k5[j] + 22.0/525*k6[j] - 1.0/40*k7[j])
		scale := v.absoluteTolerance + v.relativeTolerance*math.Max(math.Abs(y[j]), math.Abs(next[j]))
		errorSum += (e / scale) * (e / scale)
	}
	return next, math.Sqrt(errorSum / float64(len(y)))
}

func stage(y []float64, h float64, coefficients []float64, ks ...[]float64) []float64 {
	var result = cloneState(y)
	for s, k := range ks {
		for j := range result {
			result[j] += h * coefficients[s] * k[j]
		}
	}
	return result
}

func stepFactor(errNorm float64) float64 {
	if errNorm == 0 {
		return cMaxStepFactor
	}
	var factor = cSafetyFactor * math.Pow(errNorm, -0.2)
	if factor < cMinStepFactor {
		return cMinStepFactor
	}
	if factor > cMaxStepFactor {
		return cMaxStepFactor
	}
	return factor
}

func cloneState(y []float64) []float64 {
	var c = make([]float64, len(y))
	copy(c, y)
	return c
}
