package ode_test

import (
	"errors"
	"math"
	"testing"

	"github.com/kluiverjh/BalTrj/bmath/ode"
)

func grid(from, to, step float64) []float64 {
	var count = int(math.Floor((to-from)/step)) + 1
	var times = make([]float64, count)
	for k := range times {
		times[k] = from + float64(k)*step
	}
	return times
}

func TestExponentialDecay(t *testing.T) {
	var decay ode.System = func(time float64, y []float64) []float64 {
		return []float64{-y[0]}
	}

	var times = grid(0, 2, 0.25)
	states, err := ode.CreateSolver().Integrate(decay, []float64{1}, times)
	if err != nil {
		t.Fatalf("integration failed: %v", err)
	}
	if len(states) != len(times) {
		t.Fatalf("expected %d states, got %d", len(times), len(states))
	}
	for i, state := range states {
		var exact = math.Exp(-times[i])
		if math.Abs(state[0]-exact) > 1e-6 {
			t.Errorf("t=%.2f: expected %.8f, got %.8f", times[i], exact, state[0])
		}
	}
}

func TestHarmonicOscillator(t *testing.T) {
	var oscillator ode.System = func(time float64, y []float64) []float64 {
		return []float64{y[1], -y[0]}
	}

	var times = grid(0, 6, 0.5)
	states, err := ode.CreateSolver().Integrate(oscillator, []float64{0, 1}, times)
	if err != nil {
		t.Fatalf("integration failed: %v", err)
	}
	for i, state := range states {
		if math.Abs(state[0]-math.Sin(times[i])) > 1e-6 {
			t.Errorf("t=%.2f: expected %.8f, got %.8f", times[i], math.Sin(times[i]), state[0])
		}
	}
}

func TestGridValidation(t *testing.T) {
	var flat ode.System = func(time float64, y []float64) []float64 {
		return []float64{0}
	}

	if _, err := ode.CreateSolver().Integrate(flat, []float64{1}, []float64{0}); err == nil {
		t.Error("single time point accepted")
	}
	if _, err := ode.CreateSolver().Integrate(flat, []float64{1}, []float64{0, 1, 1}); err == nil {
		t.Error("non-increasing time points accepted")
	}
}

func TestNaNPropagation(t *testing.T) {
	var broken ode.System = func(time float64, y []float64) []float64 {
		return []float64{math.NaN()}
	}

	_, err := ode.CreateSolver().Integrate(broken, []float64{1}, []float64{0, 1})
	if !errors.Is(err, ode.ErrConvergence) {
		t.Errorf("expected convergence error, got %v", err)
	}
}

func TestTolerances(t *testing.T) {
	var solver = ode.CreateSolverWithTolerance(1e-6, 1e-9)
	if solver.RelativeTolerance() != 1e-6 || solver.AbsoluteTolerance() != 1e-9 {
		t.Error("tolerance configuration failed")
	}
}
