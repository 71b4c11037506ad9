package baltrj_test

import (
	"errors"
	"math"
	"testing"

	baltrj "github.com/kluiverjh/BalTrj"
	"github.com/kluiverjh/BalTrj/bmath/unit"
)

//state rows are (vx, vy, x, y)
func syntheticPath(t *testing.T, times []float64, states [][]float64) baltrj.FlightPath {
	path, err := baltrj.CreateFlightPath(times, states)
	if err != nil {
		t.Fatalf("path creation failed: %v", err)
	}
	return path
}

func TestPathScan(t *testing.T) {
	var times = []float64{0, 1, 2, 3, 4, 5, 6}
	var states = [][]float64{
		{4, 2.5, 0, 0},
		{4, 1.5, 4, 4},
		{4, 0.5, 8, 6},
		{4, -0.5, 12, 6.5},
		{4, -1.5, 16, 5},
		{4, -2.5, 20, 0},
		{4, -3.5, 24, -6},
	}

	path := syntheticPath(t, times, states)

	if len(path.Samples()) != 6 {
		t.Errorf("expected 6 retained samples, got %d", len(path.Samples()))
	}
	if path.ApexIndex() != 2 {
		t.Errorf("expected apex index 2, got %d", path.ApexIndex())
	}
	if path.ImpactAnchor().Altitude().In(unit.DistanceMeter) != -6 {
		t.Errorf("wrong impact anchor: %v", path.ImpactAnchor().Altitude())
	}
	//the last retained sample sits exactly at ground level and stays in
	if path.Samples()[5].Altitude().In(unit.DistanceMeter) != 0 {
		t.Error("sample at ground level was discarded")
	}
}

func TestPathNoApex(t *testing.T) {
	var times = []float64{0, 1, 2}
	var states = [][]float64{
		{4, 3, 0, 0},
		{4, 2, 4, 2},
		{4, 1, 8, 3},
	}
	_, err := baltrj.CreateFlightPath(times, states)
	if !errors.Is(err, baltrj.ErrNoApexFound) {
		t.Errorf("expected no-apex error, got %v", err)
	}
}

func TestPathNoImpact(t *testing.T) {
	var times = []float64{0, 1, 2}
	var states = [][]float64{
		{4, 1, 0, 0},
		{4, -1, 4, 2},
		{4, -2, 8, 1},
	}
	_, err := baltrj.CreateFlightPath(times, states)
	if !errors.Is(err, baltrj.ErrNoImpactFound) {
		t.Errorf("expected no-impact error, got %v", err)
	}
}

func TestPathLengthMismatch(t *testing.T) {
	_, err := baltrj.CreateFlightPath([]float64{0, 1}, [][]float64{{1, 1, 0, 0}})
	if !errors.Is(err, baltrj.ErrInvalidParameters) {
		t.Errorf("expected invalid-parameters error, got %v", err)
	}
}

func TestRefineApexDegenerate(t *testing.T) {
	//a purely vertical flight: identical horizontal positions across the bracket
	var times = []float64{0, 1, 2, 3}
	var states = [][]float64{
		{0, 2, 0, 0},
		{0, 1, 0, 3},
		{0, -1, 0, 2},
		{0, -2, 0, -1},
	}

	path := syntheticPath(t, times, states)
	_, err := baltrj.RefineApex(path)
	if !errors.Is(err, baltrj.ErrDegenerateFit) {
		t.Errorf("expected degenerate-fit error, got %v", err)
	}
}

func TestRefineImpactTooFewSamples(t *testing.T) {
	//only one sample is retained before the ground crossing
	var times = []float64{0, 1}
	var states = [][]float64{
		{1, 1, 0, 0.5},
		{1, -1, 1, -0.5},
	}

	path := syntheticPath(t, times, states)
	_, err := baltrj.RefineImpact(path)
	if !errors.Is(err, baltrj.ErrInsufficientSamples) {
		t.Errorf("expected insufficient-samples error, got %v", err)
	}
}

func TestRefineImpactQuadratic(t *testing.T) {
	//samples on x = t, y = 6 - (t-1)²; the quadratic through the last
	//bracket (y=5, x=2), (y=2, x=3), (y=-3, x=4) evaluates to exactly
	//3.5 at ground level, and the vy fit to exactly -5
	var times = []float64{0, 2, 3, 4}
	var states = [][]float64{
		{1, 2, 0, 5},
		{1, -2, 2, 5},
		{1, -4, 3, 2},
		{1, -6, 4, -3},
	}

	path := syntheticPath(t, times, states)
	impact, err := baltrj.RefineImpact(path)
	if err != nil {
		t.Fatalf("impact refinement failed: %v", err)
	}

	assertEqual(t, 3.5, impact.Time().TotalSeconds(), 1e-9, "Impact time")
	assertEqual(t, 3.5, impact.Distance().In(unit.DistanceMeter), 1e-9, "Impact distance")
	assertEqual(t, 0, impact.Altitude().In(unit.DistanceMeter), 1e-12, "Impact altitude")
	assertEqual(t, math.Sqrt(26), impact.Speed().In(unit.VelocityMPS), 1e-9, "Impact speed")
	assertEqual(t, math.Atan2(-5, 1)*180/math.Pi, impact.FlightAngle().In(unit.AngularDegree), 1e-9, "Impact angle")
}
