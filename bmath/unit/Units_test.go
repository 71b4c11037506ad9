package unit_test

import (
	"math"
	"testing"

	"github.com/kluiverjh/BalTrj/bmath/unit"
)

func angularBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Angular
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateAngular(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func velocityBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Velocity
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateVelocity(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func distanceBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Distance
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateDistance(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func TestAngular(t *testing.T) {
	angularBackAndForth(t, 3, unit.AngularRadian)
	angularBackAndForth(t, 3, unit.AngularDegree)
	angularBackAndForth(t, 3, unit.AngularMRad)

	var u = unit.MustCreateAngular(90, unit.AngularDegree)
	if math.Abs(u.In(unit.AngularRadian)-math.Pi/2) > 1e-7 {
		t.Error("Degree to radian conversion failed")
	}

	u = unit.MustCreateAngular(1, unit.AngularDegree)
	if u.String() != "1.00°" {
		t.Errorf("String conversion failed: %s", u.String())
	}

	if _, err := unit.CreateAngular(1, 200); err == nil {
		t.Error("Unsupported unit accepted")
	}
}

func TestVelocity(t *testing.T) {
	velocityBackAndForth(t, 3, unit.VelocityMPS)
	velocityBackAndForth(t, 3, unit.VelocityKMH)
	velocityBackAndForth(t, 3, unit.VelocityFPS)
	velocityBackAndForth(t, 3, unit.VelocityMPH)

	var u = unit.MustCreateVelocity(10, unit.VelocityMPS)
	if math.Abs(u.In(unit.VelocityKMH)-36) > 1e-7 {
		t.Error("MPS to KMH conversion failed")
	}
	if u.String() != "10.0m/s" {
		t.Errorf("String conversion failed: %s", u.String())
	}
}

func TestDistance(t *testing.T) {
	distanceBackAndForth(t, 3, unit.DistanceMeter)
	distanceBackAndForth(t, 3, unit.DistanceKilometer)
	distanceBackAndForth(t, 3, unit.DistanceFoot)
	distanceBackAndForth(t, 3, unit.DistanceYard)

	var u = unit.MustCreateDistance(1500, unit.DistanceMeter)
	if math.Abs(u.In(unit.DistanceKilometer)-1.5) > 1e-7 {
		t.Error("Meter to kilometer conversion failed")
	}

	u = unit.MustCreateDistance(1, unit.DistanceYard)
	if math.Abs(u.In(unit.DistanceFoot)-3) > 1e-7 {
		t.Error("Yard to foot conversion failed")
	}
}
