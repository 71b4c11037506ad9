package baltrj

import (
	"fmt"
	"math"

	"github.com/kluiverjh/BalTrj/bmath/interp"
)

//RefineApex locates the point of maximum altitude with sub-grid
//precision. Quadratics of altitude, time and horizontal velocity are
//fitted against horizontal position through the 3 samples around the
//apex bracket; the altitude fit is extremized and the other fits are
//evaluated at the resulting abscissa. Vertical velocity at the apex is
//exactly zero by definition, so the apex flight angle is exactly zero.
func RefineApex(path FlightPath) (EventData, error) {
	var m = path.apexIndex
	if m < 1 || m+1 >= len(path.samples) {
		return EventData{}, fmt.Errorf("%w: apex bracket needs retained samples %d..%d", ErrInsufficientSamples, m-1, m+1)
	}

	var positions, altitudes, times, velocities [3]float64
	for i, sample := range path.samples[m-1 : m+2] {
		positions[i] = sample.position.X
		altitudes[i] = sample.position.Y
		times[i] = sample.time
		velocities[i] = sample.velocity.X
	}

	altitudeFit, err := interp.FitQuadratic(positions, altitudes)
	if err != nil {
		return EventData{}, fmt.Errorf("%w: apex altitude fit: %v", ErrDegenerateFit, err)
	}
	apexDistance, err := altitudeFit.Extremum()
	if err != nil {
		return EventData{}, fmt.Errorf("%w: apex altitude fit: %v", ErrDegenerateFit, err)
	}
	var apexAltitude = altitudeFit.Evaluate(apexDistance)

	timeFit, err := interp.FitQuadratic(positions, times)
	if err != nil {
		return EventData{}, fmt.Errorf("%w: apex time fit: %v", ErrDegenerateFit, err)
	}
	velocityFit, err := interp.FitQuadratic(positions, velocities)
	if err != nil {
		return EventData{}, fmt.Errorf("%w: apex velocity fit: %v", ErrDegenerateFit, err)
	}

	return EventData{
		time:        timeFit.Evaluate(apexDistance),
		speed:       velocityFit.Evaluate(apexDistance),
		flightAngle: 0,
		altitude:    apexAltitude,
		distance:    apexDistance,
	}, nil
}

//RefineImpact locates the return to ground level with sub-grid
//precision. Quadratics of horizontal position, time and both velocity
//components are fitted against altitude through the last two retained
//samples and the below-ground anchor, then evaluated at altitude zero.
//The impact angle uses atan2 so that a purely vertical impact does not
//divide by zero.
func RefineImpact(path FlightPath) (EventData, error) {
	var n = len(path.samples)
	if n < 2 {
		return EventData{}, fmt.Errorf("%w: impact bracket needs 2 retained samples, got %d", ErrInsufficientSamples, n)
	}

	var bracket = [3]Sample{path.samples[n-2], path.samples[n-1], path.impactAnchor}
	var altitudes, positions, times, horizontal, vertical [3]float64
	for i, sample := range bracket {
		altitudes[i] = sample.position.Y
		positions[i] = sample.position.X
		times[i] = sample.time
		horizontal[i] = sample.velocity.X
		vertical[i] = sample.velocity.Y
	}

	var impactDistance, impactTime, impactVX, impactVY float64
	var fits = []struct {
		ordinates [3]float64
		result    *float64
		name      string
	}{
		{positions, &impactDistance, "distance"},
		{times, &impactTime, "time"},
		{horizontal, &impactVX, "horizontal velocity"},
		{vertical, &impactVY, "vertical velocity"},
	}
	for _, fit := range fits {
		quadratic, err := interp.FitQuadratic(altitudes, fit.ordinates)
		if err != nil {
			return EventData{}, fmt.Errorf("%w: impact %s fit: %v", ErrDegenerateFit, fit.name, err)
		}
		*fit.result = quadratic.Evaluate(0)
	}

	return EventData{
		time:        impactTime,
		speed:       math.Sqrt(impactVX*impactVX + impactVY*impactVY),
		flightAngle: math.Atan2(impactVY, impactVX),
		altitude:    0,
		distance:    impactDistance,
	}, nil
}
