package baltrj

import (
	"fmt"
	"math"
)

//FlightPath keeps the retained sample sequence of one simulated flight
//together with the event brackets located during the scan: the index of
//the sample interval containing the apex and the first below-ground
//sample serving as the impact interpolation anchor.
type FlightPath struct {
	samples      []Sample
	impactAnchor Sample
	apexIndex    int
}

//CreateFlightPath walks the integrator output in time order, records the
//first interval where vertical velocity changes sign (the apex bracket)
//and truncates the sequence at the first sample with negative altitude.
//The below-ground sample is excluded from the retained sequence but kept
//as the impact interpolation anchor.
func CreateFlightPath(times []float64, states [][]float64) (FlightPath, error) {
	if len(times) != len(states) {
		return FlightPath{}, fmt.Errorf("%w: %d time points for %d states", ErrInvalidParameters, len(times), len(states))
	}

	var samples = make([]Sample, len(states))
	for k, state := range states {
		samples[k] = CreateSample(times[k], state[0], state[1], state[2], state[3])
	}

	var apexIndex = -1
	var impactIndex = -1
	for k, sample := range samples {
		if apexIndex < 0 && k+1 < len(samples) && sample.velocity.Y*samples[k+1].velocity.Y < 0 {
			apexIndex = k
		}
		if sample.position.Y < 0 {
			impactIndex = k
			break
		}
	}

	//the apex necessarily precedes the impact, so its absence is the
	//first observable failure
	if apexIndex < 0 {
		return FlightPath{}, ErrNoApexFound
	}
	if impactIndex < 0 {
		return FlightPath{}, ErrNoImpactFound
	}
	return FlightPath{
		samples:      samples[:impactIndex],
		impactAnchor: samples[impactIndex],
		apexIndex:    apexIndex,
	}, nil
}

//Samples returns the retained sample sequence. Every retained sample has
//a non-negative altitude and the time values are strictly increasing.
func (v FlightPath) Samples() []Sample {
	return v.samples
}

//ApexIndex returns the index of the first sample after which the
//vertical velocity changes sign
func (v FlightPath) ApexIndex() int {
	return v.apexIndex
}

//ImpactAnchor returns the first below-ground sample. It is not part of
//the retained sequence and is used only to bracket the ground crossing.
func (v FlightPath) ImpactAnchor() Sample {
	return v.impactAnchor
}

func timeGrid(duration, interval float64) []float64 {
	var count = int(math.Floor(duration/interval)) + 1
	var times = make([]float64, count)
	for k := range times {
		times[k] = float64(k) * interval
	}
	return times
}
