package baltrj

import (
	"fmt"

	"github.com/kluiverjh/BalTrj/bmath/unit"
)

//FlightParameters struct keeps the launch parameters of the flight to be simulated
type FlightParameters struct {
	launchSpeed      unit.Velocity
	launchAngle      unit.Angular
	terminalVelocity unit.Velocity
	duration         float64
	interval         float64
}

//CreateFlightParameters creates the parameters of the flight.
//
//launchSpeed and terminalVelocity are set in m/s, launchAngle in degrees
//above the horizon, duration and interval in seconds. The sampling
//interval must be shorter than the total duration.
func CreateFlightParameters(launchSpeed, launchAngle, terminalVelocity, duration, interval float64) (FlightParameters, error) {
	if launchSpeed <= 0 {
		return FlightParameters{}, fmt.Errorf("%w: launch speed must be positive, got %g", ErrInvalidParameters, launchSpeed)
	}
	if terminalVelocity <= 0 {
		return FlightParameters{}, fmt.Errorf("%w: terminal velocity must be positive, got %g", ErrInvalidParameters, terminalVelocity)
	}
	if duration <= 0 {
		return FlightParameters{}, fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidParameters, duration)
	}
	if interval <= 0 || interval >= duration {
		return FlightParameters{}, fmt.Errorf("%w: interval must be positive and shorter than the duration, got %g", ErrInvalidParameters, interval)
	}
	return FlightParameters{
		launchSpeed:      unit.MustCreateVelocity(launchSpeed, unit.VelocityMPS),
		launchAngle:      unit.MustCreateAngular(launchAngle, unit.AngularDegree),
		terminalVelocity: unit.MustCreateVelocity(terminalVelocity, unit.VelocityMPS),
		duration:         duration,
		interval:         interval,
	}, nil
}

//LaunchSpeed returns the speed of the projectile at launch
func (v FlightParameters) LaunchSpeed() unit.Velocity {
	return v.launchSpeed
}

//LaunchAngle returns the launch angle above the horizon
func (v FlightParameters) LaunchAngle() unit.Angular {
	return v.launchAngle
}

//TerminalVelocity returns the terminal velocity that calibrates the drag force
func (v FlightParameters) TerminalVelocity() unit.Velocity {
	return v.terminalVelocity
}

//Duration returns the total simulated duration in seconds
func (v FlightParameters) Duration() float64 {
	return v.duration
}

//Interval returns the sampling interval in seconds
func (v FlightParameters) Interval() float64 {
	return v.interval
}
