package baltrj

import (
	"fmt"
	"math"

	"github.com/kluiverjh/BalTrj/bmath/ode"
	"github.com/kluiverjh/BalTrj/bmath/unit"
)

//FlightSimulator calculates the sampled trajectory and the refined apex
//and impact events for the launch parameters specified
type FlightSimulator struct {
	solver ode.Solver
}

//CreateFlightSimulator creates a simulator with the default solver tolerances
func CreateFlightSimulator() FlightSimulator {
	return FlightSimulator{solver: ode.CreateSolver()}
}

//CreateFlightSimulatorWithSolver creates a simulator using the solver specified
func CreateFlightSimulatorWithSolver(solver ode.Solver) FlightSimulator {
	return FlightSimulator{solver: solver}
}

//Solver returns the ODE solver used by the simulator
func (v FlightSimulator) Solver() ode.Solver {
	return v.solver
}

//Flight keeps the complete result of one simulation run
type Flight struct {
	path   FlightPath
	apex   EventData
	impact EventData
}

//Path returns the sampled flight path
func (v Flight) Path() FlightPath {
	return v.path
}

//Samples returns the retained sample sequence of the flight
func (v Flight) Samples() []Sample {
	return v.path.Samples()
}

//Apex returns the refined point of maximum altitude
func (v Flight) Apex() EventData {
	return v.apex
}

//Impact returns the refined point of return to ground level
func (v Flight) Impact() EventData {
	return v.impact
}

//Simulate integrates the equation of motion over the sampling grid,
//truncates the trajectory at the ground crossing and refines the apex
//and impact events. The whole run is deterministic: identical
//parameters produce identical results.
func (v FlightSimulator) Simulate(parameters FlightParameters) (Flight, error) {
	var launchSpeed = parameters.LaunchSpeed().In(unit.VelocityMPS)
	var launchAngle = parameters.LaunchAngle().In(unit.AngularRadian)
	var equation = CreateEquationOfMotion(parameters.TerminalVelocity().In(unit.VelocityMPS))

	var initial = []float64{
		launchSpeed * math.Cos(launchAngle),
		launchSpeed * math.Sin(launchAngle),
		0,
		0,
	}
	var times = timeGrid(parameters.Duration(), parameters.Interval())

	states, err := v.solver.Integrate(equation.System(), initial, times)
	if err != nil {
		return Flight{}, fmt.Errorf("%w: %v", ErrIntegrationFailure, err)
	}

	path, err := CreateFlightPath(times, states)
	if err != nil {
		return Flight{}, err
	}

	apex, err := RefineApex(path)
	if err != nil {
		return Flight{}, err
	}
	impact, err := RefineImpact(path)
	if err != nil {
		return Flight{}, err
	}

	return Flight{path: path, apex: apex, impact: impact}, nil
}
