package main

import (
	"errors"
	"fmt"
	"os"

	baltrj "github.com/kluiverjh/BalTrj"
	"github.com/kluiverjh/BalTrj/bmath/unit"
)

func main() {
	var cfg = loadConfig()

	parameters, err := baltrj.CreateFlightParameters(cfg.Speed, cfg.Angle, cfg.TerminalVelocity, cfg.Duration, cfg.Interval)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flight, err := baltrj.CreateFlightSimulator().Simulate(parameters)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, baltrj.ErrNoApexFound) || errors.Is(err, baltrj.ErrNoImpactFound) {
			fmt.Fprintln(os.Stderr, "hint: increase --duration to cover the full flight")
		}
		if errors.Is(err, baltrj.ErrInsufficientSamples) {
			fmt.Fprintln(os.Stderr, "hint: decrease --interval to sample the flight more densely")
		}
		os.Exit(1)
	}

	printReport(flight)

	if cfg.Plot != "" {
		if err := writePlot(flight, cfg.Plot); err != nil {
			fmt.Fprintf(os.Stderr, "plot: %v\n", err)
			os.Exit(1)
		}
	}
}

//printReport prints the sampled trajectory table followed by the
//refined event summary in the legacy fixed-width layout
func printReport(flight baltrj.Flight) {
	fmt.Println("  Time     Vel     Angle   Height Distance")
	fmt.Println("   sec     m/s      deg    meters   meters")
	for _, sample := range flight.Samples() {
		fmt.Printf("%6.1f %9.3f %7.2f%9.3f %8.3f\n",
			sample.Time().TotalSeconds(),
			sample.Speed().In(unit.VelocityMPS),
			sample.FlightAngle().In(unit.AngularDegree),
			sample.Altitude().In(unit.DistanceMeter),
			sample.Distance().In(unit.DistanceMeter))
	}

	fmt.Println()
	fmt.Println("  Time     Vel     Angle   Height Distance")
	printEvent(flight.Apex(), "Highest Point")
	printEvent(flight.Impact(), "Impact Point")
}

func printEvent(event baltrj.EventData, label string) {
	fmt.Printf("%7.2f %8.3f %7.2f%9.3f %8.3f %s\n",
		event.Time().TotalSeconds(),
		event.Speed().In(unit.VelocityMPS),
		event.FlightAngle().In(unit.AngularDegree),
		event.Altitude().In(unit.DistanceMeter),
		event.Distance().In(unit.DistanceMeter),
		label)
}
