package main

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	baltrj "github.com/kluiverjh/BalTrj"
	"github.com/kluiverjh/BalTrj/bmath/unit"
)

//writePlot renders altitude against horizontal distance with the apex
//and impact points marked
func writePlot(flight baltrj.Flight, path string) error {
	var p = plot.New()
	p.Title.Text = "Ballistic trajectory"
	p.X.Label.Text = "Distance (m)"
	p.Y.Label.Text = "Height (m)"
	p.Add(plotter.NewGrid())

	var points = make(plotter.XYs, len(flight.Samples()))
	for i, sample := range flight.Samples() {
		points[i].X = sample.Distance().In(unit.DistanceMeter)
		points[i].Y = sample.Altitude().In(unit.DistanceMeter)
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	p.Add(line)

	var events = plotter.XYs{
		{X: flight.Apex().Distance().In(unit.DistanceMeter), Y: flight.Apex().Altitude().In(unit.DistanceMeter)},
		{X: flight.Impact().Distance().In(unit.DistanceMeter), Y: flight.Impact().Altitude().In(unit.DistanceMeter)},
	}
	marks, err := plotter.NewScatter(events)
	if err != nil {
		return err
	}
	p.Add(marks)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
