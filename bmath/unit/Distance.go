package unit

import "fmt"

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 10

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 11

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 12

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 13

//Distance structure keeps the distance value
type Distance struct {
	value        float64
	defaultUnits byte
}

func distanceToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceMeter:
		return value, nil
	case DistanceKilometer:
		return value * 1000, nil
	case DistanceFoot:
		return value * 0.3048, nil
	case DistanceYard:
		return value * 0.9144, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

func distanceFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceMeter:
		return value, nil
	case DistanceKilometer:
		return value / 1000, nil
	case DistanceFoot:
		return value / 0.3048, nil
	case DistanceYard:
		return value / 0.9144, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceToDefault(value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returning an error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
//
//The method returns an error in case the unit is not supported.
func (v Distance) Value(units byte) (float64, error) {
	return distanceFromDefault(v.value, units)
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	x, e := distanceFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

func (v Distance) String() string {
	x, e := distanceFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName string
	var accuracy int
	switch v.defaultUnits {
	case DistanceMeter:
		unitName = "m"
		accuracy = 2
	case DistanceKilometer:
		unitName = "km"
		accuracy = 3
	case DistanceFoot:
		unitName = "'"
		accuracy = 2
	case DistanceYard:
		unitName = "yd"
		accuracy = 3
	default:
		unitName = "?"
		accuracy = 6
	}
	format := fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
