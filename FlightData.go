package baltrj

import (
	"math"

	"github.com/kluiverjh/BalTrj/bmath/unit"
	"github.com/kluiverjh/BalTrj/bmath/vector"
)

//Timespan keeps the amount of time spent
type Timespan struct {
	time float64
}

//TotalSeconds returns the total number of seconds
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

//Seconds return the whole number of the seconds
func (v Timespan) Seconds() float64 {
	return math.Mod(math.Floor(v.time), 60)
}

//Minutes return the whole number of minutes
func (v Timespan) Minutes() float64 {
	return math.Mod(math.Floor(v.time/60), 60)
}

//Sample structure keeps one point of the sampled trajectory: the moment
//in time together with the state vector produced by the integrator.
type Sample struct {
	time     float64
	velocity vector.Vector
	position vector.Vector
}

//CreateSample creates one trajectory sample from its raw state values
//(velocity components in m/s, position components in meters)
func CreateSample(time, vx, vy, x, y float64) Sample {
	return Sample{
		time:     time,
		velocity: vector.Create(vx, vy),
		position: vector.Create(x, y),
	}
}

//Time returns the amount of time spent since the launch moment
func (v Sample) Time() Timespan {
	return Timespan{time: v.time}
}

//Speed returns the magnitude of the projectile velocity
func (v Sample) Speed() unit.Velocity {
	return unit.MustCreateVelocity(v.velocity.Magnitude(), unit.VelocityMPS)
}

//FlightAngle returns the angle between the velocity and the horizon.
//The positive value means the projectile is ascending and the negative
//value means that it is descending.
func (v Sample) FlightAngle() unit.Angular {
	return unit.MustCreateAngular(math.Atan2(v.velocity.Y, v.velocity.X), unit.AngularRadian)
}

//Altitude returns the height of the projectile above ground level
func (v Sample) Altitude() unit.Distance {
	return unit.MustCreateDistance(v.position.Y, unit.DistanceMeter)
}

//Distance returns the horizontal distance travelled from the launch point
func (v Sample) Distance() unit.Distance {
	return unit.MustCreateDistance(v.position.X, unit.DistanceMeter)
}

//EventData structure keeps the refined parameters of a physically
//significant trajectory event, the apex or the impact point. The values
//are interpolated between two adjacent samples and are therefore more
//precise than the sampling grid.
type EventData struct {
	time        float64
	speed       float64
	flightAngle float64
	altitude    float64
	distance    float64
}

//Time returns the refined moment of the event
func (v EventData) Time() Timespan {
	return Timespan{time: v.time}
}

//Speed returns the refined projectile speed at the event
func (v EventData) Speed() unit.Velocity {
	return unit.MustCreateVelocity(v.speed, unit.VelocityMPS)
}

//FlightAngle returns the refined flight angle at the event.
//The apex angle is exactly zero by definition.
func (v EventData) FlightAngle() unit.Angular {
	return unit.MustCreateAngular(v.flightAngle, unit.AngularRadian)
}

//Altitude returns the refined altitude of the event.
//The impact altitude is exactly zero by definition.
func (v EventData) Altitude() unit.Distance {
	return unit.MustCreateDistance(v.altitude, unit.DistanceMeter)
}

//Distance returns the refined horizontal distance of the event
func (v EventData) Distance() unit.Distance {
	return unit.MustCreateDistance(v.distance, unit.DistanceMeter)
}
