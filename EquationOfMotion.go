package baltrj

import (
	"github.com/kluiverjh/BalTrj/bmath/ode"
	"github.com/kluiverjh/BalTrj/bmath/vector"
)

//cGravity is the standard acceleration of gravity in m/s²
const cGravity float64 = 9.80665

//EquationOfMotion describes the planar motion of a projectile subject to
//gravity and an atmospheric drag force proportional to the square of the
//speed and directed exactly against the velocity.
type EquationOfMotion struct {
	gravity         vector.Vector
	dragCoefficient float64
}

//CreateEquationOfMotion creates the equation of motion for a projectile
//with the terminal velocity specified (in m/s). The drag coefficient is
//derived as g/tv² so that drag balances gravity at terminal velocity.
func CreateEquationOfMotion(terminalVelocity float64) EquationOfMotion {
	return EquationOfMotion{
		gravity:         vector.Create(0, -cGravity),
		dragCoefficient: cGravity / (terminalVelocity * terminalVelocity),
	}
}

//DragCoefficient returns the derived drag coefficient
func (v EquationOfMotion) DragCoefficient() float64 {
	return v.dragCoefficient
}

//System returns the ODE right hand side over the state vector
//(vx, vy, x, y): the acceleration components followed by the velocity
//components that feed the position integration.
//
//The drag term is undefined at zero speed; the caller must guarantee a
//strictly positive launch speed.
func (v EquationOfMotion) System() ode.System {
	return func(t float64, state []float64) []float64 {
		var velocity = vector.Create(state[0], state[1])
		var speed = velocity.Magnitude()
		var unitVelocity = velocity.MultiplyByConst(1 / speed)
		var drag = unitVelocity.MultiplyByConst(-v.dragCoefficient * speed * speed)
		var acceleration = v.gravity.Add(drag)
		return []float64{acceleration.X, acceleration.Y, velocity.X, velocity.Y}
	}
}
