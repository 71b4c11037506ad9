//The package provides simple operations on 2d vectors
//required for planar trajectory calculation
package vector

import (
	"fmt"
	"math"
)

//2D vector structure
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
}

//Converts a vector into a string
func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f]", v.X, v.Y)
}

//Creates a vector from its coordinates
func Create(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

//Create a copy of the vector
func (v Vector) Copy() Vector {
	return Vector{X: v.X, Y: v.Y}
}

//Return a product of two vectors
//
//The product of two vectors is a sum of products of each coordinate
func (v Vector) MultiplyByVector(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y
}

//Returns a magnitude of the vector
//
//The magnitude of the vector is the length of a line that starts in point (0,0)
//and ends in the point set by the vector coordinates
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

//Multiplies the vector by the constant
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y)
}

//Adds two vectors
func (a Vector) Add(b Vector) Vector {
	return Create(a.X+b.X, a.Y+b.Y)
}

//Subtracts one vector from another
func (a Vector) Subtract(b Vector) Vector {
	return Create(a.X-b.X, a.Y-b.Y)
}

//Returns a vector which is simmetrical to this vector vs (0,0) point
func (v Vector) Negate() Vector {
	return Create(-v.X, -v.Y)
}

//Returns a vector of magnitude one which is collinear to this vector
func (v Vector) Normalize() Vector {
	var magnitude float64

	magnitude = v.Magnitude()

	if math.Abs(magnitude) < 1e-10 {
		return v.Copy()
	}
	return v.MultiplyByConst(1.0 / magnitude)
}
