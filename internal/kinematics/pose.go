package kinematics

import "math"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Pose is the robot's reference-point position and orientation. Heading is in
// radians with 0 facing up (+y) and positive angles turning clockwise. The
// axle midpoint and wheel positions are always derived from the reference
// point and heading, never stored separately.
type Pose struct {
	Point
	Heading float64
}

// Forward returns the unit vector along the current heading.
func (p Pose) Forward() (float64, float64) {
	return math.Sin(p.Heading), math.Cos(p.Heading)
}

// Axle returns the midpoint between the two wheels.
func (p Pose) Axle(g Geometry) Point {
	return Point{
		X: p.X - g.AxleOffset*math.Sin(p.Heading),
		Y: p.Y - g.AxleOffset*math.Cos(p.Heading),
	}
}

// LeftWheel returns the left wheel's contact point.
func (p Pose) LeftWheel(g Geometry) Point {
	a := p.Axle(g)
	return Point{
		X: a.X - g.HalfTrack()*math.Cos(p.Heading),
		Y: a.Y + g.HalfTrack()*math.Sin(p.Heading),
	}
}

// RightWheel returns the right wheel's contact point.
func (p Pose) RightWheel(g Geometry) Point {
	a := p.Axle(g)
	return Point{
		X: a.X + g.HalfTrack()*math.Cos(p.Heading),
		Y: a.Y - g.HalfTrack()*math.Sin(p.Heading),
	}
}
