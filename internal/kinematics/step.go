package kinematics

import "math"

// Active is the in-progress movement popped from the command queue: which
// wheel selector is driven, the signed direction, and how much of the target
// distance remains.
type Active struct {
	Wheel     Wheel
	Sign      float64 // +1 forward, -1 backward
	Remaining float64 // monotonically decreasing to zero
}

// Step advances the pose by one tick, consuming at most g.StepSize of the
// active command's remaining distance. It returns the new pose and the
// distance actually consumed, so a command is never overshot.
//
// With both wheels driven the robot translates along its heading. With a
// single wheel driven it pivots about the stationary wheel's contact point:
// the driven wheel sweeps an arc of radius TrackWidth, so an arc length of
// `step` rotates the robot by step/TrackWidth radians. Driving the left wheel
// forward turns the robot clockwise (heading increases), the right wheel
// counterclockwise.
func Step(p Pose, g Geometry, a Active) (Pose, float64) {
	step := math.Min(g.StepSize, a.Remaining)

	if a.Wheel == Both {
		fx, fy := p.Forward()
		p.X += fx * step * a.Sign
		p.Y += fy * step * a.Sign
		return p, step
	}

	theta := a.Sign * step / g.TrackWidth

	var pivot Point
	var delta float64
	if a.Wheel == Left {
		pivot = p.RightWheel(g)
		delta = theta
	} else {
		pivot = p.LeftWheel(g)
		delta = -theta
	}

	// Heading is clockwise-positive, so world offsets rotate clockwise by the
	// same angle the heading gains.
	axle := p.Axle(g)
	ox, oy := axle.X-pivot.X, axle.Y-pivot.Y
	cos, sin := math.Cos(delta), math.Sin(delta)
	axle = Point{
		X: pivot.X + ox*cos + oy*sin,
		Y: pivot.Y - ox*sin + oy*cos,
	}

	p.Heading += delta
	p.X = axle.X + g.AxleOffset*math.Sin(p.Heading)
	p.Y = axle.Y + g.AxleOffset*math.Cos(p.Heading)
	return p, step
}
