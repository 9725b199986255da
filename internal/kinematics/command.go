package kinematics

import "fmt"

// Direction selects forward or backward travel.
type Direction string

const (
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// Sign is +1 for forward travel and -1 for backward.
func (d Direction) Sign() float64 {
	if d == Backward {
		return -1
	}
	return 1
}

// Wheel selects which wheel(s) a command drives.
type Wheel string

const (
	Left  Wheel = "left"
	Right Wheel = "right"
	Both  Wheel = "both"
)

// Command is a single movement instruction: drive the selected wheel(s) in
// the given direction for a number of full wheel turns. Commands are
// immutable once enqueued.
type Command struct {
	Direction Direction
	Wheel     Wheel
	Rotations float64
}

// TargetDistance is the linear distance the driven wheel covers over the
// whole command.
func (c Command) TargetDistance(g Geometry) float64 {
	return c.Rotations * g.WheelCircumference()
}

func (c Command) Validate() error {
	switch c.Direction {
	case Forward, Backward:
	default:
		return fmt.Errorf("unknown direction %q", c.Direction)
	}
	switch c.Wheel {
	case Left, Right, Both:
	default:
		return fmt.Errorf("unknown wheel selector %q", c.Wheel)
	}
	if c.Rotations < 0 {
		return fmt.Errorf("rotations must not be negative, got %g", c.Rotations)
	}
	return nil
}
