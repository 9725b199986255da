package kinematics

import (
	"fmt"
	"math"
)

// Geometry holds the fixed physical dimensions of the robot. It is built once
// from configuration and never mutated during a run.
type Geometry struct {
	WheelDiameter float64 // both wheels share one diameter
	TrackWidth    float64 // distance between the two wheel contact points
	StepSize      float64 // max linear distance the driven wheel covers per tick
	AxleOffset    float64 // signed distance from axle midpoint to the reference point, along heading
}

// HalfTrack is the distance from the axle midpoint to either wheel.
func (g Geometry) HalfTrack() float64 { return g.TrackWidth / 2 }

// WheelCircumference is the linear distance covered by one full wheel turn.
func (g Geometry) WheelCircumference() float64 { return math.Pi * g.WheelDiameter }

func (g Geometry) Validate() error {
	if g.WheelDiameter <= 0 {
		return fmt.Errorf("wheel diameter must be positive, got %g", g.WheelDiameter)
	}
	if g.TrackWidth <= 0 {
		return fmt.Errorf("track width must be positive, got %g", g.TrackWidth)
	}
	if g.StepSize <= 0 {
		return fmt.Errorf("step size must be positive, got %g", g.StepSize)
	}
	return nil
}
