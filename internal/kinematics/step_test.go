package kinematics

import (
	"math"
	"testing"
)

func testGeometry() Geometry {
	return Geometry{WheelDiameter: 20, TrackWidth: 70, StepSize: 0.5, AxleOffset: -40}
}

// runCommand integrates a single command to completion and returns the final
// pose and the number of steps taken.
func runCommand(p Pose, g Geometry, c Command) (Pose, int) {
	a := Active{Wheel: c.Wheel, Sign: c.Direction.Sign(), Remaining: c.TargetDistance(g)}
	steps := 0
	for a.Remaining > 0 {
		var consumed float64
		p, consumed = Step(p, g, a)
		a.Remaining -= consumed
		steps++
	}
	return p, steps
}

func TestStraightCommand(t *testing.T) {
	g := testGeometry()
	start := Pose{Point: Point{X: -30, Y: -20}, Heading: math.Pi / 6}

	final, steps := runCommand(start, g, Command{Forward, Both, 1})

	target := g.WheelCircumference() // one full turn, both wheels
	wantSteps := int(math.Ceil(target / g.StepSize))
	if steps != wantSteps {
		t.Errorf("expected %d steps, got %d", wantSteps, steps)
	}
	if steps != 126 {
		t.Errorf("expected 126 steps for this geometry, got %d", steps)
	}

	if final.Heading != start.Heading {
		t.Errorf("straight motion must preserve heading: got %g, want %g", final.Heading, start.Heading)
	}

	wantDX := target * math.Sin(start.Heading)
	wantDY := target * math.Cos(start.Heading)
	if math.Abs(final.X-start.X-wantDX) > 1e-6 {
		t.Errorf("expected x displacement %g, got %g", wantDX, final.X-start.X)
	}
	if math.Abs(final.Y-start.Y-wantDY) > 1e-6 {
		t.Errorf("expected y displacement %g, got %g", wantDY, final.Y-start.Y)
	}
}

func TestStraightBackward(t *testing.T) {
	g := testGeometry()
	start := Pose{Point: Point{X: 0, Y: 0}, Heading: 0}

	final, _ := runCommand(start, g, Command{Backward, Both, 1})

	wantDY := -g.WheelCircumference()
	if math.Abs(final.Y-wantDY) > 1e-6 {
		t.Errorf("expected y displacement %g, got %g", wantDY, final.Y)
	}
	if math.Abs(final.X) > 1e-9 {
		t.Errorf("expected no x displacement, got %g", final.X)
	}
}

func TestPivotStationaryWheelInvariant(t *testing.T) {
	g := testGeometry()
	p := Pose{Point: Point{X: -30, Y: -20}, Heading: math.Pi / 6}

	// Left wheel driven: the right wheel must never move.
	fixed := p.RightWheel(g)
	a := Active{Wheel: Left, Sign: 1, Remaining: Command{Forward, Left, 1}.TargetDistance(g)}
	for a.Remaining > 0 {
		var consumed float64
		p, consumed = Step(p, g, a)
		a.Remaining -= consumed

		w := p.RightWheel(g)
		if math.Abs(w.X-fixed.X) > 1e-9 || math.Abs(w.Y-fixed.Y) > 1e-9 {
			t.Fatalf("stationary wheel moved to (%g, %g), started at (%g, %g)", w.X, w.Y, fixed.X, fixed.Y)
		}
	}
}

func TestPivotDrivenWheelArcLength(t *testing.T) {
	g := testGeometry()
	p := Pose{Point: Point{X: 5, Y: 7}, Heading: 0.4}
	cmd := Command{Forward, Left, 1}
	target := cmd.TargetDistance(g)

	prev := p.LeftWheel(g)
	traveled := 0.0
	a := Active{Wheel: Left, Sign: 1, Remaining: target}
	for a.Remaining > 0 {
		var consumed float64
		p, consumed = Step(p, g, a)
		a.Remaining -= consumed

		w := p.LeftWheel(g)
		traveled += math.Hypot(w.X-prev.X, w.Y-prev.Y)
		prev = w
	}

	// Chord lengths slightly undershoot the arc, so allow a loose tolerance.
	if math.Abs(traveled-target) > 1e-2 {
		t.Errorf("driven wheel traveled %g, want %g", traveled, target)
	}
}

func TestPivotHeadingSigns(t *testing.T) {
	g := testGeometry()
	target := Command{Forward, Left, 1}.TargetDistance(g)
	turn := target / g.TrackWidth

	tests := []struct {
		name string
		cmd  Command
		want float64 // heading change
	}{
		{"left wheel forward turns clockwise", Command{Forward, Left, 1}, turn},
		{"right wheel forward turns counterclockwise", Command{Forward, Right, 1}, -turn},
		{"left wheel backward turns counterclockwise", Command{Backward, Left, 1}, -turn},
		{"right wheel backward turns clockwise", Command{Backward, Right, 1}, turn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := Pose{Point: Point{X: -30, Y: -20}, Heading: math.Pi / 6}
			final, _ := runCommand(start, g, tt.cmd)
			got := final.Heading - start.Heading
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("heading change %g, want %g", got, tt.want)
			}
		})
	}
}

func TestStepClampsToRemaining(t *testing.T) {
	g := testGeometry()
	p := Pose{Heading: 0}

	_, consumed := Step(p, g, Active{Wheel: Both, Sign: 1, Remaining: 0.2})
	if consumed != 0.2 {
		t.Errorf("expected final partial step of 0.2, got %g", consumed)
	}

	_, consumed = Step(p, g, Active{Wheel: Both, Sign: 1, Remaining: 3})
	if consumed != g.StepSize {
		t.Errorf("expected full step %g, got %g", g.StepSize, consumed)
	}
}

func TestCommandNeverOvershoots(t *testing.T) {
	g := testGeometry()
	p := Pose{}

	a := Active{Wheel: Both, Sign: 1, Remaining: Command{Forward, Both, 1}.TargetDistance(g)}
	for a.Remaining > 0 {
		var consumed float64
		p, consumed = Step(p, g, a)
		a.Remaining -= consumed
		if a.Remaining < 0 {
			t.Fatalf("remaining went negative: %g", a.Remaining)
		}
	}
	if a.Remaining != 0 {
		t.Errorf("expected remaining exactly zero, got %g", a.Remaining)
	}
}

func TestPivotAxleRelationHolds(t *testing.T) {
	g := testGeometry()
	p := Pose{Point: Point{X: 1, Y: 2}, Heading: 0.3}

	next, _ := Step(p, g, Active{Wheel: Right, Sign: 1, Remaining: 10})

	// The reference point must satisfy the axle-offset relation against the
	// new heading, not the old one.
	a := next.Axle(g)
	refX := a.X + g.AxleOffset*math.Sin(next.Heading)
	refY := a.Y + g.AxleOffset*math.Cos(next.Heading)
	if math.Abs(refX-next.X) > 1e-12 || math.Abs(refY-next.Y) > 1e-12 {
		t.Errorf("axle relation broken after pivot step")
	}
}
