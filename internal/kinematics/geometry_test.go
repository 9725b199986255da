package kinematics

import (
	"math"
	"testing"
)

func TestGeometryDerived(t *testing.T) {
	g := Geometry{WheelDiameter: 20, TrackWidth: 70, StepSize: 0.5, AxleOffset: -40}

	if got := g.HalfTrack(); got != 35 {
		t.Errorf("expected half track 35, got %g", got)
	}
	if got := g.WheelCircumference(); math.Abs(got-math.Pi*20) > 1e-12 {
		t.Errorf("expected circumference %g, got %g", math.Pi*20, got)
	}
}

func TestGeometryValidate(t *testing.T) {
	valid := Geometry{WheelDiameter: 20, TrackWidth: 70, StepSize: 0.5, AxleOffset: -40}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid geometry, got %v", err)
	}

	tests := []struct {
		name string
		g    Geometry
	}{
		{"zero wheel diameter", Geometry{WheelDiameter: 0, TrackWidth: 70, StepSize: 0.5}},
		{"negative wheel diameter", Geometry{WheelDiameter: -1, TrackWidth: 70, StepSize: 0.5}},
		{"zero track width", Geometry{WheelDiameter: 20, TrackWidth: 0, StepSize: 0.5}},
		{"zero step size", Geometry{WheelDiameter: 20, TrackWidth: 70, StepSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.g.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestCommandValidate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		wantErr bool
	}{
		{"valid forward both", Command{Forward, Both, 1}, false},
		{"valid backward left", Command{Backward, Left, 0.5}, false},
		{"zero rotations", Command{Forward, Right, 0}, false},
		{"unknown direction", Command{"sideways", Both, 1}, true},
		{"unknown wheel", Command{Forward, "middle", 1}, true},
		{"negative rotations", Command{Forward, Both, -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestDirectionSign(t *testing.T) {
	if Forward.Sign() != 1 {
		t.Error("forward should have sign +1")
	}
	if Backward.Sign() != -1 {
		t.Error("backward should have sign -1")
	}
}
