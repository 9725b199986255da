package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mwhitten/diffdrive/internal/kinematics"
)

const (
	DefaultWheelDiameter = 20.0
	DefaultTrackWidth    = 70.0
	DefaultStepSize      = 0.5
	DefaultAxleOffset    = -40.0
	DefaultZoom          = 0.8
	DefaultFPS           = 60
)

// Config describes one simulation run: robot geometry, initial pose, the
// movement program and display options. It is loaded once before the
// simulation starts and is immutable for the run.
type Config struct {
	Robot   RobotConfig      `yaml:"robot"`
	Initial InitialConfig    `yaml:"initial"`
	Program []MovementConfig `yaml:"program"`
	Display DisplayConfig    `yaml:"display"`
	Zoom    float64          `yaml:"zoom"`
	FPS     int              `yaml:"fps"`
}

type RobotConfig struct {
	WheelDiameter float64 `yaml:"wheel_diameter"`
	TrackWidth    float64 `yaml:"track_width"`
	StepSize      float64 `yaml:"step_size"`
	AxleOffset    float64 `yaml:"axle_offset"`
}

type InitialConfig struct {
	X              float64 `yaml:"x"`
	Y              float64 `yaml:"y"`
	HeadingDegrees float64 `yaml:"heading_degrees"` // 0 = up, positive clockwise
}

type MovementConfig struct {
	Direction string  `yaml:"direction"` // forward | backward
	Wheels    string  `yaml:"wheels"`    // left | right | both
	Rotations float64 `yaml:"rotations"` // full wheel turns
}

type DisplayConfig struct {
	ShowOrigin          bool `yaml:"show_origin"`
	ShowInitialPosition bool `yaml:"show_initial_position"`
	ShowPath            bool `yaml:"show_path"`
	ShowTurns           bool `yaml:"show_turns"`
	ShowHeading         bool `yaml:"show_heading"`
	ShowAxle            bool `yaml:"show_axle"`
	ShowGrid            bool `yaml:"show_grid"`
}

func DefaultConfig() *Config {
	return &Config{
		Robot: RobotConfig{
			WheelDiameter: DefaultWheelDiameter,
			TrackWidth:    DefaultTrackWidth,
			StepSize:      DefaultStepSize,
			AxleOffset:    DefaultAxleOffset,
		},
		Initial: InitialConfig{X: -30, Y: -20, HeadingDegrees: 30},
		Program: GetPreset("demo"),
		Display: DisplayConfig{
			ShowOrigin:          true,
			ShowInitialPosition: true,
			ShowPath:            true,
			ShowTurns:           true,
			ShowHeading:         true,
			ShowAxle:            true,
		},
		Zoom: DefaultZoom,
		FPS:  DefaultFPS,
	}
}

// Load reads a YAML config file over the defaults; fields missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Geometry builds the immutable robot geometry.
func (c *Config) Geometry() kinematics.Geometry {
	return kinematics.Geometry{
		WheelDiameter: c.Robot.WheelDiameter,
		TrackWidth:    c.Robot.TrackWidth,
		StepSize:      c.Robot.StepSize,
		AxleOffset:    c.Robot.AxleOffset,
	}
}

// InitialPose builds the starting pose, converting the configured heading
// from degrees to radians.
func (c *Config) InitialPose() kinematics.Pose {
	return kinematics.Pose{
		Point:   kinematics.Point{X: c.Initial.X, Y: c.Initial.Y},
		Heading: c.Initial.HeadingDegrees * math.Pi / 180,
	}
}

// Commands converts the movement program to typed commands.
func (c *Config) Commands() []kinematics.Command {
	cmds := make([]kinematics.Command, 0, len(c.Program))
	for _, m := range c.Program {
		cmds = append(cmds, kinematics.Command{
			Direction: kinematics.Direction(m.Direction),
			Wheel:     kinematics.Wheel(m.Wheels),
			Rotations: m.Rotations,
		})
	}
	return cmds
}

// Validate rejects malformed geometry and movement commands. Any error here
// is a configuration error and aborts startup.
func (c *Config) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return err
	}
	if len(c.Program) == 0 {
		return fmt.Errorf("movement program is empty")
	}
	for i, cmd := range c.Commands() {
		if err := cmd.Validate(); err != nil {
			return fmt.Errorf("program entry %d: %w", i, err)
		}
	}
	if c.Zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %g", c.Zoom)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
