package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/mwhitten/diffdrive/internal/config"
	"github.com/mwhitten/diffdrive/internal/export"
	"github.com/mwhitten/diffdrive/internal/sim"
	"github.com/mwhitten/diffdrive/internal/viz"
)

var (
	configFile string
	preset     string

	wheelDiameter float64
	trackWidth    float64
	stepSize      float64
	axleOffset    float64
	initX         float64
	initY         float64
	headingDeg    float64
	zoom          float64
	fps           int

	plotOut string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diffdrive",
		Short: "differential drive robot simulator",
		Long: "Simulates a two-wheel robot executing a program of wheel-rotation\n" +
			"commands and plays the trajectory back interactively in the terminal.",
		RunE: runPlay,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a built-in movement program")
	pf.Float64Var(&wheelDiameter, "wheel-diameter", config.DefaultWheelDiameter, "wheel diameter")
	pf.Float64Var(&trackWidth, "track-width", config.DefaultTrackWidth, "distance between wheels")
	pf.Float64Var(&stepSize, "step-size", config.DefaultStepSize, "distance advanced per tick")
	pf.Float64Var(&axleOffset, "axle-offset", config.DefaultAxleOffset, "axle midpoint to reference point offset")
	pf.Float64Var(&initX, "x", -30, "initial x position")
	pf.Float64Var(&initY, "y", -20, "initial y position")
	pf.Float64Var(&headingDeg, "heading", 30, "initial heading in degrees (0 = up, clockwise)")

	rootCmd.Flags().Float64Var(&zoom, "zoom", config.DefaultZoom, "initial camera zoom")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "playback frame rate")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the simulation headless and print a summary",
		RunE:  runHeadless,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "run the simulation and write the frame log to stdout as CSV",
		RunE:  exportCSV,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "run the simulation and render the trajectory to an image",
		RunE:  plotTrajectory,
	}
	plotCmd.Flags().StringVar(&plotOut, "out", "trajectory.png", "output image path (png, svg, pdf)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in movement programs",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Printf("%-10s %d commands\n", name, len(config.Presets[name]))
			}
		},
	}

	rootCmd.AddCommand(runCmd, exportCSVCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the run configuration: defaults, then the config file,
// then the preset program, then explicit flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		prog := config.GetPreset(preset)
		if prog == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Program = prog
	}

	flags := cmd.Flags()
	if flags.Changed("wheel-diameter") {
		cfg.Robot.WheelDiameter = wheelDiameter
	}
	if flags.Changed("track-width") {
		cfg.Robot.TrackWidth = trackWidth
	}
	if flags.Changed("step-size") {
		cfg.Robot.StepSize = stepSize
	}
	if flags.Changed("axle-offset") {
		cfg.Robot.AxleOffset = axleOffset
	}
	if flags.Changed("x") {
		cfg.Initial.X = initX
	}
	if flags.Changed("y") {
		cfg.Initial.Y = initY
	}
	if flags.Changed("heading") {
		cfg.Initial.HeadingDegrees = headingDeg
	}
	if flags.Changed("zoom") {
		cfg.Zoom = zoom
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newState(cfg *config.Config) *sim.State {
	return sim.NewState(cfg.Geometry(), cfg.InitialPose(), cfg.Commands())
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctrl := sim.NewController(newState(cfg))
	m := viz.NewModel(ctrl, cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := sim.NewRunner(newState(cfg)).Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("commands: %d\n", len(cfg.Program))
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("frames: %d\n", result.Recorder.Len())
	fmt.Printf("turn markers: %d\n", len(result.Markers))
	fmt.Printf("final position: (%.2f, %.2f)\n", result.Final.X, result.Final.Y)
	fmt.Printf("final heading: %.2f°\n", result.Final.Heading*180/math.Pi)

	headings := make([]float64, result.Recorder.Len())
	xs := make([]float64, result.Recorder.Len())
	ys := make([]float64, result.Recorder.Len())
	for i := 0; i < result.Recorder.Len(); i++ {
		f := result.Recorder.At(i)
		headings[i] = f.Pose.Heading * 180 / math.Pi
		xs[i] = f.Pose.X
		ys[i] = f.Pose.Y
	}

	for _, chart := range []struct {
		caption string
		data    []float64
	}{
		{"heading (degrees)", headings},
		{"x position", xs},
		{"y position", ys},
	} {
		graph := asciigraph.Plot(chart.data,
			asciigraph.Height(8),
			asciigraph.Width(72),
			asciigraph.Caption(chart.caption),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := sim.NewRunner(newState(cfg)).Run(context.Background())
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"frame", "command", "x", "y", "heading", "axle_x", "axle_y", "wheels", "direction", "remaining"}
	if err := w.Write(header); err != nil {
		return err
	}

	ff := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for i := 0; i < result.Recorder.Len(); i++ {
		f := result.Recorder.At(i)
		dir := ""
		if f.Command >= 0 {
			dir = "forward"
			if f.Active.Sign < 0 {
				dir = "backward"
			}
		}
		row := []string{
			strconv.Itoa(i),
			strconv.Itoa(f.Command),
			ff(f.Pose.X), ff(f.Pose.Y), ff(f.Pose.Heading),
			ff(f.Axle.X), ff(f.Axle.Y),
			string(f.Active.Wheel), dir,
			ff(f.Active.Remaining),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func plotTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := sim.NewRunner(newState(cfg)).Run(context.Background())
	if err != nil {
		return err
	}

	if err := export.TrajectoryPlot(result.Recorder, plotOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames)\n", plotOut, result.Recorder.Len())
	return nil
}
