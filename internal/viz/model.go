package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitten/diffdrive/internal/config"
	"github.com/mwhitten/diffdrive/internal/kinematics"
	"github.com/mwhitten/diffdrive/internal/sim"
)

const (
	canvasCols = 80
	canvasRows = 24

	gridSpacing   = 50.0 // world units between grid lines
	headingLength = 15.0 // world-unit length of the heading indicator
)

type tickMsg time.Time

// Model is the interactive playback program. Keys map to playback-controller
// events and camera adjustments; the fixed-rate tick drives at most one
// controller step and one render per frame.
type Model struct {
	ctrl    *sim.Controller
	camera  *Camera
	canvas  *Canvas
	display config.DisplayConfig

	geom     kinematics.Geometry
	initial  kinematics.Point
	commands int
	fps      int
}

func NewModel(ctrl *sim.Controller, cfg *config.Config) Model {
	canvas := NewCanvas(canvasCols, canvasRows)
	camera := NewCamera(canvas.DotWidth(), canvas.DotHeight(), cfg.Zoom)
	initial := cfg.InitialPose().Point
	camera.Center = initial

	return Model{
		ctrl:     ctrl,
		camera:   camera,
		canvas:   canvas,
		display:  cfg.Display,
		geom:     cfg.Geometry(),
		initial:  initial,
		commands: len(cfg.Program),
		fps:      cfg.FPS,
	}
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.ctrl.TogglePause()
		case "[":
			m.ctrl.StartScrub(-1)
		case "]":
			m.ctrl.StartScrub(1)
		case "0":
			min, max := m.ctrl.Recorder().Bounds()
			m.camera.Fit(min, max)
		case "left":
			m.camera.Pan(-1, 0)
		case "right":
			m.camera.Pan(1, 0)
		case "up":
			m.camera.Pan(0, 1)
		case "down":
			m.camera.Pan(0, -1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "o":
			m.display.ShowOrigin = !m.display.ShowOrigin
		case "i":
			m.display.ShowInitialPosition = !m.display.ShowInitialPosition
		case "p":
			m.display.ShowPath = !m.display.ShowPath
		case "t":
			m.display.ShowTurns = !m.display.ShowTurns
		case "h":
			m.display.ShowHeading = !m.display.ShowHeading
		case "a":
			m.display.ShowAxle = !m.display.ShowAxle
		case "g":
			m.display.ShowGrid = !m.display.ShowGrid
		}
	case tickMsg:
		m.ctrl.Tick()
		// Terminals deliver no key-release events, so a scrub key press
		// moves one frame per tick and key auto-repeat sustains the scrub.
		if m.ctrl.Phase() == sim.Scrubbing {
			m.ctrl.StopScrub()
		}
		if m.ctrl.Phase() == sim.Advancing {
			m.camera.Follow(m.ctrl.Frame().Pose.Point)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panelStyle.Render(m.panel()))
}

// draw renders the displayed frame onto the canvas.
func (m Model) draw() {
	m.canvas.Clear()
	frame := m.ctrl.Frame()

	if m.display.ShowGrid {
		m.drawGrid()
	}

	if m.display.ShowPath {
		path := m.ctrl.Recorder().Path(m.ctrl.Display())
		for i := 1; i < len(path); i++ {
			x0, y0 := m.camera.Project(path[i-1])
			x1, y1 := m.camera.Project(path[i])
			m.canvas.Line(x0, y0, x1, y1)
		}
	}

	if m.display.ShowTurns {
		for _, marker := range frame.Markers {
			x, y := m.camera.Project(marker)
			m.canvas.Dot(x, y, 1)
		}
	}

	if m.display.ShowOrigin {
		x, y := m.camera.Project(kinematics.Point{})
		m.canvas.Dot(x, y, 1)
	}

	if m.display.ShowInitialPosition {
		x, y := m.camera.Project(m.initial)
		m.canvas.Dot(x, y, 1)
	}

	pose := frame.Pose
	if m.display.ShowAxle {
		ax, ay := m.camera.Project(pose.Axle(m.geom))
		m.canvas.Dot(ax, ay, 1)
		lx, ly := m.camera.Project(pose.LeftWheel(m.geom))
		rx, ry := m.camera.Project(pose.RightWheel(m.geom))
		m.canvas.Dot(lx, ly, 1)
		m.canvas.Dot(rx, ry, 1)
		m.canvas.Line(lx, ly, rx, ry)
	}

	px, py := m.camera.Project(pose.Point)
	m.canvas.Dot(px, py, 2)

	if m.display.ShowHeading {
		fx, fy := pose.Forward()
		tip := kinematics.Point{X: pose.X + fx*headingLength, Y: pose.Y + fy*headingLength}
		tx, ty := m.camera.Project(tip)
		m.canvas.Line(px, py, tx, ty)
	}
}

func (m Model) drawGrid() {
	min, max := m.camera.Visible()
	for x := math.Floor(min.X/gridSpacing) * gridSpacing; x <= max.X; x += gridSpacing {
		sx, _ := m.camera.Project(kinematics.Point{X: x, Y: min.Y})
		m.canvas.Line(sx, 0, sx, m.canvas.DotHeight()-1)
	}
	for y := math.Floor(min.Y/gridSpacing) * gridSpacing; y <= max.Y; y += gridSpacing {
		_, sy := m.camera.Project(kinematics.Point{X: min.X, Y: y})
		m.canvas.Line(0, sy, m.canvas.DotWidth()-1, sy)
	}
}

func (m Model) panel() string {
	frame := m.ctrl.Frame()
	rec := m.ctrl.Recorder()

	var b strings.Builder
	b.WriteString(headerStyle.Render("DIFFERENTIAL DRIVE") + "\n")
	b.WriteString(m.status() + "\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Frame", fmt.Sprintf("%d / %d", m.ctrl.Display()+1, rec.Len()))
	if frame.Command >= 0 {
		row("Command", fmt.Sprintf("%d / %d", frame.Command+1, m.commands))
		dir := kinematics.Forward
		if frame.Active.Sign < 0 {
			dir = kinematics.Backward
		}
		row("Wheels", fmt.Sprintf("%s %s", frame.Active.Wheel, dir))
		row("Remaining", fmt.Sprintf("%.1f", frame.Active.Remaining))
	}
	row("Position", fmt.Sprintf("%.1f, %.1f", frame.Pose.X, frame.Pose.Y))
	row("Heading", fmt.Sprintf("%.1f°", frame.Pose.Heading*180/math.Pi))
	row("Markers", fmt.Sprintf("%d", len(frame.Markers)))
	row("Zoom", fmt.Sprintf("%.2f", m.camera.Zoom))

	b.WriteString(helpStyle.Render(strings.Join([]string{
		"space  pause/resume",
		"[ ]    scrub (paused)",
		"arrows pan   +/- zoom",
		"0      fit view",
		"opthag toggles  q quit",
	}, "\n")))
	return b.String()
}

func (m Model) status() string {
	switch m.ctrl.Phase() {
	case sim.Advancing:
		return statusAdvancing.Render("RUNNING")
	case sim.Paused:
		return statusPaused.Render("PAUSED")
	case sim.Scrubbing:
		return statusScrubbing.Render("SCRUBBING")
	case sim.Finished:
		return statusFinished.Render("FINISHED")
	}
	return ""
}
