package viz

import (
	"math"

	"github.com/mwhitten/diffdrive/internal/kinematics"
)

const (
	PanSpeed     = 5.0  // dots per pan keypress
	ZoomStep     = 0.05 // zoom change per keypress
	ZoomMin      = 0.1
	ZoomMax      = 10.0
	FitPadding   = 0.1 // fraction of the trajectory extent kept as margin
	ScrollBuffer = 12  // dots from the edge before auto-follow kicks in
)

// Camera maps world coordinates to canvas dots. It owns pan, zoom, auto-fit
// and auto-follow; none of it feeds back into the simulation. Auto-fit reads
// the frame recorder's bounds but never writes into it.
type Camera struct {
	Center kinematics.Point // world point at the canvas centre
	Zoom   float64          // dots per world unit

	width, height int // canvas size in dots
}

func NewCamera(width, height int, zoom float64) *Camera {
	return &Camera{Zoom: clampZoom(zoom), width: width, height: height}
}

// Project maps a world point to dot coordinates. Screen y grows downward.
func (c *Camera) Project(p kinematics.Point) (int, int) {
	sx := float64(c.width)/2 + (p.X-c.Center.X)*c.Zoom
	sy := float64(c.height)/2 - (p.Y-c.Center.Y)*c.Zoom
	return int(math.Round(sx)), int(math.Round(sy))
}

// Pan shifts the view by dot offsets, scaled so panning covers the same
// screen distance at any zoom.
func (c *Camera) Pan(dx, dy float64) {
	c.Center.X += dx * PanSpeed / c.Zoom
	c.Center.Y += dy * PanSpeed / c.Zoom
}

func (c *Camera) ZoomIn()  { c.Zoom = clampZoom(c.Zoom + ZoomStep) }
func (c *Camera) ZoomOut() { c.Zoom = clampZoom(c.Zoom - ZoomStep) }

// Fit centres the camera on the given world bounds and picks the largest
// zoom that shows the whole extent plus padding.
func (c *Camera) Fit(min, max kinematics.Point) {
	w := max.X - min.X
	h := max.Y - min.Y
	pad := math.Max(w, h) * FitPadding
	w += pad
	h += pad

	zx, zy := ZoomMax, ZoomMax
	if w > 0 {
		zx = float64(c.width) / w
	}
	if h > 0 {
		zy = float64(c.height) / h
	}
	c.Zoom = clampZoom(math.Min(zx, zy))
	c.Center = kinematics.Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}
}

// Follow shifts the view just enough to keep the robot inside the scroll
// buffer while the simulation advances.
func (c *Camera) Follow(p kinematics.Point) {
	sx, sy := c.Project(p)
	if sx > c.width-ScrollBuffer {
		c.Center.X += float64(sx-(c.width-ScrollBuffer)) / c.Zoom
	} else if sx < ScrollBuffer {
		c.Center.X -= float64(ScrollBuffer-sx) / c.Zoom
	}
	if sy > c.height-ScrollBuffer {
		c.Center.Y -= float64(sy-(c.height-ScrollBuffer)) / c.Zoom
	} else if sy < ScrollBuffer {
		c.Center.Y += float64(ScrollBuffer-sy) / c.Zoom
	}
}

// Visible returns the world-coordinate bounds of the canvas, for grid
// drawing.
func (c *Camera) Visible() (min, max kinematics.Point) {
	hw := float64(c.width) / 2 / c.Zoom
	hh := float64(c.height) / 2 / c.Zoom
	min = kinematics.Point{X: c.Center.X - hw, Y: c.Center.Y - hh}
	max = kinematics.Point{X: c.Center.X + hw, Y: c.Center.Y + hh}
	return min, max
}

func clampZoom(z float64) float64 {
	if z < ZoomMin {
		return ZoomMin
	}
	if z > ZoomMax {
		return ZoomMax
	}
	return z
}
