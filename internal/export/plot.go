package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mwhitten/diffdrive/internal/sim"
)

// TrajectoryPlot renders the recorded path, turn markers and final position
// to an image file. The format follows the file extension (png, svg, pdf).
func TrajectoryPlot(rec *sim.Recorder, path string) error {
	p := plot.New()
	p.Title.Text = "robot trajectory"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	positions := rec.Path(rec.Len() - 1)
	pts := make(plotter.XYs, len(positions))
	for i, pos := range positions {
		pts[i].X = pos.X
		pts[i].Y = pos.Y
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("failed to build path line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)

	markers := rec.Last().Markers
	if len(markers) > 0 {
		mpts := make(plotter.XYs, len(markers))
		for i, mk := range markers {
			mpts[i].X = mk.X
			mpts[i].Y = mk.Y
		}
		scatter, err := plotter.NewScatter(mpts)
		if err != nil {
			return fmt.Errorf("failed to build turn markers: %w", err)
		}
		scatter.GlyphStyle.Radius = vg.Points(3)
		p.Add(scatter)
		p.Legend.Add("turns", scatter)
	}
	p.Legend.Add("path", line)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}
