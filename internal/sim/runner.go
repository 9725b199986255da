package sim

import (
	"context"

	"github.com/mwhitten/diffdrive/internal/kinematics"
)

// Result of a completed headless run.
type Result struct {
	Recorder *Recorder
	Steps    int
	Final    kinematics.Pose
	Markers  []kinematics.Point
}

// Runner drives a simulation to completion without a display, for the
// headless CLI commands.
type Runner struct {
	ctrl *Controller
}

func NewRunner(st *State) *Runner {
	return &Runner{ctrl: NewController(st)}
}

// Run ticks the controller until the movement program finishes or ctx is
// cancelled.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	for r.ctrl.Phase() != Finished {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		r.ctrl.Tick()
	}

	rec := r.ctrl.Recorder()
	last := rec.Last()
	return &Result{
		Recorder: rec,
		Steps:    rec.Len() - 1,
		Final:    last.Pose,
		Markers:  last.Markers,
	}, nil
}
