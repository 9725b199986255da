package sim

import "github.com/mwhitten/diffdrive/internal/kinematics"

// State owns all mutable simulation data: current pose, the active command,
// the queue position and accumulated turn markers. Only the playback
// controller advances it; the renderer sees it through recorded frames.
type State struct {
	Geometry kinematics.Geometry
	Pose     kinematics.Pose
	Active   kinematics.Active
	Queue    *Queue
	Markers  []kinematics.Point
	Command  int // index of the active command, -1 before the first pop

	prev kinematics.Wheel // selector of the previous command, "" before the first
}

func NewState(g kinematics.Geometry, initial kinematics.Pose, program []kinematics.Command) *State {
	return &State{
		Geometry: g,
		Pose:     initial,
		Queue:    NewQueue(program),
		Command:  -1,
	}
}

// Advance runs one simulation tick: pops the next command if the current one
// is spent, then integrates a single step. It reports whether a step was
// taken; false means the program is exhausted.
func (s *State) Advance() bool {
	for s.Active.Remaining <= 0 {
		cmd, ok := s.Queue.Advance()
		if !ok {
			return false
		}
		// A turn marker is dropped only when the driven wheel changes
		// between consecutive commands.
		if s.prev != "" && cmd.Wheel != s.prev {
			s.Markers = append(s.Markers, s.Pose.Point)
		}
		s.prev = cmd.Wheel
		s.Command++
		s.Active = kinematics.Active{
			Wheel:     cmd.Wheel,
			Sign:      cmd.Direction.Sign(),
			Remaining: cmd.TargetDistance(s.Geometry),
		}
	}

	next, consumed := kinematics.Step(s.Pose, s.Geometry, s.Active)
	s.Pose = next
	s.Active.Remaining -= consumed
	return true
}

// Finished reports whether the active command is spent and no commands
// remain.
func (s *State) Finished() bool {
	return s.Active.Remaining <= 0 && s.Queue.Exhausted()
}

// Snapshot captures the current frame. The recorder copies the marker slice
// on append, so the snapshot stays valid as markers accumulate.
func (s *State) Snapshot() Frame {
	return Frame{
		Pose:    s.Pose,
		Axle:    s.Pose.Axle(s.Geometry),
		Active:  s.Active,
		Command: s.Command,
		Markers: s.Markers,
	}
}
