package sim

import "github.com/mwhitten/diffdrive/internal/kinematics"

// Frame is an immutable snapshot of one simulation tick. Once appended to the
// recorder it never changes; the marker set is captured by value so later
// markers cannot retroactively appear in older frames.
type Frame struct {
	Pose    kinematics.Pose
	Axle    kinematics.Point
	Active  kinematics.Active
	Command int // index of the command that produced this frame, -1 for the initial frame
	Markers []kinematics.Point
}

// Recorder is the append-only frame log and the sole source of truth for
// playback. Scrubbing only changes which index is displayed; frames are never
// truncated or reordered.
type Recorder struct {
	frames []Frame
}

func NewRecorder() *Recorder {
	return &Recorder{frames: make([]Frame, 0, 1024)}
}

func (r *Recorder) Append(f Frame) {
	f.Markers = append([]kinematics.Point(nil), f.Markers...)
	r.frames = append(r.frames, f)
}

func (r *Recorder) Len() int { return len(r.frames) }

// Clamp restricts an index to the recorded range. Scrubbing and camera
// gestures hit the boundaries routinely, so out-of-range lookups clamp
// instead of erroring.
func (r *Recorder) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(r.frames) {
		return len(r.frames) - 1
	}
	return i
}

// At returns the frame at the clamped index.
func (r *Recorder) At(i int) Frame {
	return r.frames[r.Clamp(i)]
}

// Last returns the newest frame. The recorder always holds at least the
// initial frame.
func (r *Recorder) Last() Frame {
	return r.frames[len(r.frames)-1]
}

// Path returns the reference-point positions of frames [0, upto].
func (r *Recorder) Path(upto int) []kinematics.Point {
	upto = r.Clamp(upto)
	pts := make([]kinematics.Point, 0, upto+1)
	for i := 0; i <= upto; i++ {
		pts = append(pts, r.frames[i].Pose.Point)
	}
	return pts
}

// Bounds returns the min and max reference-point coordinates across all
// recorded frames. The camera reads these for auto-fit; it never writes back.
func (r *Recorder) Bounds() (min, max kinematics.Point) {
	min = r.frames[0].Pose.Point
	max = min
	for _, f := range r.frames[1:] {
		p := f.Pose.Point
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}
