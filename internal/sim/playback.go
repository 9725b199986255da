package sim

// Phase is the playback controller's state.
type Phase int

const (
	Advancing Phase = iota
	Paused
	Scrubbing
	Finished
)

func (p Phase) String() string {
	switch p {
	case Advancing:
		return "advancing"
	case Paused:
		return "paused"
	case Scrubbing:
		return "scrubbing"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Controller is the playback state machine. Each tick it either advances the
// live simulation by one integrator step (appending one frame) or moves the
// display index through recorded history. Scrubbing never re-invokes the
// integrator and never appends.
type Controller struct {
	state    *State
	recorder *Recorder

	phase    Phase
	resume   Phase // phase to restore when scrubbing ends
	scrubDir int
	display  int // frame index handed to the renderer
	pausedAt int // display index captured on pause, restored on resume
}

// NewController records frame 0 (the initial pose) and starts advancing.
func NewController(st *State) *Controller {
	c := &Controller{state: st, recorder: NewRecorder(), phase: Advancing}
	c.recorder.Append(st.Snapshot())
	return c
}

func (c *Controller) Phase() Phase        { return c.phase }
func (c *Controller) Recorder() *Recorder { return c.recorder }
func (c *Controller) Display() int        { return c.display }

// Frame returns the frame currently selected for display.
func (c *Controller) Frame() Frame { return c.recorder.At(c.display) }

// TogglePause freezes playback, or resumes it from the index captured when
// pausing. Scrub moves made while paused are discarded on resume.
func (c *Controller) TogglePause() {
	switch c.phase {
	case Advancing:
		c.pausedAt = c.display
		c.phase = Paused
	case Paused:
		c.display = c.pausedAt
		c.phase = Advancing
	}
}

// StartScrub enters scrubbing in the given direction (-1 or +1). Scrubbing is
// only reachable from Paused or Finished.
func (c *Controller) StartScrub(dir int) {
	if c.phase != Paused && c.phase != Finished {
		return
	}
	if dir < 0 {
		dir = -1
	} else {
		dir = 1
	}
	c.resume = c.phase
	c.scrubDir = dir
	c.phase = Scrubbing
}

// StopScrub returns to whichever phase preceded scrubbing.
func (c *Controller) StopScrub() {
	if c.phase != Scrubbing {
		return
	}
	c.phase = c.resume
	c.scrubDir = 0
}

// Tick drives the machine: one integrator step and frame append while
// advancing, one display move while scrubbing, nothing while paused or
// finished.
func (c *Controller) Tick() {
	switch c.phase {
	case Advancing:
		if !c.state.Advance() {
			c.phase = Finished
			return
		}
		c.recorder.Append(c.state.Snapshot())
		c.display = c.recorder.Len() - 1
	case Scrubbing:
		c.display = c.recorder.Clamp(c.display + c.scrubDir)
	}
}
