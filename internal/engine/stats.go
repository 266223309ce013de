package engine

// Stats counts ticks and frames over the current wall-clock second.
// The last completed second feeds the session summary log; read it only
// after the loop has returned.
type Stats struct {
	updates int
	frames  int

	lastUPS int
	lastFPS int
}

// AddUpdate counts one processed tick.
func (s *Stats) AddUpdate() { s.updates++ }

// AddFrame counts one rendered frame.
func (s *Stats) AddFrame() { s.frames++ }

// Flush ends the current second, returning and resetting its counters.
func (s *Stats) Flush() (ups, fps int) {
	ups, fps = s.updates, s.frames
	s.updates, s.frames = 0, 0
	s.lastUPS, s.lastFPS = ups, fps
	return ups, fps
}

// Last returns the counters of the most recently completed second.
func (s *Stats) Last() (ups, fps int) {
	return s.lastUPS, s.lastFPS
}
