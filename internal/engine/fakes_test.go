package engine

import (
	"errors"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// fakeSim records the calls the engine makes.
type fakeSim struct {
	moves     [core.NumDirections]int
	turns     int
	renders   int
	score     int
	over      bool
	renderErr error
}

func (s *fakeSim) Move(d core.Direction) { s.moves[d]++ }
func (s *fakeSim) Turn()                 { s.turns++ }
func (s *fakeSim) GameOver() bool        { return s.over }
func (s *fakeSim) Score() int            { return s.score }

func (s *fakeSim) Render(dst *core.PixelBuffer) error {
	if s.renderErr != nil {
		return s.renderErr
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	s.renders++
	dst.Fill(core.ColorBackground)
	return nil
}

// fakeClock advances by step on every Now call; Sleep advances by the duration.
type fakeClock struct {
	t     time.Time
	step  time.Duration
	slept []time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{t: time.Unix(1_000_000, 0), step: step}
}

func (c *fakeClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

// fakeSink counts presented frames and stops the loop after a limit.
type fakeSink struct {
	w, h     int
	presents int
	limit    int
	stop     func()
	err      error
}

func (s *fakeSink) Size() (int, int) { return s.w, s.h }

func (s *fakeSink) Present(frame *core.PixelBuffer) error {
	if s.err != nil {
		return s.err
	}
	s.presents++
	if s.limit > 0 && s.presents >= s.limit && s.stop != nil {
		s.stop()
	}
	return nil
}

type fakeTitle struct {
	reports [][2]int
}

func (t *fakeTitle) ReportRates(ups, fps int) {
	t.reports = append(t.reports, [2]int{ups, fps})
}

// fakeReporter fails the first failures calls.
type fakeReporter struct {
	calls    int
	failures int
	messages []string
}

func (r *fakeReporter) ReportError(msg string) error {
	r.calls++
	r.messages = append(r.messages, msg)
	if r.calls <= r.failures {
		return errors.New("popup unavailable")
	}
	return nil
}
