// Package playback tracks which frame of a stimulus is on screen and how
// fast frames are being presented.
package playback

import (
	"fmt"
	"image"
	"time"
)

// State is owned by the display loop and advanced once per drawn frame.
type State struct {
	Frames int

	current  int
	first    time.Time
	rendered int
}

func NewState(frames int) *State {
	return &State{Frames: frames}
}

// Advance moves to the next frame and returns its position in the frame
// set. The position is advanced before it is returned, so the first call
// yields 1 when there is more than one frame. The first drawn frame only
// starts the clock; every later one counts as rendered.
func (s *State) Advance(now time.Time) int {
	if s.Frames > 0 {
		s.current++
		if s.current >= s.Frames {
			s.current = 0
		}
	}

	if s.first.IsZero() {
		s.first = now
	} else {
		s.rendered++
	}

	return s.current
}

func (s *State) Current() int  { return s.current }
func (s *State) Started() bool { return !s.first.IsZero() }
func (s *State) Rendered() int { return s.rendered }

type Report struct {
	Frames  int
	Elapsed time.Duration
	FPS     float64
}

func (s *State) Report(now time.Time) Report {
	r := Report{Frames: s.rendered}
	if !s.first.IsZero() {
		r.Elapsed = now.Sub(s.first)
	}
	if r.Elapsed > 0 {
		r.FPS = float64(r.Frames) / r.Elapsed.Seconds()
	}
	return r
}

func (r Report) String() string {
	return fmt.Sprintf("%d frames rendered in %dms. That's %f fps.", r.Frames, r.Elapsed.Milliseconds(), r.FPS)
}

// Center returns the offset that centres a frame of the given size on the
// screen.
func Center(screen, frame image.Point) image.Point {
	return image.Pt((screen.X-frame.X)/2, (screen.Y-frame.Y)/2)
}
