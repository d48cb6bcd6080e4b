package playback

import (
	"fmt"
	"strconv"
	"strings"
)

const DefaultMode = "1024x768:16@60"

// Mode is a requested full-screen display mode. Depth and Refresh are zero
// when the mode string leaves them out.
type Mode struct {
	Width   int
	Height  int
	Depth   int
	Refresh int
}

// ParseMode reads a game mode string of the form "WxH[:depth][@refresh]".
func ParseMode(s string) (Mode, error) {
	var m Mode
	rest := strings.TrimSpace(s)

	if i := strings.IndexByte(rest, '@'); i >= 0 {
		v, err := positive(rest[i+1:], "refresh rate")
		if err != nil {
			return Mode{}, fmt.Errorf("mode %q: %w", s, err)
		}
		m.Refresh, rest = v, rest[:i]
	}

	if i := strings.IndexByte(rest, ':'); i >= 0 {
		v, err := positive(rest[i+1:], "colour depth")
		if err != nil {
			return Mode{}, fmt.Errorf("mode %q: %w", s, err)
		}
		m.Depth, rest = v, rest[:i]
	}

	w, h, ok := strings.Cut(rest, "x")
	if !ok {
		return Mode{}, fmt.Errorf("mode %q: missing WIDTHxHEIGHT", s)
	}
	var err error
	if m.Width, err = positive(w, "width"); err != nil {
		return Mode{}, fmt.Errorf("mode %q: %w", s, err)
	}
	if m.Height, err = positive(h, "height"); err != nil {
		return Mode{}, fmt.Errorf("mode %q: %w", s, err)
	}

	return m, nil
}

func (m Mode) String() string {
	s := fmt.Sprintf("%dx%d", m.Width, m.Height)
	if m.Depth > 0 {
		s += fmt.Sprintf(":%d", m.Depth)
	}
	if m.Refresh > 0 {
		s += fmt.Sprintf("@%d", m.Refresh)
	}
	return s
}

func positive(s, what string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return v, nil
}
