package playback

import (
	"image"
	"testing"
	"time"
)

func TestAdvanceWraps(t *testing.T) {
	s := NewState(4)
	now := time.Unix(1000, 0)

	var seen []int
	for i := 0; i < 6; i++ {
		seen = append(seen, s.Advance(now))
	}

	expected := []int{1, 2, 3, 0, 1, 2}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, seen)
		}
	}
}

func TestAdvanceSingleFrame(t *testing.T) {
	s := NewState(1)
	for i := 0; i < 3; i++ {
		if n := s.Advance(time.Now()); n != 0 {
			t.Fatalf("expected frame 0, got %d", n)
		}
	}
}

func TestFirstFrameStartsClock(t *testing.T) {
	s := NewState(2)
	if s.Started() {
		t.Fatal("state should not be started before the first frame")
	}

	start := time.Unix(1000, 0)
	s.Advance(start)
	if !s.Started() || s.Rendered() != 0 {
		t.Fatalf("first frame should only start the clock, rendered=%d", s.Rendered())
	}

	for i := 1; i <= 120; i++ {
		s.Advance(start.Add(time.Duration(i) * 10 * time.Millisecond))
	}

	r := s.Report(start.Add(2 * time.Second))
	if r.Frames != 120 {
		t.Errorf("expected 120 frames, got %d", r.Frames)
	}
	if r.Elapsed != 2*time.Second {
		t.Errorf("expected 2s, got %v", r.Elapsed)
	}
	if r.FPS != 60 {
		t.Errorf("expected 60 fps, got %f", r.FPS)
	}

	expected := "120 frames rendered in 2000ms. That's 60.000000 fps."
	if r.String() != expected {
		t.Errorf("expected %q, got %q", expected, r.String())
	}
}

func TestReportBeforeStart(t *testing.T) {
	r := NewState(4).Report(time.Now())
	if r.Frames != 0 || r.Elapsed != 0 || r.FPS != 0 {
		t.Fatalf("unexpected report %+v", r)
	}
}

func TestCenter(t *testing.T) {
	got := Center(image.Pt(1024, 768), image.Pt(512, 512))
	if got != image.Pt(256, 128) {
		t.Fatalf("unexpected offset %v", got)
	}
}
