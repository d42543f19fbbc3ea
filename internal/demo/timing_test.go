package demo

import (
	"testing"
	"time"

	"github.com/Faultbox/stereotri/internal/config"
	"github.com/Faultbox/stereotri/internal/stereo"
)

func TestFrameLimiterSleepsRemainder(t *testing.T) {
	var slept []time.Duration
	l := newFrameLimiter(50) // 20ms
	l.sleep = func(d time.Duration) { slept = append(slept, d) }

	start := time.Unix(0, 0)
	l.Wait(start) // schedules the first deadline
	l.Wait(start.Add(5 * time.Millisecond))

	if len(slept) != 1 || slept[0] != 15*time.Millisecond {
		t.Fatalf("expected one 15ms sleep, got %v", slept)
	}

	// The following deadline is one period after the previous one.
	l.Wait(start.Add(25 * time.Millisecond))
	if len(slept) != 2 || slept[1] != 15*time.Millisecond {
		t.Errorf("expected second 15ms sleep, got %v", slept)
	}
}

func TestFrameLimiterResetsAfterStall(t *testing.T) {
	var slept []time.Duration
	l := newFrameLimiter(50)
	l.sleep = func(d time.Duration) { slept = append(slept, d) }

	start := time.Unix(0, 0)
	l.Wait(start)
	l.Wait(start.Add(time.Second)) // long stall

	if len(slept) != 0 {
		t.Errorf("stalled frame should not sleep, got %v", slept)
	}
	if want := start.Add(time.Second + 20*time.Millisecond); !l.next.Equal(want) {
		t.Errorf("schedule should restart from now: got %v, want %v", l.next, want)
	}
}

func TestFrameStats(t *testing.T) {
	start := time.Unix(0, 0)
	s := newFrameStats(start)

	for i := 1; i < 60; i++ {
		if _, ok := s.Tick(start.Add(time.Duration(i) * 16 * time.Millisecond)); ok {
			t.Fatalf("reported early at frame %d", i)
		}
	}
	fps, ok := s.Tick(start.Add(time.Second))
	if !ok || fps != 60 {
		t.Errorf("expected 60 fps report, got %d (ok=%v)", fps, ok)
	}
}

func TestSceneConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Stereo.FovDegrees = 90
	cfg.Input.TranslateScale = 0.3

	sc := SceneConfig(cfg)
	if sc.Camera.FovY != stereo.Radians(90) {
		t.Errorf("fov: got %f, want %f", sc.Camera.FovY, stereo.Radians(90))
	}
	if sc.Camera.ScreenDepth != cfg.Stereo.ScreenDepth {
		t.Errorf("screen depth: got %f", sc.Camera.ScreenDepth)
	}
	if sc.Camera.Clip != (stereo.ClipPlanes{Near: cfg.Stereo.Near, Far: cfg.Stereo.Far}) {
		t.Errorf("clip planes: got %+v", sc.Camera.Clip)
	}
	if sc.TranslateScale != 0.3 || sc.Deadzone != cfg.Input.Deadzone {
		t.Errorf("input tuning not carried over: %+v", sc)
	}
}

func TestDefaultSceneMatchesDefaultParams(t *testing.T) {
	sc := SceneConfig(config.Default())
	want := stereo.DefaultParams()
	if sc.Camera != want {
		t.Errorf("default config camera %+v differs from stereo defaults %+v", sc.Camera, want)
	}
}
