package demo

import "time"

// frameLimiter paces the loop when vsync is unavailable.
type frameLimiter struct {
	period time.Duration
	next   time.Time
	sleep  func(time.Duration)
}

func newFrameLimiter(fps int) *frameLimiter {
	return &frameLimiter{
		period: time.Second / time.Duration(fps),
		sleep:  time.Sleep,
	}
}

// Wait blocks until the next frame is due. A frame that overran resets the
// schedule rather than trying to catch up.
func (l *frameLimiter) Wait(now time.Time) {
	if l.next.IsZero() || now.After(l.next.Add(l.period)) {
		l.next = now.Add(l.period)
		return
	}
	if d := l.next.Sub(now); d > 0 {
		l.sleep(d)
	}
	l.next = l.next.Add(l.period)
}

// frameStats counts frames per wall-clock second.
type frameStats struct {
	frames int
	since  time.Time
}

func newFrameStats(now time.Time) *frameStats {
	return &frameStats{since: now}
}

// Tick records a frame. Once per second it returns the frame count.
func (s *frameStats) Tick(now time.Time) (int, bool) {
	s.frames++
	if now.Sub(s.since) < time.Second {
		return 0, false
	}
	fps := s.frames
	s.frames = 0
	s.since = now
	return fps, true
}
