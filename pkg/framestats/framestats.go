package framestats

import (
	"time"
)

// Snapshot is one reporting window of capture statistics
type Snapshot struct {
	Window       time.Duration
	Frames       int64
	Skipped      int64
	FPS          float64
	AvgRead      time.Duration
	AvgDraw      time.Duration
	TotalFrames  int64 // frames displayed since start
	TotalSkipped int64 // frames skipped since start
}

// Stats tracks frame throughput of the render loop. It is owned by the loop
// goroutine and is not safe for concurrent use.
type Stats struct {
	now      func() time.Time
	interval time.Duration

	frames        int64
	skipped       int64
	readTimeTotal time.Duration
	drawTimeTotal time.Duration
	lastReport    time.Time

	totalFrames  int64
	totalSkipped int64
}

// New creates a tracker that reports every interval
func New(interval time.Duration) *Stats {
	return newWithClock(interval, time.Now)
}

func newWithClock(interval time.Duration, now func() time.Time) *Stats {
	return &Stats{
		now:        now,
		interval:   interval,
		lastReport: now(),
	}
}

// UpdateCapture records a displayed frame and how long it took to read and draw
func (s *Stats) UpdateCapture(read, draw time.Duration) {
	s.frames++
	s.totalFrames++
	s.readTimeTotal += read
	s.drawTimeTotal += draw
}

// UpdateSkipped records a frame dropped as empty or malformed
func (s *Stats) UpdateSkipped() {
	s.skipped++
	s.totalSkipped++
}

// Due reports whether a full interval has passed since the last snapshot
func (s *Stats) Due() bool {
	return s.now().Sub(s.lastReport) >= s.interval
}

// Take returns the current window and starts a new one
func (s *Stats) Take() Snapshot {
	now := s.now()
	window := now.Sub(s.lastReport)

	snap := Snapshot{
		Window:       window,
		Frames:       s.frames,
		Skipped:      s.skipped,
		TotalFrames:  s.totalFrames,
		TotalSkipped: s.totalSkipped,
	}
	if secs := window.Seconds(); secs > 0 {
		snap.FPS = float64(s.frames) / secs
	}
	if s.frames > 0 {
		snap.AvgRead = s.readTimeTotal / time.Duration(s.frames)
		snap.AvgDraw = s.drawTimeTotal / time.Duration(s.frames)
	}

	s.frames = 0
	s.skipped = 0
	s.readTimeTotal = 0
	s.drawTimeTotal = 0
	s.lastReport = now

	return snap
}
