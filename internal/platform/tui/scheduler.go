package tui

import "time"

// Scheduler keeps the frame cadence. Each frame's deadline is the previous
// frame's deadline plus the frame duration, so input arriving mid-frame
// never shifts it. A loop that has fallen more than a whole frame behind
// re-anchors to the current time instead of firing a burst of late frames.
// Lateness within one frame is kept, not re-anchored: the next deadline
// stays on the old cadence so small jitter does not stretch every frame.
type Scheduler struct {
	now    func() time.Time
	last   time.Time // deadline of the frame that fired last
	paused bool
}

// NewScheduler returns a scheduler reading the given clock, or the
// monotonic wall clock when now is nil.
func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Start anchors the first frame at the current time.
func (s *Scheduler) Start() {
	s.last = s.now()
	s.paused = false
}

// Timeout returns how long to wait for input before the next frame of the
// given duration is due. A missed deadline yields zero, never a negative
// wait. ok is false while paused: wait for input indefinitely.
func (s *Scheduler) Timeout(frame time.Duration) (wait time.Duration, ok bool) {
	if s.paused {
		return 0, false
	}
	wait = s.last.Add(frame).Sub(s.now())
	if wait < 0 {
		wait = 0
	}
	return wait, true
}

// Fired records that a frame of the given duration has run. The deadline
// moves to now only when the frame fired more than one frame late.
func (s *Scheduler) Fired(frame time.Duration) {
	deadline := s.last.Add(frame)
	if now := s.now(); now.Sub(deadline) > frame {
		deadline = now
	}
	s.last = deadline
}

// Pause suspends the cadence.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume restarts the cadence from the current time so the paused
// interval is not charged against the next frame.
func (s *Scheduler) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.last = s.now()
}

// Paused reports whether the cadence is suspended.
func (s *Scheduler) Paused() bool {
	return s.paused
}
