package model

// Scheduler gates generation advances on accumulated wall-clock time.
//
// At most one generation advances per Tick. When a single delta overshoots the
// interval the excess is dropped rather than carried into further advances,
// which keeps the cost of one Tick bounded after a long stall.
// The interval comparison is exact floating-point, so ten 0.1s deltas do not
// reach a 1.0s interval.
type Scheduler struct {
	interval    float64
	accumulated float64
}

// NewScheduler returns a scheduler that advances once every interval seconds
func NewScheduler(interval float64) *Scheduler {
	return &Scheduler{interval: interval}
}

// Accumulated returns the time gathered since the last advance
func (s *Scheduler) Accumulated() float64 {
	return s.accumulated
}

// Interval returns the configured tick interval in seconds
func (s *Scheduler) Interval() float64 {
	return s.interval
}

// Tick adds dt seconds and reports whether a generation should advance.
// Negative or NaN deltas add nothing.
func (s *Scheduler) Tick(dt float64) bool {
	if dt > 0 {
		s.accumulated += dt
	}
	if s.accumulated < s.interval {
		return false
	}
	s.accumulated = 0
	return true
}
