package gui

import "time"

// FixedStep paces generations at a steady interval regardless of frame rate.
type FixedStep struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep targets one step per interval; non-positive means 75ms.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetInterval(interval)
	fs.accumulator = fs.interval
	return fs
}

func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = 75 * time.Millisecond
	}
	f.interval = interval
}

// ShouldStep reports whether one interval has elapsed since the last step.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.interval {
		f.accumulator -= f.interval
		if f.accumulator > f.interval {
			f.accumulator = f.interval
		}
		return true
	}
	return false
}

// Restart drops accumulated time, e.g. after a pause.
func (f *FixedStep) Restart() {
	f.accumulator = 0
	f.last = time.Time{}
}
