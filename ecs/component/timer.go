package component

import "math"

// TimerCeiling is the "effectively infinite" elapsed-time sentinel. A freshly
// created timer reads as the ceiling until it is started, and a running timer
// saturates there instead of accumulating toward float overflow.
const TimerCeiling = math.MaxFloat32

// Timer measures time since an event started. The zero value is NOT a valid
// timer; use NewTimer so the elapsed time defaults to the unset sentinel.
type Timer struct {
	elapsed float64
}

func NewTimer() Timer {
	return Timer{elapsed: TimerCeiling}
}

// Start resets elapsed time to zero.
func (t *Timer) Start() {
	t.elapsed = 0
}

// Advance adds dt to the elapsed time, clamping at the ceiling. dt < 0 is
// undefined behavior; callers uphold dt >= 0.
func (t *Timer) Advance(dt float64) {
	if t.elapsed < TimerCeiling-dt-0.1 {
		t.elapsed += dt
	} else {
		t.elapsed = TimerCeiling
	}
}

func (t Timer) Elapsed() float64 {
	return t.elapsed
}
