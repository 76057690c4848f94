package display

import "time"

// TimeSynchronizer paces the frame loop to a target FPS.
type TimeSynchronizer struct {
	prevTime   time.Time
	usPerFrame int
}

func NewTimeSynchronizer(targetFPS int) *TimeSynchronizer {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &TimeSynchronizer{
		prevTime:   time.Now(),
		usPerFrame: 1000000 / targetFPS,
	}
}

// MaySleep sleeps off whatever remains of the current frame's budget.
func (ts *TimeSynchronizer) MaySleep() {
	cur := time.Now()
	dur := cur.Sub(ts.prevTime)
	diff := ts.usPerFrame - int(dur.Microseconds())
	if diff > 0 {
		time.Sleep(time.Duration(diff) * time.Microsecond)
	}
	ts.prevTime = cur
}
