// This file is part of framegrid.
//
// framegrid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// framegrid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with framegrid.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces the compositor's tick loop and measures the rate at
// which ticks are happening.
//
// Start() is called at the beginning of every tick and Wait() at the end:
//
//	lim := limiter.NewLimiter(33 * time.Millisecond)
//	for {
//		lim.Start()
//		tick()
//		lim.Wait()
//	}
//
// The rate is the mean of the instantaneous rates of the most recent ticks.
// The window of samples starts full of zeros so the measured rate climbs
// over the first few ticks.
package limiter

import (
	"time"
)

// WindowSize is the number of samples the measured rate is averaged over.
const WindowSize = 10

// Limiter measures and limits the tick rate.
type Limiter struct {
	target time.Duration

	window [WindowSize]float64
	idx    int

	// start time of the previous tick. zero before the first tick
	prev time.Time

	// replaced in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The target is the preferred duration of one tick.
func NewLimiter(target time.Duration) *Limiter {
	return &Limiter{
		target: max(target, 0),
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// SetTarget changes the preferred duration of one tick. Negative durations
// are treated as zero.
func (lim *Limiter) SetTarget(target time.Duration) {
	lim.target = max(target, 0)
}

// Target returns the preferred duration of one tick.
func (lim *Limiter) Target() time.Duration {
	return lim.target
}

// Start should be called at the beginning of every tick. The time since the
// start of the previous tick is added to the window of samples.
func (lim *Limiter) Start() {
	t := lim.now()
	if !lim.prev.IsZero() {
		var rate float64
		if el := t.Sub(lim.prev).Seconds(); el > 0 {
			rate = 1 / el
		}
		lim.window[lim.idx] = rate
		lim.idx = (lim.idx + 1) % WindowSize
	}
	lim.prev = t
}

// Measured returns the average tick rate, in ticks per second.
func (lim *Limiter) Measured() float64 {
	var sum float64
	for _, r := range lim.window {
		sum += r
	}
	return sum / WindowSize
}

// Delay returns how long Wait() would sleep for. An average rate of less
// than one tick per second is too unreliable to act on and the delay is
// zero. The delay is never negative.
func (lim *Limiter) Delay() time.Duration {
	avg := lim.Measured()
	if avg < 1 {
		return 0
	}
	d := lim.target - time.Duration(float64(time.Second)/avg)
	return max(d, 0)
}

// Wait should be called at the end of every tick. It sleeps for the duration
// returned by Delay().
func (lim *Limiter) Wait() time.Duration {
	d := lim.Delay()
	if d > 0 {
		lim.sleep(d)
	}
	return d
}
