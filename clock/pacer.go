/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package clock

/// DefaultMaxLag is how far behind a Pacer lets the host fall before it
/// drops the backlog instead of catching up.
///
const DefaultMaxLag = 250

/// Pacer converts elapsed clock time into due instruction steps and
/// timer ticks. Both are counted from the same origin so rounding never
/// accumulates drift.
///
type Pacer struct {
	clock   Clock
	rate    int64
	timerHz int64

	/// MaxLag in milliseconds, see DefaultMaxLag.
	///
	MaxLag int64

	origin int64
	steps  int64
	ticks  int64
}

/// NewPacer returns a Pacer running rate instructions and timerHz timer
/// ticks per second of c.
///
func NewPacer(c Clock, rate, timerHz int) *Pacer {
	return &Pacer{
		clock:   c,
		rate:    int64(rate),
		timerHz: int64(timerHz),
		MaxLag:  DefaultMaxLag,
		origin:  c.Millis(),
	}
}

/// Due returns how many instructions and timer ticks should run now to
/// catch up with the clock. Each call accounts for what it returns.
///
func (p *Pacer) Due() (steps, ticks int) {
	elapsed := p.clock.Millis() - p.origin

	steps = int(elapsed*p.rate/1000 - p.steps)
	ticks = int(elapsed*p.timerHz/1000 - p.ticks)

	// too far behind (e.g. the window was dragged), start over from now
	if p.MaxLag > 0 && int64(steps) > p.MaxLag*p.rate/1000 {
		p.Restart()
		return 0, 0
	}

	p.steps += int64(steps)
	p.ticks += int64(ticks)

	return steps, ticks
}

/// Restart forgets any backlog and counts from the current time.
///
func (p *Pacer) Restart() {
	p.origin = p.clock.Millis()
	p.steps = 0
	p.ticks = 0
}
