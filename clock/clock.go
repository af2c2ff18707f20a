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

// Package clock paces a CHIP-8 host loop. The virtual machine keeps no
// time of its own; the host asks a Pacer how many instructions and timer
// ticks are due and runs exactly that many.
package clock

import "time"

/// Clock is a monotonic millisecond time source.
///
type Clock interface {
	Millis() int64
}

/// Monotonic is a Clock counting from when it was created.
///
type Monotonic struct {
	start time.Time
}

/// NewMonotonic returns a Clock starting at zero now.
///
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

/// Millis returns the milliseconds elapsed since the clock was created.
///
func (m *Monotonic) Millis() int64 {
	return time.Since(m.start).Milliseconds()
}

/// Manual is a Clock that only moves when told to.
///
type Manual struct {
	Now int64
}

/// Advance moves the clock forward ms milliseconds.
///
func (m *Manual) Advance(ms int64) {
	m.Now += ms
}

/// Millis returns the current manual time.
///
func (m *Manual) Millis() int64 {
	return m.Now
}
