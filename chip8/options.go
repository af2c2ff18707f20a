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

package chip8

import (
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

/// Quirks select between behaviors that differ across historical
/// interpreters. ROM compatibility depends on the set chosen. The zero
/// value is the quirk set of the reference interpreter.
///
type Quirks struct {
	/// WrapSprites wraps sprite pixels that fall past the right or
	/// bottom edge of the display around to the other side. When false
	/// they are clipped.
	///
	WrapSprites bool

	/// NoIndexOverflowFlag leaves VF alone when ADD I, Vx takes I above
	/// 0xFFF.
	///
	NoIndexOverflowFlag bool

	/// ShiftInPlace makes SHR/SHL shift Vx itself instead of a copy
	/// of Vy.
	///
	ShiftInPlace bool

	/// JumpWithOffset enables JP V0, nnn. Without it Bnnn is undefined.
	///
	JumpWithOffset bool

	/// LoadStoreIncrementsIndex leaves I pointing past the last byte
	/// copied by LD [I], Vx and LD Vx, [I].
	///
	LoadStoreIncrementsIndex bool
}

/// DefaultQuirks returns the quirk set of the reference interpreter.
///
func DefaultQuirks() Quirks {
	return Quirks{}
}

/// Options configure a new virtual machine. The zero value is usable.
///
type Options struct {
	Quirks Quirks

	/// Keypad is queried by the key instructions and for exit requests.
	/// A KeyState is used if nil.
	///
	Keypad Keypad

	/// Logger receives diagnostics. A default logger is used if nil.
	///
	Logger *log.Logger

	/// Rand is the source for RND. Seeded from the time if nil.
	///
	Rand *rand.Rand

	/// Trace logs every executed instruction at debug level.
	///
	Trace bool
}

/// DefaultOptions returns the options used when none are given.
///
func DefaultOptions() Options {
	return Options{
		Quirks: DefaultQuirks(),
	}
}

func (opts *Options) fill() {
	if opts.Keypad == nil {
		opts.Keypad = &KeyState{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithConfig(log.DefaultConfig())
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UTC().UnixNano()))
	}
}
