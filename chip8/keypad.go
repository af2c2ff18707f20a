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

/// KeyCount is the number of keys on the CHIP-8 hex keypad.
///
const KeyCount = 16

/// Keypad is the input capability the virtual machine consumes. Keys
/// are the logical indices 0-F; mapping physical keys is up to the
/// implementation.
///
type Keypad interface {
	/// IsDown reports whether key is currently held. Keys above 0xF
	/// are never down.
	///
	IsDown(key byte) bool

	/// FirstDown returns the lowest key currently held, if any.
	///
	FirstDown() (byte, bool)
}

/// Quitter is optionally implemented by a Keypad that can surface a
/// request to stop the virtual machine. It is checked once per cycle.
///
type Quitter interface {
	QuitRequested() bool
}

/// KeyState is a Keypad backed by a plain 16-key state vector.
///
type KeyState struct {
	Keys [KeyCount]bool

	quit bool
}

/// Press emulates a CHIP-8 key being pressed.
///
func (ks *KeyState) Press(key byte) {
	if key < KeyCount {
		ks.Keys[key] = true
	}
}

/// Release emulates a CHIP-8 key being released.
///
func (ks *KeyState) Release(key byte) {
	if key < KeyCount {
		ks.Keys[key] = false
	}
}

/// RequestQuit makes the next cycle halt the virtual machine.
///
func (ks *KeyState) RequestQuit() {
	ks.quit = true
}

func (ks *KeyState) QuitRequested() bool {
	return ks.quit
}

func (ks *KeyState) IsDown(key byte) bool {
	return key < KeyCount && ks.Keys[key]
}

func (ks *KeyState) FirstDown() (byte, bool) {
	for i, down := range ks.Keys {
		if down {
			return byte(i), true
		}
	}

	return 0, false
}
