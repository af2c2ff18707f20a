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

package main

import (
	"errors"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of CHIP-8 keys to a modern keyboard.
	///
	///   1 2 3 C        1 2 3 4
	///   4 5 6 D   <=   Q W E R
	///   7 8 9 E        A S D F
	///   A 0 B F        Z X C V
	///
	KeyMap = [chip8.KeyCount]sdl.Scancode{
		0x0: sdl.SCANCODE_X,
		0x1: sdl.SCANCODE_1,
		0x2: sdl.SCANCODE_2,
		0x3: sdl.SCANCODE_3,
		0x4: sdl.SCANCODE_Q,
		0x5: sdl.SCANCODE_W,
		0x6: sdl.SCANCODE_E,
		0x7: sdl.SCANCODE_A,
		0x8: sdl.SCANCODE_S,
		0x9: sdl.SCANCODE_D,
		0xA: sdl.SCANCODE_Z,
		0xB: sdl.SCANCODE_C,
		0xC: sdl.SCANCODE_4,
		0xD: sdl.SCANCODE_R,
		0xE: sdl.SCANCODE_F,
		0xF: sdl.SCANCODE_V,
	}
)

/// Keyboard is the CHIP-8 keypad backed by the SDL keyboard state.
///
type Keyboard struct {
	quit bool
}

func (kb *Keyboard) IsDown(key byte) bool {
	if key >= chip8.KeyCount {
		return false
	}

	return sdl.GetKeyboardState()[KeyMap[key]] != 0
}

func (kb *Keyboard) FirstDown() (byte, bool) {
	state := sdl.GetKeyboardState()

	for key, scancode := range KeyMap {
		if state[scancode] != 0 {
			return byte(key), true
		}
	}

	return 0, false
}

func (kb *Keyboard) QuitRequested() bool {
	return kb.quit
}

/// ProcessEvents from SDL. Keypad state is polled by the virtual
/// machine, only emulator keys are handled here. It returns true when
/// the window has to be repainted even if the display did not change.
///
func ProcessEvents(opts optionFlags) (repaint bool) {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			Keys.quit = true
		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_EXPOSED {
				repaint = true
			}
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				Keys.quit = true
			case sdl.SCANCODE_BACKSPACE:
				Logger.Info("Resetting")
				VM.Reset()
				Pacer.Restart()
				repaint = true
			case sdl.SCANCODE_F3:
				LoadDialog(opts)
				repaint = true
			}
		}
	}

	return repaint
}

/// LoadDialog asks for a new ROM and swaps it in. The current program
/// keeps running if the dialog is cancelled or the file is bad.
///
func LoadDialog(opts optionFlags) {
	file, err := openROMDialog()
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			Logger.Error("Opening file dialog failed", log.Err(err))
		}
		return
	}

	if err := Load(file, opts); err != nil {
		Logger.Error("Loading ROM failed", log.Err(err))
	}
}
