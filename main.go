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

// Command chip8vm runs CHIP-8 programs in an SDL window.
package main

import (
	"errors"
	"flag"
	"os"
	"runtime"

	"github.com/massung/chip8vm/chip8"
	"github.com/massung/chip8vm/clock"
	"github.com/retroenv/retrogolib/log"
	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.CHIP_8

	/// Keys is the keypad shared by every loaded machine.
	///
	Keys = &Keyboard{}

	/// Pacer decides how many instructions and timer ticks are due.
	///
	Pacer *clock.Pacer

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	Logger *log.Logger
)

func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		createLogger(false, false).Error("Invalid arguments", log.Err(err))
		return 2
	}

	Logger = createLogger(opts.debug, opts.quiet)
	printBanner(os.Stdout, opts)

	file := opts.rom
	if file == "" {
		if file, err = openROMDialog(); err != nil {
			if errors.Is(err, dialog.ErrCancelled) {
				return 0
			}
			Logger.Error("Opening file dialog failed", log.Err(err))
			return 1
		}
	}

	// a bad rom is reported before any window opens
	if err := Load(file, opts); err != nil {
		Logger.Error("Loading ROM failed", log.Err(err))
		return 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		Logger.Error("Initializing SDL failed", log.Err(err))
		return 1
	}
	defer sdl.Quit()

	if err := InitScreen(opts.scale); err != nil {
		Logger.Error("Creating window failed", log.Err(err))
		return 1
	}
	defer CloseScreen()

	Pacer = clock.NewPacer(clock.NewMonotonic(), opts.rate, chip8.TimerHz)

	return loop(opts)
}

/// Load a ROM file into a new virtual machine, replacing the current one.
///
func Load(file string, opts optionFlags) error {
	vm, err := chip8.LoadFile(file, opts.machineOptions(Logger, Keys))
	if err != nil {
		return err
	}

	Logger.Info("Loaded ROM", log.String("file", file))

	VM = vm
	if Window != nil {
		Window.SetTitle("CHIP-8 - " + file)
	}
	if Pacer != nil {
		Pacer.Restart()
	}

	return nil
}

/// loop runs the machine until it halts. A clean stop exits with 0, a
/// fault with 1.
///
func loop(opts optionFlags) int {
	for {
		repaint := ProcessEvents(opts)

		steps, ticks := Pacer.Due()

		for i := 0; i < ticks; i++ {
			VM.Tick()
		}

		for i := 0; i < steps; i++ {
			state, err := VM.Step()
			if err != nil {
				Logger.Error("Execution halted", log.Err(err))
				DebugState()
				return 1
			}
			if state == chip8.Halted {
				Logger.Info("Stopped", log.Int("cycles", int(VM.Cycles)))
				return 0
			}
		}

		if VM.ConsumeRedraw() || repaint {
			if err := Refresh(); err != nil {
				Logger.Error("Rendering failed", log.Err(err))
				return 1
			}
		}

		sdl.Delay(1)
	}
}
