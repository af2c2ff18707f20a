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
	"flag"
	"fmt"
	"io"
	"math/rand"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

/// optionFlags are the parsed command line options.
///
type optionFlags struct {
	rom string

	rate  int
	scale int
	seed  int64

	wrap           bool
	noIndexFlag    bool
	shiftVX        bool
	jumpV0         bool
	incrementIndex bool

	debug bool
	trace bool
	quiet bool
}

/// parseFlags reads the command line. The ROM is the optional first
/// positional argument.
///
func parseFlags(name string, args []string, output io.Writer) (optionFlags, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)

	opts := optionFlags{}

	flags.IntVar(&opts.rate, "rate", 700, "instructions executed per second")
	flags.IntVar(&opts.scale, "scale", 10, "size of a CHIP-8 pixel on screen")
	flags.Int64Var(&opts.seed, "seed", 0, "seed for the random number generator, 0 picks one")
	flags.BoolVar(&opts.wrap, "wrap", false, "wrap sprites around the screen edge instead of clipping them")
	flags.BoolVar(&opts.noIndexFlag, "no-index-flag", false, "do not set VF when ADD I, Vx overflows")
	flags.BoolVar(&opts.shiftVX, "shift-vx", false, "shift Vx in place instead of copying Vy first")
	flags.BoolVar(&opts.jumpV0, "jump-v0", false, "enable the JP V0, addr instruction")
	flags.BoolVar(&opts.incrementIndex, "increment-index", false, "advance I past the registers copied by Fx55/Fx65")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.trace, "trace", false, "log every executed instruction (implies -debug)")
	flags.BoolVar(&opts.quiet, "q", false, "only log errors")

	flags.Usage = func() {
		fmt.Fprintf(output, "usage: %s [options] [rom file]\n\n", name)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if flags.NArg() > 1 {
		flags.Usage()
		return opts, fmt.Errorf("expected at most one rom file, got %d", flags.NArg())
	}
	if opts.rate <= 0 {
		return opts, fmt.Errorf("invalid rate %d", opts.rate)
	}
	if opts.scale <= 0 {
		return opts, fmt.Errorf("invalid scale %d", opts.scale)
	}

	opts.rom = flags.Arg(0)
	opts.debug = opts.debug || opts.trace

	return opts, nil
}

/// machineOptions converts the command line into virtual machine options.
///
func (opts optionFlags) machineOptions(logger *log.Logger, keypad chip8.Keypad) chip8.Options {
	vmOpts := chip8.DefaultOptions()

	vmOpts.Quirks.WrapSprites = opts.wrap
	vmOpts.Quirks.NoIndexOverflowFlag = opts.noIndexFlag
	vmOpts.Quirks.ShiftInPlace = opts.shiftVX
	vmOpts.Quirks.JumpWithOffset = opts.jumpV0
	vmOpts.Quirks.LoadStoreIncrementsIndex = opts.incrementIndex

	vmOpts.Keypad = keypad
	vmOpts.Logger = logger
	vmOpts.Trace = opts.trace

	if opts.seed != 0 {
		vmOpts.Rand = rand.New(rand.NewSource(opts.seed))
	}

	return vmOpts
}

/// createLogger creates a logger with appropriate settings.
///
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func printBanner(output io.Writer, opts optionFlags) {
	if opts.quiet {
		return
	}

	fmt.Fprintln(output, "[---------------------------]")
	fmt.Fprintln(output, "[ chip8vm - CHIP-8 emulator ]")
	fmt.Fprintf(output, "[---------------------------]\n\n")
	fmt.Fprintf(output, "version: %s\n\n", buildinfo.Version(version, commit, date))
}
