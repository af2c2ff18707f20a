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
	"fmt"
	"strings"

	"github.com/massung/chip8vm/chip8"
	"github.com/retroenv/retrogolib/log"
)

/// DebugState logs the machine registers and the instructions around
/// the program counter, for post-mortem of a fault.
///
func DebugState() {
	DebugRegisters(VM)
	DebugAssembly(VM)
}

/// DebugRegisters logs the current value of all the CHIP-8 registers.
///
func DebugRegisters(vm *chip8.CHIP_8) {
	regs := make([]string, 0, len(vm.V))
	for i, v := range vm.V {
		regs = append(regs, fmt.Sprintf("V%X=#%02X", i, v))
	}

	Logger.Error("Registers",
		log.Hex("pc", vm.PC),
		log.Hex("i", vm.I),
		log.Int("sp", int(vm.SP)),
		log.Int("dt", int(vm.DT)),
		log.Int("st", int(vm.ST)),
		log.String("v", strings.Join(regs, " ")),
	)
}

/// DebugAssembly logs the disassembled instructions around the CHIP-8
/// program counter, marking the instruction that faulted.
///
func DebugAssembly(vm *chip8.CHIP_8) {
	pc := vm.PC - 2

	var fault *chip8.Fault
	if errors.As(vm.Err(), &fault) {
		pc = fault.PC
	}

	start := pc &^ 1
	if start >= 8 {
		start -= 8
	} else {
		start = 0
	}

	for a := start; a < start+16; a += 2 {
		line := vm.Disassemble(a)
		if line == "" {
			break
		}

		if a == pc {
			line += "   <--"
		}

		Logger.Error(line)
	}
}
