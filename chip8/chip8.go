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
	"fmt"
	"math/rand"
	"os"

	"github.com/retroenv/retrogolib/log"
)

const (
	/// MemorySize is the size of the CHIP-8 address space.
	///
	MemorySize = 0x1000

	/// ProgramStart is where programs are loaded and begin executing.
	///
	ProgramStart = 0x200

	/// MaxProgramSize is the largest program image that fits in memory.
	///
	MaxProgramSize = MemorySize - ProgramStart

	/// MaxIndex is the largest value the index register holds.
	///
	MaxIndex = 0xFFFF

	/// StackDepth is the number of return addresses the stack can hold.
	///
	StackDepth = 16
)

/// State of the engine driver. Halted is terminal.
///
type State int

const (
	Running State = iota
	Halted
)

func (s State) String() string {
	if s == Halted {
		return "halted"
	}

	return "running"
}

/// CHIP_8 virtual machine emulator.
///
type CHIP_8 struct {
	/// ROM is the pristine memory image after loading: the font and the
	/// program. Memory is reset back to it.
	///
	ROM [MemorySize]byte

	/// Memory addressable by CHIP-8. The first 512 bytes are reserved
	/// for the interpreter; the font lives at FontBase.
	///
	Memory [MemorySize]byte

	/// Video is the 64x32 monochrome display.
	///
	Video Framebuffer

	/// RedrawPending is set whenever Video changes and cleared by the
	/// consumer once it has rendered.
	///
	RedrawPending bool

	/// PC is the program counter. All programs begin at 0x200.
	///
	PC uint16

	/// I is the address register. It may be pushed past 0xFFF by
	/// ADD I, Vx; accesses through it are range checked.
	///
	I uint16

	/// V are the 16 virtual registers. VF doubles as the flag register.
	///
	V [16]byte

	/// Stack holds return addresses, SP is the number in use.
	///
	Stack [StackDepth]uint16
	SP    uint

	/// DT and ST are the delay and sound timers, counting down at 60 Hz.
	///
	DT byte
	ST byte

	/// Cycles is how many instructions have been executed.
	///
	Cycles int64

	/// Quirks in effect for this machine.
	///
	Quirks Quirks

	keys  Keypad
	log   *log.Logger
	rand  *rand.Rand
	trace bool

	state State
	err   error
}

/// LoadROM creates a new CHIP-8 virtual machine with program loaded.
///
func LoadROM(program []byte, opts Options) (*CHIP_8, error) {
	if len(program) > MaxProgramSize {
		return nil, fmt.Errorf("%w: %d bytes, %d available", ErrROMTooLarge, len(program), MaxProgramSize)
	}

	opts.fill()

	vm := &CHIP_8{
		Quirks: opts.Quirks,
		keys:   opts.Keypad,
		log:    opts.Logger,
		rand:   opts.Rand,
		trace:  opts.Trace,
	}

	copy(vm.ROM[FontBase:], Font[:])
	copy(vm.ROM[ProgramStart:], program)

	vm.Reset()

	return vm, nil
}

/// LoadFile reads a ROM file and returns a new CHIP-8 virtual machine.
///
func LoadFile(file string, opts Options) (*CHIP_8, error) {
	program, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	vm, err := LoadROM(program, opts)
	if err != nil {
		return nil, fmt.Errorf("loading rom '%s': %w", file, err)
	}

	return vm, nil
}

/// Reset the CHIP-8 virtual machine to its freshly loaded state.
///
func (vm *CHIP_8) Reset() {
	vm.Memory = vm.ROM
	vm.Video = Framebuffer{}
	vm.RedrawPending = false

	vm.PC = ProgramStart
	vm.I = 0
	vm.V = [16]byte{}
	vm.Stack = [StackDepth]uint16{}
	vm.SP = 0

	vm.DT = 0
	vm.ST = 0

	vm.Cycles = 0

	vm.state = Running
	vm.err = nil
}

/// State returns whether the machine is still running.
///
func (vm *CHIP_8) State() State {
	return vm.state
}

/// Err returns the fault that halted the machine, or nil.
///
func (vm *CHIP_8) Err() error {
	return vm.err
}

/// Keypad returns the input capability the machine polls.
///
func (vm *CHIP_8) Keypad() Keypad {
	return vm.keys
}

/// Step the CHIP-8 virtual machine a single instruction. It returns
/// Halted once an exit was requested or an instruction faulted; the
/// error is non-nil only for a fault.
///
func (vm *CHIP_8) Step() (State, error) {
	if vm.state == Halted {
		return Halted, nil
	}

	if q, ok := vm.keys.(Quitter); ok && q.QuitRequested() {
		vm.log.Info("Exit requested", log.Hex("pc", vm.PC))
		vm.state = Halted
		return Halted, nil
	}

	pc := vm.PC
	if pc > MemorySize-2 {
		return vm.fault(pc, Instruction{}, ErrPCOutOfRange)
	}

	inst := vm.fetch()

	if vm.trace {
		vm.log.Debug("exec",
			log.Hex("pc", pc),
			log.String("inst", inst.String()),
		)
	}

	if err := vm.execute(inst); err != nil {
		return vm.fault(pc, inst, err)
	}

	vm.Cycles++

	return Running, nil
}

/// fault halts the machine with a fatal execution error.
///
func (vm *CHIP_8) fault(pc uint16, inst Instruction, err error) (State, error) {
	vm.err = &Fault{PC: pc, Inst: inst, Err: err}
	vm.state = Halted

	return Halted, vm.err
}

/// Fetch the next 16-bit instruction and advance the program counter.
///
func (vm *CHIP_8) fetch() Instruction {
	i := vm.PC

	vm.PC += 2

	return Decode(uint16(vm.Memory[i])<<8 | uint16(vm.Memory[i+1]))
}
