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
	"errors"
	"fmt"
)

var (
	/// ErrROMTooLarge is returned when a program will not fit between
	/// 0x200 and the end of memory.
	///
	ErrROMTooLarge = errors.New("program too large to fit in memory")

	/// ErrStackOverflow is returned by a call when all 16 stack cells
	/// are already in use.
	///
	ErrStackOverflow = errors.New("stack overflow")

	/// ErrStackUnderflow is returned by a return with an empty stack.
	///
	ErrStackUnderflow = errors.New("stack underflow")

	/// ErrAddressOutOfRange is returned when a memory access through the
	/// address register would leave the 4 KiB address space.
	///
	ErrAddressOutOfRange = errors.New("address out of range")

	/// ErrPCOutOfRange is returned when the program counter no longer
	/// references a full instruction in memory.
	///
	ErrPCOutOfRange = errors.New("program counter out of range")
)

/// Fault is a fatal execution error. It records where the virtual
/// machine was and what it was executing when it halted.
///
type Fault struct {
	PC   uint16
	Inst Instruction
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%04X - %s: %v", f.PC, f.Inst, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
