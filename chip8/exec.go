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

	"github.com/retroenv/retrogolib/log"
)

/// execute applies the effect of one decoded instruction. The program
/// counter has already been advanced past it.
///
func (vm *CHIP_8) execute(inst Instruction) error {
	x, y := inst.X, inst.Y

	switch inst.Op {
	case OpCLS:
		vm.cls()
	case OpRET:
		return vm.ret()
	case OpJP:
		vm.jump(inst.NNN)
	case OpCALL:
		return vm.call(inst.NNN)
	case OpSEByte:
		vm.skipWhen(vm.V[x] == inst.NN)
	case OpSNEByte:
		vm.skipWhen(vm.V[x] != inst.NN)
	case OpSEReg:
		vm.skipWhen(vm.V[x] == vm.V[y])
	case OpSNEReg:
		vm.skipWhen(vm.V[x] != vm.V[y])
	case OpLDByte:
		vm.V[x] = inst.NN
	case OpADDByte:
		vm.V[x] += inst.NN
	case OpLDReg:
		vm.V[x] = vm.V[y]
	case OpOR:
		vm.V[x] |= vm.V[y]
	case OpAND:
		vm.V[x] &= vm.V[y]
	case OpXOR:
		vm.V[x] ^= vm.V[y]
	case OpADDReg:
		vm.addXY(x, y)
	case OpSUB:
		vm.subXY(x, y)
	case OpSUBN:
		vm.subYX(x, y)
	case OpSHR:
		vm.shr(x, y)
	case OpSHL:
		vm.shl(x, y)
	case OpLDI:
		vm.I = inst.NNN
	case OpJPV0:
		if !vm.Quirks.JumpWithOffset {
			vm.undefined(inst)
			break
		}
		vm.jump(inst.NNN + uint16(vm.V[0]))
	case OpRND:
		vm.V[x] = byte(vm.rand.Intn(256)) & inst.NN
	case OpDRW:
		return vm.drw(x, y, inst.N)
	case OpSKP:
		vm.skipWhen(vm.keys.IsDown(vm.V[x]))
	case OpSKNP:
		vm.skipWhen(!vm.keys.IsDown(vm.V[x]))
	case OpLDVxDT:
		vm.V[x] = vm.DT
	case OpLDDTVx:
		vm.DT = vm.V[x]
	case OpLDSTVx:
		vm.ST = vm.V[x]
	case OpLDVxK:
		vm.loadXK(x)
	case OpADDI:
		vm.addIX(x)
	case OpLDF:
		vm.I = FontBase + uint16(vm.V[x])*GlyphSize
	case OpLDB:
		return vm.loadB(x)
	case OpLDMemVx:
		return vm.saveRegs(x)
	case OpLDVxMem:
		return vm.loadRegs(x)
	default:
		vm.undefined(inst)
	}

	return nil
}

/// undefined instructions are a no-op; only a diagnostic is logged.
///
func (vm *CHIP_8) undefined(inst Instruction) {
	vm.log.Warn("Undefined opcode",
		log.Hex("pc", vm.PC-2),
		log.Hex("opcode", inst.Word),
	)
}

/// skip the next instruction if cond holds.
///
func (vm *CHIP_8) skipWhen(cond bool) {
	if cond {
		vm.PC += 2
	}
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint16) {
	vm.PC = address
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(address uint16) error {
	if vm.SP >= StackDepth {
		return ErrStackOverflow
	}

	vm.Stack[vm.SP] = vm.PC
	vm.SP++

	vm.PC = address

	return nil
}

/// return from subroutine.
///
func (vm *CHIP_8) ret() error {
	if vm.SP == 0 {
		return ErrStackUnderflow
	}

	vm.SP--
	vm.PC = vm.Stack[vm.SP]

	return nil
}

/// add vy to vx and set carry.
///
func (vm *CHIP_8) addXY(x, y byte) {
	sum := uint16(vm.V[x]) + uint16(vm.V[y])

	vm.V[x] = byte(sum)
	vm.V[0xF] = flag(sum > 0xFF)
}

/// subtract vy from vx, set carry if no borrow.
///
func (vm *CHIP_8) subXY(x, y byte) {
	noBorrow := vm.V[x] >= vm.V[y]

	vm.V[x] -= vm.V[y]
	vm.V[0xF] = flag(noBorrow)
}

/// subtract vx from vy and store in vx, set carry if no borrow.
///
func (vm *CHIP_8) subYX(x, y byte) {
	noBorrow := vm.V[y] >= vm.V[x]

	vm.V[x] = vm.V[y] - vm.V[x]
	vm.V[0xF] = flag(noBorrow)
}

/// shr vx 1 bit, set carry to the bit shifted out.
///
func (vm *CHIP_8) shr(x, y byte) {
	if !vm.Quirks.ShiftInPlace {
		vm.V[x] = vm.V[y]
	}

	carry := vm.V[x] & 1

	vm.V[x] >>= 1
	vm.V[0xF] = carry
}

/// shl vx 1 bit, set carry to the bit shifted out.
///
func (vm *CHIP_8) shl(x, y byte) {
	if !vm.Quirks.ShiftInPlace {
		vm.V[x] = vm.V[y]
	}

	carry := vm.V[x] >> 7

	vm.V[x] <<= 1
	vm.V[0xF] = carry
}

/// add vx to i. Leaving the address space isn't an error, but sets
/// the flag with the index overflow quirk. I saturates at MaxIndex.
///
func (vm *CHIP_8) addIX(x byte) {
	sum := uint32(vm.I) + uint32(vm.V[x])

	if sum > MaxIndex {
		vm.I = MaxIndex
	} else {
		vm.I = uint16(sum)
	}

	if !vm.Quirks.NoIndexOverflowFlag && sum > MemorySize-1 {
		vm.V[0xF] = 1
	}
}

/// load vx with the next key hit. Nothing blocks: without a key the
/// program counter is rewound so the instruction runs again next cycle.
///
func (vm *CHIP_8) loadXK(x byte) {
	if key, ok := vm.keys.FirstDown(); ok {
		vm.V[x] = key
		return
	}

	vm.PC -= 2
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(x byte) error {
	mem, err := vm.span(3)
	if err != nil {
		return err
	}

	n := vm.V[x]

	mem[0] = n / 100
	mem[1] = n / 10 % 10
	mem[2] = n % 10

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(x byte) error {
	mem, err := vm.span(uint16(x) + 1)
	if err != nil {
		return err
	}

	copy(mem, vm.V[:x+1])
	vm.advanceIndex(x)

	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(x byte) error {
	mem, err := vm.span(uint16(x) + 1)
	if err != nil {
		return err
	}

	copy(vm.V[:x+1], mem)
	vm.advanceIndex(x)

	return nil
}

func (vm *CHIP_8) advanceIndex(x byte) {
	if vm.Quirks.LoadStoreIncrementsIndex {
		vm.I += uint16(x) + 1
	}
}

/// span returns memory[I, I+n), or an error if any of it lies outside
/// the address space.
///
func (vm *CHIP_8) span(n uint16) ([]byte, error) {
	start := uint(vm.I)
	end := start + uint(n)

	if end > MemorySize {
		return nil, fmt.Errorf("%w: I=%04X, %d bytes", ErrAddressOutOfRange, vm.I, n)
	}

	return vm.Memory[start:end], nil
}

func flag(b bool) byte {
	if b {
		return 1
	}

	return 0
}
