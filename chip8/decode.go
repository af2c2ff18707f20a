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

/// Opcode identifies which behavior a decoded instruction selects.
///
type Opcode uint8

/// All opcodes the decoder can produce. OpUndefined is the single
/// fallback for any bit pattern that doesn't select a behavior.
///
const (
	OpUndefined Opcode = iota
	OpCLS              // 00E0
	OpRET              // 00EE
	OpJP               // 1nnn
	OpCALL             // 2nnn
	OpSEByte           // 3xnn
	OpSNEByte          // 4xnn
	OpSEReg            // 5xy0
	OpLDByte           // 6xnn
	OpADDByte          // 7xnn
	OpLDReg            // 8xy0
	OpOR               // 8xy1
	OpAND              // 8xy2
	OpXOR              // 8xy3
	OpADDReg           // 8xy4
	OpSUB              // 8xy5
	OpSHR              // 8xy6
	OpSUBN             // 8xy7
	OpSHL              // 8xyE
	OpSNEReg           // 9xy0
	OpLDI              // Annn
	OpJPV0             // Bnnn
	OpRND              // Cxnn
	OpDRW              // Dxyn
	OpSKP              // Ex9E
	OpSKNP             // ExA1
	OpLDVxDT           // Fx07
	OpLDVxK            // Fx0A
	OpLDDTVx           // Fx15
	OpLDSTVx           // Fx18
	OpADDI             // Fx1E
	OpLDF              // Fx29
	OpLDB              // Fx33
	OpLDMemVx          // Fx55
	OpLDVxMem          // Fx65
)

/// Instruction is a single decoded 16-bit instruction word.
///
type Instruction struct {
	/// Word is the raw instruction as fetched (big-endian).
	///
	Word uint16

	/// Op is the behavior selected by the word.
	///
	Op Opcode

	/// X and Y are register operands, N is the low nibble.
	///
	X, Y, N byte

	/// NN is the low byte operand.
	///
	NN byte

	/// NNN is the 12-bit address operand.
	///
	NNN uint16
}

/// Decode splits an instruction word into its operand fields and
/// selects the opcode. Every word decodes; unknown patterns decode to
/// OpUndefined.
///
func Decode(word uint16) Instruction {
	inst := Instruction{
		Word: word,
		X:    byte(word >> 8 & 0xF),
		Y:    byte(word >> 4 & 0xF),
		N:    byte(word & 0xF),
		NN:   byte(word & 0xFF),
		NNN:  word & 0xFFF,
	}

	inst.Op = opcodeOf(inst)

	return inst
}

func opcodeOf(inst Instruction) Opcode {
	switch inst.Word >> 12 {
	case 0x0:
		switch inst.NNN {
		case 0x0E0:
			return OpCLS
		case 0x0EE:
			return OpRET
		}
	case 0x1:
		return OpJP
	case 0x2:
		return OpCALL
	case 0x3:
		return OpSEByte
	case 0x4:
		return OpSNEByte
	case 0x5:
		if inst.N == 0 {
			return OpSEReg
		}
	case 0x6:
		return OpLDByte
	case 0x7:
		return OpADDByte
	case 0x8:
		return aluOpcodes[inst.N]
	case 0x9:
		if inst.N == 0 {
			return OpSNEReg
		}
	case 0xA:
		return OpLDI
	case 0xB:
		return OpJPV0
	case 0xC:
		return OpRND
	case 0xD:
		return OpDRW
	case 0xE:
		switch inst.NN {
		case 0x9E:
			return OpSKP
		case 0xA1:
			return OpSKNP
		}
	case 0xF:
		return miscOpcodes[inst.NN]
	}

	return OpUndefined
}

// 8xyN, indexed by N
var aluOpcodes = [16]Opcode{
	0x0: OpLDReg,
	0x1: OpOR,
	0x2: OpAND,
	0x3: OpXOR,
	0x4: OpADDReg,
	0x5: OpSUB,
	0x6: OpSHR,
	0x7: OpSUBN,
	0xE: OpSHL,
}

// FxNN, missing keys are undefined
var miscOpcodes = map[byte]Opcode{
	0x07: OpLDVxDT,
	0x0A: OpLDVxK,
	0x15: OpLDDTVx,
	0x18: OpLDSTVx,
	0x1E: OpADDI,
	0x29: OpLDF,
	0x33: OpLDB,
	0x55: OpLDMemVx,
	0x65: OpLDVxMem,
}
