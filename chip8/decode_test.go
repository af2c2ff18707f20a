package chip8

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeFields(t *testing.T) {
	inst := Decode(0xD12F)

	assert.Equal(t, uint16(0xD12F), inst.Word)
	assert.Equal(t, byte(0x1), inst.X)
	assert.Equal(t, byte(0x2), inst.Y)
	assert.Equal(t, byte(0xF), inst.N)
	assert.Equal(t, byte(0x2F), inst.NN)
	assert.Equal(t, uint16(0x12F), inst.NNN)
}

func TestDecodeAllWords(t *testing.T) {
	for w := 0; w <= 0xFFFF; w++ {
		inst := Decode(uint16(w))

		if inst.X != byte(w>>8&0xF) || inst.Y != byte(w>>4&0xF) || inst.N != byte(w&0xF) ||
			inst.NN != byte(w) || inst.NNN != uint16(w&0xFFF) {
			t.Fatalf("Decode(%04X) fields = %+v", w, inst)
		}
	}
}

func TestDecodeOpcode(t *testing.T) {
	tests := []struct {
		word uint16
		op   Opcode
	}{
		{0x00E0, OpCLS},
		{0x00EE, OpRET},
		{0x0123, OpUndefined},
		{0x0000, OpUndefined},
		{0x1ABC, OpJP},
		{0x2ABC, OpCALL},
		{0x3A42, OpSEByte},
		{0x4A42, OpSNEByte},
		{0x5AB0, OpSEReg},
		{0x5AB1, OpUndefined},
		{0x6A42, OpLDByte},
		{0x7A42, OpADDByte},
		{0x8AB0, OpLDReg},
		{0x8AB1, OpOR},
		{0x8AB2, OpAND},
		{0x8AB3, OpXOR},
		{0x8AB4, OpADDReg},
		{0x8AB5, OpSUB},
		{0x8AB6, OpSHR},
		{0x8AB7, OpSUBN},
		{0x8AB8, OpUndefined},
		{0x8ABD, OpUndefined},
		{0x8ABE, OpSHL},
		{0x8ABF, OpUndefined},
		{0x9AB0, OpSNEReg},
		{0x9AB4, OpUndefined},
		{0xA123, OpLDI},
		{0xB123, OpJPV0},
		{0xCA0F, OpRND},
		{0xDAB5, OpDRW},
		{0xEA9E, OpSKP},
		{0xEAA1, OpSKNP},
		{0xEA00, OpUndefined},
		{0xFA07, OpLDVxDT},
		{0xFA0A, OpLDVxK},
		{0xFA15, OpLDDTVx},
		{0xFA18, OpLDSTVx},
		{0xFA1E, OpADDI},
		{0xFA29, OpLDF},
		{0xFA33, OpLDB},
		{0xFA55, OpLDMemVx},
		{0xFA65, OpLDVxMem},
		{0xFA30, OpUndefined},
		{0xFAFF, OpUndefined},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%04X", tt.word), func(t *testing.T) {
			assert.Equal(t, tt.op, Decode(tt.word).Op)
		})
	}
}
