package chip8

import (
	"math/rand"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// program encodes instruction words big-endian.
func program(words ...uint16) []byte {
	rom := make([]byte, 0, len(words)*2)
	for _, w := range words {
		rom = append(rom, byte(w>>8), byte(w))
	}
	return rom
}

func testOptions(t *testing.T, keys *KeyState) Options {
	t.Helper()

	opts := DefaultOptions()
	opts.Keypad = keys
	opts.Logger = log.NewTestLogger(t)
	opts.Rand = rand.New(rand.NewSource(1))
	return opts
}

// newTestVM loads words at 0x200 with the default quirks.
func newTestVM(t *testing.T, words ...uint16) (*CHIP_8, *KeyState) {
	t.Helper()
	return newQuirksVM(t, DefaultQuirks(), words...)
}

func newQuirksVM(t *testing.T, quirks Quirks, words ...uint16) (*CHIP_8, *KeyState) {
	t.Helper()

	keys := &KeyState{}
	opts := testOptions(t, keys)
	opts.Quirks = quirks

	vm, err := LoadROM(program(words...), opts)
	assert.NoError(t, err)
	return vm, keys
}

// run executes n instructions, all of which must succeed.
func run(t *testing.T, vm *CHIP_8, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		state, err := vm.Step()
		assert.NoError(t, err)
		assert.Equal(t, Running, state)
	}
}
