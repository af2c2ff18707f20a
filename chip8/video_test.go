package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func countPixels(fb *Framebuffer) int {
	n := 0
	for _, on := range fb {
		if on {
			n++
		}
	}
	return n
}

func TestBlit(t *testing.T) {
	var fb Framebuffer

	collision := fb.Blit(2, 3, []byte{0xA0, 0x01}, true)
	assert.False(t, collision)

	assert.True(t, fb.Pixel(2, 3))
	assert.False(t, fb.Pixel(3, 3))
	assert.True(t, fb.Pixel(4, 3))
	assert.True(t, fb.Pixel(9, 4))
	assert.True(t, fb[4*Width+9])
	assert.Equal(t, 3, countPixels(&fb))

	collision = fb.Blit(4, 3, []byte{0x80}, true)
	assert.True(t, collision)
	assert.False(t, fb.Pixel(4, 3))
	assert.Equal(t, 2, countPixels(&fb))
}

func TestPixelOutside(t *testing.T) {
	var fb Framebuffer
	for i := range fb {
		fb[i] = true
	}

	assert.False(t, fb.Pixel(-1, 0))
	assert.False(t, fb.Pixel(Width, 0))
	assert.False(t, fb.Pixel(0, Height))
}

func TestDrawTwiceCollides(t *testing.T) {
	vm, _ := newTestVM(t, 0xA050, 0xD005, 0xD005)

	run(t, vm, 2)
	assert.Equal(t, byte(0), vm.V[0xF])
	assert.True(t, countPixels(&vm.Video) > 0)

	run(t, vm, 1)
	assert.Equal(t, byte(1), vm.V[0xF])
	assert.Equal(t, Framebuffer{}, vm.Frame())
}

func TestDrawClipsRight(t *testing.T) {
	vm, _ := newTestVM(t, 0x603C, 0xA300, 0xD011)
	vm.Memory[0x300] = 0xFF

	run(t, vm, 3)
	for x := 0; x < Width; x++ {
		assert.Equal(t, x >= 60, vm.Video.Pixel(x, 0))
	}
	assert.Equal(t, 4, countPixels(&vm.Video))
}

func TestDrawClipsBottom(t *testing.T) {
	vm, _ := newTestVM(t, 0x611E, 0xA300, 0xD014)
	copy(vm.Memory[0x300:], []byte{0x80, 0x80, 0x80, 0x80})

	run(t, vm, 3)
	assert.True(t, vm.Video.Pixel(0, 30))
	assert.True(t, vm.Video.Pixel(0, 31))
	assert.False(t, vm.Video.Pixel(0, 0))
	assert.False(t, vm.Video.Pixel(0, 1))
	assert.Equal(t, 2, countPixels(&vm.Video))
}

func TestDrawWraps(t *testing.T) {
	quirks := DefaultQuirks()
	quirks.WrapSprites = true

	vm, _ := newQuirksVM(t, quirks, 0x603C, 0x611F, 0xA300, 0xD012)
	copy(vm.Memory[0x300:], []byte{0xFF, 0x81})

	run(t, vm, 4)
	for x := 60; x < 64; x++ {
		assert.True(t, vm.Video.Pixel(x, 31))
	}
	for x := 0; x < 4; x++ {
		assert.True(t, vm.Video.Pixel(x, 31))
	}
	assert.True(t, vm.Video.Pixel(60, 0))
	assert.True(t, vm.Video.Pixel(3, 0))
	assert.Equal(t, 10, countPixels(&vm.Video))
}

func TestDrawOriginWraps(t *testing.T) {
	// the origin itself always wraps, only the sprite body clips
	vm, _ := newTestVM(t, 0x6045, 0x6122, 0xA300, 0xD011)
	vm.Memory[0x300] = 0x80

	run(t, vm, 4)
	assert.True(t, vm.Video.Pixel(5, 2))
	assert.Equal(t, 1, countPixels(&vm.Video))
}

func TestDrawFlagResetOnce(t *testing.T) {
	vm, _ := newTestVM(t, 0xA300, 0xD011, 0xA302, 0xD012)
	copy(vm.Memory[0x300:], []byte{0x80, 0x00, 0x80, 0x00})

	run(t, vm, 4)
	assert.Equal(t, byte(1), vm.V[0xF], "a collision on any row sticks")
}

func TestDrawClearsFlag(t *testing.T) {
	vm, _ := newTestVM(t, 0x6FFF, 0xA050, 0xD005)

	run(t, vm, 3)
	assert.Equal(t, byte(0), vm.V[0xF])
}

func TestClearScreen(t *testing.T) {
	vm, _ := newTestVM(t, 0xA050, 0xD005, 0x00E0)

	run(t, vm, 2)
	assert.True(t, vm.ConsumeRedraw())
	assert.False(t, vm.ConsumeRedraw())

	run(t, vm, 1)
	assert.Equal(t, Framebuffer{}, vm.Frame())
	assert.True(t, vm.RedrawPending)
}

func TestDrawZeroRowsOutOfRange(t *testing.T) {
	vm, _ := newTestVM(t, 0xAFFF, 0x6002, 0xF01E, 0xD010)

	run(t, vm, 4)
	assert.Equal(t, uint16(0x1001), vm.I)
	assert.Equal(t, byte(0), vm.V[0xF])
	assert.Equal(t, 0, countPixels(&vm.Video))
	assert.True(t, vm.ConsumeRedraw())
}
