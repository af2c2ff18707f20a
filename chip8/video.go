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

const (
	/// Width and Height of the display in pixels.
	///
	Width  = 64
	Height = 32
)

/// Framebuffer is the monochrome display, row-major: pixel (x, y) is
/// at index y*Width + x.
///
type Framebuffer [Width * Height]bool

/// Pixel returns whether the pixel at x, y is on. Coordinates outside
/// the display are off.
///
func (fb *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}

	return fb[y*Width+x]
}

/// Blit XORs an 8-pixel wide sprite onto the framebuffer with its top
/// left corner at ox, oy. Each sprite byte is one row, MSB leftmost.
/// Pixels past the edge are dropped when clip is set, otherwise they
/// wrap. It returns true if any pixel was turned off.
///
func (fb *Framebuffer) Blit(ox, oy int, sprite []byte, clip bool) bool {
	collision := false

	for r, s := range sprite {
		py := oy + r

		if py >= Height {
			if clip {
				break
			}
			py %= Height
		}

		for b := 0; b < 8; b++ {
			if s&(0x80>>uint(b)) == 0 {
				continue
			}

			px := ox + b

			if px >= Width {
				if clip {
					break
				}
				px %= Width
			}

			i := py*Width + px

			if fb[i] {
				collision = true
			}

			fb[i] = !fb[i]
		}
	}

	return collision
}

/// Clear the video display memory.
///
func (vm *CHIP_8) cls() {
	vm.Video = Framebuffer{}
	vm.RedrawPending = true
}

/// draw a sprite at I to video memory at vx, vy.
///
func (vm *CHIP_8) drw(x, y, n byte) error {
	ox := int(vm.V[x] % Width)
	oy := int(vm.V[y] % Height)

	var sprite []byte
	if n > 0 {
		var err error
		if sprite, err = vm.span(uint16(n)); err != nil {
			return err
		}
	}

	vm.V[0xF] = 0

	if vm.Video.Blit(ox, oy, sprite, !vm.Quirks.WrapSprites) {
		vm.V[0xF] = 1
	}

	vm.RedrawPending = true

	return nil
}

/// Frame returns a snapshot of the display.
///
func (vm *CHIP_8) Frame() Framebuffer {
	return vm.Video
}

/// ConsumeRedraw reports whether the display changed since the last
/// call and clears the flag.
///
func (vm *CHIP_8) ConsumeRedraw() bool {
	redraw := vm.RedrawPending
	vm.RedrawPending = false

	return redraw
}
