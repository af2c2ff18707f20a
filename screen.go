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
	"github.com/massung/chip8vm/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	Screen *sdl.Texture
)

/// InitScreen creates the window, the renderer and the render target
/// for the CHIP-8 video memory.
///
func InitScreen(scale int) error {
	var err error

	w, h := int32(chip8.Width*scale), int32(chip8.Height*scale)

	Window, err = sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}

	if Renderer, err = sdl.CreateRenderer(Window, -1, sdl.RENDERER_ACCELERATED); err != nil {
		return err
	}

	// create a render target for the display
	Screen, err = Renderer.CreateTexture(sdl.PIXELFORMAT_RGB888, sdl.TEXTUREACCESS_TARGET, chip8.Width, chip8.Height)
	if err != nil {
		return err
	}

	return Refresh()
}

/// CloseScreen releases everything InitScreen created.
///
func CloseScreen() {
	if Screen != nil {
		Screen.Destroy()
	}
	if Renderer != nil {
		Renderer.Destroy()
	}
	if Window != nil {
		Window.Destroy()
	}
}

/// Refresh redraws the window from a snapshot of the CHIP-8 display.
///
func Refresh() error {
	if err := RefreshScreen(VM.Frame()); err != nil {
		return err
	}

	// stretch the render target to fit
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.Clear()

	if err := Renderer.Copy(Screen, nil, nil); err != nil {
		return err
	}

	Renderer.Present()

	return nil
}

/// RefreshScreen draws the frame into the render target.
///
func RefreshScreen(frame chip8.Framebuffer) error {
	if err := Renderer.SetRenderTarget(Screen); err != nil {
		return err
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	for p, on := range frame {
		if on {
			Renderer.DrawPoint(int32(p%chip8.Width), int32(p/chip8.Width))
		}
	}

	// restore the render target
	return Renderer.SetRenderTarget(nil)
}
