// This file is part of Gophstation.
//
// Gophstation is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophstation is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophstation.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is the SDL implementation of the screen.Renderer
// interface. It opens a window and presents every completed frame of the
// pixel store to it.
package sdlplay

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLPlay is the SDL implementation of screen.Renderer.
type SDLPlay struct {
	width  int32
	height int32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the display rect converted to ABGR8888, four bytes per pixel
	pixels []byte
}

const pixelDepth = 4

// NewSDLPlay is the preferred method of initialisation for the SDLPlay
// type. width and height are the dimensions of the display area that frames
// will be presented with; scale is the window magnification.
func NewSDLPlay(width int, height int, scale float32) (*SDLPlay, error) {
	scr := &SDLPlay{
		width:  int32(width),
		height: int32(height),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow("Gophstation",
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(scr.width)*scale), int32(float32(scr.height)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.SetScale(scale, scale)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, scr.width, scr.height)
	if err != nil {
		return nil, fmt.Errorf("sdlplay: %v", err)
	}

	scr.pixels = make([]byte, int(scr.width)*int(scr.height)*pixelDepth)

	return scr, nil
}

// NewFrame implements the screen.Renderer interface. The 5-5-5-1 pixels of
// the display rect are widened to eight bits per channel before upload.
func (scr *SDLPlay) NewFrame(pixels []uint16, stride int, x int, y int, width int, height int) error {
	if int32(width) != scr.width || int32(height) != scr.height {
		return fmt.Errorf("sdlplay: frame is %dx%d, window expects %dx%d",
			width, height, scr.width, scr.height)
	}

	i := 0
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			v := pixels[(y+row)*stride+x+col]
			r := byte(v & 0x1f)
			g := byte((v >> 5) & 0x1f)
			b := byte((v >> 10) & 0x1f)
			scr.pixels[i] = r<<3 | r>>2
			scr.pixels[i+1] = g<<3 | g>>2
			scr.pixels[i+2] = b<<3 | b>>2
			scr.pixels[i+3] = 255
			i += pixelDepth
		}
	}

	err := scr.texture.Update(nil, scr.pixels, int(scr.width)*pixelDepth)
	if err != nil {
		return err
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}

// EndRendering implements the screen.Renderer interface.
func (scr *SDLPlay) EndRendering() error {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	err := scr.window.Destroy()
	sdl.Quit()
	return err
}

// Service the SDL event queue. Returns false when the user has asked for
// the window to close.
func (scr *SDLPlay) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return false
			}
		}
	}
	return true
}
