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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gophstation/gophstation/digest"
	"github.com/gophstation/gophstation/hardware/gpu"
	"github.com/gophstation/gophstation/hardware/gpu/video"
	"github.com/gophstation/gophstation/hardware/gpu/vram"
	"github.com/gophstation/gophstation/logger"
	"github.com/gophstation/gophstation/screen"
	"github.com/gophstation/gophstation/screen/sdlplay"
)

// the display area of the pixel store that is presented each frame
const (
	displayW = 640
	displayH = 480
)

func main() {
	display := flag.Bool("display", false, "present frames in an SDL window")
	frames := flag.Int("frames", 60, "number of frames to draw")
	scale := flag.Float64("scale", 1.0, "window magnification")
	echo := flag.Bool("log", false, "echo log entries to stderr")
	flag.Parse()

	logger.SetEcho(*echo)

	var scr screen.Renderer
	var err error

	if *display {
		scr, err = sdlplay.NewSDLPlay(displayW, displayH, float32(*scale))
		if err != nil {
			fmt.Fprintf(os.Stderr, "* %v\n", err)
			os.Exit(10)
		}
	} else {
		scr = digest.NewVideo()
	}

	err = run(scr, *frames, *display)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	if dig, ok := scr.(*digest.Video); ok {
		fmt.Println(dig.Hash())
	}

	err = scr.EndRendering()
	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

// run draws a demonstration scene for the requested number of frames. The
// scene exercises the corners of the drawing pipeline: dithered shading,
// palette textures through the texture window, and all four semi-transparency
// equations.
func run(scr screen.Renderer, frames int, throttle bool) error {
	g := gpu.NewGPU()

	err := loadTexture(g)
	if err != nil {
		return err
	}

	g.SetDrawingArea(0, 0, displayW, displayH)

	for frame := 0; frame < frames; frame++ {
		drawScene(g, frame)

		mem := g.VRAM()
		err := scr.NewFrame(mem.Pixels(), vram.Width, 0, 0, displayW, displayH)
		if err != nil {
			return err
		}

		if s, ok := scr.(*sdlplay.SDLPlay); ok {
			if !s.Service() {
				break
			}
		}
		if throttle {
			<-time.After(16 * time.Millisecond)
		}
	}

	return nil
}

// texture assets live outside the display area: a 4bpp checker texture at
// (640,0) and its two palettes at (640,256) and (640,257).
const (
	texPageX = 640
	texPageY = 0
	clutY    = 256
)

func loadTexture(g *gpu.GPU) error {
	// 64 store words to a row of the 4bpp page: a 16x16 texel checkerboard
	// of palette indices 1 and 2, with index 0 (transparent) pinholes
	block := make([]uint16, 64*16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			idx := uint16(1)
			if (x/4+y/4)%2 == 0 {
				idx = 2
			}
			if x == y {
				idx = 0
			}
			block[y*64+x/4] |= idx << ((x % 4) * 4)
		}
	}
	err := g.WriteBlock(texPageX, texPageY, 64, 16, block)
	if err != nil {
		return err
	}

	// palette 0: orange/purple. palette 1: the same in green/blue
	err = g.WriteBlock(texPageX, clutY, 16, 1, clut(0x00ff7f00, 0x00bf00bf))
	if err != nil {
		return err
	}
	return g.WriteBlock(texPageX, clutY+1, 16, 1, clut(0x0000bf3f, 0x00003fbf))
}

// clut builds a 16 entry palette from two 0RGB colours at indices 1 and 2.
func clut(a uint32, b uint32) []uint16 {
	pack := func(c uint32) uint16 {
		r := uint16(c>>16) & 0xff
		g := uint16(c>>8) & 0xff
		bl := uint16(c) & 0xff
		return r>>3 | g>>3<<5 | bl>>3<<10
	}
	p := make([]uint16, 16)
	p[1] = pack(a)
	p[2] = pack(b)
	return p
}

func drawScene(g *gpu.GPU, frame int) {
	// background: flat dark blue, bypassing the pipeline
	g.Fill(0, 0, displayW, displayH, video.Color{B: 64})

	// a dithered shade ramp across the top of the screen
	ramp := video.Primitive{State: video.DrawState{Dither: true}}
	for y := 0; y < 64; y++ {
		for x := 0; x < displayW; x++ {
			v := uint8(x * 255 / displayW)
			ramp.Frags = append(ramp.Frags, video.Fragment{
				X: x, Y: y, Shade: video.Color{R: v, G: v, B: v},
			})
		}
	}
	g.Draw(ramp)

	// the checker texture, tiled through the texture window and swaying
	// with the frame count. a mask of 30 clears texel bits 4-7: the
	// coordinate repeats every 16 texels
	g.SetTextureWindow(30, 30, 0, 0)
	sprite := video.Primitive{
		State: video.DrawState{
			Textured: true,
			Depth:    video.Depth4BPP,
			PageX:    texPageX,
			PageY:    texPageY,
			ClutX:    texPageX,
			ClutY:    clutY + (frame/30)%2,
		},
	}
	sx := 64 + frame%32
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			sprite.Frags = append(sprite.Frags, video.Fragment{
				X: sx + x, Y: 128 + y,
				U: float32(x), V: float32(y),
			})
		}
	}
	g.Draw(sprite)
	g.SetTextureWindow(0, 0, 0, 0)

	// four semi-transparent panes, one per blend equation
	for mode := 0; mode < 4; mode++ {
		pane := video.Primitive{
			State: video.DrawState{
				SemiTransparent: true,
				Blend:           video.BlendMode(mode),
			},
		}
		px := 64 + mode*128
		for y := 0; y < 96; y++ {
			for x := 0; x < 96; x++ {
				pane.Frags = append(pane.Frags, video.Fragment{
					X: px + x, Y: 240 + y,
					Shade: video.Color{R: 160, G: 160, B: 160},
				})
			}
		}
		g.Draw(pane)
	}

	g.Flush()
}
