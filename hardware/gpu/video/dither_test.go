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

package video_test

import (
	"testing"

	"github.com/gophstation/gophstation/hardware/gpu/video"
	"github.com/gophstation/gophstation/hardware/gpu/vram"
	"github.com/gophstation/gophstation/test"
)

// drawSingle runs one fragment through a fresh pipeline and returns the word
// written at the fragment position.
func drawSingle(mem *vram.VRAM, ds video.DrawState, frag video.Fragment) uint16 {
	pl := video.NewPipeline(mem)
	tr := video.Transform{AreaW: vram.Width, AreaH: vram.Height}
	pl.Process(tr, &ds, frag)
	return mem.Peek(frag.X, frag.Y)
}

func TestDitherOffset(t *testing.T) {
	mem := vram.NewVRAM()

	// screen position (5,1) indexes the pattern at row 1, column 1: an
	// offset of -2/255 on every channel
	frag := video.Fragment{X: 5, Y: 1, Shade: video.Color{R: 100, G: 100, B: 100}}
	w := drawSingle(mem, video.DrawState{Dither: true}, frag)

	col := video.DecodeColor(w)
	test.Equate(t, col.R, ((100-2)>>3)<<3|((100-2)>>3)>>2)
	test.Equate(t, col.G, col.R)
	test.Equate(t, col.B, col.R)
}

func TestDitherPattern(t *testing.T) {
	mem := vram.NewVRAM()

	// expected offsets for one 4x4 tile of screen positions
	pattern := [4][4]int{
		{-4, 0, -3, 1},
		{2, -2, 3, -1},
		{-3, 1, -4, 0},
		{3, -1, 2, -2},
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			frag := video.Fragment{X: x, Y: y, Shade: video.Color{R: 128, G: 128, B: 128}}
			w := drawSingle(mem, video.DrawState{Dither: true}, frag)
			want := uint8(128+pattern[y][x]) >> 3
			if uint8(w&0x1f) != want {
				t.Errorf("dither at (%d,%d): red channel %d - wanted %d", x, y, w&0x1f, want)
			}

			// the pattern repeats every four positions on both axes
			w2 := drawSingle(mem, video.DrawState{Dither: true},
				video.Fragment{X: x + 4, Y: y + 8, Shade: video.Color{R: 128, G: 128, B: 128}})
			test.Equate(t, w2, w)
		}
	}
}

func TestDitherDisabled(t *testing.T) {
	mem := vram.NewVRAM()

	frag := video.Fragment{X: 5, Y: 1, Shade: video.Color{R: 100, G: 100, B: 100}}
	w := drawSingle(mem, video.DrawState{}, frag)
	test.Equate(t, w, (100>>3)|(100>>3)<<5|(100>>3)<<10)
}

func TestDitherClamp(t *testing.T) {
	mem := vram.NewVRAM()

	// position (0,0) carries an offset of -4. a black shade must not wrap
	// around
	frag := video.Fragment{X: 0, Y: 0, Shade: video.Color{}}
	w := drawSingle(mem, video.DrawState{Dither: true}, frag)
	test.Equate(t, w, 0)

	// position (0,3) carries an offset of +3. full white must not overflow
	frag = video.Fragment{X: 0, Y: 3, Shade: video.Color{R: 255, G: 255, B: 255}}
	w = drawSingle(mem, video.DrawState{Dither: true}, frag)
	test.Equate(t, w, 0x7fff)
}
