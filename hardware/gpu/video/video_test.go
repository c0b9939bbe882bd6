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

func TestOpaqueWrite(t *testing.T) {
	mem := vram.NewVRAM()

	frag := video.Fragment{X: 10, Y: 20, Shade: video.Color{R: 255, G: 0, B: 0}}
	w := drawSingle(mem, video.DrawState{}, frag)
	test.Equate(t, w, 0x001f)
}

func TestDrawingArea(t *testing.T) {
	mem := vram.NewVRAM()
	pl := video.NewPipeline(mem)

	tr := video.Transform{OffsetX: 100, OffsetY: 50, AreaX: 100, AreaY: 50, AreaW: 64, AreaH: 64}
	ds := video.DrawState{}
	shade := video.Color{R: 255, G: 255, B: 255}

	// vertex (0,0) maps to store position (100,50), the top-left corner of
	// the drawing area
	pl.Process(tr, &ds, video.Fragment{X: 0, Y: 0, Shade: shade})
	test.Equate(t, mem.Peek(100, 50), 0x7fff)

	// the last position inside the area
	pl.Process(tr, &ds, video.Fragment{X: 63, Y: 63, Shade: shade})
	test.Equate(t, mem.Peek(163, 113), 0x7fff)

	// one past the edge is clipped
	pl.Process(tr, &ds, video.Fragment{X: 64, Y: 0, Shade: shade})
	test.Equate(t, mem.Peek(164, 50), 0)

	// as is anything left of the area
	pl.Process(tr, &ds, video.Fragment{X: -1, Y: 0, Shade: shade})
	test.Equate(t, mem.Peek(99, 50), 0)
}

func TestSemiTransparency(t *testing.T) {
	mem := vram.NewVRAM()
	pl := video.NewPipeline(mem)
	tr := video.Transform{AreaW: vram.Width, AreaH: vram.Height}

	// an untextured primitive blends whenever its semi-transparency flag
	// is set. background is full red, fragment full blue, additive blend
	mem.Poke(10, 10, 0x001f)
	ds := video.DrawState{SemiTransparent: true, Blend: video.BlendAdd}
	pl.Process(tr, &ds, video.Fragment{X: 10, Y: 10, Shade: video.Color{B: 255}})
	test.Equate(t, mem.Peek(10, 10), 0x7c1f)
}

func TestSemiTransparencyTextured(t *testing.T) {
	mem := vram.NewVRAM()
	pl := video.NewPipeline(mem)
	tr := video.Transform{AreaW: vram.Width, AreaH: vram.Height}

	ds := video.DrawState{
		Textured:        true,
		Depth:           video.Depth15BPP,
		SemiTransparent: true,
		Blend:           video.BlendAdd,
	}

	// two texels: full blue with the mask bit set, full blue without
	mem.Poke(0, 0, 0x7c00|0x8000)
	mem.Poke(1, 0, 0x7c00)

	// full red background under both target positions
	mem.Poke(10, 10, 0x001f)
	mem.Poke(11, 10, 0x001f)

	// the masked texel blends with the background
	pl.Process(tr, &ds, video.Fragment{X: 10, Y: 10, U: 0, V: 0})
	test.Equate(t, mem.Peek(10, 10), 0x7c1f|0x8000)

	// the unmasked texel overwrites it, despite the primitive flag
	pl.Process(tr, &ds, video.Fragment{X: 11, Y: 10, U: 1, V: 0})
	test.Equate(t, mem.Peek(11, 10), 0x7c00)
}

func TestMaskBitSet(t *testing.T) {
	mem := vram.NewVRAM()
	pl := video.NewPipeline(mem)
	pl.SetMaskBit = true
	tr := video.Transform{AreaW: vram.Width, AreaH: vram.Height}

	ds := video.DrawState{}
	pl.Process(tr, &ds, video.Fragment{X: 5, Y: 5, Shade: video.Color{R: 255}})
	test.Equate(t, mem.Peek(5, 5), 0x001f|0x8000)
}

func TestMaskBitCheck(t *testing.T) {
	mem := vram.NewVRAM()
	pl := video.NewPipeline(mem)
	pl.CheckMaskBit = true
	tr := video.Transform{AreaW: vram.Width, AreaH: vram.Height}

	ds := video.DrawState{}
	shade := video.Color{R: 255, G: 255, B: 255}

	// a masked destination word is left alone
	mem.Poke(5, 5, 0x0015|0x8000)
	pl.Process(tr, &ds, video.Fragment{X: 5, Y: 5, Shade: shade})
	test.Equate(t, mem.Peek(5, 5), 0x0015|0x8000)

	// an unmasked destination is written as normal
	mem.Poke(6, 5, 0x0015)
	pl.Process(tr, &ds, video.Fragment{X: 6, Y: 5, Shade: shade})
	test.Equate(t, mem.Peek(6, 5), 0x7fff)
}

// dithering applies to the shade before texture modulation, so a dithered
// texture-blended primitive perturbs the modulation factor rather than the
// final colour.
func TestDitherBeforeModulate(t *testing.T) {
	mem := vram.NewVRAM()
	pl := video.NewPipeline(mem)
	tr := video.Transform{AreaW: vram.Width, AreaH: vram.Height}

	ds := video.DrawState{
		Textured:     true,
		TextureBlend: true,
		Depth:        video.Depth15BPP,
		Dither:       true,
	}

	// full white texel, neutral shade. screen position (4,1) takes a
	// dither offset of +2: the modulation factor becomes 130/128
	mem.Poke(0, 0, 0x7fff)
	pl.Process(tr, &ds, video.Fragment{X: 4, Y: 1, U: 0, V: 0,
		Shade: video.Color{R: 128, G: 128, B: 128}})

	// (255*130)>>7 = 258, clamped to 255. had the dither applied after
	// modulation the result would quantise to 0x7fff regardless, so also
	// check the negative direction at position (0,0): factor 124
	test.Equate(t, mem.Peek(4, 1), 0x7fff)

	pl.Process(tr, &ds, video.Fragment{X: 0, Y: 0, U: 0, V: 0,
		Shade: video.Color{R: 128, G: 128, B: 128}})

	// (255*124)>>7 = 247, quantising to store value 30 on every channel
	test.Equate(t, mem.Peek(0, 0), uint16(30)|30<<5|30<<10)
}
