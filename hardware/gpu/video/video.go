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

package video

import (
	"github.com/gophstation/gophstation/hardware/gpu/vram"
)

// Pipeline draws fragments into the pixel store. It implements stages two to
// five of the drawing pipeline; the transform of stage one is supplied with
// every call because it belongs to the draw call, not to the pipeline.
//
// The two mask fields correspond to the mask bit environment setting of the
// GPU: SetMaskBit forces the mask bit of every written word to one;
// CheckMaskBit protects store words whose mask bit is already set from being
// overwritten.
type Pipeline struct {
	mem *vram.VRAM

	SetMaskBit   bool
	CheckMaskBit bool
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type. The pixel store is shared with the caller; the pipeline reads it
// during compositing and masking and writes the final fragment words to it.
func NewPipeline(mem *vram.VRAM) *Pipeline {
	return &Pipeline{mem: mem}
}

// Process one fragment through the pipeline. The fragment's position is in
// vertex space; fragments landing outside the drawing area of the transform
// are discarded, as are fragments that resolve to a fully transparent texel.
func (pl *Pipeline) Process(tr Transform, ds *DrawState, frag Fragment) {
	x, y, inside := tr.Screen(frag.X, frag.Y)
	if !inside {
		return
	}

	// dithering applies to the shaded colour only. for texture-blended
	// primitives the dithered shade becomes the modulation factor
	shade := frag.Shade
	if ds.Dither {
		shade = dither(shade, x, y)
	}

	front := shade
	blend := ds.SemiTransparent

	if ds.Textured {
		texel, ok := fetchTexel(pl.mem, ds, frag.U, frag.V)
		if !ok {
			// the all-zero texel convention: nothing is drawn, not even
			// the mask bit
			return
		}
		if ds.TextureBlend {
			texel = modulate(texel, shade)
		}
		front = texel

		// for textured primitives the texel's mask bit gates the blend
		blend = blend && texel.Mask
	}

	pl.write(x, y, front, blend, ds.Blend)
}

// write is the output formatter. It owns the packing of the final word and
// the mask bit rules. Compositing reads the destination here so that the
// read and the write of a blended fragment are adjacent.
func (pl *Pipeline) write(x int, y int, front Color, blend bool, mode BlendMode) {
	var back uint16
	if blend || pl.CheckMaskBit {
		back = pl.mem.Peek(x, y)
	}

	if pl.CheckMaskBit && back&maskBit == maskBit {
		return
	}

	if blend {
		front = mode.Combine(DecodeColor(back), front)
	}

	v := front.Encode()
	if pl.SetMaskBit {
		v |= maskBit
	}

	pl.mem.Poke(x, y, v)
}
