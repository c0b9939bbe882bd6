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
	"math"

	"github.com/gophstation/gophstation/hardware/gpu/vram"
)

// foldWindow applies the texture window to one axis of a texture coordinate.
// The window repeats a sub-rectangle of the texture page: masked bits of the
// coordinate are replaced with the window offset. Mask and offset are in
// units of eight texels. Folding is idempotent.
func foldWindow(coord int, mask int, offset int) int {
	return (coord &^ (mask * 8)) | ((offset & mask) * 8)
}

// roundTexel rounds an interpolated texture coordinate to the nearest texel
// and wraps it into the 0-255 texel window.
func roundTexel(v float32) int {
	return int(math.Round(float64(v))) & 0xff
}

// fetchTexel resolves a texture coordinate to a colour using the draw state
// of the primitive. The boolean return value is false if the texel is fully
// transparent and the fragment must be discarded.
//
// The resolution order is: round to nearest texel; fold through the texture
// window; flip; fetch the page word; resolve the CLUT for the palette colour
// depths. A raw word of zero means "no texel here" for every colour depth --
// this is a separate convention to the mask bit.
func fetchTexel(mem *vram.VRAM, ds *DrawState, u float32, v float32) (Color, bool) {
	div := ds.Depth.Divider()

	x := foldWindow(roundTexel(u), ds.WindowMaskX, ds.WindowOffsetX)
	y := foldWindow(roundTexel(v), ds.WindowMaskY, ds.WindowOffsetY)

	// horizontal flip works on whole store words. the sub-word index into
	// the fetched word is taken from the coordinate before the flip: the
	// palette index sits at the texel's real position within the word.
	// (hardware references disagree on this point; see the flip tests for
	// the behaviour we commit to)
	sub := x % div
	col := x / div
	if ds.FlipX {
		col = 255/div - col
	}
	if ds.FlipY {
		y = 255 - y
	}

	// page fetch wraps around the store edges
	raw := mem.Peek(ds.PageX+col, ds.PageY+y)

	if ds.Depth.palette() {
		// a page word holds div sub-indices of 16/div bits each
		bits := 16 / div
		idx := int(raw>>(sub*bits)) & (1<<bits - 1)
		raw = mem.Peek(ds.ClutX+idx, ds.ClutY)
	}

	if raw == 0 {
		return Color{}, false
	}

	return DecodeColor(raw), true
}

// modulate scales the texel colour by the shaded colour. The shaded colour
// is treated as a fixed point value where 128 is 1.0, recovering the
// headroom lost to the 0.5 scale of the hardware's colour format: a shade of
// 128,128,128 leaves the texel unchanged, brighter shades amplify it.
func modulate(texel Color, shade Color) Color {
	texel.R = clampChannel(int(texel.R) * int(shade.R) >> 7)
	texel.G = clampChannel(int(texel.G) * int(shade.G) >> 7)
	texel.B = clampChannel(int(texel.B) * int(shade.B) >> 7)
	return texel
}
