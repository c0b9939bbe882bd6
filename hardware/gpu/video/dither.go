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

// the dither pattern of the original hardware. two interleaved 4x2 patterns
// for alternating scanline pairs, indexed by (y%4, x%4). units of 1/255.
var ditherTable = [4][4]int{
	{-4, 0, -3, 1},
	{2, -2, 3, -1},
	{-3, 1, -4, 0},
	{3, -1, 2, -2},
}

// dither perturbs the shaded colour by the fixed pattern at the given screen
// position. it runs before texture fetch, so for texture-blended primitives
// the perturbation lands on the modulation factor and never on the decoded
// texel colour itself.
func dither(col Color, x int, y int) Color {
	// the modulo arithmetic requires a non-negative position. positions are
	// inside the drawing area by the time dithering happens
	d := ditherTable[y&0x3][x&0x3]
	col.R = clampChannel(int(col.R) + d)
	col.G = clampChannel(int(col.G) + d)
	col.B = clampChannel(int(col.B) + d)
	return col
}
