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

// Color is the working colour of the pipeline. Channels are eight bits wide
// while a colour is in flight; quantisation to five bits happens on encode.
//
// Mask is the mask/alpha bit of the store word. For colours fetched from a
// texture it doubles as the per-texel semi-transparency flag.
type Color struct {
	R    uint8
	G    uint8
	B    uint8
	Mask bool
}

// masks and shifts for the 5-5-5-1 store word. red occupies the least
// significant bits of the colour triple, the mask bit is bit fifteen.
const (
	maskBit = 0x8000
)

// DecodeColor unpacks a word of the pixel store into a working colour. The
// five bit channels are widened to eight bits by repeating the top bits of
// the channel in the low bits, so that 0b11111 widens to 0xff.
func DecodeColor(v uint16) Color {
	r := uint8(v & 0x1f)
	g := uint8((v >> 5) & 0x1f)
	b := uint8((v >> 10) & 0x1f)
	return Color{
		R:    r<<3 | r>>2,
		G:    g<<3 | g>>2,
		B:    b<<3 | b>>2,
		Mask: v&maskBit == maskBit,
	}
}

// Encode packs the colour into the 5-5-5-1 store format. Encode is the exact
// inverse of DecodeColor: decoding a word and encoding the result reproduces
// the original bit pattern.
func (col Color) Encode() uint16 {
	v := uint16(col.R>>3) | uint16(col.G>>3)<<5 | uint16(col.B>>3)<<10
	if col.Mask {
		v |= maskBit
	}
	return v
}

// clamp an integer into the representable range of a colour channel.
func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
