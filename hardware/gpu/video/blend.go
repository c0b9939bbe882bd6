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

// BlendMode selects one of the four fixed semi-transparency equations. The
// set is closed: the hardware has exactly these four and the field in the
// texpage attribute is two bits wide.
type BlendMode int

// The four blend equations. B is the colour already in the store, F is the
// front colour produced by the shading stages.
const (
	// 0.5*B + 0.5*F
	BlendAverage BlendMode = iota

	// 1.0*B + 1.0*F
	BlendAdd

	// 1.0*B - 1.0*F
	BlendSubtract

	// 1.0*B + 0.25*F. the only equation whose back factor cannot be folded
	// into an alpha value; it forces a destination read in the compositor
	BlendQuarter
)

func (mode BlendMode) String() string {
	switch mode {
	case BlendAverage:
		return "B/2+F/2"
	case BlendAdd:
		return "B+F"
	case BlendSubtract:
		return "B-F"
	case BlendQuarter:
		return "B+F/4"
	}
	return "illegal blend mode"
}

// Combine the back colour with the front colour according to the blend mode.
// Channels saturate at the limits of the representable range. The mask bit
// of the result is taken from the front colour.
func (mode BlendMode) Combine(back Color, front Color) Color {
	var r, g, b int

	switch mode {
	case BlendAverage:
		r = (int(back.R) + int(front.R)) / 2
		g = (int(back.G) + int(front.G)) / 2
		b = (int(back.B) + int(front.B)) / 2
	case BlendAdd:
		r = int(back.R) + int(front.R)
		g = int(back.G) + int(front.G)
		b = int(back.B) + int(front.B)
	case BlendSubtract:
		r = int(back.R) - int(front.R)
		g = int(back.G) - int(front.G)
		b = int(back.B) - int(front.B)
	case BlendQuarter:
		r = int(back.R) + int(front.R)/4
		g = int(back.G) + int(front.G)/4
		b = int(back.B) + int(front.B)/4
	default:
		panic("illegal blend mode")
	}

	return Color{
		R:    clampChannel(r),
		G:    clampChannel(g),
		B:    clampChannel(b),
		Mask: front.Mask,
	}
}
