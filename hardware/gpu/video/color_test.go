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
	"github.com/gophstation/gophstation/test"
)

func TestColorDecode(t *testing.T) {
	// full white with mask bit
	col := video.DecodeColor(0xffff)
	test.Equate(t, col.R, 255)
	test.Equate(t, col.G, 255)
	test.Equate(t, col.B, 255)
	test.Equate(t, col.Mask, true)

	// black without mask bit
	col = video.DecodeColor(0x0000)
	test.Equate(t, col.R, 0)
	test.Equate(t, col.G, 0)
	test.Equate(t, col.B, 0)
	test.Equate(t, col.Mask, false)

	// red occupies the least significant bits of the colour triple
	col = video.DecodeColor(0x001f)
	test.Equate(t, col.R, 255)
	test.Equate(t, col.G, 0)
	test.Equate(t, col.B, 0)

	col = video.DecodeColor(0x7c00)
	test.Equate(t, col.R, 0)
	test.Equate(t, col.G, 0)
	test.Equate(t, col.B, 255)

	// widening repeats the channel's top bits in the low bits
	col = video.DecodeColor(0x0010)
	test.Equate(t, col.R, 0x84)
}

// decoding then re-encoding a store word reproduces the original bit pattern
// exactly, for every possible word
func TestColorRoundTrip(t *testing.T) {
	for w := 0; w <= 0xffff; w++ {
		if video.DecodeColor(uint16(w)).Encode() != uint16(w) {
			t.Fatalf("round trip failed for %#04x", w)
		}
	}
}
