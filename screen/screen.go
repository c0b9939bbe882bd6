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

// Package screen defines how frames of the pixel store leave the emulation.
// Implementations decide what a frame becomes: a window, a fingerprint, a
// file. The core packages know nothing about presentation beyond this
// interface.
package screen

// Renderer implementations are given the pixel store every time a frame of
// drawing is complete.
type Renderer interface {
	// NewFrame presents a completed frame. pixels is the live pixel store
	// in 5-5-5-1 format, one row every stride words; the rectangle selects
	// the display area within it. The pixels slice must not be retained
	// after NewFrame returns.
	NewFrame(pixels []uint16, stride int, x int, y int, width int, height int) error

	// EndRendering is called once when the emulation is finished with the
	// renderer.
	EndRendering() error
}
