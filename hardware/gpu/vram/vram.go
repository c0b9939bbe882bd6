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

// Package vram implements the video memory of the GPU. One megabyte of
// memory, addressed as 1024x512 sixteen bit words. Every word is a pixel in
// the 5-5-5-1 format: five bits each of red, green and blue (red in the least
// significant bits) and the mask bit in bit fifteen.
//
// The store is a shared resource. The GPU renders into it, the CPU reads and
// writes rectangular blocks of it, and the presentation layer reads the
// display area out of it. Arbitration of access between those parties happens
// outside of this package.
//
// Addressing of individual words wraps around on both axes. A coordinate is
// never out of range.
package vram

import (
	"github.com/gophstation/gophstation/curated"
)

// Dimensions of the store in 16bit words.
const (
	Width  = 1024
	Height = 512
)

// Error patterns returned by block operations.
const (
	BlockSizeError = "vram: block: buffer length %d does not match %dx%d area"
)

// VRAM is the shared pixel store.
type VRAM struct {
	data []uint16
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM() *VRAM {
	mem := &VRAM{
		data: make([]uint16, Width*Height),
	}
	return mem
}

// index converts a coordinate to an offset in the data slice, wrapping both
// axes. the modulo arithmetic works for negative coordinates too.
func index(x int, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}

// Poke a single word into the store. Coordinates wrap.
func (mem *VRAM) Poke(x int, y int, v uint16) {
	mem.data[index(x, y)] = v
}

// Peek a single word from the store. Coordinates wrap.
func (mem *VRAM) Peek(x int, y int) uint16 {
	return mem.data[index(x, y)]
}

// Clear the entire store.
func (mem *VRAM) Clear() {
	for i := range mem.data {
		mem.data[i] = 0
	}
}

// WriteBlock copies a rectangular block into the store, top-left corner at
// (x,y). Blocks extending past the right or bottom edge wrap around to the
// opposite edge, a texel at a time.
func (mem *VRAM) WriteBlock(x int, y int, width int, height int, block []uint16) error {
	if len(block) != width*height {
		return curated.Errorf(BlockSizeError, len(block), width, height)
	}

	i := 0
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			mem.data[index(x+dx, y+dy)] = block[i]
			i++
		}
	}

	return nil
}

// ReadBlock copies a rectangular block out of the store, top-left corner at
// (x,y). Wraps around the store edges in the same way as WriteBlock.
func (mem *VRAM) ReadBlock(x int, y int, width int, height int) []uint16 {
	block := make([]uint16, width*height)

	i := 0
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			block[i] = mem.data[index(x+dx, y+dy)]
			i++
		}
	}

	return block
}

// Blit copies a rectangular block from one part of the store to another.
// Source and destination may overlap; the copy behaves as though the source
// block is read in full before the destination is written.
func (mem *VRAM) Blit(sx int, sy int, dx int, dy int, width int, height int) {
	if sx == dx && sy == dy {
		return
	}

	block := mem.ReadBlock(sx, sy, width, height)

	// length of block is correct by construction so the error can be ignored
	_ = mem.WriteBlock(dx, dy, width, height, block)
}

// Fill a rectangular area with a flat word value. Unlike the block transfer
// functions, fill does not wrap. Areas extending past the store edges are
// clipped. A fill bypasses the drawing pipeline entirely: no blending and no
// mask bit checks.
func (mem *VRAM) Fill(x int, y int, width int, height int, v uint16) {
	if x >= Width || y >= Height {
		return
	}
	if x+width > Width {
		width = Width - x
	}
	if y+height > Height {
		height = Height - y
	}

	for dy := 0; dy < height; dy++ {
		o := (y+dy)*Width + x
		for dx := 0; dx < width; dx++ {
			mem.data[o+dx] = v
		}
	}
}

// Pixels returns the backing slice of the store. Used by presentation layers
// and digest functions that need to walk the entire store without the
// overhead of Peek.
func (mem *VRAM) Pixels() []uint16 {
	return mem.data
}
