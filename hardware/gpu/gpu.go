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

// Package gpu is the top level of the graphics chip emulation. The heavy
// lifting happens in the sub-packages: vram implements the pixel store and
// video implements the fragment pipeline. The GPU type ties them together
// and keeps the drawing environment - the state set by control commands
// rather than carried by individual primitives.
//
// The command decoder that would drive a GPU instance in a full console
// emulation is out of scope for this package. The caller plays that role:
// it sets the environment, submits rasterized primitives and transfers
// blocks of pixel data.
package gpu

import (
	"github.com/gophstation/gophstation/hardware/gpu/video"
	"github.com/gophstation/gophstation/hardware/gpu/vram"
	"github.com/gophstation/gophstation/logger"
)

// GPU is the graphics chip. Drawing goes through the batching layer so
// consecutive primitives with compatible state are processed together;
// anything that observes the pixel store from outside the pipeline must
// flush the batch first, which the GPU's own access functions take care of.
type GPU struct {
	mem      *vram.VRAM
	pipeline *video.Pipeline
	batch    *video.Batch

	// the current draw call transform. drawing area and offset apply to
	// a primitive at submission, not retroactively
	transform video.Transform

	// the current texture window, stamped into the draw state of every
	// submitted primitive
	windowMaskX   int
	windowMaskY   int
	windowOffsetX int
	windowOffsetY int
}

// NewGPU is the preferred method of initialisation for the GPU type. The
// pixel store starts cleared and the drawing area open across the whole
// store.
func NewGPU() *GPU {
	mem := vram.NewVRAM()
	pipeline := video.NewPipeline(mem)
	return &GPU{
		mem:      mem,
		pipeline: pipeline,
		batch:    video.NewBatch(pipeline),
		transform: video.Transform{
			AreaW: vram.Width,
			AreaH: vram.Height,
		},
	}
}

// SetDrawingArea sets the clipping rectangle for subsequent draws.
func (g *GPU) SetDrawingArea(x int, y int, width int, height int) {
	g.transform.AreaX = x
	g.transform.AreaY = y
	g.transform.AreaW = width
	g.transform.AreaH = height
	logger.Logf(logger.Allow, "gpu", "drawing area: %dx%d at (%d,%d)", width, height, x, y)
}

// SetDrawingOffset sets the translation from vertex space to store
// coordinates for subsequent draws.
func (g *GPU) SetDrawingOffset(x int, y int) {
	g.transform.OffsetX = x
	g.transform.OffsetY = y
	logger.Logf(logger.Allow, "gpu", "drawing offset: (%d,%d)", x, y)
}

// SetTextureWindow sets the texture repeat window for subsequent draws.
// Mask and offset are in units of eight texels, five bits each.
func (g *GPU) SetTextureWindow(maskX int, maskY int, offsetX int, offsetY int) {
	g.windowMaskX = maskX & 0x1f
	g.windowMaskY = maskY & 0x1f
	g.windowOffsetX = offsetX & 0x1f
	g.windowOffsetY = offsetY & 0x1f
	logger.Logf(logger.Allow, "gpu", "texture window: mask (%d,%d) offset (%d,%d)",
		g.windowMaskX, g.windowMaskY, g.windowOffsetX, g.windowOffsetY)
}

// SetMaskSettings sets the mask bit environment: set forces the mask bit on
// every drawn word, check protects store words with the mask bit already
// set. The settings affect fragments at the moment they are written, so
// buffered fragments are flushed before the change takes effect.
func (g *GPU) SetMaskSettings(set bool, check bool) {
	g.batch.Flush()
	g.pipeline.SetMaskBit = set
	g.pipeline.CheckMaskBit = check
	logger.Logf(logger.Allow, "gpu", "mask settings: set=%v check=%v", set, check)
}

// Draw submits a rasterized primitive under the current drawing
// environment. The current texture window is stamped into the primitive's
// draw state; everything else in the state is the primitive's own.
//
// Fragments may remain buffered when Draw returns. Flush or any of the
// pixel store access functions force them out.
func (g *GPU) Draw(prim video.Primitive) {
	prim.State.WindowMaskX = g.windowMaskX
	prim.State.WindowMaskY = g.windowMaskY
	prim.State.WindowOffsetX = g.windowOffsetX
	prim.State.WindowOffsetY = g.windowOffsetY
	g.batch.Draw(g.transform, prim)
}

// Flush forces every buffered fragment into the pixel store.
func (g *GPU) Flush() {
	g.batch.Flush()
}

// WriteBlock copies pixel data into the pixel store, bypassing the drawing
// pipeline. Pending draws are flushed first so the transfer lands on top of
// them.
func (g *GPU) WriteBlock(x int, y int, width int, height int, block []uint16) error {
	g.batch.Flush()
	return g.mem.WriteBlock(x, y, width, height, block)
}

// ReadBlock copies pixel data out of the pixel store. Pending draws are
// flushed first so the transfer observes them.
func (g *GPU) ReadBlock(x int, y int, width int, height int) []uint16 {
	g.batch.Flush()
	return g.mem.ReadBlock(x, y, width, height)
}

// Blit copies a rectangle of the pixel store onto another. Pending draws
// are flushed first.
func (g *GPU) Blit(sx int, sy int, dx int, dy int, width int, height int) {
	g.batch.Flush()
	g.mem.Blit(sx, sy, dx, dy, width, height)
}

// Fill floods a rectangle of the pixel store with a flat colour, bypassing
// the drawing pipeline and the mask settings. Pending draws are flushed
// first.
func (g *GPU) Fill(x int, y int, width int, height int, col video.Color) {
	g.batch.Flush()
	g.mem.Fill(x, y, width, height, col.Encode())
}

// VRAM exposes the pixel store for presentation and fingerprinting. Pending
// draws are flushed first; the returned store is live and shared with the
// pipeline.
func (g *GPU) VRAM() *vram.VRAM {
	g.batch.Flush()
	return g.mem
}
