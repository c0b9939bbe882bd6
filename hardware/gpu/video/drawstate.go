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

// ColorDepth is the texel encoding width of a texture page.
type ColorDepth int

// Valid ColorDepth values. DepthReserved behaves like Depth15BPP.
const (
	Depth4BPP ColorDepth = iota
	Depth8BPP
	Depth15BPP
	DepthReserved
)

// Divider returns how many texels pack into one sixteen bit store word for
// the colour depth.
func (dep ColorDepth) Divider() int {
	switch dep {
	case Depth4BPP:
		return 4
	case Depth8BPP:
		return 2
	case Depth15BPP, DepthReserved:
		return 1
	}
	panic("colour depth out of range")
}

// palette returns true if the colour depth requires CLUT resolution.
func (dep ColorDepth) palette() bool {
	return dep == Depth4BPP || dep == Depth8BPP
}

// DrawState is the bundle of drawing flags attached to a primitive. It is
// carried per primitive rather than per draw call so that a run of
// primitives with entirely different texture and blending state can be
// rasterized as one batch. The pipeline branches on these fields per
// fragment.
//
// A DrawState is created by the primitive assembler and is read-only for the
// duration of rasterizing the primitive.
type DrawState struct {
	// whether the primitive samples a texture at all. when false the shaded
	// colour is used directly
	Textured bool

	// whether the sampled texel is modulated by the shaded colour. when
	// false the texel colour passes through unmodified ("raw" textures)
	TextureBlend bool

	Depth ColorDepth

	// texture page base address in the store
	PageX int
	PageY int

	// CLUT base address in the store. only meaningful for the palette
	// colour depths
	ClutX int
	ClutY int

	// texture window, all in units of eight texels
	WindowMaskX   int
	WindowMaskY   int
	WindowOffsetX int
	WindowOffsetY int

	FlipX bool
	FlipY bool

	Dither bool

	// semi-transparency enable and equation. for textured primitives the
	// enable is further gated by the mask bit of the sampled texel
	SemiTransparent bool
	Blend           BlendMode
}

// TexPageFromWord sets the texture page fields from the texpage attribute
// halfword found in the upper sixteen bits of the second texcoord parameter
// of a textured polygon command.
func (ds *DrawState) TexPageFromWord(w uint32) {
	w >>= 16
	ds.PageX = int(w&0xf) * 64
	ds.PageY = int((w>>4)&0x1) * 256
	ds.Blend = BlendMode((w >> 5) & 0x3)
	ds.Depth = ColorDepth((w >> 7) & 0x3)
}

// ClutFromWord sets the CLUT base fields from the attribute halfword found
// in the upper sixteen bits of the first texcoord parameter of a textured
// polygon command.
func (ds *DrawState) ClutFromWord(w uint32) {
	w >>= 16
	ds.ClutX = int(w&0x3f) * 16
	ds.ClutY = int((w >> 6) & 0x1ff)
}

// WindowFromWord sets the texture window fields from the packed form used by
// the texture window environment command.
func (ds *DrawState) WindowFromWord(w uint32) {
	ds.WindowMaskX = int(w & 0x1f)
	ds.WindowMaskY = int((w >> 5) & 0x1f)
	ds.WindowOffsetX = int((w >> 10) & 0x1f)
	ds.WindowOffsetY = int((w >> 15) & 0x1f)
}

// Transform is the per-draw-call state applied uniformly to every primitive
// in a batch: the drawing offset and the drawing area rectangle.
type Transform struct {
	OffsetX int
	OffsetY int

	// drawing area origin and extent
	AreaX int
	AreaY int
	AreaW int
	AreaH int
}

// Screen maps a vertex-space position to a store position, applying the
// drawing offset. The boolean return value is false if the position falls
// outside the drawing area.
func (tr Transform) Screen(x int, y int) (int, int, bool) {
	x += tr.OffsetX
	y += tr.OffsetY
	inside := x >= tr.AreaX && x < tr.AreaX+tr.AreaW && y >= tr.AreaY && y < tr.AreaY+tr.AreaH
	return x, y, inside
}

// Normalize maps a vertex-space position into the [-1,1] coordinate frame
// with the drawing area origin as the logical top-left. This is the frame a
// hardware rasterizer would receive vertices in.
func (tr Transform) Normalize(x int, y int) (float32, float32) {
	nx := float32(x+tr.OffsetX-tr.AreaX)/float32(tr.AreaW)*2 - 1
	ny := float32(y+tr.OffsetY-tr.AreaY)/float32(tr.AreaH)*2 - 1
	return nx, ny
}

// Fragment is one interpolated sample produced by rasterizing a primitive:
// position in vertex space, the interpolated (shaded) colour and the
// interpolated texture coordinate.
//
// Texture coordinates may be fractional after interpolation. The texture
// fetch stage rounds them to the nearest texel.
type Fragment struct {
	X int
	Y int

	Shade Color

	U float32
	V float32
}
