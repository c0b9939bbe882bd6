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

// Package video implements the per-fragment drawing pipeline of the GPU. The
// pipeline takes a rasterized fragment (an interpolated colour, a texture
// coordinate and a screen position) together with the draw state of the
// owning primitive, and produces the sixteen bit word that ends up in video
// memory.
//
// The stages of the pipeline run strictly in order for every fragment:
//
//  1. draw state carrier. the drawing offset and drawing area of the active
//     transform are applied to the fragment position
//  2. dithering. the shaded colour is perturbed by a fixed 4x4 pattern
//  3. texture fetch and colour decode. the texture coordinate is resolved,
//     through the texture window, flips and (for the palette colour modes)
//     the CLUT, to a final colour
//  4. semi-transparency. the front colour is combined with the word already
//     in the store according to one of four fixed blend equations
//  5. output formatting. the result is packed into 5-5-5-1 form and written,
//     subject to the mask bit rules
//
// Draw state is carried per primitive, not per draw call. This is the
// central batching decision of the GPU: consecutive primitives with
// different texture pages, palettes or colour depths can be submitted as one
// batch and the pipeline branches on the flattened state per fragment. The
// Batch type implements the grouping and the store barrier required by blend
// equation 3 (see Batch documentation).
package video
