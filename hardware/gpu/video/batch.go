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

// Primitive is one rasterized primitive: its flattened draw state and the
// fragments produced for it. The rasterizer lives outside this package; the
// pipeline only sees the result.
type Primitive struct {
	State DrawState
	Frags []Fragment
}

// a fragment waiting in a batch refers to the draw state of its primitive by
// index into the state arena. one small fixed-size struct per primitive,
// shared by all of its fragments.
type batchFragment struct {
	Fragment
	state int
}

// batchClass is the aspect of draw state that cannot vary within a batch:
// the draw call transform and the blending class. Everything else is carried
// per primitive and can differ freely between the primitives of one batch.
type batchClass struct {
	transform Transform

	// blend equations 0 to 2 each select a distinct compositing
	// configuration. opaque primitives share a class of their own,
	// regardless of the (inactive) blend mode in their draw state
	blend int
}

const blendClassOpaque = -1

// Batch accumulates primitives with heterogeneous draw state and submits
// them to the pipeline together. Primitives are accumulated until the batch
// class changes, at which point the buffered fragments are flushed in draw
// order.
//
// The quarter-add blend equation reads the store word it is about to
// combine with, so a primitive using it must observe every write buffered
// before it and must be observed by every write buffered after it. Such
// primitives are barrier-separated: the batch is flushed both before and
// after them. Fragments of all other batches have no ordering requirement
// between each other.
type Batch struct {
	pl *Pipeline

	current batchClass
	valid   bool

	states []DrawState
	frags  []batchFragment

	// number of times the buffered fragments have been submitted to the
	// pipeline. a measure of how well consecutive draws are batching
	FlushCount int
}

// NewBatch is the preferred method of initialisation for the Batch type.
func NewBatch(pl *Pipeline) *Batch {
	return &Batch{
		pl:     pl,
		states: make([]DrawState, 0, 64),
		frags:  make([]batchFragment, 0, 1024),
	}
}

// Draw adds a primitive to the batch under the given draw call transform.
// The buffered fragments are flushed first if the primitive cannot join the
// current batch.
func (bat *Batch) Draw(tr Transform, prim Primitive) {
	class := batchClass{transform: tr, blend: blendClassOpaque}
	barrier := false
	if prim.State.SemiTransparent {
		class.blend = int(prim.State.Blend)
		barrier = prim.State.Blend == BlendQuarter
	}

	if barrier || (bat.valid && class != bat.current) {
		bat.Flush()
	}
	bat.current = class
	bat.valid = true

	si := len(bat.states)
	bat.states = append(bat.states, prim.State)
	for _, frag := range prim.Frags {
		bat.frags = append(bat.frags, batchFragment{Fragment: frag, state: si})
	}

	if barrier {
		bat.Flush()
	}
}

// Flush submits all buffered fragments to the pipeline and empties the
// batch. A flush is the store barrier between draw batches: every write of
// the flushed batch completes before Flush returns.
func (bat *Batch) Flush() {
	if len(bat.frags) == 0 {
		bat.valid = false
		return
	}

	for i := range bat.frags {
		f := &bat.frags[i]
		bat.pl.Process(bat.current.transform, &bat.states[f.state], f.Fragment)
	}

	bat.states = bat.states[:0]
	bat.frags = bat.frags[:0]
	bat.valid = false
	bat.FlushCount++
}
