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

// Package digest produces fingerprints of the pixel store for regression
// testing. The fingerprint of a sequence of frames is chained: every frame's
// hash covers the hash of the frame before it, so two runs match only if
// every frame along the way matched.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Video is an implementation of the screen.Renderer interface. It folds every
// presented frame into a running SHA-1 value and displays nothing.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest   [sha1.Size]byte
	buffer   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash returns the current fingerprint as a hex string.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest resets the chained fingerprint to its starting value.
func (dig *Video) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// NewFrame implements the screen.Renderer interface. Fingerprints are
// chained by hashing the previous digest value ahead of the frame's pixel
// data.
func (dig *Video) NewFrame(pixels []uint16, stride int, x int, y int, width int, height int) error {
	l := len(dig.digest) + width*height*2
	if cap(dig.buffer) < l {
		dig.buffer = make([]byte, l)
	}
	dig.buffer = dig.buffer[:l]

	n := copy(dig.buffer, dig.digest[:])

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			v := pixels[(y+row)*stride+x+col]
			dig.buffer[n] = byte(v)
			dig.buffer[n+1] = byte(v >> 8)
			n += 2
		}
	}

	dig.digest = sha1.Sum(dig.buffer)
	dig.frameNum++
	return nil
}

// EndRendering implements the screen.Renderer interface.
func (dig *Video) EndRendering() error {
	return nil
}
